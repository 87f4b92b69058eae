package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/nurpe/fleetops/internal/model"
	"github.com/nurpe/fleetops/internal/repository"
)

type mockVehicleStore struct {
	mock.Mock
}

func (m *mockVehicleStore) List(ctx context.Context, status *model.VehicleStatus) ([]model.Vehicle, error) {
	args := m.Called(ctx, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Vehicle), args.Error(1)
}

func (m *mockVehicleStore) Get(ctx context.Context, id uuid.UUID) (*model.Vehicle, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Vehicle), args.Error(1)
}

func (m *mockVehicleStore) GetByPlate(ctx context.Context, plate string) (*model.Vehicle, error) {
	args := m.Called(ctx, plate)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Vehicle), args.Error(1)
}

func (m *mockVehicleStore) Create(ctx context.Context, vehicle model.Vehicle) (*model.Vehicle, error) {
	args := m.Called(ctx, vehicle)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Vehicle), args.Error(1)
}

func (m *mockVehicleStore) Update(ctx context.Context, vehicle model.Vehicle) (*model.Vehicle, error) {
	args := m.Called(ctx, vehicle)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Vehicle), args.Error(1)
}

func (m *mockVehicleStore) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type mockDriverStore struct {
	mock.Mock
}

func (m *mockDriverStore) List(ctx context.Context, status *model.DriverStatus) ([]model.Driver, error) {
	args := m.Called(ctx, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Driver), args.Error(1)
}

func (m *mockDriverStore) Get(ctx context.Context, id uuid.UUID) (*model.Driver, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Driver), args.Error(1)
}

func (m *mockDriverStore) GetByLicenseNumber(ctx context.Context, licenseNumber string) (*model.Driver, error) {
	args := m.Called(ctx, licenseNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Driver), args.Error(1)
}

func (m *mockDriverStore) Create(ctx context.Context, driver model.Driver) (*model.Driver, error) {
	args := m.Called(ctx, driver)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Driver), args.Error(1)
}

func (m *mockDriverStore) Update(ctx context.Context, driver model.Driver) (*model.Driver, error) {
	args := m.Called(ctx, driver)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Driver), args.Error(1)
}

func (m *mockDriverStore) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type mockTripStore struct {
	mock.Mock
}

func (m *mockTripStore) List(ctx context.Context, status *model.TripStatus) ([]model.TripRecord, error) {
	args := m.Called(ctx, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.TripRecord), args.Error(1)
}

func (m *mockTripStore) Get(ctx context.Context, id uuid.UUID) (*model.TripRecord, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.TripRecord), args.Error(1)
}

func (m *mockTripStore) GetTrip(ctx context.Context, id uuid.UUID) (*model.Trip, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Trip), args.Error(1)
}

func (m *mockTripStore) Dispatch(ctx context.Context, trip model.Trip) (*model.Trip, error) {
	args := m.Called(ctx, trip)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Trip), args.Error(1)
}

func (m *mockTripStore) Complete(ctx context.Context, trip model.Trip) (*model.Trip, error) {
	args := m.Called(ctx, trip)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Trip), args.Error(1)
}

func (m *mockTripStore) Cancel(ctx context.Context, trip model.Trip, release bool) (*model.Trip, error) {
	args := m.Called(ctx, trip, release)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Trip), args.Error(1)
}

type mockExpenseStore struct {
	mock.Mock
}

func (m *mockExpenseStore) List(ctx context.Context, filter repository.ExpenseFilter) ([]model.ExpenseRecord, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.ExpenseRecord), args.Error(1)
}

func (m *mockExpenseStore) Get(ctx context.Context, id uuid.UUID) (*model.ExpenseRecord, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ExpenseRecord), args.Error(1)
}

func (m *mockExpenseStore) Create(ctx context.Context, expense model.Expense) (*model.Expense, error) {
	args := m.Called(ctx, expense)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Expense), args.Error(1)
}

func (m *mockExpenseStore) CreateWithVehicleInShop(ctx context.Context, expense model.Expense) (*model.Expense, error) {
	args := m.Called(ctx, expense)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Expense), args.Error(1)
}

func (m *mockExpenseStore) TotalsByVehicle(ctx context.Context) ([]model.VehicleExpenseSummary, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.VehicleExpenseSummary), args.Error(1)
}

type mockMaintenanceStore struct {
	mock.Mock
}

func (m *mockMaintenanceStore) List(ctx context.Context, filter repository.MaintenanceFilter) ([]model.MaintenanceRecord, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.MaintenanceRecord), args.Error(1)
}

func (m *mockMaintenanceStore) Get(ctx context.Context, id uuid.UUID) (*model.MaintenanceRecord, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.MaintenanceRecord), args.Error(1)
}

func (m *mockMaintenanceStore) GetLog(ctx context.Context, id uuid.UUID) (*model.Maintenance, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Maintenance), args.Error(1)
}

func (m *mockMaintenanceStore) CreateWithExpense(ctx context.Context, log model.Maintenance, expense model.Expense) (*model.Maintenance, error) {
	args := m.Called(ctx, log, expense)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Maintenance), args.Error(1)
}

func (m *mockMaintenanceStore) Complete(ctx context.Context, log model.Maintenance) (*model.Maintenance, error) {
	args := m.Called(ctx, log)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Maintenance), args.Error(1)
}

func (m *mockMaintenanceStore) Delete(ctx context.Context, id uuid.UUID, releaseVehicleID *uuid.UUID) error {
	args := m.Called(ctx, id, releaseVehicleID)
	return args.Error(0)
}

func (m *mockMaintenanceStore) Summary(ctx context.Context) ([]model.MaintenanceSummaryRow, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.MaintenanceSummaryRow), args.Error(1)
}

type mockReportStore struct {
	mock.Mock
}

func (m *mockReportStore) VehicleCounts(ctx context.Context) (*repository.VehicleCounts, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.VehicleCounts), args.Error(1)
}

func (m *mockReportStore) DriverCounts(ctx context.Context) (*repository.DriverCounts, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.DriverCounts), args.Error(1)
}

func (m *mockReportStore) TripCounts(ctx context.Context) (*repository.TripCounts, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.TripCounts), args.Error(1)
}

func (m *mockReportStore) FuelEfficiencyRows(ctx context.Context) ([]model.FuelEfficiencyRow, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.FuelEfficiencyRow), args.Error(1)
}

func (m *mockReportStore) VehicleROIRows(ctx context.Context) ([]model.VehicleROIRow, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.VehicleROIRow), args.Error(1)
}

func (m *mockReportStore) DriverPerformanceRows(ctx context.Context) ([]model.DriverPerformanceRow, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.DriverPerformanceRow), args.Error(1)
}
