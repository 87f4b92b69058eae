package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/nurpe/fleetops/internal/model"
)

func newExpenseService(expenses *mockExpenseStore, vehicles *mockVehicleStore) *ExpenseService {
	s := NewExpenseService(expenses, vehicles)
	s.now = func() time.Time { return testNow }
	return s
}

func TestCreateFuelExpense(t *testing.T) {
	expenses := new(mockExpenseStore)
	vehicles := new(mockVehicleStore)
	s := newExpenseService(expenses, vehicles)
	ctx := context.Background()

	vehicle := availableVehicle()
	vehicles.On("Get", ctx, vehicle.ID).Return(vehicle, nil)

	liters := 80.0
	expenses.On("Create", ctx, mock.MatchedBy(func(e model.Expense) bool {
		return e.Type == model.ExpenseTypeFuel &&
			e.Liters == 80 &&
			e.Cost == 120 &&
			e.Date.Equal(testNow)
	})).Return(&model.Expense{ID: uuid.New()}, nil)

	_, err := s.Create(ctx, CreateExpenseInput{
		VehicleID: vehicle.ID,
		Type:      model.ExpenseTypeFuel,
		Liters:    &liters,
		Cost:      120,
	})

	require.NoError(t, err)
	expenses.AssertExpectations(t)
	expenses.AssertNotCalled(t, "CreateWithVehicleInShop", mock.Anything, mock.Anything)
}

func TestCreateFuelExpenseDefaultsLiters(t *testing.T) {
	expenses := new(mockExpenseStore)
	vehicles := new(mockVehicleStore)
	s := newExpenseService(expenses, vehicles)
	ctx := context.Background()

	vehicle := availableVehicle()
	vehicles.On("Get", ctx, vehicle.ID).Return(vehicle, nil)
	expenses.On("Create", ctx, mock.MatchedBy(func(e model.Expense) bool {
		return e.Liters == 0
	})).Return(&model.Expense{ID: uuid.New()}, nil)

	_, err := s.Create(ctx, CreateExpenseInput{
		VehicleID: vehicle.ID,
		Type:      model.ExpenseTypeFuel,
		Cost:      55,
	})

	require.NoError(t, err)
	expenses.AssertExpectations(t)
}

func TestCreateMaintenanceExpenseMovesVehicleInShop(t *testing.T) {
	expenses := new(mockExpenseStore)
	vehicles := new(mockVehicleStore)
	s := newExpenseService(expenses, vehicles)
	ctx := context.Background()

	vehicle := availableVehicle()
	vehicles.On("Get", ctx, vehicle.ID).Return(vehicle, nil)

	date := testNow.AddDate(0, 0, -1)
	expenses.On("CreateWithVehicleInShop", ctx, mock.MatchedBy(func(e model.Expense) bool {
		return e.Type == model.ExpenseTypeMaintenance && e.Date.Equal(date)
	})).Return(&model.Expense{ID: uuid.New()}, nil)

	_, err := s.Create(ctx, CreateExpenseInput{
		VehicleID: vehicle.ID,
		Type:      model.ExpenseTypeMaintenance,
		Cost:      400,
		Date:      &date,
	})

	require.NoError(t, err)
	expenses.AssertExpectations(t)
	expenses.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreateMaintenanceExpenseVehicleOnTrip(t *testing.T) {
	expenses := new(mockExpenseStore)
	vehicles := new(mockVehicleStore)
	s := newExpenseService(expenses, vehicles)
	ctx := context.Background()

	vehicle := availableVehicle()
	vehicle.Status = model.VehicleStatusOnTrip
	vehicles.On("Get", ctx, vehicle.ID).Return(vehicle, nil)

	_, err := s.Create(ctx, CreateExpenseInput{
		VehicleID: vehicle.ID,
		Type:      model.ExpenseTypeMaintenance,
		Cost:      400,
	})

	assert.ErrorIs(t, err, ErrConflict)
	assert.Contains(t, err.Error(), "cannot log maintenance for a vehicle currently on a trip")
	expenses.AssertNotCalled(t, "CreateWithVehicleInShop", mock.Anything, mock.Anything)
}

func TestCreateExpenseInvalidType(t *testing.T) {
	expenses := new(mockExpenseStore)
	vehicles := new(mockVehicleStore)
	s := newExpenseService(expenses, vehicles)

	_, err := s.Create(context.Background(), CreateExpenseInput{
		VehicleID: uuid.New(),
		Type:      model.ExpenseType("Tolls"),
		Cost:      10,
	})

	assert.ErrorIs(t, err, ErrValidation)
	vehicles.AssertNotCalled(t, "Get", mock.Anything, mock.Anything)
}
