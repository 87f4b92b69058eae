package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/nurpe/fleetops/internal/model"
	"github.com/nurpe/fleetops/internal/repository"
)

type MaintenanceStore interface {
	List(ctx context.Context, filter repository.MaintenanceFilter) ([]model.MaintenanceRecord, error)
	Get(ctx context.Context, id uuid.UUID) (*model.MaintenanceRecord, error)
	GetLog(ctx context.Context, id uuid.UUID) (*model.Maintenance, error)
	CreateWithExpense(ctx context.Context, log model.Maintenance, expense model.Expense) (*model.Maintenance, error)
	Complete(ctx context.Context, log model.Maintenance) (*model.Maintenance, error)
	Delete(ctx context.Context, id uuid.UUID, releaseVehicleID *uuid.UUID) error
	Summary(ctx context.Context) ([]model.MaintenanceSummaryRow, error)
}

type MaintenanceService struct {
	maintenance MaintenanceStore
	vehicles    VehicleStore

	now func() time.Time
}

func NewMaintenanceService(maintenance MaintenanceStore, vehicles VehicleStore) *MaintenanceService {
	return &MaintenanceService{
		maintenance: maintenance,
		vehicles:    vehicles,
		now:         time.Now,
	}
}

func (s *MaintenanceService) List(ctx context.Context, filter repository.MaintenanceFilter) ([]model.MaintenanceRecord, error) {
	if filter.Status != nil && !filter.Status.Valid() {
		return nil, fmt.Errorf("%w: invalid maintenance status filter", ErrValidation)
	}
	if filter.Type != nil && !filter.Type.Valid() {
		return nil, fmt.Errorf("%w: invalid maintenance type filter", ErrValidation)
	}
	return s.maintenance.List(ctx, filter)
}

func (s *MaintenanceService) Get(ctx context.Context, id uuid.UUID) (*model.MaintenanceRecord, error) {
	record, err := s.maintenance.Get(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: maintenance log not found", ErrNotFound)
		}
		return nil, err
	}
	return record, nil
}

type CreateMaintenanceInput struct {
	VehicleID         uuid.UUID
	Type              model.MaintenanceType
	Description       string
	Cost              float64
	ScheduledDate     *time.Time
	OdometerAtService *float64
	Notes             string
}

// Create opens an in-progress service log, sends the vehicle into the shop
// and books the cost as a maintenance expense, all in one transaction. The
// odometer reading defaults to the vehicle's current value.
func (s *MaintenanceService) Create(ctx context.Context, input CreateMaintenanceInput) (*model.Maintenance, error) {
	if !input.Type.Valid() {
		return nil, fmt.Errorf("%w: invalid maintenance type", ErrValidation)
	}

	vehicle, err := s.vehicles.Get(ctx, input.VehicleID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: vehicle not found", ErrValidation)
		}
		return nil, err
	}
	if vehicle.Status == model.VehicleStatusOnTrip {
		return nil, fmt.Errorf("%w: cannot schedule maintenance for a vehicle currently on a trip", ErrConflict)
	}

	scheduled := s.now()
	if input.ScheduledDate != nil {
		scheduled = *input.ScheduledDate
	}
	odometer := vehicle.Odometer
	if input.OdometerAtService != nil {
		odometer = *input.OdometerAtService
	}

	log := model.Maintenance{
		VehicleID:         input.VehicleID,
		Type:              input.Type,
		Description:       input.Description,
		Cost:              input.Cost,
		Status:            model.MaintenanceStatusInProgress,
		ScheduledDate:     scheduled,
		OdometerAtService: odometer,
		Notes:             input.Notes,
	}
	expense := model.Expense{
		VehicleID: input.VehicleID,
		Type:      model.ExpenseTypeMaintenance,
		Liters:    0,
		Cost:      input.Cost,
		Date:      scheduled,
	}

	saved, err := s.maintenance.CreateWithExpense(ctx, log, expense)
	if err != nil {
		if errors.Is(err, repository.ErrVehicleOnTrip) {
			return nil, fmt.Errorf("%w: cannot schedule maintenance for a vehicle currently on a trip", ErrConflict)
		}
		return nil, err
	}
	return saved, nil
}

type CompleteMaintenanceInput struct {
	Notes string
	Cost  float64
}

// Complete closes the log and puts the vehicle back in service if it is
// still in the shop. Notes and cost are overridden only when provided;
// a revised cost does not adjust the expense booked at creation.
func (s *MaintenanceService) Complete(ctx context.Context, id uuid.UUID, input CompleteMaintenanceInput) (*model.Maintenance, error) {
	log, err := s.maintenance.GetLog(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: maintenance log not found", ErrNotFound)
		}
		return nil, err
	}

	if log.Status == model.MaintenanceStatusCompleted {
		return nil, fmt.Errorf("%w: maintenance already completed", ErrConflict)
	}

	completed := s.now()
	log.CompletedDate = &completed
	if input.Notes != "" {
		log.Notes = input.Notes
	}
	if input.Cost != 0 {
		log.Cost = input.Cost
	}

	saved, err := s.maintenance.Complete(ctx, *log)
	if err != nil {
		if errors.Is(err, repository.ErrMaintenanceCompleted) {
			return nil, fmt.Errorf("%w: maintenance already completed", ErrConflict)
		}
		return nil, err
	}
	return saved, nil
}

// Delete removes the log. An in-progress log also releases its vehicle
// back to Available, matching what completion would have done.
func (s *MaintenanceService) Delete(ctx context.Context, id uuid.UUID) error {
	log, err := s.maintenance.GetLog(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: maintenance log not found", ErrNotFound)
		}
		return err
	}

	var release *uuid.UUID
	if log.Status == model.MaintenanceStatusInProgress {
		release = &log.VehicleID
	}

	if err := s.maintenance.Delete(ctx, id, release); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: maintenance log not found", ErrNotFound)
		}
		return err
	}
	return nil
}

func (s *MaintenanceService) Summary(ctx context.Context) ([]model.MaintenanceSummaryRow, error) {
	return s.maintenance.Summary(ctx)
}
