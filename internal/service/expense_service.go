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

type ExpenseStore interface {
	List(ctx context.Context, filter repository.ExpenseFilter) ([]model.ExpenseRecord, error)
	Get(ctx context.Context, id uuid.UUID) (*model.ExpenseRecord, error)
	Create(ctx context.Context, expense model.Expense) (*model.Expense, error)
	CreateWithVehicleInShop(ctx context.Context, expense model.Expense) (*model.Expense, error)
	TotalsByVehicle(ctx context.Context) ([]model.VehicleExpenseSummary, error)
}

type ExpenseService struct {
	expenses ExpenseStore
	vehicles VehicleStore

	now func() time.Time
}

func NewExpenseService(expenses ExpenseStore, vehicles VehicleStore) *ExpenseService {
	return &ExpenseService{
		expenses: expenses,
		vehicles: vehicles,
		now:      time.Now,
	}
}

func (s *ExpenseService) List(ctx context.Context, filter repository.ExpenseFilter) ([]model.ExpenseRecord, error) {
	if filter.Type != nil && !filter.Type.Valid() {
		return nil, fmt.Errorf("%w: invalid expense type filter", ErrValidation)
	}
	return s.expenses.List(ctx, filter)
}

func (s *ExpenseService) Get(ctx context.Context, id uuid.UUID) (*model.ExpenseRecord, error) {
	record, err := s.expenses.Get(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: expense not found", ErrNotFound)
		}
		return nil, err
	}
	return record, nil
}

type CreateExpenseInput struct {
	VehicleID uuid.UUID
	Type      model.ExpenseType
	Liters    *float64
	Cost      float64
	Date      *time.Time
}

// Create books an expense against a vehicle. A Maintenance expense logged
// directly here also moves the vehicle into the shop; vehicles on a trip
// reject that.
func (s *ExpenseService) Create(ctx context.Context, input CreateExpenseInput) (*model.Expense, error) {
	if !input.Type.Valid() {
		return nil, fmt.Errorf("%w: invalid expense type", ErrValidation)
	}

	vehicle, err := s.vehicles.Get(ctx, input.VehicleID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: vehicle not found", ErrValidation)
		}
		return nil, err
	}

	expense := model.Expense{
		VehicleID: input.VehicleID,
		Type:      input.Type,
		Cost:      input.Cost,
		Date:      s.now(),
	}
	if input.Liters != nil {
		expense.Liters = *input.Liters
	}
	if input.Date != nil {
		expense.Date = *input.Date
	}

	if input.Type == model.ExpenseTypeMaintenance {
		if vehicle.Status == model.VehicleStatusOnTrip {
			return nil, fmt.Errorf("%w: cannot log maintenance for a vehicle currently on a trip", ErrConflict)
		}
		saved, err := s.expenses.CreateWithVehicleInShop(ctx, expense)
		if err != nil {
			if errors.Is(err, repository.ErrVehicleOnTrip) {
				return nil, fmt.Errorf("%w: cannot log maintenance for a vehicle currently on a trip", ErrConflict)
			}
			return nil, err
		}
		return saved, nil
	}

	return s.expenses.Create(ctx, expense)
}

func (s *ExpenseService) TotalsByVehicle(ctx context.Context) ([]model.VehicleExpenseSummary, error) {
	return s.expenses.TotalsByVehicle(ctx)
}
