package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/nurpe/fleetops/internal/model"
	"github.com/nurpe/fleetops/internal/repository"
)

type VehicleStore interface {
	List(ctx context.Context, status *model.VehicleStatus) ([]model.Vehicle, error)
	Get(ctx context.Context, id uuid.UUID) (*model.Vehicle, error)
	GetByPlate(ctx context.Context, plate string) (*model.Vehicle, error)
	Create(ctx context.Context, vehicle model.Vehicle) (*model.Vehicle, error)
	Update(ctx context.Context, vehicle model.Vehicle) (*model.Vehicle, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type VehicleService struct {
	vehicles VehicleStore
}

func NewVehicleService(vehicles VehicleStore) *VehicleService {
	return &VehicleService{vehicles: vehicles}
}

func (s *VehicleService) List(ctx context.Context, status *model.VehicleStatus) ([]model.Vehicle, error) {
	if status != nil && !status.Valid() {
		return nil, fmt.Errorf("%w: invalid vehicle status filter", ErrValidation)
	}
	return s.vehicles.List(ctx, status)
}

func (s *VehicleService) Get(ctx context.Context, id uuid.UUID) (*model.Vehicle, error) {
	vehicle, err := s.vehicles.Get(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: vehicle not found", ErrNotFound)
		}
		return nil, err
	}
	return vehicle, nil
}

type CreateVehicleInput struct {
	Name            string
	LicensePlate    string
	Type            model.VehicleType
	MaxCapacity     float64
	Odometer        *float64
	Status          *model.VehicleStatus
	AcquisitionCost float64
}

func (s *VehicleService) Create(ctx context.Context, input CreateVehicleInput) (*model.Vehicle, error) {
	if !input.Type.Valid() {
		return nil, fmt.Errorf("%w: invalid vehicle type", ErrValidation)
	}
	if input.Status != nil && !input.Status.Valid() {
		return nil, fmt.Errorf("%w: invalid vehicle status", ErrValidation)
	}

	if err := s.checkPlateFree(ctx, input.LicensePlate); err != nil {
		return nil, err
	}

	vehicle := model.Vehicle{
		Name:            input.Name,
		LicensePlate:    input.LicensePlate,
		Type:            input.Type,
		MaxCapacity:     input.MaxCapacity,
		Status:          model.VehicleStatusAvailable,
		AcquisitionCost: input.AcquisitionCost,
	}
	if input.Odometer != nil {
		vehicle.Odometer = *input.Odometer
	}
	if input.Status != nil {
		vehicle.Status = *input.Status
	}

	saved, err := s.vehicles.Create(ctx, vehicle)
	if err != nil {
		return nil, mapDuplicatePlate(err)
	}
	return saved, nil
}

// UpdateVehicleInput is a partial merge: nil fields keep their stored
// value. Status is settable directly through this path and bypasses the
// lifecycle transitions.
type UpdateVehicleInput struct {
	Name            *string
	LicensePlate    *string
	Type            *model.VehicleType
	MaxCapacity     *float64
	Odometer        *float64
	Status          *model.VehicleStatus
	AcquisitionCost *float64
}

func (s *VehicleService) Update(ctx context.Context, id uuid.UUID, input UpdateVehicleInput) (*model.Vehicle, error) {
	vehicle, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Type != nil && !input.Type.Valid() {
		return nil, fmt.Errorf("%w: invalid vehicle type", ErrValidation)
	}
	if input.Status != nil && !input.Status.Valid() {
		return nil, fmt.Errorf("%w: invalid vehicle status", ErrValidation)
	}

	if input.LicensePlate != nil && *input.LicensePlate != vehicle.LicensePlate {
		if err := s.checkPlateFree(ctx, *input.LicensePlate); err != nil {
			return nil, err
		}
		vehicle.LicensePlate = *input.LicensePlate
	}
	if input.Name != nil {
		vehicle.Name = *input.Name
	}
	if input.Type != nil {
		vehicle.Type = *input.Type
	}
	if input.MaxCapacity != nil {
		vehicle.MaxCapacity = *input.MaxCapacity
	}
	if input.Odometer != nil {
		vehicle.Odometer = *input.Odometer
	}
	if input.Status != nil {
		vehicle.Status = *input.Status
	}
	if input.AcquisitionCost != nil {
		vehicle.AcquisitionCost = *input.AcquisitionCost
	}

	saved, err := s.vehicles.Update(ctx, *vehicle)
	if err != nil {
		return nil, mapDuplicatePlate(err)
	}
	return saved, nil
}

func (s *VehicleService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.vehicles.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: vehicle not found", ErrNotFound)
		}
		return err
	}
	return nil
}

// mapDuplicatePlate covers the race the pre-check cannot: two concurrent
// writes of the same plate where the unique index rejects the loser.
func mapDuplicatePlate(err error) error {
	if errors.Is(err, repository.ErrDuplicateKey) {
		return fmt.Errorf("%w: vehicle with this license plate already exists", ErrValidation)
	}
	return err
}

func (s *VehicleService) checkPlateFree(ctx context.Context, plate string) error {
	_, err := s.vehicles.GetByPlate(ctx, plate)
	if err == nil {
		return fmt.Errorf("%w: vehicle with this license plate already exists", ErrValidation)
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil
	}
	return err
}
