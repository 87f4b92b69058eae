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

type TripStore interface {
	List(ctx context.Context, status *model.TripStatus) ([]model.TripRecord, error)
	Get(ctx context.Context, id uuid.UUID) (*model.TripRecord, error)
	GetTrip(ctx context.Context, id uuid.UUID) (*model.Trip, error)
	Dispatch(ctx context.Context, trip model.Trip) (*model.Trip, error)
	Complete(ctx context.Context, trip model.Trip) (*model.Trip, error)
	Cancel(ctx context.Context, trip model.Trip, release bool) (*model.Trip, error)
}

// TripService drives the trip lifecycle. Dispatch validates against the
// vehicle and driver it reads, then relies on the repository's guarded
// updates to catch concurrent state changes.
type TripService struct {
	trips    TripStore
	vehicles VehicleStore
	drivers  DriverStore

	now func() time.Time
}

func NewTripService(trips TripStore, vehicles VehicleStore, drivers DriverStore) *TripService {
	return &TripService{
		trips:    trips,
		vehicles: vehicles,
		drivers:  drivers,
		now:      time.Now,
	}
}

func (s *TripService) List(ctx context.Context, status *model.TripStatus) ([]model.TripRecord, error) {
	if status != nil && !status.Valid() {
		return nil, fmt.Errorf("%w: invalid trip status filter", ErrValidation)
	}
	return s.trips.List(ctx, status)
}

func (s *TripService) Get(ctx context.Context, id uuid.UUID) (*model.TripRecord, error) {
	record, err := s.trips.Get(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: trip not found", ErrNotFound)
		}
		return nil, err
	}
	return record, nil
}

type DispatchTripInput struct {
	VehicleID   uuid.UUID
	DriverID    uuid.UUID
	CargoWeight float64
	Origin      string
	Destination string
	Revenue     float64
}

// Dispatch checks vehicle and driver eligibility in a fixed order so that
// the first failing rule is the one reported. The start odometer is taken
// from the vehicle at dispatch time.
func (s *TripService) Dispatch(ctx context.Context, input DispatchTripInput) (*model.TripRecord, error) {
	vehicle, err := s.vehicles.Get(ctx, input.VehicleID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: vehicle not found", ErrValidation)
		}
		return nil, err
	}
	if vehicle.Status != model.VehicleStatusAvailable {
		return nil, fmt.Errorf("%w: vehicle is not available (current status: %s)", ErrConflict, vehicle.Status)
	}

	driver, err := s.drivers.Get(ctx, input.DriverID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: driver not found", ErrValidation)
		}
		return nil, err
	}
	if driver.Status != model.DriverStatusOnDuty {
		return nil, fmt.Errorf("%w: driver is not on duty (current status: %s)", ErrConflict, driver.Status)
	}
	if driver.LicenseExpiry.Before(s.now()) {
		return nil, fmt.Errorf("%w: driver license has expired", ErrValidation)
	}

	if input.CargoWeight > vehicle.MaxCapacity {
		return nil, fmt.Errorf("%w: cargo weight (%gkg) exceeds vehicle capacity (%gkg)",
			ErrValidation, input.CargoWeight, vehicle.MaxCapacity)
	}

	trip := model.Trip{
		VehicleID:     input.VehicleID,
		DriverID:      input.DriverID,
		CargoWeight:   input.CargoWeight,
		Origin:        input.Origin,
		Destination:   input.Destination,
		StartOdometer: vehicle.Odometer,
		Revenue:       input.Revenue,
		Status:        model.TripStatusDispatched,
	}

	saved, err := s.trips.Dispatch(ctx, trip)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrVehicleNotAvailable):
			return nil, fmt.Errorf("%w: vehicle is not available", ErrConflict)
		case errors.Is(err, repository.ErrDriverNotOnDuty):
			return nil, fmt.Errorf("%w: driver is not on duty", ErrConflict)
		}
		return nil, err
	}

	return s.Get(ctx, saved.ID)
}

type CompleteTripInput struct {
	EndOdometer float64
	Revenue     *float64
}

// Complete records the final odometer reading, derives the distance and
// releases the vehicle and driver. Revenue may be revised at completion.
func (s *TripService) Complete(ctx context.Context, id uuid.UUID, input CompleteTripInput) (*model.TripRecord, error) {
	trip, err := s.trips.GetTrip(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: trip not found", ErrNotFound)
		}
		return nil, err
	}

	if trip.Status != model.TripStatusDispatched {
		return nil, fmt.Errorf("%w: only dispatched trips can be completed", ErrConflict)
	}
	if input.EndOdometer <= trip.StartOdometer {
		return nil, fmt.Errorf("%w: end odometer must be greater than start odometer", ErrValidation)
	}

	trip.EndOdometer = &input.EndOdometer
	trip.Distance = input.EndOdometer - trip.StartOdometer
	if input.Revenue != nil {
		trip.Revenue = *input.Revenue
	}

	saved, err := s.trips.Complete(ctx, *trip)
	if err != nil {
		if errors.Is(err, repository.ErrTripNotDispatched) {
			return nil, fmt.Errorf("%w: only dispatched trips can be completed", ErrConflict)
		}
		return nil, err
	}

	return s.Get(ctx, saved.ID)
}

// Cancel voids a trip. A dispatched trip releases its vehicle and driver;
// cancelling an already cancelled trip is a no-op rewrite of the same
// status. Completed trips stay completed.
func (s *TripService) Cancel(ctx context.Context, id uuid.UUID) (*model.Trip, error) {
	trip, err := s.trips.GetTrip(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: trip not found", ErrNotFound)
		}
		return nil, err
	}

	if trip.Status == model.TripStatusCompleted {
		return nil, fmt.Errorf("%w: cannot cancel a completed trip", ErrConflict)
	}

	release := trip.Status == model.TripStatusDispatched
	saved, err := s.trips.Cancel(ctx, *trip, release)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: trip not found", ErrNotFound)
		}
		return nil, err
	}
	return saved, nil
}
