package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/nurpe/fleetops/internal/model"
	"github.com/nurpe/fleetops/internal/repository"
)

func TestCreateVehicleDuplicatePlate(t *testing.T) {
	vehicles := new(mockVehicleStore)
	s := NewVehicleService(vehicles)
	ctx := context.Background()

	vehicles.On("GetByPlate", ctx, "KZ-001-AA").Return(availableVehicle(), nil)

	_, err := s.Create(ctx, CreateVehicleInput{
		Name:         "Second Truck",
		LicensePlate: "KZ-001-AA",
		Type:         model.VehicleTypeTruck,
		MaxCapacity:  10000,
	})

	assert.ErrorIs(t, err, ErrValidation)
	assert.Contains(t, err.Error(), "vehicle with this license plate already exists")
	vehicles.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreateVehicleDuplicatePlateRace(t *testing.T) {
	vehicles := new(mockVehicleStore)
	s := NewVehicleService(vehicles)
	ctx := context.Background()

	// The pre-check passes but a concurrent insert wins the unique index.
	vehicles.On("GetByPlate", ctx, "KZ-001-AA").Return(nil, gorm.ErrRecordNotFound)
	vehicles.On("Create", ctx, mock.Anything).Return(nil, repository.ErrDuplicateKey)

	_, err := s.Create(ctx, CreateVehicleInput{
		Name:         "Second Truck",
		LicensePlate: "KZ-001-AA",
		Type:         model.VehicleTypeTruck,
		MaxCapacity:  10000,
	})

	assert.ErrorIs(t, err, ErrValidation)
	assert.Contains(t, err.Error(), "vehicle with this license plate already exists")
}

func TestCreateVehicleDefaults(t *testing.T) {
	vehicles := new(mockVehicleStore)
	s := NewVehicleService(vehicles)
	ctx := context.Background()

	vehicles.On("GetByPlate", ctx, "KZ-777-BB").Return(nil, gorm.ErrRecordNotFound)
	vehicles.On("Create", ctx, mock.MatchedBy(func(v model.Vehicle) bool {
		return v.Status == model.VehicleStatusAvailable && v.Odometer == 0
	})).Return(&model.Vehicle{ID: uuid.New()}, nil)

	_, err := s.Create(ctx, CreateVehicleInput{
		Name:         "Ford Transit",
		LicensePlate: "KZ-777-BB",
		Type:         model.VehicleTypeVan,
		MaxCapacity:  1500,
	})

	require.NoError(t, err)
	vehicles.AssertExpectations(t)
}

func TestCreateVehicleInvalidType(t *testing.T) {
	vehicles := new(mockVehicleStore)
	s := NewVehicleService(vehicles)

	_, err := s.Create(context.Background(), CreateVehicleInput{
		Name:         "Mystery",
		LicensePlate: "KZ-000-XX",
		Type:         model.VehicleType("Hovercraft"),
		MaxCapacity:  100,
	})

	assert.ErrorIs(t, err, ErrValidation)
	assert.Contains(t, err.Error(), "invalid vehicle type")
}

func TestUpdateVehiclePartialMerge(t *testing.T) {
	vehicles := new(mockVehicleStore)
	s := NewVehicleService(vehicles)
	ctx := context.Background()

	vehicle := availableVehicle()
	vehicles.On("Get", ctx, vehicle.ID).Return(vehicle, nil)

	newName := "Volvo FH16 (refit)"
	vehicles.On("Update", ctx, mock.MatchedBy(func(v model.Vehicle) bool {
		return v.Name == newName &&
			v.LicensePlate == vehicle.LicensePlate &&
			v.MaxCapacity == vehicle.MaxCapacity
	})).Return(vehicle, nil)

	_, err := s.Update(ctx, vehicle.ID, UpdateVehicleInput{Name: &newName})

	require.NoError(t, err)
	vehicles.AssertExpectations(t)
}

func TestUpdateVehicleStatusDirect(t *testing.T) {
	vehicles := new(mockVehicleStore)
	s := NewVehicleService(vehicles)
	ctx := context.Background()

	vehicle := availableVehicle()
	vehicles.On("Get", ctx, vehicle.ID).Return(vehicle, nil)

	retired := model.VehicleStatusRetired
	vehicles.On("Update", ctx, mock.MatchedBy(func(v model.Vehicle) bool {
		return v.Status == model.VehicleStatusRetired
	})).Return(vehicle, nil)

	_, err := s.Update(ctx, vehicle.ID, UpdateVehicleInput{Status: &retired})

	require.NoError(t, err)
	vehicles.AssertExpectations(t)
}

func TestGetVehicleNotFound(t *testing.T) {
	vehicles := new(mockVehicleStore)
	s := NewVehicleService(vehicles)
	ctx := context.Background()

	id := uuid.New()
	vehicles.On("Get", ctx, id).Return(nil, gorm.ErrRecordNotFound)

	_, err := s.Get(ctx, id)

	assert.ErrorIs(t, err, ErrNotFound)
	assert.Contains(t, err.Error(), "vehicle not found")
}

func TestListVehiclesInvalidStatusFilter(t *testing.T) {
	vehicles := new(mockVehicleStore)
	s := NewVehicleService(vehicles)

	status := model.VehicleStatus("Parked")
	_, err := s.List(context.Background(), &status)

	assert.ErrorIs(t, err, ErrValidation)
	vehicles.AssertNotCalled(t, "List", mock.Anything, mock.Anything)
}
