package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/nurpe/fleetops/internal/model"
)

const vehicleColumns = `
	id, name, license_plate, type, max_capacity, odometer, status, acquisition_cost, created_at, updated_at`

type VehicleRepository struct {
	db *gorm.DB
}

func NewVehicleRepository(db *gorm.DB) *VehicleRepository {
	return &VehicleRepository{db: db}
}

func (r *VehicleRepository) List(ctx context.Context, status *model.VehicleStatus) ([]model.Vehicle, error) {
	query := `SELECT` + vehicleColumns + `
		FROM vehicles
		ORDER BY created_at DESC`
	args := []interface{}{}
	if status != nil {
		query = `SELECT` + vehicleColumns + `
			FROM vehicles
			WHERE status = ?
			ORDER BY created_at DESC`
		args = append(args, *status)
	}

	var vehicles []model.Vehicle
	if err := r.db.WithContext(ctx).Raw(query, args...).Scan(&vehicles).Error; err != nil {
		return nil, err
	}
	return vehicles, nil
}

func (r *VehicleRepository) Get(ctx context.Context, id uuid.UUID) (*model.Vehicle, error) {
	var vehicle model.Vehicle
	if err := r.db.WithContext(ctx).Raw(`SELECT`+vehicleColumns+`
		FROM vehicles
		WHERE id = ?
		LIMIT 1
	`, id).Scan(&vehicle).Error; err != nil {
		return nil, err
	}
	if vehicle.ID == uuid.Nil {
		return nil, gorm.ErrRecordNotFound
	}
	return &vehicle, nil
}

func (r *VehicleRepository) GetByPlate(ctx context.Context, plate string) (*model.Vehicle, error) {
	var vehicle model.Vehicle
	if err := r.db.WithContext(ctx).Raw(`SELECT`+vehicleColumns+`
		FROM vehicles
		WHERE license_plate = ?
		LIMIT 1
	`, plate).Scan(&vehicle).Error; err != nil {
		return nil, err
	}
	if vehicle.ID == uuid.Nil {
		return nil, gorm.ErrRecordNotFound
	}
	return &vehicle, nil
}

func (r *VehicleRepository) Create(ctx context.Context, vehicle model.Vehicle) (*model.Vehicle, error) {
	var saved model.Vehicle
	err := r.db.WithContext(ctx).Raw(`
		INSERT INTO vehicles (name, license_plate, type, max_capacity, odometer, status, acquisition_cost)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		RETURNING`+vehicleColumns+`
	`,
		vehicle.Name,
		vehicle.LicensePlate,
		vehicle.Type,
		vehicle.MaxCapacity,
		vehicle.Odometer,
		vehicle.Status,
		vehicle.AcquisitionCost,
	).Scan(&saved).Error
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrDuplicateKey
		}
		return nil, err
	}
	return &saved, nil
}

func (r *VehicleRepository) Update(ctx context.Context, vehicle model.Vehicle) (*model.Vehicle, error) {
	var saved model.Vehicle
	err := r.db.WithContext(ctx).Raw(`
		UPDATE vehicles
		SET name = ?, license_plate = ?, type = ?, max_capacity = ?, odometer = ?, status = ?, acquisition_cost = ?, updated_at = NOW()
		WHERE id = ?
		RETURNING`+vehicleColumns+`
	`,
		vehicle.Name,
		vehicle.LicensePlate,
		vehicle.Type,
		vehicle.MaxCapacity,
		vehicle.Odometer,
		vehicle.Status,
		vehicle.AcquisitionCost,
		vehicle.ID,
	).Scan(&saved).Error
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrDuplicateKey
		}
		return nil, err
	}
	if saved.ID == uuid.Nil {
		return nil, gorm.ErrRecordNotFound
	}
	return &saved, nil
}

func (r *VehicleRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Exec(`DELETE FROM vehicles WHERE id = ?`, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
