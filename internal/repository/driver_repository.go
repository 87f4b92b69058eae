package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/nurpe/fleetops/internal/model"
)

const driverColumns = `
	id, name, license_number, license_expiry, category, status, safety_score, created_at, updated_at`

type DriverRepository struct {
	db *gorm.DB
}

func NewDriverRepository(db *gorm.DB) *DriverRepository {
	return &DriverRepository{db: db}
}

func (r *DriverRepository) List(ctx context.Context, status *model.DriverStatus) ([]model.Driver, error) {
	query := `SELECT` + driverColumns + `
		FROM drivers
		ORDER BY created_at DESC`
	args := []interface{}{}
	if status != nil {
		query = `SELECT` + driverColumns + `
			FROM drivers
			WHERE status = ?
			ORDER BY created_at DESC`
		args = append(args, *status)
	}

	var drivers []model.Driver
	if err := r.db.WithContext(ctx).Raw(query, args...).Scan(&drivers).Error; err != nil {
		return nil, err
	}
	return drivers, nil
}

func (r *DriverRepository) Get(ctx context.Context, id uuid.UUID) (*model.Driver, error) {
	var driver model.Driver
	if err := r.db.WithContext(ctx).Raw(`SELECT`+driverColumns+`
		FROM drivers
		WHERE id = ?
		LIMIT 1
	`, id).Scan(&driver).Error; err != nil {
		return nil, err
	}
	if driver.ID == uuid.Nil {
		return nil, gorm.ErrRecordNotFound
	}
	return &driver, nil
}

func (r *DriverRepository) GetByLicenseNumber(ctx context.Context, licenseNumber string) (*model.Driver, error) {
	var driver model.Driver
	if err := r.db.WithContext(ctx).Raw(`SELECT`+driverColumns+`
		FROM drivers
		WHERE license_number = ?
		LIMIT 1
	`, licenseNumber).Scan(&driver).Error; err != nil {
		return nil, err
	}
	if driver.ID == uuid.Nil {
		return nil, gorm.ErrRecordNotFound
	}
	return &driver, nil
}

func (r *DriverRepository) Create(ctx context.Context, driver model.Driver) (*model.Driver, error) {
	var saved model.Driver
	err := r.db.WithContext(ctx).Raw(`
		INSERT INTO drivers (name, license_number, license_expiry, category, status, safety_score)
		VALUES (?, ?, ?, ?, ?, ?)
		RETURNING`+driverColumns+`
	`,
		driver.Name,
		driver.LicenseNumber,
		driver.LicenseExpiry,
		driver.Category,
		driver.Status,
		driver.SafetyScore,
	).Scan(&saved).Error
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrDuplicateKey
		}
		return nil, err
	}
	return &saved, nil
}

func (r *DriverRepository) Update(ctx context.Context, driver model.Driver) (*model.Driver, error) {
	var saved model.Driver
	err := r.db.WithContext(ctx).Raw(`
		UPDATE drivers
		SET name = ?, license_number = ?, license_expiry = ?, category = ?, status = ?, safety_score = ?, updated_at = NOW()
		WHERE id = ?
		RETURNING`+driverColumns+`
	`,
		driver.Name,
		driver.LicenseNumber,
		driver.LicenseExpiry,
		driver.Category,
		driver.Status,
		driver.SafetyScore,
		driver.ID,
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

func (r *DriverRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Exec(`DELETE FROM drivers WHERE id = ?`, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
