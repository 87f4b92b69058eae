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

type DriverStore interface {
	List(ctx context.Context, status *model.DriverStatus) ([]model.Driver, error)
	Get(ctx context.Context, id uuid.UUID) (*model.Driver, error)
	GetByLicenseNumber(ctx context.Context, licenseNumber string) (*model.Driver, error)
	Create(ctx context.Context, driver model.Driver) (*model.Driver, error)
	Update(ctx context.Context, driver model.Driver) (*model.Driver, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type DriverService struct {
	drivers DriverStore
}

func NewDriverService(drivers DriverStore) *DriverService {
	return &DriverService{drivers: drivers}
}

func (s *DriverService) List(ctx context.Context, status *model.DriverStatus) ([]model.Driver, error) {
	if status != nil && !status.Valid() {
		return nil, fmt.Errorf("%w: invalid driver status filter", ErrValidation)
	}
	return s.drivers.List(ctx, status)
}

func (s *DriverService) Get(ctx context.Context, id uuid.UUID) (*model.Driver, error) {
	driver, err := s.drivers.Get(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: driver not found", ErrNotFound)
		}
		return nil, err
	}
	return driver, nil
}

type CreateDriverInput struct {
	Name          string
	LicenseNumber string
	LicenseExpiry time.Time
	Category      model.DriverCategory
	Status        *model.DriverStatus
	SafetyScore   *float64
}

func (s *DriverService) Create(ctx context.Context, input CreateDriverInput) (*model.Driver, error) {
	if !input.Category.Valid() {
		return nil, fmt.Errorf("%w: invalid driver category", ErrValidation)
	}
	if input.Status != nil && !input.Status.Valid() {
		return nil, fmt.Errorf("%w: invalid driver status", ErrValidation)
	}
	if input.SafetyScore != nil && (*input.SafetyScore < 0 || *input.SafetyScore > 100) {
		return nil, fmt.Errorf("%w: safety score must be between 0 and 100", ErrValidation)
	}

	if err := s.checkLicenseFree(ctx, input.LicenseNumber); err != nil {
		return nil, err
	}

	driver := model.Driver{
		Name:          input.Name,
		LicenseNumber: input.LicenseNumber,
		LicenseExpiry: input.LicenseExpiry,
		Category:      input.Category,
		Status:        model.DriverStatusOnDuty,
		SafetyScore:   100,
	}
	if input.Status != nil {
		driver.Status = *input.Status
	}
	if input.SafetyScore != nil {
		driver.SafetyScore = *input.SafetyScore
	}

	saved, err := s.drivers.Create(ctx, driver)
	if err != nil {
		return nil, mapDuplicateLicense(err)
	}
	return saved, nil
}

type UpdateDriverInput struct {
	Name          *string
	LicenseNumber *string
	LicenseExpiry *time.Time
	Category      *model.DriverCategory
	Status        *model.DriverStatus
	SafetyScore   *float64
}

func (s *DriverService) Update(ctx context.Context, id uuid.UUID, input UpdateDriverInput) (*model.Driver, error) {
	driver, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Category != nil && !input.Category.Valid() {
		return nil, fmt.Errorf("%w: invalid driver category", ErrValidation)
	}
	if input.Status != nil && !input.Status.Valid() {
		return nil, fmt.Errorf("%w: invalid driver status", ErrValidation)
	}
	if input.SafetyScore != nil && (*input.SafetyScore < 0 || *input.SafetyScore > 100) {
		return nil, fmt.Errorf("%w: safety score must be between 0 and 100", ErrValidation)
	}

	if input.LicenseNumber != nil && *input.LicenseNumber != driver.LicenseNumber {
		if err := s.checkLicenseFree(ctx, *input.LicenseNumber); err != nil {
			return nil, err
		}
		driver.LicenseNumber = *input.LicenseNumber
	}
	if input.Name != nil {
		driver.Name = *input.Name
	}
	if input.LicenseExpiry != nil {
		driver.LicenseExpiry = *input.LicenseExpiry
	}
	if input.Category != nil {
		driver.Category = *input.Category
	}
	if input.Status != nil {
		driver.Status = *input.Status
	}
	if input.SafetyScore != nil {
		driver.SafetyScore = *input.SafetyScore
	}

	saved, err := s.drivers.Update(ctx, *driver)
	if err != nil {
		return nil, mapDuplicateLicense(err)
	}
	return saved, nil
}

// ToggleStatus flips OnDuty and OffDuty and clears a suspension back to
// OnDuty. A driver on a trip cannot be toggled; trip completion or
// cancellation is the only way out of OnTrip.
func (s *DriverService) ToggleStatus(ctx context.Context, id uuid.UUID) (*model.Driver, error) {
	driver, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if driver.Status == model.DriverStatusOnTrip {
		return nil, fmt.Errorf("%w: cannot change status while driver is on a trip", ErrConflict)
	}

	switch driver.Status {
	case model.DriverStatusOnDuty:
		driver.Status = model.DriverStatusOffDuty
	case model.DriverStatusOffDuty:
		driver.Status = model.DriverStatusOnDuty
	case model.DriverStatusSuspended:
		driver.Status = model.DriverStatusOnDuty
	}

	return s.drivers.Update(ctx, *driver)
}

func (s *DriverService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.drivers.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: driver not found", ErrNotFound)
		}
		return err
	}
	return nil
}

// mapDuplicateLicense covers the race the pre-check cannot: the unique
// index rejecting a concurrent write of the same license number.
func mapDuplicateLicense(err error) error {
	if errors.Is(err, repository.ErrDuplicateKey) {
		return fmt.Errorf("%w: driver with this license number already exists", ErrValidation)
	}
	return err
}

func (s *DriverService) checkLicenseFree(ctx context.Context, licenseNumber string) error {
	_, err := s.drivers.GetByLicenseNumber(ctx, licenseNumber)
	if err == nil {
		return fmt.Errorf("%w: driver with this license number already exists", ErrValidation)
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil
	}
	return err
}
