package model

import (
	"time"

	"github.com/google/uuid"
)

type DriverCategory string

const (
	DriverCategoryTruck DriverCategory = "Truck"
	DriverCategoryVan   DriverCategory = "Van"
)

func (c DriverCategory) Valid() bool {
	return c == DriverCategoryTruck || c == DriverCategoryVan
}

type DriverStatus string

const (
	DriverStatusOnDuty    DriverStatus = "OnDuty"
	DriverStatusOffDuty   DriverStatus = "OffDuty"
	DriverStatusSuspended DriverStatus = "Suspended"
	DriverStatusOnTrip    DriverStatus = "OnTrip"
)

func (s DriverStatus) Valid() bool {
	switch s {
	case DriverStatusOnDuty, DriverStatusOffDuty, DriverStatusSuspended, DriverStatusOnTrip:
		return true
	}
	return false
}

type Driver struct {
	ID            uuid.UUID      `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()" json:"id"`
	Name          string         `gorm:"type:varchar(128);not null" json:"name"`
	LicenseNumber string         `gorm:"type:varchar(64);uniqueIndex;not null" json:"licenseNumber"`
	LicenseExpiry time.Time      `gorm:"not null" json:"licenseExpiry"`
	Category      DriverCategory `gorm:"type:driver_category;not null" json:"category"`
	Status        DriverStatus   `gorm:"type:driver_status;not null;default:'OnDuty'" json:"status"`
	SafetyScore   float64        `gorm:"not null;default:100" json:"safetyScore"`
	CreatedAt     time.Time      `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt     time.Time      `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (Driver) TableName() string {
	return "drivers"
}

type DriverBrief struct {
	ID            uuid.UUID    `json:"id"`
	Name          string       `json:"name"`
	LicenseNumber string       `json:"licenseNumber"`
	Status        DriverStatus `json:"status"`
}
