package model

import (
	"time"

	"github.com/google/uuid"
)

type VehicleType string

const (
	VehicleTypeTruck VehicleType = "Truck"
	VehicleTypeVan   VehicleType = "Van"
	VehicleTypeBike  VehicleType = "Bike"
)

func (t VehicleType) Valid() bool {
	switch t {
	case VehicleTypeTruck, VehicleTypeVan, VehicleTypeBike:
		return true
	}
	return false
}

type VehicleStatus string

const (
	VehicleStatusAvailable VehicleStatus = "Available"
	VehicleStatusOnTrip    VehicleStatus = "OnTrip"
	VehicleStatusInShop    VehicleStatus = "InShop"
	VehicleStatusRetired   VehicleStatus = "Retired"
)

func (s VehicleStatus) Valid() bool {
	switch s {
	case VehicleStatusAvailable, VehicleStatusOnTrip, VehicleStatusInShop, VehicleStatusRetired:
		return true
	}
	return false
}

type Vehicle struct {
	ID              uuid.UUID     `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()" json:"id"`
	Name            string        `gorm:"type:varchar(128);not null" json:"name"`
	LicensePlate    string        `gorm:"type:varchar(32);uniqueIndex;not null" json:"licensePlate"`
	Type            VehicleType   `gorm:"type:vehicle_type;not null" json:"type"`
	MaxCapacity     float64       `gorm:"not null" json:"maxCapacity"`
	Odometer        float64       `gorm:"not null;default:0" json:"odometer"`
	Status          VehicleStatus `gorm:"type:vehicle_status;not null;default:'Available'" json:"status"`
	AcquisitionCost float64       `gorm:"not null" json:"acquisitionCost"`
	CreatedAt       time.Time     `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt       time.Time     `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (Vehicle) TableName() string {
	return "vehicles"
}

// VehicleBrief is the embedded vehicle view attached to trip, expense and
// maintenance responses.
type VehicleBrief struct {
	ID           uuid.UUID     `json:"id"`
	Name         string        `json:"name"`
	LicensePlate string        `json:"licensePlate"`
	Type         VehicleType   `json:"type"`
	MaxCapacity  float64       `json:"maxCapacity"`
	Odometer     float64       `json:"odometer"`
	Status       VehicleStatus `json:"status"`
}
