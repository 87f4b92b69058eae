package model

import (
	"time"

	"github.com/google/uuid"
)

type TripStatus string

// The legacy data model also declared a Draft status that no exposed
// operation could ever reach; dispatch creates trips directly in
// Dispatched, so Draft is not part of the enum here.
const (
	TripStatusDispatched TripStatus = "Dispatched"
	TripStatusCompleted  TripStatus = "Completed"
	TripStatusCancelled  TripStatus = "Cancelled"
)

func (s TripStatus) Valid() bool {
	switch s {
	case TripStatusDispatched, TripStatusCompleted, TripStatusCancelled:
		return true
	}
	return false
}

type Trip struct {
	ID            uuid.UUID  `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()" json:"id"`
	VehicleID     uuid.UUID  `gorm:"type:uuid;not null;index" json:"vehicleId"`
	DriverID      uuid.UUID  `gorm:"type:uuid;not null;index" json:"driverId"`
	CargoWeight   float64    `gorm:"not null" json:"cargoWeight"`
	Origin        string     `gorm:"type:varchar(256);not null;default:''" json:"origin"`
	Destination   string     `gorm:"type:varchar(256);not null;default:''" json:"destination"`
	StartOdometer float64    `gorm:"not null" json:"startOdometer"`
	EndOdometer   *float64   `json:"endOdometer"`
	Distance      float64    `gorm:"not null;default:0" json:"distance"`
	Revenue       float64    `gorm:"not null;default:0" json:"revenue"`
	Status        TripStatus `gorm:"type:trip_status;not null" json:"status"`
	CreatedAt     time.Time  `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt     time.Time  `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (Trip) TableName() string {
	return "trips"
}

// TripRecord carries a trip together with the vehicle and driver views the
// dashboard renders alongside it. Either brief may be nil when the
// referenced record has been deleted.
type TripRecord struct {
	Trip
	Vehicle *VehicleBrief `json:"vehicle,omitempty"`
	Driver  *DriverBrief  `json:"driver,omitempty"`
}
