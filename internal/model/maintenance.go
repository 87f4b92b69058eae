package model

import (
	"time"

	"github.com/google/uuid"
)

type MaintenanceType string

const (
	MaintenanceTypePreventive MaintenanceType = "Preventive"
	MaintenanceTypeReactive   MaintenanceType = "Reactive"
	MaintenanceTypeInspection MaintenanceType = "Inspection"
)

func (t MaintenanceType) Valid() bool {
	switch t {
	case MaintenanceTypePreventive, MaintenanceTypeReactive, MaintenanceTypeInspection:
		return true
	}
	return false
}

type MaintenanceStatus string

// Scheduled exists in the schema for imported data; the service-log flow
// only creates InProgress entries.
const (
	MaintenanceStatusScheduled  MaintenanceStatus = "Scheduled"
	MaintenanceStatusInProgress MaintenanceStatus = "InProgress"
	MaintenanceStatusCompleted  MaintenanceStatus = "Completed"
)

func (s MaintenanceStatus) Valid() bool {
	switch s {
	case MaintenanceStatusScheduled, MaintenanceStatusInProgress, MaintenanceStatusCompleted:
		return true
	}
	return false
}

type Maintenance struct {
	ID                uuid.UUID         `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()" json:"id"`
	VehicleID         uuid.UUID         `gorm:"type:uuid;not null;index" json:"vehicleId"`
	Type              MaintenanceType   `gorm:"type:maintenance_type;not null" json:"type"`
	Description       string            `gorm:"type:text;not null" json:"description"`
	Cost              float64           `gorm:"not null" json:"cost"`
	Status            MaintenanceStatus `gorm:"type:maintenance_status;not null;default:'InProgress'" json:"status"`
	ScheduledDate     time.Time         `gorm:"not null" json:"scheduledDate"`
	CompletedDate     *time.Time        `json:"completedDate"`
	OdometerAtService float64           `gorm:"not null;default:0" json:"odometerAtService"`
	Notes             string            `gorm:"type:text;not null;default:''" json:"notes"`
	CreatedAt         time.Time         `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt         time.Time         `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (Maintenance) TableName() string {
	return "maintenance_logs"
}

type MaintenanceRecord struct {
	Maintenance
	Vehicle *VehicleBrief `json:"vehicle,omitempty"`
}
