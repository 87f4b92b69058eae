package model

import (
	"time"

	"github.com/google/uuid"
)

type ExpenseType string

const (
	ExpenseTypeFuel        ExpenseType = "Fuel"
	ExpenseTypeMaintenance ExpenseType = "Maintenance"
)

func (t ExpenseType) Valid() bool {
	return t == ExpenseTypeFuel || t == ExpenseTypeMaintenance
}

type Expense struct {
	ID        uuid.UUID   `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()" json:"id"`
	VehicleID uuid.UUID   `gorm:"type:uuid;not null;index" json:"vehicleId"`
	Type      ExpenseType `gorm:"type:expense_type;not null" json:"type"`
	Liters    float64     `gorm:"not null;default:0" json:"liters"`
	Cost      float64     `gorm:"not null" json:"cost"`
	Date      time.Time   `gorm:"not null" json:"date"`
	CreatedAt time.Time   `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time   `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (Expense) TableName() string {
	return "expenses"
}

type ExpenseRecord struct {
	Expense
	Vehicle *VehicleBrief `json:"vehicle,omitempty"`
}
