package model

import (
	"time"

	"github.com/google/uuid"
)

// DashboardStats is the fleet-wide counter block on the dashboard landing
// page. Utilization is the share of the non-retired fleet currently on a
// trip, rounded to a whole percent.
type DashboardStats struct {
	TotalVehicles     int64 `json:"totalVehicles"`
	AvailableVehicles int64 `json:"availableVehicles"`
	OnTripVehicles    int64 `json:"onTripVehicles"`
	InShopVehicles    int64 `json:"inShopVehicles"`
	RetiredVehicles   int64 `json:"retiredVehicles"`
	ActiveFleet       int64 `json:"activeFleet"`
	Utilization       int64 `json:"utilization"`
	TotalDrivers      int64 `json:"totalDrivers"`
	OnDutyDrivers     int64 `json:"onDutyDrivers"`
	PendingTrips      int64 `json:"pendingTrips"`
	CompletedTrips    int64 `json:"completedTrips"`
}

// FuelEfficiencyRow covers vehicles with at least one completed trip;
// vehicles that only have fuel expenses do not appear.
type FuelEfficiencyRow struct {
	VehicleID     uuid.UUID   `json:"vehicleId"`
	VehicleName   string      `json:"vehicleName"`
	LicensePlate  string      `json:"licensePlate"`
	Type          VehicleType `json:"type"`
	TotalDistance float64     `json:"totalDistance"`
	TotalLiters   float64     `json:"totalLiters"`
	TotalFuelCost float64     `json:"totalFuelCost"`
	Efficiency    float64     `json:"efficiency"` // km per liter
	TripCount     int64       `json:"tripCount"`
	TotalRevenue  float64     `json:"totalRevenue"`
}

// VehicleROIRow covers every vehicle, including ones without trips or
// expenses.
type VehicleROIRow struct {
	VehicleID            uuid.UUID   `json:"vehicleId"`
	VehicleName          string      `json:"vehicleName"`
	LicensePlate         string      `json:"licensePlate"`
	Type                 VehicleType `json:"type"`
	AcquisitionCost      float64     `json:"acquisitionCost"`
	TotalRevenue         float64     `json:"totalRevenue"`
	TotalFuelCost        float64     `json:"totalFuelCost"`
	TotalMaintenanceCost float64     `json:"totalMaintenanceCost"`
	TotalExpenses        float64     `json:"totalExpenses"`
	TotalDistance        float64     `json:"totalDistance"`
	ROI                  float64     `json:"roi"` // percentage
}

type DriverPerformanceRow struct {
	DriverID       uuid.UUID      `json:"driverId"`
	Name           string         `json:"name"`
	LicenseNumber  string         `json:"licenseNumber"`
	LicenseExpiry  time.Time      `json:"licenseExpiry"`
	Category       DriverCategory `json:"category"`
	Status         DriverStatus   `json:"status"`
	SafetyScore    float64        `json:"safetyScore"`
	TotalTrips     int64          `json:"totalTrips"`
	CompletedTrips int64          `json:"completedTrips"`
	CancelledTrips int64          `json:"cancelledTrips"`
	ActiveTrips    int64          `json:"activeTrips"`
	CompletionRate int64          `json:"completionRate"`
	TotalDistance  float64        `json:"totalDistance"`
	TotalRevenue   float64        `json:"totalRevenue"`
	TotalCargo     float64        `json:"totalCargo"`
}

type VehicleExpenseSummary struct {
	VehicleID            uuid.UUID `json:"vehicleId"`
	VehicleName          string    `json:"vehicleName"`
	LicensePlate         string    `json:"licensePlate"`
	TotalFuelCost        float64   `json:"totalFuelCost"`
	TotalMaintenanceCost float64   `json:"totalMaintenanceCost"`
	TotalCost            float64   `json:"totalCost"`
	TotalLiters          float64   `json:"totalLiters"`
	Count                int64     `json:"count"`
}

type MaintenanceSummaryRow struct {
	VehicleID      uuid.UUID     `json:"vehicleId"`
	VehicleName    string        `json:"vehicleName"`
	LicensePlate   string        `json:"licensePlate"`
	VehicleType    VehicleType   `json:"vehicleType"`
	VehicleStatus  VehicleStatus `json:"vehicleStatus"`
	TotalCost      float64       `json:"totalCost"`
	TotalLogs      int64         `json:"totalLogs"`
	CompletedLogs  int64         `json:"completedLogs"`
	InProgressLogs int64         `json:"inProgressLogs"`
	LastService    *time.Time    `json:"lastService"`
}
