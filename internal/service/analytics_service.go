package service

import (
	"context"
	"math"

	"github.com/nurpe/fleetops/internal/model"
	"github.com/nurpe/fleetops/internal/repository"
)

type ReportStore interface {
	VehicleCounts(ctx context.Context) (*repository.VehicleCounts, error)
	DriverCounts(ctx context.Context) (*repository.DriverCounts, error)
	TripCounts(ctx context.Context) (*repository.TripCounts, error)
	FuelEfficiencyRows(ctx context.Context) ([]model.FuelEfficiencyRow, error)
	VehicleROIRows(ctx context.Context) ([]model.VehicleROIRow, error)
	DriverPerformanceRows(ctx context.Context) ([]model.DriverPerformanceRow, error)
}

// AnalyticsService computes the derived figures on top of the raw report
// aggregates: utilization, fuel efficiency, ROI and completion rates.
type AnalyticsService struct {
	reports ReportStore
}

func NewAnalyticsService(reports ReportStore) *AnalyticsService {
	return &AnalyticsService{reports: reports}
}

// Dashboard aggregates fleet, driver and trip counters. The active fleet
// excludes retired vehicles and is the utilization denominator.
func (s *AnalyticsService) Dashboard(ctx context.Context) (*model.DashboardStats, error) {
	vehicles, err := s.reports.VehicleCounts(ctx)
	if err != nil {
		return nil, err
	}
	drivers, err := s.reports.DriverCounts(ctx)
	if err != nil {
		return nil, err
	}
	trips, err := s.reports.TripCounts(ctx)
	if err != nil {
		return nil, err
	}

	activeFleet := vehicles.Total - vehicles.Retired
	var utilization int64
	if activeFleet > 0 {
		utilization = roundPercent(float64(vehicles.OnTrip) / float64(activeFleet))
	}

	return &model.DashboardStats{
		TotalVehicles:     vehicles.Total,
		AvailableVehicles: vehicles.Available,
		OnTripVehicles:    vehicles.OnTrip,
		InShopVehicles:    vehicles.InShop,
		RetiredVehicles:   vehicles.Retired,
		ActiveFleet:       activeFleet,
		Utilization:       utilization,
		TotalDrivers:      drivers.Total,
		OnDutyDrivers:     drivers.OnDuty,
		PendingTrips:      trips.Dispatched,
		CompletedTrips:    trips.Completed,
	}, nil
}

// FuelEfficiency reports km per liter over completed trips. Vehicles with
// no fuel expenses keep a zero efficiency rather than dividing by zero.
func (s *AnalyticsService) FuelEfficiency(ctx context.Context) ([]model.FuelEfficiencyRow, error) {
	rows, err := s.reports.FuelEfficiencyRows(ctx)
	if err != nil {
		return nil, err
	}
	for i := range rows {
		if rows[i].TotalLiters > 0 {
			rows[i].Efficiency = round2(rows[i].TotalDistance / rows[i].TotalLiters)
		}
	}
	return rows, nil
}

// VehicleROI reports net return against acquisition cost as a percentage
// with two decimals. A zero acquisition cost leaves ROI at zero.
func (s *AnalyticsService) VehicleROI(ctx context.Context) ([]model.VehicleROIRow, error) {
	rows, err := s.reports.VehicleROIRows(ctx)
	if err != nil {
		return nil, err
	}
	for i := range rows {
		rows[i].TotalExpenses = rows[i].TotalFuelCost + rows[i].TotalMaintenanceCost
		if rows[i].AcquisitionCost > 0 {
			net := rows[i].TotalRevenue - rows[i].TotalExpenses
			rows[i].ROI = math.Round(net/rows[i].AcquisitionCost*10000) / 100
		}
	}
	return rows, nil
}

// DriverPerformance adds the whole-percent completion rate to the per
// driver trip aggregates.
func (s *AnalyticsService) DriverPerformance(ctx context.Context) ([]model.DriverPerformanceRow, error) {
	rows, err := s.reports.DriverPerformanceRows(ctx)
	if err != nil {
		return nil, err
	}
	for i := range rows {
		if rows[i].TotalTrips > 0 {
			rows[i].CompletionRate = roundPercent(float64(rows[i].CompletedTrips) / float64(rows[i].TotalTrips))
		}
	}
	return rows, nil
}

func roundPercent(ratio float64) int64 {
	return int64(math.Round(ratio * 100))
}

func round2(value float64) float64 {
	return math.Round(value*100) / 100
}
