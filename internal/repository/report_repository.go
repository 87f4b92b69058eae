package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/nurpe/fleetops/internal/model"
)

// ReportRepository serves the read-only analytics queries. The shapes are
// fixed; no filters are exposed.
type ReportRepository struct {
	db *gorm.DB
}

func NewReportRepository(db *gorm.DB) *ReportRepository {
	return &ReportRepository{db: db}
}

type VehicleCounts struct {
	Total     int64
	Available int64
	OnTrip    int64
	InShop    int64
	Retired   int64
}

func (r *ReportRepository) VehicleCounts(ctx context.Context) (*VehicleCounts, error) {
	var counts VehicleCounts
	err := r.db.WithContext(ctx).Raw(`
		SELECT
			COUNT(*) AS total,
			COUNT(*) FILTER (WHERE status = 'Available') AS available,
			COUNT(*) FILTER (WHERE status = 'OnTrip') AS on_trip,
			COUNT(*) FILTER (WHERE status = 'InShop') AS in_shop,
			COUNT(*) FILTER (WHERE status = 'Retired') AS retired
		FROM vehicles
	`).Scan(&counts).Error
	if err != nil {
		return nil, err
	}
	return &counts, nil
}

type DriverCounts struct {
	Total  int64
	OnDuty int64
}

func (r *ReportRepository) DriverCounts(ctx context.Context) (*DriverCounts, error) {
	var counts DriverCounts
	err := r.db.WithContext(ctx).Raw(`
		SELECT
			COUNT(*) AS total,
			COUNT(*) FILTER (WHERE status = 'OnDuty') AS on_duty
		FROM drivers
	`).Scan(&counts).Error
	if err != nil {
		return nil, err
	}
	return &counts, nil
}

type TripCounts struct {
	Dispatched int64
	Completed  int64
}

func (r *ReportRepository) TripCounts(ctx context.Context) (*TripCounts, error) {
	var counts TripCounts
	err := r.db.WithContext(ctx).Raw(`
		SELECT
			COUNT(*) FILTER (WHERE status = 'Dispatched') AS dispatched,
			COUNT(*) FILTER (WHERE status = 'Completed') AS completed
		FROM trips
	`).Scan(&counts).Error
	if err != nil {
		return nil, err
	}
	return &counts, nil
}

// FuelEfficiencyRows starts from completed-trip totals, so only vehicles
// with at least one completed trip come back. Vehicle details are joined
// leniently: a deleted vehicle renders as "Unknown".
func (r *ReportRepository) FuelEfficiencyRows(ctx context.Context) ([]model.FuelEfficiencyRow, error) {
	var rows []model.FuelEfficiencyRow
	err := r.db.WithContext(ctx).Raw(`
		SELECT
			t.vehicle_id,
			COALESCE(v.name, 'Unknown') AS vehicle_name,
			COALESCE(v.license_plate, '') AS license_plate,
			v.type,
			t.total_distance,
			COALESCE(f.total_liters, 0) AS total_liters,
			COALESCE(f.total_fuel_cost, 0) AS total_fuel_cost,
			t.trip_count,
			t.total_revenue
		FROM (
			SELECT vehicle_id, SUM(distance) AS total_distance, COUNT(*) AS trip_count, SUM(revenue) AS total_revenue
			FROM trips
			WHERE status = 'Completed'
			GROUP BY vehicle_id
		) t
		LEFT JOIN vehicles v ON v.id = t.vehicle_id
		LEFT JOIN (
			SELECT vehicle_id, SUM(liters) AS total_liters, SUM(cost) AS total_fuel_cost
			FROM expenses
			WHERE type = 'Fuel'
			GROUP BY vehicle_id
		) f ON f.vehicle_id = t.vehicle_id
		ORDER BY vehicle_name ASC
	`).Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// VehicleROIRows covers the full vehicle set, including vehicles that have
// never run a trip or booked an expense.
func (r *ReportRepository) VehicleROIRows(ctx context.Context) ([]model.VehicleROIRow, error) {
	var rows []model.VehicleROIRow
	err := r.db.WithContext(ctx).Raw(`
		SELECT
			v.id AS vehicle_id,
			v.name AS vehicle_name,
			v.license_plate,
			v.type,
			v.acquisition_cost,
			COALESCE(t.total_revenue, 0) AS total_revenue,
			COALESCE(t.total_distance, 0) AS total_distance,
			COALESCE(e.total_fuel_cost, 0) AS total_fuel_cost,
			COALESCE(e.total_maintenance_cost, 0) AS total_maintenance_cost
		FROM vehicles v
		LEFT JOIN (
			SELECT vehicle_id, SUM(revenue) AS total_revenue, SUM(distance) AS total_distance
			FROM trips
			WHERE status = 'Completed'
			GROUP BY vehicle_id
		) t ON t.vehicle_id = v.id
		LEFT JOIN (
			SELECT
				vehicle_id,
				COALESCE(SUM(cost) FILTER (WHERE type = 'Fuel'), 0) AS total_fuel_cost,
				COALESCE(SUM(cost) FILTER (WHERE type = 'Maintenance'), 0) AS total_maintenance_cost
			FROM expenses
			GROUP BY vehicle_id
		) e ON e.vehicle_id = v.id
		ORDER BY v.name ASC
	`).Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// DriverPerformanceRows covers every driver; trip totals only count
// completed trips, while the per-status counters span all trips.
func (r *ReportRepository) DriverPerformanceRows(ctx context.Context) ([]model.DriverPerformanceRow, error) {
	var rows []model.DriverPerformanceRow
	err := r.db.WithContext(ctx).Raw(`
		SELECT
			d.id AS driver_id,
			d.name,
			d.license_number,
			d.license_expiry,
			d.category,
			d.status,
			d.safety_score,
			COALESCE(t.total_trips, 0) AS total_trips,
			COALESCE(t.completed_trips, 0) AS completed_trips,
			COALESCE(t.cancelled_trips, 0) AS cancelled_trips,
			COALESCE(t.active_trips, 0) AS active_trips,
			COALESCE(t.total_distance, 0) AS total_distance,
			COALESCE(t.total_revenue, 0) AS total_revenue,
			COALESCE(t.total_cargo, 0) AS total_cargo
		FROM drivers d
		LEFT JOIN (
			SELECT
				driver_id,
				COUNT(*) AS total_trips,
				COUNT(*) FILTER (WHERE status = 'Completed') AS completed_trips,
				COUNT(*) FILTER (WHERE status = 'Cancelled') AS cancelled_trips,
				COUNT(*) FILTER (WHERE status = 'Dispatched') AS active_trips,
				COALESCE(SUM(distance) FILTER (WHERE status = 'Completed'), 0) AS total_distance,
				COALESCE(SUM(revenue) FILTER (WHERE status = 'Completed'), 0) AS total_revenue,
				COALESCE(SUM(cargo_weight) FILTER (WHERE status = 'Completed'), 0) AS total_cargo
			FROM trips
			GROUP BY driver_id
		) t ON t.driver_id = d.id
		ORDER BY d.name ASC
	`).Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
