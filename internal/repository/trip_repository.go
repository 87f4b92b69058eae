package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/nurpe/fleetops/internal/model"
)

const tripColumns = `
	id, vehicle_id, driver_id, cargo_weight, origin, destination, start_odometer, end_odometer, distance, revenue, status, created_at, updated_at`

const tripRecordQuery = `
	SELECT
		t.id,
		t.vehicle_id,
		t.driver_id,
		t.cargo_weight,
		t.origin,
		t.destination,
		t.start_odometer,
		t.end_odometer,
		t.distance,
		t.revenue,
		t.status,
		t.created_at,
		t.updated_at,
		v.name AS vehicle_name,
		v.license_plate AS vehicle_plate,
		v.type AS vehicle_type,
		v.max_capacity AS vehicle_max_capacity,
		v.odometer AS vehicle_odometer,
		v.status AS vehicle_status,
		d.name AS driver_name,
		d.license_number AS driver_license,
		d.status AS driver_status
	FROM trips t
	LEFT JOIN vehicles v ON v.id = t.vehicle_id
	LEFT JOIN drivers d ON d.id = t.driver_id`

type tripRow struct {
	ID                 uuid.UUID
	VehicleID          uuid.UUID
	DriverID           uuid.UUID
	CargoWeight        float64
	Origin             string
	Destination        string
	StartOdometer      float64
	EndOdometer        *float64
	Distance           float64
	Revenue            float64
	Status             model.TripStatus
	CreatedAt          time.Time
	UpdatedAt          time.Time
	VehicleName        *string
	VehiclePlate       *string
	VehicleType        *string
	VehicleMaxCapacity *float64
	VehicleOdometer    *float64
	VehicleStatus      *string
	DriverName         *string
	DriverLicense      *string
	DriverStatus       *string
}

func (row tripRow) record() model.TripRecord {
	record := model.TripRecord{
		Trip: model.Trip{
			ID:            row.ID,
			VehicleID:     row.VehicleID,
			DriverID:      row.DriverID,
			CargoWeight:   row.CargoWeight,
			Origin:        row.Origin,
			Destination:   row.Destination,
			StartOdometer: row.StartOdometer,
			EndOdometer:   row.EndOdometer,
			Distance:      row.Distance,
			Revenue:       row.Revenue,
			Status:        row.Status,
			CreatedAt:     row.CreatedAt,
			UpdatedAt:     row.UpdatedAt,
		},
	}
	if row.VehicleName != nil {
		record.Vehicle = &model.VehicleBrief{
			ID:           row.VehicleID,
			Name:         *row.VehicleName,
			LicensePlate: derefString(row.VehiclePlate),
			Type:         model.VehicleType(derefString(row.VehicleType)),
			MaxCapacity:  derefFloat(row.VehicleMaxCapacity),
			Odometer:     derefFloat(row.VehicleOdometer),
			Status:       model.VehicleStatus(derefString(row.VehicleStatus)),
		}
	}
	if row.DriverName != nil {
		record.Driver = &model.DriverBrief{
			ID:            row.DriverID,
			Name:          *row.DriverName,
			LicenseNumber: derefString(row.DriverLicense),
			Status:        model.DriverStatus(derefString(row.DriverStatus)),
		}
	}
	return record
}

type TripRepository struct {
	db *gorm.DB
}

func NewTripRepository(db *gorm.DB) *TripRepository {
	return &TripRepository{db: db}
}

func (r *TripRepository) List(ctx context.Context, status *model.TripStatus) ([]model.TripRecord, error) {
	query := tripRecordQuery
	args := []interface{}{}
	if status != nil {
		query += ` WHERE t.status = ?`
		args = append(args, *status)
	}
	query += ` ORDER BY t.created_at DESC`

	var rows []tripRow
	if err := r.db.WithContext(ctx).Raw(query, args...).Scan(&rows).Error; err != nil {
		return nil, err
	}

	records := make([]model.TripRecord, 0, len(rows))
	for _, row := range rows {
		records = append(records, row.record())
	}
	return records, nil
}

func (r *TripRepository) Get(ctx context.Context, id uuid.UUID) (*model.TripRecord, error) {
	var row tripRow
	if err := r.db.WithContext(ctx).Raw(tripRecordQuery+` WHERE t.id = ? LIMIT 1`, id).Scan(&row).Error; err != nil {
		return nil, err
	}
	if row.ID == uuid.Nil {
		return nil, gorm.ErrRecordNotFound
	}
	record := row.record()
	return &record, nil
}

func (r *TripRepository) GetTrip(ctx context.Context, id uuid.UUID) (*model.Trip, error) {
	var trip model.Trip
	if err := r.db.WithContext(ctx).Raw(`SELECT`+tripColumns+`
		FROM trips
		WHERE id = ?
		LIMIT 1
	`, id).Scan(&trip).Error; err != nil {
		return nil, err
	}
	if trip.ID == uuid.Nil {
		return nil, gorm.ErrRecordNotFound
	}
	return &trip, nil
}

// Dispatch inserts the trip and moves the vehicle and driver into their
// in-use states as one transaction. The status updates are guarded on the
// state the validation saw, so a concurrent dispatch of the same vehicle or
// driver makes the guard miss and the whole transaction rolls back.
func (r *TripRepository) Dispatch(ctx context.Context, trip model.Trip) (*model.Trip, error) {
	var saved model.Trip
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Exec(`
			UPDATE vehicles SET status = 'OnTrip', updated_at = NOW()
			WHERE id = ? AND status = 'Available'
		`, trip.VehicleID)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrVehicleNotAvailable
		}

		res = tx.Exec(`
			UPDATE drivers SET status = 'OnTrip', updated_at = NOW()
			WHERE id = ? AND status = 'OnDuty'
		`, trip.DriverID)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrDriverNotOnDuty
		}

		return tx.Raw(`
			INSERT INTO trips (vehicle_id, driver_id, cargo_weight, origin, destination, start_odometer, revenue, status)
			VALUES (?, ?, ?, ?, ?, ?, ?, 'Dispatched')
			RETURNING`+tripColumns+`
		`,
			trip.VehicleID,
			trip.DriverID,
			trip.CargoWeight,
			trip.Origin,
			trip.Destination,
			trip.StartOdometer,
			trip.Revenue,
		).Scan(&saved).Error
	})
	if err != nil {
		return nil, err
	}
	return &saved, nil
}

// Complete records the trip result and releases the vehicle and driver.
// The vehicle and driver updates deliberately tolerate missing rows: a
// record deleted mid-trip skips its release instead of failing the
// completion.
func (r *TripRepository) Complete(ctx context.Context, trip model.Trip) (*model.Trip, error) {
	var saved model.Trip
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Raw(`
			UPDATE trips
			SET status = 'Completed', end_odometer = ?, distance = ?, revenue = ?, updated_at = NOW()
			WHERE id = ? AND status = 'Dispatched'
			RETURNING`+tripColumns+`
		`, trip.EndOdometer, trip.Distance, trip.Revenue, trip.ID).Scan(&saved).Error; err != nil {
			return err
		}
		if saved.ID == uuid.Nil {
			return ErrTripNotDispatched
		}

		if err := tx.Exec(`
			UPDATE vehicles SET status = 'Available', odometer = ?, updated_at = NOW()
			WHERE id = ?
		`, trip.EndOdometer, trip.VehicleID).Error; err != nil {
			return err
		}

		return tx.Exec(`
			UPDATE drivers SET status = 'OnDuty', updated_at = NOW()
			WHERE id = ?
		`, trip.DriverID).Error
	})
	if err != nil {
		return nil, err
	}
	return &saved, nil
}

// Cancel marks the trip cancelled; when release is set the vehicle and
// driver are returned to Available/OnDuty first (again lenient about rows
// that no longer exist).
func (r *TripRepository) Cancel(ctx context.Context, trip model.Trip, release bool) (*model.Trip, error) {
	var saved model.Trip
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if release {
			if err := tx.Exec(`
				UPDATE vehicles SET status = 'Available', updated_at = NOW()
				WHERE id = ?
			`, trip.VehicleID).Error; err != nil {
				return err
			}
			if err := tx.Exec(`
				UPDATE drivers SET status = 'OnDuty', updated_at = NOW()
				WHERE id = ?
			`, trip.DriverID).Error; err != nil {
				return err
			}
		}

		if err := tx.Raw(`
			UPDATE trips SET status = 'Cancelled', updated_at = NOW()
			WHERE id = ?
			RETURNING`+tripColumns+`
		`, trip.ID).Scan(&saved).Error; err != nil {
			return err
		}
		if saved.ID == uuid.Nil {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &saved, nil
}

func derefString(value *string) string {
	if value == nil {
		return ""
	}
	return *value
}

func derefFloat(value *float64) float64 {
	if value == nil {
		return 0
	}
	return *value
}
