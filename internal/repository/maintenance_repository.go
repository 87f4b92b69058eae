package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/nurpe/fleetops/internal/model"
)

const maintenanceColumns = `
	id, vehicle_id, type, description, cost, status, scheduled_date, completed_date, odometer_at_service, notes, created_at, updated_at`

const maintenanceRecordQuery = `
	SELECT
		m.id,
		m.vehicle_id,
		m.type,
		m.description,
		m.cost,
		m.status,
		m.scheduled_date,
		m.completed_date,
		m.odometer_at_service,
		m.notes,
		m.created_at,
		m.updated_at,
		v.name AS vehicle_name,
		v.license_plate AS vehicle_plate,
		v.type AS vehicle_type,
		v.max_capacity AS vehicle_max_capacity,
		v.odometer AS vehicle_odometer,
		v.status AS vehicle_status
	FROM maintenance_logs m
	LEFT JOIN vehicles v ON v.id = m.vehicle_id`

type maintenanceRow struct {
	ID                 uuid.UUID
	VehicleID          uuid.UUID
	Type               model.MaintenanceType
	Description        string
	Cost               float64
	Status             model.MaintenanceStatus
	ScheduledDate      time.Time
	CompletedDate      *time.Time
	OdometerAtService  float64
	Notes              string
	CreatedAt          time.Time
	UpdatedAt          time.Time
	VehicleName        *string
	VehiclePlate       *string
	VehicleType        *string
	VehicleMaxCapacity *float64
	VehicleOdometer    *float64
	VehicleStatus      *string
}

func (row maintenanceRow) record() model.MaintenanceRecord {
	record := model.MaintenanceRecord{
		Maintenance: model.Maintenance{
			ID:                row.ID,
			VehicleID:         row.VehicleID,
			Type:              row.Type,
			Description:       row.Description,
			Cost:              row.Cost,
			Status:            row.Status,
			ScheduledDate:     row.ScheduledDate,
			CompletedDate:     row.CompletedDate,
			OdometerAtService: row.OdometerAtService,
			Notes:             row.Notes,
			CreatedAt:         row.CreatedAt,
			UpdatedAt:         row.UpdatedAt,
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
	return record
}

type MaintenanceFilter struct {
	VehicleID *uuid.UUID
	Status    *model.MaintenanceStatus
	Type      *model.MaintenanceType
}

type MaintenanceRepository struct {
	db *gorm.DB
}

func NewMaintenanceRepository(db *gorm.DB) *MaintenanceRepository {
	return &MaintenanceRepository{db: db}
}

func (r *MaintenanceRepository) List(ctx context.Context, filter MaintenanceFilter) ([]model.MaintenanceRecord, error) {
	query := maintenanceRecordQuery
	args := []interface{}{}
	conditions := []string{}
	if filter.VehicleID != nil {
		conditions = append(conditions, "m.vehicle_id = ?")
		args = append(args, *filter.VehicleID)
	}
	if filter.Status != nil {
		conditions = append(conditions, "m.status = ?")
		args = append(args, *filter.Status)
	}
	if filter.Type != nil {
		conditions = append(conditions, "m.type = ?")
		args = append(args, *filter.Type)
	}
	for i, condition := range conditions {
		if i == 0 {
			query += " WHERE " + condition
		} else {
			query += " AND " + condition
		}
	}
	query += ` ORDER BY m.created_at DESC`

	var rows []maintenanceRow
	if err := r.db.WithContext(ctx).Raw(query, args...).Scan(&rows).Error; err != nil {
		return nil, err
	}

	records := make([]model.MaintenanceRecord, 0, len(rows))
	for _, row := range rows {
		records = append(records, row.record())
	}
	return records, nil
}

func (r *MaintenanceRepository) Get(ctx context.Context, id uuid.UUID) (*model.MaintenanceRecord, error) {
	var row maintenanceRow
	if err := r.db.WithContext(ctx).Raw(maintenanceRecordQuery+` WHERE m.id = ? LIMIT 1`, id).Scan(&row).Error; err != nil {
		return nil, err
	}
	if row.ID == uuid.Nil {
		return nil, gorm.ErrRecordNotFound
	}
	record := row.record()
	return &record, nil
}

func (r *MaintenanceRepository) GetLog(ctx context.Context, id uuid.UUID) (*model.Maintenance, error) {
	var log model.Maintenance
	if err := r.db.WithContext(ctx).Raw(`SELECT`+maintenanceColumns+`
		FROM maintenance_logs
		WHERE id = ?
		LIMIT 1
	`, id).Scan(&log).Error; err != nil {
		return nil, err
	}
	if log.ID == uuid.Nil {
		return nil, gorm.ErrRecordNotFound
	}
	return &log, nil
}

// CreateWithExpense opens a service log, moves the vehicle into the shop
// and books the linked maintenance expense as one transaction. The vehicle
// update is guarded against OnTrip; a guard miss rolls everything back.
func (r *MaintenanceRepository) CreateWithExpense(ctx context.Context, log model.Maintenance, expense model.Expense) (*model.Maintenance, error) {
	var saved model.Maintenance
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Exec(`
			UPDATE vehicles SET status = 'InShop', updated_at = NOW()
			WHERE id = ? AND status <> 'OnTrip'
		`, log.VehicleID)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrVehicleOnTrip
		}

		if err := tx.Raw(`
			INSERT INTO maintenance_logs (vehicle_id, type, description, cost, status, scheduled_date, odometer_at_service, notes)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?)
			RETURNING`+maintenanceColumns+`
		`,
			log.VehicleID,
			log.Type,
			log.Description,
			log.Cost,
			log.Status,
			log.ScheduledDate,
			log.OdometerAtService,
			log.Notes,
		).Scan(&saved).Error; err != nil {
			return err
		}

		return tx.Exec(`
			INSERT INTO expenses (vehicle_id, type, liters, cost, date)
			VALUES (?, ?, ?, ?, ?)
		`,
			expense.VehicleID,
			expense.Type,
			expense.Liters,
			expense.Cost,
			expense.Date,
		).Error
	})
	if err != nil {
		return nil, err
	}
	return &saved, nil
}

// Complete closes the log and conditionally releases the vehicle: only a
// vehicle still InShop goes back to Available, other statuses are left
// untouched.
func (r *MaintenanceRepository) Complete(ctx context.Context, log model.Maintenance) (*model.Maintenance, error) {
	var saved model.Maintenance
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Raw(`
			UPDATE maintenance_logs
			SET status = 'Completed', completed_date = ?, notes = ?, cost = ?, updated_at = NOW()
			WHERE id = ? AND status <> 'Completed'
			RETURNING`+maintenanceColumns+`
		`, log.CompletedDate, log.Notes, log.Cost, log.ID).Scan(&saved).Error; err != nil {
			return err
		}
		if saved.ID == uuid.Nil {
			return ErrMaintenanceCompleted
		}

		return tx.Exec(`
			UPDATE vehicles SET status = 'Available', updated_at = NOW()
			WHERE id = ? AND status = 'InShop'
		`, log.VehicleID).Error
	})
	if err != nil {
		return nil, err
	}
	return &saved, nil
}

// Delete removes the log; deleting an in-progress log releases the vehicle
// the same way completion would, without marking the log completed.
func (r *MaintenanceRepository) Delete(ctx context.Context, id uuid.UUID, releaseVehicleID *uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if releaseVehicleID != nil {
			if err := tx.Exec(`
				UPDATE vehicles SET status = 'Available', updated_at = NOW()
				WHERE id = ? AND status = 'InShop'
			`, *releaseVehicleID).Error; err != nil {
				return err
			}
		}

		res := tx.Exec(`DELETE FROM maintenance_logs WHERE id = ?`, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

// Summary aggregates service history per vehicle; vehicles without logs do
// not appear.
func (r *MaintenanceRepository) Summary(ctx context.Context) ([]model.MaintenanceSummaryRow, error) {
	var rows []model.MaintenanceSummaryRow
	err := r.db.WithContext(ctx).Raw(`
		SELECT
			m.vehicle_id,
			v.name AS vehicle_name,
			v.license_plate,
			v.type AS vehicle_type,
			v.status AS vehicle_status,
			COALESCE(SUM(m.cost), 0) AS total_cost,
			COUNT(*) AS total_logs,
			COUNT(*) FILTER (WHERE m.status = 'Completed') AS completed_logs,
			COUNT(*) FILTER (WHERE m.status = 'InProgress') AS in_progress_logs,
			MAX(m.completed_date) AS last_service
		FROM maintenance_logs m
		JOIN vehicles v ON v.id = m.vehicle_id
		GROUP BY m.vehicle_id, v.name, v.license_plate, v.type, v.status
		ORDER BY v.name ASC
	`).Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
