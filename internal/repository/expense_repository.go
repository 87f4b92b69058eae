package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/nurpe/fleetops/internal/model"
)

const expenseColumns = `
	id, vehicle_id, type, liters, cost, date, created_at, updated_at`

const expenseRecordQuery = `
	SELECT
		e.id,
		e.vehicle_id,
		e.type,
		e.liters,
		e.cost,
		e.date,
		e.created_at,
		e.updated_at,
		v.name AS vehicle_name,
		v.license_plate AS vehicle_plate,
		v.type AS vehicle_type,
		v.max_capacity AS vehicle_max_capacity,
		v.odometer AS vehicle_odometer,
		v.status AS vehicle_status
	FROM expenses e
	LEFT JOIN vehicles v ON v.id = e.vehicle_id`

type expenseRow struct {
	ID                 uuid.UUID
	VehicleID          uuid.UUID
	Type               model.ExpenseType
	Liters             float64
	Cost               float64
	Date               time.Time
	CreatedAt          time.Time
	UpdatedAt          time.Time
	VehicleName        *string
	VehiclePlate       *string
	VehicleType        *string
	VehicleMaxCapacity *float64
	VehicleOdometer    *float64
	VehicleStatus      *string
}

func (row expenseRow) record() model.ExpenseRecord {
	record := model.ExpenseRecord{
		Expense: model.Expense{
			ID:        row.ID,
			VehicleID: row.VehicleID,
			Type:      row.Type,
			Liters:    row.Liters,
			Cost:      row.Cost,
			Date:      row.Date,
			CreatedAt: row.CreatedAt,
			UpdatedAt: row.UpdatedAt,
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

type ExpenseFilter struct {
	VehicleID *uuid.UUID
	Type      *model.ExpenseType
}

type ExpenseRepository struct {
	db *gorm.DB
}

func NewExpenseRepository(db *gorm.DB) *ExpenseRepository {
	return &ExpenseRepository{db: db}
}

func (r *ExpenseRepository) List(ctx context.Context, filter ExpenseFilter) ([]model.ExpenseRecord, error) {
	query := expenseRecordQuery
	args := []interface{}{}
	conditions := []string{}
	if filter.VehicleID != nil {
		conditions = append(conditions, "e.vehicle_id = ?")
		args = append(args, *filter.VehicleID)
	}
	if filter.Type != nil {
		conditions = append(conditions, "e.type = ?")
		args = append(args, *filter.Type)
	}
	for i, condition := range conditions {
		if i == 0 {
			query += " WHERE " + condition
		} else {
			query += " AND " + condition
		}
	}
	query += ` ORDER BY e.date DESC`

	var rows []expenseRow
	if err := r.db.WithContext(ctx).Raw(query, args...).Scan(&rows).Error; err != nil {
		return nil, err
	}

	records := make([]model.ExpenseRecord, 0, len(rows))
	for _, row := range rows {
		records = append(records, row.record())
	}
	return records, nil
}

func (r *ExpenseRepository) Get(ctx context.Context, id uuid.UUID) (*model.ExpenseRecord, error) {
	var row expenseRow
	if err := r.db.WithContext(ctx).Raw(expenseRecordQuery+` WHERE e.id = ? LIMIT 1`, id).Scan(&row).Error; err != nil {
		return nil, err
	}
	if row.ID == uuid.Nil {
		return nil, gorm.ErrRecordNotFound
	}
	record := row.record()
	return &record, nil
}

func (r *ExpenseRepository) Create(ctx context.Context, expense model.Expense) (*model.Expense, error) {
	var saved model.Expense
	err := r.db.WithContext(ctx).Raw(`
		INSERT INTO expenses (vehicle_id, type, liters, cost, date)
		VALUES (?, ?, ?, ?, ?)
		RETURNING`+expenseColumns+`
	`,
		expense.VehicleID,
		expense.Type,
		expense.Liters,
		expense.Cost,
		expense.Date,
	).Scan(&saved).Error
	if err != nil {
		return nil, err
	}
	return &saved, nil
}

// CreateWithVehicleInShop logs a maintenance-type expense and forces the
// vehicle into InShop as one transaction. The vehicle update is guarded
// against OnTrip so a dispatch racing this call cannot be clobbered.
func (r *ExpenseRepository) CreateWithVehicleInShop(ctx context.Context, expense model.Expense) (*model.Expense, error) {
	var saved model.Expense
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Exec(`
			UPDATE vehicles SET status = 'InShop', updated_at = NOW()
			WHERE id = ? AND status <> 'OnTrip'
		`, expense.VehicleID)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrVehicleOnTrip
		}

		return tx.Raw(`
			INSERT INTO expenses (vehicle_id, type, liters, cost, date)
			VALUES (?, ?, ?, ?, ?)
			RETURNING`+expenseColumns+`
		`,
			expense.VehicleID,
			expense.Type,
			expense.Liters,
			expense.Cost,
			expense.Date,
		).Scan(&saved).Error
	})
	if err != nil {
		return nil, err
	}
	return &saved, nil
}

// TotalsByVehicle aggregates all expenses per vehicle; vehicles without
// expense rows are absent by construction.
func (r *ExpenseRepository) TotalsByVehicle(ctx context.Context) ([]model.VehicleExpenseSummary, error) {
	var rows []model.VehicleExpenseSummary
	err := r.db.WithContext(ctx).Raw(`
		SELECT
			e.vehicle_id,
			v.name AS vehicle_name,
			v.license_plate,
			COALESCE(SUM(e.cost) FILTER (WHERE e.type = 'Fuel'), 0) AS total_fuel_cost,
			COALESCE(SUM(e.cost) FILTER (WHERE e.type = 'Maintenance'), 0) AS total_maintenance_cost,
			COALESCE(SUM(e.cost), 0) AS total_cost,
			COALESCE(SUM(e.liters), 0) AS total_liters,
			COUNT(*) AS count
		FROM expenses e
		JOIN vehicles v ON v.id = e.vehicle_id
		GROUP BY e.vehicle_id, v.name, v.license_plate
		ORDER BY v.name ASC
	`).Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
