package db

import (
	"fmt"

	"gorm.io/gorm"
)

var migrationStatements = []string{
	`CREATE EXTENSION IF NOT EXISTS "uuid-ossp";`,
	`DO $$
	BEGIN
		IF NOT EXISTS (SELECT 1 FROM pg_type WHERE typname = 'vehicle_type') THEN
			CREATE TYPE vehicle_type AS ENUM ('Truck', 'Van', 'Bike');
		END IF;
		IF NOT EXISTS (SELECT 1 FROM pg_type WHERE typname = 'vehicle_status') THEN
			CREATE TYPE vehicle_status AS ENUM ('Available', 'OnTrip', 'InShop', 'Retired');
		END IF;
		IF NOT EXISTS (SELECT 1 FROM pg_type WHERE typname = 'driver_category') THEN
			CREATE TYPE driver_category AS ENUM ('Truck', 'Van');
		END IF;
		IF NOT EXISTS (SELECT 1 FROM pg_type WHERE typname = 'driver_status') THEN
			CREATE TYPE driver_status AS ENUM ('OnDuty', 'OffDuty', 'Suspended', 'OnTrip');
		END IF;
		IF NOT EXISTS (SELECT 1 FROM pg_type WHERE typname = 'trip_status') THEN
			CREATE TYPE trip_status AS ENUM ('Dispatched', 'Completed', 'Cancelled');
		END IF;
		IF NOT EXISTS (SELECT 1 FROM pg_type WHERE typname = 'expense_type') THEN
			CREATE TYPE expense_type AS ENUM ('Fuel', 'Maintenance');
		END IF;
		IF NOT EXISTS (SELECT 1 FROM pg_type WHERE typname = 'maintenance_type') THEN
			CREATE TYPE maintenance_type AS ENUM ('Preventive', 'Reactive', 'Inspection');
		END IF;
		IF NOT EXISTS (SELECT 1 FROM pg_type WHERE typname = 'maintenance_status') THEN
			CREATE TYPE maintenance_status AS ENUM ('Scheduled', 'InProgress', 'Completed');
		END IF;
	END
	$$;`,
	`CREATE TABLE IF NOT EXISTS vehicles (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		name VARCHAR(128) NOT NULL,
		license_plate VARCHAR(32) NOT NULL,
		type vehicle_type NOT NULL,
		max_capacity NUMERIC(12,2) NOT NULL,
		odometer NUMERIC(14,2) NOT NULL DEFAULT 0,
		status vehicle_status NOT NULL DEFAULT 'Available',
		acquisition_cost NUMERIC(14,2) NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
	`CREATE UNIQUE INDEX IF NOT EXISTS uq_vehicles_license_plate ON vehicles (license_plate);`,
	`CREATE INDEX IF NOT EXISTS idx_vehicles_status ON vehicles (status);`,
	`CREATE TABLE IF NOT EXISTS drivers (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		name VARCHAR(128) NOT NULL,
		license_number VARCHAR(64) NOT NULL,
		license_expiry TIMESTAMPTZ NOT NULL,
		category driver_category NOT NULL,
		status driver_status NOT NULL DEFAULT 'OnDuty',
		safety_score NUMERIC(5,2) NOT NULL DEFAULT 100,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
	`CREATE UNIQUE INDEX IF NOT EXISTS uq_drivers_license_number ON drivers (license_number);`,
	`CREATE INDEX IF NOT EXISTS idx_drivers_status ON drivers (status);`,
	`CREATE TABLE IF NOT EXISTS trips (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		vehicle_id UUID NOT NULL,
		driver_id UUID NOT NULL,
		cargo_weight NUMERIC(12,2) NOT NULL,
		origin VARCHAR(256) NOT NULL DEFAULT '',
		destination VARCHAR(256) NOT NULL DEFAULT '',
		start_odometer NUMERIC(14,2) NOT NULL,
		end_odometer NUMERIC(14,2),
		distance NUMERIC(14,2) NOT NULL DEFAULT 0,
		revenue NUMERIC(14,2) NOT NULL DEFAULT 0,
		status trip_status NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
	`CREATE INDEX IF NOT EXISTS idx_trips_vehicle_id ON trips (vehicle_id);`,
	`CREATE INDEX IF NOT EXISTS idx_trips_driver_id ON trips (driver_id);`,
	`CREATE INDEX IF NOT EXISTS idx_trips_status ON trips (status);`,
	`CREATE TABLE IF NOT EXISTS expenses (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		vehicle_id UUID NOT NULL,
		type expense_type NOT NULL,
		liters NUMERIC(12,2) NOT NULL DEFAULT 0,
		cost NUMERIC(14,2) NOT NULL,
		date TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
	`CREATE INDEX IF NOT EXISTS idx_expenses_vehicle_id ON expenses (vehicle_id);`,
	`CREATE INDEX IF NOT EXISTS idx_expenses_type ON expenses (type);`,
	`CREATE TABLE IF NOT EXISTS maintenance_logs (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		vehicle_id UUID NOT NULL,
		type maintenance_type NOT NULL,
		description TEXT NOT NULL,
		cost NUMERIC(14,2) NOT NULL,
		status maintenance_status NOT NULL DEFAULT 'InProgress',
		scheduled_date TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		completed_date TIMESTAMPTZ,
		odometer_at_service NUMERIC(14,2) NOT NULL DEFAULT 0,
		notes TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
	`CREATE INDEX IF NOT EXISTS idx_maintenance_logs_vehicle_id ON maintenance_logs (vehicle_id);`,
	`CREATE INDEX IF NOT EXISTS idx_maintenance_logs_status ON maintenance_logs (status);`,
}

func runMigrations(db *gorm.DB) error {
	for i, stmt := range migrationStatements {
		if err := db.Exec(stmt).Error; err != nil {
			return fmt.Errorf("migration %d failed: %w", i+1, err)
		}
	}
	return nil
}
