package repository

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// Guard errors reported by transactional state transitions when the
// re-checked row status no longer matches the expected one (for example a
// concurrent dispatch already took the vehicle).
var (
	ErrVehicleNotAvailable  = errors.New("vehicle not available")
	ErrDriverNotOnDuty      = errors.New("driver not on duty")
	ErrTripNotDispatched    = errors.New("trip not dispatched")
	ErrVehicleOnTrip        = errors.New("vehicle on trip")
	ErrMaintenanceCompleted = errors.New("maintenance already completed")

	// ErrDuplicateKey is returned when a unique index rejects a write that
	// slipped past the service-level pre-check.
	ErrDuplicateKey = errors.New("duplicate key")
)

const pgUniqueViolation = "23505"

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation
}
