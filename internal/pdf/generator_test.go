package pdf

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nurpe/fleetops/internal/model"
)

func TestGenerateFleetSummary(t *testing.T) {
	g := NewGenerator()

	stats := model.DashboardStats{
		TotalVehicles:     10,
		AvailableVehicles: 3,
		OnTripVehicles:    4,
		InShopVehicles:    1,
		RetiredVehicles:   2,
		ActiveFleet:       8,
		Utilization:       50,
		TotalDrivers:      12,
		OnDutyDrivers:     7,
		PendingTrips:      4,
		CompletedTrips:    31,
	}
	roi := []model.VehicleROIRow{
		{
			VehicleName:     "Volvo FH16",
			LicensePlate:    "KZ-001-AA",
			Type:            model.VehicleTypeTruck,
			AcquisitionCost: 120000,
			TotalRevenue:    45000,
			TotalExpenses:   15000,
			ROI:             25,
		},
	}

	content, err := g.Generate(stats, roi, time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC))

	require.NoError(t, err)
	require.NotEmpty(t, content)
	assert.Equal(t, "%PDF", string(content[:4]))
}
