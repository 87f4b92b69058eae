package excel

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/nurpe/fleetops/internal/model"
)

func TestGenerateWorkbook(t *testing.T) {
	g := NewGenerator()

	fuel := []model.FuelEfficiencyRow{
		{
			VehicleName:   "Volvo FH16",
			LicensePlate:  "KZ-001-AA",
			Type:          model.VehicleTypeTruck,
			TotalDistance: 1000,
			TotalLiters:   80,
			Efficiency:    12.5,
			TripCount:     7,
		},
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

	content, err := g.Generate(fuel, roi)
	require.NoError(t, err)

	file, err := excelize.OpenReader(bytes.NewReader(content))
	require.NoError(t, err)
	defer file.Close()

	sheets := file.GetSheetList()
	assert.Equal(t, []string{"Fuel Efficiency", "Vehicle ROI"}, sheets)

	header, err := file.GetCellValue("Fuel Efficiency", "A1")
	require.NoError(t, err)
	assert.Equal(t, "Vehicle", header)

	name, err := file.GetCellValue("Fuel Efficiency", "A2")
	require.NoError(t, err)
	assert.Equal(t, "Volvo FH16", name)

	roiHeader, err := file.GetCellValue("Vehicle ROI", "I1")
	require.NoError(t, err)
	assert.Equal(t, "ROI (%)", roiHeader)

	roiValue, err := file.GetCellValue("Vehicle ROI", "I2")
	require.NoError(t, err)
	assert.Equal(t, "25", roiValue)
}

func TestGenerateEmptyReports(t *testing.T) {
	g := NewGenerator()

	content, err := g.Generate(nil, nil)
	require.NoError(t, err)

	file, err := excelize.OpenReader(bytes.NewReader(content))
	require.NoError(t, err)
	defer file.Close()

	assert.Len(t, file.GetSheetList(), 2)
}
