// Package csvexport renders the analytics reports in the CSV layout the
// fleet dashboard's download buttons expect: string cells quoted, numeric
// cells bare, CRLF-free line endings.
package csvexport

import (
	"strconv"
	"strings"

	"github.com/nurpe/fleetops/internal/model"
)

const fuelEfficiencyHeader = "Vehicle,License Plate,Type,Total Distance (km),Total Liters,Fuel Cost ($),Efficiency (km/L),Trips"

const vehicleROIHeader = "Vehicle,License Plate,Type,Acquisition Cost ($),Revenue ($),Fuel Cost ($),Maintenance Cost ($),Total Expenses ($),ROI (%)"

func FuelEfficiency(rows []model.FuelEfficiencyRow) []byte {
	var b strings.Builder
	b.WriteString(fuelEfficiencyHeader)
	b.WriteByte('\n')
	for _, row := range rows {
		writeRecord(&b,
			quote(row.VehicleName),
			quote(row.LicensePlate),
			quote(string(row.Type)),
			number(row.TotalDistance),
			number(row.TotalLiters),
			number(row.TotalFuelCost),
			number(row.Efficiency),
			strconv.FormatInt(row.TripCount, 10),
		)
	}
	return []byte(b.String())
}

func VehicleROI(rows []model.VehicleROIRow) []byte {
	var b strings.Builder
	b.WriteString(vehicleROIHeader)
	b.WriteByte('\n')
	for _, row := range rows {
		writeRecord(&b,
			quote(row.VehicleName),
			quote(row.LicensePlate),
			quote(string(row.Type)),
			number(row.AcquisitionCost),
			number(row.TotalRevenue),
			number(row.TotalFuelCost),
			number(row.TotalMaintenanceCost),
			number(row.TotalExpenses),
			number(row.ROI),
		)
	}
	return []byte(b.String())
}

func writeRecord(b *strings.Builder, cells ...string) {
	for i, cell := range cells {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(cell)
	}
	b.WriteByte('\n')
}

func quote(value string) string {
	return `"` + strings.ReplaceAll(value, `"`, `""`) + `"`
}

func number(value float64) string {
	return strconv.FormatFloat(value, 'f', -1, 64)
}
