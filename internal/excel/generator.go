package excel

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/nurpe/fleetops/internal/model"
)

type Generator struct{}

func NewGenerator() *Generator {
	return &Generator{}
}

// Generate builds the analytics workbook: one sheet per report, fuel
// efficiency first.
func (g *Generator) Generate(fuel []model.FuelEfficiencyRow, roi []model.VehicleROIRow) ([]byte, error) {
	file := excelize.NewFile()

	fuelSheet := "Fuel Efficiency"
	file.SetSheetName("Sheet1", fuelSheet)
	if err := g.writeFuelEfficiency(file, fuelSheet, fuel); err != nil {
		return nil, err
	}

	roiSheet := "Vehicle ROI"
	file.NewSheet(roiSheet)
	if err := g.writeVehicleROI(file, roiSheet, roi); err != nil {
		return nil, err
	}

	file.SetActiveSheet(0)
	buf, err := file.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (g *Generator) writeFuelEfficiency(file *excelize.File, sheet string, rows []model.FuelEfficiencyRow) error {
	set := func(cell string, value interface{}) {
		_ = file.SetCellValue(sheet, cell, value)
	}

	headers := []string{
		"Vehicle",
		"License Plate",
		"Type",
		"Total Distance (km)",
		"Total Liters",
		"Fuel Cost ($)",
		"Efficiency (km/L)",
		"Trips",
	}
	for i, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		set(cell, header)
	}

	for i, row := range rows {
		r := i + 2
		set(fmt.Sprintf("A%d", r), row.VehicleName)
		set(fmt.Sprintf("B%d", r), row.LicensePlate)
		set(fmt.Sprintf("C%d", r), string(row.Type))
		set(fmt.Sprintf("D%d", r), row.TotalDistance)
		set(fmt.Sprintf("E%d", r), row.TotalLiters)
		set(fmt.Sprintf("F%d", r), row.TotalFuelCost)
		set(fmt.Sprintf("G%d", r), row.Efficiency)
		set(fmt.Sprintf("H%d", r), row.TripCount)
	}

	_ = file.SetColWidth(sheet, "A", "A", 28)
	_ = file.SetColWidth(sheet, "B", "C", 16)
	_ = file.SetColWidth(sheet, "D", "H", 18)
	return nil
}

func (g *Generator) writeVehicleROI(file *excelize.File, sheet string, rows []model.VehicleROIRow) error {
	set := func(cell string, value interface{}) {
		_ = file.SetCellValue(sheet, cell, value)
	}

	headers := []string{
		"Vehicle",
		"License Plate",
		"Type",
		"Acquisition Cost ($)",
		"Revenue ($)",
		"Fuel Cost ($)",
		"Maintenance Cost ($)",
		"Total Expenses ($)",
		"ROI (%)",
	}
	for i, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		set(cell, header)
	}

	for i, row := range rows {
		r := i + 2
		set(fmt.Sprintf("A%d", r), row.VehicleName)
		set(fmt.Sprintf("B%d", r), row.LicensePlate)
		set(fmt.Sprintf("C%d", r), string(row.Type))
		set(fmt.Sprintf("D%d", r), row.AcquisitionCost)
		set(fmt.Sprintf("E%d", r), row.TotalRevenue)
		set(fmt.Sprintf("F%d", r), row.TotalFuelCost)
		set(fmt.Sprintf("G%d", r), row.TotalMaintenanceCost)
		set(fmt.Sprintf("H%d", r), row.TotalExpenses)
		set(fmt.Sprintf("I%d", r), row.ROI)
	}

	_ = file.SetColWidth(sheet, "A", "A", 28)
	_ = file.SetColWidth(sheet, "B", "C", 16)
	_ = file.SetColWidth(sheet, "D", "I", 20)
	return nil
}
