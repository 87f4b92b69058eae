package pdf

import (
	"bytes"
	"fmt"
	"time"

	"github.com/jung-kurt/gofpdf"

	"github.com/nurpe/fleetops/internal/model"
)

// Generator renders the one-page fleet summary handed out at operations
// reviews. All output is ASCII, so the built-in Helvetica face suffices.
type Generator struct {
	fontName string
}

func NewGenerator() *Generator {
	return &Generator{fontName: "Helvetica"}
}

func (g *Generator) Generate(stats model.DashboardStats, roi []model.VehicleROIRow, generatedAt time.Time) ([]byte, error) {
	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.SetMargins(15, 15, 15)
	pdf.AddPage()

	pdf.SetFont(g.fontName, "B", 14)
	pdf.CellFormat(0, 10, "Fleet Operations Summary", "", 1, "C", false, 0, "")

	pdf.SetFont(g.fontName, "", 11)
	pdf.CellFormat(0, 6, fmt.Sprintf("Generated %s", generatedAt.Format("2006-01-02 15:04")), "", 1, "C", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont(g.fontName, "B", 12)
	pdf.CellFormat(0, 8, "Fleet status", "", 1, "L", false, 0, "")
	pdf.SetFont(g.fontName, "", 11)
	lines := []string{
		fmt.Sprintf("Vehicles: %d total, %d available, %d on trip, %d in shop, %d retired",
			stats.TotalVehicles, stats.AvailableVehicles, stats.OnTripVehicles, stats.InShopVehicles, stats.RetiredVehicles),
		fmt.Sprintf("Active fleet: %d vehicles, utilization %d%%", stats.ActiveFleet, stats.Utilization),
		fmt.Sprintf("Drivers: %d total, %d on duty", stats.TotalDrivers, stats.OnDutyDrivers),
		fmt.Sprintf("Trips: %d dispatched, %d completed", stats.PendingTrips, stats.CompletedTrips),
	}
	for _, line := range lines {
		pdf.CellFormat(0, 6, line, "", 1, "L", false, 0, "")
	}
	pdf.Ln(4)

	pdf.SetFont(g.fontName, "B", 12)
	pdf.CellFormat(0, 8, "Vehicle return on investment", "", 1, "L", false, 0, "")

	headers := []string{"Vehicle", "Plate", "Type", "Acquisition ($)", "Revenue ($)", "Expenses ($)", "ROI (%)"}
	colWidths := []float64{70, 30, 25, 35, 35, 35, 30}
	drawTableRow(pdf, g.fontName, headers, colWidths, true)

	for _, row := range roi {
		drawTableRow(pdf, g.fontName, []string{
			row.VehicleName,
			row.LicensePlate,
			string(row.Type),
			formatAmount(row.AcquisitionCost, 2),
			formatAmount(row.TotalRevenue, 2),
			formatAmount(row.TotalExpenses, 2),
			formatAmount(row.ROI, 2),
		}, colWidths, false)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func drawTableRow(pdf *gofpdf.Fpdf, fontName string, cols []string, widths []float64, header bool) {
	style := ""
	if header {
		style = "B"
	}
	pdf.SetFont(fontName, style, 10)
	for i, col := range cols {
		align := "L"
		if i > 2 {
			align = "R"
		}
		pdf.CellFormat(widths[i], 8, col, "1", 0, align, false, 0, "")
	}
	pdf.Ln(-1)
}

func formatAmount(value float64, precision int) string {
	format := fmt.Sprintf("%%.%df", precision)
	return fmt.Sprintf(format, value)
}
