package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/nurpe/fleetops/internal/csvexport"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

func (h *Handler) dashboard(c *gin.Context) {
	stats, err := h.analytics.Dashboard(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

func (h *Handler) fuelEfficiency(c *gin.Context) {
	rows, err := h.analytics.FuelEfficiency(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

func (h *Handler) vehicleROI(c *gin.Context) {
	rows, err := h.analytics.VehicleROI(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

func (h *Handler) driverPerformance(c *gin.Context) {
	rows, err := h.analytics.DriverPerformance(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

func (h *Handler) exportFuelEfficiencyCSV(c *gin.Context) {
	rows, err := h.analytics.FuelEfficiency(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="fuel-efficiency-report.csv"`)
	c.Data(http.StatusOK, "text/csv", csvexport.FuelEfficiency(rows))
}

func (h *Handler) exportVehicleROICSV(c *gin.Context) {
	rows, err := h.analytics.VehicleROI(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="vehicle-roi-report.csv"`)
	c.Data(http.StatusOK, "text/csv", csvexport.VehicleROI(rows))
}

func (h *Handler) exportAnalyticsXLSX(c *gin.Context) {
	fuel, err := h.analytics.FuelEfficiency(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}
	roi, err := h.analytics.VehicleROI(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	content, err := h.excel.Generate(fuel, roi)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="fleet-analytics.xlsx"`)
	c.Data(http.StatusOK, xlsxContentType, content)
}

func (h *Handler) exportFleetSummaryPDF(c *gin.Context) {
	stats, err := h.analytics.Dashboard(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}
	roi, err := h.analytics.VehicleROI(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	content, err := h.pdf.Generate(*stats, roi, time.Now())
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="fleet-summary.pdf"`)
	c.Data(http.StatusOK, "application/pdf", content)
}
