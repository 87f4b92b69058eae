package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/nurpe/fleetops/internal/excel"
	"github.com/nurpe/fleetops/internal/pdf"
	"github.com/nurpe/fleetops/internal/service"
)

type Handler struct {
	vehicles    *service.VehicleService
	drivers     *service.DriverService
	trips       *service.TripService
	expenses    *service.ExpenseService
	maintenance *service.MaintenanceService
	analytics   *service.AnalyticsService
	excel       *excel.Generator
	pdf         *pdf.Generator
	log         zerolog.Logger
}

func NewHandler(
	vehicles *service.VehicleService,
	drivers *service.DriverService,
	trips *service.TripService,
	expenses *service.ExpenseService,
	maintenance *service.MaintenanceService,
	analytics *service.AnalyticsService,
	excelGenerator *excel.Generator,
	pdfGenerator *pdf.Generator,
	log zerolog.Logger,
) *Handler {
	return &Handler{
		vehicles:    vehicles,
		drivers:     drivers,
		trips:       trips,
		expenses:    expenses,
		maintenance: maintenance,
		analytics:   analytics,
		excel:       excelGenerator,
		pdf:         pdfGenerator,
		log:         log,
	}
}

func (h *Handler) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrValidation), errors.Is(err, service.ErrConflict):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	default:
		h.log.Error().Err(err).Str("path", c.FullPath()).Msg("request failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}

func parseID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return uuid.Nil, false
	}
	return id, true
}
