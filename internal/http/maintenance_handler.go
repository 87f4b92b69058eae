package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/nurpe/fleetops/internal/model"
	"github.com/nurpe/fleetops/internal/repository"
	"github.com/nurpe/fleetops/internal/service"
)

func (h *Handler) listMaintenance(c *gin.Context) {
	var filter repository.MaintenanceFilter
	if raw := c.Query("vehicleId"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid vehicleId"})
			return
		}
		filter.VehicleID = &id
	}
	if raw := c.Query("status"); raw != "" {
		value := model.MaintenanceStatus(raw)
		filter.Status = &value
	}
	if raw := c.Query("type"); raw != "" {
		value := model.MaintenanceType(raw)
		filter.Type = &value
	}

	logs, err := h.maintenance.List(c.Request.Context(), filter)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, logs)
}

func (h *Handler) getMaintenance(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	log, err := h.maintenance.Get(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, log)
}

type createMaintenanceRequest struct {
	VehicleID         uuid.UUID  `json:"vehicleId" binding:"required"`
	Type              string     `json:"type" binding:"required"`
	Description       string     `json:"description" binding:"required"`
	Cost              float64    `json:"cost" binding:"required"`
	ScheduledDate     *time.Time `json:"scheduledDate"`
	OdometerAtService *float64   `json:"odometerAtService"`
	Notes             string     `json:"notes"`
}

func (h *Handler) createMaintenance(c *gin.Context) {
	var req createMaintenanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	log, err := h.maintenance.Create(c.Request.Context(), service.CreateMaintenanceInput{
		VehicleID:         req.VehicleID,
		Type:              model.MaintenanceType(req.Type),
		Description:       req.Description,
		Cost:              req.Cost,
		ScheduledDate:     req.ScheduledDate,
		OdometerAtService: req.OdometerAtService,
		Notes:             req.Notes,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, log)
}

type completeMaintenanceRequest struct {
	Notes string  `json:"notes"`
	Cost  float64 `json:"cost"`
}

func (h *Handler) completeMaintenance(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	// Notes and cost are optional overrides; the dashboard completes a log
	// with a bare PUT and no body.
	var req completeMaintenanceRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	}

	log, err := h.maintenance.Complete(c.Request.Context(), id, service.CompleteMaintenanceInput{
		Notes: req.Notes,
		Cost:  req.Cost,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, log)
}

func (h *Handler) deleteMaintenance(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.maintenance.Delete(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "maintenance log deleted"})
}

func (h *Handler) maintenanceSummary(c *gin.Context) {
	summary, err := h.maintenance.Summary(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}
