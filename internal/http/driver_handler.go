package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/nurpe/fleetops/internal/model"
	"github.com/nurpe/fleetops/internal/service"
)

func (h *Handler) listDrivers(c *gin.Context) {
	var status *model.DriverStatus
	if raw := c.Query("status"); raw != "" {
		value := model.DriverStatus(raw)
		status = &value
	}

	drivers, err := h.drivers.List(c.Request.Context(), status)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, drivers)
}

func (h *Handler) getDriver(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	driver, err := h.drivers.Get(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, driver)
}

type createDriverRequest struct {
	Name          string    `json:"name" binding:"required"`
	LicenseNumber string    `json:"licenseNumber" binding:"required"`
	LicenseExpiry time.Time `json:"licenseExpiry" binding:"required"`
	Category      string    `json:"category" binding:"required"`
	Status        *string   `json:"status"`
	SafetyScore   *float64  `json:"safetyScore"`
}

func (h *Handler) createDriver(c *gin.Context) {
	var req createDriverRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	input := service.CreateDriverInput{
		Name:          req.Name,
		LicenseNumber: req.LicenseNumber,
		LicenseExpiry: req.LicenseExpiry,
		Category:      model.DriverCategory(req.Category),
		SafetyScore:   req.SafetyScore,
	}
	if req.Status != nil {
		status := model.DriverStatus(*req.Status)
		input.Status = &status
	}

	driver, err := h.drivers.Create(c.Request.Context(), input)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, driver)
}

type updateDriverRequest struct {
	Name          *string    `json:"name"`
	LicenseNumber *string    `json:"licenseNumber"`
	LicenseExpiry *time.Time `json:"licenseExpiry"`
	Category      *string    `json:"category"`
	Status        *string    `json:"status"`
	SafetyScore   *float64   `json:"safetyScore"`
}

func (h *Handler) updateDriver(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req updateDriverRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	input := service.UpdateDriverInput{
		Name:          req.Name,
		LicenseNumber: req.LicenseNumber,
		LicenseExpiry: req.LicenseExpiry,
		SafetyScore:   req.SafetyScore,
	}
	if req.Category != nil {
		category := model.DriverCategory(*req.Category)
		input.Category = &category
	}
	if req.Status != nil {
		status := model.DriverStatus(*req.Status)
		input.Status = &status
	}

	driver, err := h.drivers.Update(c.Request.Context(), id, input)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, driver)
}

func (h *Handler) toggleDriverStatus(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	driver, err := h.drivers.ToggleStatus(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, driver)
}

func (h *Handler) deleteDriver(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.drivers.Delete(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "driver deleted"})
}
