package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nurpe/fleetops/internal/model"
	"github.com/nurpe/fleetops/internal/service"
)

func (h *Handler) listVehicles(c *gin.Context) {
	var status *model.VehicleStatus
	if raw := c.Query("status"); raw != "" {
		value := model.VehicleStatus(raw)
		status = &value
	}

	vehicles, err := h.vehicles.List(c.Request.Context(), status)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, vehicles)
}

func (h *Handler) getVehicle(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	vehicle, err := h.vehicles.Get(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, vehicle)
}

type createVehicleRequest struct {
	Name            string   `json:"name" binding:"required"`
	LicensePlate    string   `json:"licensePlate" binding:"required"`
	Type            string   `json:"type" binding:"required"`
	MaxCapacity     float64  `json:"maxCapacity" binding:"required"`
	Odometer        *float64 `json:"odometer"`
	Status          *string  `json:"status"`
	AcquisitionCost float64  `json:"acquisitionCost"`
}

func (h *Handler) createVehicle(c *gin.Context) {
	var req createVehicleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	input := service.CreateVehicleInput{
		Name:            req.Name,
		LicensePlate:    req.LicensePlate,
		Type:            model.VehicleType(req.Type),
		MaxCapacity:     req.MaxCapacity,
		Odometer:        req.Odometer,
		AcquisitionCost: req.AcquisitionCost,
	}
	if req.Status != nil {
		status := model.VehicleStatus(*req.Status)
		input.Status = &status
	}

	vehicle, err := h.vehicles.Create(c.Request.Context(), input)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, vehicle)
}

type updateVehicleRequest struct {
	Name            *string  `json:"name"`
	LicensePlate    *string  `json:"licensePlate"`
	Type            *string  `json:"type"`
	MaxCapacity     *float64 `json:"maxCapacity"`
	Odometer        *float64 `json:"odometer"`
	Status          *string  `json:"status"`
	AcquisitionCost *float64 `json:"acquisitionCost"`
}

func (h *Handler) updateVehicle(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req updateVehicleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	input := service.UpdateVehicleInput{
		Name:            req.Name,
		LicensePlate:    req.LicensePlate,
		MaxCapacity:     req.MaxCapacity,
		Odometer:        req.Odometer,
		AcquisitionCost: req.AcquisitionCost,
	}
	if req.Type != nil {
		vehicleType := model.VehicleType(*req.Type)
		input.Type = &vehicleType
	}
	if req.Status != nil {
		status := model.VehicleStatus(*req.Status)
		input.Status = &status
	}

	vehicle, err := h.vehicles.Update(c.Request.Context(), id, input)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, vehicle)
}

func (h *Handler) deleteVehicle(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.vehicles.Delete(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "vehicle deleted"})
}
