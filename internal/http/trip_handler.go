package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/nurpe/fleetops/internal/model"
	"github.com/nurpe/fleetops/internal/service"
)

func (h *Handler) listTrips(c *gin.Context) {
	var status *model.TripStatus
	if raw := c.Query("status"); raw != "" {
		value := model.TripStatus(raw)
		status = &value
	}

	trips, err := h.trips.List(c.Request.Context(), status)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, trips)
}

func (h *Handler) getTrip(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	trip, err := h.trips.Get(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, trip)
}

type dispatchTripRequest struct {
	VehicleID   uuid.UUID `json:"vehicleId" binding:"required"`
	DriverID    uuid.UUID `json:"driverId" binding:"required"`
	CargoWeight float64   `json:"cargoWeight" binding:"required"`
	Origin      string    `json:"origin"`
	Destination string    `json:"destination"`
	Revenue     float64   `json:"revenue"`
}

func (h *Handler) dispatchTrip(c *gin.Context) {
	var req dispatchTripRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	trip, err := h.trips.Dispatch(c.Request.Context(), service.DispatchTripInput{
		VehicleID:   req.VehicleID,
		DriverID:    req.DriverID,
		CargoWeight: req.CargoWeight,
		Origin:      req.Origin,
		Destination: req.Destination,
		Revenue:     req.Revenue,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, trip)
}

type completeTripRequest struct {
	EndOdometer float64  `json:"endOdometer" binding:"required"`
	Revenue     *float64 `json:"revenue"`
}

func (h *Handler) completeTrip(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req completeTripRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	trip, err := h.trips.Complete(c.Request.Context(), id, service.CompleteTripInput{
		EndOdometer: req.EndOdometer,
		Revenue:     req.Revenue,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, trip)
}

func (h *Handler) cancelTrip(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	trip, err := h.trips.Cancel(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, trip)
}
