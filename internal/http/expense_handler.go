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

func (h *Handler) listExpenses(c *gin.Context) {
	var filter repository.ExpenseFilter
	if raw := c.Query("vehicleId"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid vehicleId"})
			return
		}
		filter.VehicleID = &id
	}
	if raw := c.Query("type"); raw != "" {
		value := model.ExpenseType(raw)
		filter.Type = &value
	}

	expenses, err := h.expenses.List(c.Request.Context(), filter)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, expenses)
}

func (h *Handler) getExpense(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	expense, err := h.expenses.Get(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, expense)
}

type createExpenseRequest struct {
	VehicleID uuid.UUID  `json:"vehicleId" binding:"required"`
	Type      string     `json:"type" binding:"required"`
	Liters    *float64   `json:"liters"`
	Cost      float64    `json:"cost" binding:"required"`
	Date      *time.Time `json:"date"`
}

func (h *Handler) createExpense(c *gin.Context) {
	var req createExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	expense, err := h.expenses.Create(c.Request.Context(), service.CreateExpenseInput{
		VehicleID: req.VehicleID,
		Type:      model.ExpenseType(req.Type),
		Liters:    req.Liters,
		Cost:      req.Cost,
		Date:      req.Date,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, expense)
}

func (h *Handler) expenseTotalsByVehicle(c *gin.Context) {
	totals, err := h.expenses.TotalsByVehicle(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, totals)
}
