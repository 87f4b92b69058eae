package http

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/nurpe/fleetops/internal/http/middleware"
	"github.com/nurpe/fleetops/internal/model"
)

func NewRouter(handler *Handler, authMiddleware gin.HandlerFunc, allowedOrigins []string, environment string) *gin.Engine {
	if environment != "development" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())

	corsConfig := cors.DefaultConfig()
	if len(allowedOrigins) == 1 && allowedOrigins[0] == "*" {
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowOrigins = allowedOrigins
	}
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "Authorization")
	router.Use(cors.New(corsConfig))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := router.Group("/api")
	api.Use(authMiddleware)

	manager := middleware.RequireRole(model.RoleManager)
	fleetOps := middleware.RequireRole(model.RoleManager, model.RoleDispatcher)
	driverOps := middleware.RequireRole(model.RoleManager, model.RoleDispatcher, model.RoleSafety)
	expenseOps := middleware.RequireRole(model.RoleManager, model.RoleFinance, model.RoleDispatcher)
	reporting := middleware.RequireRole(model.RoleManager, model.RoleFinance)

	vehicles := api.Group("/vehicles")
	{
		vehicles.GET("", handler.listVehicles)
		vehicles.GET("/:id", handler.getVehicle)
		vehicles.POST("", fleetOps, handler.createVehicle)
		vehicles.PUT("/:id", fleetOps, handler.updateVehicle)
		vehicles.DELETE("/:id", manager, handler.deleteVehicle)
	}

	drivers := api.Group("/drivers")
	{
		drivers.GET("", handler.listDrivers)
		drivers.GET("/:id", handler.getDriver)
		drivers.POST("", driverOps, handler.createDriver)
		drivers.PUT("/:id", driverOps, handler.updateDriver)
		drivers.PUT("/:id/toggle-status", driverOps, handler.toggleDriverStatus)
		drivers.DELETE("/:id", manager, handler.deleteDriver)
	}

	trips := api.Group("/trips")
	{
		trips.GET("", handler.listTrips)
		trips.GET("/:id", handler.getTrip)
		trips.POST("", fleetOps, handler.dispatchTrip)
		trips.PUT("/:id/complete", fleetOps, handler.completeTrip)
		trips.PUT("/:id/cancel", fleetOps, handler.cancelTrip)
	}

	expenses := api.Group("/expenses")
	{
		expenses.GET("", handler.listExpenses)
		expenses.GET("/by-vehicle", handler.expenseTotalsByVehicle)
		expenses.GET("/:id", handler.getExpense)
		expenses.POST("", expenseOps, handler.createExpense)
	}

	maintenance := api.Group("/maintenance")
	{
		maintenance.GET("", handler.listMaintenance)
		maintenance.GET("/summary", handler.maintenanceSummary)
		maintenance.GET("/:id", handler.getMaintenance)
		maintenance.POST("", fleetOps, handler.createMaintenance)
		maintenance.PUT("/:id/complete", fleetOps, handler.completeMaintenance)
		maintenance.DELETE("/:id", fleetOps, handler.deleteMaintenance)
	}

	analytics := api.Group("/analytics")
	analytics.Use(reporting)
	{
		analytics.GET("/dashboard", handler.dashboard)
		analytics.GET("/fuel-efficiency", handler.fuelEfficiency)
		analytics.GET("/vehicle-roi", handler.vehicleROI)
		analytics.GET("/driver-performance", handler.driverPerformance)
		analytics.GET("/export/fuel-csv", handler.exportFuelEfficiencyCSV)
		analytics.GET("/export/roi-csv", handler.exportVehicleROICSV)
		analytics.GET("/export/xlsx", handler.exportAnalyticsXLSX)
		analytics.GET("/export/pdf", handler.exportFleetSummaryPDF)
	}

	return router
}
