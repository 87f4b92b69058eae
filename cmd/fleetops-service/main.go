package main

import (
	"fmt"
	"os"

	"github.com/nurpe/fleetops/internal/auth"
	"github.com/nurpe/fleetops/internal/config"
	"github.com/nurpe/fleetops/internal/db"
	"github.com/nurpe/fleetops/internal/excel"
	httphandler "github.com/nurpe/fleetops/internal/http"
	"github.com/nurpe/fleetops/internal/http/middleware"
	"github.com/nurpe/fleetops/internal/logger"
	"github.com/nurpe/fleetops/internal/pdf"
	"github.com/nurpe/fleetops/internal/repository"
	"github.com/nurpe/fleetops/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.Environment)

	database, err := db.New(cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect database")
	}

	vehicleRepo := repository.NewVehicleRepository(database)
	driverRepo := repository.NewDriverRepository(database)
	tripRepo := repository.NewTripRepository(database)
	expenseRepo := repository.NewExpenseRepository(database)
	maintenanceRepo := repository.NewMaintenanceRepository(database)
	reportRepo := repository.NewReportRepository(database)

	vehicleService := service.NewVehicleService(vehicleRepo)
	driverService := service.NewDriverService(driverRepo)
	tripService := service.NewTripService(tripRepo, vehicleRepo, driverRepo)
	expenseService := service.NewExpenseService(expenseRepo, vehicleRepo)
	maintenanceService := service.NewMaintenanceService(maintenanceRepo, vehicleRepo)
	analyticsService := service.NewAnalyticsService(reportRepo)

	tokenParser := auth.NewParser(cfg.Auth.AccessSecret)
	handler := httphandler.NewHandler(
		vehicleService,
		driverService,
		tripService,
		expenseService,
		maintenanceService,
		analyticsService,
		excel.NewGenerator(),
		pdf.NewGenerator(),
		log,
	)
	authMiddleware := middleware.Auth(tokenParser)
	router := httphandler.NewRouter(handler, authMiddleware, cfg.HTTP.AllowedOrigins, cfg.Environment)

	addr := fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port)
	log.Info().Str("addr", addr).Msg("starting fleetops service")

	if err := router.Run(addr); err != nil {
		log.Error().Err(err).Msg("server stopped")
		os.Exit(1)
	}
}
