package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"fleet-service/internal/auth"
	"fleet-service/internal/config"
	"fleet-service/internal/db"
	httphandler "fleet-service/internal/http"
	"fleet-service/internal/http/middleware"
	"fleet-service/internal/logger"
	"fleet-service/internal/repository"
	"fleet-service/internal/s3"
	"fleet-service/internal/service"
	"fleet-service/internal/socket"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config error: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.Environment)

	database, err := db.New(cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}

	uploader, err := s3.NewUploader(cfg.S3)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to configure S3 uploader")
	}

	driverRepo := repository.NewDriverRepository(database)
	vehicleRepo := repository.NewVehicleRepository(database)
	fleetCompanyRepo := repository.NewFleetCompanyRepository(database)
	tripRepo := repository.NewTripRepository(database)
	leaveRepo := repository.NewLeaveRepository(database)
	payoutRepo := repository.NewPayoutRepository(database)
	documentRepo := repository.NewDocumentRepository(database)
	notificationRepo := repository.NewNotificationRepository(database)
	statusLogRepo := repository.NewStatusLogRepository(database)

	hub := socket.NewHub(log)

	notificationService := service.NewNotificationService(notificationRepo, hub, log)
	driverService := service.NewDriverService(driverRepo, tripRepo, statusLogRepo, notificationService)
	vehicleService := service.NewVehicleService(vehicleRepo, tripRepo, statusLogRepo, notificationService)
	fleetCompanyService := service.NewFleetCompanyService(fleetCompanyRepo, statusLogRepo)
	tripService := service.NewTripService(tripRepo)
	leaveService := service.NewLeaveService(leaveRepo, driverRepo)
	payoutService := service.NewPayoutService(payoutRepo, notificationService)
	documentService := service.NewDocumentService(documentRepo, driverRepo, vehicleRepo, fleetCompanyRepo, uploader)
	reviewService := service.NewReviewService(driverRepo, vehicleRepo, fleetCompanyRepo, statusLogRepo, notificationService)

	tokenParser := auth.NewParser(cfg.Auth.AccessSecret)

	handler := httphandler.NewHandler(
		driverService,
		vehicleService,
		fleetCompanyService,
		tripService,
		leaveService,
		payoutService,
		documentService,
		reviewService,
		notificationService,
		hub,
		log,
	)
	router := httphandler.NewRouter(handler, middleware.Auth(tokenParser), cfg.Environment)

	addr := fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port)
	log.Info().Str("addr", addr).Msg("starting fleet service")

	if err := router.Run(addr); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
