package main

import (
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"casabook/server/config"
	"casabook/server/internal/api"
	"casabook/server/internal/database"
	"casabook/server/internal/processor"
	"casabook/server/internal/queue"
	"casabook/server/internal/service"
)

func main() {
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})
	logger.SetOutput(os.Stdout)

	// .env is optional; real deployments set the environment directly
	if err := godotenv.Load(); err == nil {
		logger.Info("Loaded environment from .env")
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.WithError(err).Fatal("Failed to load configuration")
	}

	logger.Infof("Using database at: %s", cfg.DatabasePath)
	db, err := database.NewDatabase(cfg.DatabasePath)
	if err != nil {
		logger.WithError(err).Fatal("Failed to initialize database")
	}
	defer db.Close()

	logger.Info("Running database migrations...")
	if err := db.RunMigrations(); err != nil {
		logger.WithError(err).Fatal("Failed to run database migrations")
	}

	propertyService := service.NewPropertyService(db, logger)
	reservationService := service.NewReservationService(db, db, logger)

	// Bulk import pipeline: queue assembles batches, importer writes them.
	importDB, err := database.NewImportDB(cfg.DatabasePath)
	if err != nil {
		logger.WithError(err).Fatal("Failed to open import database handle")
	}

	listingQueue := queue.NewListingQueue(
		cfg.Import.MaxBatchSize*4,
		cfg.Import.MaxBatchSize,
		time.Duration(cfg.Import.MaxBatchWaitTime)*time.Second,
		logger,
	)
	importer := processor.NewBatchImporter(importDB, listingQueue, cfg, logger)
	listingQueue.Start()
	importer.Start()
	defer importer.Stop()
	defer listingQueue.Close()

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	gin.EnableJsonDecoderDisallowUnknownFields()

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(cors.Default())

	handler := api.NewHandler(propertyService, reservationService, listingQueue, cfg.Environment, logger)
	api.SetupRoutes(router, handler)

	logger.Infof("Starting server on port %s", cfg.Port)
	if err := router.Run(":" + cfg.Port); err != nil {
		logger.WithError(err).Fatal("Server failed to start")
	}
}
