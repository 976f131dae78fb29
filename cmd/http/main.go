package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
	"vaxtrack-service/internal/app/config"
	"vaxtrack-service/internal/app/delivery/http/controllers"
	"vaxtrack-service/internal/app/delivery/http/middlewares"
	"vaxtrack-service/internal/app/delivery/http/routers"
	"vaxtrack-service/internal/app/drivers/database"
	"vaxtrack-service/internal/app/drivers/logger"
	"vaxtrack-service/internal/app/drivers/messaging"
	"vaxtrack-service/internal/app/services/core/appointments"
	"vaxtrack-service/internal/app/services/core/catalog"
	"vaxtrack-service/internal/app/services/core/diagnosis"
	"vaxtrack-service/internal/app/services/core/store"
	sharedmessaging "vaxtrack-service/internal/app/services/shared/messaging"
	sharedredis "vaxtrack-service/internal/app/services/shared/redis"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	log := logger.NewZapLogger(driverConfig, internalConfig)

	redisClient := database.NewRedisClient(driverConfig)
	rabbitMQ := messaging.NewRabbitMQ(driverConfig)
	chiRouter := chi.NewRouter()

	bootstrap := &config.Bootstrap{
		Router:         chiRouter,
		Redis:          redisClient,
		RabbitMQ:       rabbitMQ,
		Logger:         log,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	}

	bootstrapTheApp(bootstrap)

	server := &http.Server{
		Addr:    internalConfig.App.Port,
		Handler: chiRouter,
	}

	go func() {
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start", zap.Error(err))
		}
	}()
	log.Info("Server started", zap.String("port", internalConfig.App.Port))

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	log.Info("Waiting for pending requests already received by the server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeout),
	)
	defer cancel()

	err := server.Shutdown(shutdownCtx)
	if err != nil {
		log.Fatal("Server forced to shutdown", zap.Error(err))
	}

	err = bootstrap.Shutdown(shutdownCtx)
	if err != nil {
		log.Fatal("Error while closing drivers", zap.Error(err))
	}

	log.Info("Server exiting")
}

func bootstrapTheApp(bootstrap *config.Bootstrap) {
	// Shared
	redisRepository := sharedredis.NewRedisRepository(bootstrap.Redis)
	eventPublisher, err := sharedmessaging.NewAppointmentPublisher(
		bootstrap.RabbitMQ,
		bootstrap.InternalConfig.App.AppointmentEventQueue,
		bootstrap.Logger,
	)
	if err != nil {
		bootstrap.Logger.Fatal("Failed to initialize appointment event publisher", zap.Error(err))
	}

	// Middlewares
	middlewares := middlewares.NewMiddlewares(bootstrap.Logger, bootstrap.InternalConfig)

	// Store holding the seeded catalog and the appointment collection
	inMemoryStore := store.NewInMemoryStore()

	// Catalog
	catalogUsecase := catalog.NewCatalogUsecase(inMemoryStore, bootstrap.Logger)
	catalogController := controllers.NewCatalogController(bootstrap.Logger, catalogUsecase)

	// Appointments
	appointmentUsecase := appointments.NewAppointmentUsecase(inMemoryStore, eventPublisher, bootstrap.Logger)
	appointmentController := controllers.NewAppointmentController(bootstrap.Logger, appointmentUsecase)

	// Diagnosis proxy
	diagnosisClient := diagnosis.NewRapidAPIClient(bootstrap.InternalConfig, bootstrap.Logger)
	diagnosisUsecase := diagnosis.NewDiagnosisUsecase(diagnosisClient, redisRepository, bootstrap.InternalConfig, bootstrap.Logger)
	diagnosisController := controllers.NewDiagnosisController(bootstrap.Logger, diagnosisUsecase)

	// Health
	healthController := controllers.NewHealthController(bootstrap.Logger, bootstrap.InternalConfig)

	routers.SetupRoutes(
		bootstrap.Router,
		bootstrap.InternalConfig,
		middlewares,
		healthController,
		catalogController,
		appointmentController,
		diagnosisController,
	)
}
