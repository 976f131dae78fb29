package routers

import (
	"time"
	"vaxtrack-service/internal/app/config"
	"vaxtrack-service/internal/app/delivery/http/controllers"
	"vaxtrack-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func SetupRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	middlewares *middlewares.Middlewares,
	healthController *controllers.HealthController,
	catalogController *controllers.CatalogController,
	appointmentController *controllers.AppointmentController,
	diagnosisController *controllers.DiagnosisController,
) {
	corsOptions := cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}
	router.Use(cors.Handler(corsOptions))

	rateLimiter := httprate.LimitByIP(internalConfig.App.MaxRequests, time.Second)
	router.Use(rateLimiter)

	router.Use(middlewares.RequestIDMiddleware)
	router.Use(middlewares.Logging)
	router.Use(middlewares.Metrics)
	router.Use(middlewares.ErrorHandler)

	router.Handle("/metrics", promhttp.Handler())

	router.Route("/api", func(r chi.Router) {
		r.Get("/health", healthController.Check)

		attachCatalogRoutes(r, catalogController)

		r.Route("/appointments", func(r chi.Router) {
			attachAppointmentRoutes(r, appointmentController)
		})

		attachDiagnosisRoutes(r, diagnosisController)
	})
}
