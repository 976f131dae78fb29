package routers

import (
	"vaxtrack-service/internal/app/delivery/http/controllers"

	"github.com/go-chi/chi/v5"
)

func attachDiagnosisRoutes(router chi.Router, diagnosisController *controllers.DiagnosisController) {
	router.Post("/analyze-symptoms", diagnosisController.AnalyzeSymptoms)
}
