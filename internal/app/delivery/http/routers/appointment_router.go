package routers

import (
	"vaxtrack-service/internal/app/delivery/http/controllers"

	"github.com/go-chi/chi/v5"
)

func attachAppointmentRoutes(router chi.Router, appointmentController *controllers.AppointmentController) {
	router.Get("/", appointmentController.FindAll)
	router.Post("/", appointmentController.Create)
	router.Get("/{appointmentID}", appointmentController.FindByID)
	router.Put("/{appointmentID}", appointmentController.Update)
	router.Delete("/{appointmentID}", appointmentController.Delete)
}
