package routers

import (
	"vaxtrack-service/internal/app/delivery/http/controllers"

	"github.com/go-chi/chi/v5"
)

func attachCatalogRoutes(router chi.Router, catalogController *controllers.CatalogController) {
	router.Get("/vaccines", catalogController.ListVaccines)
	router.Get("/hospitals", catalogController.ListHospitals)
}
