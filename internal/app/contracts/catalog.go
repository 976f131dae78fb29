package contracts

import (
	"context"
	"vaxtrack-service/internal/app/models"
)

type CatalogUsecase interface {
	ListVaccines(ctx context.Context) ([]models.Vaccine, error)
	ListHospitals(ctx context.Context) ([]models.Hospital, error)
}

// CatalogRepository serves the vaccine catalog and hospital directory. It is a
// read-only surface; vaccine status changes go through AppointmentRepository so
// they happen inside the same mutation boundary as the appointment write.
type CatalogRepository interface {
	FindAllVaccines(ctx context.Context) ([]models.Vaccine, error)
	FindVaccineByID(ctx context.Context, vaccineID int) (*models.Vaccine, error)
	FindAllHospitals(ctx context.Context) ([]models.Hospital, error)
	FindHospitalByID(ctx context.Context, hospitalID int) (*models.Hospital, error)
}
