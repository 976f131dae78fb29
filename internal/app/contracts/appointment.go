package contracts

import (
	"context"
	"vaxtrack-service/internal/app/models"
	"vaxtrack-service/internal/pkg/dto/requests"
)

type AppointmentUsecase interface {
	Create(ctx context.Context, request *requests.CreateAppointmentRequest) (*models.Appointment, error)
	FindAll(ctx context.Context) ([]models.Appointment, error)
	FindByID(ctx context.Context, appointmentID int) (*models.Appointment, error)
	Update(ctx context.Context, appointmentID int, request *requests.UpdateAppointmentRequest) (*models.Appointment, error)
	Delete(ctx context.Context, appointmentID int) (*models.Appointment, error)
}

// NewAppointment is the validated booking input handed to the repository.
type NewAppointment struct {
	VaccineID  int
	Date       string
	Time       string
	HospitalID int
	Gender     string
}

// AppointmentUpdate is a partial reschedule. Zero values mean "leave unchanged",
// mirroring how the frontend omits untouched form fields.
type AppointmentUpdate struct {
	Date       string
	Time       string
	HospitalID int
}

// AppointmentRepository owns the appointment collection and performs each
// mutation, including the linked vaccine status flip, as one atomic operation
// under the store's single lock.
type AppointmentRepository interface {
	FindAll(ctx context.Context) ([]models.Appointment, error)
	FindByID(ctx context.Context, appointmentID int) (*models.Appointment, error)
	Create(ctx context.Context, in *NewAppointment) (*models.Appointment, error)
	Update(ctx context.Context, appointmentID int, in *AppointmentUpdate) (*models.Appointment, error)
	Delete(ctx context.Context, appointmentID int) (*models.Appointment, error)
}
