package contracts

import (
	"context"
	"vaxtrack-service/internal/app/models"
)

// AppointmentEventPublisher pushes appointment lifecycle events to the
// notification queue. Implementations must not block the booking workflow on
// broker failures.
type AppointmentEventPublisher interface {
	PublishAppointmentEvent(ctx context.Context, event models.AppointmentEvent) error
}
