package appointments

import (
	"context"
	"sync"
	"time"
	"vaxtrack-service/internal/app/contracts"
	"vaxtrack-service/internal/app/models"
	"vaxtrack-service/internal/pkg/constvars"
	"vaxtrack-service/internal/pkg/dto/requests"
	"vaxtrack-service/internal/pkg/exceptions"
	"vaxtrack-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type appointmentUsecase struct {
	AppointmentRepository contracts.AppointmentRepository
	EventPublisher        contracts.AppointmentEventPublisher
	Log                   *zap.Logger
}

var (
	appointmentUsecaseInstance contracts.AppointmentUsecase
	onceAppointmentUsecase     sync.Once
)

func NewAppointmentUsecase(
	appointmentRepository contracts.AppointmentRepository,
	eventPublisher contracts.AppointmentEventPublisher,
	logger *zap.Logger,
) contracts.AppointmentUsecase {
	onceAppointmentUsecase.Do(func() {
		appointmentUsecaseInstance = &appointmentUsecase{
			AppointmentRepository: appointmentRepository,
			EventPublisher:        eventPublisher,
			Log:                   logger,
		}
	})
	return appointmentUsecaseInstance
}

func (uc *appointmentUsecase) Create(ctx context.Context, request *requests.CreateAppointmentRequest) (*models.Appointment, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	err := utils.ValidateStruct(request)
	if err != nil {
		uc.Log.Error("appointmentUsecase.Create request validation failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrInputValidation(err)
	}

	appointment, err := uc.AppointmentRepository.Create(ctx, &contracts.NewAppointment{
		VaccineID:  request.VaccineID,
		Date:       request.Date,
		Time:       request.Time,
		HospitalID: request.HospitalID,
		Gender:     request.Gender,
	})
	if err != nil {
		uc.Log.Error("appointmentUsecase.Create error from repository",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int(constvars.LoggingVaccineIDKey, request.VaccineID),
			zap.Int(constvars.LoggingHospitalIDKey, request.HospitalID),
			zap.Error(err),
		)
		return nil, err
	}

	uc.publishEvent(ctx, constvars.AppointmentEventBooked, appointment)

	uc.Log.Info("appointmentUsecase.Create succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingAppointmentIDKey, appointment.ID),
		zap.Int(constvars.LoggingVaccineIDKey, appointment.VaccineID),
	)
	return appointment, nil
}

func (uc *appointmentUsecase) FindAll(ctx context.Context) ([]models.Appointment, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	appointments, err := uc.AppointmentRepository.FindAll(ctx)
	if err != nil {
		uc.Log.Error("appointmentUsecase.FindAll error from repository",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	uc.Log.Info("appointmentUsecase.FindAll succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingAppointmentCountKey, len(appointments)),
	)
	return appointments, nil
}

func (uc *appointmentUsecase) FindByID(ctx context.Context, appointmentID int) (*models.Appointment, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	appointment, err := uc.AppointmentRepository.FindByID(ctx, appointmentID)
	if err != nil {
		uc.Log.Error("appointmentUsecase.FindByID error from repository",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int(constvars.LoggingAppointmentIDKey, appointmentID),
			zap.Error(err),
		)
		return nil, err
	}
	return appointment, nil
}

func (uc *appointmentUsecase) Update(ctx context.Context, appointmentID int, request *requests.UpdateAppointmentRequest) (*models.Appointment, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	appointment, err := uc.AppointmentRepository.Update(ctx, appointmentID, &contracts.AppointmentUpdate{
		Date:       request.Date,
		Time:       request.Time,
		HospitalID: request.HospitalID,
	})
	if err != nil {
		uc.Log.Error("appointmentUsecase.Update error from repository",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int(constvars.LoggingAppointmentIDKey, appointmentID),
			zap.Error(err),
		)
		return nil, err
	}

	uc.publishEvent(ctx, constvars.AppointmentEventRescheduled, appointment)

	uc.Log.Info("appointmentUsecase.Update succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingAppointmentIDKey, appointment.ID),
	)
	return appointment, nil
}

func (uc *appointmentUsecase) Delete(ctx context.Context, appointmentID int) (*models.Appointment, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	appointment, err := uc.AppointmentRepository.Delete(ctx, appointmentID)
	if err != nil {
		uc.Log.Error("appointmentUsecase.Delete error from repository",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int(constvars.LoggingAppointmentIDKey, appointmentID),
			zap.Error(err),
		)
		return nil, err
	}

	uc.publishEvent(ctx, constvars.AppointmentEventCancelled, appointment)

	uc.Log.Info("appointmentUsecase.Delete succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingAppointmentIDKey, appointmentID),
		zap.Int(constvars.LoggingVaccineIDKey, appointment.VaccineID),
	)
	return appointment, nil
}

// publishEvent is fire-and-forget: broker failures are logged and never
// surfaced to the caller, the booking mutation has already been applied.
func (uc *appointmentUsecase) publishEvent(ctx context.Context, eventName string, appointment *models.Appointment) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	err := uc.EventPublisher.PublishAppointmentEvent(ctx, models.AppointmentEvent{
		Event:         eventName,
		AppointmentID: appointment.ID,
		VaccineID:     appointment.VaccineID,
		HospitalID:    appointment.HospitalID,
		OccurredAt:    time.Now().UTC(),
	})
	if err != nil {
		uc.Log.Error("appointmentUsecase.publishEvent failed to publish",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingEventKey, eventName),
			zap.Int(constvars.LoggingAppointmentIDKey, appointment.ID),
			zap.Error(err),
		)
	}
}
