package messaging

import (
	"context"
	"sync"
	"time"
	"vaxtrack-service/internal/app/contracts"
	"vaxtrack-service/internal/app/models"
	"vaxtrack-service/internal/pkg/constvars"
	"vaxtrack-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
	"github.com/rabbitmq/amqp091-go"
	"github.com/sony/gobreaker"
	"go.uber.org/zap"
)

type appointmentPublisher struct {
	channel   *amqp091.Channel
	breaker   *gobreaker.CircuitBreaker
	queueName string
	log       *zap.Logger
}

var (
	appointmentPublisherInstance contracts.AppointmentEventPublisher
	onceAppointmentPublisher     sync.Once
	appointmentPublisherError    error
)

// NewAppointmentPublisher declares the notification queue and wraps publishes
// in a circuit breaker so a dead broker degrades to logged drops instead of
// piling up blocked requests.
func NewAppointmentPublisher(
	connection *amqp091.Connection,
	queueName string,
	logger *zap.Logger,
) (contracts.AppointmentEventPublisher, error) {
	onceAppointmentPublisher.Do(func() {
		channel, err := connection.Channel()
		if err != nil {
			appointmentPublisherError = err
			return
		}

		_, err = channel.QueueDeclare(
			queueName,
			true,  // durable
			false, // auto-delete
			false, // exclusive
			false, // no-wait
			nil,
		)
		if err != nil {
			appointmentPublisherError = err
			return
		}

		breaker := gobreaker.NewCircuitBreaker(gobreaker.Settings{
			Name:        "RabbitMQ-AppointmentEvents",
			MaxRequests: 3,
			Interval:    time.Second * 10,
			Timeout:     time.Second * 30,
			ReadyToTrip: func(counts gobreaker.Counts) bool {
				return counts.ConsecutiveFailures >= 3
			},
			OnStateChange: func(name string, from, to gobreaker.State) {
				logger.Warn("Circuit breaker state changed",
					zap.String("breaker", name),
					zap.String("from", from.String()),
					zap.String("to", to.String()),
				)
			},
		})

		appointmentPublisherInstance = &appointmentPublisher{
			channel:   channel,
			breaker:   breaker,
			queueName: queueName,
			log:       logger,
		}
	})
	return appointmentPublisherInstance, appointmentPublisherError
}

func (p *appointmentPublisher) PublishAppointmentEvent(ctx context.Context, event models.AppointmentEvent) error {
	body, err := json.Marshal(event)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}

	_, err = p.breaker.Execute(func() (interface{}, error) {
		publishErr := p.channel.PublishWithContext(
			ctx,
			"",          // default exchange
			p.queueName, // routing key == queue name
			false,       // mandatory
			false,       // immediate
			amqp091.Publishing{
				ContentType:  constvars.MIMEApplicationJSON,
				DeliveryMode: amqp091.Persistent,
				Body:         body,
			},
		)
		return nil, publishErr
	})
	if err != nil {
		return exceptions.ErrRabbitMQPublishMessage(err, p.queueName)
	}

	p.log.Debug("Published appointment event",
		zap.String(constvars.LoggingEventKey, event.Event),
		zap.String(constvars.LoggingQueueKey, p.queueName),
		zap.Int(constvars.LoggingAppointmentIDKey, event.AppointmentID),
	)
	return nil
}
