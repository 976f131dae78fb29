package constvars

type ContextKey string

const (
	CONTEXT_REQUEST_ID_KEY           ContextKey = "request_id"
	CONTEXT_IS_CLIENT_REQUEST_ID_KEY ContextKey = "is_client_request_id"
)

const (
	REQUEST_ID_PREFIX = "VAXTRACK_SVC_"
)

const (
	AppointmentEventBooked      = "appointment.booked"
	AppointmentEventRescheduled = "appointment.rescheduled"
	AppointmentEventCancelled   = "appointment.cancelled"
)

const (
	RedisKeyDiagnosisPrefix = "diagnosis:symptoms:"
)
