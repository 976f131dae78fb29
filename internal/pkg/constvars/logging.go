package constvars

const (
	LoggingRequestIDKey        = "request_id"
	LoggingMethodKey           = "method"
	LoggingEndpointKey         = "endpoint"
	LoggingRemoteAddrKey       = "remote_addr"
	LoggingUserAgentKey        = "user_agent"
	LoggingQueryKey            = "query"
	LoggingStatusCodeKey       = "status_code"
	LoggingDurationKey         = "duration"
	LoggingSuccessKey          = "success"
	LoggingVaccineIDKey        = "vaccine_id"
	LoggingHospitalIDKey       = "hospital_id"
	LoggingAppointmentIDKey    = "appointment_id"
	LoggingVaccineCountKey     = "vaccine_count"
	LoggingHospitalCountKey    = "hospital_count"
	LoggingAppointmentCountKey = "appointment_count"
	LoggingEventKey            = "event"
	LoggingQueueKey            = "queue"
	LoggingSymptomCountKey     = "symptom_count"
)
