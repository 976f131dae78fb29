package constvars

// Client-facing messages. The exact strings are part of the API contract the
// frontend matches on, do not reword them.
const (
	ErrClientAllFieldsRequired        = "All fields are required"
	ErrClientVaccineNotFound          = "Vaccine not found"
	ErrClientHospitalNotAvailable     = "Hospital not available"
	ErrClientAppointmentNotFound      = "Appointment not found"
	ErrClientVaccineAlreadyBooked     = "Vaccine already has an open appointment"
	ErrClientCannotProcessRequest     = "Cannot process request"
	ErrClientSomethingWrongWithServer = "Something went wrong with the application"
	ErrClientServerLongRespond        = "Server took too long to respond"
)

// Developer-facing messages, logged but never returned to clients.
const (
	ErrDevCannotParseJSON            = "Failed to parse JSON body"
	ErrDevCannotMarshalJSON          = "Failed to marshal value into JSON"
	ErrDevValidationFailed           = "Request body validation failed"
	ErrDevURLParamIDValidationFailed = "URL parameter %s is not a valid integer ID"
	ErrDevMissingRequestID           = "Request ID not found in request context"
	ErrDevServerDeadlineExceeded     = "Server process exceeded its deadline"
	ErrDevVaccineNotExists           = "Vaccine does not exist in the catalog"
	ErrDevHospitalNotExists          = "Hospital does not exist in the directory"
	ErrDevHospitalNotAvailable       = "Hospital exists but is not accepting bookings"
	ErrDevAppointmentNotExists       = "Appointment does not exist in the collection"
	ErrDevVaccineAlreadyPending      = "Vaccine already has an open appointment"
	ErrDevRedisGetData               = "Failed to get data from Redis"
	ErrDevRedisSetData               = "Failed to set data in Redis"
	ErrDevRedisDeleteData            = "Failed to delete data from Redis"
	ErrDevRabbitMQPublishMessage     = "Failed to publish message to queue %s"
	ErrDevCreateHTTPRequest          = "Failed to create HTTP request"
	ErrDevSendHTTPRequest            = "Failed to send HTTP request"
	ErrDevDiagnosisUpstreamStatus    = "Diagnosis API responded with non-success status %d"
	ErrDevDiagnosisDecodeResponse    = "Failed to decode diagnosis API response"
	ErrDevDiagnosisMissingAPIKey     = "Diagnosis API key is not configured"
)
