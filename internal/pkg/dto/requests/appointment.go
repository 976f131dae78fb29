package requests

// CreateAppointmentRequest carries the booking form. Every field is required
// and the API rejects the whole request with a single message when any is
// missing, matching the frontend's error handling.
type CreateAppointmentRequest struct {
	VaccineID  int    `json:"vaccineId" validate:"required"`
	Date       string `json:"date" validate:"required"`
	Time       string `json:"time" validate:"required"`
	HospitalID int    `json:"hospitalId" validate:"required"`
	Gender     string `json:"gender" validate:"required"`
}

// UpdateAppointmentRequest carries a partial reschedule. Zero values mean the
// field was omitted and is left unchanged.
type UpdateAppointmentRequest struct {
	Date       string `json:"date"`
	Time       string `json:"time"`
	HospitalID int    `json:"hospitalId"`
}
