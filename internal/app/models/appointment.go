package models

import "time"

// Appointment links a vaccine to a hospital booking. VaccineName and
// HospitalName are snapshots captured at write time; they do not track later
// renames of the source records.
type Appointment struct {
	ID           int       `json:"id"`
	VaccineID    int       `json:"vaccineId"`
	VaccineName  string    `json:"vaccineName"`
	Date         string    `json:"date"`
	Time         string    `json:"time"`
	HospitalID   int       `json:"hospitalId"`
	HospitalName string    `json:"hospitalName"`
	Gender       string    `json:"gender"`
	CreatedAt    time.Time `json:"createdAt"`
}

// AppointmentEvent is the payload published to the notification queue on
// booking, reschedule, and cancellation.
type AppointmentEvent struct {
	Event         string    `json:"event"`
	AppointmentID int       `json:"appointmentId"`
	VaccineID     int       `json:"vaccineId"`
	HospitalID    int       `json:"hospitalId"`
	OccurredAt    time.Time `json:"occurredAt"`
}
