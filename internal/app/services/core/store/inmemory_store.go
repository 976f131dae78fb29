package store

import (
	"sync"
	"vaxtrack-service/internal/app/models"
)

// InMemoryStore owns the three collections behind one mutex. Every mutating
// operation runs its read-modify-write under a single lock acquisition, so a
// booking can never interleave with a concurrent create or delete touching the
// same vaccine.
type InMemoryStore struct {
	mu                sync.RWMutex
	vaccines          []models.Vaccine
	hospitals         []models.Hospital
	appointments      []models.Appointment
	nextAppointmentID int
}

func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{
		vaccines:          seedVaccines(),
		hospitals:         seedHospitals(),
		appointments:      []models.Appointment{},
		nextAppointmentID: 1,
	}
}

func copyVaccine(v models.Vaccine) models.Vaccine {
	if v.CompletedDate != nil {
		completedDate := *v.CompletedDate
		v.CompletedDate = &completedDate
	}
	return v
}
