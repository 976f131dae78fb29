package store

import (
	"context"
	"time"
	"vaxtrack-service/internal/app/contracts"
	"vaxtrack-service/internal/app/models"
	"vaxtrack-service/internal/pkg/exceptions"
)

func (s *InMemoryStore) FindAll(ctx context.Context) ([]models.Appointment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	appointments := make([]models.Appointment, len(s.appointments))
	copy(appointments, s.appointments)
	return appointments, nil
}

func (s *InMemoryStore) FindByID(ctx context.Context, appointmentID int) (*models.Appointment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, appointment := range s.appointments {
		if appointment.ID == appointmentID {
			found := appointment
			return &found, nil
		}
	}
	return nil, exceptions.ErrAppointmentNotFound(nil)
}

// Create validates the referenced vaccine and hospital, inserts the
// appointment, and flips the vaccine to pending, all under one lock. Nothing is
// mutated when any check fails. A vaccine that is already pending cannot be
// booked again, which keeps the later unconditional reset on delete correct.
func (s *InMemoryStore) Create(ctx context.Context, in *contracts.NewAppointment) (*models.Appointment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	vaccineIndex := -1
	for i, vaccine := range s.vaccines {
		if vaccine.ID == in.VaccineID {
			vaccineIndex = i
			break
		}
	}
	if vaccineIndex == -1 {
		return nil, exceptions.ErrVaccineNotFound(nil)
	}
	if s.vaccines[vaccineIndex].Status == models.VaccineStatusPending {
		return nil, exceptions.ErrVaccineAlreadyBooked(nil)
	}

	var hospital *models.Hospital
	for i, candidate := range s.hospitals {
		if candidate.ID == in.HospitalID {
			hospital = &s.hospitals[i]
			break
		}
	}
	if hospital == nil || !hospital.Available {
		return nil, exceptions.ErrHospitalNotAvailable(nil)
	}

	appointment := models.Appointment{
		ID:           s.nextAppointmentID,
		VaccineID:    in.VaccineID,
		VaccineName:  s.vaccines[vaccineIndex].Name,
		Date:         in.Date,
		Time:         in.Time,
		HospitalID:   hospital.ID,
		HospitalName: hospital.Name,
		Gender:       in.Gender,
		CreatedAt:    time.Now().UTC(),
	}
	s.nextAppointmentID++
	s.appointments = append(s.appointments, appointment)
	s.vaccines[vaccineIndex].Status = models.VaccineStatusPending

	return &appointment, nil
}

// Update applies a partial reschedule. Omitted fields keep their value; a new
// hospital must be available and refreshes the denormalized name. The linked
// vaccine's status is untouched.
func (s *InMemoryStore) Update(ctx context.Context, appointmentID int, in *contracts.AppointmentUpdate) (*models.Appointment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	appointmentIndex := -1
	for i, appointment := range s.appointments {
		if appointment.ID == appointmentID {
			appointmentIndex = i
			break
		}
	}
	if appointmentIndex == -1 {
		return nil, exceptions.ErrAppointmentNotFound(nil)
	}

	if in.HospitalID != 0 {
		var hospital *models.Hospital
		for i, candidate := range s.hospitals {
			if candidate.ID == in.HospitalID {
				hospital = &s.hospitals[i]
				break
			}
		}
		if hospital == nil || !hospital.Available {
			return nil, exceptions.ErrHospitalNotAvailable(nil)
		}
		s.appointments[appointmentIndex].HospitalID = hospital.ID
		s.appointments[appointmentIndex].HospitalName = hospital.Name
	}
	if in.Date != "" {
		s.appointments[appointmentIndex].Date = in.Date
	}
	if in.Time != "" {
		s.appointments[appointmentIndex].Time = in.Time
	}

	updated := s.appointments[appointmentIndex]
	return &updated, nil
}

// Delete removes the appointment and resets the linked vaccine to due. The
// reset is safe to do unconditionally because Create rejects a second open
// appointment per vaccine.
func (s *InMemoryStore) Delete(ctx context.Context, appointmentID int) (*models.Appointment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	appointmentIndex := -1
	for i, appointment := range s.appointments {
		if appointment.ID == appointmentID {
			appointmentIndex = i
			break
		}
	}
	if appointmentIndex == -1 {
		return nil, exceptions.ErrAppointmentNotFound(nil)
	}

	deleted := s.appointments[appointmentIndex]

	for i, vaccine := range s.vaccines {
		if vaccine.ID == deleted.VaccineID {
			s.vaccines[i].Status = models.VaccineStatusDue
			break
		}
	}

	s.appointments = append(s.appointments[:appointmentIndex], s.appointments[appointmentIndex+1:]...)
	return &deleted, nil
}
