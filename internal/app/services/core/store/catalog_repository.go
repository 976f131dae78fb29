package store

import (
	"context"
	"vaxtrack-service/internal/app/models"
	"vaxtrack-service/internal/pkg/exceptions"
)

// Catalog reads. All results are copies; internal slices never escape.

func (s *InMemoryStore) FindAllVaccines(ctx context.Context) ([]models.Vaccine, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	vaccines := make([]models.Vaccine, len(s.vaccines))
	for i, vaccine := range s.vaccines {
		vaccines[i] = copyVaccine(vaccine)
	}
	return vaccines, nil
}

func (s *InMemoryStore) FindVaccineByID(ctx context.Context, vaccineID int) (*models.Vaccine, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, vaccine := range s.vaccines {
		if vaccine.ID == vaccineID {
			found := copyVaccine(vaccine)
			return &found, nil
		}
	}
	return nil, exceptions.ErrVaccineNotFound(nil)
}

func (s *InMemoryStore) FindAllHospitals(ctx context.Context) ([]models.Hospital, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	hospitals := make([]models.Hospital, len(s.hospitals))
	copy(hospitals, s.hospitals)
	return hospitals, nil
}

func (s *InMemoryStore) FindHospitalByID(ctx context.Context, hospitalID int) (*models.Hospital, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, hospital := range s.hospitals {
		if hospital.ID == hospitalID {
			found := hospital
			return &found, nil
		}
	}
	return nil, exceptions.ErrHospitalNotAvailable(nil)
}
