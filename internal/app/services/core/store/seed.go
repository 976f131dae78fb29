package store

import "vaxtrack-service/internal/app/models"

func strPtr(s string) *string {
	return &s
}

func seedVaccines() []models.Vaccine {
	return []models.Vaccine{
		{
			ID:          1,
			Name:        "Tetanus Booster",
			Description: "Protects against tetanus infections",
			Status:      models.VaccineStatusDue,
			DueDate:     "Before Jun 2024",
		},
		{
			ID:            2,
			Name:          "COVID-19 Vaccine",
			Description:   "Protects against COVID-19",
			Status:        models.VaccineStatusCompleted,
			DueDate:       "Due: Jan 2023",
			CompletedDate: strPtr("Completed: Jan 15, 2023"),
		},
		{
			ID:            3,
			Name:          "Flu Shot",
			Description:   "Annual influenza vaccine",
			Status:        models.VaccineStatusCompleted,
			DueDate:       "Due: Oct 2023",
			CompletedDate: strPtr("Completed: Oct 10, 2023"),
		},
		{
			ID:          4,
			Name:        "Hepatitis B",
			Description: "Protects against hepatitis B virus",
			Status:      models.VaccineStatusPending,
			DueDate:     "Due: Aug 2024",
		},
		{
			ID:          5,
			Name:        "MMR Vaccine",
			Description: "Measles, mumps, and rubella vaccine",
			Status:      models.VaccineStatusDue,
			DueDate:     "Due: Dec 2023",
		},
	}
}

func seedHospitals() []models.Hospital {
	return []models.Hospital{
		{ID: 1, Name: "Manipal Hospital Vijayawada", Address: "Vijayawada, Andhra Pradesh", Available: true},
		{ID: 2, Name: "AIIMS Hospital, Mangalagiri", Address: "Mangalagiri, Andhra Pradesh", Available: true},
		{ID: 3, Name: "Amaravati Government Hospital", Address: "Amaravati, Andhra Pradesh", Available: false},
		{ID: 4, Name: "LIFECARE HOSPITALS", Address: "Vijayawada, Andhra Pradesh", Available: true},
		{ID: 5, Name: "Sudha Hospital", Address: "Guntur, Andhra Pradesh", Available: true},
	}
}
