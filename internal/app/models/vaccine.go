package models

type VaccineStatus string

const (
	VaccineStatusDue       VaccineStatus = "due"
	VaccineStatusPending   VaccineStatus = "pending"
	VaccineStatusCompleted VaccineStatus = "completed"
)

// Vaccine is a catalog entry. Status is owned by the appointment workflow:
// exactly one of due/pending/completed, flipped to pending while an open
// appointment references the vaccine and back to due when it is cancelled.
type Vaccine struct {
	ID            int           `json:"id"`
	Name          string        `json:"name"`
	Description   string        `json:"description"`
	Status        VaccineStatus `json:"status"`
	DueDate       string        `json:"dueDate"`
	CompletedDate *string       `json:"completedDate"`
}
