package models

// Hospital is static directory data. Only hospitals with Available set are
// eligible booking targets.
type Hospital struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	Address   string `json:"address"`
	Available bool   `json:"available"`
}
