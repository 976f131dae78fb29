package responses

// Condition is one possible diagnosis with its mapped accuracy score.
type Condition struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Accuracy    float64 `json:"accuracy"`
	Description string  `json:"description,omitempty"`
}

// SymptomAnalysis is the shape the symptom-checker page renders. Fallback is
// set when the upstream diagnosis API could not be reached and the static
// payload was served instead.
type SymptomAnalysis struct {
	Conditions             []Condition `json:"conditions"`
	SelfCareTips           []string    `json:"selfCareTips"`
	WarningSigns           []string    `json:"warningSigns"`
	RecommendedSpecialists []string    `json:"recommendedSpecialists"`
	Fallback               bool        `json:"_fallback,omitempty"`
}
