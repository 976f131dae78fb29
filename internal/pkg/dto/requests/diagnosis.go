package requests

type Symptom struct {
	Name       string `json:"name"`
	IsSelected bool   `json:"isSelected"`
}

type AnalyzeSymptomsRequest struct {
	Symptoms       []Symptom `json:"symptoms" validate:"required,min=1"`
	AdditionalInfo string    `json:"additionalInfo"`
}

// SelectedNames returns the names of the symptoms the user ticked, in form order.
func (r *AnalyzeSymptomsRequest) SelectedNames() []string {
	var names []string
	for _, symptom := range r.Symptoms {
		if symptom.IsSelected {
			names = append(names, symptom.Name)
		}
	}
	return names
}
