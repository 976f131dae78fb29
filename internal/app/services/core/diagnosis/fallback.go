package diagnosis

import "vaxtrack-service/internal/pkg/dto/responses"

// fallbackAnalysis is served whenever the upstream diagnosis API cannot be
// reached. The payload is static so the symptom-checker page always has
// something sensible to render.
func fallbackAnalysis() *responses.SymptomAnalysis {
	return &responses.SymptomAnalysis{
		Conditions: []responses.Condition{
			{ID: "c_1", Name: "Common Cold", Accuracy: 0.7},
			{ID: "c_2", Name: "Seasonal Allergies", Accuracy: 0.3},
		},
		SelfCareTips: []string{
			"Get plenty of rest and stay hydrated",
			"Use over-the-counter pain relievers if needed",
			"Monitor your symptoms for changes",
		},
		WarningSigns: []string{
			"Difficulty breathing or shortness of breath",
			"Persistent pain or pressure in the chest",
			"Symptoms that worsen after several days",
		},
		RecommendedSpecialists: []string{"General Practitioner"},
		Fallback:               true,
	}
}
