package diagnosis

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
	"vaxtrack-service/internal/app/config"
	"vaxtrack-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
	"github.com/sony/gobreaker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestRapidAPIClient(baseURL string) *rapidAPIClient {
	internalConfig := &config.InternalConfig{}
	internalConfig.Diagnosis.BaseUrl = baseURL
	internalConfig.Diagnosis.Host = "ai-medical-diagnosis-api.example"
	internalConfig.Diagnosis.APIKey = "test-key"
	return &rapidAPIClient{
		httpClient: &http.Client{Timeout: 5 * time.Second},
		breaker: gobreaker.NewCircuitBreaker(gobreaker.Settings{
			Name: "RapidAPI-Diagnosis-Test",
			ReadyToTrip: func(counts gobreaker.Counts) bool {
				return counts.ConsecutiveFailures >= 3
			},
		}),
		internalConfig: internalConfig,
		log:            zap.NewNop(),
	}
}

func upstreamSuccessPayload() map[string]interface{} {
	return map[string]interface{}{
		"status": "success",
		"result": map[string]interface{}{
			"analysis": map[string]interface{}{
				"possibleConditions": []map[string]interface{}{
					{"condition": "Common Cold", "riskLevel": "high", "description": "Viral infection"},
					{"condition": "Seasonal Allergies", "riskLevel": "low", "description": ""},
				},
				"generalAdvice": map[string]interface{}{
					"recommendedActions":         []string{"Rest", "Hydrate"},
					"lifestyleConsiderations":    []string{"Avoid smoke"},
					"whenToSeekMedicalAttention": []string{"High fever"},
				},
			},
		},
	}
}

func TestRapidAPIClientAnalyzeSymptoms(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, analyzeEndpoint, r.URL.Path)
			assert.Equal(t, "test-key", r.Header.Get("X-RapidAPI-Key"))
			assert.Equal(t, "ai-medical-diagnosis-api.example", r.Header.Get("X-RapidAPI-Host"))

			var payload analyzeUpstreamRequest
			require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
			assert.Equal(t, []string{"Fever", "Cough"}, payload.Symptoms)
			assert.Equal(t, "en", payload.Lang)
			assert.Equal(t, 30, payload.PatientInfo.Age)

			w.Header().Set("Content-Type", "application/json")
			json.NewEncoder(w).Encode(upstreamSuccessPayload())
		}))
		defer server.Close()

		client := newTestRapidAPIClient(server.URL)
		analysis, err := client.AnalyzeSymptoms(context.Background(), []string{"Fever", "Cough"})
		require.NoError(t, err)

		require.Len(t, analysis.Conditions, 2)
		assert.Equal(t, "common_cold", analysis.Conditions[0].ID)
		assert.Equal(t, "Common Cold", analysis.Conditions[0].Name)
		assert.InDelta(t, 0.8, analysis.Conditions[0].Accuracy, 0.001)
		assert.InDelta(t, 0.4, analysis.Conditions[1].Accuracy, 0.001)
		assert.Equal(t, []string{"Rest", "Hydrate", "Avoid smoke"}, analysis.SelfCareTips)
		assert.Equal(t, []string{"High fever"}, analysis.WarningSigns)
		assert.Equal(t, []string{"General Practitioner"}, analysis.RecommendedSpecialists)
		assert.False(t, analysis.Fallback)
	})

	t.Run("Missing API Key", func(t *testing.T) {
		client := newTestRapidAPIClient("http://localhost:0")
		client.internalConfig.Diagnosis.APIKey = ""

		_, err := client.AnalyzeSymptoms(context.Background(), []string{"Fever"})
		require.Error(t, err)

		customErr, ok := err.(*exceptions.CustomError)
		require.True(t, ok)
		assert.Equal(t, http.StatusInternalServerError, customErr.StatusCode)
	})

	t.Run("Upstream Non-200", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusTooManyRequests)
		}))
		defer server.Close()

		client := newTestRapidAPIClient(server.URL)
		_, err := client.AnalyzeSymptoms(context.Background(), []string{"Fever"})
		require.Error(t, err)
	})

	t.Run("Upstream Status Not Success", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"status":"error"}`))
		}))
		defer server.Close()

		client := newTestRapidAPIClient(server.URL)
		_, err := client.AnalyzeSymptoms(context.Background(), []string{"Fever"})
		require.Error(t, err)
	})

	t.Run("Breaker Opens After Consecutive Failures", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer server.Close()

		client := newTestRapidAPIClient(server.URL)
		for i := 0; i < 3; i++ {
			_, err := client.AnalyzeSymptoms(context.Background(), []string{"Fever"})
			require.Error(t, err)
		}

		_, err := client.AnalyzeSymptoms(context.Background(), []string{"Fever"})
		assert.ErrorIs(t, err, gobreaker.ErrOpenState)
	})
}

func TestMapRiskLevelToAccuracy(t *testing.T) {
	assert.InDelta(t, 0.8, mapRiskLevelToAccuracy("High"), 0.001)
	assert.InDelta(t, 0.6, mapRiskLevelToAccuracy("medium"), 0.001)
	assert.InDelta(t, 0.4, mapRiskLevelToAccuracy("low"), 0.001)
	assert.InDelta(t, 0.2, mapRiskLevelToAccuracy("very low"), 0.001)
	assert.InDelta(t, 0.5, mapRiskLevelToAccuracy("unknown"), 0.001)
}
