package routers

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"
	"vaxtrack-service/internal/app/config"
	"vaxtrack-service/internal/app/delivery/http/controllers"
	"vaxtrack-service/internal/app/delivery/http/middlewares"
	"vaxtrack-service/internal/app/models"
	"vaxtrack-service/internal/app/services/core/appointments"
	"vaxtrack-service/internal/app/services/core/catalog"
	"vaxtrack-service/internal/app/services/core/diagnosis"
	"vaxtrack-service/internal/app/services/core/store"
	"vaxtrack-service/internal/pkg/dto/responses"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type noopPublisher struct{}

func (noopPublisher) PublishAppointmentEvent(ctx context.Context, event models.AppointmentEvent) error {
	return nil
}

type staticDiagnosisClient struct{}

func (staticDiagnosisClient) AnalyzeSymptoms(ctx context.Context, symptoms []string) (*responses.SymptomAnalysis, error) {
	return &responses.SymptomAnalysis{
		Conditions:             []responses.Condition{{ID: "common_cold", Name: "Common Cold", Accuracy: 0.8}},
		SelfCareTips:           []string{"Rest"},
		WarningSigns:           []string{"High fever"},
		RecommendedSpecialists: []string{"General Practitioner"},
	}, nil
}

type mapRedisRepository struct {
	mu      sync.Mutex
	entries map[string]string
}

func (r *mapRedisRepository) Delete(ctx context.Context, key string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.entries, key)
	return nil
}

func (r *mapRedisRepository) Set(ctx context.Context, key string, value interface{}, exp time.Duration) error {
	payload, err := json.Marshal(value)
	if err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries[key] = string(payload)
	return nil
}

func (r *mapRedisRepository) Get(ctx context.Context, key string) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.entries[key], nil
}

var (
	testRouter    *chi.Mux
	onceTestSetup sync.Once
)

// The usecase and controller constructors are process-wide singletons, so the
// whole HTTP stack is assembled once and the scenario subtests run in order
// against the same store.
func setupTestRouter() *chi.Mux {
	onceTestSetup.Do(func() {
		logger := zap.NewNop()

		internalConfig := &config.InternalConfig{}
		internalConfig.App.Version = "1.0.0"
		internalConfig.App.MaxRequests = 1000
		internalConfig.App.DiagnosisCacheTTLInMinutes = 30

		inMemoryStore := store.NewInMemoryStore()
		redisRepository := &mapRedisRepository{entries: make(map[string]string)}

		catalogUsecase := catalog.NewCatalogUsecase(inMemoryStore, logger)
		appointmentUsecase := appointments.NewAppointmentUsecase(inMemoryStore, noopPublisher{}, logger)
		diagnosisUsecase := diagnosis.NewDiagnosisUsecase(staticDiagnosisClient{}, redisRepository, internalConfig, logger)

		testRouter = chi.NewRouter()
		SetupRoutes(
			testRouter,
			internalConfig,
			middlewares.NewMiddlewares(logger, internalConfig),
			controllers.NewHealthController(logger, internalConfig),
			controllers.NewCatalogController(logger, catalogUsecase),
			controllers.NewAppointmentController(logger, appointmentUsecase),
			controllers.NewDiagnosisController(logger, diagnosisUsecase),
		)
	})
	return testRouter
}

func doRequest(t *testing.T, method, target string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	request := httptest.NewRequest(method, target, reader)
	request.Header.Set("Content-Type", "application/json")

	recorder := httptest.NewRecorder()
	setupTestRouter().ServeHTTP(recorder, request)
	return recorder
}

func decodeBody(t *testing.T, recorder *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), out))
}

func errorMessage(t *testing.T, recorder *httptest.ResponseRecorder) string {
	t.Helper()
	var body struct {
		Error string `json:"error"`
	}
	decodeBody(t, recorder, &body)
	return body.Error
}

func vaccineStatus(t *testing.T, vaccineID int) string {
	t.Helper()
	recorder := doRequest(t, http.MethodGet, "/api/vaccines", nil)
	require.Equal(t, http.StatusOK, recorder.Code)

	var vaccines []models.Vaccine
	decodeBody(t, recorder, &vaccines)
	for _, vaccine := range vaccines {
		if vaccine.ID == vaccineID {
			return string(vaccine.Status)
		}
	}
	t.Fatalf("vaccine %d not in listing", vaccineID)
	return ""
}

func TestAPI(t *testing.T) {
	t.Run("Health", func(t *testing.T) {
		recorder := doRequest(t, http.MethodGet, "/api/health", nil)
		require.Equal(t, http.StatusOK, recorder.Code)
		assert.NotEmpty(t, recorder.Header().Get("X-Request-ID"))

		var health responses.Health
		decodeBody(t, recorder, &health)
		assert.Equal(t, "OK", health.Status)
		assert.Equal(t, "1.0.0", health.Version)
	})

	t.Run("List Vaccines", func(t *testing.T) {
		recorder := doRequest(t, http.MethodGet, "/api/vaccines", nil)
		require.Equal(t, http.StatusOK, recorder.Code)

		var vaccines []models.Vaccine
		decodeBody(t, recorder, &vaccines)
		require.Len(t, vaccines, 5)
		assert.Equal(t, "Tetanus Booster", vaccines[0].Name)
		assert.Equal(t, models.VaccineStatusDue, vaccines[0].Status)
	})

	t.Run("List Hospitals", func(t *testing.T) {
		recorder := doRequest(t, http.MethodGet, "/api/hospitals", nil)
		require.Equal(t, http.StatusOK, recorder.Code)

		var hospitals []models.Hospital
		decodeBody(t, recorder, &hospitals)
		require.Len(t, hospitals, 5)
		assert.False(t, hospitals[2].Available)
	})

	t.Run("Empty Appointment Listing", func(t *testing.T) {
		recorder := doRequest(t, http.MethodGet, "/api/appointments", nil)
		require.Equal(t, http.StatusOK, recorder.Code)
		assert.JSONEq(t, "[]", recorder.Body.String())
	})

	t.Run("Book Appointment", func(t *testing.T) {
		recorder := doRequest(t, http.MethodPost, "/api/appointments", map[string]interface{}{
			"vaccineId":  1,
			"date":       "2024-06-01",
			"time":       "10:00",
			"hospitalId": 1,
			"gender":     "female",
		})
		require.Equal(t, http.StatusCreated, recorder.Code)

		var appointment models.Appointment
		decodeBody(t, recorder, &appointment)
		assert.Equal(t, 1, appointment.ID)
		assert.Equal(t, "Tetanus Booster", appointment.VaccineName)
		assert.Equal(t, "Manipal Hospital Vijayawada", appointment.HospitalName)
		assert.False(t, appointment.CreatedAt.IsZero())

		assert.Equal(t, "pending", vaccineStatus(t, 1))
	})

	t.Run("Booking Validation", func(t *testing.T) {
		recorder := doRequest(t, http.MethodPost, "/api/appointments", map[string]interface{}{
			"vaccineId": 5,
			"date":      "2024-06-01",
		})
		require.Equal(t, http.StatusBadRequest, recorder.Code)
		assert.Equal(t, "All fields are required", errorMessage(t, recorder))
	})

	t.Run("Booking Unknown Vaccine", func(t *testing.T) {
		recorder := doRequest(t, http.MethodPost, "/api/appointments", map[string]interface{}{
			"vaccineId":  99,
			"date":       "2024-06-01",
			"time":       "10:00",
			"hospitalId": 1,
			"gender":     "male",
		})
		require.Equal(t, http.StatusNotFound, recorder.Code)
		assert.Equal(t, "Vaccine not found", errorMessage(t, recorder))
	})

	t.Run("Booking Unavailable Hospital", func(t *testing.T) {
		recorder := doRequest(t, http.MethodPost, "/api/appointments", map[string]interface{}{
			"vaccineId":  5,
			"date":       "2024-06-01",
			"time":       "10:00",
			"hospitalId": 3,
			"gender":     "male",
		})
		require.Equal(t, http.StatusBadRequest, recorder.Code)
		assert.Equal(t, "Hospital not available", errorMessage(t, recorder))
		assert.Equal(t, "due", vaccineStatus(t, 5))
	})

	t.Run("Booking Already Pending Vaccine", func(t *testing.T) {
		recorder := doRequest(t, http.MethodPost, "/api/appointments", map[string]interface{}{
			"vaccineId":  1,
			"date":       "2024-06-02",
			"time":       "11:00",
			"hospitalId": 2,
			"gender":     "female",
		})
		require.Equal(t, http.StatusConflict, recorder.Code)
		assert.Equal(t, "Vaccine already has an open appointment", errorMessage(t, recorder))
	})

	t.Run("Get Appointment", func(t *testing.T) {
		recorder := doRequest(t, http.MethodGet, "/api/appointments/1", nil)
		require.Equal(t, http.StatusOK, recorder.Code)

		var appointment models.Appointment
		decodeBody(t, recorder, &appointment)
		assert.Equal(t, 1, appointment.ID)
		assert.Equal(t, 1, appointment.VaccineID)
	})

	t.Run("Get Unknown Appointment", func(t *testing.T) {
		recorder := doRequest(t, http.MethodGet, "/api/appointments/99", nil)
		require.Equal(t, http.StatusNotFound, recorder.Code)
		assert.Equal(t, "Appointment not found", errorMessage(t, recorder))
	})

	t.Run("Get Non Numeric Appointment ID", func(t *testing.T) {
		recorder := doRequest(t, http.MethodGet, "/api/appointments/abc", nil)
		require.Equal(t, http.StatusNotFound, recorder.Code)
		assert.Equal(t, "Appointment not found", errorMessage(t, recorder))
	})

	t.Run("Reschedule Appointment", func(t *testing.T) {
		recorder := doRequest(t, http.MethodPut, "/api/appointments/1", map[string]interface{}{
			"hospitalId": 4,
			"date":       "2024-06-15",
		})
		require.Equal(t, http.StatusOK, recorder.Code)

		var appointment models.Appointment
		decodeBody(t, recorder, &appointment)
		assert.Equal(t, 4, appointment.HospitalID)
		assert.Equal(t, "LIFECARE HOSPITALS", appointment.HospitalName)
		assert.Equal(t, "2024-06-15", appointment.Date)
		assert.Equal(t, "10:00", appointment.Time, "omitted time keeps its value")
	})

	t.Run("Reschedule To Unavailable Hospital", func(t *testing.T) {
		recorder := doRequest(t, http.MethodPut, "/api/appointments/1", map[string]interface{}{
			"hospitalId": 3,
		})
		require.Equal(t, http.StatusBadRequest, recorder.Code)
		assert.Equal(t, "Hospital not available", errorMessage(t, recorder))
	})

	t.Run("Cancel Appointment", func(t *testing.T) {
		recorder := doRequest(t, http.MethodDelete, "/api/appointments/1", nil)
		require.Equal(t, http.StatusNoContent, recorder.Code)
		assert.Empty(t, recorder.Body.String())

		assert.Equal(t, "due", vaccineStatus(t, 1))

		recorder = doRequest(t, http.MethodGet, "/api/appointments/1", nil)
		assert.Equal(t, http.StatusNotFound, recorder.Code)
	})

	t.Run("Cancel Unknown Appointment", func(t *testing.T) {
		recorder := doRequest(t, http.MethodDelete, "/api/appointments/99", nil)
		require.Equal(t, http.StatusNotFound, recorder.Code)
		assert.Equal(t, "Appointment not found", errorMessage(t, recorder))
	})

	t.Run("IDs Are Not Reused", func(t *testing.T) {
		recorder := doRequest(t, http.MethodPost, "/api/appointments", map[string]interface{}{
			"vaccineId":  1,
			"date":       "2024-07-01",
			"time":       "09:00",
			"hospitalId": 2,
			"gender":     "female",
		})
		require.Equal(t, http.StatusCreated, recorder.Code)

		var appointment models.Appointment
		decodeBody(t, recorder, &appointment)
		assert.Equal(t, 2, appointment.ID)
	})

	t.Run("Analyze Symptoms", func(t *testing.T) {
		recorder := doRequest(t, http.MethodPost, "/api/analyze-symptoms", map[string]interface{}{
			"symptoms": []map[string]interface{}{
				{"name": "Fever", "isSelected": true},
				{"name": "Cough", "isSelected": false},
			},
		})
		require.Equal(t, http.StatusOK, recorder.Code)

		var analysis responses.SymptomAnalysis
		decodeBody(t, recorder, &analysis)
		require.NotEmpty(t, analysis.Conditions)
		assert.Equal(t, "Common Cold", analysis.Conditions[0].Name)
		assert.False(t, analysis.Fallback)
	})

	t.Run("Metrics Endpoint", func(t *testing.T) {
		recorder := doRequest(t, http.MethodGet, "/metrics", nil)
		require.Equal(t, http.StatusOK, recorder.Code)
		assert.Contains(t, recorder.Body.String(), "vaxtrack_http_requests_total")
	})
}
