package diagnosis

import (
	"context"
	"testing"
	"time"
	"vaxtrack-service/internal/app/config"
	"vaxtrack-service/internal/pkg/dto/requests"
	"vaxtrack-service/internal/pkg/dto/responses"
	"vaxtrack-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubDiagnosisClient struct {
	analysis *responses.SymptomAnalysis
	err      error
	calls    int
}

func (c *stubDiagnosisClient) AnalyzeSymptoms(ctx context.Context, symptoms []string) (*responses.SymptomAnalysis, error) {
	c.calls++
	return c.analysis, c.err
}

type fakeRedisRepository struct {
	entries map[string]string
	getErr  error
	setErr  error
}

func newFakeRedisRepository() *fakeRedisRepository {
	return &fakeRedisRepository{entries: make(map[string]string)}
}

func (r *fakeRedisRepository) Delete(ctx context.Context, key string) error {
	delete(r.entries, key)
	return nil
}

func (r *fakeRedisRepository) Set(ctx context.Context, key string, value interface{}, exp time.Duration) error {
	if r.setErr != nil {
		return r.setErr
	}
	payload, err := json.Marshal(value)
	if err != nil {
		return err
	}
	r.entries[key] = string(payload)
	return nil
}

func (r *fakeRedisRepository) Get(ctx context.Context, key string) (string, error) {
	if r.getErr != nil {
		return "", r.getErr
	}
	return r.entries[key], nil
}

func newTestDiagnosisUsecase(client *stubDiagnosisClient, redis *fakeRedisRepository) *diagnosisUsecase {
	internalConfig := &config.InternalConfig{}
	internalConfig.App.DiagnosisCacheTTLInMinutes = 30
	return &diagnosisUsecase{
		DiagnosisClient: client,
		RedisRepository: redis,
		InternalConfig:  internalConfig,
		Log:             zap.NewNop(),
	}
}

func analyzeRequest(names ...string) *requests.AnalyzeSymptomsRequest {
	symptoms := make([]requests.Symptom, len(names))
	for i, name := range names {
		symptoms[i] = requests.Symptom{Name: name, IsSelected: true}
	}
	return &requests.AnalyzeSymptomsRequest{Symptoms: symptoms}
}

func TestDiagnosisUsecaseAnalyzeSymptoms(t *testing.T) {
	upstream := &responses.SymptomAnalysis{
		Conditions:             []responses.Condition{{ID: "flu", Name: "Flu", Accuracy: 0.8}},
		SelfCareTips:           []string{"Rest"},
		WarningSigns:           []string{"High fever"},
		RecommendedSpecialists: []string{"General Practitioner"},
	}

	t.Run("Success Caches Analysis", func(t *testing.T) {
		client := &stubDiagnosisClient{analysis: upstream}
		redis := newFakeRedisRepository()
		uc := newTestDiagnosisUsecase(client, redis)

		analysis, err := uc.AnalyzeSymptoms(context.Background(), analyzeRequest("Fever", "Cough"))
		require.NoError(t, err)
		assert.Equal(t, upstream, analysis)
		assert.False(t, analysis.Fallback)
		assert.Len(t, redis.entries, 1)
	})

	t.Run("Cache Hit Skips Upstream", func(t *testing.T) {
		client := &stubDiagnosisClient{analysis: upstream}
		redis := newFakeRedisRepository()
		uc := newTestDiagnosisUsecase(client, redis)

		_, err := uc.AnalyzeSymptoms(context.Background(), analyzeRequest("Fever", "Cough"))
		require.NoError(t, err)
		require.Equal(t, 1, client.calls)

		again, err := uc.AnalyzeSymptoms(context.Background(), analyzeRequest("Fever", "Cough"))
		require.NoError(t, err)
		assert.Equal(t, upstream, again)
		assert.Equal(t, 1, client.calls, "second call must be served from cache")
	})

	t.Run("Cache Key Ignores Symptom Order And Case", func(t *testing.T) {
		assert.Equal(t,
			buildCacheKey([]string{"Cough", " fever "}),
			buildCacheKey([]string{"Fever", "cough"}),
		)
	})

	t.Run("Upstream Failure Serves Fallback", func(t *testing.T) {
		client := &stubDiagnosisClient{err: assert.AnError}
		redis := newFakeRedisRepository()
		uc := newTestDiagnosisUsecase(client, redis)

		analysis, err := uc.AnalyzeSymptoms(context.Background(), analyzeRequest("Fever"))
		require.NoError(t, err, "upstream faults must not surface to the client")
		assert.True(t, analysis.Fallback)
		assert.NotEmpty(t, analysis.Conditions)
		assert.Empty(t, redis.entries, "fallback payloads are never cached")
	})

	t.Run("Cache Read Failure Falls Through To Upstream", func(t *testing.T) {
		client := &stubDiagnosisClient{analysis: upstream}
		redis := newFakeRedisRepository()
		redis.getErr = exceptions.ErrRedisGet(assert.AnError)
		uc := newTestDiagnosisUsecase(client, redis)

		analysis, err := uc.AnalyzeSymptoms(context.Background(), analyzeRequest("Fever"))
		require.NoError(t, err)
		assert.Equal(t, upstream, analysis)
		assert.Equal(t, 1, client.calls)
	})

	t.Run("Cache Write Failure Still Returns Analysis", func(t *testing.T) {
		client := &stubDiagnosisClient{analysis: upstream}
		redis := newFakeRedisRepository()
		redis.setErr = exceptions.ErrRedisSet(assert.AnError)
		uc := newTestDiagnosisUsecase(client, redis)

		analysis, err := uc.AnalyzeSymptoms(context.Background(), analyzeRequest("Fever"))
		require.NoError(t, err)
		assert.Equal(t, upstream, analysis)
	})

	t.Run("Empty Symptom List Fails Validation", func(t *testing.T) {
		client := &stubDiagnosisClient{analysis: upstream}
		redis := newFakeRedisRepository()
		uc := newTestDiagnosisUsecase(client, redis)

		_, err := uc.AnalyzeSymptoms(context.Background(), &requests.AnalyzeSymptomsRequest{})
		require.Error(t, err)

		customErr, ok := err.(*exceptions.CustomError)
		require.True(t, ok)
		assert.Equal(t, 400, customErr.StatusCode)
		assert.Zero(t, client.calls)
	})
}
