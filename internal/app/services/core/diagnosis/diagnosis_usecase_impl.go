package diagnosis

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"
	"vaxtrack-service/internal/app/config"
	"vaxtrack-service/internal/app/contracts"
	"vaxtrack-service/internal/pkg/constvars"
	"vaxtrack-service/internal/pkg/dto/requests"
	"vaxtrack-service/internal/pkg/dto/responses"
	"vaxtrack-service/internal/pkg/exceptions"
	"vaxtrack-service/internal/pkg/utils"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type diagnosisUsecase struct {
	DiagnosisClient contracts.DiagnosisClient
	RedisRepository contracts.RedisRepository
	InternalConfig  *config.InternalConfig
	Log             *zap.Logger
}

var (
	diagnosisUsecaseInstance contracts.DiagnosisUsecase
	onceDiagnosisUsecase     sync.Once
)

func NewDiagnosisUsecase(
	diagnosisClient contracts.DiagnosisClient,
	redisRepository contracts.RedisRepository,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.DiagnosisUsecase {
	onceDiagnosisUsecase.Do(func() {
		diagnosisUsecaseInstance = &diagnosisUsecase{
			DiagnosisClient: diagnosisClient,
			RedisRepository: redisRepository,
			InternalConfig:  internalConfig,
			Log:             logger,
		}
	})
	return diagnosisUsecaseInstance
}

// AnalyzeSymptoms proxies the selected symptoms to the diagnosis API, caching
// successful analyses in Redis by symptom set. Upstream faults never reach the
// client: the static fallback payload is served instead, and never cached.
func (uc *diagnosisUsecase) AnalyzeSymptoms(ctx context.Context, request *requests.AnalyzeSymptomsRequest) (*responses.SymptomAnalysis, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	err := utils.ValidateStruct(request)
	if err != nil {
		uc.Log.Error("diagnosisUsecase.AnalyzeSymptoms request validation failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrInputValidation(err)
	}

	symptoms := request.SelectedNames()
	cacheKey := buildCacheKey(symptoms)

	cached, err := uc.RedisRepository.Get(ctx, cacheKey)
	if err != nil {
		uc.Log.Error("diagnosisUsecase.AnalyzeSymptoms error reading cache",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
	} else if cached != "" {
		var analysis responses.SymptomAnalysis
		err = json.Unmarshal([]byte(cached), &analysis)
		if err == nil {
			uc.Log.Info("diagnosisUsecase.AnalyzeSymptoms served from cache",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Int(constvars.LoggingSymptomCountKey, len(symptoms)),
			)
			return &analysis, nil
		}
		uc.Log.Error("diagnosisUsecase.AnalyzeSymptoms error parsing cached analysis",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
	}

	analysis, err := uc.DiagnosisClient.AnalyzeSymptoms(ctx, symptoms)
	if err != nil {
		uc.Log.Warn("diagnosisUsecase.AnalyzeSymptoms upstream failed, serving fallback",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int(constvars.LoggingSymptomCountKey, len(symptoms)),
			zap.Error(err),
		)
		return fallbackAnalysis(), nil
	}

	ttl := time.Duration(uc.InternalConfig.App.DiagnosisCacheTTLInMinutes) * time.Minute
	err = uc.RedisRepository.Set(ctx, cacheKey, analysis, ttl)
	if err != nil {
		uc.Log.Error("diagnosisUsecase.AnalyzeSymptoms error caching analysis",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
	}

	uc.Log.Info("diagnosisUsecase.AnalyzeSymptoms succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingSymptomCountKey, len(symptoms)),
	)
	return analysis, nil
}

func buildCacheKey(symptoms []string) string {
	sorted := make([]string, len(symptoms))
	for i, symptom := range symptoms {
		sorted[i] = strings.ToLower(strings.TrimSpace(symptom))
	}
	sort.Strings(sorted)
	return constvars.RedisKeyDiagnosisPrefix + strings.Join(sorted, ",")
}
