package contracts

import (
	"context"
	"vaxtrack-service/internal/pkg/dto/requests"
	"vaxtrack-service/internal/pkg/dto/responses"
)

type DiagnosisUsecase interface {
	AnalyzeSymptoms(ctx context.Context, request *requests.AnalyzeSymptomsRequest) (*responses.SymptomAnalysis, error)
}

// DiagnosisClient calls the third-party symptom-diagnosis API.
type DiagnosisClient interface {
	AnalyzeSymptoms(ctx context.Context, symptoms []string) (*responses.SymptomAnalysis, error)
}
