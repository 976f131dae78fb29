package diagnosis

import (
	"bytes"
	"context"
	"net/http"
	"strings"
	"sync"
	"time"
	"vaxtrack-service/internal/app/config"
	"vaxtrack-service/internal/app/contracts"
	"vaxtrack-service/internal/pkg/constvars"
	"vaxtrack-service/internal/pkg/dto/responses"
	"vaxtrack-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
	"github.com/sony/gobreaker"
	"go.uber.org/zap"
)

const analyzeEndpoint = "/analyzeSymptomsAndDiagnose"

type rapidAPIClient struct {
	httpClient     *http.Client
	breaker        *gobreaker.CircuitBreaker
	internalConfig *config.InternalConfig
	log            *zap.Logger
}

var (
	rapidAPIClientInstance contracts.DiagnosisClient
	onceRapidAPIClient     sync.Once
)

func NewRapidAPIClient(internalConfig *config.InternalConfig, logger *zap.Logger) contracts.DiagnosisClient {
	onceRapidAPIClient.Do(func() {
		timeout := time.Duration(internalConfig.Diagnosis.TimeoutInSeconds) * time.Second
		breaker := gobreaker.NewCircuitBreaker(gobreaker.Settings{
			Name:        "RapidAPI-Diagnosis",
			MaxRequests: 3,
			Interval:    time.Second * 10,
			Timeout:     time.Second * 30,
			ReadyToTrip: func(counts gobreaker.Counts) bool {
				return counts.ConsecutiveFailures >= 3
			},
			OnStateChange: func(name string, from, to gobreaker.State) {
				logger.Warn("Circuit breaker state changed",
					zap.String("breaker", name),
					zap.String("from", from.String()),
					zap.String("to", to.String()),
				)
			},
		})
		rapidAPIClientInstance = &rapidAPIClient{
			httpClient:     &http.Client{Timeout: timeout},
			breaker:        breaker,
			internalConfig: internalConfig,
			log:            logger,
		}
	})
	return rapidAPIClientInstance
}

// Upstream request/response shapes of the RapidAPI medical-diagnosis API. The
// patientInfo block is static: the intake form does not collect these yet.
type (
	analyzeUpstreamRequest struct {
		Symptoms    []string            `json:"symptoms"`
		PatientInfo upstreamPatientInfo `json:"patientInfo"`
		Lang        string              `json:"lang"`
	}

	upstreamPatientInfo struct {
		Age                int               `json:"age"`
		Gender             string            `json:"gender"`
		Height             int               `json:"height"`
		Weight             int               `json:"weight"`
		MedicalHistory     []string          `json:"medicalHistory"`
		CurrentMedications []string          `json:"currentMedications"`
		Allergies          []string          `json:"allergies"`
		Lifestyle          upstreamLifestyle `json:"lifestyle"`
	}

	upstreamLifestyle struct {
		Smoking  bool   `json:"smoking"`
		Alcohol  string `json:"alcohol"`
		Exercise string `json:"exercise"`
		Diet     string `json:"diet"`
	}

	analyzeUpstreamResponse struct {
		Status string `json:"status"`
		Result struct {
			Analysis struct {
				PossibleConditions []struct {
					Condition   string `json:"condition"`
					RiskLevel   string `json:"riskLevel"`
					Description string `json:"description"`
				} `json:"possibleConditions"`
				GeneralAdvice struct {
					RecommendedActions         []string `json:"recommendedActions"`
					LifestyleConsiderations    []string `json:"lifestyleConsiderations"`
					WhenToSeekMedicalAttention []string `json:"whenToSeekMedicalAttention"`
				} `json:"generalAdvice"`
			} `json:"analysis"`
		} `json:"result"`
	}
)

func (c *rapidAPIClient) AnalyzeSymptoms(ctx context.Context, symptoms []string) (*responses.SymptomAnalysis, error) {
	if c.internalConfig.Diagnosis.APIKey == "" {
		return nil, exceptions.ErrDiagnosisMissingAPIKey(nil)
	}

	payload := analyzeUpstreamRequest{
		Symptoms: symptoms,
		PatientInfo: upstreamPatientInfo{
			Age:                30,
			Gender:             "unknown",
			Height:             170,
			Weight:             70,
			MedicalHistory:     []string{},
			CurrentMedications: []string{},
			Allergies:          []string{},
			Lifestyle: upstreamLifestyle{
				Smoking:  false,
				Alcohol:  "occasional",
				Exercise: "moderate",
				Diet:     "balanced",
			},
		},
		Lang: "en",
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, exceptions.ErrCannotMarshalJSON(err)
	}

	result, err := c.breaker.Execute(func() (interface{}, error) {
		return c.doAnalyzeRequest(ctx, body)
	})
	if err != nil {
		return nil, err
	}
	return result.(*responses.SymptomAnalysis), nil
}

func (c *rapidAPIClient) doAnalyzeRequest(ctx context.Context, body []byte) (*responses.SymptomAnalysis, error) {
	url := c.internalConfig.Diagnosis.BaseUrl + analyzeEndpoint
	request, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, exceptions.ErrCreateHTTPRequest(err)
	}
	request.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	request.Header.Set(constvars.HeaderRapidAPIKey, c.internalConfig.Diagnosis.APIKey)
	request.Header.Set(constvars.HeaderRapidAPIHost, c.internalConfig.Diagnosis.Host)

	response, err := c.httpClient.Do(request)
	if err != nil {
		return nil, exceptions.ErrSendHTTPRequest(err)
	}
	defer response.Body.Close()

	if response.StatusCode != http.StatusOK {
		return nil, exceptions.ErrDiagnosisUpstreamStatus(nil, response.StatusCode)
	}

	var upstream analyzeUpstreamResponse
	err = json.NewDecoder(response.Body).Decode(&upstream)
	if err != nil {
		return nil, exceptions.ErrDiagnosisDecodeResponse(err)
	}
	if upstream.Status != "success" {
		return nil, exceptions.ErrDiagnosisDecodeResponse(nil)
	}

	return mapUpstreamResponse(&upstream), nil
}

func mapUpstreamResponse(upstream *analyzeUpstreamResponse) *responses.SymptomAnalysis {
	analysis := upstream.Result.Analysis

	conditions := make([]responses.Condition, len(analysis.PossibleConditions))
	for i, condition := range analysis.PossibleConditions {
		conditions[i] = responses.Condition{
			ID:          strings.ToLower(strings.ReplaceAll(condition.Condition, " ", "_")),
			Name:        condition.Condition,
			Accuracy:    mapRiskLevelToAccuracy(condition.RiskLevel),
			Description: condition.Description,
		}
	}

	selfCareTips := append([]string{}, analysis.GeneralAdvice.RecommendedActions...)
	selfCareTips = append(selfCareTips, analysis.GeneralAdvice.LifestyleConsiderations...)

	warningSigns := analysis.GeneralAdvice.WhenToSeekMedicalAttention
	if warningSigns == nil {
		warningSigns = []string{}
	}

	return &responses.SymptomAnalysis{
		Conditions:             conditions,
		SelfCareTips:           selfCareTips,
		WarningSigns:           warningSigns,
		RecommendedSpecialists: []string{"General Practitioner"},
	}
}

func mapRiskLevelToAccuracy(riskLevel string) float64 {
	switch strings.ToLower(riskLevel) {
	case "high":
		return 0.8
	case "medium":
		return 0.6
	case "low":
		return 0.4
	case "very low":
		return 0.2
	default:
		return 0.5
	}
}
