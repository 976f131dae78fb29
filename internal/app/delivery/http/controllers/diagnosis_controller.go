package controllers

import (
	"context"
	"net/http"
	"sync"
	"time"
	"vaxtrack-service/internal/app/contracts"
	"vaxtrack-service/internal/pkg/constvars"
	"vaxtrack-service/internal/pkg/dto/requests"
	"vaxtrack-service/internal/pkg/exceptions"
	"vaxtrack-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type DiagnosisController struct {
	Log              *zap.Logger
	DiagnosisUsecase contracts.DiagnosisUsecase
}

var (
	diagnosisControllerInstance *DiagnosisController
	onceDiagnosisController     sync.Once
)

func NewDiagnosisController(logger *zap.Logger, diagnosisUsecase contracts.DiagnosisUsecase) *DiagnosisController {
	onceDiagnosisController.Do(func() {
		diagnosisControllerInstance = &DiagnosisController{
			Log:              logger,
			DiagnosisUsecase: diagnosisUsecase,
		}
	})
	return diagnosisControllerInstance
}

func (ctrl *DiagnosisController) AnalyzeSymptoms(w http.ResponseWriter, r *http.Request) {
	requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if !ok || requestID == "" {
		ctrl.Log.Error("DiagnosisController.AnalyzeSymptoms requestID not found in context")
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}

	var request requests.AnalyzeSymptomsRequest
	err := utils.ParseRequestBody(r, &request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	// The upstream client has its own 15s timeout; this bounds the whole
	// request including the cache round-trips.
	ctx, cancel := context.WithTimeout(r.Context(), 20*time.Second)
	defer cancel()

	analysis, err := ctrl.DiagnosisUsecase.AnalyzeSymptoms(ctx, &request)
	if err != nil {
		ctrl.Log.Error("DiagnosisController.AnalyzeSymptoms error from usecase",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, http.StatusOK, analysis)
}
