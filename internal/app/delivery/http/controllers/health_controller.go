package controllers

import (
	"net/http"
	"sync"
	"vaxtrack-service/internal/app/config"
	"vaxtrack-service/internal/pkg/dto/responses"
	"vaxtrack-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type HealthController struct {
	Log            *zap.Logger
	InternalConfig *config.InternalConfig
}

var (
	healthControllerInstance *HealthController
	onceHealthController     sync.Once
)

func NewHealthController(logger *zap.Logger, internalConfig *config.InternalConfig) *HealthController {
	onceHealthController.Do(func() {
		healthControllerInstance = &HealthController{
			Log:            logger,
			InternalConfig: internalConfig,
		}
	})
	return healthControllerInstance
}

func (ctrl *HealthController) Check(w http.ResponseWriter, r *http.Request) {
	utils.BuildSuccessResponse(w, http.StatusOK, responses.Health{
		Status:  "OK",
		Message: "Vaccination appointment service is running",
		Version: ctrl.InternalConfig.App.Version,
	})
}
