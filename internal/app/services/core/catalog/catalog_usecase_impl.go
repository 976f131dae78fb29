package catalog

import (
	"context"
	"sync"
	"vaxtrack-service/internal/app/contracts"
	"vaxtrack-service/internal/app/models"
	"vaxtrack-service/internal/pkg/constvars"

	"go.uber.org/zap"
)

type catalogUsecase struct {
	CatalogRepository contracts.CatalogRepository
	Log               *zap.Logger
}

var (
	catalogUsecaseInstance contracts.CatalogUsecase
	onceCatalogUsecase     sync.Once
)

func NewCatalogUsecase(
	catalogRepository contracts.CatalogRepository,
	logger *zap.Logger,
) contracts.CatalogUsecase {
	onceCatalogUsecase.Do(func() {
		catalogUsecaseInstance = &catalogUsecase{
			CatalogRepository: catalogRepository,
			Log:               logger,
		}
	})
	return catalogUsecaseInstance
}

func (uc *catalogUsecase) ListVaccines(ctx context.Context) ([]models.Vaccine, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	vaccines, err := uc.CatalogRepository.FindAllVaccines(ctx)
	if err != nil {
		uc.Log.Error("catalogUsecase.ListVaccines error fetching vaccines",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	uc.Log.Info("catalogUsecase.ListVaccines succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingVaccineCountKey, len(vaccines)),
	)
	return vaccines, nil
}

func (uc *catalogUsecase) ListHospitals(ctx context.Context) ([]models.Hospital, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	hospitals, err := uc.CatalogRepository.FindAllHospitals(ctx)
	if err != nil {
		uc.Log.Error("catalogUsecase.ListHospitals error fetching hospitals",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	uc.Log.Info("catalogUsecase.ListHospitals succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingHospitalCountKey, len(hospitals)),
	)
	return hospitals, nil
}
