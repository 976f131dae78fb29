package config

import (
	"vaxtrack-service/internal/pkg/utils"

	"github.com/joho/godotenv"
)

func init() {
	godotenv.Load()
}

func NewDriverConfig() *DriverConfig {
	return &DriverConfig{
		Redis: Redis{
			Host:     utils.GetEnvString("REDIS_HOST", "localhost"),
			Port:     utils.GetEnvString("REDIS_PORT", "6379"),
			Password: utils.GetEnvString("REDIS_PASSWORD", ""),
		},
		RabbitMQ: RabbitMQ{
			Host:     utils.GetEnvString("RABBITMQ_HOST", "localhost"),
			Port:     utils.GetEnvString("RABBITMQ_PORT", "5672"),
			Username: utils.GetEnvString("RABBITMQ_USERNAME", "guest"),
			Password: utils.GetEnvString("RABBITMQ_PASSWORD", "guest"),
		},
		Logger: Logger{
			Level:               utils.GetEnvString("LOGGER_LEVEL", "debug"),
			OutputFileName:      utils.GetEnvString("LOGGER_OUTPUT_FILENAME", "logger.log"),
			OutputErrorFileName: utils.GetEnvString("LOGGER_OUTPUT_ERROR_FILENAME", "logger_error.log"),
		},
	}
}

func NewInternalConfig() *InternalConfig {
	return &InternalConfig{
		App: App{
			Env:                        utils.GetEnvString("APP_ENV", "development"),
			Port:                       utils.GetEnvString("APP_PORT", ":3000"),
			Version:                    utils.GetEnvString("APP_VERSION", "v1.0"),
			MaxRequests:                utils.GetEnvInt("APP_MAX_REQUESTS", 100),
			ShutdownTimeout:            utils.GetEnvInt("APP_SHUTDOWN_TIMEOUT", 10),
			AppointmentEventQueue:      utils.GetEnvString("APP_RABBITMQ_APPOINTMENT_QUEUE", "appointment-events"),
			DiagnosisCacheTTLInMinutes: utils.GetEnvInt("APP_DIAGNOSIS_CACHE_TTL_IN_MINUTES", 60),
		},
		Diagnosis: Diagnosis{
			BaseUrl:          utils.GetEnvString("RAPIDAPI_BASE_URL", "https://medical-diagnosis-api.p.rapidapi.com"),
			Host:             utils.GetEnvString("RAPIDAPI_HOST", "medical-diagnosis-api.p.rapidapi.com"),
			APIKey:           utils.GetEnvString("RAPIDAPI_KEY", ""),
			TimeoutInSeconds: utils.GetEnvInt("RAPIDAPI_TIMEOUT_IN_SECONDS", 15),
		},
	}
}
