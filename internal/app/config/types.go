package config

type (
	DriverConfig struct {
		Redis    Redis
		RabbitMQ RabbitMQ
		Logger   Logger
	}

	Redis struct {
		Host     string
		Port     string
		Password string
	}

	RabbitMQ struct {
		Host     string
		Port     string
		Username string
		Password string
	}

	Logger struct {
		Level               string
		OutputFileName      string
		OutputErrorFileName string
	}
)

type (
	InternalConfig struct {
		App       App
		Diagnosis Diagnosis
	}

	App struct {
		Env                        string
		Port                       string
		Version                    string
		MaxRequests                int
		ShutdownTimeout            int
		AppointmentEventQueue      string
		DiagnosisCacheTTLInMinutes int
	}

	Diagnosis struct {
		BaseUrl          string
		Host             string
		APIKey           string
		TimeoutInSeconds int
	}
)
