package config

type (
	DriverConfig struct {
		Supabase   Supabase
		PostgresDB PostgresDB
		MongoDB    MongoDB
		Redis      Redis
		Logger     Logger
		SMTP       SMTP
		RabbitMQ   RabbitMQ
		Minio      Minio
	}
	// Supabase holds the hosted identity and profile backend. The service
	// role key is needed for the admin endpoints used by compensation and
	// password reset.
	Supabase struct {
		URL                     string
		AnonKey                 string
		ServiceRoleKey          string
		JWTSecret               string
		RequestTimeoutInSeconds int
	}
	PostgresDB struct {
		Host     string
		Port     string
		Username string
		Password string
		DBName   string
		SSLMode  string
	}
	MongoDB struct {
		Host     string
		Port     string
		Username string
		Password string
		DbName   string
	}
	Redis struct {
		Host     string
		Port     string
		Password string
		DB       int
	}
	Logger struct {
		Level               string
		OutputFileName      string
		OutputErrorFileName string
	}
	SMTP struct {
		Host     string
		Port     int
		Username string
		Password string
	}
	RabbitMQ struct {
		Host     string
		Port     string
		Username string
		Password string
	}
	Minio struct {
		Host     string
		Port     string
		Username string
		Password string
		UseSSL   bool
	}
)
