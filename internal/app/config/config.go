package config

import (
	"telemedicina-service/internal/pkg/constvars"
	"telemedicina-service/internal/pkg/utils"

	"github.com/joho/godotenv"
)

func init() {
	godotenv.Load()
}

func NewDriverConfig() *DriverConfig {
	return &DriverConfig{
		Supabase: Supabase{
			URL:                     utils.GetEnvString("SUPABASE_URL", "http://localhost:54321"),
			AnonKey:                 utils.GetEnvString("SUPABASE_ANON_KEY", ""),
			ServiceRoleKey:          utils.GetEnvString("SUPABASE_SERVICE_ROLE_KEY", ""),
			JWTSecret:               utils.GetEnvString("SUPABASE_JWT_SECRET", ""),
			RequestTimeoutInSeconds: utils.GetEnvInt("APP_BACKEND_REQUEST_TIMEOUT_IN_SECONDS", 10),
		},
		PostgresDB: PostgresDB{
			Host:     utils.GetEnvString("POSTGRES_HOST", "localhost"),
			Port:     utils.GetEnvString("POSTGRES_PORT", "5432"),
			Username: utils.GetEnvString("POSTGRES_USERNAME", "postgres"),
			Password: utils.GetEnvString("POSTGRES_PASSWORD", "postgres"),
			DBName:   utils.GetEnvString("POSTGRES_DB_NAME", "telemedicina"),
			SSLMode:  utils.GetEnvString("POSTGRES_SSL_MODE", "disable"),
		},
		MongoDB: MongoDB{
			Host:     utils.GetEnvString("MONGODB_HOST", "localhost"),
			Port:     utils.GetEnvString("MONGODB_PORT", "27017"),
			Username: utils.GetEnvString("MONGODB_USERNAME", ""),
			Password: utils.GetEnvString("MONGODB_PASSWORD", ""),
			DbName:   utils.GetEnvString("MONGODB_DB_NAME", "telemedicina"),
		},
		Redis: Redis{
			Host:     utils.GetEnvString("REDIS_HOST", "localhost"),
			Port:     utils.GetEnvString("REDIS_PORT", "6379"),
			Password: utils.GetEnvString("REDIS_PASSWORD", ""),
			DB:       utils.GetEnvInt("REDIS_DB", 0),
		},
		Logger: Logger{
			Level:               utils.GetEnvString("LOGGER_LEVEL", "debug"),
			OutputFileName:      utils.GetEnvString("LOGGER_OUTPUT_FILENAME", "logger.log"),
			OutputErrorFileName: utils.GetEnvString("LOGGER_OUTPUT_ERROR_FILENAME", "logger_error.log"),
		},
		SMTP: SMTP{
			Host:     utils.GetEnvString("SMTP_HOST", "smtp.gmail.com"),
			Port:     utils.GetEnvInt("SMTP_PORT", 587),
			Username: utils.GetEnvString("SMTP_USERNAME", ""),
			Password: utils.GetEnvString("SMTP_PASSWORD", ""),
		},
		RabbitMQ: RabbitMQ{
			Host:     utils.GetEnvString("RABBITMQ_HOST", "localhost"),
			Port:     utils.GetEnvString("RABBITMQ_PORT", "5672"),
			Username: utils.GetEnvString("RABBITMQ_USERNAME", "guest"),
			Password: utils.GetEnvString("RABBITMQ_PASSWORD", "guest"),
		},
		Minio: Minio{
			Host:     utils.GetEnvString("MINIO_HOST", "localhost"),
			Port:     utils.GetEnvString("MINIO_PORT", "9000"),
			Username: utils.GetEnvString("MINIO_USERNAME", "minioadmin"),
			Password: utils.GetEnvString("MINIO_PASSWORD", "minioadmin"),
			UseSSL:   utils.GetEnvBool("MINIO_USE_SSL", false),
		},
	}
}

func NewInternalConfig() *InternalConfig {
	return &InternalConfig{
		App: App{
			Env:                                    utils.GetEnvString("APP_ENV", constvars.AppEnvDevelopment),
			Port:                                   utils.GetEnvString("APP_PORT", ":3000"),
			Version:                                utils.GetEnvString("APP_VERSION", "v1.0"),
			PublicDir:                              utils.GetEnvString("APP_PUBLIC_DIR", "public"),
			AllowedOrigins:                         utils.GetEnvString("APP_ALLOWED_ORIGINS", "*"),
			ResetPasswordUrl:                       utils.GetEnvString("APP_RESET_PASSWORD_URL", "http://localhost:3000/reset-password.html"),
			ProfileStore:                           utils.GetEnvString("APP_PROFILE_STORE", constvars.ProfileStorePostgrest),
			MailerDriver:                           utils.GetEnvString("APP_MAILER_DRIVER", constvars.MailerDriverSMTP),
			CVStorageEnabled:                       utils.GetEnvBool("APP_CV_STORAGE_ENABLED", false),
			ShutdownTimeoutInSeconds:               utils.GetEnvInt("APP_SHUTDOWN_TIMEOUT_IN_SECONDS", 10),
			RequestTimeoutInSeconds:                utils.GetEnvInt("APP_REQUEST_TIMEOUT_IN_SECONDS", 15),
			RequestBodyLimitInMegabyte:             utils.GetEnvInt("APP_REQUEST_BODY_LIMIT_IN_MEGABYTE", 6),
			ResetPasswordTokenExpiredTimeInMinutes: utils.GetEnvInt("APP_RESET_PASSWORD_TOKEN_EXPIRED_TIME_IN_MINUTES", 15),
		},
		Mailer: AppMailer{
			EmailSender: utils.GetEnvString("APP_MAILER_EMAIL_SENDER", "no-reply@telemedicina.local"),
		},
		RabbitMQ: AppRabbitMQ{
			MailerQueue: utils.GetEnvString("APP_RABBITMQ_MAILER_QUEUE", "mailer"),
		},
		Minio: AppMinio{
			BucketName:          utils.GetEnvString("APP_MINIO_BUCKET_NAME", "telemedicina"),
			CVMaxUploadSizeInMB: utils.GetEnvInt("APP_MINIO_CV_MAX_UPLOAD_SIZE_IN_MB", 5),
		},
	}
}
