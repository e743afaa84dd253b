package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"telemedicina-service/internal/app/config"
	"telemedicina-service/internal/app/contracts"
	"telemedicina-service/internal/app/delivery/http/controllers"
	"telemedicina-service/internal/app/delivery/http/middlewares"
	"telemedicina-service/internal/app/delivery/http/routers"
	"telemedicina-service/internal/app/drivers/database"
	"telemedicina-service/internal/app/drivers/logger"
	smtpDriver "telemedicina-service/internal/app/drivers/mailer"
	"telemedicina-service/internal/app/drivers/messaging"
	"telemedicina-service/internal/app/drivers/storage"
	"telemedicina-service/internal/app/services/core/auth"
	"telemedicina-service/internal/app/services/core/identities"
	"telemedicina-service/internal/app/services/core/profiles"
	"telemedicina-service/internal/app/services/shared/mailer"
	"telemedicina-service/internal/app/services/shared/redis"
	"telemedicina-service/internal/app/services/shared/smtp"
	minioStorage "telemedicina-service/internal/app/services/shared/storage"
	"telemedicina-service/internal/pkg/constvars"
	"telemedicina-service/internal/pkg/utils"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	if driverConfig.Supabase.JWTSecret == "" {
		log.Fatalf("SUPABASE_JWT_SECRET must be set to verify access tokens")
	}

	zapLogger := logger.NewZapLogger(driverConfig, internalConfig)

	bootstrap := &config.Bootstrap{
		Router:         chi.NewRouter(),
		Redis:          database.NewRedisClient(driverConfig),
		Logger:         zapLogger,
		InternalConfig: internalConfig,
		DriverConfig:   driverConfig,
	}

	switch internalConfig.App.ProfileStore {
	case constvars.ProfileStorePostgres:
		bootstrap.PostgresDB = database.NewPostgresDB(driverConfig)
	case constvars.ProfileStoreMongo:
		bootstrap.MongoDB = database.NewMongoDB(driverConfig)
	}

	if internalConfig.App.MailerDriver == constvars.MailerDriverRabbitMQ {
		bootstrap.RabbitMQ = messaging.NewRabbitMQ(driverConfig)
	}

	if internalConfig.App.CVStorageEnabled {
		bootstrap.Minio = storage.NewMinio(driverConfig, internalConfig)
	}

	err := bootstrapingTheApp(bootstrap)
	if err != nil {
		log.Fatalf("Error bootstraping the app: %v", err)
	}

	server := &http.Server{
		Addr:    internalConfig.App.Port,
		Handler: bootstrap.Router,
	}

	go func() {
		zapLogger.Info("Server started",
			zap.String("port", internalConfig.App.Port),
			zap.String("profile_store", internalConfig.App.ProfileStore),
			zap.String("mailer_driver", internalConfig.App.MailerDriver),
		)
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	log.Println("Waiting for pending requests that already received by server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeoutInSeconds),
	)
	defer cancel()

	err = server.Shutdown(shutdownCtx)
	if err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	err = bootstrap.Shutdown(shutdownCtx)
	if err != nil {
		log.Printf("Error closing drivers: %v", err)
	}

	log.Println("Server exiting")
}

func bootstrapingTheApp(bootstrap *config.Bootstrap) error {
	driverConfig := bootstrap.DriverConfig
	internalConfig := bootstrap.InternalConfig
	backendHTTPClient := utils.NewBackendHTTPClient(driverConfig.Supabase.RequestTimeoutInSeconds)

	// Redis
	redisRepository := redis.NewRedisRepository(bootstrap.Redis)

	// Identity backend
	identityBackend := identities.NewIdentitySupabaseClient(
		driverConfig.Supabase.URL,
		driverConfig.Supabase.AnonKey,
		driverConfig.Supabase.ServiceRoleKey,
		backendHTTPClient,
		bootstrap.Logger,
	)

	// Profiles
	var profileRepository contracts.ProfileRepository
	switch {
	case bootstrap.PostgresDB != nil:
		profileRepository = profiles.NewProfilePostgresRepository(bootstrap.PostgresDB, bootstrap.Logger)
	case bootstrap.MongoDB != nil:
		profileRepository = profiles.NewProfileMongoRepository(bootstrap.MongoDB, bootstrap.Logger)
	default:
		profileRepository = profiles.NewProfilePostgrestClient(
			driverConfig.Supabase.URL,
			driverConfig.Supabase.ServiceRoleKey,
			backendHTTPClient,
			bootstrap.Logger,
		)
	}

	// Mailer
	var mailerService contracts.MailerService
	if bootstrap.RabbitMQ != nil {
		queueMailer, err := mailer.NewMailerService(bootstrap.RabbitMQ, internalConfig.RabbitMQ.MailerQueue, bootstrap.Logger)
		if err != nil {
			return err
		}
		mailerService = queueMailer
	} else {
		mailerService = smtp.NewSmtpService(smtpDriver.NewSMTPClient(driverConfig), bootstrap.Logger)
	}

	// CV storage
	var cvStorage contracts.Storage
	if bootstrap.Minio != nil {
		cvStorage = minioStorage.NewMinioStorage(bootstrap.Minio, internalConfig.Minio.BucketName, bootstrap.Logger)
	}

	// Auth
	authUsecase := auth.NewAuthUsecase(
		identityBackend,
		profileRepository,
		redisRepository,
		mailerService,
		cvStorage,
		internalConfig,
		driverConfig,
		bootstrap.Logger,
	)
	authController := controllers.NewAuthController(bootstrap.Logger, authUsecase, internalConfig)

	// Middlewares
	middlewares := middlewares.NewMiddlewares(bootstrap.Logger, internalConfig, driverConfig)

	routers.SetupRoutes(bootstrap.Router, internalConfig, middlewares, authController)
	return nil
}
