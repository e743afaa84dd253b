package middlewares

import (
	"telemedicina-service/internal/app/config"

	"go.uber.org/zap"
)

type Middlewares struct {
	Log            *zap.Logger
	InternalConfig *config.InternalConfig
	DriverConfig   *config.DriverConfig
}

func NewMiddlewares(logger *zap.Logger, internalConfig *config.InternalConfig, driverConfig *config.DriverConfig) *Middlewares {
	return &Middlewares{
		Log:            logger,
		InternalConfig: internalConfig,
		DriverConfig:   driverConfig,
	}
}
