package routers

import (
	"net/http"
	"strings"
	"telemedicina-service/internal/app/config"
	"telemedicina-service/internal/app/delivery/http/controllers"
	"telemedicina-service/internal/app/delivery/http/middlewares"
	"telemedicina-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
)

func SetupRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	middlewares *middlewares.Middlewares,
	authController *controllers.AuthController,
) {
	corsOptions := cors.Options{
		AllowedOrigins:   allowedOrigins(internalConfig.App.AllowedOrigins),
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", constvars.HeaderXRequestID},
		ExposedHeaders:   []string{constvars.HeaderXRequestID},
		AllowCredentials: true,
		MaxAge:           300,
	}
	router.Use(cors.Handler(corsOptions))

	router.Use(middlewares.RequestIDMiddleware)
	router.Use(middlewares.Logging)
	router.Use(middlewares.ErrorHandler)
	router.Use(middlewares.BodyLimit)

	router.Route("/api", func(r chi.Router) {
		attachAuthRoutes(r, middlewares, authController)
	})

	if internalConfig.App.PublicDir != "" {
		router.Handle("/*", http.FileServer(http.Dir(internalConfig.App.PublicDir)))
	}
}

func allowedOrigins(value string) []string {
	var origins []string
	for _, origin := range strings.Split(value, ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			origins = append(origins, origin)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}
