package routers

import (
	"telemedicina-service/internal/app/delivery/http/controllers"
	"telemedicina-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachAuthRoutes(router chi.Router, middlewares *middlewares.Middlewares, authController *controllers.AuthController) {
	router.Post("/register", authController.RegisterUser)
	router.Post("/login", authController.LoginUser)
	router.Post("/logout", authController.LogoutUser)
	router.Post("/recover", authController.RecoverPassword)
	router.Post("/reset-password", authController.ResetPassword)
	router.With(middlewares.Authenticate).Get("/me", authController.GetSessionUser)
}
