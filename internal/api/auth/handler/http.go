package authHandler

import (
	authService "LittleSteps/internal/api/auth/service"
	"LittleSteps/internal/middleware"
	"LittleSteps/pkg/google"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type AuthHandler struct {
	log            *logrus.Logger
	authService    authService.AuthService
	validator      *validator.Validate
	middleware     middleware.Middleware
	googleProvider google.ItfGoogle
}

func New(
	log *logrus.Logger,
	as authService.AuthService,
	validate *validator.Validate,
	middleware middleware.Middleware,
	googleProvider google.ItfGoogle) *AuthHandler {
	return &AuthHandler{
		log:            log,
		authService:    as,
		validator:      validate,
		middleware:     middleware,
		googleProvider: googleProvider,
	}
}

func (h *AuthHandler) Start(srv fiber.Router) {
	auth := srv.Group("/auth")
	auth.Post("/register", h.HandleRegister)
	auth.Post("/verify-otp", h.HandleVerifyEmailOTP)
	auth.Post("/resend-otp", h.HandleResendEmailOTP)
	auth.Post("/login", h.HandleLogin)
	auth.Get("/login/google", h.HandleGoogleLogin)
	auth.Post("/login/google", h.HandleGoogleCallback)

	srv.Get("/users/profile", h.middleware.NewTokenMiddleware, h.HandleGetProfile)
	srv.Patch("/users/profile", h.middleware.NewTokenMiddleware, h.HandleUpdateProfile)
	srv.Post("/users/profile-photo", h.middleware.NewTokenMiddleware, h.HandleUpdateProfilePhoto)
	srv.Delete("/users", h.middleware.NewTokenMiddleware, h.HandleDeleteUser)
}
