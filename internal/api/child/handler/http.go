package childHandler

import (
	childService "LittleSteps/internal/api/child/service"
	"LittleSteps/internal/middleware"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type ChildHandler struct {
	log          *logrus.Logger
	childService childService.ChildService
	validator    *validator.Validate
	middleware   middleware.Middleware
}

func New(
	log *logrus.Logger,
	cs childService.ChildService,
	validate *validator.Validate,
	middleware middleware.Middleware) *ChildHandler {
	return &ChildHandler{
		log:          log,
		childService: cs,
		validator:    validate,
		middleware:   middleware,
	}
}

func (h *ChildHandler) Start(srv fiber.Router) {
	srv.Post("/children", h.middleware.NewTokenMiddleware, h.HandleCreateChild)
	srv.Get("/children", h.middleware.NewTokenMiddleware, h.HandleListChildren)
	srv.Get("/children/:id", h.middleware.NewTokenMiddleware, h.HandleGetChild)
	srv.Put("/children/:id", h.middleware.NewTokenMiddleware, h.HandleUpdateChild)
	srv.Post("/children/:id/photo", h.middleware.NewTokenMiddleware, h.HandleUpdateChildPhoto)
	srv.Delete("/children/:id", h.middleware.NewTokenMiddleware, h.HandleDeleteChild)
}
