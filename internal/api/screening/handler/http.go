package screeningHandler

import (
	screeningService "LittleSteps/internal/api/screening/service"
	"LittleSteps/internal/middleware"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type ScreeningHandler struct {
	log              *logrus.Logger
	screeningService screeningService.ScreeningService
	validator        *validator.Validate
	middleware       middleware.Middleware
}

func New(
	log *logrus.Logger,
	ss screeningService.ScreeningService,
	validate *validator.Validate,
	middleware middleware.Middleware) *ScreeningHandler {
	return &ScreeningHandler{
		log:              log,
		screeningService: ss,
		validator:        validate,
		middleware:       middleware,
	}
}

func (h *ScreeningHandler) Start(srv fiber.Router) {
	srv.Post("/screenings", h.middleware.NewTokenMiddleware, h.HandleCreateScreening)
	srv.Get("/screenings", h.middleware.NewTokenMiddleware, h.HandleListScreenings)
	srv.Get("/children/:id/screenings", h.middleware.NewTokenMiddleware, h.HandleListScreenings)
	srv.Get("/screenings/:id", h.middleware.NewTokenMiddleware, h.HandleGetScreening)
	srv.Get("/screenings/:id/status", h.middleware.NewTokenMiddleware, h.HandleGetStatus)
	srv.Post("/screenings/:id/questionnaire", h.middleware.NewTokenMiddleware, h.HandleSubmitQuestionnaire)
	srv.Post("/screenings/:id/finalize", h.middleware.NewTokenMiddleware, h.HandleFinalize)
}
