package analysisHandler

import (
	analysisService "LittleSteps/internal/api/analysis/service"
	"LittleSteps/internal/middleware"
	"LittleSteps/pkg/utils"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
	"github.com/sirupsen/logrus"
)

type AnalysisHandler struct {
	log             *logrus.Logger
	analysisService analysisService.AnalysisService
	validator       *validator.Validate
	middleware      middleware.Middleware
	utils           utils.IUtils
}

func New(
	log *logrus.Logger,
	as analysisService.AnalysisService,
	validate *validator.Validate,
	middleware middleware.Middleware,
	utils utils.IUtils) *AnalysisHandler {
	return &AnalysisHandler{
		log:             log,
		analysisService: as,
		validator:       validate,
		middleware:      middleware,
		utils:           utils,
	}
}

func (h *AnalysisHandler) Start(srv fiber.Router) {
	wsMiddleware := func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return fiber.ErrUpgradeRequired
	}

	analysis := srv.Group("/analysis")
	analysis.Get("/health", h.HandleHealth)
	analysis.Post("/emotion", h.middleware.NewTokenMiddleware, h.HandleAnalyzeEmotion)
	analysis.Use("/emotion/ws", wsMiddleware)
	analysis.Get("/emotion/ws", websocket.New(h.handleEmotionWebSocket))
}
