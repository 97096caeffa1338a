package sessionHandler

import (
	sessionService "LittleSteps/internal/api/session/service"
	"LittleSteps/internal/middleware"
	websocketPkg "LittleSteps/pkg/websocket"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
	"github.com/sirupsen/logrus"
)

type SessionHandler struct {
	log            *logrus.Logger
	sessionService sessionService.SessionService
	validator      *validator.Validate
	middleware     middleware.Middleware
	liveClient     websocketPkg.IWebsocket
}

func New(
	log *logrus.Logger,
	ss sessionService.SessionService,
	validate *validator.Validate,
	middleware middleware.Middleware,
	liveClient websocketPkg.IWebsocket,
) *SessionHandler {
	return &SessionHandler{
		log:            log,
		sessionService: ss,
		validator:      validate,
		middleware:     middleware,
		liveClient:     liveClient,
	}
}

func (h *SessionHandler) Start(srv fiber.Router) {
	wsMiddleware := func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return fiber.ErrUpgradeRequired
	}

	live := srv.Group("/sessions/live")
	live.Use("/ws", wsMiddleware)
	live.Get("/ws", websocket.New(h.handleAttentionWebSocket))
	live.Use("/attention/ws", wsMiddleware)
	live.Get("/attention/ws", websocket.New(h.handleAttentionWebSocket))
	live.Use("/gesture/ws", wsMiddleware)
	live.Get("/gesture/ws", websocket.New(h.handleGestureWebSocket))

	srv.Post("/sessions", h.middleware.NewTokenMiddleware, h.HandleStartSession)
	srv.Get("/sessions", h.middleware.NewTokenMiddleware, h.HandleListSessions)
	srv.Get("/children/:id/sessions", h.middleware.NewTokenMiddleware, h.HandleListSessions)
	srv.Get("/sessions/:id", h.middleware.NewTokenMiddleware, h.HandleGetSession)
	srv.Post("/sessions/:id/frames", h.middleware.NewTokenMiddleware, h.HandleIngestFrameBatch)
	srv.Get("/sessions/:id/result", h.middleware.NewTokenMiddleware, h.HandleGetLiveResult)
	srv.Post("/sessions/:id/complete", h.middleware.NewTokenMiddleware, h.HandleCompleteSession)
	srv.Post("/sessions/:id/abandon", h.middleware.NewTokenMiddleware, h.HandleAbandonSession)
	srv.Post("/sessions/:id/video", h.middleware.NewTokenMiddleware, h.HandleUploadSessionVideo)
}
