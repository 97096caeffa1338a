package config

import (
	"LittleSteps/database/postgres"
	analysisHandler "LittleSteps/internal/api/analysis/handler"
	analysisService "LittleSteps/internal/api/analysis/service"
	authHandler "LittleSteps/internal/api/auth/handler"
	authRepository "LittleSteps/internal/api/auth/repository"
	authService "LittleSteps/internal/api/auth/service"
	childHandler "LittleSteps/internal/api/child/handler"
	childRepository "LittleSteps/internal/api/child/repository"
	childService "LittleSteps/internal/api/child/service"
	screeningHandler "LittleSteps/internal/api/screening/handler"
	screeningRepository "LittleSteps/internal/api/screening/repository"
	screeningService "LittleSteps/internal/api/screening/service"
	sessionHandler "LittleSteps/internal/api/session/handler"
	sessionRepository "LittleSteps/internal/api/session/repository"
	sessionService "LittleSteps/internal/api/session/service"
	"LittleSteps/internal/middleware"
	"LittleSteps/pkg/bcrypt"
	"LittleSteps/pkg/emotion"
	"LittleSteps/pkg/gemini"
	"LittleSteps/pkg/google"
	"LittleSteps/pkg/groq"
	"LittleSteps/pkg/mlservice"
	"LittleSteps/pkg/redis"
	"LittleSteps/pkg/s3"
	"LittleSteps/pkg/smtp"
	"LittleSteps/pkg/utils"
	websocketPkg "LittleSteps/pkg/websocket"
	"LittleSteps/pkg/whatsapp"
	"fmt"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
	"os"
)

type ServerOption func(*Server) error

type Server struct {
	engine         *fiber.App
	db             *sqlx.DB
	log            *logrus.Logger
	middleware     middleware.Middleware
	validator      *validator.Validate
	utils          utils.IUtils
	bcryptUtils    bcrypt.IBcrypt
	handlers       []handler
	googleProvider google.ItfGoogle
	redisServer    redis.IRedis
	smtpMailer     smtp.ItfSmtp
	liveWebsocket  websocketPkg.IWebsocket
	whatsappClient whatsapp.IWhatsappSender
	geminiClient   gemini.IGemini
	groqClient     groq.IGroq
	emotionClient  emotion.ItfEmotion
	mlClient       mlservice.ItfMLService
	s3Client       s3.ItfS3
}

type handler interface {
	Start(srv fiber.Router)
}

func NewServer(options ...ServerOption) (*Server, error) {
	server := &Server{}

	for _, option := range options {
		if err := option(server); err != nil {
			return nil, fmt.Errorf("failed to apply option: %w", err)
		}
	}

	if server.engine == nil {
		return nil, fmt.Errorf("fiber app is required")
	}
	if server.log == nil {
		return nil, fmt.Errorf("logger is required")
	}

	return server, nil
}

func WithFiber(fiberApp *fiber.App) ServerOption {
	return func(s *Server) error {
		s.engine = fiberApp
		return nil
	}
}

func WithLogger(logger *logrus.Logger) ServerOption {
	return func(s *Server) error {
		s.log = logger
		return nil
	}
}

func WithValidator(validator *validator.Validate) ServerOption {
	return func(s *Server) error {
		s.validator = validator
		return nil
	}
}

func WithDatabase() ServerOption {
	return func(s *Server) error {
		db, err := postgres.New()
		if err != nil {
			if s.log != nil {
				s.log.Errorf("Failed to connect to database: %v", err)
			}
			return fmt.Errorf("failed to create database connection: %w", err)
		}
		s.db = db
		return nil
	}
}

func WithGoogleProvider(provider google.ItfGoogle) ServerOption {
	return func(s *Server) error {
		s.googleProvider = provider
		return nil
	}
}

func WithRedisServer(redisServer redis.IRedis) ServerOption {
	return func(s *Server) error {
		s.redisServer = redisServer
		return nil
	}
}

func WithSMTPMailer(smtpMailer smtp.ItfSmtp) ServerOption {
	return func(s *Server) error {
		s.smtpMailer = smtpMailer
		return nil
	}
}

func WithLiveWebSocket(webSocket websocketPkg.IWebsocket) ServerOption {
	return func(s *Server) error {
		s.liveWebsocket = webSocket
		return nil
	}
}

func WithMiddleware() ServerOption {
	return func(s *Server) error {
		if s.log == nil {
			return fmt.Errorf("logger must be initialized before middleware")
		}
		s.middleware = middleware.New(s.log)
		return nil
	}
}

func WithS3Client() ServerOption {
	return func(s *Server) error {
		client, err := s3.New()
		if err != nil {
			if s.log != nil {
				s.log.Errorf("Failed to initialize S3 client: %v", err)
			}
			return fmt.Errorf("failed to create S3 client: %w", err)
		}
		s.s3Client = client
		return nil
	}
}

// WithWhatsappClient is optional wiring. A missing WhatsApp session must
// not prevent the API from serving.
func WithWhatsappClient() ServerOption {
	return func(s *Server) error {
		client, err := whatsapp.New()
		if err != nil {
			if s.log != nil {
				s.log.Warnf("WhatsApp client unavailable, report delivery disabled: %v", err)
			}
			return nil
		}
		s.whatsappClient = client
		return nil
	}
}

func WithGeminiClient() ServerOption {
	return func(s *Server) error {
		client, err := gemini.NewGeminiClient()
		if err != nil {
			if s.log != nil {
				s.log.Errorf("Failed to create Gemini client: %v", err)
			}
			return fmt.Errorf("failed to create Gemini client: %w", err)
		}
		s.geminiClient = client
		return nil
	}
}

func WithGroqClient() ServerOption {
	return func(s *Server) error {
		s.groqClient = groq.New()
		return nil
	}
}

func WithEmotionClient() ServerOption {
	return func(s *Server) error {
		s.emotionClient = emotion.New()
		return nil
	}
}

func WithMLClient() ServerOption {
	return func(s *Server) error {
		s.mlClient = mlservice.New()
		return nil
	}
}

func WithUtils() ServerOption {
	return func(s *Server) error {
		s.utils = utils.New()
		return nil
	}
}

func WithBcryptUtils() ServerOption {
	return func(s *Server) error {
		s.bcryptUtils = bcrypt.New()
		return nil
	}
}

func (s *Server) RegisterHandler() {
	// Auth Domain
	authRepo := authRepository.New(s.db, s.log)
	authServices := authService.New(s.log, authRepo, s.googleProvider, s.smtpMailer, s.redisServer, s.s3Client, s.bcryptUtils, s.utils)
	authHandlers := authHandler.New(s.log, authServices, s.validator, s.middleware, s.googleProvider)

	// Child Domain
	childRepo := childRepository.New(s.db, s.log)
	childServices := childService.New(s.log, childRepo, s.s3Client, s.utils)
	childHandlers := childHandler.New(s.log, childServices, s.validator, s.middleware)

	// Game Session Domain
	sessionRepo := sessionRepository.New(s.db, s.log)
	sessionServices := sessionService.New(s.log, sessionRepo, childServices, s.mlClient, s.redisServer, s.s3Client, s.utils)
	sessionHandlers := sessionHandler.New(s.log, sessionServices, s.validator, s.middleware, s.liveWebsocket)

	// Screening Domain
	screeningRepo := screeningRepository.New(s.db, s.log)
	screeningServices := screeningService.New(s.log, screeningRepo, sessionRepo, authRepo, childServices, s.groqClient, s.whatsappClient, s.utils)
	screeningHandlers := screeningHandler.New(s.log, screeningServices, s.validator, s.middleware)

	// Analysis Domain
	analysisServices := analysisService.New(s.log, s.emotionClient, s.geminiClient, s.mlClient)
	analysisHandlers := analysisHandler.New(s.log, analysisServices, s.validator, s.middleware, s.utils)

	s.setupHealthCheck()
	s.handlers = append(s.handlers, authHandlers, childHandlers, sessionHandlers, screeningHandlers, analysisHandlers)
}

func (s *Server) Run() error {
	router := s.engine.Group("/api/v1")
	s.engine.Use(s.middleware.NewRequestIDMiddleware())
	s.engine.Use(middleware.LoggerConfig())
	s.engine.Use(s.middleware.NewRateLimiter)

	for _, h := range s.handlers {
		h.Start(router)
	}

	port := os.Getenv("APP_PORT")
	if port == "" {
		port = "3000"
	}

	if err := s.engine.Listen(fmt.Sprintf(":%s", port)); err != nil {
		if s.whatsappClient != nil {
			s.whatsappClient.Disconnect()
		}
		if s.liveWebsocket != nil {
			s.liveWebsocket.CloseConnections()
		}
		return err
	}

	return nil
}

func (s *Server) setupHealthCheck() {
	s.engine.Get("/", func(ctx *fiber.Ctx) error {
		return ctx.JSON(fiber.Map{
			"message": "Server is Healthy!",
		})
	})
}
