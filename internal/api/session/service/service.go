package sessionService

import (
	childService "LittleSteps/internal/api/child/service"
	"LittleSteps/internal/api/session"
	sessionRepository "LittleSteps/internal/api/session/repository"
	"LittleSteps/internal/entity"
	"LittleSteps/pkg/mlservice"
	"LittleSteps/pkg/redis"
	"LittleSteps/pkg/s3"
	"LittleSteps/pkg/utils"
	"context"
	"github.com/sirupsen/logrus"
	"mime/multipart"
)

type SessionService interface {
	Session() SessionDomain
	GetRepository() sessionRepository.Repository
}

type SessionDomain interface {
	StartSession(c context.Context, parentID string, req session.StartSessionRequest) (session.SessionResponse, error)
	IngestFrameBatch(c context.Context, parentID string, sessionID string, req session.FrameBatchRequest) (session.FrameBatchResponse, error)
	GetLiveResult(c context.Context, parentID string, sessionID string) (session.MetricResultResponse, error)
	CompleteSession(c context.Context, parentID string, sessionID string) (session.SessionResponse, error)
	AbandonSession(c context.Context, parentID string, sessionID string) error
	UploadSessionVideo(c context.Context, parentID string, sessionID string, videoFile *multipart.FileHeader) (string, error)
	GetSession(c context.Context, parentID string, sessionID string) (session.SessionResponse, error)
	ListSessions(c context.Context, parentID string, childID string) ([]session.SessionResponse, error)
	GetOwnedSession(c context.Context, parentID string, sessionID string) (entity.GameSession, error)
}

type sessionService struct {
	log               *logrus.Logger
	sessionRepository sessionRepository.Repository
	childService      childService.ChildService
	mlClient          mlservice.ItfMLService
	redisServer       redis.IRedis
	s3Client          s3.ItfS3
	utils             utils.IUtils

	sessionDomain SessionDomain
}

func (s *sessionService) Session() SessionDomain {
	return s.sessionDomain
}

func (s *sessionService) GetRepository() sessionRepository.Repository {
	return s.sessionRepository
}

type sessionDomainImpl struct {
	log          *logrus.Logger
	repo         sessionRepository.Repository
	childService childService.ChildService
	mlClient     mlservice.ItfMLService
	redisServer  redis.IRedis
	s3Client     s3.ItfS3
	utils        utils.IUtils
}

func New(log *logrus.Logger,
	sessionRepo sessionRepository.Repository,
	childSvc childService.ChildService,
	mlClient mlservice.ItfMLService,
	redisServer redis.IRedis,
	s3Client s3.ItfS3,
	utils utils.IUtils,
) SessionService {
	return &sessionService{
		log:               log,
		sessionRepository: sessionRepo,
		childService:      childSvc,
		mlClient:          mlClient,
		redisServer:       redisServer,
		s3Client:          s3Client,
		utils:             utils,

		sessionDomain: &sessionDomainImpl{
			log:          log,
			repo:         sessionRepo,
			childService: childSvc,
			mlClient:     mlClient,
			redisServer:  redisServer,
			s3Client:     s3Client,
			utils:        utils,
		},
	}
}
