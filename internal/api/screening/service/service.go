package screeningService

import (
	authRepository "LittleSteps/internal/api/auth/repository"
	childService "LittleSteps/internal/api/child/service"
	"LittleSteps/internal/api/screening"
	screeningRepository "LittleSteps/internal/api/screening/repository"
	sessionRepository "LittleSteps/internal/api/session/repository"
	"LittleSteps/internal/entity"
	"LittleSteps/pkg/groq"
	"LittleSteps/pkg/utils"
	"LittleSteps/pkg/whatsapp"
	"context"
	"github.com/sirupsen/logrus"
)

type ScreeningService interface {
	Screening() ScreeningDomain
	GetRepository() screeningRepository.Repository
}

type ScreeningDomain interface {
	CreateScreening(c context.Context, parentID string, req screening.CreateScreeningRequest) (screening.ScreeningResponse, error)
	SubmitQuestionnaire(c context.Context, parentID string, screeningID string, req screening.QuestionnaireRequest) (screening.QuestionnaireResponse, error)
	GetStatus(c context.Context, parentID string, screeningID string) (screening.StatusResponse, error)
	Finalize(c context.Context, parentID string, screeningID string) (screening.ScreeningResponse, error)
	GetScreening(c context.Context, parentID string, screeningID string) (screening.ScreeningResponse, error)
	ListScreenings(c context.Context, parentID string, childID string) ([]screening.ScreeningResponse, error)
	GetOwnedScreening(c context.Context, parentID string, screeningID string) (entity.Screening, error)
}

type screeningService struct {
	log                 *logrus.Logger
	screeningRepository screeningRepository.Repository

	screeningDomain ScreeningDomain
}

func (s *screeningService) Screening() ScreeningDomain {
	return s.screeningDomain
}

func (s *screeningService) GetRepository() screeningRepository.Repository {
	return s.screeningRepository
}

type screeningDomainImpl struct {
	log            *logrus.Logger
	repo           screeningRepository.Repository
	sessionRepo    sessionRepository.Repository
	authRepo       authRepository.Repository
	childService   childService.ChildService
	groqClient     groq.IGroq
	whatsappSender whatsapp.IWhatsappSender
	utils          utils.IUtils
}

func New(log *logrus.Logger,
	screeningRepo screeningRepository.Repository,
	sessionRepo sessionRepository.Repository,
	authRepo authRepository.Repository,
	childSvc childService.ChildService,
	groqClient groq.IGroq,
	whatsappSender whatsapp.IWhatsappSender,
	utils utils.IUtils,
) ScreeningService {
	return &screeningService{
		log:                 log,
		screeningRepository: screeningRepo,

		screeningDomain: &screeningDomainImpl{
			log:            log,
			repo:           screeningRepo,
			sessionRepo:    sessionRepo,
			authRepo:       authRepo,
			childService:   childSvc,
			groqClient:     groqClient,
			whatsappSender: whatsappSender,
			utils:          utils,
		},
	}
}
