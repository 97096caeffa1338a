package childService

import (
	"LittleSteps/internal/api/child"
	childRepository "LittleSteps/internal/api/child/repository"
	"LittleSteps/internal/entity"
	"LittleSteps/pkg/s3"
	"LittleSteps/pkg/utils"
	"context"
	"github.com/sirupsen/logrus"
	"mime/multipart"
)

type ChildService interface {
	Child() ChildDomain
	GetRepository() childRepository.Repository
}

type ChildDomain interface {
	CreateChild(c context.Context, parentID string, req child.CreateChildRequest) (child.ChildResponse, error)
	GetChild(c context.Context, parentID string, childID string) (child.ChildResponse, error)
	ListChildren(c context.Context, parentID string) ([]child.ChildResponse, error)
	UpdateChild(c context.Context, parentID string, childID string, req child.UpdateChildRequest) error
	UpdateChildPhoto(c context.Context, parentID string, childID string, photoFile *multipart.FileHeader) (string, error)
	DeleteChild(c context.Context, parentID string, childID string) error
	GetOwnedChild(c context.Context, parentID string, childID string) (entity.Child, error)
}

type childService struct {
	log             *logrus.Logger
	childRepository childRepository.Repository
	s3Client        s3.ItfS3
	utils           utils.IUtils

	childDomain ChildDomain
}

func (s *childService) Child() ChildDomain {
	return s.childDomain
}

func (s *childService) GetRepository() childRepository.Repository {
	return s.childRepository
}

type childDomainImpl struct {
	log      *logrus.Logger
	repo     childRepository.Repository
	s3Client s3.ItfS3
	utils    utils.IUtils
}

func New(log *logrus.Logger,
	childRepo childRepository.Repository,
	s3Client s3.ItfS3,
	utils utils.IUtils,
) ChildService {
	return &childService{
		log:             log,
		childRepository: childRepo,
		s3Client:        s3Client,
		utils:           utils,

		childDomain: &childDomainImpl{log: log, repo: childRepo, s3Client: s3Client, utils: utils},
	}
}
