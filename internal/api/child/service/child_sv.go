package childService

import (
	"LittleSteps/internal/api/child"
	"LittleSteps/internal/entity"
	contextPkg "LittleSteps/pkg/context"
	"errors"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
	"mime/multipart"
	"time"
)

func (s *childDomainImpl) CreateChild(ctx context.Context, parentID string, req child.CreateChildRequest) (child.ChildResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)
	repo, err := s.repo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return child.ChildResponse{}, err
	}

	birthDate, err := time.Parse("2006-01-02", req.BirthDate)
	if err != nil {
		return child.ChildResponse{}, child.ErrInvalidBirthDate
	}

	ULID, err := s.utils.NewULIDFromTimestamp(time.Now())
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to generate ULID")
		return child.ChildResponse{}, err
	}

	ch := entity.Child{
		ID:               ULID,
		ParentID:         parentID,
		Name:             req.Name,
		BirthDate:        birthDate,
		Sex:              entity.Sex(req.Sex),
		JaundiceAtBirth:  req.JaundiceAtBirth,
		FamilyASDHistory: req.FamilyASDHistory,
	}

	if err := ch.Validate(time.Now()); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Warn("Child profile validation failed")
		return child.ChildResponse{}, err
	}

	if err := repo.Children.CreateChild(ctx, ch); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create child")
		return child.ChildResponse{}, err
	}

	ch.CreatedAt = time.Now()
	ch.UpdatedAt = ch.CreatedAt

	return s.makeChildResponse(ch), nil
}

// GetOwnedChild loads the child and enforces that it belongs to parentID.
// Every child-scoped operation in other domains goes through this check.
func (s *childDomainImpl) GetOwnedChild(ctx context.Context, parentID string, childID string) (entity.Child, error) {
	requestID := contextPkg.GetRequestID(ctx)
	repo, err := s.repo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return entity.Child{}, err
	}

	ch, err := repo.Children.GetByID(ctx, childID)
	if err != nil {
		if errors.Is(err, child.ErrChildNotFound) {
			return entity.Child{}, child.ErrChildNotFound
		}
		return entity.Child{}, err
	}

	if ch.ParentID != parentID {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"child_id":   childID,
		}).Warn("Child ownership check failed")
		return entity.Child{}, child.ErrChildNotOwned
	}

	return ch, nil
}

func (s *childDomainImpl) GetChild(ctx context.Context, parentID string, childID string) (child.ChildResponse, error) {
	ch, err := s.GetOwnedChild(ctx, parentID, childID)
	if err != nil {
		return child.ChildResponse{}, err
	}

	res := s.makeChildResponse(ch)

	if ch.PhotoURL.Valid && ch.PhotoURL.String != "" {
		presigned, err := s.s3Client.PresignUrl(ch.PhotoURL.String)
		if err == nil {
			res.PhotoURL = presigned
		}
	}

	return res, nil
}

func (s *childDomainImpl) ListChildren(ctx context.Context, parentID string) ([]child.ChildResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)
	repo, err := s.repo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return nil, err
	}

	children, err := repo.Children.GetByParentID(ctx, parentID)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to list children")
		return nil, err
	}

	res := make([]child.ChildResponse, 0, len(children))
	for _, ch := range children {
		res = append(res, s.makeChildResponse(ch))
	}

	return res, nil
}

func (s *childDomainImpl) UpdateChild(ctx context.Context, parentID string, childID string, req child.UpdateChildRequest) error {
	requestID := contextPkg.GetRequestID(ctx)

	ch, err := s.GetOwnedChild(ctx, parentID, childID)
	if err != nil {
		return err
	}

	repo, err := s.repo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return err
	}

	birthDate, err := time.Parse("2006-01-02", req.BirthDate)
	if err != nil {
		return child.ErrInvalidBirthDate
	}

	ch.Name = req.Name
	ch.BirthDate = birthDate
	ch.Sex = entity.Sex(req.Sex)
	ch.JaundiceAtBirth = req.JaundiceAtBirth
	ch.FamilyASDHistory = req.FamilyASDHistory

	if err := ch.Validate(time.Now()); err != nil {
		return err
	}

	if err := repo.Children.UpdateChild(ctx, ch); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to update child")
		return err
	}

	return nil
}

func (s *childDomainImpl) UpdateChildPhoto(ctx context.Context, parentID string, childID string, photoFile *multipart.FileHeader) (string, error) {
	requestID := contextPkg.GetRequestID(ctx)

	ch, err := s.GetOwnedChild(ctx, parentID, childID)
	if err != nil {
		return "", err
	}

	if err := s.utils.ValidateImageFile(photoFile); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Warn("Invalid child photo upload")
		return "", child.ErrInvalidPhotoFile
	}

	repo, err := s.repo.NewClient(false)
	if err != nil {
		return "", err
	}

	location, err := s.s3Client.UploadFile(photoFile, "children")
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to upload child photo")
		return "", child.ErrFailedToUploadFile
	}

	if ch.PhotoURL.Valid && ch.PhotoURL.String != "" {
		if err := s.s3Client.DeleteFile(ch.PhotoURL.String); err != nil {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"error":      err.Error(),
			}).Warn("Failed to delete old child photo")
		}
	}

	if err := repo.Children.UpdatePhoto(ctx, childID, location); err != nil {
		return "", err
	}

	return location, nil
}

func (s *childDomainImpl) DeleteChild(ctx context.Context, parentID string, childID string) error {
	requestID := contextPkg.GetRequestID(ctx)

	ch, err := s.GetOwnedChild(ctx, parentID, childID)
	if err != nil {
		return err
	}

	repo, err := s.repo.NewClient(false)
	if err != nil {
		return err
	}

	if ch.PhotoURL.Valid && ch.PhotoURL.String != "" {
		if err := s.s3Client.DeleteFile(ch.PhotoURL.String); err != nil {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"error":      err.Error(),
			}).Warn("Failed to delete child photo")
		}
	}

	if err := repo.Children.DeleteChild(ctx, childID); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to delete child")
		return err
	}

	return nil
}

func (s *childDomainImpl) makeChildResponse(ch entity.Child) child.ChildResponse {
	now := time.Now()
	return child.ChildResponse{
		ID:               ch.ID,
		ParentID:         ch.ParentID,
		Name:             ch.Name,
		BirthDate:        ch.BirthDate.Format("2006-01-02"),
		Sex:              string(ch.Sex),
		AgeMonths:        ch.AgeInMonths(now),
		InScreeningRange: ch.InScreeningRange(now),
		JaundiceAtBirth:  ch.JaundiceAtBirth,
		FamilyASDHistory: ch.FamilyASDHistory,
		CreatedAt:        ch.CreatedAt.Format(time.RFC3339),
		UpdatedAt:        ch.UpdatedAt.Format(time.RFC3339),
	}
}
