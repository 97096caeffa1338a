package authService

import (
	"LittleSteps/internal/api/auth"
	"LittleSteps/internal/entity"
	contextPkg "LittleSteps/pkg/context"
	"database/sql"
	"errors"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
	"mime/multipart"
	"time"
)

func (s *userDomainImpl) RegisterUser(ctx context.Context, req auth.RegisterRequest) error {
	requestID := contextPkg.GetRequestID(ctx)
	repo, err := s.repo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return err
	}

	hashedPassword, err := s.bcryptUtils.HashPassword(req.Password)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to hash password")
		return err
	}

	ULID, err := s.utils.NewULIDFromTimestamp(time.Now())
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to generate ULID")
		return err
	}

	user := entity.User{
		ID:           ULID,
		Email:        req.Email,
		Name:         req.Name,
		Password:     sql.NullString{String: hashedPassword, Valid: true},
		PhoneNumber:  sql.NullString{String: req.PhoneNumber, Valid: true},
		AuthProvider: entity.AuthProviderLocal,
	}

	if err := repo.Users.CreateUser(ctx, user); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create user")
		return err
	}

	return nil
}

func (s *userDomainImpl) GetProfile(ctx context.Context, userID string) (auth.ProfileResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)
	repo, err := s.repo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return auth.ProfileResponse{}, err
	}

	user, err := repo.Users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, auth.ErrUserNotFound) {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"error":      err.Error(),
			}).Warn("User not found")
			return auth.ProfileResponse{}, auth.ErrUserNotFound
		}
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to get user by ID")
		return auth.ProfileResponse{}, err
	}

	photoURL := ""
	if user.ProfilePhotoURL.Valid && user.ProfilePhotoURL.String != "" {
		presigned, err := s.s3Client.PresignUrl(user.ProfilePhotoURL.String)
		if err != nil {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"error":      err.Error(),
			}).Warn("Failed to presign profile photo URL")
		} else {
			photoURL = presigned
		}
	}

	return auth.ProfileResponse{
		ID:              user.ID,
		Email:           user.Email,
		Name:            user.Name,
		PhoneNumber:     user.PhoneNumber.String,
		ProfilePhotoURL: photoURL,
		IsVerified:      user.IsVerified,
		CreatedAt:       makeProfileTimestamp(user.CreatedAt),
	}, nil
}

func (s *userDomainImpl) UpdateProfile(ctx context.Context, user entity.UserLoginData, req auth.UpdateProfileRequest) error {
	requestID := contextPkg.GetRequestID(ctx)
	repo, err := s.repo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return err
	}

	userData, err := repo.Users.GetByID(ctx, user.ID)
	if err != nil {
		if errors.Is(err, auth.ErrUserNotFound) {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"error":      err.Error(),
			}).Warn("User not found")
			return auth.ErrUserNotFound
		}
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to get user by ID")
		return err
	}

	if req.Name != "" {
		userData.Name = req.Name
	}
	if req.PhoneNumber != "" {
		userData.PhoneNumber = sql.NullString{String: req.PhoneNumber, Valid: true}
	}

	if err := repo.Users.UpdateProfile(ctx, userData); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to update profile")
		return err
	}

	return nil
}

func (s *userDomainImpl) UpdateProfilePhoto(ctx context.Context, userID string, photoFile *multipart.FileHeader) (string, error) {
	requestID := contextPkg.GetRequestID(ctx)
	repo, err := s.repo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return "", err
	}

	if err := s.utils.ValidateImageFile(photoFile); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Warn("Invalid profile photo upload")
		return "", auth.ErrInvalidFileType
	}

	user, err := repo.Users.GetByID(ctx, userID)
	if err != nil {
		return "", err
	}

	location, err := s.s3Client.UploadFile(photoFile, "profiles")
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to upload profile photo")
		return "", auth.ErrFailedToUploadFile
	}

	if user.ProfilePhotoURL.Valid && user.ProfilePhotoURL.String != "" {
		if err := s.s3Client.DeleteFile(user.ProfilePhotoURL.String); err != nil {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"error":      err.Error(),
			}).Warn("Failed to delete old profile photo")
		}
	}

	if err := repo.Users.UpdateProfilePhoto(ctx, userID, location); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to save profile photo URL")
		return "", err
	}

	return location, nil
}

func (s *userDomainImpl) DeleteUser(ctx context.Context, id string) error {
	requestID := contextPkg.GetRequestID(ctx)
	repo, err := s.repo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return err
	}

	if err := repo.Users.DeleteUser(ctx, id); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to delete user")
		return err
	}

	return nil
}
