package authService

import (
	"LittleSteps/internal/api/auth"
	"LittleSteps/internal/entity"
	contextPkg "LittleSteps/pkg/context"
	jwtPkg "LittleSteps/pkg/jwt"
	"database/sql"
	"errors"
	"fmt"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
	"math/rand"
	"net/url"
	"time"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const accessTokenTTL = 24 * time.Hour

func (s *authDomainImpl) Login(c context.Context, req auth.LoginRequest) (auth.LoginResponse, error) {
	requestID := contextPkg.GetRequestID(c)
	repo, err := s.repo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return auth.LoginResponse{}, err
	}

	user, err := repo.Users.GetByEmail(c, req.Email)
	if err != nil {
		if errors.Is(err, auth.ErrUserNotFound) {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"error":      err.Error(),
			}).Warn("Failed to get user by email")
			return auth.LoginResponse{}, auth.ErrInvalidEmailOrPassword
		}
		return auth.LoginResponse{}, err
	}

	if !user.Password.Valid {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
		}).Warn("Login attempt against passwordless account")
		return auth.LoginResponse{}, auth.ErrInvalidEmailOrPassword
	}

	if err := s.bcryptUtils.ComparePassword(user.Password.String, req.Password); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
		}).Warn("Password mismatch")
		return auth.LoginResponse{}, auth.ErrInvalidEmailOrPassword
	}

	if !user.IsVerified {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
		}).Warn("Unverified account login attempt")
		return auth.LoginResponse{}, auth.ErrUserNotVerified
	}

	accessToken, expiresAt, err := jwtPkg.Sign(MakeUserData(user), accessTokenTTL)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to sign access token")
		return auth.LoginResponse{}, err
	}

	return auth.LoginResponse{
		AccessToken: accessToken,
		ExpiresAt:   expiresAt,
	}, nil
}

func (s *authDomainImpl) LoginGoogleURL() (*url.URL, error) {
	authURL := s.googleProvider.GetConfig().AuthCodeURL("state")
	return url.Parse(authURL)
}

func (s *authDomainImpl) LoginGoogle(c context.Context, req auth.GoogleLoginRequest) (auth.LoginResponse, error) {
	requestID := contextPkg.GetRequestID(c)
	repo, err := s.repo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return auth.LoginResponse{}, err
	}

	token, err := s.googleProvider.GetConfig().Exchange(c, req.Code)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Warn("Failed to exchange google code")
		return auth.LoginResponse{}, auth.ErrGoogleExchangeFailed
	}

	userInfo, err := fetchGoogleUserInfo(token.AccessToken)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Warn("Failed to fetch google user info")
		return auth.LoginResponse{}, auth.ErrGoogleExchangeFailed
	}

	user, err := repo.Users.GetByEmail(c, userInfo.Email)
	if errors.Is(err, auth.ErrUserNotFound) {
		ULID, err := s.utils.NewULIDFromTimestamp(time.Now())
		if err != nil {
			return auth.LoginResponse{}, err
		}

		user = entity.User{
			ID:           ULID,
			Email:        userInfo.Email,
			Name:         userInfo.Name,
			Password:     sql.NullString{},
			AuthProvider: entity.AuthProviderGoogle,
			IsVerified:   true,
		}

		if err := repo.Users.CreateUser(c, user); err != nil {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"error":      err.Error(),
			}).Error("Failed to create google user")
			return auth.LoginResponse{}, err
		}
	} else if err != nil {
		return auth.LoginResponse{}, err
	}

	accessToken, expiresAt, err := jwtPkg.Sign(MakeUserData(user), accessTokenTTL)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to sign access token")
		return auth.LoginResponse{}, err
	}

	return auth.LoginResponse{
		AccessToken: accessToken,
		ExpiresAt:   expiresAt,
	}, nil
}

func (s *authDomainImpl) SendEmailOTP(c context.Context, email string) error {
	requestID := contextPkg.GetRequestID(c)
	repo, err := s.repo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return err
	}

	if _, err := repo.Users.GetByEmail(c, email); err != nil {
		return err
	}

	verificationCode := fmt.Sprintf("%06d", 100000+rand.Intn(900000))

	if err := s.redisServer.SetOTP(c, email, verificationCode, 5*time.Minute); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to set email OTP in Redis")
		return err
	}

	if err := s.smtpMailer.CreateSmtp(email, verificationCode); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to send email OTP")
		return err
	}

	s.log.WithFields(logrus.Fields{
		"request_id": requestID,
		"email":      email,
	}).Info("Email OTP sent successfully")

	return nil
}

func (s *authDomainImpl) VerifyEmailOTP(c context.Context, email string, code string) error {
	requestID := contextPkg.GetRequestID(c)

	storedOTP, err := s.redisServer.GetOTP(c, email)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Warn("Failed to get OTP from Redis")
		return auth.ErrOTPExpired
	}

	if storedOTP != code {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
		}).Warn("Invalid email OTP")
		return auth.ErrInvalidOTP
	}

	repo, err := s.repo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return err
	}

	if err := repo.Users.UpdateVerification(c, email, true); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to mark user as verified")
		return err
	}

	if err := s.redisServer.DeleteOTP(c, email); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Warn("Failed to delete consumed OTP")
	}

	return nil
}
