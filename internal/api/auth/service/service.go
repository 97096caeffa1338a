package authService

import (
	"LittleSteps/internal/api/auth"
	authRepository "LittleSteps/internal/api/auth/repository"
	"LittleSteps/internal/entity"
	"LittleSteps/pkg/bcrypt"
	"LittleSteps/pkg/google"
	"LittleSteps/pkg/redis"
	"LittleSteps/pkg/s3"
	"LittleSteps/pkg/smtp"
	"LittleSteps/pkg/utils"
	"context"
	"github.com/sirupsen/logrus"
	"mime/multipart"
	"net/url"
)

type AuthService interface {
	User() UserDomain
	Auth() AuthDomain
	GetRepository() authRepository.Repository
}

type UserDomain interface {
	RegisterUser(c context.Context, req auth.RegisterRequest) error
	GetProfile(c context.Context, userID string) (auth.ProfileResponse, error)
	UpdateProfile(c context.Context, user entity.UserLoginData, req auth.UpdateProfileRequest) error
	UpdateProfilePhoto(c context.Context, userID string, photoFile *multipart.FileHeader) (string, error)
	DeleteUser(c context.Context, id string) error
}

type AuthDomain interface {
	Login(c context.Context, req auth.LoginRequest) (auth.LoginResponse, error)
	LoginGoogleURL() (*url.URL, error)
	LoginGoogle(c context.Context, req auth.GoogleLoginRequest) (auth.LoginResponse, error)
	SendEmailOTP(c context.Context, email string) error
	VerifyEmailOTP(c context.Context, email string, code string) error
}

type authService struct {
	log            *logrus.Logger
	authRepository authRepository.Repository
	googleProvider google.ItfGoogle
	smtpMailer     smtp.ItfSmtp
	redisServer    redis.IRedis
	s3Client       s3.ItfS3
	bcryptUtils    bcrypt.IBcrypt
	utils          utils.IUtils

	userDomain UserDomain
	authDomain AuthDomain
}

func (a *authService) User() UserDomain {
	return a.userDomain
}

func (a *authService) Auth() AuthDomain {
	return a.authDomain
}

func (a *authService) GetRepository() authRepository.Repository {
	return a.authRepository
}

type userDomainImpl struct {
	log         *logrus.Logger
	repo        authRepository.Repository
	s3Client    s3.ItfS3
	bcryptUtils bcrypt.IBcrypt
	utils       utils.IUtils
}

type authDomainImpl struct {
	log            *logrus.Logger
	repo           authRepository.Repository
	googleProvider google.ItfGoogle
	redisServer    redis.IRedis
	smtpMailer     smtp.ItfSmtp
	bcryptUtils    bcrypt.IBcrypt
	utils          utils.IUtils
}

func New(log *logrus.Logger,
	authRepo authRepository.Repository,
	googleProvider google.ItfGoogle,
	smtpMailer smtp.ItfSmtp,
	redisServer redis.IRedis,
	s3Client s3.ItfS3,
	bcryptUtils bcrypt.IBcrypt,
	utils utils.IUtils,
) AuthService {
	return &authService{
		log:            log,
		authRepository: authRepo,
		googleProvider: googleProvider,
		smtpMailer:     smtpMailer,
		redisServer:    redisServer,
		s3Client:       s3Client,
		bcryptUtils:    bcryptUtils,
		utils:          utils,

		userDomain: &userDomainImpl{log: log, repo: authRepo, s3Client: s3Client, bcryptUtils: bcryptUtils, utils: utils},
		authDomain: &authDomainImpl{log: log, repo: authRepo, googleProvider: googleProvider, redisServer: redisServer, smtpMailer: smtpMailer, bcryptUtils: bcryptUtils, utils: utils},
	}
}
