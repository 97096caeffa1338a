package auth

import "LittleSteps/pkg/response"

var (
	ErrEmailAlreadyExists     = response.NewError(409, "email already registered")
	ErrUserNotFound           = response.NewError(404, "user not found")
	ErrInvalidEmailOrPassword = response.NewError(400, "invalid email or password")
	ErrUserNotVerified        = response.NewError(403, "account is not verified")
	ErrInvalidOTP             = response.NewError(401, "invalid otp provided")
	ErrOTPExpired             = response.NewError(401, "otp has expired")
	ErrInvalidFileType        = response.NewError(400, "invalid file type")
	ErrFileTooLarge           = response.NewError(400, "file too large")
	ErrFailedToUploadFile     = response.NewError(500, "failed to upload file")
	ErrGoogleExchangeFailed   = response.NewError(502, "failed to exchange google authorization code")
)
