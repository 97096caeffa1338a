package handlerUtil

import (
	"LittleSteps/internal/api/analysis"
	"LittleSteps/internal/api/auth"
	"LittleSteps/internal/api/child"
	"LittleSteps/internal/api/screening"
	"LittleSteps/internal/api/session"
	"LittleSteps/pkg/log"
	"LittleSteps/pkg/response"
	"errors"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"
	"github.com/sirupsen/logrus"
)

type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`
	Details string `json:"details,omitempty"`
}

type ErrorHandler struct {
	logger *logrus.Logger
}

func New(logger *logrus.Logger) *ErrorHandler {
	return &ErrorHandler{
		logger: logger,
	}
}

func (h *ErrorHandler) Handle(c *fiber.Ctx, requestID string, err error, path string, operation string) error {
	// Auth domain errors
	if errors.Is(err, auth.ErrEmailAlreadyExists) {
		h.logger.WithFields(log.Fields{
			"request_id": requestID,
			"error":      err.Error(),
			"path":       path,
			"operation":  operation,
		}).Warn("Email already registered")
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"message": "Email already registered",
			"code":    "EMAIL_ALREADY_EXISTS",
		})
	}

	if errors.Is(err, auth.ErrUserNotFound) {
		h.logger.WithFields(log.Fields{
			"request_id": requestID,
			"error":      err.Error(),
			"path":       path,
			"operation":  operation,
		}).Warn("User not found")
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": "User not found",
			"code":    "USER_NOT_FOUND",
		})
	}

	if errors.Is(err, auth.ErrInvalidEmailOrPassword) {
		h.logger.WithFields(log.Fields{
			"request_id": requestID,
			"error":      err.Error(),
			"path":       path,
			"operation":  operation,
		}).Warn("Invalid email or password")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid email or password",
			"code":    "INVALID_CREDENTIALS",
		})
	}

	if errors.Is(err, auth.ErrUserNotVerified) {
		h.logger.WithFields(log.Fields{
			"request_id": requestID,
			"error":      err.Error(),
			"path":       path,
			"operation":  operation,
		}).Warn("Account not verified")
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"message": "Account is not verified",
			"code":    "USER_NOT_VERIFIED",
		})
	}

	if errors.Is(err, auth.ErrOTPExpired) {
		h.logger.WithFields(log.Fields{
			"request_id": requestID,
			"error":      err.Error(),
			"path":       path,
			"operation":  operation,
		}).Warn("OTP has expired")
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"message": "OTP has expired",
			"code":    "EXPIRED_OTP",
		})
	}

	if errors.Is(err, auth.ErrInvalidOTP) {
		h.logger.WithFields(log.Fields{
			"request_id": requestID,
			"error":      err.Error(),
			"path":       path,
			"operation":  operation,
		}).Warn("Invalid OTP provided")
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"message": "Invalid OTP provided",
			"code":    "INVALID_OTP",
		})
	}

	if errors.Is(err, auth.ErrInvalidFileType) {
		h.logger.WithFields(log.Fields{
			"request_id": requestID,
			"error":      err.Error(),
			"path":       path,
			"operation":  operation,
		}).Warn("Invalid file type")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid file type. Only images are allowed.",
		})
	}

	if errors.Is(err, auth.ErrFileTooLarge) {
		h.logger.WithFields(log.Fields{
			"request_id": requestID,
			"error":      err.Error(),
			"path":       path,
			"operation":  operation,
		}).Warn("File too large")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "File too large. Maximum size is 5MB.",
		})
	}

	if errors.Is(err, auth.ErrFailedToUploadFile) {
		h.logger.WithFields(log.Fields{
			"request_id": requestID,
			"error":      err.Error(),
			"path":       path,
			"operation":  operation,
		}).Warn("Failed to upload file")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to upload file",
		})
	}

	if errors.Is(err, auth.ErrGoogleExchangeFailed) {
		h.logger.WithFields(log.Fields{
			"request_id": requestID,
			"error":      err.Error(),
			"path":       path,
			"operation":  operation,
		}).Warn("Google code exchange failed")
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"error": "Failed to exchange Google authorization code",
		})
	}

	// Child domain errors
	if errors.Is(err, child.ErrChildNotFound) {
		h.logger.WithFields(log.Fields{
			"request_id": requestID,
			"error":      err.Error(),
			"path":       path,
			"operation":  operation,
		}).Warn("Child not found")
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Child not found",
		})
	}

	if errors.Is(err, child.ErrChildNotOwned) {
		h.logger.WithFields(log.Fields{
			"request_id": requestID,
			"error":      err.Error(),
			"path":       path,
			"operation":  operation,
		}).Warn("Child does not belong to parent")
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"error": "Child does not belong to parent",
		})
	}

	if errors.Is(err, child.ErrInvalidSex) {
		h.logger.WithFields(log.Fields{
			"request_id": requestID,
			"error":      err.Error(),
			"path":       path,
			"operation":  operation,
		}).Warn("Invalid sex value")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Sex must be male or female",
		})
	}

	if errors.Is(err, child.ErrBirthDateInFuture) {
		h.logger.WithFields(log.Fields{
			"request_id": requestID,
			"error":      err.Error(),
			"path":       path,
			"operation":  operation,
		}).Warn("Birth date in the future")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Birth date cannot be in the future",
		})
	}

	// Session domain errors
	if errors.Is(err, session.ErrSessionNotFound) {
		h.logger.WithFields(log.Fields{
			"request_id": requestID,
			"error":      err.Error(),
			"path":       path,
			"operation":  operation,
		}).Warn("Game session not found")
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Game session not found",
		})
	}

	if errors.Is(err, session.ErrSessionNotOwned) {
		h.logger.WithFields(log.Fields{
			"request_id": requestID,
			"error":      err.Error(),
			"path":       path,
			"operation":  operation,
		}).Warn("Game session does not belong to parent")
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"error": "Game session does not belong to parent",
		})
	}

	if errors.Is(err, session.ErrSessionNotActive) || errors.Is(err, session.ErrSessionAlreadyClosed) {
		h.logger.WithFields(log.Fields{
			"request_id": requestID,
			"error":      err.Error(),
			"path":       path,
			"operation":  operation,
		}).Warn("Game session not in progress")
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	if errors.Is(err, session.ErrInvalidGameType) {
		h.logger.WithFields(log.Fields{
			"request_id": requestID,
			"error":      err.Error(),
			"path":       path,
			"operation":  operation,
		}).Warn("Invalid game type")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid game type",
		})
	}

	if errors.Is(err, session.ErrEmptyFrameBatch) {
		h.logger.WithFields(log.Fields{
			"request_id": requestID,
			"error":      err.Error(),
			"path":       path,
			"operation":  operation,
		}).Warn("Frame batch is empty")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Frame batch is empty",
		})
	}

	if errors.Is(err, session.ErrNoProcessedBatches) {
		h.logger.WithFields(log.Fields{
			"request_id": requestID,
			"error":      err.Error(),
			"path":       path,
			"operation":  operation,
		}).Warn("No processed frame batches for session")
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"error": "Session has no processed frame batches",
		})
	}

	if errors.Is(err, session.ErrAnalyzerUnavailable) {
		h.logger.WithFields(log.Fields{
			"request_id": requestID,
			"error":      err.Error(),
			"path":       path,
			"operation":  operation,
		}).Error("Analyzer service unavailable")
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"error": "Behavioural analyzer service unavailable",
		})
	}

	if errors.Is(err, session.ErrInvalidVideoFile) {
		h.logger.WithFields(log.Fields{
			"request_id": requestID,
			"error":      err.Error(),
			"path":       path,
			"operation":  operation,
		}).Warn("Invalid video file")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid video file type",
		})
	}

	// Screening domain errors
	if errors.Is(err, screening.ErrScreeningNotFound) {
		h.logger.WithFields(log.Fields{
			"request_id": requestID,
			"error":      err.Error(),
			"path":       path,
			"operation":  operation,
		}).Warn("Screening not found")
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Screening not found",
		})
	}

	if errors.Is(err, screening.ErrScreeningNotOwned) {
		h.logger.WithFields(log.Fields{
			"request_id": requestID,
			"error":      err.Error(),
			"path":       path,
			"operation":  operation,
		}).Warn("Screening does not belong to parent")
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"error": "Screening does not belong to parent",
		})
	}

	if errors.Is(err, screening.ErrScreeningAlreadyDone) || errors.Is(err, screening.ErrQuestionnaireNotAllowed) {
		h.logger.WithFields(log.Fields{
			"request_id": requestID,
			"error":      err.Error(),
			"path":       path,
			"operation":  operation,
		}).Warn("Screening already finalized")
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	if errors.Is(err, screening.ErrScreeningIncomplete) {
		h.logger.WithFields(log.Fields{
			"request_id": requestID,
			"error":      err.Error(),
			"path":       path,
			"operation":  operation,
		}).Warn("Screening inputs incomplete")
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"error": "Screening inputs incomplete",
		})
	}

	if errors.Is(err, screening.ErrInvalidQuestionnaire) {
		h.logger.WithFields(log.Fields{
			"request_id": requestID,
			"error":      err.Error(),
			"path":       path,
			"operation":  operation,
		}).Warn("Invalid questionnaire")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Questionnaire must contain exactly 20 responses",
		})
	}

	// Analysis domain errors
	if errors.Is(err, analysis.ErrInvalidImage) {
		h.logger.WithFields(log.Fields{
			"request_id": requestID,
			"error":      err.Error(),
			"path":       path,
			"operation":  operation,
		}).Warn("Invalid image data")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid image data",
		})
	}

	if errors.Is(err, analysis.ErrEmotionUnavailable) {
		h.logger.WithFields(log.Fields{
			"request_id": requestID,
			"error":      err.Error(),
			"path":       path,
			"operation":  operation,
		}).Error("Emotion inference unavailable")
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"error": "Emotion inference unavailable",
		})
	}

	if errors.Is(err, analysis.ErrNoFaceInFrame) {
		h.logger.WithFields(log.Fields{
			"request_id": requestID,
			"error":      err.Error(),
			"path":       path,
			"operation":  operation,
		}).Warn("No face detected in frame")
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"error": "No face detected in frame",
		})
	}

	if errors.Is(err, analysis.ErrInternalServerError) {
		h.logger.WithFields(log.Fields{
			"request_id": requestID,
			"error":      err.Error(),
			"path":       path,
			"operation":  operation,
		}).Error("Internal server error")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Internal server error",
		})
	}

	// Coded sentinels without a dedicated branch above still carry their
	// own HTTP status.
	var respErr *response.Error
	if errors.As(err, &respErr) {
		h.logger.WithFields(log.Fields{
			"request_id": requestID,
			"error":      err.Error(),
			"code":       respErr.Code,
			"path":       path,
			"operation":  operation,
		}).Warn("Operation failed with error response")
		return c.Status(respErr.Code).JSON(fiber.Map{"error": err.Error()})
	}

	h.logger.WithFields(log.Fields{
		"request_id": requestID,
		"error":      err.Error(),
		"path":       path,
		"operation":  operation,
	}).Error("Unexpected error")

	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"error": "An unexpected error occurred",
	})
}

func (h *ErrorHandler) HandleValidationError(c *fiber.Ctx, requestID string, err error, path string) error {
	h.logger.WithFields(log.Fields{
		"request_id": requestID,
		"error":      err.Error(),
		"path":       path,
	}).Warn("Validation failed")

	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"error": "Validation failed: " + err.Error(),
		"code":  "VALIDATION_ERROR",
	})
}

func (h *ErrorHandler) HandleRequestTimeout(c *fiber.Ctx) error {
	return c.Status(fiber.StatusRequestTimeout).JSON(utils.StatusMessage(fiber.StatusRequestTimeout))
}

func (h *ErrorHandler) HandleUnauthorized(c *fiber.Ctx, requestID string, message string) error {
	h.logger.WithFields(log.Fields{
		"request_id": requestID,
		"path":       c.Path(),
		"message":    message,
	}).Warn("Unauthorized access")

	return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
		"error": message,
		"code":  "UNAUTHORIZED",
	})
}

func (h *ErrorHandler) HandleSuccess(c *fiber.Ctx, statusCode int, data interface{}) error {
	if data == nil {
		return c.SendStatus(statusCode)
	}
	return c.Status(statusCode).JSON(data)
}
