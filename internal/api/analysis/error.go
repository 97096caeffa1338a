package analysis

import "LittleSteps/pkg/response"

var (
	ErrInvalidImage          = response.NewError(400, "invalid image data")
	ErrEmotionUnavailable    = response.NewError(502, "emotion inference unavailable")
	ErrInternalServerError   = response.NewError(500, "internal server error")
	ErrNoFaceInFrame         = response.NewError(422, "no face detected in frame")
	ErrUnsupportedFrameInput = response.NewError(400, "unsupported frame input")
)
