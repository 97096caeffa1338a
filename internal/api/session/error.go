package session

import "LittleSteps/pkg/response"

var (
	ErrSessionNotFound      = response.NewError(404, "game session not found")
	ErrSessionNotOwned      = response.NewError(403, "game session does not belong to parent")
	ErrSessionNotActive     = response.NewError(409, "game session is not in progress")
	ErrSessionAlreadyClosed = response.NewError(409, "game session already completed or abandoned")
	ErrInvalidGameType      = response.NewError(400, "invalid game type")
	ErrEmptyFrameBatch      = response.NewError(400, "frame batch is empty")
	ErrNoProcessedBatches   = response.NewError(422, "session has no processed frame batches")
	ErrAnalyzerUnavailable  = response.NewError(502, "behavioural analyzer service unavailable")
	ErrInvalidVideoFile     = response.NewError(400, "invalid video file type")
	ErrCreateSession        = response.NewError(500, "failed to create game session")
	ErrUpdateSession        = response.NewError(500, "failed to update game session")
)
