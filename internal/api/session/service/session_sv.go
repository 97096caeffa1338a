package sessionService

import (
	"LittleSteps/internal/api/session"
	"LittleSteps/internal/entity"
	contextPkg "LittleSteps/pkg/context"
	"LittleSteps/pkg/mlservice"
	"database/sql"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
	"mime/multipart"
	"time"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// batchTTL keeps live batches in Redis long enough to survive a slow
// session but reaps them if the client never completes.
const batchTTL = time.Hour

func (s *sessionDomainImpl) StartSession(ctx context.Context, parentID string, req session.StartSessionRequest) (session.SessionResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	if !entity.IsValidGameType(req.GameType) {
		return session.SessionResponse{}, session.ErrInvalidGameType
	}

	if _, err := s.childService.Child().GetOwnedChild(ctx, parentID, req.ChildID); err != nil {
		return session.SessionResponse{}, err
	}

	repo, err := s.repo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return session.SessionResponse{}, err
	}

	ULID, err := s.utils.NewULIDFromTimestamp(time.Now())
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to generate ULID")
		return session.SessionResponse{}, err
	}

	gs := entity.GameSession{
		ID:        ULID,
		ChildID:   req.ChildID,
		GameType:  entity.GameType(req.GameType),
		Status:    entity.SessionInProgress,
		StartedAt: time.Now(),
	}

	if err := repo.Sessions.CreateSession(ctx, gs); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create game session")
		return session.SessionResponse{}, session.ErrCreateSession
	}

	return s.makeSessionResponse(gs), nil
}

// GetOwnedSession loads the session and enforces child ownership through
// the child domain.
func (s *sessionDomainImpl) GetOwnedSession(ctx context.Context, parentID string, sessionID string) (entity.GameSession, error) {
	repo, err := s.repo.NewClient(false)
	if err != nil {
		return entity.GameSession{}, err
	}

	gs, err := repo.Sessions.GetByID(ctx, sessionID)
	if err != nil {
		return entity.GameSession{}, err
	}

	if _, err := s.childService.Child().GetOwnedChild(ctx, parentID, gs.ChildID); err != nil {
		return entity.GameSession{}, session.ErrSessionNotOwned
	}

	return gs, nil
}

func (s *sessionDomainImpl) IngestFrameBatch(ctx context.Context, parentID string, sessionID string, req session.FrameBatchRequest) (session.FrameBatchResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	gs, err := s.GetOwnedSession(ctx, parentID, sessionID)
	if err != nil {
		return session.FrameBatchResponse{}, err
	}

	if err := gs.CanIngestFrames(); err != nil {
		return session.FrameBatchResponse{}, err
	}

	if len(req.Frames) == 0 {
		return session.FrameBatchResponse{}, session.ErrEmptyFrameBatch
	}

	frames := make([]string, 0, len(req.Frames))
	for _, f := range req.Frames {
		frames = append(frames, s.utils.StripDataURLPrefix(f))
	}

	metric := string(gs.GameType.Metric())
	batchDuration := time.Since(gs.StartedAt).Seconds()

	result, err := s.mlClient.Analyze(ctx, metric, frames, batchDuration)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"session_id": sessionID,
			"metric":     metric,
			"error":      err.Error(),
		}).Error("Analyzer request failed")
		return session.FrameBatchResponse{}, session.ErrAnalyzerUnavailable
	}

	payload, err := json.Marshal(result)
	if err != nil {
		return session.FrameBatchResponse{}, err
	}

	if err := s.redisServer.AppendSessionBatch(ctx, sessionID, metric, payload, batchTTL); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"session_id": sessionID,
			"error":      err.Error(),
		}).Error("Failed to store batch result")
		return session.FrameBatchResponse{}, err
	}

	batches, err := s.redisServer.GetSessionBatches(ctx, sessionID, metric)
	if err != nil {
		return session.FrameBatchResponse{}, err
	}

	eventDetected := result.WaveCount > 0 || result.PointCount > 0 ||
		result.SmileFrequency > 0 || result.SuccessfulImitations > 0 ||
		result.EyeContactRatio > 0.5

	return session.FrameBatchResponse{
		SessionID:      sessionID,
		Status:         string(gs.Status),
		BatchesSoFar:   len(batches),
		EventDetected:  eventDetected,
		Interpretation: result.Interpretation,
	}, nil
}

func (s *sessionDomainImpl) GetLiveResult(ctx context.Context, parentID string, sessionID string) (session.MetricResultResponse, error) {
	gs, err := s.GetOwnedSession(ctx, parentID, sessionID)
	if err != nil {
		return session.MetricResultResponse{}, err
	}

	metric := gs.GameType.Metric()

	batches, err := s.loadBatches(ctx, sessionID, string(metric))
	if err != nil {
		return session.MetricResultResponse{}, err
	}

	if len(batches) == 0 {
		return session.MetricResultResponse{}, session.ErrNoProcessedBatches
	}

	agg := AggregateBatches(metric, batches)

	return session.MetricResultResponse{
		Metric:         string(metric),
		Value:          MetricValue(metric, agg),
		Interpretation: InterpretMetric(metric, agg),
		Confidence:     agg.Confidence,
	}, nil
}

func (s *sessionDomainImpl) CompleteSession(ctx context.Context, parentID string, sessionID string) (session.SessionResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	gs, err := s.GetOwnedSession(ctx, parentID, sessionID)
	if err != nil {
		return session.SessionResponse{}, err
	}

	if gs.Status != entity.SessionInProgress {
		return session.SessionResponse{}, session.ErrSessionAlreadyClosed
	}

	metric := gs.GameType.Metric()

	batches, err := s.loadBatches(ctx, sessionID, string(metric))
	if err != nil {
		return session.SessionResponse{}, err
	}

	if len(batches) == 0 {
		return session.SessionResponse{}, session.ErrNoProcessedBatches
	}

	repo, err := s.repo.NewClient(false)
	if err != nil {
		return session.SessionResponse{}, err
	}

	agg := AggregateBatches(metric, batches)

	now := time.Now()
	gs.EyeContactRatio = agg.EyeContactRatio
	gs.AlignmentScore = agg.AlignmentScore
	gs.SmileRatio = agg.SmileRatio
	gs.SmileFrequency = agg.SmileFrequency
	gs.GestureCount = agg.GestureCount
	gs.WaveCount = agg.WaveCount
	gs.PointCount = agg.PointCount
	gs.RepetitiveRatio = agg.RepetitiveRatio
	gs.OscillationCount = agg.OscillationCount
	gs.ImitationScore = agg.ImitationScore
	gs.SuccessfulImitations = agg.SuccessfulImitations
	gs.TotalAttempts = agg.TotalAttempts
	gs.AverageDelayMs = agg.AverageDelayMs
	gs.Confidence = agg.Confidence
	gs.FrameCount = agg.FrameCount
	gs.Duration = now.Sub(gs.StartedAt).Seconds()
	gs.Status = entity.SessionCompleted
	gs.Interpretation = sql.NullString{String: InterpretMetric(metric, gs), Valid: true}
	gs.CompletedAt = sql.NullTime{Time: now, Valid: true}

	if err := repo.Sessions.UpdateResults(ctx, gs); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"session_id": sessionID,
			"error":      err.Error(),
		}).Error("Failed to persist session results")
		return session.SessionResponse{}, session.ErrUpdateSession
	}

	if err := s.redisServer.ClearSession(ctx, sessionID, string(metric)); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"session_id": sessionID,
			"error":      err.Error(),
		}).Warn("Failed to clear session batches")
	}

	return s.makeSessionResponse(gs), nil
}

func (s *sessionDomainImpl) AbandonSession(ctx context.Context, parentID string, sessionID string) error {
	requestID := contextPkg.GetRequestID(ctx)

	gs, err := s.GetOwnedSession(ctx, parentID, sessionID)
	if err != nil {
		return err
	}

	if gs.Status != entity.SessionInProgress {
		return session.ErrSessionAlreadyClosed
	}

	repo, err := s.repo.NewClient(false)
	if err != nil {
		return err
	}

	if err := repo.Sessions.UpdateStatus(ctx, sessionID, entity.SessionAbandoned); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"session_id": sessionID,
			"error":      err.Error(),
		}).Error("Failed to abandon session")
		return session.ErrUpdateSession
	}

	if err := s.redisServer.ClearSession(ctx, sessionID, string(gs.GameType.Metric())); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"session_id": sessionID,
			"error":      err.Error(),
		}).Warn("Failed to clear session batches")
	}

	return nil
}

func (s *sessionDomainImpl) UploadSessionVideo(ctx context.Context, parentID string, sessionID string, videoFile *multipart.FileHeader) (string, error) {
	requestID := contextPkg.GetRequestID(ctx)

	if _, err := s.GetOwnedSession(ctx, parentID, sessionID); err != nil {
		return "", err
	}

	if err := s.utils.ValidateVideoFile(videoFile); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Warn("Invalid session video upload")
		return "", session.ErrInvalidVideoFile
	}

	repo, err := s.repo.NewClient(false)
	if err != nil {
		return "", err
	}

	location, err := s.s3Client.UploadFile(videoFile, "session-videos")
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to upload session video")
		return "", err
	}

	if err := repo.Sessions.UpdateVideoURL(ctx, sessionID, location); err != nil {
		return "", err
	}

	return location, nil
}

func (s *sessionDomainImpl) GetSession(ctx context.Context, parentID string, sessionID string) (session.SessionResponse, error) {
	gs, err := s.GetOwnedSession(ctx, parentID, sessionID)
	if err != nil {
		return session.SessionResponse{}, err
	}

	return s.makeSessionResponse(gs), nil
}

func (s *sessionDomainImpl) ListSessions(ctx context.Context, parentID string, childID string) ([]session.SessionResponse, error) {
	if _, err := s.childService.Child().GetOwnedChild(ctx, parentID, childID); err != nil {
		return nil, err
	}

	repo, err := s.repo.NewClient(false)
	if err != nil {
		return nil, err
	}

	sessions, err := repo.Sessions.GetByChildID(ctx, childID)
	if err != nil {
		return nil, err
	}

	res := make([]session.SessionResponse, 0, len(sessions))
	for _, gs := range sessions {
		res = append(res, s.makeSessionResponse(gs))
	}

	return res, nil
}

func (s *sessionDomainImpl) loadBatches(ctx context.Context, sessionID string, metric string) ([]mlservice.BatchResult, error) {
	raw, err := s.redisServer.GetSessionBatches(ctx, sessionID, metric)
	if err != nil {
		return nil, err
	}

	batches := make([]mlservice.BatchResult, 0, len(raw))
	for _, payload := range raw {
		var b mlservice.BatchResult
		if err := json.Unmarshal(payload, &b); err != nil {
			s.log.WithFields(logrus.Fields{
				"session_id": sessionID,
				"error":      err.Error(),
			}).Warn("Skipping undecodable batch payload")
			continue
		}
		batches = append(batches, b)
	}

	return batches, nil
}

func (s *sessionDomainImpl) makeSessionResponse(gs entity.GameSession) session.SessionResponse {
	res := session.SessionResponse{
		ID:                   gs.ID,
		ChildID:              gs.ChildID,
		GameType:             string(gs.GameType),
		Metric:               string(gs.GameType.Metric()),
		Status:               string(gs.Status),
		FrameCount:           gs.FrameCount,
		Duration:             gs.Duration,
		Confidence:           gs.Confidence,
		Interpretation:       gs.Interpretation.String,
		EyeContactRatio:      gs.EyeContactRatio,
		AlignmentScore:       gs.AlignmentScore,
		SmileRatio:           gs.SmileRatio,
		SmileFrequency:       gs.SmileFrequency,
		GestureCount:         gs.GestureCount,
		WaveCount:            gs.WaveCount,
		PointCount:           gs.PointCount,
		RepetitiveRatio:      gs.RepetitiveRatio,
		OscillationCount:     gs.OscillationCount,
		ImitationScore:       gs.ImitationScore,
		SuccessfulImitations: gs.SuccessfulImitations,
		TotalAttempts:        gs.TotalAttempts,
		AverageDelayMs:       gs.AverageDelayMs,
		VideoURL:             gs.VideoURL.String,
		StartedAt:            gs.StartedAt.Format(time.RFC3339),
	}

	if gs.CompletedAt.Valid {
		res.CompletedAt = gs.CompletedAt.Time.Format(time.RFC3339)
	}

	return res
}
