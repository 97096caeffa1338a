package sessionRepository

import (
	"LittleSteps/internal/api/session"
	"LittleSteps/internal/entity"
	contextPkg "LittleSteps/pkg/context"
	"context"
	"database/sql"
	"errors"
	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
	"time"
)

type GameSessionDB struct {
	ID                   sql.NullString `db:"id"`
	ChildID              sql.NullString `db:"child_id"`
	GameType             sql.NullString `db:"game_type"`
	Status               sql.NullString `db:"status"`
	FrameCount           int            `db:"frame_count"`
	Duration             float64        `db:"duration_seconds"`
	EyeContactRatio      float64        `db:"eye_contact_ratio"`
	AlignmentScore       float64        `db:"alignment_score"`
	SmileRatio           float64        `db:"smile_ratio"`
	SmileFrequency       int            `db:"smile_frequency"`
	GestureCount         int            `db:"gesture_count"`
	WaveCount            int            `db:"wave_count"`
	PointCount           int            `db:"point_count"`
	RepetitiveRatio      float64        `db:"repetitive_ratio"`
	OscillationCount     int            `db:"oscillation_count"`
	ImitationScore       float64        `db:"imitation_score"`
	SuccessfulImitations int            `db:"successful_imitations"`
	TotalAttempts        int            `db:"total_attempts"`
	AverageDelayMs       float64        `db:"average_delay_ms"`
	Confidence           float64        `db:"confidence"`
	Interpretation       sql.NullString `db:"interpretation"`
	VideoURL             sql.NullString `db:"video_url"`
	StartedAt            sql.NullTime   `db:"started_at"`
	CompletedAt          sql.NullTime   `db:"completed_at"`
}

func (r *sessionRepository) CreateSession(c context.Context, s entity.GameSession) error {
	requestID := contextPkg.GetRequestID(c)
	argsKV := map[string]interface{}{
		"id":         s.ID,
		"child_id":   s.ChildID,
		"game_type":  s.GameType,
		"status":     s.Status,
		"started_at": s.StartedAt,
	}

	query, args, err := sqlx.Named(queryCreateSession, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to build SQL query for CreateSession")
		return err
	}
	query = r.q.Rebind(query)

	if _, err := r.q.ExecContext(c, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Database error when creating game session")
		return err
	}

	return nil
}

func (r *sessionRepository) GetByID(c context.Context, id string) (entity.GameSession, error) {
	requestID := contextPkg.GetRequestID(c)
	var row GameSessionDB

	argsKV := map[string]interface{}{
		"id": id,
	}

	query, args, err := sqlx.Named(queryGetSessionByID, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetByID named query preparation err")
		return entity.GameSession{}, err
	}

	query = r.q.Rebind(query)

	if err := r.q.QueryRowxContext(c, query, args...).StructScan(&row); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			r.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"error":      err.Error(),
			}).Warn("GetByID no rows found")
			return entity.GameSession{}, session.ErrSessionNotFound
		}
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetByID execution err")
		return entity.GameSession{}, err
	}

	return r.makeSession(row), nil
}

func (r *sessionRepository) GetByChildID(c context.Context, childID string) ([]entity.GameSession, error) {
	return r.selectSessions(c, queryGetSessionsByChildID, childID, "GetByChildID")
}

func (r *sessionRepository) GetCompletedByChildID(c context.Context, childID string) ([]entity.GameSession, error) {
	return r.selectSessions(c, queryGetCompletedSessionsByChildID, childID, "GetCompletedByChildID")
}

func (r *sessionRepository) selectSessions(c context.Context, namedQuery, childID, operation string) ([]entity.GameSession, error) {
	requestID := contextPkg.GetRequestID(c)
	var rows []GameSessionDB

	argsKV := map[string]interface{}{
		"child_id": childID,
	}

	query, args, err := sqlx.Named(namedQuery, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error(operation + " named query preparation err")
		return nil, err
	}

	query = r.q.Rebind(query)

	if err := sqlx.SelectContext(c, r.q, &rows, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error(operation + " execution err")
		return nil, err
	}

	sessions := make([]entity.GameSession, 0, len(rows))
	for _, row := range rows {
		sessions = append(sessions, r.makeSession(row))
	}

	return sessions, nil
}

func (r *sessionRepository) UpdateResults(c context.Context, s entity.GameSession) error {
	requestID := contextPkg.GetRequestID(c)
	argsKV := map[string]interface{}{
		"id":                    s.ID,
		"status":                s.Status,
		"frame_count":           s.FrameCount,
		"duration_seconds":      s.Duration,
		"eye_contact_ratio":     s.EyeContactRatio,
		"alignment_score":       s.AlignmentScore,
		"smile_ratio":           s.SmileRatio,
		"smile_frequency":       s.SmileFrequency,
		"gesture_count":         s.GestureCount,
		"wave_count":            s.WaveCount,
		"point_count":           s.PointCount,
		"repetitive_ratio":      s.RepetitiveRatio,
		"oscillation_count":     s.OscillationCount,
		"imitation_score":       s.ImitationScore,
		"successful_imitations": s.SuccessfulImitations,
		"total_attempts":        s.TotalAttempts,
		"average_delay_ms":      s.AverageDelayMs,
		"confidence":            s.Confidence,
		"interpretation":        s.Interpretation,
		"completed_at":          s.CompletedAt,
	}

	query, args, err := sqlx.Named(queryUpdateSessionResults, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("UpdateResults named query preparation err")
		return err
	}

	query = r.q.Rebind(query)

	if _, err := r.q.ExecContext(c, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("UpdateResults execution err")
		return err
	}

	return nil
}

func (r *sessionRepository) UpdateStatus(c context.Context, id string, status entity.SessionStatus) error {
	requestID := contextPkg.GetRequestID(c)
	argsKV := map[string]interface{}{
		"id":           id,
		"status":       status,
		"completed_at": time.Now(),
	}

	query, args, err := sqlx.Named(queryUpdateSessionStatus, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("UpdateStatus named query preparation err")
		return err
	}

	query = r.q.Rebind(query)

	if _, err := r.q.ExecContext(c, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("UpdateStatus execution err")
		return err
	}

	return nil
}

func (r *sessionRepository) UpdateVideoURL(c context.Context, id string, videoURL string) error {
	requestID := contextPkg.GetRequestID(c)
	argsKV := map[string]interface{}{
		"id":        id,
		"video_url": videoURL,
	}

	query, args, err := sqlx.Named(queryUpdateSessionVideoURL, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("UpdateVideoURL named query preparation err")
		return err
	}

	query = r.q.Rebind(query)

	if _, err := r.q.ExecContext(c, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("UpdateVideoURL execution err")
		return err
	}

	return nil
}

func (r *sessionRepository) makeSession(row GameSessionDB) entity.GameSession {
	return entity.GameSession{
		ID:                   row.ID.String,
		ChildID:              row.ChildID.String,
		GameType:             entity.GameType(row.GameType.String),
		Status:               entity.SessionStatus(row.Status.String),
		FrameCount:           row.FrameCount,
		Duration:             row.Duration,
		EyeContactRatio:      row.EyeContactRatio,
		AlignmentScore:       row.AlignmentScore,
		SmileRatio:           row.SmileRatio,
		SmileFrequency:       row.SmileFrequency,
		GestureCount:         row.GestureCount,
		WaveCount:            row.WaveCount,
		PointCount:           row.PointCount,
		RepetitiveRatio:      row.RepetitiveRatio,
		OscillationCount:     row.OscillationCount,
		ImitationScore:       row.ImitationScore,
		SuccessfulImitations: row.SuccessfulImitations,
		TotalAttempts:        row.TotalAttempts,
		AverageDelayMs:       row.AverageDelayMs,
		Confidence:           row.Confidence,
		Interpretation:       row.Interpretation,
		VideoURL:             row.VideoURL,
		StartedAt:            row.StartedAt.Time,
		CompletedAt:          row.CompletedAt,
	}
}
