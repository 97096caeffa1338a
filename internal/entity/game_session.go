package entity

import (
	"database/sql"
	"time"

	sessionDomain "LittleSteps/internal/api/session"
)

type GameType string

const (
	GameLookAtCharacter    GameType = "look_at_character"
	GameWaveAtCharacter    GameType = "wave_at_character"
	GameMakeCharacterHappy GameType = "make_character_happy"
	GameCopyTheFriend      GameType = "copy_the_friend"
	GameFreePlay           GameType = "free_play"
)

type MetricKind string

const (
	MetricEyeContact MetricKind = "eye_contact"
	MetricGesture    MetricKind = "gesture"
	MetricSmile      MetricKind = "smile"
	MetricImitation  MetricKind = "imitation"
	MetricRepetitive MetricKind = "repetitive"
)

func IsValidGameType(s string) bool {
	switch GameType(s) {
	case GameLookAtCharacter, GameWaveAtCharacter, GameMakeCharacterHappy, GameCopyTheFriend, GameFreePlay:
		return true
	}
	return false
}

func (g GameType) Metric() MetricKind {
	switch g {
	case GameLookAtCharacter:
		return MetricEyeContact
	case GameWaveAtCharacter:
		return MetricGesture
	case GameMakeCharacterHappy:
		return MetricSmile
	case GameCopyTheFriend:
		return MetricImitation
	default:
		return MetricRepetitive
	}
}

type SessionStatus string

const (
	SessionInProgress SessionStatus = "in_progress"
	SessionCompleted  SessionStatus = "completed"
	SessionAbandoned  SessionStatus = "abandoned"
)

type GameSession struct {
	ID       string        `db:"id"`
	ChildID  string        `db:"child_id"`
	GameType GameType      `db:"game_type"`
	Status   SessionStatus `db:"status"`

	FrameCount int     `db:"frame_count"`
	Duration   float64 `db:"duration_seconds"`

	EyeContactRatio      float64 `db:"eye_contact_ratio"`
	AlignmentScore       float64 `db:"alignment_score"`
	SmileRatio           float64 `db:"smile_ratio"`
	SmileFrequency       int     `db:"smile_frequency"`
	GestureCount         int     `db:"gesture_count"`
	WaveCount            int     `db:"wave_count"`
	PointCount           int     `db:"point_count"`
	RepetitiveRatio      float64 `db:"repetitive_ratio"`
	OscillationCount     int     `db:"oscillation_count"`
	ImitationScore       float64 `db:"imitation_score"`
	SuccessfulImitations int     `db:"successful_imitations"`
	TotalAttempts        int     `db:"total_attempts"`
	AverageDelayMs       float64 `db:"average_delay_ms"`

	Confidence     float64        `db:"confidence"`
	Interpretation sql.NullString `db:"interpretation"`
	VideoURL       sql.NullString `db:"video_url"`

	StartedAt   time.Time    `db:"started_at"`
	CompletedAt sql.NullTime `db:"completed_at"`
}

func (s *GameSession) IsComplete() bool {
	return s.Status == SessionCompleted
}

func (s *GameSession) CanIngestFrames() error {
	if s.Status != SessionInProgress {
		return sessionDomain.ErrSessionNotActive
	}
	return nil
}
