package entity

import (
	"database/sql"
	"time"
)

type RiskLevel string

const (
	RiskLow      RiskLevel = "Low"
	RiskModerate RiskLevel = "Moderate"
	RiskHigh     RiskLevel = "High"
)

// RiskLevelFromScore maps a 0-100 likelihood onto the screening bands.
func RiskLevelFromScore(score float64) RiskLevel {
	switch {
	case score < 30:
		return RiskLow
	case score < 60:
		return RiskModerate
	default:
		return RiskHigh
	}
}

type ScreeningStatus string

const (
	ScreeningInProgress ScreeningStatus = "in_progress"
	ScreeningCompleted  ScreeningStatus = "completed"
)

type Screening struct {
	ID      string          `db:"id"`
	ChildID string          `db:"child_id"`
	Status  ScreeningStatus `db:"status"`

	EyeContactScore    sql.NullFloat64 `db:"eye_contact_score"`
	SmileScore         sql.NullFloat64 `db:"smile_score"`
	GestureScore       sql.NullFloat64 `db:"gesture_score"`
	RepetitiveScore    sql.NullFloat64 `db:"repetitive_score"`
	ImitationScore     sql.NullFloat64 `db:"imitation_score"`
	QuestionnaireScore sql.NullFloat64 `db:"questionnaire_score"`

	QuestionnaireResponses sql.NullString `db:"questionnaire_responses"`

	AutismLikelihood sql.NullFloat64 `db:"autism_likelihood"`
	RiskLevel        sql.NullString  `db:"risk_level"`

	Summary               sql.NullString `db:"summary"`
	EyeContactInsights    sql.NullString `db:"eye_contact_insights"`
	GestureInsights       sql.NullString `db:"gesture_insights"`
	SmileInsights         sql.NullString `db:"smile_insights"`
	RepetitiveInsights    sql.NullString `db:"repetitive_insights"`
	ImitationInsights     sql.NullString `db:"imitation_insights"`
	QuestionnaireInsights sql.NullString `db:"questionnaire_insights"`
	RecommendationsText   sql.NullString `db:"recommendations"`

	CreatedAt   time.Time    `db:"created_at"`
	FinalizedAt sql.NullTime `db:"finalized_at"`
}

func (s *Screening) IsFinalized() bool {
	return s.Status == ScreeningCompleted
}

// MissingInputs reports which behavioural metrics still lack a completed
// game session, plus the questionnaire when unanswered. A screening can
// only be finalized once this list is empty.
func (s *Screening) MissingInputs(sessions []GameSession) []string {
	done := map[MetricKind]bool{}
	for i := range sessions {
		if sessions[i].IsComplete() {
			done[sessions[i].GameType.Metric()] = true
		}
	}
	var missing []string
	for _, m := range []MetricKind{MetricEyeContact, MetricGesture, MetricSmile, MetricImitation, MetricRepetitive} {
		if !done[m] {
			missing = append(missing, string(m))
		}
	}
	if !s.QuestionnaireResponses.Valid {
		missing = append(missing, "questionnaire")
	}
	return missing
}
