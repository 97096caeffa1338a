package screeningRepository

import (
	"LittleSteps/internal/api/screening"
	"LittleSteps/internal/entity"
	contextPkg "LittleSteps/pkg/context"
	"context"
	"database/sql"
	"errors"
	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
)

type ScreeningDB struct {
	ID                     sql.NullString  `db:"id"`
	ChildID                sql.NullString  `db:"child_id"`
	Status                 sql.NullString  `db:"status"`
	EyeContactScore        sql.NullFloat64 `db:"eye_contact_score"`
	SmileScore             sql.NullFloat64 `db:"smile_score"`
	GestureScore           sql.NullFloat64 `db:"gesture_score"`
	RepetitiveScore        sql.NullFloat64 `db:"repetitive_score"`
	ImitationScore         sql.NullFloat64 `db:"imitation_score"`
	QuestionnaireScore     sql.NullFloat64 `db:"questionnaire_score"`
	QuestionnaireResponses sql.NullString  `db:"questionnaire_responses"`
	AutismLikelihood       sql.NullFloat64 `db:"autism_likelihood"`
	RiskLevel              sql.NullString  `db:"risk_level"`
	Summary                sql.NullString  `db:"summary"`
	EyeContactInsights     sql.NullString  `db:"eye_contact_insights"`
	GestureInsights        sql.NullString  `db:"gesture_insights"`
	SmileInsights          sql.NullString  `db:"smile_insights"`
	RepetitiveInsights     sql.NullString  `db:"repetitive_insights"`
	ImitationInsights      sql.NullString  `db:"imitation_insights"`
	QuestionnaireInsights  sql.NullString  `db:"questionnaire_insights"`
	RecommendationsText    sql.NullString  `db:"recommendations"`
	CreatedAt              sql.NullTime    `db:"created_at"`
	FinalizedAt            sql.NullTime    `db:"finalized_at"`
}

func (r *screeningRepository) CreateScreening(c context.Context, s entity.Screening) error {
	requestID := contextPkg.GetRequestID(c)
	argsKV := map[string]interface{}{
		"id":         s.ID,
		"child_id":   s.ChildID,
		"status":     s.Status,
		"created_at": s.CreatedAt,
	}

	query, args, err := sqlx.Named(queryCreateScreening, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to build SQL query for CreateScreening")
		return err
	}
	query = r.q.Rebind(query)

	if _, err := r.q.ExecContext(c, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Database error when creating screening")
		return err
	}

	return nil
}

func (r *screeningRepository) GetByID(c context.Context, id string) (entity.Screening, error) {
	requestID := contextPkg.GetRequestID(c)
	var row ScreeningDB

	argsKV := map[string]interface{}{
		"id": id,
	}

	query, args, err := sqlx.Named(queryGetScreeningByID, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetByID named query preparation err")
		return entity.Screening{}, err
	}

	query = r.q.Rebind(query)

	if err := r.q.QueryRowxContext(c, query, args...).StructScan(&row); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			r.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"error":      err.Error(),
			}).Warn("GetByID no rows found")
			return entity.Screening{}, screening.ErrScreeningNotFound
		}
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetByID execution err")
		return entity.Screening{}, err
	}

	return r.makeScreening(row), nil
}

func (r *screeningRepository) GetByChildID(c context.Context, childID string) ([]entity.Screening, error) {
	requestID := contextPkg.GetRequestID(c)
	var rows []ScreeningDB

	argsKV := map[string]interface{}{
		"child_id": childID,
	}

	query, args, err := sqlx.Named(queryGetScreeningsByChildID, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetByChildID named query preparation err")
		return nil, err
	}

	query = r.q.Rebind(query)

	if err := sqlx.SelectContext(c, r.q, &rows, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetByChildID execution err")
		return nil, err
	}

	screenings := make([]entity.Screening, 0, len(rows))
	for _, row := range rows {
		screenings = append(screenings, r.makeScreening(row))
	}

	return screenings, nil
}

func (r *screeningRepository) UpdateQuestionnaire(c context.Context, id string, responses string, score float64) error {
	requestID := contextPkg.GetRequestID(c)
	argsKV := map[string]interface{}{
		"id":                      id,
		"questionnaire_responses": responses,
		"questionnaire_score":     score,
	}

	query, args, err := sqlx.Named(queryUpdateQuestionnaire, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("UpdateQuestionnaire named query preparation err")
		return err
	}

	query = r.q.Rebind(query)

	if _, err := r.q.ExecContext(c, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("UpdateQuestionnaire execution err")
		return err
	}

	return nil
}

func (r *screeningRepository) FinalizeScreening(c context.Context, s entity.Screening) error {
	requestID := contextPkg.GetRequestID(c)
	argsKV := map[string]interface{}{
		"id":                     s.ID,
		"status":                 s.Status,
		"eye_contact_score":      s.EyeContactScore,
		"smile_score":            s.SmileScore,
		"gesture_score":          s.GestureScore,
		"repetitive_score":       s.RepetitiveScore,
		"imitation_score":        s.ImitationScore,
		"questionnaire_score":    s.QuestionnaireScore,
		"autism_likelihood":      s.AutismLikelihood,
		"risk_level":             s.RiskLevel,
		"summary":                s.Summary,
		"eye_contact_insights":   s.EyeContactInsights,
		"gesture_insights":       s.GestureInsights,
		"smile_insights":         s.SmileInsights,
		"repetitive_insights":    s.RepetitiveInsights,
		"imitation_insights":     s.ImitationInsights,
		"questionnaire_insights": s.QuestionnaireInsights,
		"recommendations":        s.RecommendationsText,
		"finalized_at":           s.FinalizedAt,
	}

	query, args, err := sqlx.Named(queryFinalizeScreening, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("FinalizeScreening named query preparation err")
		return err
	}

	query = r.q.Rebind(query)

	if _, err := r.q.ExecContext(c, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("FinalizeScreening execution err")
		return err
	}

	return nil
}

func (r *screeningRepository) makeScreening(row ScreeningDB) entity.Screening {
	return entity.Screening{
		ID:                     row.ID.String,
		ChildID:                row.ChildID.String,
		Status:                 entity.ScreeningStatus(row.Status.String),
		EyeContactScore:        row.EyeContactScore,
		SmileScore:             row.SmileScore,
		GestureScore:           row.GestureScore,
		RepetitiveScore:        row.RepetitiveScore,
		ImitationScore:         row.ImitationScore,
		QuestionnaireScore:     row.QuestionnaireScore,
		QuestionnaireResponses: row.QuestionnaireResponses,
		AutismLikelihood:       row.AutismLikelihood,
		RiskLevel:              row.RiskLevel,
		Summary:                row.Summary,
		EyeContactInsights:     row.EyeContactInsights,
		GestureInsights:        row.GestureInsights,
		SmileInsights:          row.SmileInsights,
		RepetitiveInsights:     row.RepetitiveInsights,
		ImitationInsights:      row.ImitationInsights,
		QuestionnaireInsights:  row.QuestionnaireInsights,
		RecommendationsText:    row.RecommendationsText,
		CreatedAt:              row.CreatedAt.Time,
		FinalizedAt:            row.FinalizedAt,
	}
}
