package screeningService

import (
	"LittleSteps/internal/api/child"
	"LittleSteps/internal/api/screening"
	"LittleSteps/internal/entity"
	contextPkg "LittleSteps/pkg/context"
	"database/sql"
	"errors"
	"math"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

// timeNow is swappable in tests.
var timeNow = time.Now

func (s *screeningDomainImpl) CreateScreening(ctx context.Context, parentID string, req screening.CreateScreeningRequest) (screening.ScreeningResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	if _, err := s.childService.Child().GetOwnedChild(ctx, parentID, req.ChildID); err != nil {
		return screening.ScreeningResponse{}, err
	}

	repo, err := s.repo.NewClient(false)
	if err != nil {
		return screening.ScreeningResponse{}, err
	}

	ULID, err := s.utils.NewULIDFromTimestamp(timeNow())
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to generate ULID")
		return screening.ScreeningResponse{}, err
	}

	sc := entity.Screening{
		ID:        ULID,
		ChildID:   req.ChildID,
		Status:    entity.ScreeningInProgress,
		CreatedAt: timeNow(),
	}

	if err := repo.Screenings.CreateScreening(ctx, sc); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create screening")
		return screening.ScreeningResponse{}, screening.ErrCreateScreening
	}

	return makeScreeningResponse(sc), nil
}

// GetOwnedScreening loads the screening and enforces child ownership
// through the child domain.
func (s *screeningDomainImpl) GetOwnedScreening(ctx context.Context, parentID string, screeningID string) (entity.Screening, error) {
	repo, err := s.repo.NewClient(false)
	if err != nil {
		return entity.Screening{}, err
	}

	sc, err := repo.Screenings.GetByID(ctx, screeningID)
	if err != nil {
		return entity.Screening{}, err
	}

	if _, err := s.childService.Child().GetOwnedChild(ctx, parentID, sc.ChildID); err != nil {
		if errors.Is(err, child.ErrChildNotOwned) {
			return entity.Screening{}, screening.ErrScreeningNotOwned
		}
		return entity.Screening{}, err
	}

	return sc, nil
}

func (s *screeningDomainImpl) SubmitQuestionnaire(ctx context.Context, parentID string, screeningID string, req screening.QuestionnaireRequest) (screening.QuestionnaireResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	sc, err := s.GetOwnedScreening(ctx, parentID, screeningID)
	if err != nil {
		return screening.QuestionnaireResponse{}, err
	}

	if sc.IsFinalized() {
		return screening.QuestionnaireResponse{}, screening.ErrQuestionnaireNotAllowed
	}

	ch, err := s.childService.Child().GetOwnedChild(ctx, parentID, sc.ChildID)
	if err != nil {
		return screening.QuestionnaireResponse{}, err
	}

	result := entity.QuestionnaireResult{
		Responses: req.Responses,
		AgeMonths: ch.AgeInMonths(timeNow()),
		Sex:       ch.Sex,
		Jaundice:  ch.JaundiceAtBirth,
		FamilyASD: ch.FamilyASDHistory,
	}

	if err := result.Validate(); err != nil {
		return screening.QuestionnaireResponse{}, err
	}

	score := result.ComputeScore()

	repo, err := s.repo.NewClient(false)
	if err != nil {
		return screening.QuestionnaireResponse{}, err
	}

	if err := repo.Screenings.UpdateQuestionnaire(ctx, screeningID, entity.EncodeResponses(req.Responses), score); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id":   requestID,
			"screening_id": screeningID,
			"error":        err.Error(),
		}).Error("Failed to store questionnaire")
		return screening.QuestionnaireResponse{}, screening.ErrUpdateScreening
	}

	markers := result.DeriveMarkers()

	return screening.QuestionnaireResponse{
		Score:      score,
		RiskLevel:  string(entity.QuestionnaireRiskLevel(score)),
		Markers:    markers[:],
		AgeMonths:  result.AgeMonths,
		Sex:        string(result.Sex),
		Jaundice:   result.Jaundice,
		FamilyASD:  result.FamilyASD,
		Confidence: math.Abs(score-0.5) * 2,
	}, nil
}

func (s *screeningDomainImpl) GetStatus(ctx context.Context, parentID string, screeningID string) (screening.StatusResponse, error) {
	sc, err := s.GetOwnedScreening(ctx, parentID, screeningID)
	if err != nil {
		return screening.StatusResponse{}, err
	}

	sessions, err := s.completedSessions(ctx, sc.ChildID)
	if err != nil {
		return screening.StatusResponse{}, err
	}

	missing := sc.MissingInputs(sessions)

	return screening.StatusResponse{
		ID:            sc.ID,
		Status:        string(sc.Status),
		Complete:      len(missing) == 0,
		MissingInputs: missing,
	}, nil
}

func (s *screeningDomainImpl) Finalize(ctx context.Context, parentID string, screeningID string) (screening.ScreeningResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	sc, err := s.GetOwnedScreening(ctx, parentID, screeningID)
	if err != nil {
		return screening.ScreeningResponse{}, err
	}

	if sc.IsFinalized() {
		return screening.ScreeningResponse{}, screening.ErrScreeningAlreadyDone
	}

	ch, err := s.childService.Child().GetOwnedChild(ctx, parentID, sc.ChildID)
	if err != nil {
		return screening.ScreeningResponse{}, err
	}

	sessions, err := s.completedSessions(ctx, sc.ChildID)
	if err != nil {
		return screening.ScreeningResponse{}, err
	}

	if missing := sc.MissingInputs(sessions); len(missing) > 0 {
		s.log.WithFields(logrus.Fields{
			"request_id":   requestID,
			"screening_id": screeningID,
			"missing":      missing,
		}).Warn("Screening inputs incomplete")
		return screening.ScreeningResponse{}, screening.ErrScreeningIncomplete
	}

	components := computeComponents(sessions, sc.QuestionnaireScore.Float64)
	likelihood := FuseComponents(components)
	risk := entity.RiskLevelFromScore(likelihood)

	interpretation := s.generateInterpretation(ctx, ch, components, likelihood, risk)

	now := timeNow()
	sc.Status = entity.ScreeningCompleted
	sc.EyeContactScore = sql.NullFloat64{Float64: components.EyeContact, Valid: true}
	sc.SmileScore = sql.NullFloat64{Float64: components.Smile, Valid: true}
	sc.GestureScore = sql.NullFloat64{Float64: components.Gesture, Valid: true}
	sc.RepetitiveScore = sql.NullFloat64{Float64: components.Repetitive, Valid: true}
	sc.ImitationScore = sql.NullFloat64{Float64: components.Imitation, Valid: true}
	sc.AutismLikelihood = sql.NullFloat64{Float64: likelihood, Valid: true}
	sc.RiskLevel = sql.NullString{String: string(risk), Valid: true}
	sc.Summary = sql.NullString{String: interpretation.Summary, Valid: true}
	sc.EyeContactInsights = sql.NullString{String: interpretation.EyeContactInsights, Valid: true}
	sc.GestureInsights = sql.NullString{String: interpretation.GestureInsights, Valid: true}
	sc.SmileInsights = sql.NullString{String: interpretation.SmileInsights, Valid: true}
	sc.RepetitiveInsights = sql.NullString{String: interpretation.RepetitiveInsights, Valid: true}
	sc.ImitationInsights = sql.NullString{String: interpretation.ImitationInsights, Valid: true}
	sc.QuestionnaireInsights = sql.NullString{String: interpretation.QuestionnaireInsights, Valid: true}
	sc.RecommendationsText = sql.NullString{String: strings.Join(interpretation.Recommendations, "\n"), Valid: true}
	sc.FinalizedAt = sql.NullTime{Time: now, Valid: true}

	repo, err := s.repo.NewClient(false)
	if err != nil {
		return screening.ScreeningResponse{}, err
	}

	if err := repo.Screenings.FinalizeScreening(ctx, sc); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id":   requestID,
			"screening_id": screeningID,
			"error":        err.Error(),
		}).Error("Failed to finalize screening")
		return screening.ScreeningResponse{}, screening.ErrUpdateScreening
	}

	s.notifyParent(ctx, parentID, ch.Name, string(risk), likelihood)

	return makeScreeningResponse(sc), nil
}

// notifyParent pushes the result over WhatsApp when the parent has a
// phone number on file. Failure never blocks finalization.
func (s *screeningDomainImpl) notifyParent(ctx context.Context, parentID, childName, riskLevel string, likelihood float64) {
	requestID := contextPkg.GetRequestID(ctx)

	if s.whatsappSender == nil || !s.whatsappSender.IsConnected() {
		return
	}

	authRepo, err := s.authRepo.NewClient(false)
	if err != nil {
		return
	}

	parent, err := authRepo.Users.GetByID(ctx, parentID)
	if err != nil || !parent.PhoneNumber.Valid || parent.PhoneNumber.String == "" {
		return
	}

	if err := s.whatsappSender.SendScreeningReport(ctx, parent.PhoneNumber.String, childName, riskLevel, likelihood); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Warn("Failed to send screening report over WhatsApp")
	}
}

func (s *screeningDomainImpl) GetScreening(ctx context.Context, parentID string, screeningID string) (screening.ScreeningResponse, error) {
	sc, err := s.GetOwnedScreening(ctx, parentID, screeningID)
	if err != nil {
		return screening.ScreeningResponse{}, err
	}

	return makeScreeningResponse(sc), nil
}

func (s *screeningDomainImpl) ListScreenings(ctx context.Context, parentID string, childID string) ([]screening.ScreeningResponse, error) {
	if _, err := s.childService.Child().GetOwnedChild(ctx, parentID, childID); err != nil {
		return nil, err
	}

	repo, err := s.repo.NewClient(false)
	if err != nil {
		return nil, err
	}

	screenings, err := repo.Screenings.GetByChildID(ctx, childID)
	if err != nil {
		return nil, err
	}

	res := make([]screening.ScreeningResponse, 0, len(screenings))
	for _, sc := range screenings {
		res = append(res, makeScreeningResponse(sc))
	}

	return res, nil
}

func (s *screeningDomainImpl) completedSessions(ctx context.Context, childID string) ([]entity.GameSession, error) {
	sessionRepo, err := s.sessionRepo.NewClient(false)
	if err != nil {
		return nil, err
	}

	return sessionRepo.Sessions.GetCompletedByChildID(ctx, childID)
}

func makeScreeningResponse(sc entity.Screening) screening.ScreeningResponse {
	res := screening.ScreeningResponse{
		ID:               sc.ID,
		ChildID:          sc.ChildID,
		Status:           string(sc.Status),
		AutismLikelihood: sc.AutismLikelihood.Float64,
		RiskLevel:        sc.RiskLevel.String,
		CreatedAt:        sc.CreatedAt.Format(time.RFC3339),
	}

	if sc.FinalizedAt.Valid {
		res.FinalizedAt = sc.FinalizedAt.Time.Format(time.RFC3339)
	}

	if !sc.IsFinalized() {
		return res
	}

	res.ComponentScores = &screening.ComponentScores{
		EyeContact:    sc.EyeContactScore.Float64,
		Smile:         sc.SmileScore.Float64,
		Gesture:       sc.GestureScore.Float64,
		Repetitive:    sc.RepetitiveScore.Float64,
		Imitation:     sc.ImitationScore.Float64,
		Questionnaire: sc.QuestionnaireScore.Float64,
	}

	interpretation := &screening.Interpretation{
		Summary:               sc.Summary.String,
		EyeContactInsights:    sc.EyeContactInsights.String,
		GestureInsights:       sc.GestureInsights.String,
		SmileInsights:         sc.SmileInsights.String,
		RepetitiveInsights:    sc.RepetitiveInsights.String,
		ImitationInsights:     sc.ImitationInsights.String,
		QuestionnaireInsights: sc.QuestionnaireInsights.String,
	}
	if sc.RecommendationsText.Valid && sc.RecommendationsText.String != "" {
		interpretation.Recommendations = strings.Split(sc.RecommendationsText.String, "\n")
	}
	res.Interpretation = interpretation

	return res
}
