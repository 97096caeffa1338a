package screeningRepository

const (
	queryCreateScreening = `
INSERT INTO screenings (id, child_id, status, created_at)
VALUES (:id, :child_id, :status, :created_at)`

	querySelectScreening = `
SELECT id, child_id, status, eye_contact_score, smile_score, gesture_score,
       repetitive_score, imitation_score, questionnaire_score, questionnaire_responses,
       autism_likelihood, risk_level, summary, eye_contact_insights, gesture_insights,
       smile_insights, repetitive_insights, imitation_insights, questionnaire_insights,
       recommendations, created_at, finalized_at
FROM screenings`

	queryGetScreeningByID = querySelectScreening + `
    WHERE id = :id`

	queryGetScreeningsByChildID = querySelectScreening + `
    WHERE child_id = :child_id
ORDER BY created_at DESC`

	queryUpdateQuestionnaire = `
UPDATE screenings
SET questionnaire_responses = :questionnaire_responses,
    questionnaire_score = :questionnaire_score
WHERE id = :id`

	queryFinalizeScreening = `
UPDATE screenings
SET status = :status,
    eye_contact_score = :eye_contact_score,
    smile_score = :smile_score,
    gesture_score = :gesture_score,
    repetitive_score = :repetitive_score,
    imitation_score = :imitation_score,
    questionnaire_score = :questionnaire_score,
    autism_likelihood = :autism_likelihood,
    risk_level = :risk_level,
    summary = :summary,
    eye_contact_insights = :eye_contact_insights,
    gesture_insights = :gesture_insights,
    smile_insights = :smile_insights,
    repetitive_insights = :repetitive_insights,
    imitation_insights = :imitation_insights,
    questionnaire_insights = :questionnaire_insights,
    recommendations = :recommendations,
    finalized_at = :finalized_at
WHERE id = :id`
)
