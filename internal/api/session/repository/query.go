package sessionRepository

const (
	queryCreateSession = `
INSERT INTO game_sessions (id, child_id, game_type, status, started_at)
VALUES (:id, :child_id, :game_type, :status, :started_at)`

	querySelectSession = `
SELECT id, child_id, game_type, status, frame_count, duration_seconds,
       eye_contact_ratio, alignment_score, smile_ratio, smile_frequency,
       gesture_count, wave_count, point_count, repetitive_ratio, oscillation_count,
       imitation_score, successful_imitations, total_attempts, average_delay_ms,
       confidence, interpretation, video_url, started_at, completed_at
FROM game_sessions`

	queryGetSessionByID = querySelectSession + `
    WHERE id = :id`

	queryGetSessionsByChildID = querySelectSession + `
    WHERE child_id = :child_id
ORDER BY started_at DESC`

	queryGetCompletedSessionsByChildID = querySelectSession + `
    WHERE child_id = :child_id AND status = 'completed'
ORDER BY started_at DESC`

	queryUpdateSessionResults = `
UPDATE game_sessions
SET status = :status,
    frame_count = :frame_count,
    duration_seconds = :duration_seconds,
    eye_contact_ratio = :eye_contact_ratio,
    alignment_score = :alignment_score,
    smile_ratio = :smile_ratio,
    smile_frequency = :smile_frequency,
    gesture_count = :gesture_count,
    wave_count = :wave_count,
    point_count = :point_count,
    repetitive_ratio = :repetitive_ratio,
    oscillation_count = :oscillation_count,
    imitation_score = :imitation_score,
    successful_imitations = :successful_imitations,
    total_attempts = :total_attempts,
    average_delay_ms = :average_delay_ms,
    confidence = :confidence,
    interpretation = :interpretation,
    completed_at = :completed_at
WHERE id = :id`

	queryUpdateSessionStatus = `
UPDATE game_sessions
SET status = :status,
    completed_at = :completed_at
WHERE id = :id`

	queryUpdateSessionVideoURL = `
UPDATE game_sessions
SET video_url = :video_url
WHERE id = :id`
)
