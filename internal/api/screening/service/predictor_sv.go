package screeningService

import (
	"LittleSteps/internal/entity"
	"math"
)

// Fusion weights for the final likelihood score. Eye contact carries the
// most signal for this age band, the questionnaire the least since it is
// parent-reported.
const (
	weightEyeContact    = 0.22
	weightSmile         = 0.18
	weightGesture       = 0.18
	weightRepetitive    = 0.18
	weightImitation     = 0.14
	weightQuestionnaire = 0.10
)

// componentScores holds per-domain risk scores on a 0-100 scale, where
// higher means more atypical for the child's age band.
type componentScores struct {
	EyeContact    float64
	Smile         float64
	Gesture       float64
	Repetitive    float64
	Imitation     float64
	Questionnaire float64
}

// EyeContactRisk scores gaze behaviour. Low contact ratio dominates, poor
// head alignment with the stimulus adds the rest.
func EyeContactRisk(s entity.GameSession) float64 {
	risk := ((1-s.EyeContactRatio)*0.7 + (1-s.AlignmentScore)*0.3) * 100
	return clampScore(risk)
}

// GestureRisk scores communicative gesture use. Absence of waving and
// pointing each add a penalty on top of low overall frequency.
func GestureRisk(s entity.GameSession) float64 {
	risk := math.Max(0, 5-float64(s.GestureCount)) / 5
	if s.WaveCount == 0 {
		risk += 0.2
	}
	if s.PointCount == 0 {
		risk += 0.2
	}
	return clampScore(math.Min(risk, 1.0) * 100)
}

// SmileRisk scores social smiling from the time spent smiling and how
// often smiles occurred.
func SmileRisk(s entity.GameSession) float64 {
	ratioRisk := math.Max(0, 0.5-s.SmileRatio) / 0.5
	freqRisk := math.Max(0, 5-float64(s.SmileFrequency)) / 5
	return clampScore((ratioRisk*0.6 + freqRisk*0.4) * 100)
}

// RepetitiveRisk scores stereotyped movement from the fraction of frames
// showing repetition and the oscillation count.
func RepetitiveRisk(s entity.GameSession) float64 {
	risk := s.RepetitiveRatio*60 + math.Min(float64(s.OscillationCount)/10, 1)*40
	return clampScore(risk)
}

// ImitationRisk scores motor imitation. Delayed responses add risk on top
// of a low success score.
func ImitationRisk(s entity.GameSession) float64 {
	risk := (1-s.ImitationScore)*70 + math.Min(s.AverageDelayMs/5000, 1)*30
	return clampScore(risk)
}

// QuestionnaireRisk rescales the marker fraction onto 0-100.
func QuestionnaireRisk(score float64) float64 {
	return clampScore(score * 100)
}

// FuseComponents combines per-domain risks into the autism likelihood
// score shown to parents.
func FuseComponents(c componentScores) float64 {
	likelihood := c.EyeContact*weightEyeContact +
		c.Smile*weightSmile +
		c.Gesture*weightGesture +
		c.Repetitive*weightRepetitive +
		c.Imitation*weightImitation +
		c.Questionnaire*weightQuestionnaire
	return clampScore(likelihood)
}

// computeComponents derives all behavioural risks from the most recent
// completed session per metric plus the questionnaire score.
func computeComponents(sessions []entity.GameSession, questionnaireScore float64) componentScores {
	latest := map[entity.MetricKind]entity.GameSession{}
	for _, s := range sessions {
		if !s.IsComplete() {
			continue
		}
		metric := s.GameType.Metric()
		if _, ok := latest[metric]; !ok {
			latest[metric] = s
		}
	}

	return componentScores{
		EyeContact:    EyeContactRisk(latest[entity.MetricEyeContact]),
		Smile:         SmileRisk(latest[entity.MetricSmile]),
		Gesture:       GestureRisk(latest[entity.MetricGesture]),
		Repetitive:    RepetitiveRisk(latest[entity.MetricRepetitive]),
		Imitation:     ImitationRisk(latest[entity.MetricImitation]),
		Questionnaire: QuestionnaireRisk(questionnaireScore),
	}
}

// Scores are persisted and surfaced with 2-decimal precision.
func clampScore(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return math.Round(v*100) / 100
}
