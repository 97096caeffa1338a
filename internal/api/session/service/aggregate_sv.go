package sessionService

import (
	"LittleSteps/internal/entity"
	"LittleSteps/pkg/mlservice"
)

// AggregateBatches folds per-batch analyzer outputs into one session
// result. Ratios and scores are averaged across batches, event counters
// are summed, and the interpretation band is derived from the aggregate.
func AggregateBatches(metric entity.MetricKind, batches []mlservice.BatchResult) entity.GameSession {
	var agg entity.GameSession

	n := len(batches)
	if n == 0 {
		return agg
	}

	var (
		eyeSum, alignSum, smileSum, repSum, imitSum, delaySum, confSum float64
		smileFreq, gestures, waves, points, oscillations               int
		successes, attempts, frames                                    int
	)

	for _, b := range batches {
		eyeSum += b.EyeContactRatio
		alignSum += b.AlignmentScore
		smileSum += b.SmileRatio
		repSum += b.RepetitiveRatio
		imitSum += b.ImitationScore
		delaySum += b.AverageDelay
		confSum += b.Confidence

		smileFreq += b.SmileFrequency
		waves += b.WaveCount
		points += b.PointCount
		oscillations += b.OscillationCount
		successes += b.SuccessfulImitations
		attempts += b.TotalAttempts
		frames += b.TotalFrames
	}

	fn := float64(n)
	gestures = waves + points

	agg.EyeContactRatio = eyeSum / fn
	agg.AlignmentScore = alignSum / fn
	agg.SmileRatio = smileSum / fn
	agg.SmileFrequency = smileFreq
	agg.GestureCount = gestures
	agg.WaveCount = waves
	agg.PointCount = points
	agg.RepetitiveRatio = repSum / fn
	agg.OscillationCount = oscillations
	agg.ImitationScore = imitSum / fn
	agg.SuccessfulImitations = successes
	agg.TotalAttempts = attempts
	agg.AverageDelayMs = delaySum / fn
	agg.Confidence = confSum / fn
	agg.FrameCount = frames

	return agg
}

// MetricValue extracts the headline number for a session's metric.
func MetricValue(metric entity.MetricKind, s entity.GameSession) float64 {
	switch metric {
	case entity.MetricEyeContact:
		return s.EyeContactRatio
	case entity.MetricGesture:
		return float64(s.GestureCount)
	case entity.MetricSmile:
		return s.SmileRatio
	case entity.MetricImitation:
		return s.ImitationScore
	default:
		return s.RepetitiveRatio
	}
}

// InterpretMetric maps the aggregate onto the band shown to parents.
func InterpretMetric(metric entity.MetricKind, s entity.GameSession) string {
	switch metric {
	case entity.MetricEyeContact:
		switch {
		case s.EyeContactRatio > 0.7:
			return "Good eye contact"
		case s.EyeContactRatio > 0.5:
			return "Moderate eye contact"
		case s.EyeContactRatio > 0.3:
			return "Low eye contact"
		default:
			return "Very low eye contact"
		}
	case entity.MetricGesture:
		switch {
		case s.GestureCount > 5:
			return "Normal gesture use"
		case s.GestureCount > 2:
			return "Reduced gesture use"
		default:
			return "Low gesture use"
		}
	case entity.MetricSmile:
		switch {
		case s.SmileRatio > 0.5:
			return "Normal social smiling"
		case s.SmileRatio > 0.3:
			return "Reduced social smiling"
		default:
			return "Low social smiling"
		}
	case entity.MetricImitation:
		switch {
		case s.ImitationScore > 0.7:
			return "Good imitation"
		case s.ImitationScore > 0.4:
			return "Moderate imitation"
		default:
			return "Low imitation"
		}
	default:
		switch {
		case s.RepetitiveRatio > 0.5:
			return "Repetitive movement present"
		case s.RepetitiveRatio > 0.2:
			return "Mild repetitive movement"
		default:
			return "Repetitive movement absent"
		}
	}
}
