package sessionService

import (
	"testing"

	"LittleSteps/internal/entity"
	"LittleSteps/pkg/mlservice"
)

func TestAggregateBatches(t *testing.T) {
	t.Parallel()

	t.Run("empty input yields zero value", func(t *testing.T) {
		t.Parallel()
		agg := AggregateBatches(entity.MetricEyeContact, nil)
		if agg.FrameCount != 0 || agg.EyeContactRatio != 0 {
			t.Fatalf("expected zero aggregate, got %+v", agg)
		}
	})

	t.Run("ratios average and counters sum", func(t *testing.T) {
		t.Parallel()
		batches := []mlservice.BatchResult{
			{EyeContactRatio: 0.8, AlignmentScore: 0.9, WaveCount: 1, PointCount: 0, TotalFrames: 30, Confidence: 0.9},
			{EyeContactRatio: 0.4, AlignmentScore: 0.5, WaveCount: 2, PointCount: 1, TotalFrames: 30, Confidence: 0.7},
		}

		agg := AggregateBatches(entity.MetricEyeContact, batches)

		if got, want := agg.EyeContactRatio, 0.6; got != want {
			t.Fatalf("EyeContactRatio = %v, want %v", got, want)
		}
		if got, want := agg.AlignmentScore, 0.7; got != want {
			t.Fatalf("AlignmentScore = %v, want %v", got, want)
		}
		if got, want := agg.WaveCount, 3; got != want {
			t.Fatalf("WaveCount = %d, want %d", got, want)
		}
		if got, want := agg.GestureCount, 4; got != want {
			t.Fatalf("GestureCount = %d, want %d", got, want)
		}
		if got, want := agg.FrameCount, 60; got != want {
			t.Fatalf("FrameCount = %d, want %d", got, want)
		}
		if got, want := agg.Confidence, 0.8; got != want {
			t.Fatalf("Confidence = %v, want %v", got, want)
		}
	})
}

func TestMetricValue(t *testing.T) {
	t.Parallel()

	s := entity.GameSession{
		EyeContactRatio: 0.7,
		GestureCount:    4,
		SmileRatio:      0.5,
		ImitationScore:  0.9,
		RepetitiveRatio: 0.2,
	}

	tests := []struct {
		metric entity.MetricKind
		want   float64
	}{
		{entity.MetricEyeContact, 0.7},
		{entity.MetricGesture, 4},
		{entity.MetricSmile, 0.5},
		{entity.MetricImitation, 0.9},
		{entity.MetricRepetitive, 0.2},
	}

	for _, tt := range tests {
		if got := MetricValue(tt.metric, s); got != tt.want {
			t.Fatalf("MetricValue(%s) = %v, want %v", tt.metric, got, tt.want)
		}
	}
}

func TestInterpretMetric(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		metric  entity.MetricKind
		session entity.GameSession
		want    string
	}{
		{"good eye contact", entity.MetricEyeContact, entity.GameSession{EyeContactRatio: 0.8}, "Good eye contact"},
		{"very low eye contact", entity.MetricEyeContact, entity.GameSession{EyeContactRatio: 0.1}, "Very low eye contact"},
		{"normal gestures", entity.MetricGesture, entity.GameSession{GestureCount: 6}, "Normal gesture use"},
		{"low gestures", entity.MetricGesture, entity.GameSession{GestureCount: 1}, "Low gesture use"},
		{"normal smiling", entity.MetricSmile, entity.GameSession{SmileRatio: 0.6}, "Normal social smiling"},
		{"good imitation", entity.MetricImitation, entity.GameSession{ImitationScore: 0.8}, "Good imitation"},
		{"repetition present", entity.MetricRepetitive, entity.GameSession{RepetitiveRatio: 0.6}, "Repetitive movement present"},
		{"repetition absent", entity.MetricRepetitive, entity.GameSession{RepetitiveRatio: 0.1}, "Repetitive movement absent"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := InterpretMetric(tt.metric, tt.session); got != tt.want {
				t.Fatalf("InterpretMetric() = %q, want %q", got, tt.want)
			}
		})
	}
}
