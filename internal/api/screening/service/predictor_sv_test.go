package screeningService

import (
	"math"
	"testing"

	"LittleSteps/internal/entity"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestEyeContactRisk(t *testing.T) {
	t.Parallel()

	t.Run("perfect contact scores zero", func(t *testing.T) {
		t.Parallel()
		s := entity.GameSession{EyeContactRatio: 1, AlignmentScore: 1}
		if got := EyeContactRisk(s); got != 0 {
			t.Fatalf("EyeContactRisk() = %v, want 0", got)
		}
	})

	t.Run("no contact scores full risk", func(t *testing.T) {
		t.Parallel()
		s := entity.GameSession{EyeContactRatio: 0, AlignmentScore: 0}
		if got := EyeContactRisk(s); got != 100 {
			t.Fatalf("EyeContactRisk() = %v, want 100", got)
		}
	})

	t.Run("weighted blend", func(t *testing.T) {
		t.Parallel()
		s := entity.GameSession{EyeContactRatio: 0.6, AlignmentScore: 0.8}
		want := (0.4*0.7 + 0.2*0.3) * 100
		if got := EyeContactRisk(s); !almostEqual(got, want) {
			t.Fatalf("EyeContactRisk() = %v, want %v", got, want)
		}
	})
}

func TestGestureRisk(t *testing.T) {
	t.Parallel()

	t.Run("no gestures at all maxes out", func(t *testing.T) {
		t.Parallel()
		s := entity.GameSession{GestureCount: 0, WaveCount: 0, PointCount: 0}
		if got := GestureRisk(s); got != 100 {
			t.Fatalf("GestureRisk() = %v, want 100", got)
		}
	})

	t.Run("frequent gestures score zero", func(t *testing.T) {
		t.Parallel()
		s := entity.GameSession{GestureCount: 8, WaveCount: 5, PointCount: 3}
		if got := GestureRisk(s); got != 0 {
			t.Fatalf("GestureRisk() = %v, want 0", got)
		}
	})

	t.Run("missing waves adds a penalty", func(t *testing.T) {
		t.Parallel()
		s := entity.GameSession{GestureCount: 5, WaveCount: 0, PointCount: 5}
		if got := GestureRisk(s); !almostEqual(got, 20) {
			t.Fatalf("GestureRisk() = %v, want 20", got)
		}
	})
}

func TestSmileRisk(t *testing.T) {
	t.Parallel()

	t.Run("frequent smiling scores zero", func(t *testing.T) {
		t.Parallel()
		s := entity.GameSession{SmileRatio: 0.6, SmileFrequency: 6}
		if got := SmileRisk(s); got != 0 {
			t.Fatalf("SmileRisk() = %v, want 0", got)
		}
	})

	t.Run("no smiling maxes out", func(t *testing.T) {
		t.Parallel()
		s := entity.GameSession{SmileRatio: 0, SmileFrequency: 0}
		if got := SmileRisk(s); got != 100 {
			t.Fatalf("SmileRisk() = %v, want 100", got)
		}
	})
}

func TestRepetitiveRisk(t *testing.T) {
	t.Parallel()

	t.Run("no repetition scores zero", func(t *testing.T) {
		t.Parallel()
		if got := RepetitiveRisk(entity.GameSession{}); got != 0 {
			t.Fatalf("RepetitiveRisk() = %v, want 0", got)
		}
	})

	t.Run("constant repetition maxes out", func(t *testing.T) {
		t.Parallel()
		s := entity.GameSession{RepetitiveRatio: 1, OscillationCount: 20}
		if got := RepetitiveRisk(s); got != 100 {
			t.Fatalf("RepetitiveRisk() = %v, want 100", got)
		}
	})

	t.Run("oscillations cap at ten", func(t *testing.T) {
		t.Parallel()
		low := RepetitiveRisk(entity.GameSession{OscillationCount: 10})
		high := RepetitiveRisk(entity.GameSession{OscillationCount: 50})
		if low != high {
			t.Fatalf("oscillation term should saturate: %v != %v", low, high)
		}
	})
}

func TestImitationRisk(t *testing.T) {
	t.Parallel()

	t.Run("instant perfect imitation scores zero", func(t *testing.T) {
		t.Parallel()
		s := entity.GameSession{ImitationScore: 1, AverageDelayMs: 0}
		if got := ImitationRisk(s); got != 0 {
			t.Fatalf("ImitationRisk() = %v, want 0", got)
		}
	})

	t.Run("no imitation with long delays maxes out", func(t *testing.T) {
		t.Parallel()
		s := entity.GameSession{ImitationScore: 0, AverageDelayMs: 10000}
		if got := ImitationRisk(s); got != 100 {
			t.Fatalf("ImitationRisk() = %v, want 100", got)
		}
	})

	t.Run("delay caps at five seconds", func(t *testing.T) {
		t.Parallel()
		low := ImitationRisk(entity.GameSession{ImitationScore: 0.5, AverageDelayMs: 5000})
		high := ImitationRisk(entity.GameSession{ImitationScore: 0.5, AverageDelayMs: 60000})
		if low != high {
			t.Fatalf("delay term should saturate: %v != %v", low, high)
		}
	})
}

func TestFuseComponents(t *testing.T) {
	t.Parallel()

	t.Run("weights sum to one", func(t *testing.T) {
		t.Parallel()
		sum := weightEyeContact + weightSmile + weightGesture + weightRepetitive + weightImitation + weightQuestionnaire
		if !almostEqual(sum, 1.0) {
			t.Fatalf("fusion weights sum = %v, want 1.0", sum)
		}
	})

	t.Run("uniform components pass through", func(t *testing.T) {
		t.Parallel()
		c := componentScores{EyeContact: 50, Smile: 50, Gesture: 50, Repetitive: 50, Imitation: 50, Questionnaire: 50}
		if got := FuseComponents(c); !almostEqual(got, 50) {
			t.Fatalf("FuseComponents() = %v, want 50", got)
		}
	})

	t.Run("all high clamps at hundred", func(t *testing.T) {
		t.Parallel()
		c := componentScores{EyeContact: 100, Smile: 100, Gesture: 100, Repetitive: 100, Imitation: 100, Questionnaire: 100}
		if got := FuseComponents(c); got != 100 {
			t.Fatalf("FuseComponents() = %v, want 100", got)
		}
	})
}

func TestScoresCarryTwoDecimals(t *testing.T) {
	t.Parallel()

	t.Run("component scores are rounded", func(t *testing.T) {
		t.Parallel()
		s := entity.GameSession{EyeContactRatio: 1.0 / 3, AlignmentScore: 1.0 / 3}
		if got := EyeContactRisk(s); got != 66.67 {
			t.Fatalf("EyeContactRisk() = %v, want 66.67", got)
		}
	})

	t.Run("fused likelihood is rounded", func(t *testing.T) {
		t.Parallel()
		c := componentScores{EyeContact: 66.67, Smile: 33.33, Gesture: 11.11, Repetitive: 77.77, Imitation: 44.44, Questionnaire: 55.55}
		got := FuseComponents(c)
		if got != math.Round(got*100)/100 {
			t.Fatalf("FuseComponents() = %v, want a 2-decimal value", got)
		}
	})
}

func TestComputeComponentsUsesLatestSessionPerMetric(t *testing.T) {
	t.Parallel()

	// Sessions arrive newest first; the older eye contact session must be
	// ignored.
	sessions := []entity.GameSession{
		{GameType: entity.GameLookAtCharacter, Status: entity.SessionCompleted, EyeContactRatio: 1, AlignmentScore: 1},
		{GameType: entity.GameLookAtCharacter, Status: entity.SessionCompleted, EyeContactRatio: 0, AlignmentScore: 0},
	}

	c := computeComponents(sessions, 0)
	if c.EyeContact != 0 {
		t.Fatalf("EyeContact component = %v, want 0 (from the newest session)", c.EyeContact)
	}
}
