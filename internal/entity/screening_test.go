package entity

import (
	"database/sql"
	"testing"
	"time"
)

func TestRiskLevelFromScore(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		score float64
		want  RiskLevel
	}{
		{"zero", 0, RiskLow},
		{"just below moderate", 29.99, RiskLow},
		{"moderate boundary", 30, RiskModerate},
		{"just below high", 59.99, RiskModerate},
		{"high boundary", 60, RiskHigh},
		{"maximum", 100, RiskHigh},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := RiskLevelFromScore(tt.score); got != tt.want {
				t.Fatalf("RiskLevelFromScore(%v) = %v, want %v", tt.score, got, tt.want)
			}
		})
	}
}

func TestScreeningStatusLiterals(t *testing.T) {
	t.Parallel()

	// Screenings use the same lifecycle vocabulary as game sessions.
	if ScreeningInProgress != "in_progress" {
		t.Fatalf("ScreeningInProgress = %q, want in_progress", ScreeningInProgress)
	}
	if ScreeningCompleted != "completed" {
		t.Fatalf("ScreeningCompleted = %q, want completed", ScreeningCompleted)
	}

	sc := Screening{Status: ScreeningCompleted}
	if !sc.IsFinalized() {
		t.Fatal("a completed screening must report finalized")
	}
}

func TestScreeningMissingInputs(t *testing.T) {
	t.Parallel()

	completed := func(game GameType) GameSession {
		return GameSession{
			GameType:    game,
			Status:      SessionCompleted,
			StartedAt:   time.Now(),
			CompletedAt: sql.NullTime{Time: time.Now(), Valid: true},
		}
	}

	t.Run("everything missing", func(t *testing.T) {
		t.Parallel()
		sc := Screening{}
		missing := sc.MissingInputs(nil)
		if len(missing) != 6 {
			t.Fatalf("missing inputs = %v, want 6 entries", missing)
		}
	})

	t.Run("in-progress sessions do not count", func(t *testing.T) {
		t.Parallel()
		sc := Screening{}
		sessions := []GameSession{{GameType: GameLookAtCharacter, Status: SessionInProgress}}
		missing := sc.MissingInputs(sessions)
		for _, m := range missing {
			if m == string(MetricEyeContact) {
				return
			}
		}
		t.Fatalf("eye_contact should still be missing, got %v", missing)
	})

	t.Run("complete screening", func(t *testing.T) {
		t.Parallel()
		sc := Screening{
			QuestionnaireResponses: sql.NullString{String: "YYYYYYYYYYYYYYYYYYYY", Valid: true},
		}
		sessions := []GameSession{
			completed(GameLookAtCharacter),
			completed(GameWaveAtCharacter),
			completed(GameMakeCharacterHappy),
			completed(GameCopyTheFriend),
			completed(GameFreePlay),
		}
		if missing := sc.MissingInputs(sessions); len(missing) != 0 {
			t.Fatalf("missing inputs = %v, want none", missing)
		}
	})
}
