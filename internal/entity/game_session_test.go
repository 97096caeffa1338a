package entity

import (
	"testing"

	sessionDomain "LittleSteps/internal/api/session"
	"errors"
)

func TestGameTypeMetric(t *testing.T) {
	t.Parallel()

	tests := []struct {
		game GameType
		want MetricKind
	}{
		{GameLookAtCharacter, MetricEyeContact},
		{GameWaveAtCharacter, MetricGesture},
		{GameMakeCharacterHappy, MetricSmile},
		{GameCopyTheFriend, MetricImitation},
		{GameFreePlay, MetricRepetitive},
	}

	for _, tt := range tests {
		if got := tt.game.Metric(); got != tt.want {
			t.Fatalf("%s.Metric() = %v, want %v", tt.game, got, tt.want)
		}
	}
}

func TestIsValidGameType(t *testing.T) {
	t.Parallel()

	if !IsValidGameType("look_at_character") {
		t.Fatal("look_at_character should be valid")
	}
	if IsValidGameType("peekaboo") {
		t.Fatal("peekaboo should not be valid")
	}
	if IsValidGameType("") {
		t.Fatal("empty string should not be valid")
	}
}

func TestCanIngestFrames(t *testing.T) {
	t.Parallel()

	s := GameSession{Status: SessionInProgress}
	if err := s.CanIngestFrames(); err != nil {
		t.Fatalf("unexpected error for in-progress session: %v", err)
	}

	s.Status = SessionCompleted
	if err := s.CanIngestFrames(); !errors.Is(err, sessionDomain.ErrSessionNotActive) {
		t.Fatalf("error = %v, want ErrSessionNotActive", err)
	}

	s.Status = SessionAbandoned
	if err := s.CanIngestFrames(); !errors.Is(err, sessionDomain.ErrSessionNotActive) {
		t.Fatalf("error = %v, want ErrSessionNotActive", err)
	}
}
