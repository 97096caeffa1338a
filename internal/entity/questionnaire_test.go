package entity

import (
	"testing"
)

func allResponses(v bool) []bool {
	responses := make([]bool, QuestionnaireLength)
	for i := range responses {
		responses[i] = v
	}
	return responses
}

func TestQuestionnaireValidate(t *testing.T) {
	t.Parallel()

	q := QuestionnaireResult{Responses: make([]bool, 19)}
	if err := q.Validate(); err == nil {
		t.Fatal("expected error for 19 responses, got nil")
	}

	q.Responses = allResponses(true)
	if err := q.Validate(); err != nil {
		t.Fatalf("unexpected error for 20 responses: %v", err)
	}
}

func TestQuestionnaireComputeScore(t *testing.T) {
	t.Parallel()

	t.Run("all typical answers score zero", func(t *testing.T) {
		t.Parallel()
		q := QuestionnaireResult{Responses: allResponses(true)}
		if got := q.ComputeScore(); got != 0 {
			t.Fatalf("ComputeScore() = %v, want 0", got)
		}
	})

	t.Run("all atypical answers score one", func(t *testing.T) {
		t.Parallel()
		q := QuestionnaireResult{Responses: allResponses(false)}
		if got := q.ComputeScore(); got != 1 {
			t.Fatalf("ComputeScore() = %v, want 1", got)
		}
	})

	t.Run("single no in a pair still fires the marker", func(t *testing.T) {
		t.Parallel()
		responses := allResponses(true)
		responses[0] = false
		q := QuestionnaireResult{Responses: responses}

		markers := q.DeriveMarkers()
		if markers[0] != 1 {
			t.Fatalf("markers[0] = %d, want 1", markers[0])
		}
		if got, want := q.ComputeScore(), 0.1; got != want {
			t.Fatalf("ComputeScore() = %v, want %v", got, want)
		}
	})
}

func TestQuestionnaireRiskLevel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		score float64
		want  RiskLevel
	}{
		{0, RiskLow},
		{0.39, RiskLow},
		{0.40, RiskModerate},
		{0.69, RiskModerate},
		{0.70, RiskHigh},
		{1, RiskHigh},
	}

	for _, tt := range tests {
		if got := QuestionnaireRiskLevel(tt.score); got != tt.want {
			t.Fatalf("QuestionnaireRiskLevel(%v) = %v, want %v", tt.score, got, tt.want)
		}
	}
}

func TestEncodeDecodeResponses(t *testing.T) {
	t.Parallel()

	responses := allResponses(true)
	responses[3] = false
	responses[17] = false

	encoded := EncodeResponses(responses)
	if len(encoded) != QuestionnaireLength {
		t.Fatalf("encoded length = %d, want %d", len(encoded), QuestionnaireLength)
	}

	decoded, err := DecodeResponses(encoded)
	if err != nil {
		t.Fatalf("DecodeResponses() error = %v", err)
	}

	for i := range responses {
		if decoded[i] != responses[i] {
			t.Fatalf("decoded[%d] = %v, want %v", i, decoded[i], responses[i])
		}
	}

	if _, err := DecodeResponses("YYXX"); err == nil {
		t.Fatal("expected error for malformed encoding, got nil")
	}
}
