package nlp

import (
	"strings"
	"testing"
)

func TestParseInterpretation(t *testing.T) {
	t.Parallel()

	t.Run("clean sections", func(t *testing.T) {
		t.Parallel()
		text := `SUMMARY: Overall the observations were typical.
EYE CONTACT: Eye contact was steady.
GESTURES: Waving and pointing were frequent.
SMILING: Smiles came easily.
REPETITIVE BEHAVIOR: Little repetition was seen.
IMITATION: Actions were copied quickly.
QUESTIONNAIRE: Answers described typical behaviour.`

		got := ParseInterpretation(text)

		if got.Summary != "Overall the observations were typical." {
			t.Fatalf("Summary = %q", got.Summary)
		}
		if got.EyeContactInsights != "Eye contact was steady." {
			t.Fatalf("EyeContactInsights = %q", got.EyeContactInsights)
		}
		if got.QuestionnaireInsights != "Answers described typical behaviour." {
			t.Fatalf("QuestionnaireInsights = %q", got.QuestionnaireInsights)
		}
	})

	t.Run("markdown decorated headers", func(t *testing.T) {
		t.Parallel()
		text := "## SUMMARY\nAll good.\n**EYE CONTACT:** Strong.\n"

		got := ParseInterpretation(text)

		if got.Summary != "All good." {
			t.Fatalf("Summary = %q", got.Summary)
		}
		if got.EyeContactInsights != "Strong." {
			t.Fatalf("EyeContactInsights = %q", got.EyeContactInsights)
		}
	})

	t.Run("preamble lands in summary", func(t *testing.T) {
		t.Parallel()
		text := "Here is the interpretation.\nEYE CONTACT: Fine.\n"

		got := ParseInterpretation(text)

		if got.Summary != "Here is the interpretation." {
			t.Fatalf("Summary = %q", got.Summary)
		}
	})

	t.Run("multi-line sections join", func(t *testing.T) {
		t.Parallel()
		text := "SUMMARY:\nFirst sentence.\nSecond sentence.\n"

		got := ParseInterpretation(text)

		if got.Summary != "First sentence. Second sentence." {
			t.Fatalf("Summary = %q", got.Summary)
		}
	})
}

func TestParseRecommendations(t *testing.T) {
	t.Parallel()

	text := `- Play peek-a-boo daily.
* Visit a pediatrician.
1. Keep a behaviour diary.

2) Repeat the screening in three months.`

	got := ParseRecommendations(text, 10)

	want := []string{
		"Play peek-a-boo daily.",
		"Visit a pediatrician.",
		"Keep a behaviour diary.",
		"Repeat the screening in three months.",
	}

	if len(got) != len(want) {
		t.Fatalf("got %d recommendations, want %d: %v", len(got), len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("recommendation[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestParseRecommendationsLimit(t *testing.T) {
	t.Parallel()

	text := strings.Repeat("do something\n", 20)
	if got := ParseRecommendations(text, 3); len(got) != 3 {
		t.Fatalf("got %d recommendations, want 3", len(got))
	}
}

func TestEnsureDisclaimer(t *testing.T) {
	t.Parallel()

	t.Run("appends when missing", func(t *testing.T) {
		t.Parallel()
		recs := EnsureDisclaimer([]string{"See a specialist."})
		if recs[len(recs)-1] != Disclaimer {
			t.Fatalf("last entry = %q, want disclaimer", recs[len(recs)-1])
		}
	})

	t.Run("does not duplicate", func(t *testing.T) {
		t.Parallel()
		recs := EnsureDisclaimer([]string{"See a specialist.", Disclaimer})
		count := 0
		for _, r := range recs {
			if r == Disclaimer {
				count++
			}
		}
		if count != 1 {
			t.Fatalf("disclaimer appears %d times, want 1", count)
		}
	})

	t.Run("truncates to fit", func(t *testing.T) {
		t.Parallel()
		long := make([]string, MaxRecommendations+3)
		for i := range long {
			long[i] = "advice"
		}
		recs := EnsureDisclaimer(long)
		if len(recs) != MaxRecommendations {
			t.Fatalf("got %d recommendations, want %d", len(recs), MaxRecommendations)
		}
		if recs[len(recs)-1] != Disclaimer {
			t.Fatalf("last entry = %q, want disclaimer", recs[len(recs)-1])
		}
	})
}
