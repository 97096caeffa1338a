package screeningService

import (
	"strings"
	"testing"

	"LittleSteps/internal/entity"
	"LittleSteps/pkg/nlp"
)

func TestRuleBasedInterpretation(t *testing.T) {
	t.Parallel()

	t.Run("high risk summary recommends evaluation", func(t *testing.T) {
		t.Parallel()
		c := componentScores{EyeContact: 80, Smile: 70, Gesture: 75, Repetitive: 65, Imitation: 70, Questionnaire: 80}
		i := ruleBasedInterpretation(c, 74, entity.RiskHigh)

		if !strings.Contains(i.Summary, "professional") {
			t.Fatalf("high risk summary should mention a professional evaluation: %q", i.Summary)
		}
		if !strings.Contains(i.Summary, "not a diagnosis") {
			t.Fatalf("summary must state it is not a diagnosis: %q", i.Summary)
		}
		if i.EyeContactInsights == "" || i.QuestionnaireInsights == "" {
			t.Fatal("every section must be populated")
		}
	})

	t.Run("low risk summary is reassuring", func(t *testing.T) {
		t.Parallel()
		c := componentScores{}
		i := ruleBasedInterpretation(c, 10, entity.RiskLow)

		if !strings.Contains(i.Summary, "typical") {
			t.Fatalf("low risk summary should describe typical behaviour: %q", i.Summary)
		}
	})

	t.Run("band selection follows component score", func(t *testing.T) {
		t.Parallel()
		high := ruleBasedInterpretation(componentScores{EyeContact: 70}, 20, entity.RiskLow)
		low := ruleBasedInterpretation(componentScores{EyeContact: 10}, 20, entity.RiskLow)
		if high.EyeContactInsights == low.EyeContactInsights {
			t.Fatal("eye contact insight should vary with the component score")
		}
	})
}

func TestRuleBasedRecommendations(t *testing.T) {
	t.Parallel()

	t.Run("concern domains add targeted advice", func(t *testing.T) {
		t.Parallel()
		c := componentScores{EyeContact: 60, Gesture: 60}
		recs := ruleBasedRecommendations(c, entity.RiskModerate)

		var foundEye, foundGesture bool
		for _, r := range recs {
			if strings.Contains(r, "eye contact") {
				foundEye = true
			}
			if strings.Contains(r, "waving and pointing") {
				foundGesture = true
			}
		}
		if !foundEye || !foundGesture {
			t.Fatalf("expected targeted advice for both domains, got %v", recs)
		}
	})

	t.Run("fits under disclaimer cap", func(t *testing.T) {
		t.Parallel()
		c := componentScores{EyeContact: 90, Smile: 90, Gesture: 90, Repetitive: 90, Imitation: 90, Questionnaire: 90}
		recs := nlp.EnsureDisclaimer(ruleBasedRecommendations(c, entity.RiskHigh))

		if len(recs) > nlp.MaxRecommendations {
			t.Fatalf("got %d recommendations, cap is %d", len(recs), nlp.MaxRecommendations)
		}
		if recs[len(recs)-1] != nlp.Disclaimer {
			t.Fatal("disclaimer must close the list")
		}
	})
}

func TestBuildRecommendationPrompt(t *testing.T) {
	t.Parallel()

	prompt := buildRecommendationPrompt(componentScores{Repetitive: 75}, entity.RiskModerate)
	if !strings.Contains(prompt, "repetitive movement") {
		t.Fatalf("prompt should name the concern domain: %q", prompt)
	}

	clean := buildRecommendationPrompt(componentScores{}, entity.RiskLow)
	if !strings.Contains(clean, "No individual domain") {
		t.Fatalf("prompt should note when nothing stood out: %q", clean)
	}
}
