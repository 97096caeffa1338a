package screeningService

import (
	"LittleSteps/internal/entity"
	contextPkg "LittleSteps/pkg/context"
	"LittleSteps/pkg/groq"
	"LittleSteps/pkg/nlp"
	"errors"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

// generateInterpretation asks the language model for a parent-facing
// narrative and falls back to rule-based text when the model is not
// configured or fails.
func (s *screeningDomainImpl) generateInterpretation(ctx context.Context, child entity.Child, components componentScores, likelihood float64, risk entity.RiskLevel) *nlp.Interpretation {
	requestID := contextPkg.GetRequestID(ctx)

	prompt := buildInterpretationPrompt(child, components, likelihood, risk)

	text, err := s.groqClient.GenerateInterpretation(ctx, prompt)
	if err != nil {
		if !errors.Is(err, groq.ErrNotConfigured) {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"error":      err.Error(),
			}).Warn("Interpretation generation failed, using rule-based text")
		}
		interpretation := ruleBasedInterpretation(components, likelihood, risk)
		interpretation.Recommendations = s.generateRecommendations(ctx, components, risk)
		return interpretation
	}

	interpretation := nlp.ParseInterpretation(text)
	if interpretation.Summary == "" {
		interpretation = ruleBasedInterpretation(components, likelihood, risk)
	}

	interpretation.Recommendations = s.generateRecommendations(ctx, components, risk)
	return interpretation
}

func (s *screeningDomainImpl) generateRecommendations(ctx context.Context, components componentScores, risk entity.RiskLevel) []string {
	requestID := contextPkg.GetRequestID(ctx)

	prompt := buildRecommendationPrompt(components, risk)

	text, err := s.groqClient.GenerateRecommendations(ctx, prompt)
	if err != nil {
		if !errors.Is(err, groq.ErrNotConfigured) {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"error":      err.Error(),
			}).Warn("Recommendation generation failed, using rule-based list")
		}
		return nlp.EnsureDisclaimer(ruleBasedRecommendations(components, risk))
	}

	recs := nlp.ParseRecommendations(text, nlp.MaxRecommendations-1)
	if len(recs) == 0 {
		recs = ruleBasedRecommendations(components, risk)
	}

	return nlp.EnsureDisclaimer(recs)
}

func buildInterpretationPrompt(child entity.Child, components componentScores, likelihood float64, risk entity.RiskLevel) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Child age: %d months, sex: %s.\n", child.AgeInMonths(timeNow()), child.Sex)
	fmt.Fprintf(&b, "Overall screening likelihood: %.1f/100 (%s risk).\n\n", likelihood, risk)
	b.WriteString("Per-domain risk scores (0-100, higher is more atypical):\n")
	fmt.Fprintf(&b, "- Eye contact: %.1f\n", components.EyeContact)
	fmt.Fprintf(&b, "- Gestures: %.1f\n", components.Gesture)
	fmt.Fprintf(&b, "- Social smiling: %.1f\n", components.Smile)
	fmt.Fprintf(&b, "- Repetitive behavior: %.1f\n", components.Repetitive)
	fmt.Fprintf(&b, "- Imitation: %.1f\n", components.Imitation)
	fmt.Fprintf(&b, "- Parent questionnaire: %.1f\n", components.Questionnaire)

	return b.String()
}

func buildRecommendationPrompt(components componentScores, risk entity.RiskLevel) string {
	var concerns []string
	if components.EyeContact >= 50 {
		concerns = append(concerns, "eye contact")
	}
	if components.Gesture >= 50 {
		concerns = append(concerns, "gesture use")
	}
	if components.Smile >= 50 {
		concerns = append(concerns, "social smiling")
	}
	if components.Repetitive >= 50 {
		concerns = append(concerns, "repetitive movement")
	}
	if components.Imitation >= 50 {
		concerns = append(concerns, "imitation")
	}

	if len(concerns) == 0 {
		return fmt.Sprintf("Screening risk level: %s. No individual domain stood out. Suggest general developmental activities for a toddler.", risk)
	}

	return fmt.Sprintf("Screening risk level: %s. Domains of concern: %s. Suggest next steps for the parent.", risk, strings.Join(concerns, ", "))
}

// ruleBasedInterpretation produces deterministic parent-facing text when
// the language model is unavailable.
func ruleBasedInterpretation(components componentScores, likelihood float64, risk entity.RiskLevel) *nlp.Interpretation {
	i := &nlp.Interpretation{}

	switch risk {
	case entity.RiskHigh:
		i.Summary = fmt.Sprintf("The screening observed several behavioural patterns that are less common for this age, with an overall likelihood score of %.0f out of 100. This result suggests a professional developmental evaluation would be worthwhile. A screening is not a diagnosis.", likelihood)
	case entity.RiskModerate:
		i.Summary = fmt.Sprintf("The screening observed some behavioural patterns worth keeping an eye on, with an overall likelihood score of %.0f out of 100. Consider discussing these observations with your pediatrician. A screening is not a diagnosis.", likelihood)
	default:
		i.Summary = fmt.Sprintf("The screening observed behaviour largely typical for this age, with an overall likelihood score of %.0f out of 100. Continue ordinary play and check-ups. A screening is not a diagnosis.", likelihood)
	}

	switch {
	case components.EyeContact >= 60:
		i.EyeContactInsights = "Your child made noticeably little eye contact with the on-screen character during the game. Reduced eye contact at this age is one of the patterns specialists pay attention to."
	case components.EyeContact >= 35:
		i.EyeContactInsights = "Your child made some eye contact with the on-screen character, though less consistently than is typical. This can vary a lot day to day."
	default:
		i.EyeContactInsights = "Your child made good, steady eye contact with the on-screen character. This is a typical pattern for this age."
	}

	switch {
	case components.Gesture >= 60:
		i.GestureInsights = "Your child used few communicative gestures like waving or pointing during the game. Gestures are an important early communication channel."
	case components.Gesture >= 35:
		i.GestureInsights = "Your child used some gestures, though fewer than many children this age. Encouraging games that involve waving and pointing can help."
	default:
		i.GestureInsights = "Your child waved and pointed readily during the game, which is a typical pattern for this age."
	}

	switch {
	case components.Smile >= 60:
		i.SmileInsights = "Your child smiled rarely in response to the playful prompts. Reduced social smiling is one of the signals this screening watches for."
	case components.Smile >= 35:
		i.SmileInsights = "Your child smiled at some of the playful prompts, though a little less often than is typical."
	default:
		i.SmileInsights = "Your child smiled readily during the game, a healthy sign of social engagement."
	}

	switch {
	case components.Repetitive >= 60:
		i.RepetitiveInsights = "The camera observed frequent repetitive movements such as rocking or hand flapping during free play. Frequent repetition is worth mentioning to a professional."
	case components.Repetitive >= 35:
		i.RepetitiveInsights = "The camera observed occasional repetitive movements during free play. Occasional repetition is common in toddlers."
	default:
		i.RepetitiveInsights = "The camera observed little repetitive movement during free play, which is typical."
	}

	switch {
	case components.Imitation >= 60:
		i.ImitationInsights = "Your child imitated few of the demonstrated actions, or responded with a long delay. Imitation is a key way toddlers learn social skills."
	case components.Imitation >= 35:
		i.ImitationInsights = "Your child imitated some of the demonstrated actions, though not always promptly."
	default:
		i.ImitationInsights = "Your child copied the demonstrated actions quickly and accurately, which is a typical pattern."
	}

	switch {
	case components.Questionnaire >= 70:
		i.QuestionnaireInsights = "Your questionnaire answers indicated several behaviours that specialists associate with elevated screening risk."
	case components.Questionnaire >= 40:
		i.QuestionnaireInsights = "Your questionnaire answers indicated a few behaviours worth monitoring over the coming months."
	default:
		i.QuestionnaireInsights = "Your questionnaire answers described behaviour typical for this age."
	}

	return i
}

func ruleBasedRecommendations(components componentScores, risk entity.RiskLevel) []string {
	var recs []string

	if risk == entity.RiskHigh {
		recs = append(recs, "Schedule a developmental evaluation with a pediatrician or child psychologist.")
	} else if risk == entity.RiskModerate {
		recs = append(recs, "Mention these screening observations at your next pediatric check-up.")
	} else {
		recs = append(recs, "Continue regular well-child visits and everyday interactive play.")
	}

	if components.EyeContact >= 50 {
		recs = append(recs, "Practice face-to-face games like peek-a-boo to encourage eye contact.")
	}
	if components.Gesture >= 50 {
		recs = append(recs, "Model waving and pointing during daily routines and celebrate when your child copies you.")
	}
	if components.Smile >= 50 {
		recs = append(recs, "Build in playful back-and-forth moments, like tickles and silly faces, several times a day.")
	}
	if components.Repetitive >= 50 {
		recs = append(recs, "Keep a short diary of when repetitive movements happen to share with a professional.")
	}
	if components.Imitation >= 50 {
		recs = append(recs, "Play simple copy-me games with claps and arm movements, keeping the actions slow and clear.")
	}

	recs = append(recs, "Repeat this screening in about three months to track changes over time.")

	return recs
}
