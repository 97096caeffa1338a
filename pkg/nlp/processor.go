package nlp

import (
	"strings"
)

const Disclaimer = "⚠️ IMPORTANT: This is a screening tool, NOT a diagnosis. Only qualified healthcare professionals can diagnose autism."

// MaxRecommendations caps the list shown to parents, disclaimer included.
const MaxRecommendations = 8

// sectionMarkers maps response headers onto Interpretation fields. The
// generation prompt asks for exactly these headers, but models drift, so
// matching is case-insensitive and tolerant of markdown decoration.
var sectionMarkers = []struct {
	header string
	assign func(*Interpretation, string)
}{
	{"SUMMARY", func(i *Interpretation, s string) { i.Summary = s }},
	{"EYE CONTACT", func(i *Interpretation, s string) { i.EyeContactInsights = s }},
	{"GESTURES", func(i *Interpretation, s string) { i.GestureInsights = s }},
	{"SMILING", func(i *Interpretation, s string) { i.SmileInsights = s }},
	{"REPETITIVE BEHAVIOR", func(i *Interpretation, s string) { i.RepetitiveInsights = s }},
	{"IMITATION", func(i *Interpretation, s string) { i.ImitationInsights = s }},
	{"QUESTIONNAIRE", func(i *Interpretation, s string) { i.QuestionnaireInsights = s }},
}

// ParseInterpretation splits a sectioned narrative into its per-domain
// insights. Text before the first recognized header lands in Summary.
func ParseInterpretation(text string) *Interpretation {
	result := &Interpretation{}

	lines := strings.Split(text, "\n")
	current := -1
	var buf []string

	flush := func() {
		content := strings.TrimSpace(strings.Join(buf, " "))
		buf = buf[:0]
		if content == "" {
			return
		}
		if current == -1 {
			if result.Summary == "" {
				result.Summary = content
			}
			return
		}
		sectionMarkers[current].assign(result, content)
	}

	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if idx := matchHeader(trimmed); idx != -1 {
			flush()
			current = idx

			rest := trimmed[strings.Index(strings.ToUpper(trimmed), sectionMarkers[idx].header)+len(sectionMarkers[idx].header):]
			rest = strings.TrimLeft(rest, ":* \t")
			if rest != "" {
				buf = append(buf, rest)
			}
			continue
		}
		if trimmed != "" {
			buf = append(buf, trimmed)
		}
	}
	flush()

	return result
}

func matchHeader(line string) int {
	upper := strings.ToUpper(strings.TrimLeft(line, "#* "))
	for i, marker := range sectionMarkers {
		if strings.HasPrefix(upper, marker.header) {
			return i
		}
	}
	return -1
}

// ParseRecommendations extracts one recommendation per non-empty line,
// stripping bullets and numbering, keeping at most limit entries.
func ParseRecommendations(text string, limit int) []string {
	var recs []string
	for _, line := range strings.Split(text, "\n") {
		item := strings.TrimSpace(line)
		item = strings.TrimLeft(item, "-*•0123456789.) \t")
		if item == "" {
			continue
		}
		recs = append(recs, item)
		if len(recs) >= limit {
			break
		}
	}
	return recs
}

// EnsureDisclaimer guarantees the screening disclaimer closes the list.
func EnsureDisclaimer(recs []string) []string {
	for _, r := range recs {
		if r == Disclaimer {
			return recs
		}
	}
	if len(recs) >= MaxRecommendations {
		recs = recs[:MaxRecommendations-1]
	}
	return append(recs, Disclaimer)
}
