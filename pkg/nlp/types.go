package nlp

// Interpretation is the parsed, per-domain breakdown of a screening
// narrative, either AI-generated or rule-based.
type Interpretation struct {
	Summary               string   `json:"summary"`
	EyeContactInsights    string   `json:"eyeContactInsights"`
	GestureInsights       string   `json:"gestureInsights"`
	SmileInsights         string   `json:"smileInsights"`
	RepetitiveInsights    string   `json:"repetitiveInsights"`
	ImitationInsights     string   `json:"imitationInsights"`
	QuestionnaireInsights string   `json:"questionnaireInsights"`
	Recommendations       []string `json:"recommendations"`
}
