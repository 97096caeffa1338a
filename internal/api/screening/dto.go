package screening

type CreateScreeningRequest struct {
	ChildID string `json:"child_id" validate:"required"`
}

type QuestionnaireRequest struct {
	Responses []bool `json:"responses" validate:"required,len=20"`
}

type QuestionnaireResponse struct {
	Score      float64 `json:"score"`
	RiskLevel  string  `json:"risk_level"`
	Markers    []int   `json:"markers"`
	AgeMonths  int     `json:"age_months"`
	Sex        string  `json:"sex"`
	Jaundice   bool    `json:"jaundice"`
	FamilyASD  bool    `json:"family_asd"`
	Confidence float64 `json:"confidence"`
}

type StatusResponse struct {
	ID            string   `json:"id"`
	Status        string   `json:"status"`
	Complete      bool     `json:"complete"`
	MissingInputs []string `json:"missing_inputs,omitempty"`
}

type ComponentScores struct {
	EyeContact    float64 `json:"eyeContact"`
	Smile         float64 `json:"smile"`
	Gesture       float64 `json:"gesture"`
	Repetitive    float64 `json:"repetitive"`
	Imitation     float64 `json:"imitation"`
	Questionnaire float64 `json:"questionnaire"`
}

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

type ScreeningResponse struct {
	ID               string           `json:"id"`
	ChildID          string           `json:"child_id"`
	Status           string           `json:"status"`
	AutismLikelihood float64          `json:"autism_likelihood"`
	RiskLevel        string           `json:"risk_level,omitempty"`
	ComponentScores  *ComponentScores `json:"component_scores,omitempty"`
	Interpretation   *Interpretation  `json:"interpretation,omitempty"`
	CreatedAt        string           `json:"created_at"`
	FinalizedAt      string           `json:"finalized_at,omitempty"`
}

type ScreeningListResponse struct {
	Screenings []ScreeningResponse `json:"screenings"`
	Total      int                 `json:"total"`
}
