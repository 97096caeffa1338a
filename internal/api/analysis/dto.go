package analysis

type EmotionRequest struct {
	ImageBase64 string `json:"image_base64" validate:"required"`
}

type EmotionResponse struct {
	Emotion  string             `json:"emotion"`
	Emotions map[string]float64 `json:"emotions"`
	Source   string             `json:"source"`
}

type HealthResponse struct {
	EmotionService  string `json:"emotion_service"`
	AnalyzerService string `json:"analyzer_service"`
}
