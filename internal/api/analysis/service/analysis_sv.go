package analysisService

import (
	"LittleSteps/internal/api/analysis"
	contextPkg "LittleSteps/pkg/context"
	"context"
	"strings"

	"github.com/sirupsen/logrus"
)

const geminiEmotionPrompt = `Look at the child's face in this image and answer with exactly one word naming the dominant emotion. Choose from: happy, sad, angry, fear, surprise, disgust, neutral.`

// AnalyzeEmotion runs the dedicated emotion service first and falls back
// to Gemini when it is unreachable.
func (s *analysisService) AnalyzeEmotion(ctx context.Context, base64Image string) (analysis.EmotionResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	if base64Image == "" {
		return analysis.EmotionResponse{}, analysis.ErrInvalidImage
	}

	result, err := s.emotionClient.AnalyzeEmotion(ctx, base64Image)
	if err == nil {
		if result.Status == "no_face" {
			return analysis.EmotionResponse{}, analysis.ErrNoFaceInFrame
		}
		return analysis.EmotionResponse{
			Emotion:  result.DominantEmotion,
			Emotions: result.Scores,
			Source:   "deepface",
		}, nil
	}

	s.log.WithFields(logrus.Fields{
		"request_id": requestID,
		"error":      err.Error(),
	}).Warn("Emotion service unreachable, falling back to Gemini")

	text, err := s.geminiClient.AnalyzeImage(ctx, base64Image, geminiEmotionPrompt)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Gemini fallback failed")
		return analysis.EmotionResponse{}, analysis.ErrEmotionUnavailable
	}

	emotionWord := strings.ToLower(strings.TrimSpace(strings.Trim(text, ".!\"' \n")))

	return analysis.EmotionResponse{
		Emotion: emotionWord,
		Source:  "gemini",
	}, nil
}

// Health probes the downstream inference services.
func (s *analysisService) Health(ctx context.Context) analysis.HealthResponse {
	res := analysis.HealthResponse{
		EmotionService:  "ok",
		AnalyzerService: "ok",
	}

	if err := s.emotionClient.Health(ctx); err != nil {
		res.EmotionService = "unavailable"
	}
	if err := s.mlClient.Health(ctx); err != nil {
		res.AnalyzerService = "unavailable"
	}

	return res
}
