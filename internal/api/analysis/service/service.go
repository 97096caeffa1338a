package analysisService

import (
	"LittleSteps/internal/api/analysis"
	"LittleSteps/pkg/emotion"
	"LittleSteps/pkg/gemini"
	"LittleSteps/pkg/mlservice"
	"context"
	"github.com/sirupsen/logrus"
)

type AnalysisService interface {
	AnalyzeEmotion(c context.Context, base64Image string) (analysis.EmotionResponse, error)
	Health(c context.Context) analysis.HealthResponse
}

type analysisService struct {
	log           *logrus.Logger
	emotionClient emotion.ItfEmotion
	geminiClient  gemini.IGemini
	mlClient      mlservice.ItfMLService
}

func New(log *logrus.Logger,
	emotionClient emotion.ItfEmotion,
	geminiClient gemini.IGemini,
	mlClient mlservice.ItfMLService,
) AnalysisService {
	return &analysisService{
		log:           log,
		emotionClient: emotionClient,
		geminiClient:  geminiClient,
		mlClient:      mlClient,
	}
}
