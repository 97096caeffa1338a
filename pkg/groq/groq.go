package groq

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/sashabaranov/go-openai"
)

// ErrNotConfigured is returned when no API key is set. Callers fall back
// to rule-based text generation.
var ErrNotConfigured = errors.New("groq api key not configured")

type IGroq interface {
	GenerateInterpretation(ctx context.Context, prompt string) (string, error)
	GenerateRecommendations(ctx context.Context, prompt string) (string, error)
}

type groqService struct {
	client *openai.Client
	model  string
}

// New builds a Groq client on the OpenAI-compatible endpoint.
func New() IGroq {
	apiKey := os.Getenv("GROQ_API_KEY")

	baseURL := os.Getenv("GROQ_BASE_URL")
	if baseURL == "" {
		baseURL = "https://api.groq.com/openai/v1"
	}

	model := os.Getenv("GROQ_MODEL")
	if model == "" {
		model = "llama-3.3-70b-versatile"
	}

	var client *openai.Client
	if apiKey != "" {
		config := openai.DefaultConfig(apiKey)
		config.BaseURL = baseURL
		client = openai.NewClientWithConfig(config)
	}

	return &groqService{
		client: client,
		model:  model,
	}
}

func (g *groqService) GenerateInterpretation(ctx context.Context, prompt string) (string, error) {
	return g.complete(ctx, interpretationSystemPrompt, prompt, 0.3, 1200)
}

func (g *groqService) GenerateRecommendations(ctx context.Context, prompt string) (string, error) {
	return g.complete(ctx, recommendationSystemPrompt, prompt, 0.4, 800)
}

func (g *groqService) complete(ctx context.Context, systemPrompt, userPrompt string, temperature float32, maxTokens int) (string, error) {
	if g.client == nil {
		return "", ErrNotConfigured
	}

	resp, err := g.client.CreateChatCompletion(
		ctx,
		openai.ChatCompletionRequest{
			Model: g.model,
			Messages: []openai.ChatCompletionMessage{
				{
					Role:    openai.ChatMessageRoleSystem,
					Content: systemPrompt,
				},
				{
					Role:    openai.ChatMessageRoleUser,
					Content: userPrompt,
				},
			},
			Temperature: temperature,
			MaxTokens:   maxTokens,
		},
	)

	if err != nil {
		return "", fmt.Errorf("groq API error: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no response from groq")
	}

	return resp.Choices[0].Message.Content, nil
}

const interpretationSystemPrompt = `You are a pediatric developmental specialist assistant. You interpret behavioural screening metrics collected while a toddler played short observation games.

Write for a worried parent: plain language, warm tone, no medical jargon.

Structure your answer with exactly these section headers, each on its own line:
SUMMARY:
EYE CONTACT:
GESTURES:
SMILING:
REPETITIVE BEHAVIOR:
IMITATION:
QUESTIONNAIRE:

Rules:
- Never diagnose. Describe observed patterns only.
- Two to three sentences per section.
- Always note that a screening result is not a diagnosis.`

const recommendationSystemPrompt = `You are a pediatric developmental specialist assistant. Given a child's screening result, produce practical next-step recommendations for the parent.

Rules:
- Return a plain list, one recommendation per line, no numbering required.
- At most 7 recommendations.
- Concrete actions only (activities, professionals to consult, observation tips).
- Never diagnose.`
