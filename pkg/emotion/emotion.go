package emotion

import (
	"LittleSteps/internal/entity"
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// ItfEmotion talks to the facial emotion inference service.
type ItfEmotion interface {
	AnalyzeEmotion(ctx context.Context, base64Image string) (*entity.EmotionResult, error)
	Health(ctx context.Context) error
}

type emotionClient struct {
	baseURL string
	client  *http.Client
}

func New() ItfEmotion {
	baseURL := os.Getenv("EMOTION_SERVICE_URL")
	if baseURL == "" {
		baseURL = "http://localhost:8001"
	}

	return &emotionClient{
		baseURL: baseURL,
		client: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

func (e *emotionClient) AnalyzeEmotion(ctx context.Context, base64Image string) (*entity.EmotionResult, error) {
	payload, err := json.Marshal(map[string]string{"image": base64Image})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, e.baseURL+"/analyze_emotion", bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := e.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("emotion service request failed: %w", err)
	}
	defer func(body io.ReadCloser) {
		if err := body.Close(); err != nil {
			fmt.Println("Failed to close response body")
		}
	}(resp.Body)

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("emotion service returned %d: %s", resp.StatusCode, string(body))
	}

	var result entity.EmotionResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to decode emotion response: %w", err)
	}

	return &result, nil
}

func (e *emotionClient) Health(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, e.baseURL+"/health", nil)
	if err != nil {
		return err
	}

	resp, err := e.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("emotion service unhealthy: %d", resp.StatusCode)
	}
	return nil
}
