package mlservice

import (
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

// BatchResult is the union of every analyzer's per-batch output. Each
// endpoint fills only the fields for its metric; the rest stay zero.
type BatchResult struct {
	EyeContactRatio float64 `json:"eyeContactRatio"`
	AverageEAR      float64 `json:"averageEAR"`
	AlignmentScore  float64 `json:"alignmentScore"`
	ContactFrames   int     `json:"contactFrames"`

	SmileRatio       float64 `json:"smileRatio"`
	SmileFrequency   int     `json:"smileFrequency"`
	MouthAspectRatio float64 `json:"mouthAspectRatio"`
	SmileFrames      int     `json:"smileFrames"`

	GestureFrequency  float64 `json:"gestureFrequency"`
	WaveCount         int     `json:"waveCount"`
	PointCount        int     `json:"pointCount"`
	HandMovementScore float64 `json:"handMovementScore"`

	RepetitiveRatio  float64 `json:"repetitiveRatio"`
	OscillationCount int     `json:"oscillationCount"`

	ImitationScore       float64 `json:"imitationScore"`
	SuccessfulImitations int     `json:"successfulImitations"`
	TotalAttempts        int     `json:"totalAttempts"`
	AverageDelay         float64 `json:"averageDelay"`

	TotalFrames    int     `json:"totalFrames"`
	Confidence     float64 `json:"confidence"`
	Interpretation string  `json:"interpretation"`
}

type ItfMLService interface {
	Analyze(ctx context.Context, metric string, frames []string, duration float64) (*BatchResult, error)
	Health(ctx context.Context) error
}

type mlClient struct {
	baseURL string
	client  *http.Client
}

func New() ItfMLService {
	baseURL := os.Getenv("ML_SERVICE_URL")
	if baseURL == "" {
		baseURL = "http://localhost:8000"
	}

	return &mlClient{
		baseURL: baseURL,
		client: &http.Client{
			Timeout: 60 * time.Second,
		},
	}
}

// metricPaths maps the internal metric name onto the analyzer route.
var metricPaths = map[string]string{
	"eye_contact": "/analyze/eye-contact",
	"gesture":     "/analyze/gesture",
	"smile":       "/analyze/smile",
	"repetitive":  "/analyze/repetitive",
	"imitation":   "/analyze/imitation",
}

func (m *mlClient) Analyze(ctx context.Context, metric string, frames []string, duration float64) (*BatchResult, error) {
	path, ok := metricPaths[metric]
	if !ok {
		return nil, fmt.Errorf("unknown metric %q", metric)
	}

	payload, err := json.Marshal(map[string]interface{}{
		"frames":   frames,
		"duration": duration,
	})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, m.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := m.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("analyzer request failed: %w", err)
	}
	defer func(body io.ReadCloser) {
		if err := body.Close(); err != nil {
			fmt.Println("Failed to close response body")
		}
	}(resp.Body)

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("analyzer returned %d: %s", resp.StatusCode, string(body))
	}

	var result BatchResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to decode analyzer response: %w", err)
	}

	return &result, nil
}

func (m *mlClient) Health(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, m.baseURL+"/health", nil)
	if err != nil {
		return err
	}

	resp, err := m.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("analyzer unhealthy: %d", resp.StatusCode)
	}
	return nil
}
