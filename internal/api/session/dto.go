package session

type StartSessionRequest struct {
	ChildID  string `json:"child_id" validate:"required"`
	GameType string `json:"game_type" validate:"required,gametype"`
}

type FrameBatchRequest struct {
	Frames []string `json:"frames" validate:"required,min=1,max=60,dive,required"`
}

type FrameBatchResponse struct {
	SessionID      string `json:"session_id"`
	Status         string `json:"status"`
	BatchesSoFar   int    `json:"batches_so_far"`
	EventDetected  bool   `json:"event_detected"`
	Interpretation string `json:"interpretation,omitempty"`
}

type MetricResultResponse struct {
	Metric         string  `json:"metric"`
	Value          float64 `json:"value"`
	Interpretation string  `json:"interpretation"`
	Confidence     float64 `json:"confidence"`
}

type SessionResponse struct {
	ID             string  `json:"id"`
	ChildID        string  `json:"child_id"`
	GameType       string  `json:"game_type"`
	Metric         string  `json:"metric"`
	Status         string  `json:"status"`
	FrameCount     int     `json:"frame_count"`
	Duration       float64 `json:"duration_seconds"`
	VideoURL       string  `json:"video_url,omitempty"`
	Confidence     float64 `json:"confidence"`
	Interpretation string  `json:"interpretation,omitempty"`

	EyeContactRatio      float64 `json:"eye_contact_ratio,omitempty"`
	AlignmentScore       float64 `json:"alignment_score,omitempty"`
	SmileRatio           float64 `json:"smile_ratio,omitempty"`
	SmileFrequency       int     `json:"smile_frequency,omitempty"`
	GestureCount         int     `json:"gesture_count,omitempty"`
	WaveCount            int     `json:"wave_count,omitempty"`
	PointCount           int     `json:"point_count,omitempty"`
	RepetitiveRatio      float64 `json:"repetitive_ratio,omitempty"`
	OscillationCount     int     `json:"oscillation_count,omitempty"`
	ImitationScore       float64 `json:"imitation_score,omitempty"`
	SuccessfulImitations int     `json:"successful_imitations,omitempty"`
	TotalAttempts        int     `json:"total_attempts,omitempty"`
	AverageDelayMs       float64 `json:"average_delay_ms,omitempty"`

	StartedAt   string `json:"started_at"`
	CompletedAt string `json:"completed_at,omitempty"`
}

type SessionListResponse struct {
	Sessions []SessionResponse `json:"sessions"`
	Total    int               `json:"total"`
}
