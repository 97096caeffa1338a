package entity

type EmotionResult struct {
	DominantEmotion string             `json:"emotion"`
	Scores          map[string]float64 `json:"emotions"`
	Status          string             `json:"status"`
}

type Position struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// LiveGuidance is what the realtime attention service pushes back per
// frame: whether the child's face is centred and how to correct it.
type LiveGuidance struct {
	Status       string    `json:"status"`
	Instructions []string  `json:"instructions"`
	FacePosition *Position `json:"face_position,omitempty"`
	FrameCenter  *Position `json:"frame_center,omitempty"`
	Deviations   *Position `json:"deviations,omitempty"`
}

type LiveGestureEvent struct {
	Gesture    string  `json:"gesture"`
	Confidence float64 `json:"confidence"`
	Detected   bool    `json:"detected"`
}
