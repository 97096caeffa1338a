package analysisHandler

import (
	"encoding/base64"
	"time"

	"LittleSteps/internal/api/analysis"
	"github.com/gofiber/websocket/v2"
	"golang.org/x/net/context"
)

const emotionFrameTimeout = 15 * time.Second

// handleEmotionWebSocket classifies camera frames as they arrive so the
// app can show the child's emotional state during a game.
func (h *AnalysisHandler) handleEmotionWebSocket(c *websocket.Conn) {
	h.log.Info("Emotion WebSocket client connected")
	defer h.log.Info("Emotion WebSocket client disconnected")

	c.SetPingHandler(func(data string) error {
		if err := c.WriteControl(websocket.PongMessage, []byte(data), time.Now().Add(5*time.Second)); err != nil {
			h.log.Errorf("Error sending pong: %v", err)
		}
		return nil
	})

	maxReadTimeout := 60 * time.Second

	for {
		if err := c.SetReadDeadline(time.Now().Add(maxReadTimeout)); err != nil {
			h.log.Errorf("Error setting read deadline: %v", err)
			break
		}

		messageType, message, err := c.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				h.log.Errorf("Emotion WebSocket error: %v", err)
			} else {
				h.log.Info("Emotion WebSocket connection closed")
			}
			break
		}

		if messageType != websocket.BinaryMessage {
			h.log.Warnf("Received unexpected message type: %d", messageType)
			continue
		}

		result, err := h.classifyFrame(message)
		if err != nil {
			h.log.Errorf("Error classifying frame: %v", err)
			if writeErr := c.WriteJSON(map[string]string{"error": err.Error()}); writeErr != nil {
				h.log.Errorf("Error sending error response: %v", writeErr)
				break
			}
			continue
		}

		if err := c.SetWriteDeadline(time.Now().Add(10 * time.Second)); err != nil {
			h.log.Errorf("Error setting write deadline: %v", err)
			break
		}

		if err := c.WriteJSON(result); err != nil {
			h.log.Errorf("Error writing JSON response: %v", err)
			break
		}

		if err := c.SetWriteDeadline(time.Time{}); err != nil {
			h.log.Errorf("Error resetting write deadline: %v", err)
			break
		}
	}
}

func (h *AnalysisHandler) classifyFrame(frame []byte) (analysis.EmotionResponse, error) {
	ctx, cancel := context.WithTimeout(context.Background(), emotionFrameTimeout)
	defer cancel()

	return h.analysisService.AnalyzeEmotion(ctx, base64.StdEncoding.EncodeToString(frame))
}
