package sessionHandler

import (
	"time"

	websocketPkg "LittleSteps/pkg/websocket"
	"github.com/gofiber/websocket/v2"
)

// handleAttentionWebSocket relays camera frames to the attention
// coaching service and streams positioning guidance back to the app.
func (h *SessionHandler) handleAttentionWebSocket(c *websocket.Conn) {
	h.log.Info("Attention coaching WebSocket client connected")
	defer h.log.Info("Attention coaching WebSocket client disconnected")

	h.relayFrames(c, func(frame []byte) (interface{}, error) {
		return h.liveClient.ProcessAttentionFrame(frame)
	}, websocketPkg.AttentionChannel)
}

// handleGestureWebSocket relays camera frames to the gesture detection
// service so the game can react to waves and points in real time.
func (h *SessionHandler) handleGestureWebSocket(c *websocket.Conn) {
	h.log.Info("Gesture detection WebSocket client connected")
	defer h.log.Info("Gesture detection WebSocket client disconnected")

	h.relayFrames(c, func(frame []byte) (interface{}, error) {
		return h.liveClient.ProcessGestureFrame(frame)
	}, websocketPkg.GestureChannel)
}

func (h *SessionHandler) relayFrames(c *websocket.Conn, process func([]byte) (interface{}, error), channel websocketPkg.Channel) {
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
				h.log.Errorf("%s WebSocket error: %v", channel, err)
			} else {
				h.log.Infof("%s WebSocket connection closed", channel)
			}
			break
		}

		if messageType != websocket.BinaryMessage {
			h.log.Warnf("Received unexpected message type: %d", messageType)
			continue
		}

		result, err := process(message)
		if err != nil {
			h.log.Errorf("Error processing %s frame: %v", channel, err)
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
