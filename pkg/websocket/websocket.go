package websocketPkg

import (
	"LittleSteps/internal/entity"
	"encoding/json"
	"fmt"
	"github.com/gorilla/websocket"
	"log"
	"os"
	"sync"
	"time"
)

// Channel identifies one of the realtime coaching services.
type Channel string

const (
	AttentionChannel Channel = "attention"
	GestureChannel   Channel = "gesture"
)

type IWebsocket interface {
	ProcessAttentionFrame(frame []byte) (*entity.LiveGuidance, error)
	ProcessGestureFrame(frame []byte) (*entity.LiveGestureEvent, error)
	IsConnected(channel Channel) bool
	Reconnect(channel Channel) error
	CloseConnections()
}

type webSocketClient struct {
	conns        map[Channel]*websocket.Conn
	mu           sync.Mutex
	pingInterval time.Duration
	readTimeout  time.Duration
	writeTimeout time.Duration
}

func NewAIWebSocketClient() IWebsocket {
	client := &webSocketClient{
		conns:        make(map[Channel]*websocket.Conn),
		pingInterval: 30 * time.Second,
		readTimeout:  10 * time.Second,
		writeTimeout: 5 * time.Second,
	}

	go client.connectInBackground(AttentionChannel)
	go client.connectInBackground(GestureChannel)

	return client
}

func (c *webSocketClient) connectInBackground(channel Channel) {
	err := c.Reconnect(channel)
	if err != nil {
		log.Printf("Initial connection to %s service failed: %v. Will retry on demand.", channel, err)
	} else {
		log.Printf("Successfully connected to %s service", channel)
	}
}

func (c *webSocketClient) IsConnected(channel Channel) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.conns[channel] != nil
}

func getWebSocketURL(channel Channel) string {
	switch channel {
	case AttentionChannel:
		return os.Getenv("LIVE_ATTENTION_WS_URL")
	case GestureChannel:
		return os.Getenv("LIVE_GESTURE_WS_URL")
	default:
		return ""
	}
}

func (c *webSocketClient) Reconnect(channel Channel) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if conn := c.conns[channel]; conn != nil {
		conn.Close()
		delete(c.conns, channel)
	}

	url := getWebSocketURL(channel)
	if url == "" {
		return fmt.Errorf("URL for %s service not configured", channel)
	}

	log.Printf("Connecting to %s at %s", channel, url)

	dialer := websocket.DefaultDialer
	dialer.HandshakeTimeout = 10 * time.Second

	conn, _, err := dialer.Dial(url, nil)
	if err != nil {
		return fmt.Errorf("failed to connect to %s: %w", url, err)
	}

	conn.SetPingHandler(func(appData string) error {
		err := conn.WriteControl(websocket.PongMessage, []byte(appData), time.Now().Add(c.writeTimeout))
		if err != nil {
			log.Printf("Error sending pong: %v", err)
		}
		return nil
	})

	c.conns[channel] = conn

	go c.keepAlive(channel)

	return nil
}

func (c *webSocketClient) CloseConnections() {
	c.mu.Lock()
	defer c.mu.Unlock()

	for channel, conn := range c.conns {
		conn.Close()
		delete(c.conns, channel)
	}
}

func (c *webSocketClient) keepAlive(channel Channel) {
	ticker := time.NewTicker(c.pingInterval)
	defer ticker.Stop()

	for range ticker.C {
		c.mu.Lock()
		conn := c.conns[channel]
		if conn == nil {
			c.mu.Unlock()
			return
		}

		err := conn.WriteControl(
			websocket.PingMessage,
			[]byte{},
			time.Now().Add(c.writeTimeout),
		)

		if err != nil {
			log.Printf("Ping failed for %s, marking connection as dead: %v", channel, err)
			delete(c.conns, channel)
			conn.Close()
			c.mu.Unlock()
			return
		}

		c.mu.Unlock()
	}
}

func (c *webSocketClient) getConnection(channel Channel) (*websocket.Conn, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	conn := c.conns[channel]
	if conn == nil {
		return nil, fmt.Errorf("not connected to %s service", channel)
	}

	return conn, nil
}

// exchange sends one frame and waits for the service's per-frame reply.
func (c *webSocketClient) exchange(channel Channel, frame []byte) ([]byte, error) {
	conn, err := c.getConnection(channel)
	if err != nil {
		if err := c.Reconnect(channel); err != nil {
			return nil, fmt.Errorf("cannot connect to %s service: %w", channel, err)
		}
		conn, err = c.getConnection(channel)
		if err != nil {
			return nil, err
		}
	}

	c.mu.Lock()

	conn.SetWriteDeadline(time.Now().Add(c.writeTimeout))

	if err := conn.WriteMessage(websocket.BinaryMessage, frame); err != nil {
		delete(c.conns, channel)
		conn.Close()
		c.mu.Unlock()
		return nil, fmt.Errorf("error sending %s frame: %w", channel, err)
	}

	conn.SetReadDeadline(time.Now().Add(c.readTimeout))

	c.mu.Unlock()

	_, message, err := conn.ReadMessage()
	if err != nil {
		c.mu.Lock()
		delete(c.conns, channel)
		conn.Close()
		c.mu.Unlock()
		return nil, fmt.Errorf("error reading %s message: %w", channel, err)
	}

	c.mu.Lock()
	conn.SetReadDeadline(time.Time{})
	conn.SetWriteDeadline(time.Time{})
	c.mu.Unlock()

	return message, nil
}

func (c *webSocketClient) ProcessAttentionFrame(frame []byte) (*entity.LiveGuidance, error) {
	message, err := c.exchange(AttentionChannel, frame)
	if err != nil {
		return nil, err
	}

	var result entity.LiveGuidance
	if err := json.Unmarshal(message, &result); err != nil {
		return nil, fmt.Errorf("error unmarshaling attention response: %w", err)
	}

	return &result, nil
}

func (c *webSocketClient) ProcessGestureFrame(frame []byte) (*entity.LiveGestureEvent, error) {
	message, err := c.exchange(GestureChannel, frame)
	if err != nil {
		return nil, err
	}

	var result entity.LiveGestureEvent
	if err := json.Unmarshal(message, &result); err != nil {
		return nil, fmt.Errorf("error unmarshaling gesture response: %w", err)
	}

	return &result, nil
}
