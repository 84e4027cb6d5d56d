package transmit

import (
	"fmt"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

// WebSocket sends each log line as one binary message over a
// websocket connection. It implements Transmitter.
//
// The connection is not re-established on failure; a failed Transmit
// simply reports the error so the drain side can apply its usual
// re-enqueue policy and a supervising layer can decide to redial.
type WebSocket struct {
	mu           sync.Mutex
	conn         *websocket.Conn
	writeTimeout time.Duration
}

// DialWebSocket connects to the given ws:// or wss:// URL.
func DialWebSocket(url string, writeTimeout time.Duration) (*WebSocket, error) {
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to connect: %w", err)
	}
	return &WebSocket{conn: conn, writeTimeout: writeTimeout}, nil
}

// Transmit sends p as a single binary message.
func (t *WebSocket) Transmit(p []byte) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.writeTimeout > 0 {
		if err := t.conn.SetWriteDeadline(time.Now().Add(t.writeTimeout)); err != nil {
			return err
		}
	}
	return t.conn.WriteMessage(websocket.BinaryMessage, p)
}

// Close closes the underlying connection.
func (t *WebSocket) Close() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.conn.Close()
}
