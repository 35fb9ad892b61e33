package network

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/cbodonnell/lanes/pkg/log"
	"github.com/cbodonnell/lanes/pkg/messages"
	"github.com/cbodonnell/lanes/pkg/queue"
	"nhooyr.io/websocket"
)

// WSClient represents a WebSocket client.
type WSClient struct {
	serverURL    string
	messageQueue queue.Queue
	welcomeChan  chan<- *messages.ServerWelcome
	logger       *log.Logger
	conn         *websocket.Conn
	connMutex    sync.Mutex
}

// NewWSClient creates a new WebSocket client.
func NewWSClient(serverURL string, messageQueue queue.Queue, welcomeChan chan<- *messages.ServerWelcome, logger *log.Logger) *WSClient {
	return &WSClient{
		serverURL:    serverURL,
		messageQueue: messageQueue,
		welcomeChan:  welcomeChan,
		logger:       logger,
	}
}

// Connect establishes a connection to the WebSocket server.
func (c *WSClient) Connect(ctx context.Context) error {
	c.logger.Info("Connecting to WebSocket server at %s", c.serverURL)
	conn, _, err := websocket.Dial(ctx, c.serverURL, nil)
	if err != nil {
		return fmt.Errorf("failed to connect to server: %v", err)
	}
	conn.SetReadLimit(messages.MessageBufferSize)
	c.connMutex.Lock()
	c.conn = conn
	c.connMutex.Unlock()
	return nil
}

func (c *WSClient) getConn() *websocket.Conn {
	c.connMutex.Lock()
	defer c.connMutex.Unlock()
	return c.conn
}

// HandleMessages reads messages from the server until the context is
// cancelled or the connection is closed.
func (c *WSClient) HandleMessages(ctx context.Context) error {
	conn := c.getConn()
	if conn == nil {
		return &ErrConnectionClosedByClient{}
	}
	for {
		_, b, err := conn.Read(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return &ErrConnectionClosedByClient{}
			}
			if status := websocket.CloseStatus(err); status != -1 {
				if status == websocket.StatusNormalClosure || status == websocket.StatusGoingAway {
					c.logger.Info("WebSocket connection closed by server")
				}
				return &ErrConnectionClosedByServer{Reason: status.String()}
			}
			return fmt.Errorf("failed to read from WebSocket connection: %v", err)
		}

		if err := c.handleMessage(b); err != nil {
			c.logger.Error("Failed to handle message: %v", err)
		}
	}
}

// handleMessage processes a received message.
func (c *WSClient) handleMessage(b []byte) error {
	msg, err := messages.DeserializeMessage(b)
	if err != nil {
		return fmt.Errorf("failed to deserialize message: %v", err)
	}
	c.logger.Trace("Received message from WebSocket server of type %s", msg.Type)

	switch msg.Type {
	case messages.MessageTypeServerWelcome:
		welcome := &messages.ServerWelcome{}
		if err := json.Unmarshal(msg.Payload, welcome); err != nil {
			return fmt.Errorf("failed to deserialize server welcome message: %v", err)
		}
		select {
		case c.welcomeChan <- welcome:
		default:
			c.logger.Warn("Dropping unexpected server welcome for client %d", welcome.ClientID)
		}
	case messages.MessageTypeServerGameState:
		if err := c.messageQueue.Enqueue(msg); err != nil {
			return fmt.Errorf("failed to enqueue message: %v", err)
		}
	case messages.MessageTypeServerPong:
		c.logger.Debug("Received server pong")
	default:
		return fmt.Errorf("received unexpected message type from WebSocket server: %s", msg.Type)
	}

	return nil
}

// Close closes the WebSocket connection.
func (c *WSClient) Close() error {
	c.connMutex.Lock()
	conn := c.conn
	c.conn = nil
	c.connMutex.Unlock()

	if conn == nil {
		c.logger.Warn("WebSocket connection is already closed")
		return nil
	}
	err := conn.Close(websocket.StatusNormalClosure, "client closed")
	if err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("failed to close WebSocket connection: %v", err)
	}
	return nil
}

// SendMessage sends a message to the WebSocket server.
func (c *WSClient) SendMessage(ctx context.Context, msg *messages.Message) error {
	conn := c.getConn()
	if conn == nil {
		return &ErrConnectionClosedByClient{}
	}

	b, err := messages.SerializeMessage(msg)
	if err != nil {
		return fmt.Errorf("failed to serialize message: %v", err)
	}

	if err := conn.Write(ctx, websocket.MessageBinary, b); err != nil {
		return fmt.Errorf("failed to write message to WebSocket connection: %v", err)
	}

	return nil
}
