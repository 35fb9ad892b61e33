package network

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/cbodonnell/lanes/pkg/log"
	"github.com/cbodonnell/lanes/pkg/messages"
	"github.com/cbodonnell/lanes/pkg/queue"
	"github.com/cbodonnell/lanes/pkg/version"
	"github.com/google/uuid"
)

const (
	DefaultServerURL      = "ws://localhost:8080"
	DefaultWelcomeTimeout = 5 * time.Second
	DefaultWriteTimeout   = 2 * time.Second
)

// NetworkManager owns the connection to the game server. Server game states
// are pushed to the server message queue for the game loop to drain.
type NetworkManager struct {
	serverURL          string
	serverMessageQueue queue.Queue
	welcomeTimeout     time.Duration
	writeTimeout       time.Duration
	logger             *log.Logger

	wsClient        *WSClient
	wsClientErrChan chan error
	cancelClientCtx context.CancelFunc
	clientWaitGroup *sync.WaitGroup

	sessionID string
	mutex     sync.Mutex
	clientID  uint32
	playerID  int
	connected bool
}

type NewNetworkManagerOptions struct {
	ServerURL      string
	MessageQueue   queue.Queue
	WelcomeTimeout time.Duration
	WriteTimeout   time.Duration
}

// NewNetworkManager creates a new network manager.
func NewNetworkManager(opts NewNetworkManagerOptions) *NetworkManager {
	serverURL := opts.ServerURL
	if serverURL == "" {
		serverURL = DefaultServerURL
	}
	welcomeTimeout := opts.WelcomeTimeout
	if welcomeTimeout == 0 {
		welcomeTimeout = DefaultWelcomeTimeout
	}
	writeTimeout := opts.WriteTimeout
	if writeTimeout == 0 {
		writeTimeout = DefaultWriteTimeout
	}

	return &NetworkManager{
		serverURL:          serverURL,
		serverMessageQueue: opts.MessageQueue,
		welcomeTimeout:     welcomeTimeout,
		writeTimeout:       writeTimeout,
		logger:             log.Default(),
		wsClientErrChan:    make(chan error, 1),
		clientWaitGroup:    &sync.WaitGroup{},
	}
}

// Start connects to the server, introduces the client and waits for the
// server to assign the local player.
func (m *NetworkManager) Start(ctx context.Context) error {
	if m.IsConnected() {
		return fmt.Errorf("network manager already started")
	}

	m.sessionID = uuid.NewString()
	m.logger = log.Default().With("session", m.sessionID)

	welcomeChan := make(chan *messages.ServerWelcome, 1)
	m.wsClient = NewWSClient(m.serverURL, m.serverMessageQueue, welcomeChan, m.logger)

	dialCtx, cancelDial := context.WithTimeout(ctx, m.welcomeTimeout)
	defer cancelDial()
	if err := m.wsClient.Connect(dialCtx); err != nil {
		return fmt.Errorf("failed to start WebSocket client: %v", err)
	}

	clientCtx, cancel := context.WithCancel(context.Background())
	m.cancelClientCtx = cancel

	m.clientWaitGroup.Add(1)
	go func(ctx context.Context) {
		defer m.clientWaitGroup.Done()
		if err := m.wsClient.HandleMessages(ctx); err != nil {
			if _, ok := err.(*ErrConnectionClosedByClient); ok {
				m.logger.Debug("WebSocket client stopped")
				return
			}
			select {
			case m.wsClientErrChan <- err:
			default:
			}
		}
	}(clientCtx)

	hello := &messages.ClientHello{
		SessionID: m.sessionID,
		Version:   version.Get(),
	}
	if err := m.sendJSON(messages.MessageTypeClientHello, hello); err != nil {
		m.Stop()
		return fmt.Errorf("failed to send client hello: %v", err)
	}

	select {
	case welcome := <-welcomeChan:
		m.mutex.Lock()
		m.clientID = welcome.ClientID
		m.playerID = welcome.PlayerID
		m.connected = true
		m.mutex.Unlock()
		m.logger.Info("Connected to server with client ID %d controlling player %d", welcome.ClientID, welcome.PlayerID)
	case err := <-m.wsClientErrChan:
		m.Stop()
		return fmt.Errorf("connection failed before welcome: %v", err)
	case <-time.After(m.welcomeTimeout):
		m.Stop()
		return fmt.Errorf("timed out waiting for server welcome message")
	case <-ctx.Done():
		m.Stop()
		return ctx.Err()
	}

	return nil
}

// Stop stops the network manager and its client and clears the server message queue.
func (m *NetworkManager) Stop() error {
	if m.cancelClientCtx == nil {
		log.Warn("Network manager already stopped")
		return nil
	}
	m.cancelClientCtx()

	if err := m.wsClient.Close(); err != nil {
		m.logger.Warn("Failed to close WebSocket client: %v", err)
	}

	m.logger.Debug("Waiting for client to stop")
	m.clientWaitGroup.Wait()

	// an error from this session must not fail the next one
	select {
	case err := <-m.wsClientErrChan:
		m.logger.Debug("Discarding client error on stop: %v", err)
	default:
	}

	if err := m.serverMessageQueue.ClearQueue(); err != nil {
		return fmt.Errorf("failed to clear server message queue: %v", err)
	}

	m.mutex.Lock()
	m.clientID = 0
	m.playerID = 0
	m.connected = false
	m.mutex.Unlock()
	m.cancelClientCtx = nil

	m.logger.Info("Network manager stopped")

	return nil
}

func (m *NetworkManager) IsConnected() bool {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	return m.connected
}

func (m *NetworkManager) ClientID() uint32 {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	return m.clientID
}

// PlayerID returns the player index the server assigned to this client.
func (m *NetworkManager) PlayerID() int {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	return m.playerID
}

func (m *NetworkManager) SessionID() string {
	return m.sessionID
}

func (m *NetworkManager) ServerMessageQueue() queue.Queue {
	return m.serverMessageQueue
}

func (m *NetworkManager) ClientErrChan() <-chan error {
	return m.wsClientErrChan
}

// SendMove reports a locally predicted movement to the server.
func (m *NetworkManager) SendMove(dx float32, dy float32) error {
	return m.sendJSON(messages.MessageTypeClientMove, &messages.ClientMove{
		Timestamp: time.Now().UnixMilli(),
		PlayerID:  m.PlayerID(),
		DX:        dx,
		DY:        dy,
	})
}

// SendAbility asks the server to cast the local player's ability on the target.
func (m *NetworkManager) SendAbility(targetID int) error {
	return m.sendJSON(messages.MessageTypeClientAbility, &messages.ClientAbility{
		Timestamp: time.Now().UnixMilli(),
		PlayerID:  m.PlayerID(),
		TargetID:  targetID,
	})
}

// SendStateHash reports the client's integrity signature.
func (m *NetworkManager) SendStateHash(hash int32) error {
	return m.sendJSON(messages.MessageTypeClientStateHash, &messages.ClientStateHash{
		Timestamp: time.Now().UnixMilli(),
		Hash:      hash,
	})
}

// SendPing sends a ping that the server answers with a pong.
func (m *NetworkManager) SendPing() error {
	return m.SendMessage(&messages.Message{
		ClientID: m.ClientID(),
		Type:     messages.MessageTypeClientPing,
	})
}

func (m *NetworkManager) sendJSON(messageType messages.MessageType, v interface{}) error {
	payload, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to marshal %s payload: %v", messageType, err)
	}

	msg := &messages.Message{
		ClientID: m.ClientID(),
		Type:     messageType,
		Payload:  payload,
	}

	if err := m.SendMessage(msg); err != nil {
		return fmt.Errorf("failed to send %s message: %v", messageType, err)
	}

	return nil
}

func (m *NetworkManager) SendMessage(msg *messages.Message) error {
	if m.wsClient == nil {
		return &ErrConnectionClosedByClient{}
	}
	ctx, cancel := context.WithTimeout(context.Background(), m.writeTimeout)
	defer cancel()
	return m.wsClient.SendMessage(ctx, msg)
}
