package messages

import "github.com/cbodonnell/lanes/pkg/kinematic"

const (
	// MessageBufferSize represents the maximum size of a message read from the server
	MessageBufferSize = 1 << 16
	// MaxMessageSize is the maximum size of a message after decompression
	MaxMessageSize = 1 << 22
)

type MessageType byte

// Message types
const (
	MessageTypeClientPing MessageType = iota + 1
	MessageTypeServerPong
	MessageTypeClientHello
	MessageTypeServerWelcome
	MessageTypeServerGameState
	MessageTypeClientMove
	MessageTypeClientAbility
	MessageTypeClientStateHash
)

func (t MessageType) String() string {
	switch t {
	case MessageTypeClientPing:
		return "ClientPing"
	case MessageTypeServerPong:
		return "ServerPong"
	case MessageTypeClientHello:
		return "ClientHello"
	case MessageTypeServerWelcome:
		return "ServerWelcome"
	case MessageTypeServerGameState:
		return "ServerGameState"
	case MessageTypeClientMove:
		return "ClientMove"
	case MessageTypeClientAbility:
		return "ClientAbility"
	case MessageTypeClientStateHash:
		return "ClientStateHash"
	default:
		return "Unknown"
	}
}

// Message represents a generic message for serialization/deserialization
type Message struct {
	ClientID uint32
	Type     MessageType
	Payload  []byte
}

// ClientHello is sent by the client when it connects.
type ClientHello struct {
	SessionID string `json:"sessionID"`
	Version   string `json:"version"`
}

// ServerWelcome assigns the client an ID and the player it controls.
type ServerWelcome struct {
	ClientID uint32 `json:"clientID"`
	PlayerID int    `json:"playerID"`
}

// ClientMove is a movement intent that the client has already predicted locally.
type ClientMove struct {
	Timestamp int64   `json:"timestamp"`
	PlayerID  int     `json:"playerID"`
	DX        float32 `json:"dx"`
	DY        float32 `json:"dy"`
}

// ClientAbility is a request to cast the ability on another player.
type ClientAbility struct {
	Timestamp int64 `json:"timestamp"`
	PlayerID  int   `json:"playerID"`
	TargetID  int   `json:"targetID"`
}

// ClientStateHash reports the client's integrity signature for the server to compare.
type ClientStateHash struct {
	Timestamp int64 `json:"timestamp"`
	Hash      int32 `json:"hash"`
}

// ServerGameState is the full match state pushed by the server every tick.
type ServerGameState struct {
	Timestamp int64
	Players   []PlayerStateUpdate
	Minions   []MinionStateUpdate
	Towers    []StructureStateUpdate
	Bases     []StructureStateUpdate
}

type PlayerStateUpdate struct {
	Position        kinematic.Vector
	Health          int32
	Team            int32
	AbilityCooldown int32
}

type MinionStateUpdate struct {
	Position kinematic.Vector
	Health   int32
	Team     int32
}

type StructureStateUpdate struct {
	Position kinematic.Vector
	Health   int32
	Team     int32
}
