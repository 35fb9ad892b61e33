package messages

import (
	"bytes"
	"fmt"
	"io"

	gamestatefb "github.com/cbodonnell/lanes/flatbuffers/gamestate"
	messagefb "github.com/cbodonnell/lanes/flatbuffers/message"
	flatbuffers "github.com/google/flatbuffers/go"
	"github.com/klauspost/compress/zstd"
)

func SerializeMessage(m *Message) ([]byte, error) {
	b, err := SerializeMessageFlatbuffer(m)
	if err != nil {
		return nil, fmt.Errorf("failed to serialize message: %v", err)
	}

	compressed := bytes.NewBuffer(nil)
	compWriter, err := zstd.NewWriter(compressed, zstd.WithEncoderLevel(zstd.SpeedFastest))
	if err != nil {
		return nil, fmt.Errorf("failed to create zstd writer: %v", err)
	}
	if _, err := compWriter.Write(b); err != nil {
		return nil, fmt.Errorf("failed to compress message: %v", err)
	}
	if err := compWriter.Close(); err != nil {
		return nil, fmt.Errorf("failed to close zstd writer: %v", err)
	}

	return compressed.Bytes(), nil
}

func DeserializeMessage(data []byte) (*Message, error) {
	compReader, err := zstd.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to create zstd reader: %v", err)
	}
	defer compReader.Close()
	// read one byte past the limit so that an oversized message is detected
	// instead of silently truncated
	b, err := io.ReadAll(io.LimitReader(compReader, MaxMessageSize+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read decompressed message: %v", err)
	}
	if len(b) > MaxMessageSize {
		return nil, fmt.Errorf("message exceeds %d bytes", MaxMessageSize)
	}

	message, err := DeserializeMessageFlatbuffer(b)
	if err != nil {
		return nil, fmt.Errorf("failed to deserialize message: %v", err)
	}

	return message, nil
}

func SerializeMessageFlatbuffer(m *Message) ([]byte, error) {
	builder := flatbuffers.NewBuilder(0)

	payload := builder.CreateByteVector(m.Payload)

	messagefb.MessageStart(builder)
	messagefb.MessageAddClientId(builder, m.ClientID)
	messagefb.MessageAddType(builder, byte(m.Type))
	messagefb.MessageAddPayload(builder, payload)
	messageOffset := messagefb.MessageEnd(builder)
	builder.Finish(messageOffset)
	b := builder.FinishedBytes()

	return b, nil
}

func DeserializeMessageFlatbuffer(b []byte) (message *Message, err error) {
	if err := checkRootOffset(b); err != nil {
		return nil, fmt.Errorf("invalid message: %v", err)
	}
	// the generated accessors index into b without bounds checks
	defer func() {
		if r := recover(); r != nil {
			message, err = nil, fmt.Errorf("malformed message: %v", r)
		}
	}()

	message = &Message{}
	messageFlatbuffer := messagefb.GetRootAsMessage(b, 0)
	message.ClientID = messageFlatbuffer.ClientId()
	message.Type = MessageType(messageFlatbuffer.Type())
	message.Payload = messageFlatbuffer.PayloadBytes()

	return message, nil
}

func SerializeGameState(state *ServerGameState) ([]byte, error) {
	builder := flatbuffers.NewBuilder(0)
	gameState := SerializeGameStateFlatbuffer(builder, state)
	builder.Finish(gameState)
	return builder.FinishedBytes(), nil
}

func DeserializeGameState(b []byte) (*ServerGameState, error) {
	if err := checkRootOffset(b); err != nil {
		return nil, fmt.Errorf("invalid game state: %v", err)
	}
	gameState, err := DeserializeGameStateFlatbuffer(b)
	if err != nil {
		return nil, fmt.Errorf("failed to deserialize game state: %v", err)
	}

	return gameState, nil
}

func SerializeGameStateFlatbuffer(builder *flatbuffers.Builder, state *ServerGameState) flatbuffers.UOffsetT {
	playerStates := make([]flatbuffers.UOffsetT, 0, len(state.Players))
	for i := range state.Players {
		playerStates = append(playerStates, SerializePlayerStateFlatbuffer(builder, &state.Players[i]))
	}
	gamestatefb.GameStateStartPlayersVector(builder, len(playerStates))
	for i := len(playerStates) - 1; i >= 0; i-- {
		builder.PrependUOffsetT(playerStates[i])
	}
	players := builder.EndVector(len(playerStates))

	minionStates := make([]flatbuffers.UOffsetT, 0, len(state.Minions))
	for i := range state.Minions {
		minionStates = append(minionStates, SerializeMinionStateFlatbuffer(builder, &state.Minions[i]))
	}
	gamestatefb.GameStateStartMinionsVector(builder, len(minionStates))
	for i := len(minionStates) - 1; i >= 0; i-- {
		builder.PrependUOffsetT(minionStates[i])
	}
	minions := builder.EndVector(len(minionStates))

	towerStates := make([]flatbuffers.UOffsetT, 0, len(state.Towers))
	for i := range state.Towers {
		towerStates = append(towerStates, SerializeStructureStateFlatbuffer(builder, &state.Towers[i]))
	}
	gamestatefb.GameStateStartTowersVector(builder, len(towerStates))
	for i := len(towerStates) - 1; i >= 0; i-- {
		builder.PrependUOffsetT(towerStates[i])
	}
	towers := builder.EndVector(len(towerStates))

	baseStates := make([]flatbuffers.UOffsetT, 0, len(state.Bases))
	for i := range state.Bases {
		baseStates = append(baseStates, SerializeStructureStateFlatbuffer(builder, &state.Bases[i]))
	}
	gamestatefb.GameStateStartBasesVector(builder, len(baseStates))
	for i := len(baseStates) - 1; i >= 0; i-- {
		builder.PrependUOffsetT(baseStates[i])
	}
	bases := builder.EndVector(len(baseStates))

	gamestatefb.GameStateStart(builder)
	gamestatefb.GameStateAddTimestamp(builder, state.Timestamp)
	gamestatefb.GameStateAddPlayers(builder, players)
	gamestatefb.GameStateAddMinions(builder, minions)
	gamestatefb.GameStateAddTowers(builder, towers)
	gamestatefb.GameStateAddBases(builder, bases)
	return gamestatefb.GameStateEnd(builder)
}

func serializePositionFlatbuffer(builder *flatbuffers.Builder, x float32, y float32) flatbuffers.UOffsetT {
	gamestatefb.PositionStart(builder)
	gamestatefb.PositionAddX(builder, x)
	gamestatefb.PositionAddY(builder, y)
	return gamestatefb.PositionEnd(builder)
}

func SerializePlayerStateFlatbuffer(builder *flatbuffers.Builder, state *PlayerStateUpdate) flatbuffers.UOffsetT {
	position := serializePositionFlatbuffer(builder, state.Position.X, state.Position.Y)

	gamestatefb.PlayerStateStart(builder)
	gamestatefb.PlayerStateAddPosition(builder, position)
	gamestatefb.PlayerStateAddHealth(builder, state.Health)
	gamestatefb.PlayerStateAddTeam(builder, state.Team)
	gamestatefb.PlayerStateAddAbilityCooldown(builder, state.AbilityCooldown)
	return gamestatefb.PlayerStateEnd(builder)
}

func SerializeMinionStateFlatbuffer(builder *flatbuffers.Builder, state *MinionStateUpdate) flatbuffers.UOffsetT {
	position := serializePositionFlatbuffer(builder, state.Position.X, state.Position.Y)

	gamestatefb.MinionStateStart(builder)
	gamestatefb.MinionStateAddPosition(builder, position)
	gamestatefb.MinionStateAddHealth(builder, state.Health)
	gamestatefb.MinionStateAddTeam(builder, state.Team)
	return gamestatefb.MinionStateEnd(builder)
}

func SerializeStructureStateFlatbuffer(builder *flatbuffers.Builder, state *StructureStateUpdate) flatbuffers.UOffsetT {
	position := serializePositionFlatbuffer(builder, state.Position.X, state.Position.Y)

	gamestatefb.StructureStateStart(builder)
	gamestatefb.StructureStateAddPosition(builder, position)
	gamestatefb.StructureStateAddHealth(builder, state.Health)
	gamestatefb.StructureStateAddTeam(builder, state.Team)
	return gamestatefb.StructureStateEnd(builder)
}

// checkRootOffset makes sure the buffer holds a root offset that points inside it.
func checkRootOffset(b []byte) error {
	if len(b) < flatbuffers.SizeUOffsetT {
		return fmt.Errorf("buffer too short: %d bytes", len(b))
	}
	root := int(flatbuffers.GetUOffsetT(b))
	if root+flatbuffers.SizeSOffsetT > len(b) {
		return fmt.Errorf("root offset %d out of range for %d bytes", root, len(b))
	}
	return nil
}

// checkVectorLength rejects vector lengths that cannot fit in the buffer,
// each element being at least an offset wide.
func checkVectorLength(name string, length int, size int) error {
	if length < 0 || length > size/flatbuffers.SizeUOffsetT {
		return fmt.Errorf("%s vector length %d out of range for %d bytes", name, length, size)
	}
	return nil
}

func DeserializeGameStateFlatbuffer(b []byte) (gameState *ServerGameState, err error) {
	if err := checkRootOffset(b); err != nil {
		return nil, err
	}
	// the generated accessors index into b without bounds checks
	defer func() {
		if r := recover(); r != nil {
			gameState, err = nil, fmt.Errorf("malformed game state: %v", r)
		}
	}()

	gameState = &ServerGameState{}
	gameStateFlatbuffer := gamestatefb.GetRootAsGameState(b, 0)
	gameState.Timestamp = gameStateFlatbuffer.Timestamp()

	lengths := []struct {
		name   string
		length int
	}{
		{"players", gameStateFlatbuffer.PlayersLength()},
		{"minions", gameStateFlatbuffer.MinionsLength()},
		{"towers", gameStateFlatbuffer.TowersLength()},
		{"bases", gameStateFlatbuffer.BasesLength()},
	}
	for _, l := range lengths {
		if err := checkVectorLength(l.name, l.length, len(b)); err != nil {
			return nil, err
		}
	}

	gameState.Players = make([]PlayerStateUpdate, gameStateFlatbuffer.PlayersLength())
	for i := range gameState.Players {
		fb := &gamestatefb.PlayerState{}
		if !gameStateFlatbuffer.Players(fb, i) {
			return nil, fmt.Errorf("failed to get player state at index %d", i)
		}
		gameState.Players[i] = PlayerStateFlatbufferToPlayerStateUpdate(fb)
	}

	gameState.Minions = make([]MinionStateUpdate, gameStateFlatbuffer.MinionsLength())
	for i := range gameState.Minions {
		fb := &gamestatefb.MinionState{}
		if !gameStateFlatbuffer.Minions(fb, i) {
			return nil, fmt.Errorf("failed to get minion state at index %d", i)
		}
		gameState.Minions[i] = MinionStateFlatbufferToMinionStateUpdate(fb)
	}

	gameState.Towers = make([]StructureStateUpdate, gameStateFlatbuffer.TowersLength())
	for i := range gameState.Towers {
		fb := &gamestatefb.StructureState{}
		if !gameStateFlatbuffer.Towers(fb, i) {
			return nil, fmt.Errorf("failed to get tower state at index %d", i)
		}
		gameState.Towers[i] = StructureStateFlatbufferToStructureStateUpdate(fb)
	}

	gameState.Bases = make([]StructureStateUpdate, gameStateFlatbuffer.BasesLength())
	for i := range gameState.Bases {
		fb := &gamestatefb.StructureState{}
		if !gameStateFlatbuffer.Bases(fb, i) {
			return nil, fmt.Errorf("failed to get base state at index %d", i)
		}
		gameState.Bases[i] = StructureStateFlatbufferToStructureStateUpdate(fb)
	}

	return gameState, nil
}

func PlayerStateFlatbufferToPlayerStateUpdate(fb *gamestatefb.PlayerState) PlayerStateUpdate {
	playerState := PlayerStateUpdate{}
	if position := fb.Position(nil); position != nil {
		playerState.Position.X = position.X()
		playerState.Position.Y = position.Y()
	}
	playerState.Health = fb.Health()
	playerState.Team = fb.Team()
	playerState.AbilityCooldown = fb.AbilityCooldown()
	return playerState
}

func MinionStateFlatbufferToMinionStateUpdate(fb *gamestatefb.MinionState) MinionStateUpdate {
	minionState := MinionStateUpdate{}
	if position := fb.Position(nil); position != nil {
		minionState.Position.X = position.X()
		minionState.Position.Y = position.Y()
	}
	minionState.Health = fb.Health()
	minionState.Team = fb.Team()
	return minionState
}

func StructureStateFlatbufferToStructureStateUpdate(fb *gamestatefb.StructureState) StructureStateUpdate {
	structureState := StructureStateUpdate{}
	if position := fb.Position(nil); position != nil {
		structureState.Position.X = position.X()
		structureState.Position.Y = position.Y()
	}
	structureState.Health = fb.Health()
	structureState.Team = fb.Team()
	return structureState
}
