package orch

import (
	"github.com/rs/zerolog/log"

	"github.com/dkeye/Collab/internal/core"
	"github.com/dkeye/Collab/internal/domain"
)

// Join moves the session into a room, creating it on first use, and
// broadcasts the resulting presence list to every member, joiner included.
// The joiner additionally receives a roomState snapshot so a late client
// seeds its editor with the current buffer and language.
// A session already in a room is moved: it leaves the old room first.
func (o *Orchestrator) Join(sid core.SessionID, id domain.RoomID, name string) {
	if old, ok := o.Registry.RoomOf(sid); ok {
		o.Leave(sid)
		log.Info().Str("module", "orch").Str("sid", string(sid)).Str("from_room", string(old)).Msg("left previous room on join")
	}

	ms, ok := o.Registry.EnterRoom(sid, id, name)
	if !ok {
		log.Warn().Str("module", "orch").Str("sid", string(sid)).Msg("join from unbound session")
		return
	}
	presence := o.Rooms.Join(id, sid, ms)
	log.Info().Str("module", "orch").Str("sid", string(sid)).Str("room", string(id)).Str("name", name).Msg("joined room")

	code, language, ok := o.Rooms.Snapshot(id)
	if ok {
		state := roomStateEvent{
			Type:     evRoomState,
			RoomID:   string(id),
			Code:     code,
			Language: language,
			Members:  presence,
		}
		if frame := encode(state); frame != nil {
			_ = ms.Signal().TrySend(frame)
		}
	}

	o.broadcastAll(id, encode(presenceEvent{Type: evUserJoined, Members: presence}))
}

// Leave takes the session back to the anonymous state. If the room
// survives, the remaining members get a fresh presence list; if it emptied
// and was removed, there is nobody left to notify. Idempotent: a second
// leave is a silent no-op.
func (o *Orchestrator) Leave(sid core.SessionID) {
	id, ok := o.Registry.RoomOf(sid)
	if !ok {
		return
	}
	presence, removed := o.Rooms.Leave(id, sid)
	o.Registry.ClearRoom(sid)
	if removed || presence == nil {
		return
	}
	o.broadcastAll(id, encode(presenceEvent{Type: evUserJoined, Members: presence}))
}

// Disconnect is the transport-initiated leave: same cleanup as an explicit
// leaveRoom, then the session binding itself is reclaimed.
func (o *Orchestrator) Disconnect(sid core.SessionID) {
	o.Leave(sid)
	o.Registry.Unbind(sid)
}
