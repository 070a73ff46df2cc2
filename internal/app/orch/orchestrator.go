// Package orch routes inbound member events: it gates them against the
// session's current room, mutates the registries and computes the fan-out
// set for each broadcast. Broadcasts are fire-and-forget; undeliverable
// sends are dropped.
package orch

import (
	"github.com/rs/zerolog/log"

	"github.com/dkeye/Collab/internal/app"
	"github.com/dkeye/Collab/internal/core"
	"github.com/dkeye/Collab/internal/domain"
)

type Orchestrator struct {
	Registry *app.Registry
	Rooms    core.RoomManager
}

// inRoom gates an event: the sender must currently be a member of the room
// it addresses. Events from anonymous sessions or aimed at a foreign room
// are dropped before any mutation.
func (o *Orchestrator) inRoom(sid core.SessionID, id domain.RoomID) bool {
	cur, ok := o.Registry.RoomOf(sid)
	if !ok || cur != id {
		log.Debug().Str("module", "orch").Str("sid", string(sid)).Str("room", string(id)).Msg("event dropped, not a member")
		return false
	}
	return true
}

// CodeChange replaces the room buffer verbatim (last write wins) and relays
// it to every other member. The sender never receives its own update.
func (o *Orchestrator) CodeChange(sid core.SessionID, id domain.RoomID, code string) {
	if !o.inRoom(sid, id) {
		return
	}
	o.Rooms.SetCode(id, code)
	o.broadcastFrom(sid, id, encode(codeUpdateEvent{Type: evCodeUpdate, Code: code}))
}

// Typing relays a transient indicator carrying the sender's display name.
// The server holds no typing state; receivers time it out locally.
func (o *Orchestrator) Typing(sid core.SessionID, id domain.RoomID) {
	if !o.inRoom(sid, id) {
		return
	}
	name, ok := o.Registry.NameOf(sid)
	if !ok {
		return
	}
	o.broadcastFrom(sid, id, encode(userTypingEvent{Type: evUserTyping, Name: name}))
}

// LanguageChange replaces the room language tag and relays it to every
// other member.
func (o *Orchestrator) LanguageChange(sid core.SessionID, id domain.RoomID, language string) {
	if !o.inRoom(sid, id) {
		return
	}
	o.Rooms.SetLanguage(id, language)
	o.broadcastFrom(sid, id, encode(languageUpdateEvent{Type: evLanguageUpdate, Language: language}))
}

func (o *Orchestrator) broadcastFrom(sid core.SessionID, id domain.RoomID, frame core.Frame) {
	if frame == nil {
		return
	}
	if room, ok := o.Rooms.Get(id); ok {
		room.Broadcast(sid, frame)
	}
}

func (o *Orchestrator) broadcastAll(id domain.RoomID, frame core.Frame) {
	if frame == nil {
		return
	}
	if room, ok := o.Rooms.Get(id); ok {
		room.BroadcastAll(frame)
	}
}
