package app

import (
	"context"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/dkeye/Collab/internal/core"
	"github.com/dkeye/Collab/internal/domain"
)

// sessionEntry tracks one live connection. RoomID and Name stay empty while
// the session is anonymous (connected but not joined anywhere).
type sessionEntry struct {
	RoomID  domain.RoomID
	Name    string
	Session core.MemberSession
	Cancel  context.CancelFunc
}

// Registry maps transport sessions to their current room binding. A session
// belongs to at most one room at a time.
type Registry struct {
	mu       sync.RWMutex
	sessions map[core.SessionID]*sessionEntry
}

func NewRegistry() *Registry {
	return &Registry{sessions: make(map[core.SessionID]*sessionEntry)}
}

// BindSignal registers a freshly accepted connection in the anonymous state.
func (r *Registry) BindSignal(sid core.SessionID, sess core.MemberSession, cancel context.CancelFunc) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sessions[sid] = &sessionEntry{Session: sess, Cancel: cancel}
	log.Info().Str("module", "app.registry").Str("sid", string(sid)).Msg("bound signal")
}

func (r *Registry) Unbind(sid core.SessionID) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.sessions, sid)
	log.Info().Str("module", "app.registry").Str("sid", string(sid)).Msg("unbind session")
}

// RoomOf reports the session's current room, or false while anonymous.
func (r *Registry) RoomOf(sid core.SessionID) (domain.RoomID, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.sessions[sid]
	if !ok || e.RoomID == "" {
		return "", false
	}
	return e.RoomID, true
}

// NameOf reports the display name recorded at join time.
func (r *Registry) NameOf(sid core.SessionID) (string, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.sessions[sid]
	if !ok || e.RoomID == "" {
		return "", false
	}
	return e.Name, true
}

// EnterRoom records the room/name pair a join succeeded with and returns
// the member session to hand to the room. Sessions are immutable, so the
// join mints a fresh one carrying the display name over the same transport.
// False when the sid was never bound.
func (r *Registry) EnterRoom(sid core.SessionID, id domain.RoomID, name string) (core.MemberSession, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.sessions[sid]
	if !ok {
		return nil, false
	}
	e.RoomID = id
	e.Name = name
	e.Session = core.NewMemberSession(domain.NewMember(name), e.Session.Signal())
	log.Info().Str("module", "app.registry").Str("sid", string(sid)).Str("room", string(id)).Str("name", name).Msg("entered room")
	return e.Session, true
}

// ClearRoom resets the session to the anonymous state.
func (r *Registry) ClearRoom(sid core.SessionID) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if e, ok := r.sessions[sid]; ok {
		e.RoomID = ""
		e.Name = ""
	}
	log.Info().Str("module", "app.registry").Str("sid", string(sid)).Msg("cleared room association")
}

func (r *Registry) Cancel(sid core.SessionID) bool {
	r.mu.RLock()
	e, ok := r.sessions[sid]
	r.mu.RUnlock()
	if !ok {
		return false
	}
	if e.Cancel != nil {
		e.Cancel()
	}
	log.Info().Str("module", "app.registry").Str("sid", string(sid)).Msg("canceled session")
	return true
}
