package app

import (
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/dkeye/Collab/internal/core"
	"github.com/dkeye/Collab/internal/domain"
)

// RoomManagerImpl is the session registry: one mutex guards the whole room
// map, which is the only shared mutable resource. Rooms are cheap and
// short-lived, so no finer-grained locking is needed.
type RoomManagerImpl struct {
	mu    sync.RWMutex
	rooms map[domain.RoomID]core.RoomService
}

func NewRoomManager() core.RoomManager {
	return &RoomManagerImpl{rooms: make(map[domain.RoomID]core.RoomService)}
}

// Join creates the room with default document state on first use. Any
// string is accepted as a room id or display name.
func (m *RoomManagerImpl) Join(id domain.RoomID, sid core.SessionID, ms core.MemberSession) []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	room, ok := m.rooms[id]
	if !ok {
		room = core.NewRoomService(domain.NewRoom(id))
		m.rooms[id] = room
		log.Info().Str("module", "app.rooms").Str("room", string(id)).Msg("room created")
	}
	room.AddMember(sid, ms)
	return room.Presence()
}

// Leave removes the member and deletes the room the moment it empties;
// empty rooms are never kept around. Unknown rooms and non-members are
// silent no-ops.
func (m *RoomManagerImpl) Leave(id domain.RoomID, sid core.SessionID) ([]string, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	room, ok := m.rooms[id]
	if !ok {
		return nil, false
	}
	before := room.MemberCount()
	room.RemoveMember(sid)
	if room.MemberCount() == before {
		return nil, false
	}
	if room.MemberCount() == 0 {
		delete(m.rooms, id)
		log.Info().Str("module", "app.rooms").Str("room", string(id)).Msg("room removed")
		return nil, true
	}
	return room.Presence(), false
}

func (m *RoomManagerImpl) SetCode(id domain.RoomID, code string) {
	if room, ok := m.Get(id); ok {
		room.SetCode(code)
	}
}

func (m *RoomManagerImpl) SetLanguage(id domain.RoomID, language string) {
	if room, ok := m.Get(id); ok {
		room.SetLanguage(language)
	}
}

func (m *RoomManagerImpl) Presence(id domain.RoomID) []string {
	room, ok := m.Get(id)
	if !ok {
		return nil
	}
	return room.Presence()
}

func (m *RoomManagerImpl) Snapshot(id domain.RoomID) (string, string, bool) {
	room, ok := m.Get(id)
	if !ok {
		return "", "", false
	}
	code, language := room.Document()
	return code, language, true
}

func (m *RoomManagerImpl) Get(id domain.RoomID) (core.RoomService, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	room, ok := m.rooms[id]
	return room, ok
}

func (m *RoomManagerImpl) List() []core.RoomInfo {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]core.RoomInfo, 0, len(m.rooms))
	for id, r := range m.rooms {
		_, language := r.Document()
		out = append(out, core.RoomInfo{ID: id, MemberCount: r.MemberCount(), Language: language})
	}
	return out
}
