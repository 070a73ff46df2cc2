package core

import "github.com/dkeye/Collab/internal/domain"

// Frame is a pre-encoded outbound message.
type Frame []byte

type SessionID string

// SignalConnection abstracts the messaging transport.
// Owned by the adapter; the adapter must Close() it.
type SignalConnection interface {
	TrySend(Frame) error
	Close()
}

// MemberSession binds domain.Member and its transport endpoint.
// This is what a room stores and fans out to. It is immutable after
// construction, so rooms may read it without extra locking.
type MemberSession interface {
	Meta() *domain.Member
	Signal() SignalConnection
}

// PublishResult reports delivery stats for a broadcast. Undeliverable
// sends are dropped, never retried.
type PublishResult struct {
	SentTo  int
	Dropped int
}

// RoomService is the core-facing API of a single room.
// It owns the membership set and document state but never touches
// transport resources.
type RoomService interface {
	Room() *domain.Room
	MemberCount() int

	// Presence returns display names in first-join order, deduped by name.
	Presence() []string

	AddMember(sid SessionID, ms MemberSession)
	RemoveMember(sid SessionID)

	SetCode(code string)
	SetLanguage(language string)
	// Document reads the current buffer and language together.
	Document() (code, language string)

	// Broadcast fans data out to every member except from.
	Broadcast(from SessionID, data Frame) PublishResult
	// BroadcastAll fans data out to every member, sender included.
	BroadcastAll(data Frame) PublishResult
}

type RoomInfo struct {
	ID          domain.RoomID `json:"id"`
	MemberCount int           `json:"member_count"`
	Language    string        `json:"language"`
}

// RoomManager is the session registry: the room map plus the membership
// and document operations that mutate it. Rooms are created on first join
// and removed the moment their member set empties.
type RoomManager interface {
	// Join adds the member, creating the room with default document state
	// on first use, and returns the resulting presence list.
	Join(id domain.RoomID, sid SessionID, ms MemberSession) []string
	// Leave removes the member. removed reports that the room emptied and
	// was deleted. Unknown rooms and non-members are silent no-ops
	// (nil presence, removed false).
	Leave(id domain.RoomID, sid SessionID) (presence []string, removed bool)

	// SetCode and SetLanguage replace document state verbatim, last write
	// wins. No-ops on unknown rooms.
	SetCode(id domain.RoomID, code string)
	SetLanguage(id domain.RoomID, language string)

	// Presence returns the current member names, empty for unknown rooms.
	Presence(id domain.RoomID) []string
	// Snapshot reads the current document state for the initial sync of
	// a joiner.
	Snapshot(id domain.RoomID) (code, language string, ok bool)

	Get(id domain.RoomID) (RoomService, bool)
	List() []RoomInfo
}
