package app

import (
	"testing"

	"github.com/dkeye/Collab/internal/core"
	"github.com/dkeye/Collab/internal/domain"
)

type nopConn struct{}

func (nopConn) TrySend(core.Frame) error { return nil }
func (nopConn) Close()                   {}

func session(name string) core.MemberSession {
	return core.NewMemberSession(domain.NewMember(name), nopConn{})
}

func TestJoinCreatesRoomAndAccumulatesPresence(t *testing.T) {
	m := NewRoomManager()

	got := m.Join("r1", "s1", session("alice"))
	if len(got) != 1 || got[0] != "alice" {
		t.Fatalf("presence = %v, want [alice]", got)
	}

	got = m.Join("r1", "s2", session("bob"))
	if len(got) != 2 || got[0] != "alice" || got[1] != "bob" {
		t.Fatalf("presence = %v, want [alice bob]", got)
	}

	if len(m.List()) != 1 {
		t.Fatalf("rooms = %v, want one", m.List())
	}
}

func TestLeaveRemovesEmptyRoomImmediately(t *testing.T) {
	m := NewRoomManager()
	m.Join("r1", "s1", session("alice"))
	m.Join("r1", "s2", session("bob"))
	m.SetCode("r1", "x=1")

	presence, removed := m.Leave("r1", "s1")
	if removed {
		t.Fatalf("room removed while bob remains")
	}
	if len(presence) != 1 || presence[0] != "bob" {
		t.Fatalf("presence = %v, want [bob]", presence)
	}

	_, removed = m.Leave("r1", "s2")
	if !removed {
		t.Fatalf("room not removed after last leave")
	}
	if len(m.List()) != 0 {
		t.Fatalf("rooms = %v, want none", m.List())
	}

	// A rejoin starts from defaults, not the prior buffer.
	m.Join("r1", "s3", session("carol"))
	code, language, ok := m.Snapshot("r1")
	if !ok {
		t.Fatalf("snapshot missing for recreated room")
	}
	if code != domain.DefaultCode || language != domain.DefaultLanguage {
		t.Fatalf("recreated room document = %q/%q, want defaults", code, language)
	}
}

func TestLeaveIsIdempotent(t *testing.T) {
	m := NewRoomManager()
	m.Join("r1", "s1", session("alice"))
	m.Join("r1", "s2", session("bob"))

	if _, removed := m.Leave("r1", "s1"); removed {
		t.Fatalf("unexpected removal")
	}
	presence, removed := m.Leave("r1", "s1")
	if presence != nil || removed {
		t.Fatalf("second leave = (%v, %v), want no-op", presence, removed)
	}
}

func TestUnknownRoomOpsAreNoOps(t *testing.T) {
	m := NewRoomManager()

	if presence, removed := m.Leave("ghost", "s1"); presence != nil || removed {
		t.Fatalf("leave on unknown room = (%v, %v)", presence, removed)
	}
	m.SetCode("ghost", "x")
	m.SetLanguage("ghost", "go")
	if got := m.Presence("ghost"); len(got) != 0 {
		t.Fatalf("presence = %v, want empty", got)
	}
	if _, _, ok := m.Snapshot("ghost"); ok {
		t.Fatalf("snapshot ok for unknown room")
	}
	if len(m.List()) != 0 {
		t.Fatalf("writes to unknown rooms must not create state")
	}
}

func TestLastWriteWinsReplication(t *testing.T) {
	m := NewRoomManager()
	m.Join("r1", "s1", session("alice"))

	m.SetCode("r1", "first")
	m.SetCode("r1", "second")
	// A stale update arriving late still overwrites; there is no merging.
	m.SetCode("r1", "first")
	m.SetLanguage("r1", "python")

	code, language, _ := m.Snapshot("r1")
	if code != "first" || language != "python" {
		t.Fatalf("document = %q/%q, want first/python", code, language)
	}
}
