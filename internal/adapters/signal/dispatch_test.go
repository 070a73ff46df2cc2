package signal

import (
	"testing"

	"github.com/dkeye/Collab/internal/app"
	"github.com/dkeye/Collab/internal/app/orch"
	"github.com/dkeye/Collab/internal/config"
	"github.com/dkeye/Collab/internal/core"
	"github.com/dkeye/Collab/internal/domain"
)

type nopConn struct{}

func (nopConn) TrySend(core.Frame) error { return nil }
func (nopConn) Close()                   {}

func newController() *SignalWSController {
	o := &orch.Orchestrator{
		Registry: app.NewRegistry(),
		Rooms:    app.NewRoomManager(),
	}
	return NewSignalWSController(o, &config.Config{})
}

func bind(ctl *SignalWSController, sid core.SessionID) {
	sess := core.NewMemberSession(domain.NewMember(""), nopConn{})
	ctl.Orch.Registry.BindSignal(sid, sess, nil)
}

func TestDispatchJoinAndCodeChange(t *testing.T) {
	ctl := newController()
	bind(ctl, "s1")

	ctl.handleSignal("s1", nil, []byte(`{"type":"join","roomId":"r1","displayName":"alice"}`))
	if got := ctl.Orch.Rooms.Presence("r1"); len(got) != 1 || got[0] != "alice" {
		t.Fatalf("presence = %v, want [alice]", got)
	}

	ctl.handleSignal("s1", nil, []byte(`{"type":"codeChange","roomId":"r1","code":"x=1"}`))
	if code, _, _ := ctl.Orch.Rooms.Snapshot("r1"); code != "x=1" {
		t.Fatalf("code = %q, want x=1", code)
	}

	ctl.handleSignal("s1", nil, []byte(`{"type":"leaveRoom"}`))
	if rooms := ctl.Orch.Rooms.List(); len(rooms) != 0 {
		t.Fatalf("rooms = %v, want none after leave", rooms)
	}
}

func TestDispatchDropsMalformedInput(t *testing.T) {
	ctl := newController()
	bind(ctl, "s1")
	ctl.handleSignal("s1", nil, []byte(`{"type":"join","roomId":"r1","displayName":"alice"}`))

	// None of these may panic, reply, or mutate room state.
	ctl.handleSignal("s1", nil, []byte(`not json`))
	ctl.handleSignal("s1", nil, []byte(`{"type":"selfDestruct"}`))
	ctl.handleSignal("s1", nil, []byte(`{"type":"codeChange","roomId":"r1","code":7}`))

	if code, _, _ := ctl.Orch.Rooms.Snapshot("r1"); code != domain.DefaultCode {
		t.Fatalf("malformed input mutated buffer: %q", code)
	}
}

func TestDispatchIgnoresEventsFromUnjoinedSession(t *testing.T) {
	ctl := newController()
	bind(ctl, "s1")

	ctl.handleSignal("s1", nil, []byte(`{"type":"codeChange","roomId":"r1","code":"x"}`))
	if rooms := ctl.Orch.Rooms.List(); len(rooms) != 0 {
		t.Fatalf("event from unjoined session created state: %v", rooms)
	}
}
