package signal

import (
	"encoding/json"

	"github.com/rs/zerolog/log"

	"github.com/dkeye/Collab/internal/core"
	"github.com/dkeye/Collab/internal/domain"
)

func (ctl *SignalWSController) handleJoin(sid core.SessionID, data []byte) {
	type joinPayload struct {
		Type string `json:"type"`
		Room string `json:"roomId"`
		Name string `json:"displayName"`
	}
	var p joinPayload
	if err := json.Unmarshal(data, &p); err != nil {
		log.Debug().Err(err).Str("module", "signal").Msg("bad join payload, dropped")
		return
	}

	// Room ids and display names are opaque strings, accepted as-is.
	log.Info().Str("module", "signal").Str("sid", string(sid)).Str("room", p.Room).Str("name", p.Name).Msg("join")
	ctl.Orch.Join(sid, domain.RoomID(p.Room), p.Name)
}

// handleLeave takes the session out of its current room without breaking
// the connection. The room id comes from session state, not the payload.
func (ctl *SignalWSController) handleLeave(sid core.SessionID) {
	log.Info().Str("module", "signal").Str("sid", string(sid)).Msg("leave")
	ctl.Orch.Leave(sid)
}
