package signal

import (
	"encoding/json"

	"github.com/rs/zerolog/log"

	"github.com/dkeye/Collab/internal/core"
	"github.com/dkeye/Collab/internal/domain"
)

func (ctl *SignalWSController) handleCodeChange(sid core.SessionID, data []byte) {
	type codePayload struct {
		Type string `json:"type"`
		Room string `json:"roomId"`
		Code string `json:"code"`
	}
	var p codePayload
	if err := json.Unmarshal(data, &p); err != nil {
		log.Debug().Err(err).Str("module", "signal").Msg("bad codeChange payload, dropped")
		return
	}
	ctl.Orch.CodeChange(sid, domain.RoomID(p.Room), p.Code)
}

func (ctl *SignalWSController) handleTyping(sid core.SessionID, data []byte) {
	type typingPayload struct {
		Type string `json:"type"`
		Room string `json:"roomId"`
	}
	var p typingPayload
	if err := json.Unmarshal(data, &p); err != nil {
		log.Debug().Err(err).Str("module", "signal").Msg("bad typing payload, dropped")
		return
	}
	ctl.Orch.Typing(sid, domain.RoomID(p.Room))
}

func (ctl *SignalWSController) handleLanguageChange(sid core.SessionID, data []byte) {
	type languagePayload struct {
		Type     string `json:"type"`
		Room     string `json:"roomId"`
		Language string `json:"language"`
	}
	var p languagePayload
	if err := json.Unmarshal(data, &p); err != nil {
		log.Debug().Err(err).Str("module", "signal").Msg("bad languageChange payload, dropped")
		return
	}
	ctl.Orch.LanguageChange(sid, domain.RoomID(p.Room), p.Language)
}
