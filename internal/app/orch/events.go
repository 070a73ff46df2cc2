package orch

import (
	"encoding/json"

	"github.com/rs/zerolog/log"

	"github.com/dkeye/Collab/internal/core"
)

// Outbound event variants. One struct per server->client event so payloads
// are closed at the boundary instead of ad-hoc maps.

type presenceEvent struct {
	Type    string   `json:"type"`
	Members []string `json:"members"`
}

type roomStateEvent struct {
	Type     string   `json:"type"`
	RoomID   string   `json:"roomId"`
	Code     string   `json:"code"`
	Language string   `json:"language"`
	Members  []string `json:"members"`
}

type codeUpdateEvent struct {
	Type string `json:"type"`
	Code string `json:"code"`
}

type userTypingEvent struct {
	Type string `json:"type"`
	Name string `json:"displayName"`
}

type languageUpdateEvent struct {
	Type     string `json:"type"`
	Language string `json:"language"`
}

const (
	evUserJoined     = "userJoined"
	evRoomState      = "roomState"
	evCodeUpdate     = "codeUpdate"
	evUserTyping     = "userTyping"
	evLanguageUpdate = "languageUpdate"
)

// encode marshals an event once so a broadcast fans raw bytes out instead
// of re-encoding per member.
func encode(v any) core.Frame {
	b, err := json.Marshal(v)
	if err != nil {
		log.Error().Err(err).Str("module", "orch").Msg("encode event")
		return nil
	}
	return b
}
