package domain

type RoomID string

// Defaults for a freshly created room. Clients replace both with their
// first codeChange/languageChange.
const (
	DefaultCode     = "// start typing..."
	DefaultLanguage = "javascript"
)

// Room holds the shared document state of one collaboration space.
// Membership and transport live elsewhere.
type Room struct {
	ID       RoomID
	Code     string
	Language string
}

// NewRoom keeps the defaults in one place instead of scattering literals
// over adapters.
func NewRoom(id RoomID) *Room {
	return &Room{ID: id, Code: DefaultCode, Language: DefaultLanguage}
}
