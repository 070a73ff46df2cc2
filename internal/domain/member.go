// Package domain contains entity types without logic, just meta-data.
package domain

// Member represents a session's participation meta for a room: the display
// name it joined with. Names are opaque client-supplied strings; uniqueness
// is not enforced, the presence list collapses equal names.
type Member struct {
	Name string
}

// NewMember is a tiny helper to avoid ad-hoc struct literals in adapters.
func NewMember(name string) *Member {
	return &Member{Name: name}
}
