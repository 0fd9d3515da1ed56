// Package models defines the data types exchanged with the analysis service.
package models

// Message roles
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Message represents a single entry in the live conversation. Messages are
// created once, appended in order and never mutated; they are not persisted
// across sessions.
type Message struct {
	ID        string
	Role      string // "user" or "assistant"
	Text      string
	ImagePath string // local path of a downloaded chart, if any
}
