// Package session produces the per-run session identifier that correlates
// every request from one bizchat process with server-side conversation state.
package session

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// IDLength is the number of characters in a session identifier.
const IDLength = 8

// Session holds the identifier for one process run. The identifier is
// generated once and reused for every request until the process exits.
type Session struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"created_at"`
}

// New creates a session with a freshly generated identifier.
func New() *Session {
	return &Session{
		ID:        NewID(),
		CreatedAt: time.Now(),
	}
}

// NewID returns a short opaque alphanumeric identifier derived from a single
// random draw. Uniqueness is best-effort, not cryptographic: the identifier
// only scopes conversation state on the server side.
func NewID() string {
	id := strings.ReplaceAll(uuid.New().String(), "-", "")
	return id[:IDLength]
}
