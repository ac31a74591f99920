// Package transcript holds the ordered, append-only conversation transcript
// shown to the user. Entries live in memory only and are discarded when the
// process exits.
package transcript

import (
	"sync"
	"time"
)

// Origin identifies who produced a transcript entry.
type Origin string

const (
	OriginUser Origin = "user"
	OriginBot  Origin = "bot"
)

// Entry is a single rendered message.
type Entry struct {
	Text   string
	Origin Origin
	At     time.Time
}

// Transcript is an append-only sequence of entries in insertion order.
// It is safe for concurrent use: asynchronous exchanges append bot entries
// from their own goroutines.
type Transcript struct {
	mu       sync.Mutex
	greeting string
	entries  []Entry
}

// New creates a transcript seeded with the given greeting as its first
// bot entry. Clear reseeds with the same greeting.
func New(greeting string) *Transcript {
	t := &Transcript{greeting: greeting}
	t.entries = []Entry{{Text: greeting, Origin: OriginBot, At: time.Now()}}
	return t
}

// Append adds an entry and returns it. Appending always succeeds.
func (t *Transcript) Append(text string, origin Origin) Entry {
	e := Entry{Text: text, Origin: origin, At: time.Now()}
	t.mu.Lock()
	t.entries = append(t.entries, e)
	t.mu.Unlock()
	return e
}

// Entries returns a copy of the transcript in insertion order.
func (t *Transcript) Entries() []Entry {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make([]Entry, len(t.entries))
	copy(out, t.entries)
	return out
}

// Len returns the number of entries.
func (t *Transcript) Len() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.entries)
}

// Last returns the most recent entry. The second return is false only for
// an empty transcript, which New and Clear never leave behind.
func (t *Transcript) Last() (Entry, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if len(t.entries) == 0 {
		return Entry{}, false
	}
	return t.entries[len(t.entries)-1], true
}

// Clear empties the transcript and reseeds it with the greeting, leaving
// exactly one entry regardless of prior contents.
func (t *Transcript) Clear() {
	t.mu.Lock()
	t.entries = []Entry{{Text: t.greeting, Origin: OriginBot, At: time.Now()}}
	t.mu.Unlock()
}
