package conversation

import (
	"sync"
	"time"

	"multilanguage-agent/internal/langid"
)

// Entry is one completed exchange. Entries are values and never change after Append.
type Entry struct {
	Utterance    string
	Reply        string
	Label        langid.Label
	LabelDisplay string
	Persona      string // empty when the fallback answered
	CreatedAt    time.Time
}

// Log is an append-only, clearable, per-session sequence of entries.
type Log struct {
	mu      sync.Mutex
	entries []Entry
}

// NewLog returns an empty log.
func NewLog() *Log {
	return &Log{}
}

// Append adds e at the end of the log.
func (l *Log) Append(e Entry) {
	l.mu.Lock()
	l.entries = append(l.entries, e)
	l.mu.Unlock()
}

// Clear empties the log.
func (l *Log) Clear() {
	l.mu.Lock()
	l.entries = nil
	l.mu.Unlock()
}

// All returns a copy of the entries in insertion order.
func (l *Log) All() []Entry {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]Entry, len(l.entries))
	copy(out, l.entries)
	return out
}

// Len returns the number of entries.
func (l *Log) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.entries)
}

// --- UseCase Inputs ---

type SendInput struct {
	Text string
}

// --- UseCase Outputs ---

type SendOutput struct {
	Entry     Entry
	Detection langid.Detection
	Fallback  bool
	Failed    bool // generation failed; Entry.Reply carries the error text
}

type HistoryOutput struct {
	Entries []Entry
}
