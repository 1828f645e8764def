package editor

import (
	"encoding/json"
	"time"
)

// ─────────────────────────────────────────────────────────────
// Change log — serializable mutation commands
// ─────────────────────────────────────────────────────────────
//
// Every scene mutation is recorded as a discrete command. The log is
// append-only and pruned from the front; it exists so that undo can be
// added later by replay, without changing the mutation contract.

// changeLogCap bounds the retained history.
const changeLogCap = 40

// Command op codes.
const (
	OpAdd    = "add"
	OpUpdate = "update"
	OpDelete = "delete"
)

// Command is one serializable scene mutation.
type Command struct {
	Op        string          `json:"op"`
	ElementID string          `json:"elementId"`
	Payload   json.RawMessage `json:"payload,omitempty"`
	At        time.Time       `json:"at"`
}

// ChangeLog is a bounded append-only command log.
type ChangeLog struct {
	max     int
	entries []Command
}

// NewChangeLog creates a log retaining at most max commands.
func NewChangeLog(max int) *ChangeLog {
	if max <= 0 {
		max = changeLogCap
	}
	return &ChangeLog{max: max}
}

// Record appends a command. The payload is snapshotted to JSON immediately
// so later mutations of the source value can't rewrite history.
func (l *ChangeLog) Record(op, elementID string, payload any) {
	var raw json.RawMessage
	if payload != nil {
		data, err := json.Marshal(payload)
		if err == nil {
			raw = data
		}
	}
	l.entries = append(l.entries, Command{
		Op:        op,
		ElementID: elementID,
		Payload:   raw,
		At:        time.Now(),
	})
	if len(l.entries) > l.max {
		l.entries = l.entries[len(l.entries)-l.max:]
	}
}

// Commands returns the retained commands, oldest first.
func (l *ChangeLog) Commands() []Command {
	out := make([]Command, len(l.entries))
	copy(out, l.entries)
	return out
}

// Len returns the number of retained commands.
func (l *ChangeLog) Len() int { return len(l.entries) }
