package audit

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Action enumerates the destructive or state-changing operations that get
// audited.
type Action string

const (
	ActionMessageDeleted Action = "messageDeleted"
	ActionQueuePurged    Action = "queuePurged"
	ActionQueueDeleted   Action = "queueDeleted"
	ActionQueueCreated   Action = "queueCreated"
	ActionMessageSent    Action = "messageSent"
)

// Entry is one immutable audit record.
type Entry struct {
	ID           string    `json:"id"`
	Timestamp    time.Time `json:"timestamp"`
	Action       Action    `json:"action"`
	Resource     string    `json:"resource"`
	Detail       string    `json:"detail,omitempty"`
	QueueManager string    `json:"queue_manager,omitempty"`
	Actor        string    `json:"actor,omitempty"`
}

// Log is the process-wide append-only audit trail. Entries are kept oldest
// first internally and presented most-recent-first; a single mutex guards
// append, read, clear, and export so no reader observes a mid-append state.
type Log struct {
	mu       sync.Mutex
	entries  []Entry
	capacity int
}

// NewLog creates a log. capacity <= 0 means unbounded; otherwise the oldest
// entries are evicted once the capacity is exceeded.
func NewLog(capacity int) *Log {
	return &Log{capacity: capacity}
}

// Record appends one entry, filling in id and timestamp, and returns it.
func (l *Log) Record(action Action, resource string) Entry {
	return l.RecordDetail(action, resource, "", "", "")
}

// RecordDetail appends one entry with the optional fields set.
func (l *Log) RecordDetail(action Action, resource, detail, queueManager, actor string) Entry {
	entry := Entry{
		ID:           uuid.New().String(),
		Timestamp:    time.Now().UTC(),
		Action:       action,
		Resource:     resource,
		Detail:       detail,
		QueueManager: queueManager,
		Actor:        actor,
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries = append(l.entries, entry)
	if l.capacity > 0 && len(l.entries) > l.capacity {
		over := len(l.entries) - l.capacity
		l.entries = append(l.entries[:0:0], l.entries[over:]...)
	}
	return entry
}

// Entries returns a most-recent-first snapshot.
func (l *Log) Entries() []Entry {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]Entry, len(l.entries))
	for i, e := range l.entries {
		out[len(l.entries)-1-i] = e
	}
	return out
}

// Len returns the current number of entries.
func (l *Log) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.entries)
}

// Clear drops all entries.
func (l *Log) Clear() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries = nil
}
