package debuglog

import (
	"sync"
	"time"
)

// DefaultCapacity is the number of entries retained before FIFO eviction.
const DefaultCapacity = 50

// Entry is one captured debug line.
type Entry struct {
	Time    time.Time              `json:"time"`
	Level   string                 `json:"level"`
	Message string                 `json:"message"`
	Fields  map[string]interface{} `json:"fields,omitempty"`
}

// Buffer is a bounded in-memory log ring. Oldest entries are evicted first
// once capacity is reached. Safe for concurrent use; the owner injects it
// into whatever needs to append or read.
type Buffer struct {
	mu       sync.Mutex
	entries  []Entry
	capacity int
}

// New creates a buffer with the given capacity; non-positive values fall
// back to DefaultCapacity.
func New(capacity int) *Buffer {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Buffer{capacity: capacity}
}

// Append records an entry, evicting the oldest when full.
func (b *Buffer) Append(level, message string, fields map[string]interface{}) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if len(b.entries) >= b.capacity {
		b.entries = b.entries[1:]
	}
	b.entries = append(b.entries, Entry{
		Time:    time.Now().UTC(),
		Level:   level,
		Message: message,
		Fields:  fields,
	})
}

// Entries returns a copy of the current contents, oldest first.
func (b *Buffer) Entries() []Entry {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]Entry, len(b.entries))
	copy(out, b.entries)
	return out
}

// Clear drops all entries.
func (b *Buffer) Clear() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.entries = nil
}

// Len reports the number of retained entries.
func (b *Buffer) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.entries)
}
