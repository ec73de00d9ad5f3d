package mocks

import (
	"sync"

	"github.com/user/colorlog/pkg/ports"
)

// Entry is one call recorded by Sink.
type Entry struct {
	Level ports.LogLevel
	Msg   string
	Err   error
}

// Sink is a mock implementation of ports.Sink that records every call.
type Sink struct {
	mu      sync.RWMutex
	entries []Entry
}

// NewSink creates a new mock Sink.
func NewSink() *Sink {
	return &Sink{}
}

func (m *Sink) Log(level ports.LogLevel, msg string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries = append(m.entries, Entry{Level: level, Msg: msg})
}

func (m *Sink) LogError(level ports.LogLevel, msg string, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries = append(m.entries, Entry{Level: level, Msg: msg, Err: err})
}

// Entries returns a copy of the recorded calls (for test verification).
func (m *Sink) Entries() []Entry {
	m.mu.RLock()
	defer m.mu.RUnlock()
	result := make([]Entry, len(m.entries))
	copy(result, m.entries)
	return result
}

var _ ports.Sink = (*Sink)(nil)
