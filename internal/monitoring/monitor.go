package monitoring

import (
	"sync"
	"time"
)

// Monitor collects lightweight runtime statistics for the stats
// endpoint, separate from the Prometheus collectors.
type Monitor struct {
	mu          sync.RWMutex
	startTime   time.Time
	invocations map[string]int64
	chatTurns   map[string]int64
	lastQuery   time.Time
}

// NewMonitor creates a new monitoring instance
func NewMonitor() *Monitor {
	return &Monitor{
		startTime:   time.Now(),
		invocations: make(map[string]int64),
		chatTurns:   make(map[string]int64),
	}
}

// RecordInvocation counts one tool invocation by operation name
func (m *Monitor) RecordInvocation(operation string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.invocations[operation]++
	m.lastQuery = time.Now()
}

// RecordChatTurn counts one chat turn by role
func (m *Monitor) RecordChatTurn(role string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.chatTurns[role]++
}

// Stats returns a snapshot of the runtime statistics
func (m *Monitor) Stats() map[string]interface{} {
	m.mu.RLock()
	defer m.mu.RUnlock()

	invocations := make(map[string]int64, len(m.invocations))
	for k, v := range m.invocations {
		invocations[k] = v
	}
	turns := make(map[string]int64, len(m.chatTurns))
	for k, v := range m.chatTurns {
		turns[k] = v
	}

	stats := map[string]interface{}{
		"uptime_seconds":   time.Since(m.startTime).Seconds(),
		"tool_invocations": invocations,
		"chat_turns":       turns,
	}
	if !m.lastQuery.IsZero() {
		stats["last_invocation"] = m.lastQuery.Format(time.RFC3339)
	}
	return stats
}

// Reset clears all counters
func (m *Monitor) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.invocations = make(map[string]int64)
	m.chatTurns = make(map[string]int64)
	m.lastQuery = time.Time{}
}
