// Package chat provides the conversation log and the deterministic
// context builder that turns it into a gateway request.
package chat

import "sync"

// Role constants define valid message roles.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Message is one turn in the conversation. Attachment, when set, is the
// data URL of the gallery artifact the turn was sent with.
type Message struct {
	Role       string `json:"role"`
	Text       string `json:"text"`
	Attachment string `json:"attachment,omitempty"`
}

// Log is the append-only record of the conversation, in strict
// chronological send/receive order. Assistant replies always follow the
// user turn they answer, so the log is exactly the interleaving of
// submitted and received turns.
//
// Log is safe for concurrent use. The zero value is NOT useful - use
// NewLog().
type Log struct {
	mu       sync.RWMutex
	messages []Message
}

// NewLog creates an empty conversation log.
func NewLog() *Log {
	return &Log{messages: make([]Message, 0)}
}

// Append adds a message at the end of the log.
func (l *Log) Append(m Message) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.messages = append(l.messages, m)
}

// Messages returns a copy of the log for thread-safe access.
func (l *Log) Messages() []Message {
	l.mu.RLock()
	defer l.mu.RUnlock()
	result := make([]Message, len(l.messages))
	copy(result, l.messages)
	return result
}

// Len returns the number of messages.
func (l *Log) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.messages)
}

// Clear resets the log to empty.
func (l *Log) Clear() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.messages = make([]Message, 0)
}
