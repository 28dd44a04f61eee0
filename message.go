package flowtopic

import (
	"time"

	"github.com/google/uuid"
)

// Message is an immutable unit of work carried by a Topic. Priority and
// WorkMS are opaque metadata: the core neither inspects nor orders by
// them, and callers are free to leave them at their zero value.
type Message struct {
	ID        string
	Content   []byte
	CreatedAt time.Time
	Priority  int
	WorkMS    int
}

// NewMessage constructs a Message with a generated ID and CreatedAt set
// to now. Use NewMessageWithID when the caller already manages its own
// identifier space.
func NewMessage(content []byte, priority, workMS int) Message {
	return NewMessageWithID(uuid.New().String(), content, priority, workMS)
}

// NewMessageWithID constructs a Message with a caller-supplied ID.
func NewMessageWithID(id string, content []byte, priority, workMS int) Message {
	return Message{
		ID:        id,
		Content:   content,
		CreatedAt: time.Now(),
		Priority:  priority,
		WorkMS:    workMS,
	}
}

// expired reports whether the message is older than ttl as of now. A
// zero ttl means no expiry is configured and the message never expires.
func (m Message) expired(now time.Time, ttl time.Duration) bool {
	if ttl <= 0 {
		return false
	}
	return now.Sub(m.CreatedAt) > ttl
}
