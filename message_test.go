package flowtopic

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestNewMessageGeneratesID(t *testing.T) {
	m := NewMessage([]byte("payload"), 1, 50)
	require.NotEmpty(t, m.ID)
	require.Equal(t, []byte("payload"), m.Content)
	require.WithinDuration(t, time.Now(), m.CreatedAt, time.Second)
}

func TestNewMessageWithIDKeepsCallerID(t *testing.T) {
	m := NewMessageWithID("job-42", []byte("payload"), 3, 10)
	require.Equal(t, "job-42", m.ID)
	require.Equal(t, 3, m.Priority)
	require.Equal(t, 10, m.WorkMS)
}

func TestNewMessageGeneratesDistinctIDs(t *testing.T) {
	a := NewMessage([]byte("a"), 0, 0)
	b := NewMessage([]byte("b"), 0, 0)
	require.NotEqual(t, a.ID, b.ID)
}

func TestMessageExpiredNoTTL(t *testing.T) {
	m := NewMessageWithID("x", nil, 0, 0)
	m.CreatedAt = time.Now().Add(-time.Hour)
	require.False(t, m.expired(time.Now(), 0))
}

func TestMessageExpired(t *testing.T) {
	m := NewMessageWithID("x", nil, 0, 0)
	m.CreatedAt = time.Now().Add(-100 * time.Millisecond)

	require.True(t, m.expired(time.Now(), 50*time.Millisecond))
	require.False(t, m.expired(time.Now(), time.Second))
}
