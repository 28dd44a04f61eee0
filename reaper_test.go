package flowtopic

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestReaperSweepsWorkQueue(t *testing.T) {
	topic := NewTopic("orders", Config{
		TTL:            30 * time.Millisecond,
		EnableReaper:   true,
		ReaperInterval: 10 * time.Millisecond,
	})
	defer topic.Teardown()

	require.True(t, topic.Enqueue(NewMessageWithID("m", nil, 0, 0), true, nil))
	require.Equal(t, 1, topic.Size())

	require.Eventually(t, func() bool {
		return topic.Size() == 0
	}, time.Second, 5*time.Millisecond)
}

func TestReaperSweepsFanoutSubscribers(t *testing.T) {
	topic := NewTopic("events", Config{
		Fanout:         true,
		TTL:            30 * time.Millisecond,
		EnableReaper:   true,
		ReaperInterval: 10 * time.Millisecond,
	})
	defer topic.Teardown()

	_, err := topic.Subscribe("a", 0)
	require.NoError(t, err)
	_, err = topic.Subscribe("b", 0)
	require.NoError(t, err)

	require.True(t, topic.Enqueue(NewMessageWithID("m", nil, 0, 0), true, nil))
	require.Equal(t, 2, topic.Size())

	require.Eventually(t, func() bool {
		return topic.Size() == 0
	}, time.Second, 5*time.Millisecond)
}

func TestNoReaperWithoutTTL(t *testing.T) {
	topic := NewTopic("orders", Config{EnableReaper: true})
	defer topic.Teardown()

	require.True(t, topic.Enqueue(NewMessageWithID("m", nil, 0, 0), true, nil))
	time.Sleep(100 * time.Millisecond)
	require.Equal(t, 1, topic.Size())
}

func TestReaperStopsOnTeardown(t *testing.T) {
	topic := NewTopic("orders", Config{
		TTL:            time.Second,
		EnableReaper:   true,
		ReaperInterval: 10 * time.Millisecond,
	})

	done := make(chan struct{})
	go func() {
		topic.Teardown()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("teardown did not return — reaper failed to stop")
	}
}
