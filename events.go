package flowtopic

import (
	"context"
	"time"

	cloudevents "github.com/cloudevents/sdk-go/v2"
	"github.com/google/uuid"
)

// Event type constants for the lifecycle notifications a Topic can
// emit through its Observer, following the reverse-domain-notation
// convention of CloudEvents.
const (
	EventTypeTopicCreated    = "io.flowtopic.topic.created"
	EventTypeSubscriberAdded = "io.flowtopic.subscriber.added"
	EventTypeTopicTornDown   = "io.flowtopic.topic.torndown"
)

// Observer receives best-effort lifecycle notifications from a Topic.
// It is invoked in its own goroutine so a slow or blocking observer
// never delays a producer or consumer; delivery to Observer carries no
// ordering or at-least-once guarantee and is not part of the message
// delivery contract itself.
type Observer func(ctx context.Context, event cloudevents.Event)

func (t *Topic) emit(eventType string, data map[string]interface{}) {
	if t.observer == nil {
		return
	}

	ev := cloudevents.NewEvent()
	ev.SetID(uuid.New().String())
	ev.SetSource("flowtopic/" + t.name)
	ev.SetType(eventType)
	ev.SetTime(time.Now())
	if data != nil {
		_ = ev.SetData(cloudevents.ApplicationJSON, data)
	}

	observer := t.observer
	go observer(context.Background(), ev)
}
