package flowtopic

import "errors"

var (
	// ErrWrongMode is returned when an operation is called on a Topic
	// in the wrong mode — Dequeue on a fan-out topic, Subscribe or
	// FanoutDequeue on a work-queue topic. It indicates a programmer
	// bug, not a runtime condition, and is not retryable.
	ErrWrongMode = errors.New("flowtopic: operation not valid in this topic's mode")

	// ErrDuplicateSubscriber is returned by Subscribe when the given
	// name is already registered on the Topic.
	ErrDuplicateSubscriber = errors.New("flowtopic: subscriber already exists")

	// ErrTopicStopped is returned by Subscribe when it is called on a
	// fan-out Topic after Teardown. Enqueue, Dequeue and FanoutDequeue
	// do not return it.
	ErrTopicStopped = errors.New("flowtopic: topic has been torn down")
)
