package main

import (
	"context"
	"time"

	"github.com/flowtopic/flowtopic"
)

const dequeueWaitTimeout = 200 * time.Millisecond

// process simulates the time a real handler would spend on msg and
// records it, the way original_source/consumer.py's make_processor does.
func process(s *stats, workerName string, msg flowtopic.Message) {
	start := time.Now()
	if msg.WorkMS > 0 {
		time.Sleep(time.Duration(msg.WorkMS) * time.Millisecond)
	}
	s.record(workerName, msg.Priority, time.Since(start))
}

// runWorkQueueConsumer competes with other consumers on topic until ctx
// is cancelled, draining any already-buffered message before exiting.
func runWorkQueueConsumer(ctx context.Context, topic *flowtopic.Topic, workerName string, s *stats) {
	timeout := dequeueWaitTimeout
	for {
		if ctx.Err() != nil {
			msg, ok, _ := topic.Dequeue(false, nil)
			if !ok {
				return
			}
			process(s, workerName, msg)
			continue
		}

		msg, ok, _ := topic.Dequeue(true, &timeout)
		if !ok {
			continue
		}
		process(s, workerName, msg)
	}
}

// runFanoutConsumer reads sub's own buffer until ctx is cancelled.
func runFanoutConsumer(ctx context.Context, topic *flowtopic.Topic, sub *flowtopic.Subscription, workerName string, s *stats) {
	timeout := dequeueWaitTimeout
	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		msg, ok, _ := topic.FanoutDequeue(sub, true, &timeout)
		if !ok {
			continue
		}
		process(s, workerName, msg)
	}
}
