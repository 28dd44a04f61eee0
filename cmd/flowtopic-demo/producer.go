package main

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/flowtopic/flowtopic"
)

// priorityWeights mirrors original_source/producer.py's random.choices
// weighting across priorities 1, 2, 3.
var priorityWeights = []int{2, 5, 3}

var workMSRangeByPriority = map[int][2]int{
	1: {25, 60},
	2: {40, 90},
	3: {60, 130},
}

func weightedPriority(rng *rand.Rand) int {
	total := 0
	for _, w := range priorityWeights {
		total += w
	}
	pick := rng.Intn(total)
	for i, w := range priorityWeights {
		if pick < w {
			return i + 1
		}
		pick -= w
	}
	return len(priorityWeights)
}

// runProducer continuously builds messages and enqueues them to topic
// until ctx is cancelled, pacing itself with a small random sleep the
// way producer_loop does.
func runProducer(ctx context.Context, topic *flowtopic.Topic, name string, seed int64) {
	rng := rand.New(rand.NewSource(seed))
	n := 0

	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		n++
		priority := weightedPriority(rng)
		workRange := workMSRangeByPriority[priority]
		workMS := workRange[0] + rng.Intn(workRange[1]-workRange[0]+1)

		msg := flowtopic.NewMessage([]byte(fmt.Sprintf("%s: payload %d", name, n)), priority, workMS)
		topic.Enqueue(msg, true, nil)

		sleep := time.Duration(20+rng.Intn(80)) * time.Millisecond
		select {
		case <-ctx.Done():
			return
		case <-time.After(sleep):
		}
	}
}
