package main

import (
	"sync"
	"time"
)

// stats is a concurrency-safe aggregator of per-worker processed counts
// and per-priority timing, mirroring original_source/stats.py's Stats
// class.
type stats struct {
	mu             sync.Mutex
	workerProcessed map[string]int
	priorityTimeSum map[int]time.Duration
	priorityCount   map[int]int
	startedAt       time.Time
}

func newStats() *stats {
	return &stats{
		workerProcessed: make(map[string]int),
		priorityTimeSum: make(map[int]time.Duration),
		priorityCount:   make(map[int]int),
		startedAt:       time.Now(),
	}
}

func (s *stats) record(worker string, priority int, elapsed time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.workerProcessed[worker]++
	s.priorityTimeSum[priority] += elapsed
	s.priorityCount[priority]++
}

type statsSnapshot struct {
	WorkerProcessed map[string]int   `json:"worker_processed"`
	PriorityAvgMS   map[int]float64  `json:"priority_avg_ms"`
	PriorityCount   map[int]int      `json:"priority_count"`
	UptimeSeconds   float64          `json:"uptime_seconds"`
}

func (s *stats) snapshot() statsSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	workers := make(map[string]int, len(s.workerProcessed))
	for k, v := range s.workerProcessed {
		workers[k] = v
	}

	avg := make(map[int]float64, len(s.priorityTimeSum))
	counts := make(map[int]int, len(s.priorityCount))
	for pri, sum := range s.priorityTimeSum {
		count := s.priorityCount[pri]
		counts[pri] = count
		if count > 0 {
			avg[pri] = float64(sum.Milliseconds()) / float64(count)
		}
	}

	return statsSnapshot{
		WorkerProcessed: workers,
		PriorityAvgMS:   avg,
		PriorityCount:   counts,
		UptimeSeconds:   time.Since(s.startedAt).Seconds(),
	}
}
