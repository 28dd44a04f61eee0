// Package flowtopic is an in-process message-broker core.
//
// A Topic delivers short-lived Messages from producers to consumers
// under one of two distribution disciplines: work-queue (competing
// consumers, FIFO, each message delivered to exactly one consumer) or
// fan-out (broadcast, every message delivered to every subscriber that
// existed at publish time). Buffers are bounded by an optional capacity
// and retained for an optional time-to-live; a background reaper evicts
// expired messages and frees capacity for blocked producers.
//
// flowtopic is meant to be embedded: callers construct a Topic, attach
// Subscriptions in fan-out mode, and spawn their own producer and
// consumer goroutines. It has no persistence, no network surface, and
// no process-level orchestration of its own.
package flowtopic
