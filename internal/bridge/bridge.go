// Package bridge decouples the bus delivery callback from the render
// loop with a single-slot, non-blocking hand-off.
package bridge

import (
	"fmt"
	"sync"
	"sync/atomic"
	"unicode/utf8"

	"github.com/banshee-data/track-overlay/internal/monitoring"
)

// Result carries one raw payload from the bus callback to the render
// loop, or the error produced when the payload bytes were not valid
// text. Forwarding the error lets the consumer log it instead of the
// payload vanishing silently.
type Result struct {
	Payload string
	Err     error
}

// Bridge is a capacity-1 mailbox between the bus delivery goroutine
// (sole producer) and the render loop (sole consumer). The overlay
// should show the most recent completed track, so when the slot is
// occupied a new message is dropped rather than queued: freshness over
// completeness.
type Bridge struct {
	results  chan Result
	done     chan struct{}
	shutdown sync.Once
	disabled atomic.Bool
}

// New creates a Bridge with an empty slot.
func New() *Bridge {
	return &Bridge{
		results: make(chan Result, 1),
		done:    make(chan struct{}),
	}
}

// HandleRaw is the bus delivery callback. Byte-to-text decoding happens
// here, on the delivery goroutine; an invalid payload is forwarded as
// an error result. The hand-off itself never blocks.
func (b *Bridge) HandleRaw(payload []byte) {
	res := Result{Payload: string(payload)}
	if !utf8.Valid(payload) {
		res = Result{Err: fmt.Errorf("payload of %d bytes is not valid UTF-8", len(payload))}
	}
	b.Offer(res)
}

// Offer attempts a non-blocking hand-off to the render loop. A full
// slot drops the new message with a warning. Once the consumer is
// observed gone the bridge disables itself permanently and later offers
// are dropped with a debug trace; this transition is one-way.
func (b *Bridge) Offer(res Result) {
	if b.disabled.Load() {
		monitoring.Debugf("[Bridge] Dropping message because hand-off is disabled")
		return
	}

	select {
	case <-b.done:
		b.disabled.Store(true)
		monitoring.Warnf("[Bridge] Disabling hand-off because the render loop is gone")
		return
	default:
	}

	select {
	case b.results <- res:
	default:
		monitoring.Warnf("[Bridge] Dropping message because the render loop has not drained the previous one")
	}
}

// Results returns the consumer side of the hand-off.
func (b *Bridge) Results() <-chan Result {
	return b.results
}

// Shutdown marks the consumer side gone. Safe to call more than once.
func (b *Bridge) Shutdown() {
	b.shutdown.Do(func() { close(b.done) })
}

// Disabled reports whether the producer latch has tripped.
func (b *Bridge) Disabled() bool {
	return b.disabled.Load()
}
