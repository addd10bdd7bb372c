package reactor

import "sync"

// Reactor is the boundary the runtime depends on: post a handler from any
// goroutine, run one ready handler (blocking or not), and stop.
type Reactor interface {
	// Post enqueues fn for delivery on the loop. Safe from any goroutine.
	Post(fn func())

	// RunOne blocks until it runs one handler or the loop stops.
	// It returns true if a handler ran.
	RunOne() bool

	// PollOne runs one immediately-ready handler without blocking.
	// It returns true if a handler ran.
	PollOne() bool

	// Stop halts the loop: pending and future handlers are never run and
	// any blocked RunOne returns false. Stop is idempotent and safe from
	// any goroutine.
	Stop()

	// Stopped reports whether Stop has been called.
	Stopped() bool
}

// Loop is the default Reactor implementation.
//
// The ready queue is unbounded so producers never block; the signal
// channel exists only to wake a single blocked RunOne caller.
type Loop struct {
	mu      sync.Mutex
	ready   []func()
	stopped bool
	signal  chan struct{} // Wakes RunOne (buffered, size 1).
}

// NewLoop creates an empty, running loop.
func NewLoop() *Loop {
	return &Loop{
		ready:  make([]func(), 0, 16),
		signal: make(chan struct{}, 1),
	}
}

// Post enqueues fn for delivery on the loop. Posting to a stopped loop
// drops the handler, mirroring an event loop that no longer dispatches.
func (l *Loop) Post(fn func()) {
	l.mu.Lock()
	if l.stopped {
		l.mu.Unlock()
		return
	}
	l.ready = append(l.ready, fn)
	l.mu.Unlock()
	l.wake()
}

// PollOne runs one immediately-ready handler without blocking.
func (l *Loop) PollOne() bool {
	fn := l.take()
	if fn == nil {
		return false
	}
	fn()
	return true
}

// RunOne blocks until it runs one handler or the loop stops.
func (l *Loop) RunOne() bool {
	for {
		if fn := l.take(); fn != nil {
			fn()
			return true
		}
		l.mu.Lock()
		stopped := l.stopped
		l.mu.Unlock()
		if stopped {
			return false
		}
		<-l.signal
	}
}

// Stop halts the loop and wakes any blocked RunOne caller.
func (l *Loop) Stop() {
	l.mu.Lock()
	l.stopped = true
	l.mu.Unlock()
	l.wake()
}

// Stopped reports whether Stop has been called.
func (l *Loop) Stopped() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.stopped
}

// Pending returns the number of handlers waiting for delivery.
func (l *Loop) Pending() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.ready)
}

// take removes and returns the oldest ready handler, or nil if the loop is
// stopped or empty.
func (l *Loop) take() func() {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.stopped || len(l.ready) == 0 {
		return nil
	}
	fn := l.ready[0]
	l.ready[0] = nil
	l.ready = l.ready[1:]
	return fn
}

// wake nudges a blocked RunOne caller. Non-blocking: a full signal channel
// means a wakeup is already pending.
func (l *Loop) wake() {
	select {
	case l.signal <- struct{}{}:
	default:
	}
}
