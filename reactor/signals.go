package reactor

import (
	"os"
	"os/signal"
)

// Signals routes OS signals to a handler posted on a reactor, so signal
// handling happens cooperatively on the loop's thread instead of on the
// runtime's signal-delivery goroutine. It stays armed until Close.
type Signals struct {
	r    Reactor
	ch   chan os.Signal
	done chan struct{}
}

// Notify arms sigs and posts handler(sig) to r on every delivery.
// The handler runs whenever the loop next dispatches; if the loop has
// stopped, deliveries are dropped with it.
func Notify(r Reactor, handler func(os.Signal), sigs ...os.Signal) *Signals {
	s := &Signals{
		r:    r,
		ch:   make(chan os.Signal, 4),
		done: make(chan struct{}),
	}
	signal.Notify(s.ch, sigs...)
	go func() {
		defer close(s.done)
		for sig := range s.ch {
			sig := sig
			s.r.Post(func() { handler(sig) })
		}
	}()
	return s
}

// Close disarms the signal set and waits for the delivery goroutine to
// exit. Signals already posted to the reactor are unaffected.
func (s *Signals) Close() {
	signal.Stop(s.ch)
	close(s.ch)
	<-s.done
}
