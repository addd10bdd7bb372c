package bus

import "sync"

// Subscription is the scoped handle returned by Channel.Subscribe.
// Close unsubscribes; it is idempotent and affects future deliveries only.
type Subscription struct {
	id     string
	once   sync.Once
	cancel func()
}

func newSubscription(id string, cancel func()) *Subscription {
	return &Subscription{id: id, cancel: cancel}
}

// ID returns the unique subscription identifier.
func (s *Subscription) ID() string {
	return s.id
}

// Close removes the subscriber from future deliveries. Deliveries already
// dispatched through the scheduler still run with the handler set they
// captured.
func (s *Subscription) Close() {
	s.once.Do(s.cancel)
}
