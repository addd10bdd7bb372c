package bus

import (
	"sync"

	"github.com/google/uuid"
)

// Handler receives a channel's payload.
type Handler[T any] func(data T)

// Channel is a broadcast endpoint. Publication is always deferred: Publish
// posts a single delivery task through the scheduler and never runs
// handlers on the caller's stack, so publishing from inside a handler
// cannot recurse.
type Channel[T any] struct {
	name string
	post Poster

	mu   sync.Mutex
	subs []subscriber[T]
}

type subscriber[T any] struct {
	id string
	fn Handler[T]
}

func newChannel[T any](name string, post Poster) *Channel[T] {
	return &Channel[T]{name: name, post: post}
}

// Name returns the channel's declaration key string.
func (c *Channel[T]) Name() string {
	return c.name
}

// Subscribe registers fn for future deliveries and returns a scoped handle.
// Closing the handle removes the subscriber from deliveries dispatched
// after the close; a delivery already dispatched still runs with the
// subscriber set it observed.
func (c *Channel[T]) Subscribe(fn Handler[T]) *Subscription {
	id := uuid.NewString()

	c.mu.Lock()
	c.subs = append(c.subs, subscriber[T]{id: id, fn: fn})
	c.mu.Unlock()

	return newSubscription(id, func() { c.remove(id) })
}

// Publish posts one delivery task at the given priority. With no
// subscribers it performs no scheduling work at all. The task, when the
// scheduler dispatches it, invokes every subscriber current at that
// moment with data.
func (c *Channel[T]) Publish(priority int, data T) {
	if !c.HasSubscribers() {
		return
	}
	c.post.Post(priority, func() {
		for _, fn := range c.snapshot() {
			fn(data)
		}
	})
}

// HasSubscribers reports whether any subscription is live.
func (c *Channel[T]) HasSubscribers() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.subs) > 0
}

// SubscriberCount returns the number of live subscriptions.
func (c *Channel[T]) SubscriberCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.subs)
}

// snapshot copies the current handler set so delivery runs outside the
// lock and is unaffected by subscribe/unsubscribe from inside handlers.
func (c *Channel[T]) snapshot() []Handler[T] {
	c.mu.Lock()
	defer c.mu.Unlock()
	fns := make([]Handler[T], len(c.subs))
	for i, s := range c.subs {
		fns[i] = s.fn
	}
	return fns
}

func (c *Channel[T]) remove(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i, s := range c.subs {
		if s.id == id {
			c.subs = append(c.subs[:i], c.subs[i+1:]...)
			return
		}
	}
}
