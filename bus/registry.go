package bus

import (
	"fmt"
	"sync"
)

// Poster defers work through the scheduler at a given priority. Satisfied
// by *scheduler.Scheduler.
type Poster interface {
	Post(priority int, fn func())
}

// Registry owns every channel and method endpoint for one application.
// Endpoints are constructed at most once per key for the process lifetime.
type Registry struct {
	mu       sync.Mutex
	post     Poster
	channels map[string]any
	methods  map[string]any
}

// NewRegistry creates an empty endpoint registry whose channels defer
// delivery through post.
func NewRegistry(post Poster) *Registry {
	return &Registry{
		post:     post,
		channels: make(map[string]any),
		methods:  make(map[string]any),
	}
}

// GetChannel returns the channel declared by key, constructing and
// memoizing it on first lookup. Every caller that agrees on the key shares
// the same instance. A key string reused with a different payload type
// returns ErrEndpointType.
func GetChannel[T any](r *Registry, key ChannelKey[T]) (*Channel[T], error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if ep, ok := r.channels[string(key)]; ok {
		ch, ok := ep.(*Channel[T])
		if !ok {
			return nil, fmt.Errorf("channel %q: %w", string(key), ErrEndpointType)
		}
		return ch, nil
	}

	ch := newChannel[T](string(key), r.post)
	r.channels[string(key)] = ch
	return ch, nil
}

// GetMethod returns the method declared by key, constructing and memoizing
// it on first lookup. A key string reused with a different signature
// returns ErrEndpointType.
func GetMethod[Req any, Resp any](r *Registry, key MethodKey[Req, Resp]) (*Method[Req, Resp], error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if ep, ok := r.methods[string(key)]; ok {
		m, ok := ep.(*Method[Req, Resp])
		if !ok {
			return nil, fmt.Errorf("method %q: %w", string(key), ErrEndpointType)
		}
		return m, nil
	}

	m := newMethod[Req, Resp](string(key))
	r.methods[string(key)] = m
	return m, nil
}
