package bus

import (
	"fmt"
	"sync"
)

// Method is a synchronous request/response endpoint bound to at most one
// handler. Calls are direct — never deferred through the scheduler — for
// plugins that need an answer on the spot and know only the declaration
// key, not each other's concrete types.
type Method[Req any, Resp any] struct {
	mu      sync.Mutex
	name    string
	handler func(Req) (Resp, error)
}

func newMethod[Req any, Resp any](name string) *Method[Req, Resp] {
	return &Method[Req, Resp]{name: name}
}

// Name returns the method's declaration key string.
func (m *Method[Req, Resp]) Name() string {
	return m.name
}

// Bind installs the handler. A method binds exactly one handler; a second
// Bind returns ErrAlreadyBound.
func (m *Method[Req, Resp]) Bind(h func(Req) (Resp, error)) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.handler != nil {
		return fmt.Errorf("method %q: %w", m.name, ErrAlreadyBound)
	}
	m.handler = h
	return nil
}

// Unbind removes the handler, typically from the providing plugin's
// OnShutdown.
func (m *Method[Req, Resp]) Unbind() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.handler = nil
}

// Bound reports whether a handler is installed.
func (m *Method[Req, Resp]) Bound() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.handler != nil
}

// Call invokes the bound handler synchronously. Calling an unbound method
// returns ErrNoHandler.
func (m *Method[Req, Resp]) Call(req Req) (Resp, error) {
	m.mu.Lock()
	h := m.handler
	m.mu.Unlock()

	if h == nil {
		var zero Resp
		return zero, fmt.Errorf("method %q: %w", m.name, ErrNoHandler)
	}
	return h(req)
}
