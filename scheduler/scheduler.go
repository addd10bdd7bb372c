package scheduler

import (
	"container/heap"
	"sync/atomic"

	"github.com/dshills/chassis/reactor"
)

// Scheduler is the priority task queue layered on a reactor.
//
// Post is safe from any goroutine (it leans on the reactor's thread-safe
// queue); everything else must run on the loop thread. The heap itself is
// only mutated by reactor-delivered handlers and ExecuteHighest, both of
// which run on the loop thread, so it needs no lock.
type Scheduler struct {
	r     reactor.Reactor
	seq   atomic.Uint64
	tasks taskHeap
}

// New creates a scheduler that defers through r.
func New(r reactor.Reactor) *Scheduler {
	return &Scheduler{r: r}
}

// Post wraps fn into a Task and hands it to the reactor. The task enters
// the priority queue when the reactor delivers it back on the loop thread;
// it runs only through ExecuteHighest, never directly.
func (s *Scheduler) Post(priority int, fn func()) {
	t := Task{
		Priority: priority,
		Seq:      s.seq.Add(1),
		Fn:       fn,
	}
	s.r.Post(func() {
		heap.Push(&s.tasks, t)
	})
}

// ExecuteHighest pops the single task with the numerically greatest
// priority (ties broken by earliest arrival) and runs it synchronously.
// It returns whether any task remains pending.
func (s *Scheduler) ExecuteHighest() bool {
	if s.tasks.Len() == 0 {
		return false
	}
	t := heap.Pop(&s.tasks).(Task)
	t.Fn()
	return s.tasks.Len() > 0
}

// Pending returns the number of tasks already delivered into the priority
// queue. Tasks still in flight inside the reactor are not counted.
func (s *Scheduler) Pending() int {
	return s.tasks.Len()
}
