package scheduler

// Task is a deferred callable with a dispatch priority and an arrival
// sequence number. Tasks are created by Post and consumed exactly once by
// ExecuteHighest; they are never persisted.
type Task struct {
	// Priority orders dispatch; larger runs first.
	Priority int

	// Seq is a monotonic arrival counter used to break priority ties,
	// giving strict FIFO order within a priority tier.
	Seq uint64

	// Fn is the work to run.
	Fn func()
}

// taskHeap orders tasks by (priority descending, sequence ascending).
// It implements container/heap.Interface.
type taskHeap []Task

func (h taskHeap) Len() int { return len(h) }

func (h taskHeap) Less(i, j int) bool {
	if h[i].Priority != h[j].Priority {
		return h[i].Priority > h[j].Priority
	}
	return h[i].Seq < h[j].Seq
}

func (h taskHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *taskHeap) Push(x any) {
	*h = append(*h, x.(Task))
}

func (h *taskHeap) Pop() any {
	old := *h
	n := len(old)
	t := old[n-1]
	old[n-1] = Task{}
	*h = old[:n-1]
	return t
}
