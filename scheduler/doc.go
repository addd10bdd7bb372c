// Package scheduler provides the priority-ordered cooperative task queue
// that sits between the reactor and application code.
//
// Work enters through Post, which hands the task to the reactor's
// goroutine-safe queue; when the reactor delivers it, the task moves into
// a priority heap. The application's exec loop then calls ExecuteHighest
// to run exactly one task per dispatch decision: the numerically greatest
// priority wins, and tasks of equal priority run in arrival order.
//
// Priority never preempts a running task. Execution is run-to-completion
// on a single thread; a higher-priority arrival waits for the next
// dispatch decision.
package scheduler
