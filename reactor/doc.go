// Package reactor provides the event-loop primitive the chassis runtime is
// built on: a goroutine-safe handler queue with blocking and non-blocking
// single-step execution (Loop), and OS signal delivery routed through a
// loop as posted handlers (Signals).
//
// A Loop does not own a goroutine. Whoever calls RunOne or PollOne is the
// loop's thread; the chassis application calls both from its cooperative
// exec loop and assumes single-threaded execution. Post and Stop are the
// only operations that are safe from other goroutines.
package reactor
