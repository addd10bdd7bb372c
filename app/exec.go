package app

// Exec runs the cooperative event loop on the calling goroutine until
// Quit is called, then shuts the plugins down and returns the joined
// shutdown errors. Each pass drains every immediately-ready reactor
// handler, then executes the single highest-priority task; when both the
// reactor and the task queue are idle, Exec blocks in the reactor until
// new work or Quit arrives.
//
// With no started plugins Exec returns immediately without a shutdown
// pass.
func (a *App) Exec() error {
	if len(a.started) == 0 {
		return nil
	}

	more := true
	for more || a.loop.RunOne() {
		for a.loop.PollOne() {
		}
		more = a.sched.ExecuteHighest()
	}

	return a.Shutdown()
}

// Quit requests quiescence: it flips the quit flag and stops the
// reactor, which unblocks Exec. Safe from any goroutine; repeated calls
// are no-ops.
func (a *App) Quit() {
	if a.quiting.CompareAndSwap(false, true) {
		a.logger.Debug().Msg("quiescence requested")
	}
	a.loop.Stop()
}

// IsQuiting reports whether Quit has been called. Long-running plugin
// work polls this to yield promptly.
func (a *App) IsQuiting() bool {
	return a.quiting.Load()
}

// Post schedules fn at the given priority for execution on the exec
// loop. Safe from any goroutine.
func (a *App) Post(priority int, fn func()) {
	a.sched.Post(priority, fn)
}
