package app

import (
	"os"
	"syscall"

	"github.com/dshills/chassis/plugin"
	"github.com/dshills/chassis/reactor"
	"github.com/dshills/chassis/scheduler"
)

// terminateSignals lists the signals that request quiescence. During
// startup SIGHUP terminates too; once running it requests a reload
// instead.
func terminateSignals(startup bool) []os.Signal {
	sigs := []os.Signal{syscall.SIGINT, syscall.SIGTERM, syscall.SIGPIPE}
	if startup {
		sigs = append(sigs, syscall.SIGHUP)
	}
	return sigs
}

// bootstrapSignals catches terminate signals on a private loop while
// startup hooks occupy the main goroutine. The auxiliary goroutine lives
// exactly from startBootstrapSignals to stop.
type bootstrapSignals struct {
	loop  *reactor.Loop
	watch *reactor.Signals
	done  chan struct{}
}

func (a *App) startBootstrapSignals() *bootstrapSignals {
	b := &bootstrapSignals{
		loop: reactor.NewLoop(),
		done: make(chan struct{}),
	}
	b.watch = reactor.Notify(b.loop, func(sig os.Signal) {
		a.logger.Info().Str("signal", sig.String()).Msg("interrupted during startup")
		a.Quit()
	}, terminateSignals(true)...)

	go func() {
		defer close(b.done)
		for b.loop.RunOne() {
		}
	}()
	return b
}

func (b *bootstrapSignals) stop() {
	b.watch.Close()
	b.loop.Stop()
	<-b.done
}

// armRuntimeSignals re-arms signal handling on the primary loop for the
// exec phase: terminate signals call Quit, SIGHUP posts a reload task.
func (a *App) armRuntimeSignals() {
	a.termWatch = reactor.Notify(a.loop, func(sig os.Signal) {
		a.logger.Info().Str("signal", sig.String()).Msg("terminate signal received")
		a.Quit()
	}, terminateSignals(false)...)

	a.hupWatch = reactor.Notify(a.loop, func(os.Signal) {
		a.logger.Info().Msg("reload signal received")
		a.postReload()
	}, syscall.SIGHUP)
}

func (a *App) stopRuntimeSignals() {
	if a.termWatch != nil {
		a.termWatch.Close()
		a.termWatch = nil
	}
	if a.hupWatch != nil {
		a.hupWatch.Close()
		a.hupWatch = nil
	}
}

// SetReloadCallback installs fn to run on the exec loop before plugin
// reload hooks whenever a reload is requested.
func (a *App) SetReloadCallback(fn func()) {
	a.reloadCallback = fn
}

// postReload schedules the reload pass as a medium-priority task so it
// interleaves with, rather than preempts, in-flight work.
func (a *App) postReload() {
	a.Post(scheduler.PriorityMedium, func() {
		if a.reloadCallback != nil {
			a.reloadCallback()
		}
		for _, h := range a.started {
			if a.IsQuiting() {
				return
			}
			if h.state != plugin.StateStarted {
				continue
			}
			r, ok := h.plugin.(plugin.Reloader)
			if !ok {
				continue
			}
			if err := r.OnReload(); err != nil {
				a.logger.Error().Err(err).Str("plugin", h.name).Msg("plugin reload failed")
			}
		}
	})
}
