package app

import (
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

type configWatcher struct {
	w    *fsnotify.Watcher
	done chan struct{}
}

// WatchConfig watches the config file and posts a reload whenever it is
// rewritten, so an edited config behaves like a SIGHUP. The watch runs
// until Shutdown.
func (a *App) WatchConfig() error {
	if a.watcher != nil {
		return nil
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	// Watch the directory, not the file: editors replace files and the
	// inode-level watch would die on the first save.
	path := a.ConfigFile()
	if err := w.Add(filepath.Dir(path)); err != nil {
		w.Close()
		return err
	}

	cw := &configWatcher{w: w, done: make(chan struct{})}
	a.watcher = cw

	go func() {
		defer close(cw.done)
		for {
			select {
			case ev, ok := <-w.Events:
				if !ok {
					return
				}
				if ev.Name != path {
					continue
				}
				if ev.Op&(fsnotify.Write|fsnotify.Create) == 0 {
					continue
				}
				a.logger.Info().Str("path", path).Msg("config changed, reloading")
				a.postReload()
			case err, ok := <-w.Errors:
				if !ok {
					return
				}
				a.logger.Warn().Err(err).Msg("config watch error")
			}
		}
	}()
	return nil
}

func (a *App) stopConfigWatcher() {
	if a.watcher == nil {
		return
	}
	a.watcher.w.Close()
	<-a.watcher.done
	a.watcher = nil
}
