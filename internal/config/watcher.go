package config

import (
	"context"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	log "github.com/sirupsen/logrus"
)

// Watch reloads the config file on change and invokes onReload with the
// fresh configuration. Only runtime-tunable settings (debug, log file,
// request logging) are expected to be picked up by callers; the upstream
// allow-list stays fixed for the process lifetime. Failure to establish a
// watcher is logged, not fatal.
func Watch(ctx context.Context, path string, onReload func(*Config)) {
	if path == "" || onReload == nil {
		return
	}
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		log.WithError(err).Warn("failed to create config watcher")
		return
	}
	if err := watcher.Add(path); err != nil {
		log.WithError(err).WithField("path", path).Warn("failed to watch config file")
		watcher.Close()
		return
	}
	// Watch the directory too so atomic writes (rename) are caught.
	if err := watcher.Add(filepath.Dir(path)); err != nil {
		log.WithError(err).Warn("failed to watch config directory")
	}
	log.WithField("path", path).Info("config watcher started")

	go func() {
		defer watcher.Close()

		var debounce *time.Timer
		const debounceDelay = 100 * time.Millisecond

		for {
			select {
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if event.Name != path || event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
					continue
				}
				if debounce != nil {
					debounce.Stop()
				}
				debounce = time.AfterFunc(debounceDelay, func() {
					cfg, err := Load(path)
					if err != nil {
						log.WithError(err).Warn("config reload failed; keeping previous configuration")
						return
					}
					onReload(cfg)
				})
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				log.WithError(err).Warn("config watcher error")
			case <-ctx.Done():
				if debounce != nil {
					debounce.Stop()
				}
				return
			}
		}
	}()
}
