package config

import (
	"context"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/fsnotify/fsnotify"
)

// Package-level logger
var logger = log.NewWithOptions(os.Stderr, log.Options{
	Prefix: "config",
})

// SetLogLevel sets the logging level for the config package.
func SetLogLevel(level log.Level) {
	logger.SetLevel(level)
}

// Watch reloads the configuration whenever the file changes and delivers
// each valid reload on the returned channel. Invalid edits are logged and
// skipped so a half-saved file never knocks out a running session. The
// watcher stops when ctx is cancelled.
func Watch(ctx context.Context) (<-chan *UserConfig, error) {
	path, err := ConfigFilePath()
	if err != nil {
		return nil, err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	// Watch the directory: editors replace the file on save, which drops a
	// watch pinned to the file itself.
	if err := watcher.Add(filepath.Dir(path)); err != nil {
		watcher.Close()
		return nil, err
	}

	updates := make(chan *UserConfig, 1)
	go func() {
		defer watcher.Close()
		defer close(updates)
		for {
			select {
			case <-ctx.Done():
				return
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Clean(event.Name) != path {
					continue
				}
				if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
					continue
				}
				cfg, err := LoadUserConfig()
				if err != nil {
					logger.Warn("ignoring invalid config change", "err", err)
					continue
				}
				select {
				case updates <- cfg:
				default:
					// A pending reload is already queued; the newest state
					// wins when the receiver catches up.
					select {
					case <-updates:
					default:
					}
					updates <- cfg
				}
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				logger.Warn("config watcher error", "err", err)
			}
		}
	}()
	return updates, nil
}
