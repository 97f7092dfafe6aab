package catalog

import (
	"context"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"go.trai.ch/shopfront/internal/core/domain"
	"go.trai.ch/zerr"
)

// Watch reloads the catalog whenever its file changes on disk. It watches
// the containing directory rather than the file itself because editors
// typically replace the file with a rename, which would silently drop a
// file-level watch.
//
// Watch returns after the watcher goroutine is running; the goroutine
// stops when ctx is cancelled. Reload failures are logged and the previous
// catalog stays in effect.
func (c *Catalog) Watch(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return zerr.Wrap(err, domain.ErrCatalogWatchFailed.Error())
	}

	dir := filepath.Dir(c.path)
	if err := watcher.Add(dir); err != nil {
		_ = watcher.Close()
		return zerr.Wrap(err, domain.ErrCatalogWatchFailed.Error())
	}

	go c.processEvents(ctx, watcher)

	return nil
}

func (c *Catalog) processEvents(ctx context.Context, watcher *fsnotify.Watcher) {
	defer func() {
		_ = watcher.Close()
	}()

	target := filepath.Clean(c.path)

	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			if err := c.Reload(); err != nil {
				c.logger.Error(zerr.Wrap(err, "catalog reload failed, keeping previous catalog"))
				continue
			}
			c.logger.Info("catalog reloaded")
		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			c.logger.Error(zerr.Wrap(err, "catalog watcher error"))
		}
	}
}
