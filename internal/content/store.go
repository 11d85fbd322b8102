package content

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"sync"
	"sync/atomic"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/afero"
)

// Store serves the current catalog and swaps it atomically on reload.
type Store struct {
	current atomic.Pointer[Site]

	fs   afero.Fs
	path string

	mu       sync.Mutex
	watching bool
}

// NewStore wraps an already loaded catalog. Reload is a no-op for such a store.
func NewStore(site *Site) *Store {
	s := &Store{}
	s.current.Store(site)
	return s
}

// Open loads the catalog from path on fs, or the embedded catalog when path
// is empty.
func Open(fs afero.Fs, path string) (*Store, error) {
	if path == "" {
		site, err := Default()
		if err != nil {
			return nil, err
		}
		return NewStore(site), nil
	}

	site, err := Load(fs, path)
	if err != nil {
		return nil, err
	}
	s := NewStore(site)
	s.fs = fs
	s.path = path
	return s, nil
}

// Site returns the current catalog. Callers must treat it as read-only.
func (s *Store) Site() *Site {
	return s.current.Load()
}

// Path returns the file backing the store, empty for embedded content.
func (s *Store) Path() string {
	return s.path
}

// Reload re-reads the backing file. On error the previous catalog is kept.
func (s *Store) Reload() error {
	if s.path == "" {
		return nil
	}
	site, err := Load(s.fs, s.path)
	if err != nil {
		return err
	}
	s.current.Store(site)
	return nil
}

// Watch reloads the catalog whenever its file changes on disk, until ctx is
// done. Only stores opened from a file on the OS filesystem can be watched.
func (s *Store) Watch(ctx context.Context) error {
	if s.path == "" {
		return nil
	}

	s.mu.Lock()
	if s.watching {
		s.mu.Unlock()
		slog.Debug("Content watcher already active")
		return nil
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		s.mu.Unlock()
		return fmt.Errorf("failed to create file system watcher: %w", err)
	}

	// Editors often replace files by rename, so watch the directory.
	dir := filepath.Dir(s.path)
	if err := watcher.Add(dir); err != nil {
		watcher.Close()
		s.mu.Unlock()
		return fmt.Errorf("failed to watch %s: %w", dir, err)
	}
	s.watching = true
	s.mu.Unlock()

	go s.watchFiles(ctx, watcher)

	slog.Info("Watching site content for changes", "path", s.path)
	return nil
}

func (s *Store) watchFiles(ctx context.Context, watcher *fsnotify.Watcher) {
	defer func() {
		watcher.Close()
		s.mu.Lock()
		s.watching = false
		s.mu.Unlock()
		slog.Debug("Content watcher stopped")
	}()

	target := filepath.Clean(s.path)
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
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			s.handleChange(event)

		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			slog.Error("Content watcher error", "error", err)
		}
	}
}

func (s *Store) handleChange(event fsnotify.Event) {
	if err := s.Reload(); err != nil {
		slog.Error("Failed to reload site content, keeping previous version", "path", event.Name, "error", err)
		return
	}
	slog.Info("Reloaded site content", "path", event.Name, "op", event.Op.String())
}
