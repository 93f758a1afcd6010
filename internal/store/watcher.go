package store

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"

	"github.com/Faultbox/supersphere/internal/logger"
)

// Update is one decoded revision of a watched parameter file. A non-empty
// Preset is selected before Partial is merged.
type Update struct {
	Preset  string
	Partial Partial
}

// ReadUpdate decodes a parameter file. The file holds any subset of the
// Config fields plus an optional "preset" key. Values are coerced field by
// field, so one malformed value becomes 0 without losing the rest of the file.
// Unknown keys are skipped.
func ReadUpdate(path string) (Update, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Update{}, err
	}
	var raw map[string]any
	if err := decode(path, data, &raw); err != nil {
		return Update{}, fmt.Errorf("decode %s: %w", path, err)
	}

	var u Update
	for key, value := range raw {
		text := scalarText(value)
		if strings.EqualFold(key, "preset") {
			u.Preset = strings.TrimSpace(text)
			continue
		}
		if err := u.Partial.Set(key, text); err != nil {
			logger.Debug("ignoring parameter", zap.String("path", path), zap.String("key", key))
		}
	}
	return u, nil
}

// scalarText renders a decoded YAML or TOML value as the text a control
// surface would have sent.
func scalarText(v any) string {
	switch v := v.(type) {
	case nil:
		return ""
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'g', -1, 64)
	default:
		return fmt.Sprint(v)
	}
}

// ApplyTo selects the preset, if any, then merges the partial.
func (u Update) ApplyTo(s *Store) {
	if u.Preset != "" {
		s.SelectPreset(u.Preset)
	}
	if !u.Partial.Empty() {
		s.Merge(u.Partial)
	}
}

// Watcher follows a parameter file and queues an Update for every write.
// Updates are only applied to a Store when the owner calls Apply, so the
// store keeps a single writer thread.
type Watcher struct {
	path    string
	fsWatch *fsnotify.Watcher

	mu      sync.Mutex
	pending []Update

	done     chan struct{}
	wg       sync.WaitGroup
	closeErr error
	once     sync.Once
}

// Watch starts following path. The current contents, if readable, are queued
// as the first update.
func Watch(path string) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	if err := checkFormat(abs); err != nil {
		return nil, err
	}

	fsWatch, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	// Watch the directory: editors often replace the file instead of writing it.
	if err := fsWatch.Add(filepath.Dir(abs)); err != nil {
		fsWatch.Close()
		return nil, fmt.Errorf("watch %s: %w", filepath.Dir(abs), err)
	}

	w := &Watcher{
		path:    abs,
		fsWatch: fsWatch,
		done:    make(chan struct{}),
	}
	w.reload()

	w.wg.Add(1)
	go w.run()

	logger.Info("watching parameter file", zap.String("path", abs))
	return w, nil
}

func checkFormat(path string) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml", ".toml":
		return nil
	}
	return fmt.Errorf("%w: %q", ErrUnknownFormat, filepath.Ext(path))
}

func (w *Watcher) run() {
	defer w.wg.Done()
	for {
		select {
		case e, ok := <-w.fsWatch.Events:
			if !ok {
				return
			}
			if filepath.Clean(e.Name) != w.path {
				continue
			}
			if e.Op&(fsnotify.Create|fsnotify.Write) != 0 {
				w.reload()
			}

		case err, ok := <-w.fsWatch.Errors:
			if !ok {
				return
			}
			logger.Warn("parameter watcher error", zap.Error(err))

		case <-w.done:
			return
		}
	}
}

func (w *Watcher) reload() {
	u, err := ReadUpdate(w.path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			logger.Warn("skipping parameter file", zap.String("path", w.path), zap.Error(err))
		}
		return
	}
	logger.Debug("parameter file changed", zap.String("path", w.path), zap.String("preset", u.Preset))

	w.mu.Lock()
	w.pending = append(w.pending, u)
	w.mu.Unlock()
}

// Path returns the absolute path being watched.
func (w *Watcher) Path() string {
	return w.path
}

// Pending returns the number of queued updates.
func (w *Watcher) Pending() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return len(w.pending)
}

// Apply drains the queue into s in arrival order and returns how many updates
// were applied. Call it from the thread that owns s.
func (w *Watcher) Apply(s *Store) int {
	w.mu.Lock()
	pending := w.pending
	w.pending = nil
	w.mu.Unlock()

	for _, u := range pending {
		u.ApplyTo(s)
	}
	return len(pending)
}

// Close stops watching. Queued updates are discarded.
func (w *Watcher) Close() error {
	w.once.Do(func() {
		close(w.done)
		w.closeErr = w.fsWatch.Close()
		w.wg.Wait()
	})
	return w.closeErr
}
