package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"cvcanvas/internal/domain"
)

// ─────────────────────────────────────────────────────────────
// Resume watcher — live reload of the seed source file
// ─────────────────────────────────────────────────────────────

// ResumeChangedHandler is called with the parsed resume when the watched
// file changes.
type ResumeChangedHandler func(r domain.Resume)

// ResumeWatcher watches a resume JSON file on disk. When the file is
// saved, the watcher re-parses it and hands the result to the handler.
// Writes are debounced so editors that save in multiple syscalls fire
// the handler once.
type ResumeWatcher struct {
	watcher  *fsnotify.Watcher
	emitter  EventEmitter
	onChange ResumeChangedHandler
	path     string
	cancel   context.CancelFunc
}

// NewResumeWatcher starts watching the resume file at path.
func NewResumeWatcher(path string, emitter EventEmitter, onChange ResumeChangedHandler) (*ResumeWatcher, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve resume path: %w", err)
	}
	if _, err := os.Stat(absPath); err != nil {
		return nil, fmt.Errorf("resume file: %w", err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}
	// Watch the directory (fsnotify watches dirs for file events)
	if err := watcher.Add(filepath.Dir(absPath)); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("watch resume dir: %w", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	w := &ResumeWatcher{
		watcher:  watcher,
		emitter:  emitter,
		onChange: onChange,
		path:     absPath,
		cancel:   cancel,
	}
	go w.watchLoop(ctx)
	return w, nil
}

// Close stops the watcher.
func (w *ResumeWatcher) Close() error {
	w.cancel()
	return w.watcher.Close()
}

func (w *ResumeWatcher) watchLoop(ctx context.Context) {
	var debounce *time.Timer
	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			absPath, _ := filepath.Abs(event.Name)
			if absPath != w.path {
				continue
			}
			if debounce != nil {
				debounce.Stop()
			}
			debounce = time.AfterFunc(500*time.Millisecond, func() {
				w.reload(ctx)
			})
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			log.Printf("resume watcher: error: %v", err)
		}
	}
}

func (w *ResumeWatcher) reload(ctx context.Context) {
	data, err := os.ReadFile(w.path)
	if err != nil {
		log.Printf("resume watcher: read %s: %v", w.path, err)
		return
	}
	var r domain.Resume
	if err := json.Unmarshal(data, &r); err != nil {
		log.Printf("resume watcher: parse %s: %v", w.path, err)
		return
	}
	if w.onChange != nil {
		w.onChange(r)
	}
	w.emitter.Emit(ctx, "resume:reloaded", w.path)
}
