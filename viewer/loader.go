package viewer

import (
	"log"

	"github.com/fsnotify/fsnotify"

	"glbview/scene"
)

type loadResult struct {
	gen   uint64
	model *scene.Model
	err   error
}

// Loader runs model parsing off the main thread. Every request bumps a
// generation counter carried through the result; Poll installs only results
// from the latest generation, so a load superseded by a newer request is
// discarded rather than merged into the scene.
//
// The loader also watches the most recently requested file and re-requests
// it when it changes on disk.
type Loader struct {
	results chan loadResult
	gen     uint64
	path    string

	watcher *fsnotify.Watcher

	// loadFn is swappable for tests.
	loadFn func(path string) (*scene.Model, error)
}

func NewLoader() *Loader {
	l := &Loader{
		results: make(chan loadResult, 4),
		loadFn:  scene.LoadModel,
	}
	w, err := fsnotify.NewWatcher()
	if err != nil {
		log.Printf("loader: file watching disabled: %v", err)
	} else {
		l.watcher = w
	}
	return l
}

// Load requests an asynchronous parse of the given file, superseding any
// load still in flight.
func (l *Loader) Load(path string) {
	l.gen++
	gen := l.gen
	l.watch(path)
	go func() {
		model, err := l.loadFn(path)
		l.results <- loadResult{gen: gen, model: model, err: err}
	}()
}

// Poll drains finished loads and returns the newest current-generation
// model, or nil if nothing is ready this frame. Stale results and load
// failures are logged and dropped; a failed load never disturbs the
// current scene.
func (l *Loader) Poll() *scene.Model {
	var latest *scene.Model
	for {
		select {
		case res := <-l.results:
			if res.gen != l.gen {
				log.Printf("loader: discarding superseded load (gen %d < %d)", res.gen, l.gen)
				continue
			}
			if res.err != nil {
				log.Printf("loader: %v", res.err)
				continue
			}
			latest = res.model
		default:
			if latest == nil {
				l.pollWatcher()
			}
			return latest
		}
	}
}

func (l *Loader) watch(path string) {
	if l.watcher == nil {
		return
	}
	if l.path != "" && l.path != path {
		_ = l.watcher.Remove(l.path)
	}
	l.path = path
	if err := l.watcher.Add(path); err != nil {
		log.Printf("loader: watch %q: %v", path, err)
	}
}

// pollWatcher drains file-change notifications and triggers a reload of the
// current file when it was written to.
func (l *Loader) pollWatcher() {
	if l.watcher == nil {
		return
	}
	reload := false
	for {
		select {
		case ev, ok := <-l.watcher.Events:
			if !ok {
				return
			}
			if ev.Has(fsnotify.Write) && ev.Name == l.path {
				reload = true
			}
		case err, ok := <-l.watcher.Errors:
			if !ok {
				return
			}
			log.Printf("loader: watcher: %v", err)
		default:
			if reload {
				log.Printf("loader: %q changed on disk, reloading", l.path)
				l.Load(l.path)
			}
			return
		}
	}
}

// Close stops the file watcher. In-flight loads finish into the buffered
// channel and are garbage-collected with the loader.
func (l *Loader) Close() error {
	if l.watcher == nil {
		return nil
	}
	return l.watcher.Close()
}
