// Package watch runs slideshow generation from a drop directory: each *.txt
// file placed there holds a topic (first line) and an optional slide count
// (second line). Processed files move into a done/ subdirectory.
package watch

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/ShadyGEE/slideshow-agent/internal/config"
)

// Generator produces one slideshow per call. *workflow.Agent satisfies it.
type Generator interface {
	Generate(ctx context.Context, topic string, numSlides int) (string, error)
}

// settleDelay lets a detected write finish before the file is read;
// settleWindow collapses the Create+Write event pair fsnotify delivers for
// one dropped file into a single run.
const (
	settleDelay  = 500 * time.Millisecond
	settleWindow = 2 * time.Second
)

type Observer struct {
	cfg         *config.Config
	generator   Generator
	activeTasks int
	mu          sync.Mutex
	recent      map[string]time.Time
	LogChan     chan string
}

func NewObserver(cfg *config.Config, generator Generator, logChan chan string) *Observer {
	return &Observer{
		cfg:       cfg,
		generator: generator,
		recent:    make(map[string]time.Time),
		LogChan:   logChan,
	}
}

func (o *Observer) log(format string, v ...interface{}) {
	msg := fmt.Sprintf(format, v...)
	log.Println(msg)
	if o.LogChan != nil {
		select {
		case o.LogChan <- msg:
		default:
			// fast non-blocking drop if buffer full
		}
	}
}

// shouldProcess reports whether an event for path should trigger a run. The
// first event inside the settle window wins; later ones for the same path
// are duplicates of the same drop.
func (o *Observer) shouldProcess(path string) bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	if last, ok := o.recent[path]; ok && time.Since(last) < settleWindow {
		return false
	}
	o.recent[path] = time.Now()
	return true
}

func (o *Observer) incrementTask() {
	o.mu.Lock()
	o.activeTasks++
	o.mu.Unlock()
}

func (o *Observer) decrementTask() {
	o.mu.Lock()
	o.activeTasks--
	o.mu.Unlock()
}

func (o *Observer) Start(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	watchDir := o.cfg.Watch.Dir
	if watchDir == "" {
		return fmt.Errorf("watch directory not configured")
	}

	if err := os.MkdirAll(watchDir, 0755); err != nil {
		return fmt.Errorf("failed to create watch directory: %v", err)
	}
	if err := os.MkdirAll(filepath.Join(watchDir, "done"), 0755); err != nil {
		o.log("Failed to create done directory: %v", err)
	}

	if err := watcher.Add(watchDir); err != nil {
		return err
	}

	o.log("Topic observer started, watching: %s", watchDir)

	// Initial scan
	o.scanDirectory(ctx, watchDir)

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) {
				if strings.HasSuffix(strings.ToLower(event.Name), ".txt") && o.shouldProcess(event.Name) {
					o.log("Detected topic file: %s", event.Name)

					// Settle delay so the write completes
					time.Sleep(settleDelay)
					o.processFile(ctx, event.Name)
				}
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			o.log("Watcher error: %v", err)

		case <-ctx.Done():
			return nil
		}
	}
}

func (o *Observer) scanDirectory(ctx context.Context, dir string) {
	files, err := os.ReadDir(dir)
	if err != nil {
		o.log("Failed to scan directory: %v", err)
		return
	}

	for _, f := range files {
		if !f.IsDir() && strings.HasSuffix(strings.ToLower(f.Name()), ".txt") {
			o.processFile(ctx, filepath.Join(dir, f.Name()))
		}
	}
}

func (o *Observer) processFile(ctx context.Context, path string) {
	o.incrementTask()
	defer o.decrementTask()

	filename := filepath.Base(path)
	topic, numSlides, err := readTopicFile(path)
	if err != nil {
		// A trailing event for a file already moved to done/ is not worth a log line
		if !os.IsNotExist(err) {
			o.log("Skipping %s: %v", filename, err)
		}
		return
	}

	o.log("Generating slideshow for %q (%d slides) from %s", topic, numSlides, filename)

	outPath, err := o.generator.Generate(ctx, topic, numSlides)
	if err != nil {
		o.log("Generation failed for %s: %v", filename, err)
		return
	}
	o.log("Slideshow created: %s", outPath)

	donePath := filepath.Join(filepath.Dir(path), "done", filename)
	if err := os.Rename(path, donePath); err != nil {
		o.log("Failed to move %s to done: %v", filename, err)
	}
}

// readTopicFile parses a topic file: first non-empty line is the topic, an
// optional numeric second line is the slide count (0 means the configured
// default).
func readTopicFile(path string) (string, int, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", 0, err
	}
	defer f.Close()

	var topic string
	numSlides := 0

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if topic == "" {
			topic = line
			continue
		}
		if n, err := strconv.Atoi(line); err == nil {
			numSlides = n
		}
		break
	}
	if err := scanner.Err(); err != nil {
		return "", 0, err
	}
	if topic == "" {
		return "", 0, fmt.Errorf("no topic in file")
	}
	return topic, numSlides, nil
}

func (o *Observer) IsProcessing() bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.activeTasks > 0
}
