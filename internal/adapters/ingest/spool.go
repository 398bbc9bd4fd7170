package ingest

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.trai.ch/clustertap/internal/core/domain"
	"go.trai.ch/clustertap/internal/core/ports"
	"go.trai.ch/zerr"
)

// DefaultSpoolWindow is how long a spooled file must stay quiet before it is read.
const DefaultSpoolWindow = 100 * time.Millisecond

// SpoolWatcher feeds observations written as *.json files into a directory.
// Files are left in place after they are read.
type SpoolWatcher struct {
	dir     string
	window  time.Duration
	observe ObserveFunc
	logger  ports.Logger
}

// NewSpoolWatcher creates a watcher for dir.
func NewSpoolWatcher(dir string, window time.Duration, observe ObserveFunc, logger ports.Logger) *SpoolWatcher {
	return &SpoolWatcher{
		dir:     dir,
		window:  window,
		observe: observe,
		logger:  logger,
	}
}

// Run watches the directory until ctx is cancelled. The directory is created
// if it does not exist.
func (s *SpoolWatcher) Run(ctx context.Context) error {
	if err := os.MkdirAll(s.dir, domain.DirPerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrSpoolWatchFailed.Error()), "dir", s.dir)
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return zerr.Wrap(err, domain.ErrSpoolWatchFailed.Error())
	}
	defer func() { _ = fsw.Close() }()

	if err := fsw.Add(s.dir); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrSpoolWatchFailed.Error()), "dir", s.dir)
	}

	debouncer := NewDebouncer(s.window, func(paths []string) {
		for _, path := range paths {
			s.ingestFile(ctx, path)
		}
	})
	s.logger.Info("watching spool directory", "dir", s.dir)

	for {
		select {
		case <-ctx.Done():
			debouncer.Flush()
			return nil
		case event, ok := <-fsw.Events:
			if !ok {
				return nil
			}
			if !isSpoolFile(event) {
				continue
			}
			debouncer.Add(event.Name)
		case err, ok := <-fsw.Errors:
			if !ok {
				return nil
			}
			s.logger.Warn("spool watcher error", "error", err.Error())
		}
	}
}

func isSpoolFile(event fsnotify.Event) bool {
	if !event.Has(fsnotify.Create) && !event.Has(fsnotify.Write) {
		return false
	}
	return strings.EqualFold(filepath.Ext(event.Name), ".json")
}

func (s *SpoolWatcher) ingestFile(ctx context.Context, path string) {
	records, err := ReadSpoolFile(path)
	if err != nil {
		s.logger.Warn("skipping spooled file", "file", filepath.Base(path), "error", err.Error())
		return
	}
	for _, rec := range records {
		s.observe(ctx, rec)
	}
	s.logger.Debug("spooled file ingested", "file", filepath.Base(path), "records", len(records))
}

// ReadSpoolFile reads and decodes one spooled file.
func ReadSpoolFile(path string) ([]domain.ExchangeRecord, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path comes from the watched spool directory
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrSpoolReadFailed.Error()), "file", path)
	}
	records, err := DecodeRecords(data)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrSpoolReadFailed.Error()), "file", path)
	}
	return records, nil
}
