package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"
)

// Sweeper removes scratch files that outlived their request, e.g. after a
// crash between Save and Release.
type Sweeper struct {
	log           *slog.Logger
	dir           string
	sweepInterval time.Duration
	maxAge        time.Duration
}

func NewSweeper(log *slog.Logger, dir string, sweepInterval, maxAge time.Duration) *Sweeper {
	return &Sweeper{
		log:           log,
		dir:           dir,
		sweepInterval: sweepInterval,
		maxAge:        maxAge,
	}
}

func (s *Sweeper) Run(ctx context.Context) error {
	ticker := time.NewTicker(s.sweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.log.DebugContext(ctx, "sweep cycle started")

			removed, err := s.Sweep(ctx)
			if err != nil {
				s.log.ErrorContext(ctx, "failed to sweep temp directory", slog.String("err", err.Error()))
				continue
			}

			if removed > 0 {
				s.log.InfoContext(ctx, "removed stale temp files", slog.Int("removed", removed))
			}

		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

// Sweep removes regular files older than maxAge and reports how many were
// removed.
func (s *Sweeper) Sweep(ctx context.Context) (int, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return 0, fmt.Errorf("failed to read directory %q: %w", s.dir, err)
	}

	cutoff := time.Now().Add(-s.maxAge)

	removed := 0
	for _, entry := range entries {
		ok, err := s.processEntry(entry, cutoff)
		if err != nil {
			s.log.ErrorContext(ctx, "failed to process entry, skipping file",
				slog.String("filename", entry.Name()),
				slog.String("err", err.Error()),
			)
			continue
		}

		if ok {
			removed++
		}
	}

	return removed, nil
}

func (s *Sweeper) processEntry(entry os.DirEntry, cutoff time.Time) (bool, error) {
	if !entry.Type().IsRegular() {
		return false, nil
	}

	info, err := entry.Info()
	if err != nil {
		// Removed concurrently by its request.
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, fmt.Errorf("failed to stat file: %w", err)
	}

	if info.ModTime().After(cutoff) {
		return false, nil
	}

	if err := os.Remove(filepath.Join(s.dir, entry.Name())); err != nil && !os.IsNotExist(err) {
		return false, fmt.Errorf("failed to remove file: %w", err)
	}

	return true, nil
}
