package pipeline_test

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/kurochkinivan/pdf_converter/internal/pipeline"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createFile(t *testing.T, dir, name string, age time.Duration) string {
	t.Helper()

	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o600))

	mtime := time.Now().Add(-age)
	require.NoError(t, os.Chtimes(path, mtime, mtime))

	return path
}

func TestSweeper_Sweep(t *testing.T) {
	t.Parallel()

	log := slog.New(slog.DiscardHandler)
	dir := t.TempDir()

	stale := createFile(t, dir, "stale.pdf", 2*time.Hour)
	fresh := createFile(t, dir, "fresh.pdf", time.Minute)
	require.NoError(t, os.Mkdir(filepath.Join(dir, "nested"), 0o700))

	sweeper := pipeline.NewSweeper(log, dir, time.Minute, time.Hour)

	removed, err := sweeper.Sweep(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, removed)

	_, err = os.Stat(stale)
	require.ErrorIs(t, err, os.ErrNotExist)

	_, err = os.Stat(fresh)
	require.NoError(t, err)

	_, err = os.Stat(filepath.Join(dir, "nested"))
	require.NoError(t, err)
}

func TestSweeper_Sweep_MissingDirectory(t *testing.T) {
	t.Parallel()

	log := slog.New(slog.DiscardHandler)

	sweeper := pipeline.NewSweeper(log, filepath.Join(t.TempDir(), "missing"), time.Minute, time.Hour)

	_, err := sweeper.Sweep(context.Background())
	require.Error(t, err)
}

func TestSweeper_Run_RemovesStaleFiles(t *testing.T) {
	t.Parallel()

	log := slog.New(slog.DiscardHandler)
	dir := t.TempDir()

	stale := createFile(t, dir, "stale.html", 2*time.Hour)

	sweeper := pipeline.NewSweeper(log, dir, time.Millisecond, time.Hour)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	errChan := make(chan error, 1)
	go func() {
		errChan <- sweeper.Run(ctx)
	}()

	require.Eventually(t, func() bool {
		_, err := os.Stat(stale)
		return os.IsNotExist(err)
	}, time.Second, time.Millisecond)

	cancel()

	select {
	case err := <-errChan:
		require.ErrorIs(t, err, context.Canceled)
	case <-time.After(time.Second):
		t.Fatal("timeout: sweeper did not stop")
	}
}
