// Package tempstore allocates per-request scratch files for uploads and
// converter output.
package tempstore

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/kurochkinivan/pdf_converter/internal/domain"
)

const defaultExtension = ".pdf"

type Store struct {
	log *slog.Logger
	dir string
}

func New(log *slog.Logger, dir string) (*Store, error) {
	dir = strings.TrimSpace(dir)
	if dir == "" {
		return nil, errors.New("temp directory is required")
	}

	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, fmt.Errorf("failed to create temp directory %q: %w", dir, err)
	}

	return &Store{
		log: log,
		dir: dir,
	}, nil
}

func (s *Store) Dir() string {
	return s.dir
}

// Reserve returns a unique path with the given extension. The file itself is
// not created.
func (s *Store) Reserve(ext string) string {
	return filepath.Join(s.dir, uuid.NewString()+ext)
}

// Save copies the upload body into a new scratch file and returns its path.
// The body is rewound first, and an existing file is never overwritten.
func (s *Store) Save(ctx context.Context, upload *domain.Upload) (_ string, err error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	if upload.Body == nil {
		return "", fmt.Errorf("upload %q has no body", upload.Filename)
	}

	if _, err := upload.Body.Seek(0, io.SeekStart); err != nil {
		return "", fmt.Errorf("failed to rewind upload %q: %w", upload.Filename, err)
	}

	path := s.Reserve(extension(upload.Filename))

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o600)
	if err != nil {
		return "", fmt.Errorf("failed to create temp file: %w", err)
	}
	defer func() {
		err = errors.Join(err, f.Close())
		if err != nil {
			s.Release(path)
		}
	}()

	if _, err := io.Copy(f, upload.Body); err != nil {
		return "", fmt.Errorf("failed to write temp file: %w", err)
	}

	s.log.DebugContext(ctx, "stored upload",
		slog.String("filename", upload.Filename),
		slog.String("path", path),
	)

	return path, nil
}

// Release removes the given paths. Missing files are ignored and other
// failures are only logged, so Release is safe to call any number of times.
func (s *Store) Release(paths ...string) {
	for _, path := range paths {
		if path == "" {
			continue
		}

		err := os.Remove(path)
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			s.log.Debug("failed to remove temp file",
				slog.String("path", path),
				slog.String("err", err.Error()),
			)
		}
	}
}

func extension(filename string) string {
	ext := strings.ToLower(filepath.Ext(filepath.Base(filename)))
	if len(ext) < 2 {
		return defaultExtension
	}

	for _, r := range ext[1:] {
		if (r < 'a' || r > 'z') && (r < '0' || r > '9') {
			return defaultExtension
		}
	}

	return ext
}
