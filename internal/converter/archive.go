package converter

import (
	"archive/zip"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"golang.org/x/text/unicode/norm"
)

type ArchiveEntry struct {
	Name string // original upload filename
	Path string // artifact on disk
}

// Archive packs the artifacts into a single ZIP written to dst. Entry names
// are the upload base names with the artifact extension, made unique.
func Archive(dst string, entries []ArchiveEntry) (err error) {
	f, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o600)
	if err != nil {
		return fmt.Errorf("failed to create archive: %w", err)
	}
	defer func() { err = errors.Join(err, f.Close()) }()

	zw := zip.NewWriter(f)
	names := make(map[string]struct{}, len(entries))

	for _, entry := range entries {
		if err := addEntry(zw, uniqueName(names, entryName(entry)), entry.Path); err != nil {
			return errors.Join(err, zw.Close())
		}
	}

	if err := zw.Close(); err != nil {
		return fmt.Errorf("failed to finalize archive: %w", err)
	}

	return nil
}

func addEntry(zw *zip.Writer, name, path string) (err error) {
	src, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open artifact: %w", err)
	}
	defer func() { err = errors.Join(err, src.Close()) }()

	w, err := zw.Create(name)
	if err != nil {
		return fmt.Errorf("failed to create archive entry %q: %w", name, err)
	}

	if _, err := io.Copy(w, src); err != nil {
		return fmt.Errorf("failed to write archive entry %q: %w", name, err)
	}

	return nil
}

func entryName(entry ArchiveEntry) string {
	base := filepath.Base(strings.ReplaceAll(entry.Name, "\\", "/"))
	// Browsers on macOS send decomposed names.
	base = norm.NFC.String(base)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	if base == "" || base == "." || base == "/" {
		base = "converted"
	}

	return base + strings.ToLower(filepath.Ext(entry.Path))
}

func uniqueName(seen map[string]struct{}, name string) string {
	ext := filepath.Ext(name)
	candidate := name

	for n := 2; ; n++ {
		if _, ok := seen[candidate]; !ok {
			seen[candidate] = struct{}{}
			return candidate
		}

		candidate = strings.TrimSuffix(name, ext) + "-" + strconv.Itoa(n) + ext
	}
}
