// Package validator enforces the acceptance policy for uploaded files.
package validator

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/kurochkinivan/pdf_converter/internal/domain"
)

const (
	DefaultMaxFiles    = 5
	DefaultMaxFileSize = 50 << 20

	mimePDF   = "application/pdf"
	sniffSize = 512
)

type Validator struct {
	maxFiles    int
	maxFileSize int64
}

func New(maxFiles int, maxFileSize int64) *Validator {
	if maxFiles <= 0 {
		maxFiles = DefaultMaxFiles
	}

	if maxFileSize <= 0 {
		maxFileSize = DefaultMaxFileSize
	}

	return &Validator{
		maxFiles:    maxFiles,
		maxFileSize: maxFileSize,
	}
}

// Validate returns nil when every upload is accepted, or a
// *domain.ValidationError carrying the first failure. Each body is read in
// full and rewound to the start before Validate returns.
func (v *Validator) Validate(uploads []*domain.Upload) error {
	if len(uploads) > v.maxFiles {
		return domain.NewValidationError(domain.ReasonMaxFilesExceeded, "")
	}

	if len(uploads) == 0 {
		return domain.NewValidationError(domain.ReasonNoFilesSelected, "")
	}

	for _, upload := range uploads {
		if reason, ok := v.check(upload); !ok {
			var filename string
			if upload != nil {
				filename = upload.Filename
			}

			return domain.NewValidationError(reason, filename)
		}
	}

	return nil
}

func (v *Validator) check(upload *domain.Upload) (domain.Reason, bool) {
	if upload == nil || upload.Filename == "" || upload.Err != nil || upload.Body == nil {
		return domain.ReasonFileCorrupt, false
	}

	if strings.TrimSpace(upload.ContentType) == "" {
		return domain.ReasonNotSupportedType, false
	}

	head, size, err := v.consume(upload.Body)
	if err != nil {
		return domain.ReasonFileCorrupt, false
	}

	if size == 0 {
		return domain.ReasonEmptyFile, false
	}

	if isPDFName(upload.Filename) && http.DetectContentType(head) != mimePDF {
		return domain.ReasonNotSupportedType, false
	}

	if size > v.maxFileSize {
		return domain.ReasonFileTooLarge, false
	}

	return "", true
}

// consume reads up to maxFileSize+1 bytes of body, keeping the first
// sniffSize bytes, and rewinds body afterwards.
func (v *Validator) consume(body io.ReadSeeker) (head []byte, size int64, err error) {
	if _, err := body.Seek(0, io.SeekStart); err != nil {
		return nil, 0, fmt.Errorf("failed to rewind body: %w", err)
	}

	head = make([]byte, sniffSize)
	n, err := io.ReadFull(body, head)
	if err != nil && !errors.Is(err, io.EOF) && !errors.Is(err, io.ErrUnexpectedEOF) {
		return nil, 0, fmt.Errorf("failed to read body: %w", err)
	}
	head = head[:n]

	rest, err := io.Copy(io.Discard, io.LimitReader(body, v.maxFileSize+1-int64(n)))
	if err != nil {
		return nil, 0, fmt.Errorf("failed to read body: %w", err)
	}

	if _, err := body.Seek(0, io.SeekStart); err != nil {
		return nil, 0, fmt.Errorf("failed to rewind body: %w", err)
	}

	return head, int64(n) + rest, nil
}

func isPDFName(filename string) bool {
	return strings.EqualFold(strings.TrimPrefix(filepath.Ext(filename), "."), "pdf")
}
