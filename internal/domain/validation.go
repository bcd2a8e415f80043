package domain

import "fmt"

// Reason is a validation failure code returned to clients verbatim.
type Reason string

const (
	ReasonMaxFilesExceeded Reason = "ERR_MAX_FILES_EXCEEDED"
	ReasonNoFilesSelected  Reason = "ERR_NO_FILES_SELECTED"
	ReasonFileCorrupt      Reason = "FILE_CORRUPT"
	ReasonNotSupportedType Reason = "NOT_SUPPORTED_TYPE"
	ReasonEmptyFile        Reason = "EMPTY_FILE"
	ReasonFileTooLarge     Reason = "FILE_TOO_LARGE"
)

type ValidationError struct {
	Reason   Reason
	Filename string // empty for batch-level failures
}

func NewValidationError(reason Reason, filename string) *ValidationError {
	return &ValidationError{Reason: reason, Filename: filename}
}

func (e *ValidationError) Error() string {
	if e.Filename == "" {
		return fmt.Sprintf("validation failed: %s", e.Reason)
	}

	return fmt.Sprintf("validation failed for %q: %s", e.Filename, e.Reason)
}
