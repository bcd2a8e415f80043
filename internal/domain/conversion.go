package domain

import "time"

// Conversion is the history record of a single uploaded file. It never
// carries file contents.
type Conversion struct {
	ID           string       `csv:"id"            db:"id"            json:"id"`
	Filename     string       `csv:"filename"      db:"filename"      json:"filename"`
	Size         int64        `csv:"size"          db:"size"          json:"size"`
	Status       Status       `csv:"status"        db:"status"        json:"status"`
	Reason       string       `csv:"reason"        db:"reason"        json:"reason,omitempty"`
	ErrorMessage string       `csv:"error_message" db:"error_message" json:"error_message,omitempty"`
	ArtifactKind ArtifactKind `csv:"artifact_kind" db:"artifact_kind" json:"artifact_kind,omitempty"`
	DurationMS   int64        `csv:"duration_ms"   db:"duration_ms"   json:"duration_ms"`
	CreatedAt    time.Time    `csv:"created_at"    db:"created_at"    json:"created_at"`
}
