package domain

import (
	"errors"
	"path/filepath"
	"strings"
)

// ErrConversionFailed is wrapped by every failure of the external converter.
var ErrConversionFailed = errors.New("conversion failed")

type ArtifactKind string

const (
	ArtifactHTML ArtifactKind = "html"
	ArtifactZIP  ArtifactKind = "zip"
)

func (k ArtifactKind) ContentType() string {
	if k == ArtifactZIP {
		return "application/zip"
	}

	return "text/html"
}

func (k ArtifactKind) Extension() string {
	if k == ArtifactZIP {
		return ".zip"
	}

	return ".html"
}

func (k ArtifactKind) DownloadName() string {
	return "converted" + k.Extension()
}

// Artifact is a file produced by the converter. The holder owns Path and
// must release it once the response has been sent.
type Artifact struct {
	Kind ArtifactKind
	Path string
}

// ConversionJob owns the input and output paths of one converter run.
type ConversionJob struct {
	ID         string
	InputPath  string
	OutputPath string
}

// OutputCandidates lists every artifact path the converter may produce for
// the job, in order of preference.
func (j *ConversionJob) OutputCandidates() []string {
	base := strings.TrimSuffix(j.OutputPath, filepath.Ext(j.OutputPath))

	return []string{
		base + ".html",
		base + ".htm",
		base + ".zip",
	}
}

// Paths returns all filesystem paths owned by the job.
func (j *ConversionJob) Paths() []string {
	return append([]string{j.InputPath}, j.OutputCandidates()...)
}
