package v1

import (
	"context"

	"github.com/kurochkinivan/pdf_converter/internal/domain"
)

type Validator interface {
	Validate(uploads []*domain.Upload) error
}

type TempStore interface {
	Save(ctx context.Context, upload *domain.Upload) (string, error)
	Reserve(ext string) string
	Release(paths ...string)
}

type Converter interface {
	Convert(ctx context.Context, job *domain.ConversionJob) (*domain.Artifact, error)
}

type ConversionRecorder interface {
	Record(ctx context.Context, c *domain.Conversion)
}

type ConversionsRepository interface {
	Conversions(ctx context.Context, limit, offset uint64) ([]*domain.Conversion, int, error)
}
