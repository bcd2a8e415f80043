package pipeline

import (
	"context"

	"github.com/kurochkinivan/pdf_converter/internal/domain"
)

type ConversionsSaver interface {
	SaveConversions(ctx context.Context, conversions ...*domain.Conversion) error
}
