package converter

import (
	"context"
	"fmt"

	"github.com/kurochkinivan/pdf_converter/internal/domain"
	"golang.org/x/sync/semaphore"
)

// Limiter bounds the number of conversions running at the same time.
type Limiter struct {
	sem  *semaphore.Weighted
	next Converter
}

func NewLimiter(next Converter, limit int) *Limiter {
	if limit <= 0 {
		limit = 1
	}

	return &Limiter{
		sem:  semaphore.NewWeighted(int64(limit)),
		next: next,
	}
}

func (l *Limiter) Convert(ctx context.Context, job *domain.ConversionJob) (*domain.Artifact, error) {
	if err := l.sem.Acquire(ctx, 1); err != nil {
		return nil, fmt.Errorf("%w: waiting for a free converter: %w", domain.ErrConversionFailed, err)
	}
	defer l.sem.Release(1)

	return l.next.Convert(ctx, job)
}
