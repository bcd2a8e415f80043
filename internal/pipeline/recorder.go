package pipeline

import (
	"context"
	"log/slog"
	"time"

	"github.com/kurochkinivan/pdf_converter/internal/domain"
)

const (
	maxBatch     = 64
	flushTimeout = 5 * time.Second
)

// Recorder persists conversion history off the request path. Handlers hand
// records over with Record; Run writes them in small batches.
type Recorder struct {
	log         *slog.Logger
	conversions chan *domain.Conversion
	saver       ConversionsSaver
}

func NewRecorder(log *slog.Logger, buffer int, saver ConversionsSaver) *Recorder {
	return &Recorder{
		log:         log,
		conversions: make(chan *domain.Conversion, buffer),
		saver:       saver,
	}
}

// Record queues c for saving. It never blocks; when the queue is full the
// record is dropped and a warning is logged.
func (r *Recorder) Record(ctx context.Context, c *domain.Conversion) {
	select {
	case r.conversions <- c:
	default:
		r.log.WarnContext(ctx, "conversion history queue is full, dropping record",
			slog.String("id", c.ID),
			slog.String("filename", c.Filename),
		)
	}
}

func (r *Recorder) Run(ctx context.Context) error {
	for {
		select {
		case c := <-r.conversions:
			if ctx.Err() != nil {
				r.flush(ctx, c)
				return ctx.Err()
			}

			r.save(ctx, r.drain(c))

		case <-ctx.Done():
			r.flush(ctx, nil)
			return ctx.Err()
		}
	}
}

// flush saves first and whatever is still queued once ctx is done, using a
// short context of its own.
func (r *Recorder) flush(ctx context.Context, first *domain.Conversion) {
	flushCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), flushTimeout)
	defer cancel()

	for {
		if first == nil {
			select {
			case first = <-r.conversions:
			default:
				return
			}
		}

		r.save(flushCtx, r.drain(first))
		first = nil
	}
}

func (r *Recorder) save(ctx context.Context, batch []*domain.Conversion) {
	log := r.log.With(slog.Int("records_count", len(batch)))
	log.DebugContext(ctx, "saving conversion history")

	if err := r.saver.SaveConversions(ctx, batch...); err != nil {
		log.ErrorContext(ctx, "failed to save conversion history", slog.String("err", err.Error()))
	}
}

func (r *Recorder) drain(first *domain.Conversion) []*domain.Conversion {
	batch := []*domain.Conversion{first}

	for len(batch) < maxBatch {
		select {
		case c := <-r.conversions:
			batch = append(batch, c)
		default:
			return batch
		}
	}

	return batch
}
