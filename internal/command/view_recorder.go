package command

import (
	"context"
	"time"

	"github.com/jbeshir/newsdesk/internal/datasources"
	"github.com/jbeshir/newsdesk/internal/domain"
	"github.com/jbeshir/newsdesk/internal/metrics"
)

// ViewRecorder records an article view without blocking the caller.
type ViewRecorder interface {
	RecordView(ctx context.Context, articleID string)
}

// NullViewRecorder discards views.
type NullViewRecorder struct{}

func (NullViewRecorder) RecordView(_ context.Context, _ string) {}

const viewRecorderDrainTimeout = 5 * time.Second

// AsyncViewRecorder queues view increments and applies them from Run. When the queue
// is full further views are dropped.
type AsyncViewRecorder struct {
	incrementer datasources.ArticleViewIncrementer
	queue       chan string
}

func NewAsyncViewRecorder(incrementer datasources.ArticleViewIncrementer, queueSize int) *AsyncViewRecorder {
	if queueSize < 1 {
		queueSize = 1
	}
	return &AsyncViewRecorder{
		incrementer: incrementer,
		queue:       make(chan string, queueSize),
	}
}

func (r *AsyncViewRecorder) RecordView(ctx context.Context, articleID string) {
	select {
	case r.queue <- articleID:
	default:
		metrics.ViewIncrementsTotal.WithLabelValues("dropped").Inc()
		domain.LoggerFromContext(ctx).WarnContext(ctx, "view queue full, dropping view increment",
			"article_id", articleID)
	}
}

// Run applies queued increments until ctx is done, then drains what is left.
func (r *AsyncViewRecorder) Run(ctx context.Context) error {
	for {
		select {
		case articleID := <-r.queue:
			r.increment(ctx, articleID)
		case <-ctx.Done():
			r.drain(ctx)
			return nil
		}
	}
}

func (r *AsyncViewRecorder) drain(ctx context.Context) {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), viewRecorderDrainTimeout)
	defer cancel()

	for {
		select {
		case articleID := <-r.queue:
			r.increment(ctx, articleID)
		default:
			return
		}
	}
}

func (r *AsyncViewRecorder) increment(ctx context.Context, articleID string) {
	if err := r.incrementer.IncrementArticleViews(ctx, articleID); err != nil {
		metrics.ViewIncrementsTotal.WithLabelValues("failed").Inc()
		domain.LoggerFromContext(ctx).WarnContext(ctx, "failed to increment article views",
			"article_id", articleID, "error", err)
		return
	}
	metrics.ViewIncrementsTotal.WithLabelValues("applied").Inc()
}
