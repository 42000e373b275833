package telegraf

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"
)

const metricsChanSize = 100

// ErrorListener receives asynchronous write failures from a Batcher.
type ErrorListener func(err error)

// BatchConfig controls how a Batcher groups metrics before writing.
type BatchConfig struct {
	// BatchSize flushes once this many metrics are pending. When both
	// BatchSize and BatchTimeout are zero every metric is written as it
	// arrives.
	BatchSize int
	// BatchTimeout flushes pending metrics this long after the first one
	// of a batch arrived.
	BatchTimeout time.Duration
	ErrorListener
	// Logger receives flush diagnostics. Defaults to a nop logger.
	Logger *zap.Logger
}

// Batcher accumulates metrics and writes them through a Client in batches.
// Each batch is encoded fully in memory and written in one call, so lines
// never interleave. The Batcher is the connection's exclusive writer; do not
// write to the client directly while a Batcher is using it.
type Batcher struct {
	ctx    context.Context
	client *Client
	config BatchConfig
	log    *zap.Logger

	metrics     chan Metric
	processSync sync.Once
}

// NewBatcher wraps a client. The batcher stops when ctx is cancelled;
// closing the client remains the caller's job.
func NewBatcher(ctx context.Context, client *Client, config BatchConfig) *Batcher {
	log := config.Logger
	if log == nil {
		log = zap.NewNop()
	}
	return &Batcher{
		ctx:    ctx,
		client: client,
		config: config,
		log:    log,
	}
}

// Send queues a metric for writing.
func (b *Batcher) Send(m Metric) {
	b.ensureStarted()
	b.metrics <- m
}

// Flush writes any pending metrics now.
func (b *Batcher) Flush() {
	b.ensureStarted()
	b.metrics <- nil
}

func (b *Batcher) ensureStarted() {
	b.processSync.Do(func() {
		b.metrics = make(chan Metric, metricsChanSize)
		go b.processMetrics()
	})
}

func (b *Batcher) processMetrics() {
	batch := make([]Metric, 0, b.config.BatchSize)

	var batchTimerChan <-chan time.Time

	for {
		reset := false

		select {
		case <-b.ctx.Done():
			return

		case m := <-b.metrics:
			if m == nil {
				b.flush(batch)
				reset = true
			} else {
				batch = append(batch, m)
				if b.shouldFlush(len(batch)) {
					b.flush(batch)
					reset = true
				} else if batchTimerChan == nil && b.config.BatchTimeout != 0 {
					batchTimerChan = time.After(b.config.BatchTimeout)
				}
			}

		case <-batchTimerChan:
			b.flush(batch)
			reset = true
		}

		if reset {
			batch = batch[0:0]
			// and "clear" timer
			batchTimerChan = nil
		}
	}
}

func (b *Batcher) shouldFlush(currentBatchSize int) bool {
	if b.config.BatchSize == 0 && b.config.BatchTimeout == 0 {
		return true
	}

	if b.config.BatchSize > 0 && currentBatchSize >= b.config.BatchSize {
		return true
	}
	return false
}

func (b *Batcher) flush(batch []Metric) {
	if len(batch) == 0 {
		return
	}

	points := make([]Point, 0, len(batch))
	for _, m := range batch {
		p := m.ToPoint()
		if len(p.Fields) == 0 {
			b.reportError(fmt.Errorf("dropping measurement %q: %w", p.Measurement, ErrNoFields))
			continue
		}
		points = append(points, p)
	}
	if len(points) == 0 {
		return
	}

	if err := b.client.WritePoints(points); err != nil {
		b.log.Error("failed to write batch", zap.Int("count", len(points)), zap.Error(err))
		b.reportError(err)
	}
}

func (b *Batcher) reportError(err error) {
	if b.config.ErrorListener != nil {
		b.config.ErrorListener(err)
	}
}
