// Package batcher collects items on a background loop and hands them to a
// flush callback in rate-limited batches.
package batcher

import (
	"context"
	"errors"
	"sync"
	"time"

	"go.uber.org/ratelimit"
	"go.uber.org/zap"
)

// ErrStopped is returned by Add once Stop has been called.
var ErrStopped = errors.New("batcher stopped")

// Batcher flushes when flushSize items are buffered or flushInterval passes,
// whichever comes first. Items still queued at shutdown are flushed once more.
type Batcher[T any] struct {
	flush         func(context.Context, []T) error
	items         chan T
	flushSize     int
	flushInterval time.Duration
	limiter       ratelimit.Limiter
	logger        *zap.Logger

	wg       sync.WaitGroup
	stop     chan struct{}
	stopOnce sync.Once
}

// New builds a Batcher. rps caps flushes per second; zero or less means no cap.
func New[T any](logger *zap.Logger, flush func(context.Context, []T) error, flushSize int, flushInterval time.Duration, rps int) *Batcher[T] {
	if flushSize <= 0 {
		flushSize = 1
	}
	limiter := ratelimit.NewUnlimited()
	if rps > 0 {
		limiter = ratelimit.New(rps)
	}
	return &Batcher[T]{
		logger:        logger,
		flush:         flush,
		items:         make(chan T, flushSize*2),
		flushSize:     flushSize,
		flushInterval: flushInterval,
		limiter:       limiter,
		stop:          make(chan struct{}),
	}
}

func (b *Batcher[T]) Start(ctx context.Context) {
	b.wg.Add(1)
	go b.run(ctx)
}

// Stop ends the loop after a final flush. It is safe to call more than once.
func (b *Batcher[T]) Stop() {
	b.stopOnce.Do(func() { close(b.stop) })
	b.wg.Wait()
}

// Add queues item, blocking while the buffer is full.
func (b *Batcher[T]) Add(ctx context.Context, item T) error {
	select {
	case <-b.stop:
		return ErrStopped
	default:
	}

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-b.stop:
		return ErrStopped
	case b.items <- item:
		return nil
	}
}

func (b *Batcher[T]) run(ctx context.Context) {
	defer b.wg.Done()

	ticker := time.NewTicker(b.flushInterval)
	defer ticker.Stop()

	buf := make([]T, 0, b.flushSize)
	flush := func() {
		if len(buf) == 0 {
			return
		}
		batch := buf
		buf = make([]T, 0, b.flushSize)

		b.limiter.Take()
		if err := b.flush(ctx, batch); err != nil {
			b.logger.Error("batch not flushed", zap.Int("size", len(batch)), zap.Error(err))
			return
		}
		b.logger.Debug("batch flushed", zap.Int("size", len(batch)))
	}

	for {
		select {
		case <-ctx.Done():
			b.drain(&buf)
			flush()
			return
		case <-b.stop:
			b.drain(&buf)
			flush()
			return
		case item := <-b.items:
			buf = append(buf, item)
			if len(buf) >= b.flushSize {
				flush()
			}
		case <-ticker.C:
			flush()
		}
	}
}

func (b *Batcher[T]) drain(buf *[]T) {
	for {
		select {
		case item := <-b.items:
			*buf = append(*buf, item)
		default:
			return
		}
	}
}
