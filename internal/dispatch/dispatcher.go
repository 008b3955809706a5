// Package dispatch batches analytics payloads and flushes them to the event
// sink on a fixed interval.
package dispatch

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/cenkalti/backoff/v4"
	"go.uber.org/zap"

	"github.com/amberstream/lib-exposure-go/model"
)

// Sink defines the interface for delivering an analytics batch
type Sink interface {
	SendEvents(ctx context.Context, batch *model.EventBatch) error
}

const maxFlushRetries = 3

// Dispatcher accumulates opaque event payloads and periodically posts them
// as a single batch. A batch that cannot be delivered after bounded retries
// is re-queued ahead of newer events.
type Dispatcher struct {
	sink          Sink
	sessionID     string
	flushInterval time.Duration
	logger        *zap.SugaredLogger

	mu      sync.Mutex
	pending []json.RawMessage
	started bool
	cancel  context.CancelFunc

	lastFlush time.Time
}

// New creates a new dispatcher for the given session
func New(sink Sink, sessionID string, flushInterval time.Duration, logger *zap.Logger) *Dispatcher {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Dispatcher{
		sink:          sink,
		sessionID:     sessionID,
		flushInterval: flushInterval,
		logger:        logger.Sugar(),
	}
}

// Enqueue buffers a payload for the next flush
func (d *Dispatcher) Enqueue(payload json.RawMessage) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.pending = append(d.pending, payload)
}

// Start begins the background flush loop
func (d *Dispatcher) Start(ctx context.Context) {
	d.mu.Lock()
	if d.started {
		d.mu.Unlock()
		return
	}

	flushCtx, cancel := context.WithCancel(ctx)
	d.cancel = cancel
	d.started = true
	d.mu.Unlock()

	ticker := time.NewTicker(d.flushInterval)

	go func() {
		d.logger.Info("Starting analytics dispatch")

		for {
			select {
			case <-flushCtx.Done():
				ticker.Stop()
				d.logger.Info("Analytics dispatch stopped")

				return

			case <-ticker.C:
				if err := d.Flush(flushCtx); err != nil {
					d.logger.Errorf("Analytics flush failed after retries: %v", err)
				}
			}
		}
	}()
}

// Shutdown stops the flush loop and attempts one final flush
func (d *Dispatcher) Shutdown(ctx context.Context) {
	d.mu.Lock()

	if !d.started {
		d.mu.Unlock()
		return
	}

	if d.cancel != nil {
		d.cancel()
		d.cancel = nil
	}

	d.started = false
	d.mu.Unlock()

	if err := d.Flush(ctx); err != nil {
		d.logger.Warnf("Final analytics flush failed: %v", err)
	}
}

// Flush drains the pending buffer into a batch and delivers it with
// exponential backoff. A nil error is returned when there was nothing to
// send.
func (d *Dispatcher) Flush(ctx context.Context) error {
	d.mu.Lock()
	payloads := d.pending
	d.pending = nil
	d.mu.Unlock()

	if len(payloads) == 0 {
		return nil
	}

	batch := &model.EventBatch{
		SessionID:    d.sessionID,
		DispatchTime: time.Now().UnixMilli(),
		Payloads:     payloads,
	}

	operation := func() error {
		return d.sink.SendEvents(ctx, batch)
	}

	policy := backoff.WithContext(
		backoff.WithMaxRetries(backoff.NewExponentialBackOff(), maxFlushRetries), ctx)

	if err := backoff.Retry(operation, policy); err != nil {
		d.requeue(payloads)
		return err
	}

	d.mu.Lock()
	d.lastFlush = time.Now()
	d.mu.Unlock()

	d.logger.Debugf("Dispatched %d analytics payloads", len(payloads))

	return nil
}

// requeue puts undelivered payloads back ahead of anything enqueued since
func (d *Dispatcher) requeue(payloads []json.RawMessage) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.pending = append(payloads, d.pending...)
}
