package queue

import (
	"context"
	"errors"
	"hash/fnv"
	"strconv"
	"time"

	"github.com/rs/zerolog"

	"github.com/vista-store/storefront/internal/api/metrics"
	"github.com/vista-store/storefront/internal/core/domain"
	"github.com/vista-store/storefront/internal/core/ports"
)

const (
	defaultWorkers = 4
	channelBuffer  = 256
)

// Dispatcher routes order status updates to a fixed set of workers using
// consistent hashing on the order id, guaranteeing per-order ordering.
type Dispatcher struct {
	workers []chan ports.OrderEventInput
	service ports.TrackingService
	log     zerolog.Logger
}

// NewDispatcher creates a Dispatcher with numWorkers sharded workers.
// If numWorkers <= 0, defaultWorkers is used.
func NewDispatcher(numWorkers int, service ports.TrackingService, log zerolog.Logger) *Dispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	d := &Dispatcher{
		workers: make([]chan ports.OrderEventInput, numWorkers),
		service: service,
		log:     log,
	}
	for i := range d.workers {
		d.workers[i] = make(chan ports.OrderEventInput, channelBuffer)
	}
	return d
}

// Start launches all worker goroutines. Workers stop when ctx is cancelled.
func (d *Dispatcher) Start(ctx context.Context) {
	for i, ch := range d.workers {
		go d.runWorker(ctx, i, ch)
	}
}

// Enqueue sends an update to the worker responsible for its order id.
// The call is non-blocking up to channelBuffer capacity.
func (d *Dispatcher) Enqueue(event ports.OrderEventInput) {
	i := d.shardIndex(event.OrderID)
	d.workers[i] <- event
	metrics.OrderEventsQueueDepth.WithLabelValues(strconv.Itoa(i)).Set(float64(len(d.workers[i])))
}

// EnqueueBatch enqueues multiple updates preserving per-order ordering.
func (d *Dispatcher) EnqueueBatch(events []ports.OrderEventInput) {
	for _, e := range events {
		d.Enqueue(e)
	}
}

// shardIndex maps an order id deterministically to a worker index.
func (d *Dispatcher) shardIndex(orderID string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(orderID))
	return int(h.Sum32()) % len(d.workers)
}

func (d *Dispatcher) runWorker(ctx context.Context, id int, ch <-chan ports.OrderEventInput) {
	worker := strconv.Itoa(id)
	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-ch:
			if !ok {
				return
			}
			d.process(ctx, event)
			metrics.OrderEventsQueueDepth.WithLabelValues(worker).Set(float64(len(ch)))
		}
	}
}

func (d *Dispatcher) process(ctx context.Context, event ports.OrderEventInput) {
	start := time.Now()
	if err := d.service.Process(ctx, event); err != nil {
		metrics.OrderEventsErrorsTotal.WithLabelValues(errorReason(err)).Inc()
		metrics.OrderEventDuration.WithLabelValues("error").Observe(time.Since(start).Seconds())
		d.log.Error().Err(err).
			Str("order_id", event.OrderID).
			Str("status", event.Status).
			Msg("order update processing failed")
		return
	}
	metrics.OrderEventsProcessedTotal.WithLabelValues(event.Status).Inc()
	metrics.OrderEventDuration.WithLabelValues(event.Status).Observe(time.Since(start).Seconds())
}

func errorReason(err error) string {
	switch {
	case errors.Is(err, domain.ErrInvalidTransition):
		return "invalid_transition"
	case errors.Is(err, domain.ErrOrderNotFound):
		return "order_not_found"
	default:
		return "update_failed"
	}
}
