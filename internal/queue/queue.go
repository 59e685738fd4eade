package queue

import (
	"errors"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"casabook/server/internal/models"
)

var (
	ErrQueueFull   = errors.New("queue is full")
	ErrQueueClosed = errors.New("queue is closed")
)

// ListingQueue buffers validated properties on their way to the bulk
// import writers. Listings accumulate into batches that flush when they
// reach maxBatchSize or when maxWait elapses, whichever comes first.
type ListingQueue struct {
	items        chan *models.Property
	done         chan struct{}
	maxBatchSize int
	maxWait      time.Duration
	closed       bool
	mu           sync.RWMutex
	logger       *logrus.Logger
	handlers     []func([]*models.Property) error
}

func NewListingQueue(bufferSize, maxBatchSize int, maxWait time.Duration, logger *logrus.Logger) *ListingQueue {
	return &ListingQueue{
		items:        make(chan *models.Property, bufferSize),
		done:         make(chan struct{}),
		maxBatchSize: maxBatchSize,
		maxWait:      maxWait,
		logger:       logger,
		handlers:     make([]func([]*models.Property) error, 0),
	}
}

// Push adds a single listing to the queue without blocking.
func (q *ListingQueue) Push(property *models.Property) error {
	q.mu.RLock()
	if q.closed {
		q.mu.RUnlock()
		return ErrQueueClosed
	}
	q.mu.RUnlock()

	select {
	case q.items <- property:
		return nil
	default:
		return ErrQueueFull
	}
}

// Subscribe adds a handler that will be called with each flushed batch.
func (q *ListingQueue) Subscribe(handler func([]*models.Property) error) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.handlers = append(q.handlers, handler)
}

// Start begins assembling and flushing batches.
func (q *ListingQueue) Start() {
	go q.process()
}

func (q *ListingQueue) process() {
	ticker := time.NewTicker(q.maxWait)
	defer ticker.Stop()

	batch := make([]*models.Property, 0, q.maxBatchSize)
	for {
		select {
		case <-q.done:
			q.flush(batch)
			return
		case property := <-q.items:
			if property == nil {
				q.flush(batch)
				return
			}
			batch = append(batch, property)
			if len(batch) >= q.maxBatchSize {
				q.flush(batch)
				batch = make([]*models.Property, 0, q.maxBatchSize)
			}
		case <-ticker.C:
			if len(batch) > 0 {
				q.flush(batch)
				batch = make([]*models.Property, 0, q.maxBatchSize)
			}
		}
	}
}

// flush hands the batch to every subscribed handler.
func (q *ListingQueue) flush(batch []*models.Property) {
	if len(batch) == 0 {
		return
	}

	q.mu.RLock()
	handlers := q.handlers
	q.mu.RUnlock()

	q.logger.WithField("batch_size", len(batch)).Debug("Flushing listing batch")
	for _, handler := range handlers {
		if err := handler(batch); err != nil {
			q.logger.WithError(err).Error("Handler failed to process batch")
		}
	}
}

// Close stops the queue and prevents new listings from being added.
func (q *ListingQueue) Close() error {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.closed {
		return nil
	}

	q.closed = true
	close(q.done)
	return nil
}

// Len returns the number of listings waiting to be batched.
func (q *ListingQueue) Len() int {
	return len(q.items)
}

// IsClosed reports whether the queue has been closed.
func (q *ListingQueue) IsClosed() bool {
	q.mu.RLock()
	defer q.mu.RUnlock()
	return q.closed
}
