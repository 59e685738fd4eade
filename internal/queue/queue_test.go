package queue

import (
	"sync"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"

	"casabook/server/internal/models"
)

func TestNewListingQueue(t *testing.T) {
	logger := logrus.New()
	q := NewListingQueue(10, 5, time.Second, logger)
	assert.NotNil(t, q)
	assert.Equal(t, 5, q.maxBatchSize)
	assert.False(t, q.IsClosed())
}

func TestListingQueue_Push(t *testing.T) {
	logger := logrus.New()
	q := NewListingQueue(2, 2, time.Second, logger)

	err := q.Push(&models.Property{Title: "Casa 1"})
	assert.NoError(t, err)
	assert.Equal(t, 1, q.Len())

	// Fill the buffer, then one more must be rejected.
	_ = q.Push(&models.Property{Title: "Casa 2"})
	err = q.Push(&models.Property{Title: "Casa 3"})
	assert.Equal(t, ErrQueueFull, err)

	q.Close()
	err = q.Push(&models.Property{Title: "Casa 4"})
	assert.Equal(t, ErrQueueClosed, err)
}

func TestListingQueue_FlushesFullBatch(t *testing.T) {
	logger := logrus.New()
	q := NewListingQueue(10, 2, time.Minute, logger)

	var mu sync.Mutex
	var batches [][]*models.Property
	q.Subscribe(func(batch []*models.Property) error {
		mu.Lock()
		batches = append(batches, batch)
		mu.Unlock()
		return nil
	})

	q.Start()
	defer q.Close()

	assert.NoError(t, q.Push(&models.Property{Title: "Casa 1"}))
	assert.NoError(t, q.Push(&models.Property{Title: "Casa 2"}))

	// The wait timer is a minute out, so this flush came from batch size.
	assert.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return len(batches) == 1
	}, time.Second, 10*time.Millisecond)

	mu.Lock()
	assert.Len(t, batches[0], 2)
	assert.Equal(t, "Casa 1", batches[0][0].Title)
	assert.Equal(t, "Casa 2", batches[0][1].Title)
	mu.Unlock()
}

func TestListingQueue_FlushesPartialBatchOnTimer(t *testing.T) {
	logger := logrus.New()
	q := NewListingQueue(10, 100, 50*time.Millisecond, logger)

	var mu sync.Mutex
	var flushed []*models.Property
	q.Subscribe(func(batch []*models.Property) error {
		mu.Lock()
		flushed = append(flushed, batch...)
		mu.Unlock()
		return nil
	})

	q.Start()
	defer q.Close()

	assert.NoError(t, q.Push(&models.Property{Title: "Casa"}))

	assert.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return len(flushed) == 1
	}, time.Second, 10*time.Millisecond)
}

func TestListingQueue_FanOut(t *testing.T) {
	logger := logrus.New()
	q := NewListingQueue(10, 1, time.Minute, logger)

	var wg sync.WaitGroup
	handled := 0
	var mu sync.Mutex

	for i := 0; i < 3; i++ {
		wg.Add(1)
		q.Subscribe(func(batch []*models.Property) error {
			mu.Lock()
			handled++
			mu.Unlock()
			wg.Done()
			return nil
		})
	}

	q.Start()
	defer q.Close()

	assert.NoError(t, q.Push(&models.Property{Title: "Casa"}))
	wg.Wait()

	mu.Lock()
	assert.Equal(t, 3, handled)
	mu.Unlock()
}

func TestListingQueue_Close(t *testing.T) {
	logger := logrus.New()
	q := NewListingQueue(10, 5, time.Second, logger)

	err := q.Close()
	assert.NoError(t, err)
	assert.True(t, q.IsClosed())

	// Second close is a no-op.
	err = q.Close()
	assert.NoError(t, err)
}
