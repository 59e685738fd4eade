// Package processor drains the listing queue into storage. It is the
// write side of the bulk import pipeline: the boundary validates and
// enqueues, the importer batches and upserts.
package processor

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"casabook/server/config"
	"casabook/server/internal/database"
	"casabook/server/internal/models"
	"casabook/server/internal/queue"
)

// ErrImporterStopped is returned to the queue when a batch arrives after
// shutdown has begun.
var ErrImporterStopped = errors.New("importer stopped")

// BatchImporter consumes flushed batches and writes each one inside a
// single transaction, retrying transient failures.
type BatchImporter struct {
	db        *gorm.DB
	logger    *logrus.Logger
	config    *config.Config
	queue     *queue.ListingQueue
	batches   chan []*models.Property
	waitGroup sync.WaitGroup
	ctx       context.Context
	cancel    context.CancelFunc
}

func NewBatchImporter(db *gorm.DB, q *queue.ListingQueue, cfg *config.Config, logger *logrus.Logger) *BatchImporter {
	ctx, cancel := context.WithCancel(context.Background())
	return &BatchImporter{
		db:      db,
		queue:   q,
		config:  cfg,
		logger:  logger,
		batches: make(chan []*models.Property, cfg.Import.WorkerCount),
		ctx:     ctx,
		cancel:  cancel,
	}
}

// Start subscribes to the queue and launches the configured number of
// batch writers.
func (p *BatchImporter) Start() {
	p.queue.Subscribe(p.enqueue)

	for i := 0; i < p.config.Import.WorkerCount; i++ {
		p.waitGroup.Add(1)
		go p.workLoop()
	}
}

// Stop gracefully shuts down the importer.
func (p *BatchImporter) Stop() {
	p.cancel()
	p.waitGroup.Wait()
}

func (p *BatchImporter) enqueue(batch []*models.Property) error {
	select {
	case <-p.ctx.Done():
		return ErrImporterStopped
	default:
	}

	select {
	case p.batches <- batch:
		return nil
	case <-p.ctx.Done():
		return ErrImporterStopped
	}
}

func (p *BatchImporter) workLoop() {
	defer p.waitGroup.Done()

	for {
		select {
		case <-p.ctx.Done():
			return
		case batch := <-p.batches:
			if err := p.importBatch(batch); err != nil {
				p.logger.WithError(err).Error("Dropping listing batch")
			}
		}
	}
}

// importBatch writes one batch in a transaction with retry on failure.
func (p *BatchImporter) importBatch(batch []*models.Property) error {
	var err error
	for attempt := 0; attempt <= p.config.Import.MaxRetries; attempt++ {
		if attempt > 0 {
			p.logger.Infof("Retrying batch import, attempt %d of %d", attempt, p.config.Import.MaxRetries)
			time.Sleep(time.Duration(p.config.Import.RetryDelay) * time.Second)
		}

		err = p.db.Transaction(func(tx *gorm.DB) error {
			if err := database.UpsertProperties(tx, batch); err != nil {
				return fmt.Errorf("failed to upsert listings batch: %w", err)
			}
			return nil
		})

		if err == nil {
			p.logger.Infof("Imported batch of %d listings", len(batch))
			return nil
		}

		p.logger.Errorf("Batch import failed: %v", err)
	}

	return fmt.Errorf("failed to import batch after %d attempts: %w", p.config.Import.MaxRetries, err)
}
