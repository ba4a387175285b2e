package purchase

import (
	"context"
	"sync"

	"github.com/stepexplorer/server/internal/domain/auth"
	errs "github.com/stepexplorer/server/internal/domain/error"
	coreport "github.com/stepexplorer/server/internal/domain/port/core"
)

// Queue serializes purchase attempts per user. Two purchases by the same user
// are processed one after the other; purchases by different users proceed
// concurrently. The database's atomic purchase operation remains the
// authoritative serializer; this only keeps one client from racing itself.
type Queue struct {
	logger coreport.Logger

	// Per-user request queues for strict ordering
	userQueues     sync.Map // map[string]chan *purchaseRequest
	queueWaitGroup sync.WaitGroup

	// Guards the queue channels against sends after Shutdown closed them
	closeMu sync.RWMutex
	closed  bool

	// Function invoked to process each dequeued purchase
	processor ProcessorFunc
}

// ProcessorFunc is the function signature for processing a purchase attempt
type ProcessorFunc func(ctx context.Context, sess *auth.Session, assetID string, price int64) (*Receipt, error)

// purchaseRequest represents a queued purchase attempt
type purchaseRequest struct {
	ctx        context.Context
	sess       *auth.Session
	assetID    string
	price      int64
	resultChan chan *purchaseResult
}

// purchaseResult represents the outcome of a processed purchase attempt
type purchaseResult struct {
	receipt *Receipt
	err     error
}

// NewQueue creates a new per-user purchase queue
func NewQueue(logger coreport.Logger, processor ProcessorFunc) *Queue {
	if processor == nil {
		panic("purchase processor function cannot be nil")
	}

	return &Queue{
		logger:    logger,
		processor: processor,
	}
}

// Enqueue adds a purchase attempt to the user's queue and waits for its result
func (q *Queue) Enqueue(ctx context.Context, sess *auth.Session, assetID string, price int64) (*Receipt, error) {
	userID := sess.UserIDOrEmpty()
	q.logger.Debug("Enqueuing purchase for sequential processing", map[string]any{
		"user_id":  userID,
		"asset_id": assetID,
	})

	resultChan := make(chan *purchaseResult, 1)

	// The read lock spans the send: Shutdown cannot close a channel with a
	// send in flight.
	q.closeMu.RLock()
	if q.closed {
		q.closeMu.RUnlock()
		q.logger.Warn("Purchase rejected: queue is shutting down", map[string]any{
			"user_id":  userID,
			"asset_id": assetID,
		})
		return nil, errs.ErrInternalServer
	}

	var queue chan *purchaseRequest
	queueIface, loaded := q.userQueues.LoadOrStore(userID, make(chan *purchaseRequest, 16))
	if queueCh, ok := queueIface.(chan *purchaseRequest); ok {
		queue = queueCh
	} else {
		q.closeMu.RUnlock()
		q.logger.Error("Failed to type assert queue channel", nil)
		return nil, errs.ErrInternalServer
	}

	// Start a worker the first time this user's queue appears
	if !loaded {
		q.queueWaitGroup.Add(1)
		go q.processUserPurchases(userID, queue)
	}

	req := &purchaseRequest{
		ctx:        ctx,
		sess:       sess,
		assetID:    assetID,
		price:      price,
		resultChan: resultChan,
	}

	select {
	case queue <- req:
		q.closeMu.RUnlock()
	case <-ctx.Done():
		q.closeMu.RUnlock()
		q.logger.Warn("Context canceled while enqueueing purchase", map[string]any{
			"user_id":  userID,
			"asset_id": assetID,
			"error":    ctx.Err().Error(),
		})
		return nil, ctx.Err()
	}

	select {
	case result := <-resultChan:
		return result.receipt, result.err
	case <-ctx.Done():
		q.logger.Warn("Context canceled while waiting for purchase result", map[string]any{
			"user_id":  userID,
			"asset_id": assetID,
			"error":    ctx.Err().Error(),
		})
		return nil, ctx.Err()
	}
}

// processUserPurchases is the worker goroutine draining one user's queue
func (q *Queue) processUserPurchases(userID string, queue chan *purchaseRequest) {
	defer q.queueWaitGroup.Done()

	q.logger.Info("Purchase queue worker started", map[string]any{
		"user_id": userID,
	})

	for req := range queue {
		receipt, err := q.processor(req.ctx, req.sess, req.assetID, req.price)

		req.resultChan <- &purchaseResult{
			receipt: receipt,
			err:     err,
		}
		close(req.resultChan)
	}

	q.logger.Info("Purchase queue worker stopped", map[string]any{
		"user_id": userID,
	})
}

// Shutdown stops all worker goroutines cleanly. Enqueue calls arriving after
// this point are rejected rather than sent to a closed channel.
func (q *Queue) Shutdown() {
	q.closeMu.Lock()
	if q.closed {
		q.closeMu.Unlock()
		return
	}
	q.closed = true

	q.logger.Info("Shutting down purchase queue", nil)

	q.userQueues.Range(func(userID, queueIface any) bool {
		if queue, ok := queueIface.(chan *purchaseRequest); ok {
			close(queue)
		}
		return true
	})
	q.closeMu.Unlock()

	q.queueWaitGroup.Wait()
	q.logger.Info("Purchase queue shut down successfully", nil)
}
