package purchase

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stepexplorer/server/internal/domain/auth"
	errs "github.com/stepexplorer/server/internal/domain/error"
	coremocks "github.com/stepexplorer/server/mocks/port/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newQueueLogger(t *testing.T) *coremocks.MockLogger {
	mockLogger := coremocks.NewMockLogger(t)
	mockLogger.EXPECT().Debug(mock.Anything, mock.Anything).Maybe()
	mockLogger.EXPECT().Info(mock.Anything, mock.Anything).Maybe()
	mockLogger.EXPECT().Warn(mock.Anything, mock.Anything).Maybe()
	mockLogger.EXPECT().Error(mock.Anything, mock.Anything).Maybe()
	return mockLogger
}

func TestQueueSerializesPerUser(t *testing.T) {
	ctx := context.Background()

	var mu sync.Mutex
	inFlight := map[string]int{}
	maxInFlight := map[string]int{}

	processor := func(_ context.Context, sess *auth.Session, assetID string, price int64) (*Receipt, error) {
		mu.Lock()
		inFlight[sess.UserID]++
		if inFlight[sess.UserID] > maxInFlight[sess.UserID] {
			maxInFlight[sess.UserID] = inFlight[sess.UserID]
		}
		mu.Unlock()

		time.Sleep(5 * time.Millisecond)

		mu.Lock()
		inFlight[sess.UserID]--
		mu.Unlock()

		return &Receipt{AssetID: assetID, Price: price}, nil
	}

	queue := NewQueue(newQueueLogger(t), processor)
	defer queue.Shutdown()

	var wg sync.WaitGroup
	for _, userID := range []string{"user-1", "user-2"} {
		sess := auth.NewSession(userID, "walker")
		for i := 0; i < 8; i++ {
			wg.Add(1)
			go func(sess *auth.Session) {
				defer wg.Done()
				receipt, err := queue.Enqueue(ctx, sess, "asset-1", 100)
				assert.NoError(t, err)
				assert.NotNil(t, receipt)
			}(sess)
		}
	}
	wg.Wait()

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, 1, maxInFlight["user-1"], "same-user purchases must not overlap")
	assert.Equal(t, 1, maxInFlight["user-2"], "same-user purchases must not overlap")
}

func TestQueuePropagatesProcessorResult(t *testing.T) {
	ctx := context.Background()
	sess := auth.NewSession("user-1", "walker")

	processor := func(_ context.Context, _ *auth.Session, assetID string, price int64) (*Receipt, error) {
		return &Receipt{AssetID: assetID, Price: price, NewBalance: 42}, nil
	}

	queue := NewQueue(newQueueLogger(t), processor)
	defer queue.Shutdown()

	receipt, err := queue.Enqueue(ctx, sess, "asset-1", 100)

	require.NoError(t, err)
	assert.Equal(t, "asset-1", receipt.AssetID)
	assert.Equal(t, int64(42), receipt.NewBalance)
}

func TestQueueHonorsContextCancellation(t *testing.T) {
	sess := auth.NewSession("user-1", "walker")

	release := make(chan struct{})
	processor := func(_ context.Context, _ *auth.Session, assetID string, price int64) (*Receipt, error) {
		<-release
		return &Receipt{AssetID: assetID, Price: price}, nil
	}

	queue := NewQueue(newQueueLogger(t), processor)
	defer queue.Shutdown()

	// Occupy the worker, then cancel a second waiter
	firstDone := make(chan struct{})
	go func() {
		_, _ = queue.Enqueue(context.Background(), sess, "asset-1", 100)
		close(firstDone)
	}()

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := queue.Enqueue(ctx, sess, "asset-2", 100)
	assert.ErrorIs(t, err, context.DeadlineExceeded)

	// Unblock the worker so the first enqueue can complete
	close(release)
	<-firstDone
}

func TestNewQueueRequiresProcessor(t *testing.T) {
	assert.Panics(t, func() {
		NewQueue(newQueueLogger(t), nil)
	})
}

func TestQueueRejectsEnqueueAfterShutdown(t *testing.T) {
	ctx := context.Background()
	sess := auth.NewSession("user-1", "walker")

	processor := func(_ context.Context, _ *auth.Session, assetID string, price int64) (*Receipt, error) {
		return &Receipt{AssetID: assetID, Price: price}, nil
	}

	queue := NewQueue(newQueueLogger(t), processor)

	receipt, err := queue.Enqueue(ctx, sess, "asset-1", 100)
	require.NoError(t, err)
	require.NotNil(t, receipt)

	queue.Shutdown()

	// A request in the window between server drain and queue close must be
	// rejected, never sent to a closed channel
	assert.NotPanics(t, func() {
		receipt, err = queue.Enqueue(ctx, sess, "asset-1", 100)
	})
	assert.Nil(t, receipt)
	assert.ErrorIs(t, err, errs.ErrInternalServer)

	// Repeated shutdown is a no-op
	assert.NotPanics(t, queue.Shutdown)
}
