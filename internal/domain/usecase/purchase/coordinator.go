package purchase

import (
	"context"
	"fmt"

	"github.com/stepexplorer/server/internal/domain/auth"
	errs "github.com/stepexplorer/server/internal/domain/error"
	coreport "github.com/stepexplorer/server/internal/domain/port/core"
	"github.com/stepexplorer/server/internal/domain/port/persistence"
	"github.com/stepexplorer/server/internal/domain/usecase/catalog"
)

// Receipt is the result of a committed purchase. NewBalance is the balance
// returned by the atomic operation; Catalog is the awaited post-purchase
// reload (nil only if the reload itself failed after the purchase committed).
type Receipt struct {
	AssetID    string
	Price      int64
	NewBalance int64
	Catalog    *catalog.CatalogView
}

// Coordinator handles user-initiated purchases. All advisory checks happen
// client-side first; the actual debit-and-insert is delegated to the single
// atomic operation in the profile repository. Local state is never mutated on
// failure, and a full catalog reload follows every success to stay consistent
// with concurrent mutations from other devices.
type Coordinator struct {
	profileRepo   persistence.ProfileRepository
	userAssetRepo persistence.UserAssetRepository
	assetRepo     persistence.AssetRepository
	loader        *catalog.Loader
	queue         *Queue
	timeProvider  coreport.TimeProvider
	logger        coreport.Logger
}

// NewCoordinator creates a purchase coordinator with its per-user queue
func NewCoordinator(
	profileRepo persistence.ProfileRepository,
	userAssetRepo persistence.UserAssetRepository,
	assetRepo persistence.AssetRepository,
	loader *catalog.Loader,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) *Coordinator {
	c := &Coordinator{
		profileRepo:   profileRepo,
		userAssetRepo: userAssetRepo,
		assetRepo:     assetRepo,
		loader:        loader,
		timeProvider:  timeProvider,
		logger:        logger,
	}
	c.queue = NewQueue(logger, c.process)
	return c
}

// Purchase validates affordability locally, then delegates the state
// transition to the atomic remote operation. Same-user attempts are
// serialized through the queue.
func (c *Coordinator) Purchase(ctx context.Context, sess *auth.Session, assetID string, price int64) (*Receipt, error) {
	if err := sess.Validate(); err != nil {
		return nil, err
	}
	return c.queue.Enqueue(ctx, sess, assetID, price)
}

// process runs one purchase attempt end to end.
// Side effect ordering: atomic remote call, then catalog reload, then return.
// Nothing is mutated when any advisory check or the atomic call fails.
func (c *Coordinator) process(ctx context.Context, sess *auth.Session, assetID string, price int64) (*Receipt, error) {
	if err := sess.Validate(); err != nil {
		return nil, err
	}
	if assetID == "" {
		return nil, errs.ErrInvalidAssetID
	}
	if price < 0 {
		return nil, errs.ErrInvalidPrice
	}

	// The asset must exist, and the debit must match its current list price.
	asset, err := c.assetRepo.GetByID(ctx, assetID)
	if err != nil {
		return nil, err
	}
	if price != asset.Price {
		return nil, errs.NewPurchaseError(sess.UserID, assetID, price, "price does not match current list price", errs.ErrInvalidPrice)
	}

	// Advisory ownership check: produces the specific already-owned message
	// without touching the atomic operation. The unique constraint inside
	// PurchaseAsset remains authoritative.
	owned, err := c.userAssetRepo.Exists(ctx, sess.UserID, assetID)
	if err != nil {
		return nil, errs.NewPurchaseError(sess.UserID, assetID, price, "ownership pre-check failed", err)
	}
	if owned {
		return nil, errs.NewAlreadyOwnedError(sess.UserID, assetID)
	}

	// Advisory affordability check: a plain read, never a balance write.
	// When it fails the atomic operation is not issued at all.
	profile, err := c.profileRepo.GetByID(ctx, sess.UserID)
	if err != nil {
		return nil, errs.NewPurchaseError(sess.UserID, assetID, price, "profile read failed", err)
	}
	if !profile.CanAfford(price) {
		c.logger.Info("Purchase rejected by local affordability check", map[string]any{
			"user_id":  sess.UserID,
			"asset_id": assetID,
			"price":    price,
			"balance":  profile.Coins(),
		})
		return nil, errs.NewInsufficientCoinsError(sess.UserID, price, profile.Coins())
	}

	// Authoritative path: verify balance, debit coins, insert ownership row,
	// as one indivisible unit. Closes the race window between the advisory
	// check above and the write.
	updated, err := c.profileRepo.PurchaseAsset(ctx, sess.UserID, assetID, price)
	if err != nil {
		c.logger.Warn("Atomic purchase operation rejected", map[string]any{
			"user_id":  sess.UserID,
			"asset_id": assetID,
			"price":    price,
			"error":    err.Error(),
		})
		return nil, err
	}

	c.logger.Info("Purchase committed", map[string]any{
		"user_id":     sess.UserID,
		"asset_id":    assetID,
		"price":       price,
		"new_balance": updated.Coins(),
	})

	receipt := &Receipt{
		AssetID:    assetID,
		Price:      price,
		NewBalance: updated.Coins(),
	}

	// Awaited full reload rather than incremental patching, so the returned
	// view reflects any other concurrent mutation. The purchase has already
	// committed: a reload failure is reported alongside the receipt.
	view, err := c.loader.LoadCatalog(ctx, sess)
	if err != nil {
		c.logger.Warn("Post-purchase catalog reload failed", map[string]any{
			"user_id":  sess.UserID,
			"asset_id": assetID,
			"error":    err.Error(),
		})
		return receipt, fmt.Errorf("purchase committed but catalog reload failed: %w", err)
	}
	receipt.Catalog = view

	return receipt, nil
}

// ListForSale is a stubbed no-op: resale is not modeled in this version.
// Validates the session and logs the intent so the call is observable.
func (c *Coordinator) ListForSale(ctx context.Context, sess *auth.Session, assetID string) error {
	if err := sess.Validate(); err != nil {
		return err
	}
	if assetID == "" {
		return errs.ErrInvalidAssetID
	}

	c.logger.Info("List-for-sale requested (not supported yet)", map[string]any{
		"user_id":  sess.UserID,
		"asset_id": assetID,
	})
	return nil
}

// Shutdown stops the per-user queue workers
func (c *Coordinator) Shutdown() {
	c.queue.Shutdown()
}
