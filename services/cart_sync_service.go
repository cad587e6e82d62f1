package services

import (
	"context"
	"log"

	"github.com/Caught-Online/caught-online-storefront-backend/models"
)

// CartSyncService mirrors the local cart onto the platform's session cart.
// The local cart stays authoritative; the remote one is rebuilt with a
// clear-then-add pass on every sync.
//
// State machine: idle → clearing → (empty: done) | adding one-by-one →
// verifying → done. The clear step is fail-fast — syncing against a cart of
// unknown prior contents is worse than not syncing. Add steps are
// best-effort: a failed add is recorded and the rest continue, because the
// next sync will retry whatever is missing. The verify read-back is
// diagnostic only and never changes the outcome.
type CartSyncService struct {
	cart CartAPI
}

var cartSyncService *CartSyncService

func InitCartSyncService(cart CartAPI) {
	cartSyncService = NewCartSyncService(cart)
}

func GetCartSyncService() *CartSyncService {
	if cartSyncService == nil {
		cartSyncService = NewCartSyncService(GetCartAPI())
	}
	return cartSyncService
}

func NewCartSyncService(cart CartAPI) *CartSyncService {
	return &CartSyncService{cart: cart}
}

// SyncCart pushes items onto the remote cart. Success is true unless the
// clear step failed; individual add failures are visible in the step list
// but deliberately do not flip the result.
func (s *CartSyncService) SyncCart(ctx context.Context, items []models.CartItem) models.SyncReport {
	report := models.SyncReport{}

	// Step 1: clear unconditionally, fail-fast.
	if err := s.cart.ClearCart(ctx); err != nil {
		log.Printf("[cart.sync] clear failed: %v", err)
		report.Steps = append(report.Steps, models.SyncStepResult{
			Step:  models.SyncStepClear,
			OK:    false,
			Error: err.Error(),
		})
		report.Success = false
		return report
	}
	report.Steps = append(report.Steps, models.SyncStepResult{Step: models.SyncStepClear, OK: true})

	// Step 2: add each item in input order, best-effort.
	for _, item := range items {
		if item.VariantID == "" {
			log.Printf("[cart.sync] skipping item with empty variant id (qty=%d)", item.Quantity)
			report.Steps = append(report.Steps, models.SyncStepResult{
				Step:    models.SyncStepAdd,
				OK:      false,
				Skipped: true,
			})
			continue
		}

		if err := s.cart.AddItem(ctx, item.VariantID, item.Quantity); err != nil {
			log.Printf("[cart.sync] add failed variant=%s qty=%d: %v", item.VariantID, item.Quantity, err)
			report.Steps = append(report.Steps, models.SyncStepResult{
				Step:      models.SyncStepAdd,
				VariantID: item.VariantID,
				OK:        false,
				Error:     err.Error(),
			})
			continue
		}
		report.Steps = append(report.Steps, models.SyncStepResult{
			Step:      models.SyncStepAdd,
			VariantID: item.VariantID,
			OK:        true,
		})
	}

	// Step 3: read back for diagnostics; never affects the result.
	remote, err := s.cart.ReadCart(ctx)
	if err != nil {
		log.Printf("[cart.sync] verify read failed: %v", err)
		report.Steps = append(report.Steps, models.SyncStepResult{
			Step:  models.SyncStepVerify,
			OK:    false,
			Error: err.Error(),
		})
	} else {
		report.Steps = append(report.Steps, models.SyncStepResult{Step: models.SyncStepVerify, OK: true})
		report.RemoteCart = remote
	}

	if failed := report.FailedAdds(); len(failed) > 0 {
		// Known gap: failed adds are not retried here, the local cart stays
		// authoritative and the next sync picks them up.
		log.Printf("[cart.sync] completed with %d failed add(s): %v", len(failed), failed)
	}

	report.Success = true
	return report
}
