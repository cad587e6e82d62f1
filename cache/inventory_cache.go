package inventory_cache

import (
	"sync"
	"time"

	"github.com/Caught-Online/caught-online-storefront-backend/models"
)

const TTL = 60 * time.Second

// ── Per-product inventory cache ──────────────────────────────────────────────
// Keyed by product handle; holds the full per-location breakdown so a region
// switch does not refetch. Short TTL, last-write-wins, no invalidation races
// worth guarding beyond the lock.

type entry struct {
	levels    []models.InventoryLevel
	fetchedAt time.Time
}

var (
	mu    sync.RWMutex
	byKey = make(map[string]entry)
)

func Get(handle string) ([]models.InventoryLevel, bool) {
	mu.RLock()
	defer mu.RUnlock()
	e, ok := byKey[handle]
	if !ok || time.Since(e.fetchedAt) >= TTL {
		return nil, false
	}
	return e.levels, true
}

func Set(handle string, levels []models.InventoryLevel) {
	mu.Lock()
	defer mu.Unlock()
	byKey[handle] = entry{levels: levels, fetchedAt: time.Now()}
}

// InvalidateHandle drops one product's levels (inventory webhook received).
func InvalidateHandle(handle string) {
	mu.Lock()
	defer mu.Unlock()
	delete(byKey, handle)
}

// Invalidate drops everything (bulk inventory webhook or region table reload).
func Invalidate() {
	mu.Lock()
	defer mu.Unlock()
	byKey = make(map[string]entry)
}
