package services

import (
	"context"
	"errors"
	"sync"

	inventory_cache "github.com/Caught-Online/caught-online-storefront-backend/cache"
	"github.com/Caught-Online/caught-online-storefront-backend/models"
)

// ErrSuperseded means a newer inventory check for the same handle was issued
// while this one was in flight; the stale result must be discarded, not
// cached and not shown.
var ErrSuperseded = errors.New("inventory check superseded")

// InventoryService resolves product availability per delivery region. It
// reads the first variant's per-location levels from the platform, resolves
// a region to its fulfilment location, and reduces to an available/quantity
// pair. Concurrent checks for different handles are independent; per handle,
// a monotonically increasing token drops responses that were overtaken.
type InventoryService struct {
	catalog CatalogClient

	mu     sync.Mutex
	tokens map[string]uint64
}

var inventoryService *InventoryService

func InitInventoryService(catalog CatalogClient) {
	inventoryService = NewInventoryService(catalog)
}

func GetInventoryService() *InventoryService {
	if inventoryService == nil {
		inventoryService = NewInventoryService(GetCatalogClient())
	}
	return inventoryService
}

func NewInventoryService(catalog CatalogClient) *InventoryService {
	return &InventoryService{
		catalog: catalog,
		tokens:  make(map[string]uint64),
	}
}

// begin registers a new in-flight check for handle and returns its token.
func (s *InventoryService) begin(handle string) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tokens[handle]++
	return s.tokens[handle]
}

// current reports whether token is still the newest check for handle.
func (s *InventoryService) current(handle string, token uint64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tokens[handle] == token
}

// CheckInventory answers "can this region buy this product right now".
//
// Absence — unknown handle, variant without stock data, no level at the
// region's location — is a valid negative answer: {available:false,
// quantity:0} with a nil error. Only an upstream failure is an error, so the
// caller can show "couldn't check" instead of "out of stock".
func (s *InventoryService) CheckInventory(ctx context.Context, handle, regionOrLocationID string) (models.ProductInventoryStatus, error) {
	status := models.ProductInventoryStatus{Handle: handle}

	token := s.begin(handle)

	levels, ok := inventory_cache.Get(handle)
	if !ok {
		var err error
		levels, err = s.catalog.InventoryLevels(ctx, handle)
		if err != nil {
			return status, err
		}
		if !s.current(handle, token) {
			return status, ErrSuperseded
		}
		inventory_cache.Set(handle, levels)
	}

	locationID := resolveLocationID(regionOrLocationID)

	status.Locations = make(map[string]models.InventoryLevel, len(levels))
	for _, level := range levels {
		status.Locations[level.LocationID] = level
		if level.LocationID == locationID {
			status.Available = level.Available
			status.Quantity = level.Quantity
		}
	}
	return status, nil
}

// ListInventory returns the per-location breakdown for every product in the
// store, with the top-level pair reflecting the given region (or the
// platform-wide default when regionOrLocationID is empty).
func (s *InventoryService) ListInventory(ctx context.Context, regionOrLocationID string) ([]models.ProductInventoryStatus, error) {
	products, err := s.catalog.Products(ctx, 100)
	if err != nil {
		return nil, err
	}

	statuses := make([]models.ProductInventoryStatus, 0, len(products))
	for _, p := range products {
		status, err := s.CheckInventory(ctx, p.Handle, regionOrLocationID)
		if err != nil {
			if errors.Is(err, ErrSuperseded) {
				continue
			}
			return nil, err
		}
		if regionOrLocationID == "" {
			// Platform-wide default: available anywhere.
			for _, level := range status.Locations {
				if level.Available {
					status.Available = true
					status.Quantity += level.Quantity
				}
			}
		}
		statuses = append(statuses, status)
	}
	return statuses, nil
}

// resolveLocationID accepts either a region ID from the static table or a
// raw platform location ID.
func resolveLocationID(regionOrLocationID string) string {
	if region, ok := models.RegionByID(regionOrLocationID); ok {
		return region.LocationID
	}
	return regionOrLocationID
}
