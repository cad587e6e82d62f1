package services

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/Caught-Online/caught-online-storefront-backend/config"
	"github.com/Caught-Online/caught-online-storefront-backend/models"
)

// ErrUnknownRegion is returned when a caller tries to select a region that
// is not in the static table.
var ErrUnknownRegion = errors.New("unknown region")

// RegionBackend is the persistence behind the region selection. The
// production backend is Redis keyed by visitor ID; tests swap in the
// in-memory one.
type RegionBackend interface {
	Get(ctx context.Context, visitorID string) (string, bool, error)
	Set(ctx context.Context, visitorID, regionID string) error
	Clear(ctx context.Context, visitorID string) error
}

// RegionStore holds the visitor's currently selected delivery region.
// Reads are side-effect-free; SetRegion/ResetRegion are the only mutation
// paths. "No region selected" is an explicit absent value.
type RegionStore struct {
	backend RegionBackend
}

func NewRegionStore(backend RegionBackend) *RegionStore {
	return &RegionStore{backend: backend}
}

// Selected returns the visitor's region, or ok=false when none was ever
// chosen (or the stored ID no longer exists in the table).
func (s *RegionStore) Selected(ctx context.Context, visitorID string) (models.Region, bool, error) {
	id, ok, err := s.backend.Get(ctx, visitorID)
	if err != nil || !ok {
		return models.Region{}, false, err
	}

	region, found := models.RegionByID(id)
	if !found {
		return models.Region{}, false, nil
	}
	return region, true, nil
}

func (s *RegionStore) SetRegion(ctx context.Context, visitorID, regionID string) error {
	if _, ok := models.RegionByID(regionID); !ok {
		return fmt.Errorf("%w: %s", ErrUnknownRegion, regionID)
	}
	return s.backend.Set(ctx, visitorID, regionID)
}

func (s *RegionStore) ResetRegion(ctx context.Context, visitorID string) error {
	return s.backend.Clear(ctx, visitorID)
}

// ── Redis backend ────────────────────────────────────────────────────────────

// regionSelectionTTL keeps returning visitors' choices for a year; the
// frontend cookie has the same lifetime.
const regionSelectionTTL = 365 * 24 * time.Hour

type RedisRegionBackend struct{}

func (RedisRegionBackend) key(visitorID string) string {
	return config.RedisKey("region", visitorID)
}

func (b RedisRegionBackend) Get(ctx context.Context, visitorID string) (string, bool, error) {
	val, err := config.RedisClient.Get(ctx, b.key(visitorID)).Result()
	if err == redis.Nil {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return val, true, nil
}

func (b RedisRegionBackend) Set(ctx context.Context, visitorID, regionID string) error {
	return config.RedisClient.Set(ctx, b.key(visitorID), regionID, regionSelectionTTL).Err()
}

func (b RedisRegionBackend) Clear(ctx context.Context, visitorID string) error {
	return config.RedisClient.Del(ctx, b.key(visitorID)).Err()
}

// ── In-memory backend (tests, local dev without Redis) ──────────────────────

type MemoryRegionBackend struct {
	mu       sync.RWMutex
	selected map[string]string
}

func NewMemoryRegionBackend() *MemoryRegionBackend {
	return &MemoryRegionBackend{selected: make(map[string]string)}
}

func (b *MemoryRegionBackend) Get(_ context.Context, visitorID string) (string, bool, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	id, ok := b.selected[visitorID]
	return id, ok, nil
}

func (b *MemoryRegionBackend) Set(_ context.Context, visitorID, regionID string) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.selected[visitorID] = regionID
	return nil
}

func (b *MemoryRegionBackend) Clear(_ context.Context, visitorID string) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	delete(b.selected, visitorID)
	return nil
}

// ── Global store (wired in main) ────────────────────────────────────────────

var regionStore *RegionStore

func InitRegionStore(backend RegionBackend) {
	regionStore = NewRegionStore(backend)
}

func GetRegionStore() *RegionStore {
	if regionStore == nil {
		// Fallback so tests and tooling work without explicit wiring
		regionStore = NewRegionStore(NewMemoryRegionBackend())
	}
	return regionStore
}
