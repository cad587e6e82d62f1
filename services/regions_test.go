package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Caught-Online/caught-online-storefront-backend/models"
)

func TestResolveRegion(t *testing.T) {
	tests := []struct {
		name       string
		postalCode string
		wantRegion string
		wantOK     bool
	}{
		{"cape town city bowl", "8001", "cape-town", true},
		{"cape town northern suburbs", "7500", "cape-town", true},
		{"cape town lower bound", "7000", "cape-town", true},
		{"cape town upper bound", "8999", "cape-town", true},
		{"just below cape town", "6999", "", false},
		{"johannesburg sandton", "2196", "johannesburg", true},
		{"johannesburg east rand", "1609", "johannesburg", true},
		{"pretoria short code zero-padded", "1", "pretoria", true},
		{"pretoria central", "0002", "pretoria", true},
		{"durban berea", "4001", "durban", true},
		{"durban pinetown", "3610", "durban", true},
		{"no coverage", "9999", "", false},
		{"gap between ranges", "2500", "", false},
		{"non-numeric", "80a1", "", false},
		{"empty", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			region, ok := ResolveRegion(tt.postalCode)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantRegion, region)
		})
	}
}

func TestDeliveryRegionRangesAreDisjoint(t *testing.T) {
	type owner struct {
		regionID string
		r        models.PostalRange
	}
	var all []owner
	for _, region := range models.DeliveryRegions {
		for _, r := range region.PostalRanges {
			require.LessOrEqual(t, r.Min, r.Max, "range inverted in %s", region.ID)
			all = append(all, owner{region.ID, r})
		}
	}

	for i := 0; i < len(all); i++ {
		for j := i + 1; j < len(all); j++ {
			a, b := all[i].r, all[j].r
			overlaps := a.Min <= b.Max && b.Min <= a.Max
			assert.False(t, overlaps,
				"ranges overlap: %s %v and %s %v", all[i].regionID, a, all[j].regionID, b)
		}
	}
}

func TestResolveRegionMatchesRegionTable(t *testing.T) {
	// Every resolved ID must exist in the table
	for _, code := range []string{"8001", "2000", "100", "4050"} {
		id, ok := ResolveRegion(code)
		require.True(t, ok, "expected %s to resolve", code)
		_, found := models.RegionByID(id)
		assert.True(t, found, "resolved region %q not in table", id)
	}
}
