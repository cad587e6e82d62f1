package services

import (
	"strconv"
	"strings"

	"github.com/Caught-Online/caught-online-storefront-backend/models"
)

// ResolveRegion maps a raw postal code to a delivery region ID.
//
// The code is zero-padded left to 4 characters and parsed as an unsigned
// integer; anything non-numeric means no delivery, not an error. Regions are
// walked in table order and each inclusive range is tested; ranges are
// disjoint across regions so the first hit is the only hit, but the table is
// not assumed sorted.
func ResolveRegion(postalCode string) (string, bool) {
	padded := postalCode
	if len(padded) < 4 {
		padded = strings.Repeat("0", 4-len(padded)) + padded
	}

	code, err := strconv.ParseUint(padded, 10, 32)
	if err != nil {
		return "", false
	}

	for _, region := range models.DeliveryRegions {
		for _, r := range region.PostalRanges {
			if int(code) >= r.Min && int(code) <= r.Max {
				return region.ID, true
			}
		}
	}

	return "", false
}
