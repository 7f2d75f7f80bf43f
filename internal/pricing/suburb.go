package pricing

import (
	"strings"

	"github.com/listingspend/backend/internal/models"
	"github.com/ryanuber/go-glob"
)

// MatchSuburb finds the suburb a property address belongs to, nil when no
// suburb matches. Matching is case insensitive.
//
// A suburb matches when its name occurs in the address. Suburbs with a glob
// pattern are consulted afterwards, so an explicit pattern never shadows a
// name match of another suburb.
func MatchSuburb(suburbs []models.Suburb, address string) *models.Suburb {
	needle := strings.ToLower(strings.TrimSpace(address))
	if needle == "" {
		return nil
	}

	for i := range suburbs {
		name := strings.ToLower(suburbs[i].Name)
		if name != "" && strings.Contains(needle, name) {
			return &suburbs[i]
		}
	}

	for i := range suburbs {
		if suburbs[i].Match == "" {
			continue
		}

		if glob.Glob(strings.ToLower(suburbs[i].Match), needle) {
			return &suburbs[i]
		}
	}

	return nil
}
