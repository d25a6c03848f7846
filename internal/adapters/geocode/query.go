package geocode

import (
	"fmt"
	"strings"

	"route-evaluation-service/internal/domain"
)

// normalize collapses runs of whitespace so equivalent inputs produce the
// same query and cache key.
func normalize(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// searchText appends the country hint to the place name for disambiguation.
func searchText(placeName, countryHint string) string {
	place := normalize(placeName)
	country := normalize(countryHint)
	if country == "" {
		return place
	}
	return place + ", " + country
}

func unavailable(op string, err error) error {
	return fmt.Errorf("%s: %w: %w", op, domain.ErrServiceUnavailable, err)
}

func notFound(op string) error {
	return fmt.Errorf("%s: %w", op, domain.ErrLocationNotFound)
}
