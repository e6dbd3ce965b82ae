package persistence

import (
	"strings"
)

// ValidateSortOrder normalizes the direction to ASC or DESC, defaulting to DESC
func ValidateSortOrder(orderDir string) string {
	if strings.ToUpper(strings.TrimSpace(orderDir)) == "ASC" {
		return "ASC"
	}
	return "DESC"
}

// ValidateSortField maps a requested sort key to a column through the
// whitelist, returning defaultColumn for empty or unknown keys.
func ValidateSortField(sortField string, allowed map[string]string, defaultColumn string) string {
	if column, ok := allowed[strings.TrimSpace(sortField)]; ok {
		return column
	}
	return defaultColumn
}

// ProductSortFields maps API sort keys to product columns
var ProductSortFields = map[string]string{
	"created_at": "created_at",
	"updated_at": "updated_at",
	"name":       "name",
	"sku":        "sku",
	"price":      "price_amount",
	"status":     "status",
}
