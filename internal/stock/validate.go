package stock

import (
	"strings"

	"github.com/shopspring/decimal"
)

// normalizeProduct checks the mutable product fields and returns the name
// with surrounding whitespace removed.
func normalizeProduct(name string, quantity int, unitCost decimal.Decimal) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", validationError("name is required")
	}
	if quantity <= 0 {
		return "", validationError("quantity must be a positive integer, got %d", quantity)
	}
	if !unitCost.IsPositive() {
		return "", validationError("unit cost must be positive, got %s", unitCost)
	}
	return name, nil
}
