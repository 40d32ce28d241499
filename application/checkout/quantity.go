package checkout

import (
	"fmt"
	"strconv"
	"strings"

	"checkout_bot/domain/entities"
)

// NormalizeQuantity converts a locale-formatted quantity string ("0,05" or
// "1.5") into a fixed two-decimal form. Comma and dot are both accepted as
// the decimal separator.
func NormalizeQuantity(raw string) (string, error) {
	cleaned := strings.TrimSpace(strings.ReplaceAll(raw, ",", "."))
	qty, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return "", &entities.FormatError{Input: raw}
	}
	return fmt.Sprintf("%.2f", qty), nil
}
