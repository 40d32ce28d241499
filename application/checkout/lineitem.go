package checkout

import (
	"strings"

	"github.com/sirupsen/logrus"

	"checkout_bot/domain/entities"
)

// ParseLineItems parses "<url>:<quantity>" entries, splitting on the last
// colon so the URL scheme never breaks the split. Malformed lines are
// logged and dropped; the rest of the batch continues.
func ParseLineItems(lines []string, log *logrus.Entry) []entities.LineItem {
	items := make([]entities.LineItem, 0, len(lines))

	for _, line := range lines {
		idx := strings.LastIndex(line, ":")
		if idx <= 0 || idx == len(line)-1 {
			log.Warnf("invalid product line format: %s", line)
			continue
		}

		qty, err := NormalizeQuantity(line[idx+1:])
		if err != nil {
			log.Warnf("invalid quantity in line %q: %v", line, err)
			continue
		}

		items = append(items, entities.LineItem{
			URL:      line[:idx],
			Quantity: qty,
		})
	}

	return items
}
