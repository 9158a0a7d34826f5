package handlers

import (
	"fmt"
	"kakeibo-server/src/models"
	"strings"
	"time"
)

// monthRange converts a "YYYY-MM" month into inclusive day bounds. "all" or
// empty means unbounded.
func monthRange(month string) (from, to *time.Time, err error) {
	if month == "" || month == "all" {
		return nil, nil, nil
	}
	start, err := time.Parse("2006-01", month)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid month %q", month)
	}
	end := start.AddDate(0, 1, -1)
	return &start, &end, nil
}

// filterBySearch keeps transactions whose category label or note contains the
// term, case-insensitively. An empty term keeps everything.
func filterBySearch(transactions []models.Transaction, term string) []models.Transaction {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return transactions
	}
	var out []models.Transaction
	for _, t := range transactions {
		if strings.Contains(strings.ToLower(t.CategoryLabel), term) {
			out = append(out, t)
			continue
		}
		if t.Note != nil && strings.Contains(strings.ToLower(*t.Note), term) {
			out = append(out, t)
		}
	}
	return out
}
