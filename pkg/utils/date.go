package utils

import "time"

// ParseISODate validates an ISO YYYY-MM-DD string and returns it normalized.
// The empty string is valid and returns nil (no bound).
func ParseISODate(dateStr string) (*string, error) {
	if dateStr == "" {
		return nil, nil
	}

	parsed, err := time.Parse(time.DateOnly, dateStr)
	if err != nil {
		return nil, err
	}

	normalized := parsed.Format(time.DateOnly)
	return &normalized, nil
}
