// Package period resolves the reporting period identifier review summaries
// and SLA scores are keyed by.
package period

import (
	"fmt"
	"time"
)

// QuarterID returns the period identifier for t, e.g. "2026-Q3".
func QuarterID(t time.Time) string {
	q := (int(t.Month())-1)/3 + 1
	return fmt.Sprintf("%d-Q%d", t.Year(), q)
}

// Resolve returns override when set, otherwise the quarter containing t.
func Resolve(override string, t time.Time) string {
	if override != "" {
		return override
	}
	return QuarterID(t)
}
