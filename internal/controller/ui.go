// Package controller renders count results for the user.
package controller

import (
	m "github.com/mouse-blink/gowc/internal/model"
)

// UI defines how per-source rows and the total row are displayed.
// Implementations can use different output methods (wc columns, table, etc).
type UI interface {
	Start() error
	// DisplayCounts shows the counts measured for one source.
	DisplayCounts(source m.Source, counts m.Counts, metrics m.Metrics) error
	// DisplayTotal shows the running totals after all sources were counted.
	DisplayTotal(totals m.Counts, metrics m.Metrics) error
	Close() error
}
