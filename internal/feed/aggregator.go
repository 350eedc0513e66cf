package feed

import (
	"fmt"
	"strings"
	"sync"

	"github.com/epeers/datafeed/internal/models"
)

// WarningCategory labels the advisory diagnostics that get batched instead of
// reported one by one.
type WarningCategory int

const (
	WarnNumericalPrecision WarningCategory = iota
	WarnStartDateLimited

	warningCategories
)

// DefaultWarningCap bounds the distinct symbols retained per category.
const DefaultWarningCap = 10

type warningEntry struct {
	sym     models.Symbol
	message string
}

type warningState struct {
	mu      sync.RWMutex
	seen    map[string]struct{}
	entries []warningEntry
}

// WarningAggregator collects per-symbol advisory diagnostics across every
// pipeline a factory builds, one bounded set per category. The first message
// recorded for a symbol wins; later ones for the same symbol are dropped.
//
// The cap is advisory: the size check is not serialized with the insert, so
// concurrent recorders can push a category slightly past the cap, at most by
// the number of callers in flight. Reads take the shared lock and inserts
// stay cheap on the hot path.
type WarningAggregator struct {
	limit      int
	categories [warningCategories]warningState
}

// NewWarningAggregator creates an aggregator retaining up to limit distinct
// symbols per category. A non-positive limit selects DefaultWarningCap.
func NewWarningAggregator(limit int) *WarningAggregator {
	if limit <= 0 {
		limit = DefaultWarningCap
	}
	a := &WarningAggregator{limit: limit}
	for i := range a.categories {
		a.categories[i].seen = make(map[string]struct{})
	}
	return a
}

// Record stores (sym, message) under cat unless the symbol was already
// recorded or the category is full. Safe for concurrent use; never fails.
func (a *WarningAggregator) Record(cat WarningCategory, sym models.Symbol, message string) {
	c := &a.categories[cat]

	c.mu.RLock()
	_, dup := c.seen[sym.ID]
	full := len(c.entries) >= a.limit
	c.mu.RUnlock()
	if dup || full {
		return
	}

	c.mu.Lock()
	if _, ok := c.seen[sym.ID]; !ok {
		c.seen[sym.ID] = struct{}{}
		c.entries = append(c.entries, warningEntry{sym: sym, message: message})
	}
	c.mu.Unlock()
}

// Flush formats everything recorded under cat into a single report, oldest
// first, at most the cap's worth of entries. The report ends with an ellipsis
// when the category filled up. ok is false when nothing was recorded.
// Flush does not clear the category; it is meant to run once, at teardown.
func (a *WarningAggregator) Flush(cat WarningCategory) (report string, ok bool) {
	c := &a.categories[cat]

	c.mu.RLock()
	defer c.mu.RUnlock()

	if len(c.entries) == 0 {
		return "", false
	}

	truncated := len(c.entries) >= a.limit
	entries := c.entries
	if len(entries) > a.limit {
		entries = entries[:a.limit]
	}

	parts := make([]string, 0, len(entries))
	for _, e := range entries {
		parts = append(parts, fmt.Sprintf("%s: %s", e.sym.Ticker, e.message))
	}

	report = cat.prefix() + strings.Join(parts, ", ")
	if truncated {
		report += "..."
	}
	return report, true
}

func (cat WarningCategory) prefix() string {
	switch cat {
	case WarnNumericalPrecision:
		return "price adjustment was limited by numerical precision for: "
	case WarnStartDateLimited:
		return "data start dates were limited for: "
	default:
		return ""
	}
}
