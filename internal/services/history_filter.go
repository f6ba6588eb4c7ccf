package services

import (
	"context"
	"fmt"
)

// HistoryScope selects which slice of the contact history candidates are
// checked against.
type HistoryScope struct {
	JobTitle   string // non-empty: only rows for this title
	RecentDays int    // positive: only rows within the last N days
}

// GlobalScope matches the entire contact history.
var GlobalScope = HistoryScope{}

const (
	MinRecentDays = 1
	MaxRecentDays = 365
)

type historyRepository interface {
	GetDistinctRecipients(ctx context.Context) ([]string, error)
	GetDistinctRecipientsByJob(ctx context.Context, jobTitle string) ([]string, error)
	GetRecentRecipients(ctx context.Context, days int) ([]string, error)
}

// HistoryFilter removes candidates that were already contacted. It is a pure
// set difference over data fetched from the repository; it never writes.
type HistoryFilter struct {
	history historyRepository
}

func NewHistoryFilter(history historyRepository) *HistoryFilter {
	return &HistoryFilter{history: history}
}

// Filter returns the candidates absent from the scoped history, preserving
// input order, plus the number removed.
func (f *HistoryFilter) Filter(ctx context.Context, candidates []string, scope HistoryScope) ([]string, int, error) {

	contacted, err := f.lookup(ctx, scope)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to fetch contact history: %w", err)
	}

	existing := make(map[string]struct{}, len(contacted))
	for _, email := range contacted {
		existing[email] = struct{}{}
	}

	fresh := make([]string, 0, len(candidates))
	for _, candidate := range candidates {
		if _, found := existing[candidate]; !found {
			fresh = append(fresh, candidate)
		}
	}

	return fresh, len(candidates) - len(fresh), nil
}

func (f *HistoryFilter) lookup(ctx context.Context, scope HistoryScope) ([]string, error) {

	if scope.RecentDays != 0 {
		if scope.RecentDays < MinRecentDays || scope.RecentDays > MaxRecentDays {
			return nil, fmt.Errorf("recent days must be between %d and %d", MinRecentDays, MaxRecentDays)
		}
		return f.history.GetRecentRecipients(ctx, scope.RecentDays)
	}

	if scope.JobTitle != "" {
		return f.history.GetDistinctRecipientsByJob(ctx, scope.JobTitle)
	}

	return f.history.GetDistinctRecipients(ctx)
}
