package report

import "context"

// Service composes read-only views over the directory and the event log.
// Pure projections: no side effects, safe to call repeatedly and
// concurrently.
type Service interface {
	// GetTodayFeed returns today's full activity feed, newest first.
	GetTodayFeed(ctx context.Context) ([]FeedEntry, error)

	// GetDailySummary returns one row per directory employee for the date,
	// in directory order.
	GetDailySummary(ctx context.Context, date string) ([]SummaryRow, error)
}
