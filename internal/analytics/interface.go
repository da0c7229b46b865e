package analytics

import "context"

// UseCase defines the business logic interface for analytics.
type UseCase interface {
	// Summary aggregates completed events over the requested window.
	Summary(ctx context.Context, input SummaryInput) (Summary, error)

	// Dashboard builds the landing-page snapshot from live data.
	Dashboard(ctx context.Context) (Dashboard, error)
}
