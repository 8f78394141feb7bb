package report

import "context"

// Repository reads reports from the store owned by the web application.
type Repository interface {
	// List returns all reports, newest first.
	List(ctx context.Context) ([]Report, error)

	// ListByStatus returns reports in the given lifecycle state.
	ListByStatus(ctx context.Context, status Status) ([]Report, error)

	// Get returns a single report by ID.
	Get(ctx context.Context, id int64) (*Report, error)
}
