package report

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresRepository is a PostgreSQL implementation of Repository.
type PostgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository creates a new PostgreSQL report repository.
func NewPostgresRepository(pool *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

const reportColumns = `
	id, status,
	COALESCE(latitude, ''), COALESCE(longitude, ''),
	title, COALESCE(image_url, ''), COALESCE(address, '')
`

// List returns all reports, newest first.
func (r *PostgresRepository) List(ctx context.Context) ([]Report, error) {
	query := `SELECT ` + reportColumns + ` FROM reports ORDER BY id DESC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanReports(rows)
}

// ListByStatus returns reports in the given lifecycle state.
func (r *PostgresRepository) ListByStatus(ctx context.Context, status Status) ([]Report, error) {
	query := `SELECT ` + reportColumns + ` FROM reports WHERE status = $1 ORDER BY id DESC`

	rows, err := r.pool.Query(ctx, query, string(status))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanReports(rows)
}

// Get returns a single report by ID.
func (r *PostgresRepository) Get(ctx context.Context, id int64) (*Report, error) {
	query := `SELECT ` + reportColumns + ` FROM reports WHERE id = $1`

	var report Report
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&report.ID,
		&report.Status,
		&report.Latitude,
		&report.Longitude,
		&report.Title,
		&report.ImageURL,
		&report.Address,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrReportNotFound
		}
		return nil, err
	}

	return &report, nil
}

func scanReports(rows pgx.Rows) ([]Report, error) {
	var reports []Report
	for rows.Next() {
		var report Report
		if err := rows.Scan(
			&report.ID,
			&report.Status,
			&report.Latitude,
			&report.Longitude,
			&report.Title,
			&report.ImageURL,
			&report.Address,
		); err != nil {
			return nil, err
		}
		reports = append(reports, report)
	}
	return reports, rows.Err()
}
