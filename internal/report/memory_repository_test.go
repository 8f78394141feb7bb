package report_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vedantwankhade123/cleancity-sub001/internal/report"
)

func TestMemoryRepository_List(t *testing.T) {
	repo := report.NewMemoryRepository(report.SeedReports())

	reports, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, reports, 5)
	assert.Equal(t, int64(5), reports[0].ID, "newest first")
}

func TestMemoryRepository_ListByStatus(t *testing.T) {
	repo := report.NewMemoryRepository(report.SeedReports())

	pending, err := repo.ListByStatus(context.Background(), report.StatusPending)
	require.NoError(t, err)
	require.Len(t, pending, 2)
	for _, r := range pending {
		assert.Equal(t, report.StatusPending, r.Status)
	}
}

func TestMemoryRepository_Get(t *testing.T) {
	repo := report.NewMemoryRepository(report.SeedReports())

	r, err := repo.Get(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, report.StatusCompleted, r.Status)

	_, err = repo.Get(context.Background(), 404)
	assert.ErrorIs(t, err, report.ErrReportNotFound)
}

func TestReport_Coordinate(t *testing.T) {
	valid := report.Report{Latitude: "19.0", Longitude: "72.8"}
	coord, ok := valid.Coordinate()
	require.True(t, ok)
	assert.Equal(t, 19.0, coord.Latitude)

	legacy := report.Report{Latitude: "0", Longitude: "0"}
	_, ok = legacy.Coordinate()
	assert.False(t, ok)

	missing := report.Report{}
	_, ok = missing.Coordinate()
	assert.False(t, ok)
}
