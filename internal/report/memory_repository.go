package report

import (
	"context"
	"sort"
	"sync"
)

// MemoryRepository is an in-memory implementation of Repository used in
// tests and when no database is configured.
type MemoryRepository struct {
	mu      sync.RWMutex
	reports map[int64]Report
}

// NewMemoryRepository creates an in-memory report repository.
func NewMemoryRepository(seed []Report) *MemoryRepository {
	reports := make(map[int64]Report, len(seed))
	for _, r := range seed {
		reports[r.ID] = r
	}
	return &MemoryRepository{reports: reports}
}

// SeedReports returns a small fixture set around Amravati so a demo
// run without a database still renders a populated map.
func SeedReports() []Report {
	return []Report{
		{ID: 1, Status: StatusCompleted, Latitude: "20.9320", Longitude: "77.7523", Title: "Overflowing bin near Rajkamal Square", Address: "Rajkamal Square, Amravati"},
		{ID: 2, Status: StatusProcessing, Latitude: "20.9458", Longitude: "77.7786", Title: "Construction debris on footpath", Address: "Shegaon Naka, Amravati"},
		{ID: 3, Status: StatusPending, Latitude: "20.9210", Longitude: "77.7661", Title: "Garbage pile behind market", Address: "Rathi Nagar, Amravati"},
		{ID: 4, Status: StatusRejected, Latitude: "20.9552", Longitude: "77.7340", Title: "Duplicate of earlier report", Address: "Camp Road, Amravati"},
		// Legacy report filed before location capture; should never render.
		{ID: 5, Status: StatusPending, Latitude: "0", Longitude: "0", Title: "Old report without location", Address: ""},
	}
}

// List returns all reports, newest first.
func (m *MemoryRepository) List(_ context.Context) ([]Report, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	reports := make([]Report, 0, len(m.reports))
	for _, r := range m.reports {
		reports = append(reports, r)
	}
	sort.Slice(reports, func(i, j int) bool { return reports[i].ID > reports[j].ID })
	return reports, nil
}

// ListByStatus returns reports in the given lifecycle state.
func (m *MemoryRepository) ListByStatus(ctx context.Context, status Status) ([]Report, error) {
	all, err := m.List(ctx)
	if err != nil {
		return nil, err
	}

	var filtered []Report
	for _, r := range all {
		if r.Status == status {
			filtered = append(filtered, r)
		}
	}
	return filtered, nil
}

// Get returns a single report by ID.
func (m *MemoryRepository) Get(_ context.Context, id int64) (*Report, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	r, ok := m.reports[id]
	if !ok {
		return nil, ErrReportNotFound
	}
	return &r, nil
}

// Put inserts or replaces a report. Test helper; the monitoring core
// itself never writes.
func (m *MemoryRepository) Put(r Report) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.reports[r.ID] = r
}
