package aggregate

import (
	"sort"

	"github.com/google/uuid"

	"github.com/timecard-app/timecard/internal/domain"
)

// Table is a per-date × per-column minute grid with row, column and grand
// totals, the shape behind the worker and project reports. Dates are
// ascending (lexicographic equals chronological for ISO dates); columns keep
// the order they were supplied in.
type Table struct {
	Dates      []string
	Columns    []uuid.UUID
	Cells      map[string]map[uuid.UUID]int
	RowTotals  map[string]int
	ColTotals  map[uuid.UUID]int
	GrandTotal int
}

// TableByProject buckets one worker's entries into date rows and project
// columns. Column order follows the supplied project list.
func TableByProject(entries []domain.TimeEntry, projects []domain.ProjectID) Table {
	cols := make([]uuid.UUID, len(projects))
	for i, p := range projects {
		cols[i] = p.UUID
	}
	return buildTable(entries, cols, func(e domain.TimeEntry) uuid.UUID {
		return e.ProjectID.UUID
	})
}

// TableByUser buckets one project's entries into date rows and worker
// columns. Column order follows the supplied user list.
func TableByUser(entries []domain.TimeEntry, users []domain.UserID) Table {
	cols := make([]uuid.UUID, len(users))
	for i, u := range users {
		cols[i] = u.UUID
	}
	return buildTable(entries, cols, func(e domain.TimeEntry) uuid.UUID {
		return e.UserID.UUID
	})
}

func buildTable(entries []domain.TimeEntry, columns []uuid.UUID, columnOf func(domain.TimeEntry) uuid.UUID) Table {
	t := Table{
		Columns:   columns,
		Cells:     make(map[string]map[uuid.UUID]int),
		RowTotals: make(map[string]int),
		ColTotals: make(map[uuid.UUID]int),
	}
	for _, e := range entries {
		col := columnOf(e)
		row, ok := t.Cells[e.Date]
		if !ok {
			row = make(map[uuid.UUID]int)
			t.Cells[e.Date] = row
			t.Dates = append(t.Dates, e.Date)
		}
		row[col] += e.Minutes
		t.RowTotals[e.Date] += e.Minutes
		t.ColTotals[col] += e.Minutes
		t.GrandTotal += e.Minutes
	}
	sort.Strings(t.Dates)
	return t
}
