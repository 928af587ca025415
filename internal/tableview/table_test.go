package tableview

import (
	"context"
	"errors"
	"testing"

	"employee-records/internal/entities"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// fakeSource is an in-memory stand-in for the REST client.
type fakeSource struct {
	rows      []entities.Employee
	listErr   error
	deleteErr error
	fetches   int
	deleted   []string
}

func (f *fakeSource) ListEmployees(_ context.Context) ([]entities.Employee, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	f.fetches++
	return append([]entities.Employee(nil), f.rows...), nil
}

func (f *fakeSource) DeleteEmployee(_ context.Context, id string) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	f.deleted = append(f.deleted, id)
	for i, r := range f.rows {
		if r.ID == id {
			f.rows = append(f.rows[:i], f.rows[i+1:]...)
			return nil
		}
	}
	return entities.ErrEmployeeNotFound
}

func newTestTable(src Source, mode SelectionMode) *Table {
	return NewTable(zap.NewNop().Sugar(), src, mode)
}

func TestTableFetchesOnce(t *testing.T) {
	src := &fakeSource{rows: sampleRows()}
	tbl := newTestTable(src, SelectionNone)

	_, err := tbl.Page(context.Background())
	require.NoError(t, err)
	_, err = tbl.Page(context.Background())
	require.NoError(t, err)

	require.Equal(t, 1, src.fetches)
}

func TestTableSortCycleOnSalary(t *testing.T) {
	src := &fakeSource{rows: sampleRows()}
	tbl := newTestTable(src, SelectionNone)
	ctx := context.Background()

	// First activation: ascending.
	tbl.CycleSort(SortBySalary)
	page, err := tbl.Page(ctx)
	require.NoError(t, err)
	require.Equal(t, []string{"e2", "e4", "e3", "e5", "e1"}, ids(page.Rows))

	// Second: descending.
	tbl.CycleSort(SortBySalary)
	page, err = tbl.Page(ctx)
	require.NoError(t, err)
	require.Equal(t, []string{"e1", "e3", "e5", "e4", "e2"}, ids(page.Rows))

	// Third: unsorted restores the original filtered order.
	tbl.CycleSort(SortBySalary)
	page, err = tbl.Page(ctx)
	require.NoError(t, err)
	require.Equal(t, []string{"e1", "e2", "e3", "e4", "e5"}, ids(page.Rows))
}

func TestTableSwitchingColumnResetsToAscending(t *testing.T) {
	src := &fakeSource{rows: sampleRows()}
	tbl := newTestTable(src, SelectionNone)

	tbl.CycleSort(SortBySalary)
	tbl.CycleSort(SortBySalary) // salary descending

	tbl.CycleSort(SortByName)
	q := tbl.Query()
	require.Equal(t, SortByName, q.SortKey)
	require.Equal(t, Ascending, q.SortDir)
}

func TestTableSearchScenario(t *testing.T) {
	src := &fakeSource{rows: sampleRows()}
	tbl := newTestTable(src, SelectionNone)

	tbl.SetSearch("ENGINEERING")
	page, err := tbl.Page(context.Background())
	require.NoError(t, err)
	require.Equal(t, []string{"e1"}, ids(page.Rows))
}

func TestTableOutOfRangePageScenario(t *testing.T) {
	src := &fakeSource{rows: sampleRows()} // 5 rows
	tbl := newTestTable(src, SelectionNone)

	require.NoError(t, tbl.SetPage(2))
	page, err := tbl.Page(context.Background())
	require.NoError(t, err)
	require.Empty(t, page.Rows)
	require.Equal(t, 5, page.TotalRows)
}

func TestTablePageSizeValidation(t *testing.T) {
	src := &fakeSource{rows: sampleRows()}
	tbl := newTestTable(src, SelectionNone)

	require.NoError(t, tbl.SetPageSize(25))
	err := tbl.SetPageSize(7)
	require.ErrorIs(t, err, entities.ErrInvalidArgument)
	require.Equal(t, 25, tbl.Query().PageSize)

	err = tbl.SetPage(0)
	require.ErrorIs(t, err, entities.ErrInvalidArgument)
}

func TestTableDeleteRefetchesAndCleansSelection(t *testing.T) {
	src := &fakeSource{rows: sampleRows()}
	tbl := newTestTable(src, SelectionMultiple)
	ctx := context.Background()

	_, err := tbl.Page(ctx)
	require.NoError(t, err)
	tbl.Selection().Toggle("e2")
	tbl.Selection().Toggle("e3")

	require.NoError(t, tbl.Delete(ctx, "e2"))
	require.False(t, tbl.Selection().Has("e2"))
	require.True(t, tbl.Selection().Has("e3"))

	page, err := tbl.Page(ctx)
	require.NoError(t, err)
	require.NotContains(t, ids(page.Rows), "e2")
}

func TestTableDeleteNotFoundStillCleansUp(t *testing.T) {
	src := &fakeSource{rows: sampleRows()}
	tbl := newTestTable(src, SelectionMultiple)
	ctx := context.Background()

	_, err := tbl.Page(ctx)
	require.NoError(t, err)
	tbl.Selection().Toggle("ghost")

	// Another client already deleted the row: the outcome surfaces as
	// not-found, the selection is still cleaned and the rows refetched.
	err = tbl.Delete(ctx, "ghost")
	require.ErrorIs(t, err, entities.ErrEmployeeNotFound)
	require.False(t, tbl.Selection().Has("ghost"))
}

func TestTableDeleteTransportFailureLeavesRows(t *testing.T) {
	src := &fakeSource{rows: sampleRows()}
	tbl := newTestTable(src, SelectionMultiple)
	ctx := context.Background()

	_, err := tbl.Page(ctx)
	require.NoError(t, err)
	tbl.Selection().Toggle("e1")

	src.deleteErr = errors.New("connection refused")
	err = tbl.Delete(ctx, "e1")
	require.Error(t, err)

	// Cached rows and selection are untouched on transport failure.
	require.True(t, tbl.Selection().Has("e1"))
	page, err := tbl.Page(ctx)
	require.NoError(t, err)
	require.Contains(t, ids(page.Rows), "e1")
}

func TestTableRefreshFailureKeepsCachedRows(t *testing.T) {
	src := &fakeSource{rows: sampleRows()}
	tbl := newTestTable(src, SelectionNone)
	ctx := context.Background()

	_, err := tbl.Page(ctx)
	require.NoError(t, err)

	src.listErr = errors.New("connection refused")
	require.Error(t, tbl.Refresh(ctx))

	page, err := tbl.Page(ctx)
	require.NoError(t, err)
	require.Len(t, page.Rows, 5)
}

func TestTableSelectAllOnPage(t *testing.T) {
	src := &fakeSource{rows: sampleRows()}
	tbl := newTestTable(src, SelectionMultiple)
	ctx := context.Background()

	// Shrink the page below the row count so select-all cannot cover the
	// full filtered set.
	tbl.query.PageSize = 3
	require.NoError(t, tbl.SelectAllOnPage(ctx))
	require.Equal(t, []string{"e1", "e2", "e3"}, tbl.Selection().IDs())

	require.NoError(t, tbl.DeselectAllOnPage(ctx))
	require.Zero(t, tbl.Selection().Len())
}
