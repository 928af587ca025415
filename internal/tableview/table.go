package tableview

import (
	"context"
	"errors"
	"fmt"

	"employee-records/internal/entities"

	"go.uber.org/zap"
)

// Source is the thin fetch boundary between the view and the record store.
// DeleteEmployee reports an unknown id as entities.ErrEmployeeNotFound.
type Source interface {
	ListEmployees(ctx context.Context) ([]entities.Employee, error)
	DeleteEmployee(ctx context.Context, id string) error
}

// Table owns the view state and the cached raw row set. It models a
// single-threaded, event-driven UI and is not safe for concurrent use.
type Table struct {
	log *zap.SugaredLogger
	src Source

	rows   []entities.Employee
	loaded bool

	query Query
	sel   *Selection
}

// NewTable creates a table over src with defaults: no search, unsorted,
// page 1, the smallest page size, and the given selection mode.
func NewTable(log *zap.SugaredLogger, src Source, mode SelectionMode) *Table {
	return &Table{
		log: log.Named("tableview"),
		src: src,
		query: Query{
			Page:     1,
			PageSize: PageSizes[0],
		},
		sel: NewSelection(mode),
	}
}

// Refresh refetches the raw row set. On failure the cached rows are left
// unchanged so the view never renders partial state.
func (t *Table) Refresh(ctx context.Context) error {
	rows, err := t.src.ListEmployees(ctx)
	if err != nil {
		t.log.Errorw("failed to fetch rows", "error", err)
		return fmt.Errorf("fetch rows: %w", err)
	}
	t.rows = rows
	t.loaded = true
	return nil
}

// Page derives the current page, fetching the row set on first use.
func (t *Table) Page(ctx context.Context) (Page, error) {
	if !t.loaded {
		if err := t.Refresh(ctx); err != nil {
			return Page{}, err
		}
	}
	return ComputePage(t.rows, t.query), nil
}

// Query returns the active view state.
func (t *Table) Query() Query {
	return t.query
}

// Selection exposes the selection tracker.
func (t *Table) Selection() *Selection {
	return t.sel
}

// SetSearch updates the search term. The page index is intentionally not
// auto-corrected; an out-of-range page renders empty.
func (t *Table) SetSearch(term string) {
	t.query.Search = term
}

// CycleSort advances the sort state for a column: unsorted → ascending →
// descending → unsorted. Activating a different column resets to ascending
// on that column.
func (t *Table) CycleSort(key SortKey) {
	if t.query.SortKey != key {
		t.query.SortKey = key
		t.query.SortDir = Ascending
		return
	}
	switch t.query.SortDir {
	case Unsorted:
		t.query.SortDir = Ascending
	case Ascending:
		t.query.SortDir = Descending
	case Descending:
		t.query.SortDir = Unsorted
	}
}

// SetPage moves to the 1-indexed page.
func (t *Table) SetPage(page int) error {
	if page < 1 {
		return fmt.Errorf("%w: page must be positive", entities.ErrInvalidArgument)
	}
	t.query.Page = page
	return nil
}

// SetPageSize switches to one of the fixed page sizes.
func (t *Table) SetPageSize(size int) error {
	if !ValidPageSize(size) {
		return fmt.Errorf("%w: page size %d not allowed", entities.ErrInvalidArgument, size)
	}
	t.query.PageSize = size
	return nil
}

// SelectAllOnPage selects every row on the current page. Rows on other
// pages keep their state.
func (t *Table) SelectAllOnPage(ctx context.Context) error {
	page, err := t.Page(ctx)
	if err != nil {
		return err
	}
	t.sel.SelectPage(rowIDs(page.Rows))
	return nil
}

// DeselectAllOnPage clears the selection for rows on the current page only.
func (t *Table) DeselectAllOnPage(ctx context.Context) error {
	page, err := t.Page(ctx)
	if err != nil {
		return err
	}
	t.sel.DeselectPage(rowIDs(page.Rows))
	return nil
}

// Delete removes a row through the store. The id leaves the selection set
// eagerly, before the refetch completes; the displayed row disappears only
// once the refetch lands. A not-found outcome still triggers the cleanup
// and refetch, since another client may have deleted the row first. On a
// transport failure the cached rows are left unchanged.
func (t *Table) Delete(ctx context.Context, id string) error {
	delErr := t.src.DeleteEmployee(ctx, id)
	if delErr != nil && !errors.Is(delErr, entities.ErrEmployeeNotFound) {
		t.log.Errorw("failed to delete row", "error", delErr, "employee_id", id)
		return fmt.Errorf("delete row: %w", delErr)
	}

	t.sel.Remove(id)
	if err := t.Refresh(ctx); err != nil {
		return err
	}
	return delErr
}

func rowIDs(rows []entities.Employee) []string {
	ids := make([]string, 0, len(rows))
	for _, r := range rows {
		ids = append(ids, r.ID)
	}
	return ids
}
