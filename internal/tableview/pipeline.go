// Package tableview derives a displayed page of employee rows from the raw
// row set and view state. The whole pipeline is pure: the same inputs always
// produce the same page, so it can be unit tested without any rendering.
package tableview

import (
	"math"
	"sort"
	"strings"

	"employee-records/internal/entities"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// SortDir is the three-state sort direction bound to a column header.
type SortDir int

const (
	// Unsorted leaves rows in filtered order.
	Unsorted SortDir = iota
	// Ascending sorts smallest first.
	Ascending
	// Descending sorts largest first.
	Descending
)

// SortKey names a sortable employee field.
type SortKey string

const (
	SortByName       SortKey = "name"
	SortByEmail      SortKey = "email"
	SortByDepartment SortKey = "department"
	SortByRole       SortKey = "role"
	SortBySalary     SortKey = "salary"
	SortByStatus     SortKey = "status"
)

// PageSizes is the fixed set of allowed page sizes.
var PageSizes = []int{10, 25, 50, 100}

// ValidPageSize reports whether n is one of the allowed page sizes.
func ValidPageSize(n int) bool {
	for _, s := range PageSizes {
		if s == n {
			return true
		}
	}
	return false
}

// Query is the full derivation input besides the rows themselves.
type Query struct {
	Search   string
	SortKey  SortKey
	SortDir  SortDir
	Page     int // 1-indexed
	PageSize int
}

// Page is the derived output: the visible slice plus totals for the pager.
type Page struct {
	Rows       []entities.Employee
	TotalRows  int
	TotalPages int
}

// ComputePage runs filter, sort and pagination over rows. The input slice is
// never mutated. An out-of-range page yields an empty slice; the page index
// is not auto-corrected.
func ComputePage(rows []entities.Employee, q Query) Page {
	filtered := Filter(rows, q.Search)
	sorted := Sort(filtered, q.SortKey, q.SortDir)
	return Paginate(sorted, q.Page, q.PageSize)
}

// Filter keeps rows whose name, email, department or role contains the
// case-folded search term. An empty term matches everything.
func Filter(rows []entities.Employee, term string) []entities.Employee {
	if term == "" {
		return append([]entities.Employee(nil), rows...)
	}

	needle := strings.ToLower(term)
	out := make([]entities.Employee, 0, len(rows))
	for _, r := range rows {
		if containsFold(r.Name, needle) ||
			containsFold(r.Email, needle) ||
			containsFold(r.Department, needle) ||
			containsFold(r.Role, needle) {
			out = append(out, r)
		}
	}
	return out
}

func containsFold(haystack, loweredNeedle string) bool {
	return strings.Contains(strings.ToLower(haystack), loweredNeedle)
}

// Sort orders rows by key and direction. String keys compare through a
// collator, salary compares numerically, unknown keys compare equal so the
// sort is a stable no-op. Unsorted skips the step entirely.
func Sort(rows []entities.Employee, key SortKey, dir SortDir) []entities.Employee {
	out := append([]entities.Employee(nil), rows...)
	if dir == Unsorted {
		return out
	}

	cmp := comparatorFor(key)
	sort.SliceStable(out, func(i, j int) bool {
		c := cmp(out[i], out[j])
		if dir == Descending {
			c = -c
		}
		return c < 0
	})
	return out
}

func comparatorFor(key SortKey) func(a, b entities.Employee) int {
	switch key {
	case SortBySalary:
		return func(a, b entities.Employee) int {
			switch {
			case a.Salary < b.Salary:
				return -1
			case a.Salary > b.Salary:
				return 1
			}
			return 0
		}
	case SortByName, SortByEmail, SortByDepartment, SortByRole, SortByStatus:
		col := collate.New(language.English)
		field := stringField(key)
		return func(a, b entities.Employee) int {
			return col.CompareString(field(a), field(b))
		}
	default:
		// Unhandled keys are treated as equal; stability keeps the
		// filtered order.
		return func(_, _ entities.Employee) int { return 0 }
	}
}

func stringField(key SortKey) func(entities.Employee) string {
	switch key {
	case SortByEmail:
		return func(e entities.Employee) string { return e.Email }
	case SortByDepartment:
		return func(e entities.Employee) string { return e.Department }
	case SortByRole:
		return func(e entities.Employee) string { return e.Role }
	case SortByStatus:
		return func(e entities.Employee) string { return string(e.Status) }
	default:
		return func(e entities.Employee) string { return e.Name }
	}
}

// Paginate slices the 1-indexed page out of rows, clamped to the available
// range. Out-of-range pages return an empty slice, never an error.
func Paginate(rows []entities.Employee, page, pageSize int) Page {
	total := len(rows)
	if pageSize <= 0 {
		return Page{Rows: []entities.Employee{}, TotalRows: total}
	}

	totalPages := int(math.Ceil(float64(total) / float64(pageSize)))
	start := (page - 1) * pageSize
	if page < 1 || start >= total {
		return Page{Rows: []entities.Employee{}, TotalRows: total, TotalPages: totalPages}
	}

	end := start + pageSize
	if end > total {
		end = total
	}
	return Page{Rows: rows[start:end], TotalRows: total, TotalPages: totalPages}
}
