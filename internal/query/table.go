package query

import "github.com/zarlcorp/zlend/internal/userdata"

// Table is the filter and pagination state of one user listing. It has a
// single writer (the view or request that owns it) and recomputes its page
// synchronously on every change. The shared user slice is only read.
type Table struct {
	users  []userdata.User
	filter Filter
	page   Page
	result Result
}

// NewTable creates a table on page one of the unfiltered users.
func NewTable(users []userdata.User, pageSize int) *Table {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	t := &Table{
		users: users,
		page:  Page{Current: 1, Size: pageSize},
	}
	t.refresh()
	return t
}

// Filter returns the active filter.
func (t *Table) Filter() Filter { return t.filter }

// Page returns the current page position.
func (t *Table) Page() Page { return t.page }

// Result returns the current page of users and derived counts.
func (t *Table) Result() Result { return t.result }

// SetFilter replaces the pattern for one field and returns to page one.
func (t *Table) SetFilter(f Field, pattern string) error {
	flt, err := t.filter.Set(f, pattern)
	if err != nil {
		return err
	}
	t.ApplyFilter(flt)
	return nil
}

// ApplyFilter replaces the whole filter and returns to page one.
func (t *Table) ApplyFilter(flt Filter) {
	t.filter = flt
	t.page.Current = 1
	t.refresh()
}

// ResetFilters clears every pattern and returns to page one.
func (t *Table) ResetFilters() {
	t.ApplyFilter(Filter{})
}

// GoTo moves to page n. Requests outside [1, TotalPages] are ignored and
// reported as false.
func (t *Table) GoTo(n int) bool {
	if n < 1 || n > t.result.TotalPages {
		return false
	}
	t.page.Current = n
	t.refresh()
	return true
}

// Next moves forward one page if there is one.
func (t *Table) Next() bool { return t.GoTo(t.page.Current + 1) }

// Prev moves back one page if there is one.
func (t *Table) Prev() bool { return t.GoTo(t.page.Current - 1) }

// SetPageSize changes the page size and returns to page one. Non-positive
// sizes are ignored.
func (t *Table) SetPageSize(size int) bool {
	if size <= 0 {
		return false
	}
	t.page = Page{Current: 1, Size: size}
	t.refresh()
	return true
}

// CyclePageSize advances to the next entry of PageSizes, wrapping around.
func (t *Table) CyclePageSize() int {
	next := PageSizes[0]
	for i, s := range PageSizes {
		if s == t.page.Size && i+1 < len(PageSizes) {
			next = PageSizes[i+1]
			break
		}
	}
	t.SetPageSize(next)
	return next
}

func (t *Table) refresh() {
	t.result = Run(t.users, t.filter, t.page)
}
