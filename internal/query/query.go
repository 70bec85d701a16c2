package query

import "github.com/zarlcorp/zlend/internal/userdata"

// DefaultPageSize is the page size a fresh table starts with.
const DefaultPageSize = 10

// PageSizes are the page sizes offered to the operator.
var PageSizes = []int{10, 20, 50, 100}

// Page is a 1-indexed page position and size.
type Page struct {
	Current int `json:"current"`
	Size    int `json:"size"`
}

// Result is one rendered page of a filtered user set.
type Result struct {
	Users         []userdata.User
	TotalMatching int
	// TotalPages is never below one: zero matches render as a single
	// empty page.
	TotalPages int
}

// Run filters users and returns the requested page. A non-positive size
// falls back to DefaultPageSize; a page outside the result yields no users.
func Run(users []userdata.User, flt Filter, p Page) Result {
	matched := Apply(users, flt)
	size := p.Size
	if size <= 0 {
		size = DefaultPageSize
	}

	res := Result{
		TotalMatching: len(matched),
		TotalPages:    TotalPages(len(matched), size),
	}

	start := (p.Current - 1) * size
	if p.Current < 1 || start >= len(matched) {
		res.Users = []userdata.User{}
		return res
	}
	end := min(start+size, len(matched))
	res.Users = matched[start:end:end]
	return res
}

// Apply returns the users matching flt in input order. The
// returned slice never aliases users.
func Apply(users []userdata.User, flt Filter) []userdata.User {
	out := make([]userdata.User, 0, len(users))
	for _, u := range users {
		if flt.Matches(u) {
			out = append(out, u)
		}
	}
	return out
}

// TotalPages returns ceil(n/size), with a floor of one page.
func TotalPages(n, size int) int {
	if size <= 0 {
		size = DefaultPageSize
	}
	pages := (n + size - 1) / size
	if pages < 1 {
		return 1
	}
	return pages
}
