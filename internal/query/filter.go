// Package query filters and paginates a generated user set. Nothing in this
// package mutates the records it is given.
package query

import (
	"errors"
	"fmt"
	"strings"

	"github.com/zarlcorp/zlend/internal/userdata"
)

// ErrUnknownField is returned for a filter field name that does not exist.
var ErrUnknownField = errors.New("unknown filter field")

// Field names a filterable column of the user table.
type Field string

const (
	FieldOrganization Field = "organization"
	FieldUsername     Field = "username"
	FieldEmail        Field = "email"
	FieldDate         Field = "date"
	FieldPhone        Field = "phone"
	FieldStatus       Field = "status"
)

// Fields lists the filterable columns in table order.
var Fields = []Field{
	FieldOrganization, FieldUsername, FieldEmail, FieldPhone, FieldDate, FieldStatus,
}

// ParseField returns the field with the given name.
func ParseField(name string) (Field, error) {
	f := Field(strings.ToLower(strings.TrimSpace(name)))
	for _, known := range Fields {
		if f == known {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownField, name)
}

// Filter holds one pattern per column. An empty pattern places no
// constraint on its column; a zero Filter matches every user.
type Filter struct {
	Organization string `json:"organization,omitempty"`
	Username     string `json:"username,omitempty"`
	Email        string `json:"email,omitempty"`
	Date         string `json:"date,omitempty"`
	Phone        string `json:"phone,omitempty"`
	Status       string `json:"status,omitempty"`
}

// Get returns the pattern for f.
func (flt Filter) Get(f Field) string {
	switch f {
	case FieldOrganization:
		return flt.Organization
	case FieldUsername:
		return flt.Username
	case FieldEmail:
		return flt.Email
	case FieldDate:
		return flt.Date
	case FieldPhone:
		return flt.Phone
	case FieldStatus:
		return flt.Status
	}
	return ""
}

// Set returns a copy of flt with the pattern for f replaced.
func (flt Filter) Set(f Field, pattern string) (Filter, error) {
	switch f {
	case FieldOrganization:
		flt.Organization = pattern
	case FieldUsername:
		flt.Username = pattern
	case FieldEmail:
		flt.Email = pattern
	case FieldDate:
		flt.Date = pattern
	case FieldPhone:
		flt.Phone = pattern
	case FieldStatus:
		flt.Status = pattern
	default:
		return flt, fmt.Errorf("%w: %q", ErrUnknownField, string(f))
	}
	return flt, nil
}

// Empty reports whether no column is constrained.
func (flt Filter) Empty() bool {
	return flt == Filter{}
}

// Matches reports whether u satisfies every non-empty pattern.
func (flt Filter) Matches(u userdata.User) bool {
	return containsFold(u.Organization, flt.Organization) &&
		containsFold(u.Username, flt.Username) &&
		containsFold(u.Email, flt.Email) &&
		containsFold(u.DateJoined, flt.Date) &&
		strings.Contains(u.Phone, flt.Phone) &&
		(flt.Status == "" || string(u.Status) == flt.Status)
}

// containsFold is a case-insensitive substring test; an empty pattern
// always matches.
func containsFold(s, pattern string) bool {
	if pattern == "" {
		return true
	}
	return strings.Contains(strings.ToLower(s), strings.ToLower(pattern))
}
