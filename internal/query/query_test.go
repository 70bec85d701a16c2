package query

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zarlcorp/zlend/internal/userdata"
)

func generate(t *testing.T, count int, seed int64) []userdata.User {
	t.Helper()
	g := userdata.New(userdata.WithNow(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)))
	users, err := g.Generate(count, seed)
	require.NoError(t, err)
	return users
}

func fixtureUsers() []userdata.User {
	return []userdata.User{
		{ID: "LSQF000000000", Organization: "Lendsqr", Username: "Grace Effiom", Email: "grace@gmail.com",
			Phone: "08012345678", DateJoined: "Mar 5, 2021, 02:07 PM", Status: userdata.StatusActive},
		{ID: "LSQF000000001", Organization: "Irorun", Username: "Tosin Dokunmu", Email: "tosin@irorun.com",
			Phone: "07098765432", DateJoined: "Apr 10, 2020, 10:00 AM", Status: userdata.StatusPending},
		{ID: "LSQF000000002", Organization: "Lendstar", Username: "Debby Ogana", Email: "debby@yahoo.com",
			Phone: "09011112222", DateJoined: "Mar 20, 2022, 08:30 AM", Status: userdata.StatusBlacklisted},
	}
}

func ids(users []userdata.User) []string {
	out := make([]string, len(users))
	for i, u := range users {
		out[i] = u.ID
	}
	return out
}

func TestRunIdentityFilter(t *testing.T) {
	users := generate(t, 137, 12345)
	res := Run(users, Filter{}, Page{Current: 1, Size: 10})

	assert.Equal(t, len(users), res.TotalMatching)
	assert.Equal(t, 14, res.TotalPages)
	assert.Equal(t, ids(users[:10]), ids(res.Users))
}

func TestFilterSemantics(t *testing.T) {
	users := fixtureUsers()

	tests := []struct {
		name   string
		filter Filter
		want   []string
	}{
		{"organization case-insensitive", Filter{Organization: "lendsqr"}, []string{"LSQF000000000"}},
		{"organization substring", Filter{Organization: "LEND"}, []string{"LSQF000000000", "LSQF000000002"}},
		{"username", Filter{Username: "ogana"}, []string{"LSQF000000002"}},
		{"email", Filter{Email: "IRORUN.COM"}, []string{"LSQF000000001"}},
		{"date", Filter{Date: "mar"}, []string{"LSQF000000000", "LSQF000000002"}},
		{"date pm", Filter{Date: "pm"}, []string{"LSQF000000000"}},
		{"phone substring", Filter{Phone: "0987"}, []string{"LSQF000000001"}},
		{"status exact", Filter{Status: "Pending"}, []string{"LSQF000000001"}},
		{"status is case-sensitive", Filter{Status: "pending"}, []string{}},
		{"status no partial", Filter{Status: "Pend"}, []string{}},
		{"and combined", Filter{Organization: "lend", Status: "Active"}, []string{"LSQF000000000"}},
		{"and combined no match", Filter{Organization: "irorun", Status: "Active"}, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := Run(users, tt.filter, Page{Current: 1, Size: 10})
			assert.Equal(t, tt.want, ids(res.Users))
			assert.Equal(t, len(tt.want), res.TotalMatching)
		})
	}
}

func TestFilterMonotonic(t *testing.T) {
	users := generate(t, 500, 12345)

	base := Filter{Organization: "a"}
	before := Run(users, base, Page{Current: 1, Size: 10}).TotalMatching

	for _, f := range Fields {
		for _, pattern := range []string{"e", "Active", "08", "202"} {
			narrowed, err := base.Set(f, base.Get(f)+pattern)
			require.NoError(t, err)
			after := Run(users, narrowed, Page{Current: 1, Size: 10}).TotalMatching
			assert.LessOrEqual(t, after, before, "field %s pattern %q", f, pattern)
		}
	}
}

func TestPaginationCoverage(t *testing.T) {
	users := generate(t, 500, 1)

	for _, flt := range []Filter{{}, {Status: "Active"}, {Organization: "k"}} {
		for _, size := range PageSizes {
			first := Run(users, flt, Page{Current: 1, Size: size})
			var all []string
			for p := 1; p <= first.TotalPages; p++ {
				res := Run(users, flt, Page{Current: p, Size: size})
				assert.LessOrEqual(t, len(res.Users), size)
				all = append(all, ids(res.Users)...)
			}
			assert.Equal(t, ids(Apply(users, flt)), all, "filter %+v size %d", flt, size)
		}
	}
}

func TestRunZeroMatches(t *testing.T) {
	res := Run(fixtureUsers(), Filter{Username: "nobody"}, Page{Current: 1, Size: 10})
	assert.Empty(t, res.Users)
	assert.NotNil(t, res.Users)
	assert.Equal(t, 0, res.TotalMatching)
	assert.Equal(t, 1, res.TotalPages)
}

func TestRunPageOutOfRange(t *testing.T) {
	users := fixtureUsers()
	assert.Empty(t, Run(users, Filter{}, Page{Current: 0, Size: 2}).Users)
	assert.Empty(t, Run(users, Filter{}, Page{Current: 3, Size: 2}).Users)
	assert.Len(t, Run(users, Filter{}, Page{Current: 2, Size: 2}).Users, 1)
}

func TestRunDefaultSize(t *testing.T) {
	users := generate(t, 25, 3)
	res := Run(users, Filter{}, Page{Current: 1})
	assert.Len(t, res.Users, DefaultPageSize)
	assert.Equal(t, 3, res.TotalPages)
}

func TestRunDoesNotMutate(t *testing.T) {
	users := generate(t, 30, 8)
	snapshot := append([]userdata.User(nil), users...)

	res := Run(users, Filter{Status: "Active"}, Page{Current: 1, Size: 5})
	if len(res.Users) > 0 {
		res.Users[0].Organization = "changed"
	}
	assert.Equal(t, snapshot, users)
}

func TestRunSeed42Active(t *testing.T) {
	users := generate(t, 3, 42)
	res := Run(users, Filter{Status: "Active"}, Page{Current: 1, Size: 2})

	want := 0
	for _, u := range users {
		if u.Status == userdata.StatusActive {
			want++
		}
	}
	assert.LessOrEqual(t, len(res.Users), 2)
	for _, u := range res.Users {
		assert.Equal(t, userdata.StatusActive, u.Status)
	}
	assert.Equal(t, want, res.TotalMatching)
	// seed 42 draws Pending, Blacklisted, Inactive
	assert.Equal(t, 0, res.TotalMatching)
	assert.Equal(t, 1, res.TotalPages)
}

func TestTotalPages(t *testing.T) {
	tests := []struct {
		n, size, want int
	}{
		{0, 10, 1},
		{1, 10, 1},
		{10, 10, 1},
		{11, 10, 2},
		{500, 20, 25},
		{5, 0, 1},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, TotalPages(tt.n, tt.size), "n=%d size=%d", tt.n, tt.size)
	}
}

func TestParseField(t *testing.T) {
	for _, f := range Fields {
		got, err := ParseField(string(f))
		require.NoError(t, err)
		assert.Equal(t, f, got)
	}

	got, err := ParseField(" Status ")
	require.NoError(t, err)
	assert.Equal(t, FieldStatus, got)

	_, err = ParseField("bvn")
	assert.ErrorIs(t, err, ErrUnknownField)
}

func TestFilterSetGet(t *testing.T) {
	var flt Filter
	assert.True(t, flt.Empty())

	for _, f := range Fields {
		var err error
		flt, err = flt.Set(f, string(f)+"-x")
		require.NoError(t, err)
	}
	for _, f := range Fields {
		assert.Equal(t, string(f)+"-x", flt.Get(f))
	}
	assert.False(t, flt.Empty())

	_, err := flt.Set(Field("nope"), "x")
	assert.ErrorIs(t, err, ErrUnknownField)
}
