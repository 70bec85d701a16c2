package userdata

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"time"
)

const (
	// DefaultCount is the number of users the console materializes.
	DefaultCount = 500
	// DefaultSeed is the seed used when none is configured.
	DefaultSeed = 12345
)

// ErrInvalidCount is returned for a negative record count.
var ErrInvalidCount = errors.New("invalid count: must not be negative")

// defaultStart is the earliest joined date.
var defaultStart = time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)

// Generator produces users from a seed. The reference "now" is fixed when the
// generator is built, so repeated calls with the same seed return identical
// records.
type Generator struct {
	start time.Time
	now   time.Time
	loc   *time.Location
}

// Option configures a Generator.
type Option func(*Generator)

// WithNow fixes the upper bound for sampled dates.
func WithNow(t time.Time) Option {
	return func(g *Generator) { g.now = t }
}

// WithStart sets the lower bound for joined dates.
func WithStart(t time.Time) Option {
	return func(g *Generator) { g.start = t }
}

// WithLocation sets the zone dates are rendered and truncated in.
func WithLocation(loc *time.Location) Option {
	return func(g *Generator) {
		if loc != nil {
			g.loc = loc
		}
	}
}

// New creates a generator anchored at the current minute.
func New(opts ...Option) *Generator {
	g := &Generator{
		start: defaultStart,
		now:   time.Now().Truncate(time.Minute),
		loc:   time.UTC,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Now returns the generator's reference instant.
func (g *Generator) Now() time.Time {
	return g.now
}

// Generate returns count users derived from seed. A count of zero yields an
// empty slice; a negative count is rejected with ErrInvalidCount.
func (g *Generator) Generate(count int, seed int64) ([]User, error) {
	if count < 0 {
		return nil, fmt.Errorf("generate %d users: %w", count, ErrInvalidCount)
	}

	r := newRNG(seed)
	users := make([]User, 0, count)
	for i := range count {
		users = append(users, g.user(r, i))
	}
	return users, nil
}

// user draws a single record. The statement order below is the draw order;
// reordering any two draws changes every subsequent record.
func (g *Generator) user(r *rng, i int) User {
	first := pick(r, firstNames)
	last := pick(r, lastNames)
	org := pick(r, organizations)
	fullName := first + " " + last
	email := strings.ToLower(first) + "@" + pick(r, emailDomains)
	phone := phoneNumber(r)
	bvn := digits(r, 10)
	account := digits(r, 10)
	bank := pick(r, banks)
	createdAt := g.between(r, g.start)
	status := pick(r, Statuses)
	tier := pick(r, tiers)
	gender := pick(r, genders)
	marital := pick(r, maritalStatuses)
	education := pick(r, educationLevels)
	employment := pick(r, employmentStatuses)
	sector := pick(r, sectors)
	relationship := pick(r, relationships)
	residence := pick(r, residences)

	gFirst := pick(r, firstNames)
	gLast := pick(r, lastNames)
	gEmail := strings.ToLower(gFirst) + "@" + pick(r, emailDomains)
	gPhone := phoneNumber(r)

	balance := int(r.intn(1000000)) + 50000
	children := int(r.intn(5))
	duration := fmt.Sprintf("%d years", r.intn(10)+1)
	incomeMin := int(r.intn(200000)) + 50000
	incomeMax := int(r.intn(500000)) + 200000
	repayment := int(r.intn(100000)) + 10000

	twitter := "@" + socialHandle(r, first, last)
	instagram := "@" + socialHandle(r, first, last)
	facebook := fullName
	linkedin := fullName

	updatedAt := g.between(r, createdAt)
	var lastLogin *time.Time
	if r.next() > 0.3 {
		t := g.between(r, createdAt)
		lastLogin = &t
	}
	emailVerified := r.next() > 0.1
	phoneVerified := r.next() > 0.15
	bvnVerified := r.next() > 0.2

	return User{
		ID:             fmt.Sprintf("LSQF%09d", i),
		Organization:   org,
		Username:       fullName,
		Email:          email,
		Phone:          phone,
		DateJoined:     FormatDate(createdAt),
		Status:         status,
		Tier:           tier,
		AccountBalance: balance,
		BankAccount:    account,
		BankName:       bank,
		Personal: PersonalInfo{
			FullName:      fullName,
			Phone:         phone,
			Email:         email,
			BVN:           bvn,
			Gender:        gender,
			MaritalStatus: marital,
			Children:      children,
			Residence:     residence,
		},
		Employment: Employment{
			Education:     education,
			Status:        employment,
			Sector:        sector,
			Duration:      duration,
			OfficeEmail:   strings.ToLower(first) + "@" + strings.ToLower(org) + ".com",
			MonthlyIncome: IncomeRange{Min: incomeMin, Max: incomeMax},
			LoanRepayment: repayment,
		},
		Socials: Socials{
			Twitter:   &twitter,
			Facebook:  &facebook,
			Instagram: &instagram,
			LinkedIn:  &linkedin,
		},
		Guarantor: Guarantor{
			FullName:     gFirst + " " + gLast,
			Phone:        gPhone,
			Email:        gEmail,
			Relationship: relationship,
		},
		CreatedAt:     createdAt,
		UpdatedAt:     updatedAt,
		LastLogin:     lastLogin,
		EmailVerified: emailVerified,
		PhoneVerified: phoneVerified,
		BVNVerified:   bvnVerified,
	}
}

// between draws an instant in [from, now] at minute precision. Truncation
// never moves the result below a minute-aligned from.
func (g *Generator) between(r *rng, from time.Time) time.Time {
	span := g.now.Sub(from).Milliseconds()
	if span < 0 {
		span = 0
	}
	offset := int64(math.Floor(r.next() * float64(span)))
	t := from.Add(time.Duration(offset) * time.Millisecond).In(g.loc)
	return t.Truncate(time.Minute)
}

// phoneNumber returns an 11-digit Nigerian mobile number.
func phoneNumber(r *rng) string {
	prefix := pick(r, phonePrefixes)
	return prefix + digits(r, 8)
}

// digits returns an n-digit zero-padded decimal string.
func digits(r *rng, n int) string {
	limit := int64(math.Pow10(n))
	return fmt.Sprintf("%0*d", n, r.intn(limit))
}

// socialHandle returns first_last on heads, otherwise a stock handle.
func socialHandle(r *rng, first, last string) string {
	if r.next() > 0.5 {
		return strings.ToLower(first) + "_" + strings.ToLower(last)
	}
	return pick(r, socialHandles)
}
