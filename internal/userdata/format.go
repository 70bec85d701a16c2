package userdata

import (
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// DateLayout renders dates the way the user table shows them,
// e.g. "Mar 15, 2021, 10:23 AM".
const DateLayout = "Jan 2, 2006, 03:04 PM"

// FormatDate renders t with DateLayout.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// nairaPrinter groups digits the way en-NG does.
var nairaPrinter = message.NewPrinter(language.MustParse("en-NG"))

// FormatNaira renders an amount of naira with two decimals, e.g. "₦50,000.00".
func FormatNaira(amount int) string {
	return "₦" + nairaPrinter.Sprintf("%.2f", float64(amount))
}

// FormatIncome renders a monthly income band as "min-max".
func FormatIncome(r IncomeRange) string {
	return FormatNaira(r.Min) + "-" + FormatNaira(r.Max)
}

// TierStars renders a tier as filled and empty stars, e.g. "★★☆".
func TierStars(t Tier) string {
	n := min(max(int(t), 0), 3)
	return strings.Repeat("★", n) + strings.Repeat("☆", 3-n)
}

// ChildrenLabel renders a child count, with zero shown as "None".
func ChildrenLabel(n int) string {
	if n == 0 {
		return "None"
	}
	return strconv.Itoa(n)
}

// HandleOrNA renders an optional social handle.
func HandleOrNA(h *string) string {
	if h == nil || *h == "" {
		return "N/A"
	}
	return *h
}
