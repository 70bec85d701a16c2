package userdata

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatDate(t *testing.T) {
	tm := time.Date(2021, 3, 5, 14, 7, 0, 0, time.UTC)
	assert.Equal(t, "Mar 5, 2021, 02:07 PM", FormatDate(tm))
}

func TestFormatNaira(t *testing.T) {
	tests := []struct {
		amount int
		want   string
	}{
		{0, "₦0.00"},
		{950, "₦950.00"},
		{50000, "₦50,000.00"},
		{1049999, "₦1,049,999.00"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatNaira(tt.amount))
		})
	}
}

func TestFormatIncome(t *testing.T) {
	got := FormatIncome(IncomeRange{Min: 50000, Max: 200000})
	assert.Equal(t, "₦50,000.00-₦200,000.00", got)
}

func TestTierStars(t *testing.T) {
	assert.Equal(t, "★☆☆", TierStars(Tier1))
	assert.Equal(t, "★★★", TierStars(Tier3))
	assert.Equal(t, "☆☆☆", TierStars(0))
}

func TestChildrenLabel(t *testing.T) {
	assert.Equal(t, "None", ChildrenLabel(0))
	assert.Equal(t, "3", ChildrenLabel(3))
}

func TestHandleOrNA(t *testing.T) {
	h := "@grace_effiom"
	empty := ""
	assert.Equal(t, "@grace_effiom", HandleOrNA(&h))
	assert.Equal(t, "N/A", HandleOrNA(&empty))
	assert.Equal(t, "N/A", HandleOrNA(nil))
}
