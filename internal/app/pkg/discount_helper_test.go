package pkg

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestDiscountPercent(t *testing.T) {
	tests := []struct {
		label string
		want  int
	}{
		{"50% Off Everything", 50},
		{"20%", 20},
		{"Save 15% today, 30% tomorrow", 15},
		{"Free Shipping", 0},
		{"$10 Off", 0},
		{"", 0},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, DiscountPercent(tt.label), "label %q", tt.label)
	}
}

func TestIsFreeShipping(t *testing.T) {
	assert.True(t, IsFreeShipping("Free Shipping"))
	assert.True(t, IsFreeShipping("FREE SHIPPING on orders over $50"))
	assert.True(t, IsFreeShipping("free ship + returns"))
	assert.False(t, IsFreeShipping("20%"))
	assert.False(t, IsFreeShipping(""))
}

func TestParseDiscount(t *testing.T) {
	parsed := ParseDiscount("25% Off Sitewide")
	assert.Equal(t, DiscountKindPercent, parsed.Kind)
	assert.Equal(t, 25, parsed.Percent)

	parsed = ParseDiscount("$10.50 Off First Order")
	assert.Equal(t, DiscountKindAmount, parsed.Kind)
	assert.True(t, parsed.Amount.Equal(decimal.RequireFromString("10.5")))

	// Percent wins when both markers appear
	parsed = ParseDiscount("20% + $5 Off")
	assert.Equal(t, DiscountKindPercent, parsed.Kind)

	parsed = ParseDiscount("Free shipping on everything")
	assert.Equal(t, DiscountKindFreeShipping, parsed.Kind)

	parsed = ParseDiscount("Great deals inside")
	assert.Equal(t, DiscountKindUnknown, parsed.Kind)
}

func TestDiscountFromTitle(t *testing.T) {
	tests := []struct {
		title string
		want  string
	}{
		{"Save 25% sitewide", "25%"},
		{"Get $15 Off Your Order", "$15"},
		{"Free shipping on all orders", "Free Shipping"},
		{"Great deals inside", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, DiscountFromTitle(tt.title), "title %q", tt.title)
	}
}
