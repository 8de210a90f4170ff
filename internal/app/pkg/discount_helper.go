package pkg

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// Discount labels are free text ("20%", "$10", "Free Shipping"). The
// stored string is display-authoritative, so classification always
// re-parses it rather than trusting anything derived earlier.

var (
	percentPattern = regexp.MustCompile(`(\d+)%`)
	amountPattern  = regexp.MustCompile(`\$(\d+(?:\.\d+)?)`)
)

type DiscountKind string

const (
	DiscountKindPercent      DiscountKind = "percent"
	DiscountKindAmount       DiscountKind = "amount"
	DiscountKindFreeShipping DiscountKind = "freeShipping"
	DiscountKindUnknown      DiscountKind = "unknown"
)

type ParsedDiscount struct {
	Kind    DiscountKind
	Percent int
	Amount  decimal.Decimal
}

// DiscountPercent extracts the first percentage number from a label.
// Labels without one ("$10", "Free Shipping", "") count as 0.
func DiscountPercent(label string) int {
	match := percentPattern.FindStringSubmatch(label)
	if match == nil {
		return 0
	}
	value, err := strconv.Atoi(match[1])
	if err != nil {
		return 0
	}
	return value
}

// IsFreeShipping reports whether a label advertises free shipping.
func IsFreeShipping(label string) bool {
	return strings.Contains(strings.ToLower(label), "free ship")
}

// ParseDiscount classifies a free-text label. Percent wins over amount
// when both appear ("20% + $5 off").
func ParseDiscount(label string) ParsedDiscount {
	if percent := DiscountPercent(label); percent > 0 {
		return ParsedDiscount{Kind: DiscountKindPercent, Percent: percent}
	}
	if match := amountPattern.FindStringSubmatch(label); match != nil {
		amount, err := decimal.NewFromString(match[1])
		if err == nil {
			return ParsedDiscount{Kind: DiscountKindAmount, Amount: amount}
		}
	}
	if IsFreeShipping(label) {
		return ParsedDiscount{Kind: DiscountKindFreeShipping}
	}
	return ParsedDiscount{Kind: DiscountKindUnknown}
}

// DiscountFromTitle derives a display label from a coupon title, used
// when the admin leaves the discount field blank. Returns "" when the
// title carries no recognizable discount marker.
func DiscountFromTitle(title string) string {
	parsed := ParseDiscount(title)
	switch parsed.Kind {
	case DiscountKindPercent:
		return fmt.Sprintf("%d%%", parsed.Percent)
	case DiscountKindAmount:
		return "$" + parsed.Amount.String()
	case DiscountKindFreeShipping:
		return "Free Shipping"
	default:
		return ""
	}
}
