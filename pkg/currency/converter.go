package currency

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

// DefaultUSDToINRRate is used when no rate is configured.
const DefaultUSDToINRRate = 83.25

var usdAmountPattern = regexp.MustCompile(`\$?(\d+(?:,\d{3})*(?:\.\d{1,2})?)`)

// Converter turns authoritative USD amounts into derived INR amounts.
type Converter struct {
	Rate float64
}

func NewConverter(rate float64) Converter {
	if rate <= 0 {
		rate = DefaultUSDToINRRate
	}
	return Converter{Rate: rate}
}

// ToINR returns round(usd * rate).
func (c Converter) ToINR(usd float64) int {
	return int(math.Round(usd * c.Rate))
}

func (c Converter) FormatUSDAsINR(usd float64) string {
	return FormatINR(c.ToINR(usd))
}

// ConvertPriceStringToINR converts strings such as "$299" or "USD 1,299.50".
// The input is returned untouched when it carries no amount.
func (c Converter) ConvertPriceStringToINR(price string) string {
	usd := ParseUSDFromText(price)
	if usd == 0 {
		return price
	}
	return c.FormatUSDAsINR(usd)
}

// ParseUSDFromText extracts the first price-like number from s, or 0.
func ParseUSDFromText(s string) float64 {
	match := usdAmountPattern.FindStringSubmatch(s)
	if match == nil {
		return 0
	}
	v, err := strconv.ParseFloat(strings.ReplaceAll(match[1], ",", ""), 64)
	if err != nil {
		return 0
	}
	return v
}

// FormatINR renders amount with the rupee sign and Indian digit grouping,
// e.g. 12345678 -> "₹1,23,45,678".
func FormatINR(amount int) string {
	negative := amount < 0
	if negative {
		amount = -amount
	}

	result := "₹" + groupIndian(strconv.Itoa(amount))
	if negative {
		result = "-" + result
	}
	return result
}

// groupIndian separates the last three digits, then every two digits before them.
func groupIndian(digits string) string {
	n := len(digits)
	if n <= 3 {
		return digits
	}

	head, tail := digits[:n-3], digits[n-3:]
	var b strings.Builder
	lead := len(head) % 2
	if lead == 1 {
		b.WriteString(head[:1])
	}
	for i := lead; i < len(head); i += 2 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(head[i : i+2])
	}
	b.WriteByte(',')
	b.WriteString(tail)
	return b.String()
}
