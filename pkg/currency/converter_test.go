package currency

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConverter_ToINR(t *testing.T) {
	conv := NewConverter(DefaultUSDToINRRate)

	tests := []struct {
		name string
		usd  float64
		want int
	}{
		{"whole dollars", 150, 12488},
		{"rounds half up", 2, 167},
		{"zero", 0, 0},
		{"fractional", 99.99, 8324},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, conv.ToINR(tt.usd))
		})
	}
}

func TestNewConverter_FallsBackToDefaultRate(t *testing.T) {
	assert.Equal(t, DefaultUSDToINRRate, NewConverter(0).Rate)
	assert.Equal(t, DefaultUSDToINRRate, NewConverter(-3).Rate)
	assert.Equal(t, 83.5, NewConverter(83.5).Rate)
}

func TestFormatINR(t *testing.T) {
	tests := []struct {
		amount int
		want   string
	}{
		{0, "₹0"},
		{999, "₹999"},
		{1000, "₹1,000"},
		{12525, "₹12,525"},
		{123456, "₹1,23,456"},
		{12345678, "₹1,23,45,678"},
		{-500, "-₹500"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatINR(tt.amount))
		})
	}
}

func TestParseUSDFromText(t *testing.T) {
	tests := []struct {
		in   string
		want float64
	}{
		{"$299", 299},
		{"USD 1,299.50", 1299.5},
		{"$299-399", 299},
		{"Free", 0},
		{"", 0},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseUSDFromText(tt.in))
		})
	}
}

func TestConverter_ConvertPriceStringToINR(t *testing.T) {
	conv := NewConverter(83.25)

	assert.Equal(t, "₹8,325", conv.ConvertPriceStringToINR("$100"))
	assert.Equal(t, "Free", conv.ConvertPriceStringToINR("Free"))
}
