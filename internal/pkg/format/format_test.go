package format

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func ptr(v float64) *float64 { return &v }

func TestCurrency(t *testing.T) {
	cases := []struct {
		name   string
		amount *float64
		want   string
	}{
		{"nil renders zero", nil, "RM 0.00"},
		{"zero", ptr(0), "RM 0.00"},
		{"whole number gets cents", ptr(150), "RM 150.00"},
		{"thousands separator", ptr(1234.5), "RM 1,234.50"},
		{"millions", ptr(2500000), "RM 2,500,000.00"},
		{"rounds to two decimals", ptr(99.999), "RM 100.00"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, Currency(c.amount))
		})
	}
}

func TestHours(t *testing.T) {
	cases := []struct {
		name  string
		hours *float64
		want  string
	}{
		{"nil renders zero", nil, "0.0"},
		{"zero", ptr(0), "0.0"},
		{"whole number", ptr(8), "8.0"},
		{"one decimal kept", ptr(7.5), "7.5"},
		{"no thousands separator", ptr(1234.5), "1234.5"},
		{"ties round to even", ptr(7.25), "7.2"},
		{"rounds up past tie", ptr(7.26), "7.3"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, Hours(c.hours))
		})
	}
}
