package library

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalculateFee(t *testing.T) {
	tests := []struct {
		days int
		want float64
	}{
		{-30, 0},
		{0, 0},
		{1, 0},
		{14, 0},
		{15, 0.5},
		{21, 3.5},
		{DefaultLoanDays, 3.5},
		{100, 43},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, CalculateFee(tt.days), "days=%d", tt.days)
	}
}

func TestCalculateFee_WithinGracePeriodIsFree(t *testing.T) {
	for days := -GracePeriodDays; days <= GracePeriodDays; days++ {
		assert.Zero(t, CalculateFee(days), "days=%d", days)
	}
	for days := GracePeriodDays + 1; days < 60; days++ {
		assert.Equal(t, float64(days-GracePeriodDays)*DailyLateFee, CalculateFee(days))
	}
}
