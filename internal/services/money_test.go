package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"medibill-api/internal/services"
)

func TestToCents(t *testing.T) {
	tests := []struct {
		name   string
		amount float64
		want   int64
	}{
		{name: "whole amount", amount: 100, want: 10000},
		{name: "two decimals", amount: 136.25, want: 13625},
		{name: "half cent rounds up", amount: 0.125, want: 13},
		{name: "just below half cent rounds down", amount: 0.124, want: 12},
		{name: "zero", amount: 0, want: 0},
		{name: "float representation noise", amount: 19.99, want: 1999},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, services.ToCents(tt.amount))
		})
	}
}

func TestPercentOf(t *testing.T) {
	tests := []struct {
		name    string
		amount  int64
		percent float64
		want    int64
	}{
		{name: "ten percent", amount: 25000, percent: 10, want: 2500},
		{name: "five percent", amount: 22500, percent: 5, want: 1125},
		{name: "zero percent", amount: 25000, percent: 0, want: 0},
		{name: "hundred percent", amount: 25000, percent: 100, want: 25000},
		{name: "half cent ties round up", amount: 25, percent: 50, want: 13},
		{name: "sub half cent rounds down", amount: 101, percent: 0.4, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, services.PercentOf(tt.amount, tt.percent))
		})
	}
}

func TestFromCents(t *testing.T) {
	assert.Equal(t, 236.25, services.FromCents(23625))
	assert.Equal(t, 0.0, services.FromCents(0))
	assert.Equal(t, 0.01, services.FromCents(1))
}
