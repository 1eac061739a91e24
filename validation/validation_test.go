package validation_test

import (
	"testing"

	"github.com/fiosdk/fiogo/validation"
	"github.com/stretchr/testify/assert"
)

func TestValidDate(t *testing.T) {
	tests := []struct {
		name string
		date string
		want bool
	}{
		{"regular date", "2024-01-31", true},
		{"calendar-invalid but well-shaped", "9999-99-99", true},
		{"all zeros", "0000-00-00", true},
		{"too short", "2024-1-31", false},
		{"too long", "2024-01-311", false},
		{"empty", "", false},
		{"slash separators", "2024/01/31", false},
		{"dash in digit position", "2024-0--31", false},
		{"letter in digit position", "2O24-01-31", false},
		{"missing second dash", "2024-01131", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, validation.ValidDate(tt.date))
		})
	}
}

func TestValidYear(t *testing.T) {
	tests := []struct {
		name string
		year string
		want bool
	}{
		{"regular year", "2024", true},
		{"all zeros", "0000", true},
		{"all nines", "9999", true},
		{"too short", "202", false},
		{"too long", "20245", false},
		{"empty", "", false},
		{"letter", "2o24", false},
		{"negative", "-202", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, validation.ValidYear(tt.year))
		})
	}
}
