package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalculateTotalPages(t *testing.T) {
	tests := []struct {
		name    string
		total   int64
		perPage int
		want    int
	}{
		{"exact division", 20, 10, 2},
		{"partial last page", 21, 10, 3},
		{"single item", 1, 10, 1},
		{"empty", 0, 10, 0},
		{"zero per page", 10, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CalculateTotalPages(tt.total, tt.perPage))
		})
	}
}
