package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseIntDefault(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		fallback int
		want     int
	}{
		{"empty uses default", "", 10, 10},
		{"valid number", "25", 10, 25},
		{"zero is valid", "0", 10, 0},
		{"invalid uses default", "abc", 10, 10},
		{"negative uses default", "-5", 10, 10},
		{"mixed uses default", "12abc", 10, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseIntDefault(tt.value, tt.fallback))
		})
	}
}

func TestSanitizeFileName(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain name untouched", "photo.png", "photo.png"},
		{"spaces and stars replaced", "my photo*.png", "my_photo_.png"},
		{"path traversal stripped", "../../evil name*.png", "evil_name_.png"},
		{"windows separators stripped", `C:\Users\me\pic.jpg`, "pic.jpg"},
		{"unicode replaced", "fotoé.png", "foto_.png"},
		{"hyphen and dot kept", "my-file.v2.png", "my-file.v2.png"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SanitizeFileName(tt.input))
		})
	}
}
