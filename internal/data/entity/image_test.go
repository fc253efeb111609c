package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeImageType(t *testing.T) {
	assert.Equal(t, "Avatar", NormalizeImageType("Avatar"))
	assert.Equal(t, "Avatar", NormalizeImageType("  Avatar  "))
	assert.Equal(t, DefaultImageGroup, NormalizeImageType(""))
	assert.Equal(t, DefaultImageGroup, NormalizeImageType("   "))
}
