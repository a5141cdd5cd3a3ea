package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeList(t *testing.T) {
	assert.Equal(t, []string{"Go", "MongoDB", "Redis"},
		NormalizeList([]string{"Go", "MongoDB", "Redis"}))

	assert.Equal(t, []string{"Go", "MongoDB", "Redis"},
		NormalizeList([]string{"Go, MongoDB,Redis"}))

	assert.Equal(t, []string{"Go", "MongoDB"},
		NormalizeList([]string{"Go\nMongoDB"}))

	assert.Equal(t, []string{"Go", "MongoDB"},
		NormalizeList([]string{" Go ", "", "  ", "MongoDB"}))

	assert.Equal(t, []string{}, NormalizeList(nil))
	assert.Equal(t, []string{}, NormalizeList([]string{",,,"}))
}
