package view

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPagesFromTotal(t *testing.T) {
	assert.Equal(t, 3, PagesFromTotal(57, 20))
	assert.Equal(t, 1, PagesFromTotal(20, 20))
	assert.Equal(t, 2, PagesFromTotal(21, 20))
	assert.Equal(t, 1, PagesFromTotal(0, 20))
	assert.Equal(t, 1, PagesFromTotal(5, 0)) // degenerate limit
	assert.Equal(t, 1, PagesFromTotal(-1, 20))
}
