package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewPagination(t *testing.T) {
	p := NewPagination(2, 10, 25)
	assert.Equal(t, 2, p.Page)
	assert.EqualValues(t, 25, p.Total)
	assert.Equal(t, 3, p.TotalPages)

	assert.Equal(t, 1, NewPagination(1, 10, 10).TotalPages)
	assert.Equal(t, 0, NewPagination(1, 10, 0).TotalPages)
}

func TestNewPaginationClampsLimit(t *testing.T) {
	// Must not divide by zero when a caller bypasses the query parsing.
	p := NewPagination(1, 0, 7)
	assert.Equal(t, 7, p.TotalPages)

	p = NewPagination(1, -3, 7)
	assert.Equal(t, 7, p.TotalPages)
}
