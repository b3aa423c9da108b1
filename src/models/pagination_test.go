package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPaginateWithoutQueryReturnsEverything(t *testing.T) {
	page := Paginate([]int{1, 2, 3}, PageQuery{})

	assert.Equal(t, []int{1, 2, 3}, page.Data)
	assert.Equal(t, 3, page.Total)
	assert.Equal(t, 1, page.TotalPages)
	assert.False(t, page.HasNext)
}

func TestPaginateSlices(t *testing.T) {
	items := []int{1, 2, 3, 4, 5}

	page := Paginate(items, PageQuery{Page: 2, Limit: 2})
	assert.Equal(t, []int{3, 4}, page.Data)
	assert.Equal(t, 3, page.TotalPages)
	assert.True(t, page.HasNext)
	assert.True(t, page.HasPrevious)

	last := Paginate(items, PageQuery{Page: 3, Limit: 2})
	assert.Equal(t, []int{5}, last.Data)
	assert.False(t, last.HasNext)

	beyond := Paginate(items, PageQuery{Page: 9, Limit: 2})
	assert.Empty(t, beyond.Data)
	assert.Equal(t, 5, beyond.Total)
}

func TestPaginateClampsLimit(t *testing.T) {
	page := Paginate(make([]int, 500), PageQuery{Limit: 1000})

	assert.Equal(t, MaxPageLimit, page.Limit)
	assert.Equal(t, 1, page.Page)
	assert.Len(t, page.Data, MaxPageLimit)
}
