package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTotalPages(t *testing.T) {
	tests := []struct {
		name       string
		matchCount int64
		pageSize   int
		expected   int
	}{
		{name: "exact multiple", matchCount: 12, pageSize: 6, expected: 2},
		{name: "partial last page", matchCount: 13, pageSize: 6, expected: 3},
		{name: "single short page", matchCount: 4, pageSize: 6, expected: 1},
		{name: "related page size", matchCount: 7, pageSize: 3, expected: 3},
		{name: "no matches", matchCount: 0, pageSize: 6, expected: 0},
		{name: "zero page size", matchCount: 10, pageSize: 0, expected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, TotalPages(tt.matchCount, tt.pageSize))
		})
	}
}

func TestOffset(t *testing.T) {
	tests := []struct {
		name     string
		page     int
		pageSize int
		expected int
	}{
		{name: "first page", page: 1, pageSize: 6, expected: 0},
		{name: "second page", page: 2, pageSize: 6, expected: 6},
		{name: "zero page clamps to first", page: 0, pageSize: 6, expected: 0},
		{name: "negative page clamps to first", page: -3, pageSize: 6, expected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Offset(tt.page, tt.pageSize))
		})
	}
}

// A page past the last one must stay a valid request: its offset lands at or
// beyond the match count, so the store returns no rows and the page carries
// an empty item list rather than an error.
func TestOffset_PastTheEndPage(t *testing.T) {
	const matchCount = 13

	totalPages := TotalPages(matchCount, EventPageSize) // 3
	assert.Equal(t, 3, totalPages)

	offset := Offset(totalPages+1, EventPageSize)
	assert.GreaterOrEqual(t, int64(offset), int64(matchCount))
}
