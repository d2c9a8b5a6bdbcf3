// Package usecase defines the application's use-case interfaces and the DTOs
// they exchange with the delivery layer.
package usecase

// Page size constants per listing context.
const (
	// EventPageSize is the default page size for event listings.
	EventPageSize = 6
	// RelatedEventPageSize is the page size for related-events listings.
	RelatedEventPageSize = 3
	// OrderPageSize is the page size for a buyer's order history.
	OrderPageSize = 3
)

// Paginated wraps one page of a listing together with the total page count.
type Paginated[T any] struct {
	Items      []T `json:"items"`
	TotalPages int `json:"total_pages"`
}

// TotalPages computes ceil(matchCount / pageSize). Zero matches yield zero
// pages; requesting a page beyond the last yields an empty item list, not an
// error.
func TotalPages(matchCount int64, pageSize int) int {
	if pageSize <= 0 {
		return 0
	}

	return int((matchCount + int64(pageSize) - 1) / int64(pageSize))
}

// Offset converts a 1-based page number into a store offset. Pages below 1
// are clamped to the first page.
func Offset(page, pageSize int) int {
	if page < 1 {
		page = 1
	}

	return (page - 1) * pageSize
}
