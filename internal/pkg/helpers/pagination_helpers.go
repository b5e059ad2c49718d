package helpers

import (
	"math"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/hanifz/tracerstudy/internal/app/models/dto"
)

const (
	DefaultPerPage = 10
	MaxPerPage     = 100
	DefaultPage    = 1 // pages are 1-based
)

// CalculateOffsetLimit calculates the offset and limit for SQL queries
// based on a 1-based page index.
func CalculateOffsetLimit(page, perPage int) (offset uint64, limit int) {
	if perPage <= 0 || perPage > MaxPerPage {
		limit = DefaultPerPage
	} else {
		limit = perPage
	}

	if page < 1 {
		page = DefaultPage
	}

	offset = uint64((page - 1) * limit)
	return offset, limit
}

// NewPaginationInfo creates a standard PaginationInfo DTO.
// page should be the 1-based page number.
func NewPaginationInfo(totalItems int64, page, perPage int) dto.PaginationInfo {
	if perPage <= 0 {
		perPage = DefaultPerPage
	}
	if page < 1 {
		page = DefaultPage
	}

	totalPages := 0
	if totalItems > 0 {
		totalPages = int(math.Ceil(float64(totalItems) / float64(perPage)))
	} else if page == 1 {
		// No items: report a single empty page when on page 1
		totalPages = 1
	}

	currentPage := page
	if totalPages > 0 && currentPage > totalPages {
		currentPage = totalPages
	}

	return dto.PaginationInfo{
		CurrentPage: currentPage,
		TotalPages:  totalPages,
		PageSize:    perPage,
		TotalItems:  totalItems,
	}
}

// ParsePaginationParams extracts page and perPage from the request query.
func ParsePaginationParams(c *gin.Context) (page, perPage int) {
	pageStr := c.DefaultQuery("page", "1")
	page, err := strconv.Atoi(pageStr)
	if err != nil || page < 1 {
		page = DefaultPage
	}

	perPageStr := c.DefaultQuery("perPage", "10")
	perPage, err = strconv.Atoi(perPageStr)
	if err != nil || perPage <= 0 || perPage > MaxPerPage {
		perPage = DefaultPerPage
	}

	return page, perPage
}
