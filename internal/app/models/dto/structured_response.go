package dto

import "time"

// StructuredResponse provides the base structured API response
type StructuredResponse struct {
	Success   bool         `json:"success" example:"true"`
	Message   string       `json:"message" example:"Operation completed successfully"`
	Data      interface{}  `json:"data,omitempty"`
	Error     *ErrorDetail `json:"error,omitempty"`
	Timestamp time.Time    `json:"timestamp" example:"2025-04-23T12:01:05.123Z"`
}

// NewStructuredResponse creates a standard structured API response
func NewStructuredResponse(data interface{}, message string) StructuredResponse {
	return StructuredResponse{
		Success:   true,
		Message:   message,
		Data:      data,
		Timestamp: time.Now(),
	}
}

// PaginationInfo carries list paging metadata
type PaginationInfo struct {
	CurrentPage int   `json:"currentPage" example:"1"`
	TotalPages  int   `json:"totalPages" example:"3"`
	PageSize    int   `json:"perPage" example:"10"`
	TotalItems  int64 `json:"totalItems" example:"25"`
}

// ListResponse is the flat paginated list envelope used by all listing
// endpoints: paging metadata sits next to the data array.
type ListResponse struct {
	Success     bool        `json:"success" example:"true"`
	Message     string      `json:"message"`
	CurrentPage int         `json:"currentPage" example:"1"`
	PerPage     int         `json:"perPage" example:"10"`
	TotalPages  int         `json:"totalPages" example:"3"`
	TotalItems  int64       `json:"totalItems" example:"25"`
	Data        interface{} `json:"data"`
}

// NewListResponse builds a ListResponse from items and paging metadata.
func NewListResponse(message string, items interface{}, p PaginationInfo) ListResponse {
	return ListResponse{
		Success:     true,
		Message:     message,
		CurrentPage: p.CurrentPage,
		PerPage:     p.PageSize,
		TotalPages:  p.TotalPages,
		TotalItems:  p.TotalItems,
		Data:        items,
	}
}
