package utils

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

const (
	defaultPage     = 1
	defaultPageSize = 20
	maxPageSize     = 100
)

// PageParams holds normalized pagination query parameters
type PageParams struct {
	Page     int
	PageSize int
}

// Offset returns the row offset for the current page
func (p PageParams) Offset() int {
	return (p.Page - 1) * p.PageSize
}

// Page is the envelope wrapping every paginated list response
type Page struct {
	Items           interface{} `json:"items"`
	TotalItems      int64       `json:"totalItems"`
	TotalPages      int         `json:"totalPages"`
	CurrentPage     int         `json:"currentPage"`
	HasNextPage     bool        `json:"hasNextPage"`
	HasPreviousPage bool        `json:"hasPreviousPage"`
}

// ParsePageParams reads page and pageSize from the query string,
// clamping out-of-range values to defaults
func ParsePageParams(c *gin.Context) PageParams {
	page, err := strconv.Atoi(c.DefaultQuery("page", strconv.Itoa(defaultPage)))
	if err != nil || page < 1 {
		page = defaultPage
	}

	pageSize, err := strconv.Atoi(c.DefaultQuery("pageSize", strconv.Itoa(defaultPageSize)))
	if err != nil || pageSize < 1 {
		pageSize = defaultPageSize
	}
	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}

	return PageParams{Page: page, PageSize: pageSize}
}

// NewPage builds the pagination envelope. items should never be nil so
// the JSON renders an empty array rather than null.
func NewPage(items interface{}, total int64, params PageParams) Page {
	totalPages := int(total) / params.PageSize
	if int(total)%params.PageSize != 0 {
		totalPages++
	}
	if totalPages == 0 {
		totalPages = 1
	}

	return Page{
		Items:           items,
		TotalItems:      total,
		TotalPages:      totalPages,
		CurrentPage:     params.Page,
		HasNextPage:     params.Page < totalPages,
		HasPreviousPage: params.Page > 1,
	}
}
