package utils

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

// Lookup endpoints back the autocomplete fields in the desktop client
// and serve larger pages than regular admin tables.
const (
	DefaultPageSize = 10
	LookupPageSize  = 50
	MaxPageSize     = 100
)

// Pagination represents pagination parameters
type Pagination struct {
	Page     int
	Limit    int
	Offset   int
	Search   string
	Total    int64
	LastPage int
}

// NewPagination creates a new Pagination instance from query parameters
func NewPagination(c *gin.Context) *Pagination {
	pageStr := c.DefaultQuery("page", "1")
	limitStr := c.DefaultQuery("limit", strconv.Itoa(DefaultPageSize))

	page, err := strconv.Atoi(pageStr)
	if err != nil || page < 1 {
		page = 1
	}

	limit, err := strconv.Atoi(limitStr)
	if err != nil || limit < 1 {
		limit = DefaultPageSize
	}
	if limit > MaxPageSize {
		limit = MaxPageSize
	}

	return &Pagination{
		Page:   page,
		Limit:  limit,
		Offset: (page - 1) * limit,
		Search: c.Query("search"),
	}
}

// NewLookupPagination is NewPagination with the lookup page size as
// the default, for endpoints backing autocomplete fields.
func NewLookupPagination(c *gin.Context) *Pagination {
	p := NewPagination(c)
	if c.Query("limit") == "" {
		p.Limit = LookupPageSize
		p.Offset = (p.Page - 1) * p.Limit
	}
	return p
}

// SetTotal sets the total number of items and calculates the last page
func (p *Pagination) SetTotal(total int64) {
	p.Total = total
	if p.Limit > 0 {
		p.LastPage = int((total + int64(p.Limit) - 1) / int64(p.Limit))
	}
}

// HasNextPage reports whether a page beyond the current one exists.
// SetTotal must have been called first.
func (p *Pagination) HasNextPage() bool {
	return p.Page < p.LastPage
}
