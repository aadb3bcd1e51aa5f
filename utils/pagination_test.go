package utils

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func paginationContext(t *testing.T, rawQuery string) *gin.Context {
	t.Helper()
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", "/?"+rawQuery, nil)
	return c
}

func TestNewPaginationDefaults(t *testing.T) {
	p := NewPagination(paginationContext(t, ""))

	assert.Equal(t, 1, p.Page)
	assert.Equal(t, DefaultPageSize, p.Limit)
	assert.Equal(t, 0, p.Offset)
	assert.Equal(t, "", p.Search)
}

func TestNewPaginationParsesQuery(t *testing.T) {
	p := NewPagination(paginationContext(t, "page=3&limit=20&search=tea"))

	assert.Equal(t, 3, p.Page)
	assert.Equal(t, 20, p.Limit)
	assert.Equal(t, 40, p.Offset)
	assert.Equal(t, "tea", p.Search)
}

func TestNewPaginationClampsBadInput(t *testing.T) {
	p := NewPagination(paginationContext(t, "page=-2&limit=0"))
	assert.Equal(t, 1, p.Page)
	assert.Equal(t, DefaultPageSize, p.Limit)

	p = NewPagination(paginationContext(t, "limit=9999"))
	assert.Equal(t, MaxPageSize, p.Limit)

	p = NewPagination(paginationContext(t, "page=abc&limit=xyz"))
	assert.Equal(t, 1, p.Page)
	assert.Equal(t, DefaultPageSize, p.Limit)
}

func TestNewLookupPaginationDefaultsLarger(t *testing.T) {
	p := NewLookupPagination(paginationContext(t, "page=2"))
	assert.Equal(t, LookupPageSize, p.Limit)
	assert.Equal(t, LookupPageSize, p.Offset)

	// An explicit limit wins.
	p = NewLookupPagination(paginationContext(t, "limit=5"))
	assert.Equal(t, 5, p.Limit)
}

func TestHasNextPage(t *testing.T) {
	p := NewPagination(paginationContext(t, "page=1&limit=10"))
	p.SetTotal(25)
	assert.Equal(t, 3, p.LastPage)
	assert.True(t, p.HasNextPage())

	p = NewPagination(paginationContext(t, "page=3&limit=10"))
	p.SetTotal(25)
	assert.False(t, p.HasNextPage())

	p = NewPagination(paginationContext(t, "page=1&limit=10"))
	p.SetTotal(0)
	assert.False(t, p.HasNextPage())
}
