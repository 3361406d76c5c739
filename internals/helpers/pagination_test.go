package helper

import (
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/valyala/fasthttp"
)

func ctxWithQuery(app *fiber.App, query string) *fiber.Ctx {
	reqCtx := &fasthttp.RequestCtx{}
	reqCtx.Request.SetRequestURI("/test?" + query)
	return app.AcquireCtx(reqCtx)
}

func TestResolvePagingDefaults(t *testing.T) {
	app := fiber.New()
	c := ctxWithQuery(app, "")
	defer app.ReleaseCtx(c)

	p := ResolvePaging(c, 25, 100)
	assert.Equal(t, 1, p.Page)
	assert.Equal(t, 25, p.PerPage)
	assert.Equal(t, 0, p.Offset)
}

func TestResolvePagingClampsAndOffsets(t *testing.T) {
	app := fiber.New()

	c := ctxWithQuery(app, "page=3&per_page=500")
	defer app.ReleaseCtx(c)
	p := ResolvePaging(c, 25, 100)
	assert.Equal(t, 3, p.Page)
	assert.Equal(t, 100, p.PerPage) // dibatasi maxPerPage
	assert.Equal(t, 200, p.Offset)

	c2 := ctxWithQuery(app, "page=-1&limit=10")
	defer app.ReleaseCtx(c2)
	p2 := ResolvePaging(c2, 25, 100)
	assert.Equal(t, 1, p2.Page) // page minimum 1
	assert.Equal(t, 10, p2.PerPage)
}

func TestBuildPagination(t *testing.T) {
	paging := Paging{Page: 2, PerPage: 10, Offset: 10, Limit: 10}
	pg := BuildPagination(35, paging, 10)

	assert.Equal(t, int64(35), pg.Total)
	assert.Equal(t, 4, pg.TotalPages)
	assert.True(t, pg.HasNext)
	assert.True(t, pg.HasPrev)
	assert.Equal(t, 10, pg.Count)

	// total nol tetap satu halaman
	pgEmpty := BuildPagination(0, Paging{Page: 1, PerPage: 10}, 0)
	assert.Equal(t, 1, pgEmpty.TotalPages)
	assert.False(t, pgEmpty.HasNext)
}
