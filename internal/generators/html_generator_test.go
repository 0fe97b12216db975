package generators

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"scraper-dashboard/internal/models"
	"scraper-dashboard/internal/query"
)

func TestRenderPage(t *testing.T) {
	at := time.Date(2025, 2, 3, 4, 5, 6, 0, time.UTC)
	view := PageView{
		Title: "수집된 컨텐츠",
		Items: []models.Record{
			models.Product{Base: models.Base{ID: "p1", Title: "Keyboard <Pro>", Source: "shop", CreatedAt: at}, Price: "$99", Rating: 4.5, ReviewCount: 3, ImageURL: "https://img.example.com/k.png"},
			models.Social{Base: models.Base{ID: "s1", Title: "thread", Source: "sns", CreatedAt: at}, Handle: "@gopher", Content: "hello", LikeCount: 7},
		},
		TotalMatches: 30,
		Pagination:   query.NewPagination(2, 2, 30),
		GeneratedAt:  at,
	}

	html, err := NewHTMLGenerator().RenderString(view)
	require.NoError(t, err)

	assert.Contains(t, html, "Keyboard &lt;Pro&gt;")
	assert.Contains(t, html, "4.5 / 5.0")
	assert.Contains(t, html, "@gopher")
	assert.Contains(t, html, `<span class="current">2</span>`)
	assert.Contains(t, html, `href="?page=15"`)
	assert.Contains(t, html, "2025년 2월 3일")
	assert.Contains(t, html, "전체 30건 중 3-4")
}

func TestRenderEmptyPage(t *testing.T) {
	html, err := NewHTMLGenerator().RenderString(PageView{
		Title:      "empty",
		Pagination: query.NewPagination(1, 10, 0),
	})
	require.NoError(t, err)
	assert.Contains(t, html, "조건에 맞는 컨텐츠가 없습니다.")
	assert.NotContains(t, html, `class="pager"`)
}

func TestCardForCoversEveryVariant(t *testing.T) {
	for _, r := range []models.Record{
		models.Article{Summary: "s"},
		models.Image{Resolution: "1920x1080", Format: "png"},
		models.Product{},
		models.News{},
		models.Social{},
		models.Review{Reviewer: "lee"},
	} {
		c := cardFor(r)
		assert.Equal(t, r.Type(), c.Type)
	}
}

func TestRenderPointerAndNilRecords(t *testing.T) {
	html, err := NewHTMLGenerator().RenderString(PageView{
		Title: "pointers",
		Items: []models.Record{
			&models.Review{Base: models.Base{ID: "r1", Title: "solid"}, Reviewer: "kim", Rating: 4},
			(*models.Article)(nil),
		},
		TotalMatches: 1,
		Pagination:   query.NewPagination(1, 10, 1),
	})
	require.NoError(t, err)
	assert.Contains(t, html, "kim")
	assert.Contains(t, html, "4.0 / 5.0")
}
