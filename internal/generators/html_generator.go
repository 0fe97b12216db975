package generators

import (
	"fmt"
	"html/template"
	"io"
	"sort"
	"strings"
	"time"

	"scraper-dashboard/internal/models"
	"scraper-dashboard/internal/query"
)

// PageView는 목록 페이지 하나를 그리는 데 필요한 값입니다.
type PageView struct {
	Title        string
	Items        []models.Record
	TotalMatches int
	Pagination   query.Pagination
	GeneratedAt  time.Time
}

// HTMLGenerator는 조회 결과 한 페이지를 정적 HTML로 변환하는 제너레이터입니다.
type HTMLGenerator struct {
	template *template.Template
}

// NewHTMLGenerator는 새로운 HTMLGenerator 인스턴스를 생성합니다.
func NewHTMLGenerator() *HTMLGenerator {
	return &HTMLGenerator{
		template: template.Must(template.New("page").Parse(pageTemplate)),
	}
}

type card struct {
	Type    models.ContentType
	Title   string
	Source  string
	Date    time.Time
	Image   string
	Summary string
	Meta    []string
}

type typeCount struct {
	Type  models.ContentType
	Count int
}

// Render는 view를 HTML로 w에 씁니다.
func (g *HTMLGenerator) Render(w io.Writer, view PageView) error {
	cards := make([]card, 0, len(view.Items))
	for _, r := range view.Items {
		r, err := models.Normalize(r)
		if err != nil {
			continue
		}
		cards = append(cards, cardFor(r))
	}

	data := struct {
		PageView
		Cards  []card
		Counts []typeCount
	}{
		PageView: view,
		Cards:    cards,
		Counts:   countByType(view.Items),
	}

	if err := g.template.Execute(w, data); err != nil {
		return fmt.Errorf("HTML 템플릿 실행 실패: %w", err)
	}
	return nil
}

// RenderString은 Render 결과를 문자열로 반환합니다.
func (g *HTMLGenerator) RenderString(view PageView) (string, error) {
	var sb strings.Builder
	if err := g.Render(&sb, view); err != nil {
		return "", err
	}
	return sb.String(), nil
}

// cardFor는 컨텐츠 종류별로 카드에 보여줄 값을 고릅니다.
func cardFor(r models.Record) card {
	b := r.Common()
	c := card{Type: r.Type(), Title: b.Title, Source: b.Source, Date: b.CreatedAt, Image: models.PreviewImage(r)}

	switch v := r.(type) {
	case models.Article:
		c.Summary = v.Summary
	case models.News:
		c.Summary = v.Summary
	case models.Image:
		c.Meta = compact(v.Resolution, v.Format, v.FileSize, v.License)
	case models.Product:
		c.Summary = v.Description
		c.Meta = compact(v.Price, fmt.Sprintf("%.1f / 5.0", v.Rating), fmt.Sprintf("리뷰 %d개", v.ReviewCount))
	case models.Social:
		c.Summary = v.Content
		c.Meta = compact(v.Handle, fmt.Sprintf("♥ %d", v.LikeCount), fmt.Sprintf("💬 %d", v.CommentCount), fmt.Sprintf("↻ %d", v.ShareCount))
	case models.Review:
		c.Summary = v.Content
		c.Meta = compact(v.Reviewer, fmt.Sprintf("%.1f / 5.0", v.Rating))
	default:
		panic(fmt.Sprintf("generators: 처리되지 않은 Record 타입 %T", r))
	}
	return c
}

func compact(values ...string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v != "" {
			out = append(out, v)
		}
	}
	return out
}

// countByType은 페이지에 포함된 컨텐츠 수를 종류별로 셉니다.
func countByType(records []models.Record) []typeCount {
	counts := make(map[models.ContentType]int)
	for _, r := range records {
		counts[r.Type()]++
	}

	out := make([]typeCount, 0, len(counts))
	for t, n := range counts {
		out = append(out, typeCount{Type: t, Count: n})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Type < out[j].Type })
	return out
}

// pageTemplate은 목록 페이지의 HTML 템플릿입니다.
const pageTemplate = `<!DOCTYPE html>
<html lang="ko">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>{{.Title}}</title>
    <style>
        * { margin: 0; padding: 0; box-sizing: border-box; }
        body { font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif; background: #f5f5f7; color: #2d2d2d; padding: 24px; }
        .container { max-width: 1200px; margin: 0 auto; }
        .header { margin-bottom: 24px; }
        .header h1 { font-size: 1.75rem; }
        .stats { display: flex; gap: 12px; flex-wrap: wrap; margin: 16px 0; }
        .stat-item { background: white; border-radius: 10px; padding: 10px 16px; border: 1px solid #eee; }
        .grid { display: grid; grid-template-columns: repeat(auto-fill, minmax(320px, 1fr)); gap: 16px; }
        .card { background: white; border-radius: 12px; border: 1px solid #eee; overflow: hidden; }
        .card img { width: 100%; height: 180px; object-fit: cover; }
        .card-body { padding: 16px; }
        .badge { display: inline-block; font-size: 0.75rem; background: #e8f1ff; color: #007aff; border-radius: 999px; padding: 2px 10px; }
        .card h2 { font-size: 1.1rem; margin: 8px 0; }
        .summary { color: #555; font-size: 0.9rem; line-height: 1.5; }
        .meta { color: #888; font-size: 0.8rem; margin-top: 8px; }
        .pager { display: flex; gap: 4px; margin-top: 24px; align-items: center; }
        .pager a, .pager span { padding: 6px 12px; border: 1px solid #ddd; background: white; border-radius: 6px; text-decoration: none; color: #555; }
        .pager .current { background: #007aff; color: white; border-color: #007aff; }
        .empty { text-align: center; padding: 40px; background: white; border-radius: 12px; }
    </style>
</head>
<body>
    <div class="container">
        <div class="header">
            <h1>{{.Title}}</h1>
            {{if .TotalMatches}}<p>전체 {{.TotalMatches}}건 중 {{.Pagination.From}}-{{.Pagination.To}}</p>{{end}}
        </div>

        <div class="stats">
            {{range .Counts}}<div class="stat-item">{{.Type}} <strong>{{.Count}}</strong></div>{{end}}
        </div>

        {{if .Cards}}
        <div class="grid">
            {{range .Cards}}
            <div class="card" data-type="{{.Type}}">
                {{if .Image}}<img src="{{.Image}}" alt="{{.Title}}" loading="lazy">{{end}}
                <div class="card-body">
                    <span class="badge">{{.Type}}</span>
                    <h2>{{.Title}}</h2>
                    {{if .Summary}}<p class="summary">{{.Summary}}</p>{{end}}
                    <div class="meta">{{.Source}} · {{.Date.Format "2006년 1월 2일"}}{{range .Meta}} · {{.}}{{end}}</div>
                </div>
            </div>
            {{end}}
        </div>
        {{else}}
        <div class="empty">조건에 맞는 컨텐츠가 없습니다.</div>
        {{end}}

        {{if gt .Pagination.TotalPages 1}}
        <nav class="pager">
            {{$current := .Pagination.Page}}
            {{range .Pagination.Links}}
                {{if .Ellipsis}}<span>...</span>
                {{else if eq .Number $current}}<span class="current">{{.Number}}</span>
                {{else}}<a href="?page={{.Number}}">{{.Number}}</a>{{end}}
            {{end}}
        </nav>
        {{end}}

        <p class="meta">생성일: {{.GeneratedAt.Format "2006년 1월 2일 15:04:05"}}</p>
    </div>
</body>
</html>
`

// NewPageView는 조회 결과 한 페이지로 PageView를 만듭니다.
func NewPageView(title string, res query.PageResult, pagination query.Pagination, now time.Time) PageView {
	return PageView{
		Title:        title,
		Items:        res.Items,
		TotalMatches: res.TotalMatches,
		Pagination:   pagination,
		GeneratedAt:  now,
	}
}
