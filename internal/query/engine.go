package query

import (
	"scraper-dashboard/internal/filters"
	"scraper-dashboard/internal/models"
)

// Engine은 컨텐츠 조회 엔진입니다. 내부 상태가 없으므로 여러 고루틴에서 함께 사용해도 안전합니다.
type Engine struct{}

// NewEngine은 새로운 Engine 인스턴스를 생성합니다.
func NewEngine() *Engine {
	return &Engine{}
}

// Query는 records를 필터링하고 정렬한 뒤 q의 페이지 구간만 잘라 반환합니다.
// TotalMatches는 페이지를 자르기 전의 일치 건수입니다.
func (e *Engine) Query(records []models.Record, q Query) (PageResult, error) {
	if err := q.validate(); err != nil {
		return PageResult{}, err
	}

	matched := e.Match(records, q)
	return PageResult{
		Items:        window(matched, q.Page, q.PageSize),
		TotalMatches: len(matched),
	}, nil
}

// Match는 페이지 구간을 적용하지 않은 전체 일치 목록을 정렬된 순서로 반환합니다.
func (e *Engine) Match(records []models.Record, q Query) []models.Record {
	filter := filters.NewContentFilter(filters.Criteria{
		Types:      q.Types,
		SearchText: q.SearchText,
		DateFrom:   q.DateFrom,
		DateTo:     q.DateTo,
	})

	matched := filter.Filter(records)
	sortRecords(matched, q.Sort)
	return matched
}

// window는 [(page-1)*size, page*size) 구간을 복사해 반환합니다. 범위를 벗어나면 빈 슬라이스입니다.
// 아주 큰 page에서도 곱셈이 넘치지 않도록 나눗셈으로 먼저 범위를 확인합니다.
func window(records []models.Record, page, size int) models.Records {
	if len(records) == 0 || page < 1 || size < 1 || page-1 > (len(records)-1)/size {
		return models.Records{}
	}
	start := (page - 1) * size
	end := len(records)
	if size < end-start {
		end = start + size
	}

	items := make(models.Records, end-start)
	copy(items, records[start:end])
	return items
}
