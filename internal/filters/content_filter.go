package filters

import (
	"strings"
	"time"

	"scraper-dashboard/internal/models"
)

// ContentFilter는 타입, 검색어, 작성일 범위를 모두 만족하는 컨텐츠만 남깁니다.
type ContentFilter struct {
	types    map[models.ContentType]struct{}
	needle   string
	dateFrom *time.Time
	dateTo   *time.Time
}

// Criteria는 ContentFilter를 만들기 위한 조건입니다. 비어 있는 조건은 적용되지 않습니다.
type Criteria struct {
	Types      []models.ContentType
	SearchText string
	DateFrom   *time.Time
	DateTo     *time.Time
}

// NewContentFilter는 새로운 ContentFilter 인스턴스를 생성합니다.
func NewContentFilter(c Criteria) *ContentFilter {
	f := &ContentFilter{
		needle:   strings.ToLower(strings.TrimSpace(c.SearchText)),
		dateFrom: c.DateFrom,
		dateTo:   c.DateTo,
	}
	if len(c.Types) > 0 {
		f.types = make(map[models.ContentType]struct{}, len(c.Types))
		for _, t := range c.Types {
			f.types[t] = struct{}{}
		}
	}
	return f
}

// Filter는 조건을 만족하는 컨텐츠를 원래 순서대로 새 슬라이스에 담아 반환합니다.
// 포인터로 들어온 컨텐츠는 값으로 바꿔 담고, nil은 건너뜁니다.
func (f *ContentFilter) Filter(records []models.Record) []models.Record {
	filtered := make([]models.Record, 0, len(records))
	for _, r := range records {
		r, err := models.Normalize(r)
		if err != nil {
			continue
		}
		if f.Match(r) {
			filtered = append(filtered, r)
		}
	}
	return filtered
}

// Match는 한 건의 컨텐츠가 모든 조건을 만족하는지 확인합니다.
func (f *ContentFilter) Match(r models.Record) bool {
	r, err := models.Normalize(r)
	if err != nil {
		return false
	}
	if f.types != nil {
		if _, ok := f.types[r.Type()]; !ok {
			return false
		}
	}

	created := r.Common().CreatedAt
	if f.dateFrom != nil && created.Before(*f.dateFrom) {
		return false
	}
	if f.dateTo != nil && created.After(*f.dateTo) {
		return false
	}

	if f.needle != "" && !f.containsText(r) {
		return false
	}
	return true
}

// containsText는 제목 또는 본문에 검색어가 포함되어 있는지 확인합니다.
func (f *ContentFilter) containsText(r models.Record) bool {
	if strings.Contains(strings.ToLower(r.Common().Title), f.needle) {
		return true
	}

	for _, body := range models.Body(r) {
		if strings.Contains(strings.ToLower(body), f.needle) {
			return true
		}
		// 마크업 사이에 끊긴 문구는 추출한 텍스트로 한 번 더 확인합니다.
		if text := PlainText(body); text != body && strings.Contains(strings.ToLower(text), f.needle) {
			return true
		}
	}
	return false
}
