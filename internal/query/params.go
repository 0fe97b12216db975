package query

import (
	"fmt"
	"strings"
	"time"

	"scraper-dashboard/internal/models"
)

// Params는 HTTP 요청, Lambda 이벤트, CLI 플래그에서 받은 문자열 조건입니다.
// Page나 PageSize가 0이면 Build에서 기본값을 채웁니다.
type Params struct {
	Types    []string `json:"types"`
	Search   string   `json:"q"`
	From     string   `json:"from"`
	To       string   `json:"to"`
	Sort     string   `json:"sort"`
	Page     int      `json:"page"`
	PageSize int      `json:"limit"`
}

// Build는 Params를 검증해 Query로 변환합니다. 모든 오류는 ErrInvalidArgument를 감쌉니다.
// Types의 각 항목은 쉼표로 여러 종류를 담을 수 있습니다.
func (p Params) Build(defaultPageSize int) (Query, error) {
	var q Query

	for _, raw := range p.Types {
		for _, part := range strings.Split(raw, ",") {
			part = strings.TrimSpace(part)
			if part == "" {
				continue
			}
			t, err := models.ParseContentType(part)
			if err != nil {
				return Query{}, fmt.Errorf("%w: %v", ErrInvalidArgument, err)
			}
			q.Types = append(q.Types, t)
		}
	}

	sortKey, err := ParseSortKey(p.Sort)
	if err != nil {
		return Query{}, err
	}
	q.Sort = sortKey

	if q.DateFrom, err = ParseDate(p.From, false); err != nil {
		return Query{}, err
	}
	if q.DateTo, err = ParseDate(p.To, true); err != nil {
		return Query{}, err
	}

	q.SearchText = p.Search
	q.Page = p.Page
	if q.Page == 0 {
		q.Page = 1
	}
	q.PageSize = p.PageSize
	if q.PageSize == 0 {
		q.PageSize = defaultPageSize
	}
	return q, nil
}

// ParseDate는 RFC3339 또는 YYYY-MM-DD를 받습니다. 빈 문자열은 nil입니다.
// 날짜만 주어진 상한(endOfDay)은 그날의 마지막 순간으로 해석합니다.
func ParseDate(raw string, endOfDay bool) (*time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return &t, nil
	}

	t, err := time.Parse(time.DateOnly, raw)
	if err != nil {
		return nil, fmt.Errorf("%w: 날짜 형식이 올바르지 않습니다 %q", ErrInvalidArgument, raw)
	}
	if endOfDay {
		t = t.AddDate(0, 0, 1).Add(-time.Nanosecond)
	}
	return &t, nil
}
