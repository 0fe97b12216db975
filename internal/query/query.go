// Package query는 후보 컨텐츠 집합에 필터, 정렬, 페이지 구간을 적용하는 조회 엔진입니다.
// 엔진은 상태를 가지지 않으며 입력 슬라이스를 변경하지 않습니다.
package query

import (
	"errors"
	"fmt"
	"time"

	"scraper-dashboard/internal/models"
)

// ErrInvalidArgument는 page 또는 pageSize가 1보다 작을 때 반환됩니다.
var ErrInvalidArgument = errors.New("invalid argument")

// SortKey는 정렬 기준입니다.
type SortKey string

const (
	SortLatest    SortKey = "latest"
	SortOldest    SortKey = "oldest"
	SortTitleAsc  SortKey = "a-z"
	SortTitleDesc SortKey = "z-a"
)

// ParseSortKey는 요청 파라미터를 SortKey로 변환합니다. 빈 문자열은 latest입니다.
func ParseSortKey(s string) (SortKey, error) {
	switch SortKey(s) {
	case "":
		return SortLatest, nil
	case SortLatest, SortOldest, SortTitleAsc, SortTitleDesc:
		return SortKey(s), nil
	}
	return "", fmt.Errorf("%w: 알 수 없는 정렬 기준 %q", ErrInvalidArgument, s)
}

// Query는 조회 조건입니다.
type Query struct {
	Types      []models.ContentType
	SearchText string
	DateFrom   *time.Time
	DateTo     *time.Time
	Sort       SortKey
	Page       int
	PageSize   int
}

// PageResult는 조회 결과 한 페이지입니다.
type PageResult struct {
	Items        models.Records `json:"items"`
	TotalMatches int            `json:"total"`
}

func (q Query) validate() error {
	if q.Page < 1 {
		return fmt.Errorf("%w: page must be >= 1, got %d", ErrInvalidArgument, q.Page)
	}
	if q.PageSize < 1 {
		return fmt.Errorf("%w: pageSize must be >= 1, got %d", ErrInvalidArgument, q.PageSize)
	}
	return nil
}
