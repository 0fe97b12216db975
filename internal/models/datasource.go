package models

import "context"

//go:generate mockgen -destination=mocks/mock_datasource.go -package=mocks scraper-dashboard/internal/models DataSource

// RecordSource는 후보 컨텐츠 집합을 제공하는 인터페이스입니다.
// category가 비어 있으면 전체 컨텐츠를, 아니면 해당 카테고리의 컨텐츠만 반환합니다.
// 반환되는 목록은 ID 기준으로 중복이 없어야 합니다.
type RecordSource interface {
	Records(ctx context.Context, category string) ([]Record, error)
}

// DataSource는 대시보드가 사용하는 외부 데이터 제공자입니다.
type DataSource interface {
	RecordSource
	Activities(ctx context.Context) ([]Activity, error)
	LoadSettings(ctx context.Context) (Settings, error)
	SaveSettings(ctx context.Context, settings Settings) error
}

// RecordFilter는 컨텐츠 필터링을 위한 인터페이스입니다.
type RecordFilter interface {
	Match(r Record) bool
	Filter(records []Record) []Record
}
