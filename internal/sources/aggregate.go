package sources

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"scraper-dashboard/internal/models"
	"scraper-dashboard/internal/pkg/logger"
)

// Named는 Aggregate에 등록되는 이름 붙은 DataSource입니다.
type Named struct {
	Name   string
	Source models.DataSource
}

// Aggregate는 여러 DataSource를 병렬로 조회해 하나의 후보 집합으로 합칩니다.
// 설정은 첫 번째 DataSource에 위임합니다.
type Aggregate struct {
	sources []Named
	logger  *logger.Logger
}

// NewAggregate는 새로운 Aggregate 인스턴스를 생성합니다.
func NewAggregate(log *logger.Logger, sources ...Named) *Aggregate {
	return &Aggregate{
		sources: sources,
		logger:  logger.OrGlobal(log).Named("aggregate"),
	}
}

type fetchResult struct {
	records []models.Record
	err     error
}

// Records는 모든 DataSource를 고루틴으로 조회한 뒤 등록 순서대로 합치고 ID 기준으로 중복을 제거합니다.
// 실패한 DataSource는 로그만 남기고 건너뛰며, 모두 실패한 경우에만 에러를 반환합니다.
func (a *Aggregate) Records(ctx context.Context, category string) ([]models.Record, error) {
	if len(a.sources) == 0 {
		return []models.Record{}, nil
	}

	results := make([]fetchResult, len(a.sources))
	var wg sync.WaitGroup

	for i, named := range a.sources {
		wg.Add(1)
		go func(i int, n Named) {
			defer wg.Done()

			start := time.Now()
			records, err := n.Source.Records(ctx, category)
			results[i] = fetchResult{records: records, err: err}

			if err != nil {
				a.logger.Warn("데이터 소스 조회 실패", zap.String("source", n.Name), zap.Error(err))
				return
			}
			a.logger.Debug("데이터 소스 조회 완료",
				zap.String("source", n.Name),
				zap.Int("records", len(records)),
				zap.Duration("duration", time.Since(start)),
			)
		}(i, named)
	}
	wg.Wait()

	var errs []error
	seen := make(map[string]struct{})
	merged := make([]models.Record, 0)
	duplicates := 0

	for i, res := range results {
		if res.err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", a.sources[i].Name, res.err))
			continue
		}
		for _, r := range res.records {
			id := r.Common().ID
			if _, ok := seen[id]; ok {
				duplicates++
				continue
			}
			seen[id] = struct{}{}
			merged = append(merged, r)
		}
	}

	if len(errs) == len(a.sources) {
		return nil, errors.Join(errs...)
	}

	a.logger.Info("후보 집합 병합 완료",
		zap.String("category", category),
		zap.Int("records", len(merged)),
		zap.Int("duplicates", duplicates),
		zap.Int("failed_sources", len(errs)),
	)
	return merged, nil
}

// Activities는 모든 DataSource의 작업 기록을 이어 붙입니다.
func (a *Aggregate) Activities(ctx context.Context) ([]models.Activity, error) {
	var all []models.Activity
	var errs []error
	for _, n := range a.sources {
		activities, err := n.Source.Activities(ctx)
		if err != nil {
			a.logger.Warn("작업 기록 조회 실패", zap.String("source", n.Name), zap.Error(err))
			errs = append(errs, err)
			continue
		}
		all = append(all, activities...)
	}
	if len(a.sources) > 0 && len(errs) == len(a.sources) {
		return nil, errors.Join(errs...)
	}
	return all, nil
}

func (a *Aggregate) LoadSettings(ctx context.Context) (models.Settings, error) {
	if len(a.sources) == 0 {
		return models.DefaultSettings(), nil
	}
	return a.sources[0].Source.LoadSettings(ctx)
}

func (a *Aggregate) SaveSettings(ctx context.Context, settings models.Settings) error {
	if len(a.sources) == 0 {
		return errors.New("설정을 저장할 데이터 소스가 없습니다")
	}
	return a.sources[0].Source.SaveSettings(ctx, settings)
}
