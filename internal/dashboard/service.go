// Package dashboard는 DataSource에서 후보 집합을 가져와 조회 엔진을 실행하는 대시보드 서비스입니다.
package dashboard

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"go.uber.org/zap"

	"scraper-dashboard/internal/export"
	"scraper-dashboard/internal/models"
	"scraper-dashboard/internal/pkg/logger"
	"scraper-dashboard/internal/query"
)

const maxCategoryImages = 4

var (
	ErrNotFound        = errors.New("컨텐츠를 찾을 수 없습니다")
	ErrInvalidSettings = errors.New("설정 값이 올바르지 않습니다")
	ErrFormatDisabled  = errors.New("설정에서 비활성화된 내보내기 형식입니다")
)

// Listing은 목록 화면 한 페이지의 결과입니다.
type Listing struct {
	query.PageResult
	Pagination query.Pagination `json:"pagination"`
}

// Service는 대시보드 화면들이 호출하는 서비스입니다.
type Service struct {
	source models.DataSource
	engine *query.Engine
	logger *logger.Logger
	now    func() time.Time
}

// NewService는 새로운 Service 인스턴스를 생성합니다.
func NewService(source models.DataSource, log *logger.Logger) *Service {
	return &Service{
		source: source,
		engine: query.NewEngine(),
		logger: logger.OrGlobal(log).Named("dashboard"),
		now:    time.Now,
	}
}

// ListContent는 category 범위의 후보 집합에 q를 적용한 한 페이지를 반환합니다.
func (s *Service) ListContent(ctx context.Context, category string, q query.Query) (Listing, error) {
	records, err := s.source.Records(ctx, category)
	if err != nil {
		return Listing{}, fmt.Errorf("후보 집합 조회 실패: %w", err)
	}

	res, err := s.engine.Query(records, q)
	if err != nil {
		return Listing{}, err
	}

	s.logger.WithContext(ctx).Debug("컨텐츠 조회",
		zap.String("category", category),
		zap.Int("candidates", len(records)),
		zap.Int("matches", res.TotalMatches),
		zap.Int("page", q.Page),
	)

	return Listing{
		PageResult: res,
		Pagination: query.NewPagination(q.Page, q.PageSize, res.TotalMatches),
	}, nil
}

// GetContent는 ID로 컨텐츠 한 건을 찾습니다.
func (s *Service) GetContent(ctx context.Context, id string) (models.Record, error) {
	records, err := s.source.Records(ctx, "")
	if err != nil {
		return nil, fmt.Errorf("후보 집합 조회 실패: %w", err)
	}
	for _, r := range records {
		if r.Common().ID == id {
			return r, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
}

// Categories는 전체 컨텐츠를 카테고리별로 묶은 요약을 이름순으로 반환합니다.
// 카테고리가 없는 컨텐츠는 컨텐츠 종류를 카테고리로 사용합니다.
func (s *Service) Categories(ctx context.Context) ([]models.Category, error) {
	records, err := s.source.Records(ctx, "")
	if err != nil {
		return nil, fmt.Errorf("후보 집합 조회 실패: %w", err)
	}
	return Summarize(records), nil
}

// Summarize는 컨텐츠 목록에서 카테고리 요약을 계산합니다.
func Summarize(records []models.Record) []models.Category {
	byID := make(map[string]*models.Category)
	for _, r := range records {
		b := r.Common()
		id := b.Category
		if id == "" {
			id = string(r.Type())
		}

		c, ok := byID[id]
		if !ok {
			c = &models.Category{ID: id, Name: displayName(id), Images: []string{}}
			byID[id] = c
		}
		c.Count++
		if b.CreatedAt.After(c.LastUpdated) {
			c.LastUpdated = b.CreatedAt
		}
		if img := models.PreviewImage(r); img != "" && len(c.Images) < maxCategoryImages {
			c.Images = append(c.Images, img)
		}
	}

	out := make([]models.Category, 0, len(byID))
	for _, c := range byID {
		c.Description = fmt.Sprintf("%d items", c.Count)
		out = append(out, *c)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Name != out[j].Name {
			return out[i].Name < out[j].Name
		}
		return out[i].ID < out[j].ID
	})
	return out
}

func displayName(id string) string {
	words := strings.FieldsFunc(id, func(r rune) bool { return r == '-' || r == '_' || r == ' ' })
	for i, w := range words {
		r, size := utf8.DecodeRuneInString(w)
		words[i] = string(unicode.ToUpper(r)) + w[size:]
	}
	return strings.Join(words, " ")
}

// RecentActivities는 최근 작업 기록을 날짜 내림차순으로 limit개까지 반환합니다. limit이 0 이하면 전체입니다.
func (s *Service) RecentActivities(ctx context.Context, limit int) ([]models.Activity, error) {
	activities, err := s.source.Activities(ctx)
	if err != nil {
		return nil, fmt.Errorf("작업 기록 조회 실패: %w", err)
	}

	out := append([]models.Activity(nil), activities...)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Date.After(out[j].Date) })
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	if out == nil {
		out = []models.Activity{}
	}
	return out, nil
}

// Export는 페이지 구간을 무시하고 조건에 맞는 모든 컨텐츠를 format 형식으로 내보냅니다.
func (s *Service) Export(ctx context.Context, format export.Format, category string, q query.Query) (export.Document, error) {
	settings, err := s.source.LoadSettings(ctx)
	if err != nil {
		return export.Document{}, fmt.Errorf("설정 조회 실패: %w", err)
	}
	if !settings.Storage.ExportFormats.Enabled(string(format)) {
		return export.Document{}, fmt.Errorf("%w: %s", ErrFormatDisabled, format)
	}

	records, err := s.source.Records(ctx, category)
	if err != nil {
		return export.Document{}, fmt.Errorf("후보 집합 조회 실패: %w", err)
	}

	matched := s.engine.Match(records, q)
	doc, err := export.Export(format, matched, s.now())
	if err != nil {
		return export.Document{}, err
	}

	s.logger.WithContext(ctx).Info("컨텐츠 내보내기",
		zap.String("format", string(format)),
		zap.Int("records", len(matched)),
		zap.Int("bytes", len(doc.Body)),
	)
	return doc, nil
}
