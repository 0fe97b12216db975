package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"scraper-dashboard/internal/dashboard"
	"scraper-dashboard/internal/generators"
	"scraper-dashboard/internal/pkg/logger"
	"scraper-dashboard/internal/query"
	"scraper-dashboard/internal/sources"
)

const (
	actionQuery   = "query"
	actionPublish = "publish"
	pageTitle     = "수집 데이터 대시보드"
)

var errUnknownAction = errors.New("알 수 없는 action")

// Event는 Lambda 호출 페이로드입니다. action이 비어 있으면 query로 처리합니다.
type Event struct {
	Action   string `json:"action"`
	Category string `json:"category"`
	query.Params
}

// PublishResult는 publish 호출의 응답입니다.
type PublishResult struct {
	Bucket       string `json:"bucket"`
	Key          string `json:"key"`
	TotalMatches int    `json:"total"`
	Bytes        int    `json:"bytes"`
}

type handler struct {
	svc       *dashboard.Service
	generator *generators.HTMLGenerator
	s3        sources.S3API
	bucket    string
	key       string
	pageSize  int
	logger    *logger.Logger
	now       func() time.Time
}

func (h *handler) Handle(ctx context.Context, ev Event) (interface{}, error) {
	q, err := ev.Params.Build(h.pageSize)
	if err != nil {
		return nil, err
	}

	switch ev.Action {
	case "", actionQuery:
		return h.svc.ListContent(ctx, ev.Category, q)
	case actionPublish:
		return h.publish(ctx, ev.Category, q)
	default:
		return nil, fmt.Errorf("%w: %q", errUnknownAction, ev.Action)
	}
}

// publish는 조회 결과를 HTML로 그려 S3에 올립니다.
func (h *handler) publish(ctx context.Context, category string, q query.Query) (PublishResult, error) {
	if h.bucket == "" {
		return PublishResult{}, errors.New("publish.bucket이 설정되지 않았습니다")
	}

	listing, err := h.svc.ListContent(ctx, category, q)
	if err != nil {
		return PublishResult{}, err
	}

	html, err := h.generator.RenderString(generators.NewPageView(pageTitle, listing.PageResult, listing.Pagination, h.now()))
	if err != nil {
		return PublishResult{}, err
	}

	if err := sources.Upload(ctx, h.s3, h.bucket, h.key, "text/html; charset=utf-8", []byte(html), h.logger); err != nil {
		return PublishResult{}, err
	}

	h.logger.Info("✅ HTML 파일이 S3에 업로드되었습니다",
		zap.String("bucket", h.bucket),
		zap.String("key", h.key),
		zap.Int("total", listing.TotalMatches),
	)
	return PublishResult{Bucket: h.bucket, Key: h.key, TotalMatches: listing.TotalMatches, Bytes: len(html)}, nil
}
