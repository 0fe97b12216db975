package main

import (
	"context"
	"os"
	"time"

	"github.com/aws/aws-lambda-go/lambda"
	"go.uber.org/zap"

	"scraper-dashboard/internal/conf"
	"scraper-dashboard/internal/dashboard"
	"scraper-dashboard/internal/data"
	"scraper-dashboard/internal/generators"
	"scraper-dashboard/internal/pkg/logger"
)

func main() {
	// Lambda에서는 설정 파일 없이 DASHBOARD_* 환경변수만 사용합니다.
	config, err := conf.LoadConfig(os.Getenv("DASHBOARD_CONFIG"))
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	log, err := logger.New(&config.Log)
	if err != nil {
		panic("failed to initialize logger: " + err.Error())
	}
	defer log.Sync()

	d, cleanup, err := data.NewData(context.Background(), config, log)
	if err != nil {
		log.Fatal("failed to initialize data layer", zap.Error(err))
	}
	defer cleanup()

	h := &handler{
		svc:       dashboard.NewService(d.Source, log),
		generator: generators.NewHTMLGenerator(),
		s3:        d.S3,
		bucket:    config.Publish.Bucket,
		key:       config.Publish.Key,
		pageSize:  config.Query.PageSize,
		logger:    log.Named("lambda"),
		now:       time.Now,
	}

	lambda.Start(h.Handle)
}
