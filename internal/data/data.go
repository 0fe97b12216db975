// Package data는 설정에 따라 DataSource와 외부 클라이언트를 조립합니다.
package data

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/aws/aws-sdk-go-v2/service/s3"
	"go.uber.org/zap"

	"scraper-dashboard/internal/conf"
	"scraper-dashboard/internal/models"
	"scraper-dashboard/internal/pkg/logger"
	"scraper-dashboard/internal/sources"
)

type Data struct {
	Source models.DataSource
	// S3는 s3 소스를 쓰거나 publish.bucket이 설정된 경우에만 채워집니다.
	S3 *s3.Client
}

// NewData는 설정에 맞는 DataSource를 만들고 정리 함수를 함께 반환합니다.
// source.path에 쉼표로 여러 파일을 주면 각 파일을 합친 Aggregate를 사용합니다.
func NewData(ctx context.Context, cfg *conf.Config, log *logger.Logger) (*Data, func(), error) {
	log = logger.OrGlobal(log).Named("data")
	d := &Data{}
	var closers []func() error

	needS3 := cfg.Source.Kind == "s3" || cfg.Publish.Bucket != ""
	if needS3 {
		client, err := sources.NewS3Client(ctx, cfg.Source.Region)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to init s3: %w", err)
		}
		d.S3 = client
	}

	src, err := newSource(cfg.Source, d.S3, log)
	if err != nil {
		return nil, nil, err
	}

	if cfg.Redis.Addr != "" {
		cache, err := sources.NewRedisCache(ctx, cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to connect to redis: %w", err)
		}
		closers = append(closers, cache.Close)
		src = sources.NewCached(src, cache, cfg.Redis.TTL, log)
		log.Info("redis cache enabled", zap.String("addr", cfg.Redis.Addr), zap.Duration("ttl", cfg.Redis.TTL))
	}
	d.Source = src

	cleanup := func() {
		log.Info("cleaning up data resources")
		for _, c := range closers {
			if err := c(); err != nil {
				log.Warn("failed to close resource", zap.Error(err))
			}
		}
	}

	log.Info("data source ready", zap.String("kind", cfg.Source.Kind))
	return d, cleanup, nil
}

func newSource(cfg conf.SourceConfig, client *s3.Client, log *logger.Logger) (models.DataSource, error) {
	switch cfg.Kind {
	case "memory":
		mem, err := newMemory(splitPaths(cfg.Path), log)
		if err != nil {
			return nil, err
		}
		if cfg.SettingsPath == "" {
			return mem, nil
		}
		return &memoryWithSettings{Memory: mem, settings: sources.NewFile("", cfg.SettingsPath)}, nil
	case "file":
		paths := splitPaths(cfg.Path)
		if len(paths) == 1 {
			return sources.NewFile(paths[0], cfg.SettingsPath), nil
		}
		named := make([]sources.Named, 0, len(paths))
		for i, p := range paths {
			settingsPath := ""
			if i == 0 {
				settingsPath = cfg.SettingsPath
			}
			named = append(named, sources.Named{Name: filepath.Base(p), Source: sources.NewFile(p, settingsPath)})
		}
		return sources.NewAggregate(log, named...), nil
	case "s3":
		return sources.NewS3Source(client, cfg.Bucket, cfg.Key, cfg.SettingsKey, log), nil
	default:
		return nil, fmt.Errorf("unknown source kind %q", cfg.Kind)
	}
}

// memoryWithSettings는 컨텐츠는 메모리에서 제공하고 설정만 source.settings_path 파일에 저장합니다.
type memoryWithSettings struct {
	*sources.Memory
	settings *sources.File
}

func (m *memoryWithSettings) LoadSettings(ctx context.Context) (models.Settings, error) {
	return m.settings.LoadSettings(ctx)
}

func (m *memoryWithSettings) SaveSettings(ctx context.Context, settings models.Settings) error {
	return m.settings.SaveSettings(ctx, settings)
}

// newMemory는 주어진 스냅샷 파일들을 한 번 읽어 메모리에 올립니다. 파일이 없으면 빈 상태로 시작합니다.
func newMemory(paths []string, log *logger.Logger) (*sources.Memory, error) {
	mem := sources.NewMemory(nil, nil)
	if len(paths) == 0 {
		return mem, nil
	}

	var merged sources.Snapshot
	for _, p := range paths {
		snap, err := readSnapshot(p)
		if err != nil {
			return nil, err
		}
		merged.Records = append(merged.Records, snap.Records...)
		merged.Activities = append(merged.Activities, snap.Activities...)
	}
	if err := models.ValidateSet(merged.Records); err != nil {
		return nil, fmt.Errorf("스냅샷 검증 실패: %w", err)
	}

	mem.Replace(merged)
	log.Info("snapshot loaded into memory", zap.Int("records", len(merged.Records)), zap.Strings("paths", paths))
	return mem, nil
}

func readSnapshot(path string) (sources.Snapshot, error) {
	f, err := os.Open(path)
	if err != nil {
		return sources.Snapshot{}, fmt.Errorf("스냅샷 파일 열기 실패: %w", err)
	}
	defer f.Close()
	return sources.DecodeSnapshot(f)
}

func splitPaths(raw string) []string {
	var out []string
	for _, p := range strings.Split(raw, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
