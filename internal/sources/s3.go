package sources

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"go.uber.org/zap"

	"scraper-dashboard/internal/models"
	"scraper-dashboard/internal/pkg/logger"
)

// S3API는 S3Source가 사용하는 S3 클라이언트 메서드입니다.
type S3API interface {
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// S3Source는 S3 버킷의 스냅샷 객체를 읽는 DataSource입니다.
type S3Source struct {
	client      S3API
	bucket      string
	key         string
	settingsKey string
	logger      *logger.Logger
}

// NewS3Client는 기본 AWS 설정으로 S3 클라이언트를 생성합니다.
func NewS3Client(ctx context.Context, region string) (*s3.Client, error) {
	var opts []func(*config.LoadOptions) error
	if region != "" {
		opts = append(opts, config.WithRegion(region))
	}

	cfg, err := config.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("AWS 설정 로드 실패: %w", err)
	}
	return s3.NewFromConfig(cfg), nil
}

// NewS3Source는 새로운 S3Source 인스턴스를 생성합니다.
func NewS3Source(client S3API, bucket, key, settingsKey string, log *logger.Logger) *S3Source {
	return &S3Source{
		client:      client,
		bucket:      bucket,
		key:         key,
		settingsKey: settingsKey,
		logger:      logger.OrGlobal(log).Named("s3"),
	}
}

func (s *S3Source) load(ctx context.Context) (Snapshot, error) {
	out, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(s.key),
	})
	if err != nil {
		return Snapshot{}, fmt.Errorf("s3://%s/%s 읽기 실패: %w", s.bucket, s.key, err)
	}
	defer out.Body.Close()
	return DecodeSnapshot(out.Body)
}

func (s *S3Source) Records(ctx context.Context, category string) ([]models.Record, error) {
	snap, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	return inCategory(snap.Records, category), nil
}

func (s *S3Source) Activities(ctx context.Context) ([]models.Activity, error) {
	snap, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	return snap.Activities, nil
}

// LoadSettings는 설정 객체를 읽습니다. 객체가 없으면 기본값을 반환합니다.
func (s *S3Source) LoadSettings(ctx context.Context) (models.Settings, error) {
	out, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(s.settingsKey),
	})
	if err != nil {
		var noSuchKey *types.NoSuchKey
		if errors.As(err, &noSuchKey) {
			s.logger.Info("저장된 설정이 없어 기본값을 사용합니다", zap.String("key", s.settingsKey))
			return models.DefaultSettings(), nil
		}
		return models.Settings{}, fmt.Errorf("s3://%s/%s 읽기 실패: %w", s.bucket, s.settingsKey, err)
	}
	defer out.Body.Close()
	return decodeSettings(out.Body)
}

func (s *S3Source) SaveSettings(ctx context.Context, settings models.Settings) error {
	data, err := json.Marshal(settings)
	if err != nil {
		return err
	}
	return Upload(ctx, s.client, s.bucket, s.settingsKey, "application/json", data, s.logger)
}

// Upload는 body를 S3 객체로 업로드합니다.
func Upload(ctx context.Context, client S3API, bucket, key, contentType string, body []byte, log *logger.Logger) error {
	_, err := client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(body),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return fmt.Errorf("S3 업로드 실패: %w", err)
	}

	logger.OrGlobal(log).Info("S3 업로드 완료",
		zap.String("bucket", bucket),
		zap.String("key", key),
		zap.Int("bytes", len(body)),
	)
	return nil
}
