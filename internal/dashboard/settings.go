package dashboard

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"scraper-dashboard/internal/models"
)

// Settings는 현재 저장된 설정을 반환합니다.
func (s *Service) Settings(ctx context.Context) (models.Settings, error) {
	settings, err := s.source.LoadSettings(ctx)
	if err != nil {
		return models.Settings{}, fmt.Errorf("설정 조회 실패: %w", err)
	}
	return settings, nil
}

// UpdateScraping은 수집 설정 탭을 검증한 뒤 저장합니다.
func (s *Service) UpdateScraping(ctx context.Context, section models.ScrapingSettings) (models.Settings, error) {
	return s.update(ctx, "scraping", section, func(all *models.Settings) { all.Scraping = section })
}

// UpdateStorage는 저장소 설정 탭을 검증한 뒤 저장합니다.
func (s *Service) UpdateStorage(ctx context.Context, section models.StorageSettings) (models.Settings, error) {
	return s.update(ctx, "storage", section, func(all *models.Settings) { all.Storage = section })
}

// UpdateDisplay는 화면 설정 탭을 검증한 뒤 저장합니다.
func (s *Service) UpdateDisplay(ctx context.Context, section models.DisplaySettings) (models.Settings, error) {
	return s.update(ctx, "display", section, func(all *models.Settings) { all.Display = section })
}

type validatable interface {
	Validate() error
}

func (s *Service) update(ctx context.Context, name string, section validatable, apply func(*models.Settings)) (models.Settings, error) {
	if err := section.Validate(); err != nil {
		return models.Settings{}, fmt.Errorf("%w: %s: %w", ErrInvalidSettings, name, err)
	}

	settings, err := s.source.LoadSettings(ctx)
	if err != nil {
		return models.Settings{}, fmt.Errorf("설정 조회 실패: %w", err)
	}
	apply(&settings)

	if err := s.source.SaveSettings(ctx, settings); err != nil {
		return models.Settings{}, fmt.Errorf("설정 저장 실패: %w", err)
	}

	s.logger.WithContext(ctx).Info("설정 저장", zap.String("section", name))
	return settings, nil
}
