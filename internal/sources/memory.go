package sources

import (
	"context"
	"sync"

	"scraper-dashboard/internal/models"
)

// Memory는 메모리에 스냅샷을 보관하는 DataSource입니다.
type Memory struct {
	mu         sync.RWMutex
	records    []models.Record
	activities []models.Activity
	settings   models.Settings
}

// NewMemory는 새로운 Memory 인스턴스를 생성합니다.
func NewMemory(records []models.Record, activities []models.Activity) *Memory {
	return &Memory{
		records:    append([]models.Record(nil), records...),
		activities: append([]models.Activity(nil), activities...),
		settings:   models.DefaultSettings(),
	}
}

// Replace는 보관 중인 스냅샷을 교체합니다.
func (m *Memory) Replace(snap Snapshot) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.records = append([]models.Record(nil), snap.Records...)
	m.activities = append([]models.Activity(nil), snap.Activities...)
}

func (m *Memory) Records(_ context.Context, category string) ([]models.Record, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return inCategory(m.records, category), nil
}

func (m *Memory) Activities(_ context.Context) ([]models.Activity, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]models.Activity(nil), m.activities...), nil
}

func (m *Memory) LoadSettings(_ context.Context) (models.Settings, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.settings, nil
}

func (m *Memory) SaveSettings(_ context.Context, settings models.Settings) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.settings = settings
	return nil
}
