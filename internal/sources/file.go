package sources

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"scraper-dashboard/internal/models"
)

// File은 로컬 디스크의 스냅샷 JSON 파일을 읽는 DataSource입니다.
// 설정은 별도의 JSON 파일에 저장하며 파일이 없으면 기본값을 사용합니다.
type File struct {
	path         string
	settingsPath string
	mu           sync.Mutex
}

// NewFile은 새로운 File 인스턴스를 생성합니다. settingsPath가 비어 있으면 스냅샷 옆의 settings.json을 사용합니다.
func NewFile(path, settingsPath string) *File {
	if settingsPath == "" {
		settingsPath = filepath.Join(filepath.Dir(path), "settings.json")
	}
	return &File{path: path, settingsPath: settingsPath}
}

func (f *File) load() (Snapshot, error) {
	file, err := os.Open(f.path)
	if err != nil {
		return Snapshot{}, fmt.Errorf("스냅샷 파일 열기 실패: %w", err)
	}
	defer file.Close()
	return DecodeSnapshot(file)
}

func (f *File) Records(_ context.Context, category string) ([]models.Record, error) {
	snap, err := f.load()
	if err != nil {
		return nil, err
	}
	return inCategory(snap.Records, category), nil
}

func (f *File) Activities(_ context.Context) ([]models.Activity, error) {
	snap, err := f.load()
	if err != nil {
		return nil, err
	}
	return snap.Activities, nil
}

func (f *File) LoadSettings(_ context.Context) (models.Settings, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	data, err := os.ReadFile(f.settingsPath)
	if errors.Is(err, fs.ErrNotExist) {
		return models.DefaultSettings(), nil
	}
	if err != nil {
		return models.Settings{}, fmt.Errorf("설정 파일 읽기 실패: %w", err)
	}
	return decodeSettings(bytes.NewReader(data))
}

// SaveSettings는 임시 파일에 쓴 뒤 rename하여 설정 파일을 교체합니다.
func (f *File) SaveSettings(_ context.Context, settings models.Settings) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	data, err := json.MarshalIndent(settings, "", "  ")
	if err != nil {
		return err
	}

	tmp := f.settingsPath + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("설정 파일 쓰기 실패: %w", err)
	}
	if err := os.Rename(tmp, f.settingsPath); err != nil {
		return fmt.Errorf("설정 파일 교체 실패: %w", err)
	}
	return nil
}
