package sources

import (
	"encoding/json"
	"fmt"
	"io"

	"scraper-dashboard/internal/models"
)

// Snapshot은 외부 수집기가 내보낸 컨텐츠와 작업 기록 묶음입니다.
type Snapshot struct {
	Records    models.Records    `json:"records"`
	Activities []models.Activity `json:"activities"`
}

// DecodeSnapshot은 스냅샷 JSON을 읽고 컨텐츠 불변 조건을 검사합니다.
func DecodeSnapshot(r io.Reader) (Snapshot, error) {
	var snap Snapshot
	if err := json.NewDecoder(r).Decode(&snap); err != nil {
		return Snapshot{}, fmt.Errorf("스냅샷 파싱 실패: %w", err)
	}
	if err := models.ValidateSet(snap.Records); err != nil {
		return Snapshot{}, fmt.Errorf("스냅샷 검증 실패: %w", err)
	}
	return snap, nil
}

// inCategory는 category에 속한 컨텐츠만 새 슬라이스로 반환합니다. 빈 category는 전체입니다.
func inCategory(records []models.Record, category string) []models.Record {
	out := make([]models.Record, 0, len(records))
	for _, r := range records {
		if category == "" || r.Common().Category == category {
			out = append(out, r)
		}
	}
	return out
}

func decodeSettings(r io.Reader) (models.Settings, error) {
	settings := models.DefaultSettings()
	if err := json.NewDecoder(r).Decode(&settings); err != nil {
		return models.Settings{}, fmt.Errorf("설정 파싱 실패: %w", err)
	}
	return settings, nil
}
