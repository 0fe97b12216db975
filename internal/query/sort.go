package query

import (
	"sort"
	"strings"

	"scraper-dashboard/internal/models"
)

// sortRecords는 key 기준으로 안정 정렬합니다. 기준 값이 같으면 ID 오름차순입니다.
// 알 수 없는 key는 latest로 처리합니다.
func sortRecords(records []models.Record, key SortKey) {
	primary := comparator(key)
	sort.SliceStable(records, func(i, j int) bool {
		a, b := records[i].Common(), records[j].Common()
		if c := primary(a, b); c != 0 {
			return c < 0
		}
		return a.ID < b.ID
	})
}

func comparator(key SortKey) func(a, b models.Base) int {
	switch key {
	case SortOldest:
		return func(a, b models.Base) int { return a.CreatedAt.Compare(b.CreatedAt) }
	case SortTitleAsc:
		return func(a, b models.Base) int { return compareTitle(a.Title, b.Title) }
	case SortTitleDesc:
		return func(a, b models.Base) int { return compareTitle(b.Title, a.Title) }
	default:
		return func(a, b models.Base) int { return b.CreatedAt.Compare(a.CreatedAt) }
	}
}

func compareTitle(a, b string) int {
	return strings.Compare(strings.ToLower(a), strings.ToLower(b))
}
