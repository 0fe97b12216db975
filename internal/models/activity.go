package models

import "time"

// ActivityStatus는 수집 작업의 결과 상태입니다.
type ActivityStatus string

const (
	StatusCompleted ActivityStatus = "completed"
	StatusPartial   ActivityStatus = "partial"
	StatusError     ActivityStatus = "error"
)

// Activity는 최근 수집 작업 한 건의 기록입니다.
type Activity struct {
	ID        string         `json:"id"`
	Date      time.Time      `json:"date"`
	Source    string         `json:"source"`
	Type      string         `json:"type"`
	ItemCount int            `json:"itemCount"`
	Status    ActivityStatus `json:"status"`
	Details   string         `json:"details,omitempty"`
}

// StatusLabel은 화면에 표시할 상태 문구를 반환합니다.
// partial 상태의 Details는 형식이 정해져 있지 않으므로 해석하지 않고 그대로 붙입니다.
func (a Activity) StatusLabel() string {
	switch a.Status {
	case StatusCompleted:
		return "Completed"
	case StatusPartial:
		if a.Details != "" {
			return "Partial (" + a.Details + ")"
		}
		return "Partial"
	case StatusError:
		return "Error"
	default:
		return string(a.Status)
	}
}
