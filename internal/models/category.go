package models

import "time"

// Category는 홈 화면의 카테고리 카드 한 장에 해당하는 요약 정보입니다.
type Category struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Count       int       `json:"count"`
	LastUpdated time.Time `json:"lastUpdated"`
	Images      []string  `json:"images"`
}
