package models

import (
	"errors"
	"fmt"
	"time"
)

// ContentType은 수집된 컨텐츠의 종류를 나타냅니다.
type ContentType string

const (
	TypeArticle ContentType = "article"
	TypeImage   ContentType = "image"
	TypeProduct ContentType = "product"
	TypeNews    ContentType = "news"
	TypeSocial  ContentType = "social"
	TypeReview  ContentType = "review"
)

// ContentTypes는 지원하는 모든 컨텐츠 종류를 고정된 순서로 반환합니다.
func ContentTypes() []ContentType {
	return []ContentType{TypeArticle, TypeImage, TypeProduct, TypeNews, TypeSocial, TypeReview}
}

// ParseContentType은 문자열을 ContentType으로 변환합니다.
func ParseContentType(s string) (ContentType, error) {
	for _, t := range ContentTypes() {
		if string(t) == s {
			return t, nil
		}
	}
	return "", fmt.Errorf("알 수 없는 컨텐츠 타입: %q", s)
}

// Base는 모든 컨텐츠가 공통으로 가지는 필드입니다.
type Base struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Source    string    `json:"source"`
	Category  string    `json:"category,omitempty"`
	CreatedAt time.Time `json:"timestamp"`
}

// Common은 공통 필드의 복사본을 반환합니다.
func (b Base) Common() Base { return b }

// Record는 수집된 컨텐츠 한 건입니다.
// Article, Image, Product, News, Social, Review 외의 타입은 Record가 될 수 없습니다.
type Record interface {
	Type() ContentType
	Common() Base
	isRecord()
}

type Article struct {
	Base
	Content string `json:"content"`
	Summary string `json:"summary"`
}

type Image struct {
	Base
	ImageURL   string `json:"imageUrl"`
	Resolution string `json:"resolution"`
	Format     string `json:"format"`
	FileSize   string `json:"fileSize,omitempty"`
	License    string `json:"license,omitempty"`
}

type Product struct {
	Base
	ImageURL       string   `json:"imageUrl"`
	Price          string   `json:"price"`
	Rating         float64  `json:"rating"`
	ReviewCount    int      `json:"reviewCount"`
	Description    string   `json:"description"`
	Specifications []string `json:"specifications"`
}

type News struct {
	Base
	Content string `json:"content"`
	Summary string `json:"summary"`
}

type Social struct {
	Base
	Username     string `json:"username"`
	Handle       string `json:"handle"`
	ProfileImage string `json:"profileImage"`
	Content      string `json:"content"`
	LikeCount    int    `json:"likes"`
	CommentCount int    `json:"comments"`
	ShareCount   int    `json:"shares"`
}

type Review struct {
	Base
	Rating   float64 `json:"rating"`
	Content  string  `json:"content"`
	Reviewer string  `json:"reviewer"`
}

func (Article) Type() ContentType { return TypeArticle }
func (Image) Type() ContentType   { return TypeImage }
func (Product) Type() ContentType { return TypeProduct }
func (News) Type() ContentType    { return TypeNews }
func (Social) Type() ContentType  { return TypeSocial }
func (Review) Type() ContentType  { return TypeReview }

func (Article) isRecord() {}
func (Image) isRecord()   {}
func (Product) isRecord() {}
func (News) isRecord()    {}
func (Social) isRecord()  {}
func (Review) isRecord()  {}

// Normalize는 포인터로 전달된 컨텐츠를 값으로 바꿔 반환합니다.
// nil이나 nil 포인터는 ErrNilRecord입니다.
func Normalize(r Record) (Record, error) {
	switch v := r.(type) {
	case nil:
		return nil, ErrNilRecord
	case *Article:
		return deref(v)
	case *Image:
		return deref(v)
	case *Product:
		return deref(v)
	case *News:
		return deref(v)
	case *Social:
		return deref(v)
	case *Review:
		return deref(v)
	default:
		return r, nil
	}
}

func deref[T Record](p *T) (Record, error) {
	if p == nil {
		return nil, ErrNilRecord
	}
	return *p, nil
}

// Body는 검색 대상이 되는 본문 필드들을 반환합니다. 본문이 없는 타입은 nil입니다.
func Body(r Record) []string {
	r, err := Normalize(r)
	if err != nil {
		return nil
	}
	switch v := r.(type) {
	case Article:
		return []string{v.Content, v.Summary}
	case News:
		return []string{v.Content, v.Summary}
	case Product:
		return []string{v.Description}
	case Social:
		return []string{v.Content}
	case Review:
		return []string{v.Content}
	case Image:
		return nil
	default:
		panic(fmt.Sprintf("models: 처리되지 않은 Record 타입 %T", r))
	}
}

// PreviewImage는 카드에 표시할 대표 이미지 URL을 반환합니다.
func PreviewImage(r Record) string {
	r, err := Normalize(r)
	if err != nil {
		return ""
	}
	switch v := r.(type) {
	case Image:
		return v.ImageURL
	case Product:
		return v.ImageURL
	case Social:
		return v.ProfileImage
	case Article, News, Review:
		return ""
	default:
		panic(fmt.Sprintf("models: 처리되지 않은 Record 타입 %T", r))
	}
}

var (
	ErrMissingID     = errors.New("컨텐츠 ID가 비어 있습니다")
	ErrRatingRange   = errors.New("평점은 0과 5 사이여야 합니다")
	ErrDuplicateID   = errors.New("중복된 컨텐츠 ID")
	ErrNegativeCount = errors.New("카운트는 음수일 수 없습니다")
	ErrNilRecord     = errors.New("컨텐츠가 nil입니다")
	ErrPointerRecord = errors.New("컨텐츠는 포인터가 아닌 값으로 저장해야 합니다")
)

// Validate는 단일 컨텐츠의 불변 조건을 검사합니다.
func Validate(r Record) error {
	v, err := Normalize(r)
	if err != nil {
		return err
	}
	switch r.(type) {
	case *Article, *Image, *Product, *News, *Social, *Review:
		return fmt.Errorf("%s: %w", v.Common().ID, ErrPointerRecord)
	}
	if r.Common().ID == "" {
		return ErrMissingID
	}

	switch v := r.(type) {
	case Product:
		if v.Rating < 0 || v.Rating > 5 {
			return fmt.Errorf("%s: %w", v.ID, ErrRatingRange)
		}
		if v.ReviewCount < 0 {
			return fmt.Errorf("%s: %w", v.ID, ErrNegativeCount)
		}
	case Review:
		if v.Rating < 0 || v.Rating > 5 {
			return fmt.Errorf("%s: %w", v.ID, ErrRatingRange)
		}
	case Social:
		if v.LikeCount < 0 || v.CommentCount < 0 || v.ShareCount < 0 {
			return fmt.Errorf("%s: %w", v.ID, ErrNegativeCount)
		}
	}
	return nil
}

// ValidateSet은 후보 집합 전체를 검사합니다. ID는 집합 안에서 유일해야 합니다.
func ValidateSet(records []Record) error {
	seen := make(map[string]struct{}, len(records))
	for _, r := range records {
		if err := Validate(r); err != nil {
			return err
		}
		id := r.Common().ID
		if _, ok := seen[id]; ok {
			return fmt.Errorf("%s: %w", id, ErrDuplicateID)
		}
		seen[id] = struct{}{}
	}
	return nil
}
