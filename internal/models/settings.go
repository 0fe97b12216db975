package models

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

type ScrapingFrequency string

const (
	FrequencyDaily   ScrapingFrequency = "daily"
	FrequencyWeekly  ScrapingFrequency = "weekly"
	FrequencyMonthly ScrapingFrequency = "monthly"
	FrequencyOnce    ScrapingFrequency = "once"
)

type StorageType string

const (
	StorageLocal StorageType = "local"
	StorageCloud StorageType = "cloud"
)

type RetentionPeriod string

const (
	Retention1Month    RetentionPeriod = "1month"
	Retention3Months   RetentionPeriod = "3months"
	Retention6Months   RetentionPeriod = "6months"
	RetentionUnlimited RetentionPeriod = "unlimited"
)

type ThemeMode string

const (
	ThemeLight  ThemeMode = "light"
	ThemeDark   ThemeMode = "dark"
	ThemeSystem ThemeMode = "system"
)

type LayoutView string

const (
	LayoutGrid    LayoutView = "grid"
	LayoutList    LayoutView = "list"
	LayoutCompact LayoutView = "compact"
)

// ContentTypeToggles는 수집 대상 컨텐츠 종류별 on/off 값입니다.
type ContentTypeToggles struct {
	Articles bool `json:"articles"`
	Images   bool `json:"images"`
	Products bool `json:"products"`
	Reviews  bool `json:"reviews"`
	News     bool `json:"news"`
	Social   bool `json:"social"`
}

// Enabled는 해당 컨텐츠 종류의 수집 여부를 반환합니다.
func (t ContentTypeToggles) Enabled(ct ContentType) bool {
	switch ct {
	case TypeArticle:
		return t.Articles
	case TypeImage:
		return t.Images
	case TypeProduct:
		return t.Products
	case TypeReview:
		return t.Reviews
	case TypeNews:
		return t.News
	case TypeSocial:
		return t.Social
	}
	return false
}

type ExportFormats struct {
	CSV   bool `json:"csv"`
	JSON  bool `json:"json"`
	PDF   bool `json:"pdf"`
	Excel bool `json:"excel"`
}

// Enabled는 내보내기 형식이 설정에서 켜져 있는지 반환합니다.
func (f ExportFormats) Enabled(format string) bool {
	switch format {
	case "csv":
		return f.CSV
	case "json":
		return f.JSON
	case "pdf":
		return f.PDF
	case "excel":
		return f.Excel
	}
	return false
}

type ScrapingSettings struct {
	Frequency    ScrapingFrequency  `json:"frequency"`
	ContentTypes ContentTypeToggles `json:"contentTypes"`
	Sources      []string           `json:"sources"`
}

func (s ScrapingSettings) Validate() error {
	return validation.ValidateStruct(&s,
		validation.Field(&s.Frequency, validation.Required,
			validation.In(FrequencyDaily, FrequencyWeekly, FrequencyMonthly, FrequencyOnce)),
		validation.Field(&s.Sources, validation.Each(validation.Required, is.URL)),
	)
}

type StorageSettings struct {
	Type          StorageType     `json:"type"`
	Retention     RetentionPeriod `json:"retention"`
	ExportFormats ExportFormats   `json:"exportFormats"`
}

func (s StorageSettings) Validate() error {
	return validation.ValidateStruct(&s,
		validation.Field(&s.Type, validation.Required, validation.In(StorageLocal, StorageCloud)),
		validation.Field(&s.Retention, validation.Required,
			validation.In(Retention1Month, Retention3Months, Retention6Months, RetentionUnlimited)),
	)
}

type DisplaySettings struct {
	Theme        ThemeMode  `json:"theme"`
	Layout       LayoutView `json:"layout"`
	ItemsPerPage int        `json:"itemsPerPage"`
}

func (s DisplaySettings) Validate() error {
	return validation.ValidateStruct(&s,
		validation.Field(&s.Theme, validation.Required, validation.In(ThemeLight, ThemeDark, ThemeSystem)),
		validation.Field(&s.Layout, validation.Required, validation.In(LayoutGrid, LayoutList, LayoutCompact)),
		validation.Field(&s.ItemsPerPage, validation.Required, validation.In(10, 20, 50, 100)),
	)
}

// Settings는 설정 화면의 세 탭을 묶은 값입니다.
type Settings struct {
	Scraping ScrapingSettings `json:"scraping"`
	Storage  StorageSettings  `json:"storage"`
	Display  DisplaySettings  `json:"display"`
}

func (s Settings) Validate() error {
	return validation.ValidateStruct(&s,
		validation.Field(&s.Scraping),
		validation.Field(&s.Storage),
		validation.Field(&s.Display),
	)
}

// DefaultSettings는 저장된 설정이 없을 때 사용하는 기본값입니다.
func DefaultSettings() Settings {
	return Settings{
		Scraping: ScrapingSettings{
			Frequency: FrequencyDaily,
			ContentTypes: ContentTypeToggles{
				Articles: true,
				Images:   true,
				Products: true,
				Reviews:  true,
				News:     true,
				Social:   true,
			},
			Sources: []string{
				"https://example.com/blog",
				"https://example.com/products",
				"https://news.example.com",
			},
		},
		Storage: StorageSettings{
			Type:      StorageLocal,
			Retention: Retention6Months,
			ExportFormats: ExportFormats{
				CSV:   true,
				JSON:  true,
				PDF:   true,
				Excel: false,
			},
		},
		Display: DisplaySettings{
			Theme:        ThemeLight,
			Layout:       LayoutGrid,
			ItemsPerPage: 20,
		},
	}
}
