// Package export는 조회 결과를 파일로 내려받을 수 있는 형식으로 변환합니다.
package export

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"scraper-dashboard/internal/models"
)

type Format string

const (
	FormatCSV   Format = "csv"
	FormatJSON  Format = "json"
	FormatPDF   Format = "pdf"
	FormatExcel Format = "excel"
)

var (
	ErrUnknownFormat     = errors.New("알 수 없는 내보내기 형식")
	ErrUnsupportedFormat = errors.New("지원하지 않는 내보내기 형식")
)

// ParseFormat은 문자열을 Format으로 변환합니다.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case FormatCSV, FormatJSON, FormatPDF, FormatExcel:
		return f, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}

// Document는 내보내기 결과 파일입니다.
type Document struct {
	Filename    string
	ContentType string
	Body        []byte
}

var csvHeader = []string{"id", "type", "title", "source", "category", "created_at", "body"}

// Export는 records를 format 형식의 문서로 만듭니다. pdf와 excel은 아직 지원하지 않습니다.
func Export(format Format, records []models.Record, now time.Time) (Document, error) {
	name := "scraped-data-" + now.Format("20060102-150405")

	switch format {
	case FormatCSV:
		body, err := toCSV(records)
		if err != nil {
			return Document{}, err
		}
		return Document{Filename: name + ".csv", ContentType: "text/csv; charset=utf-8", Body: body}, nil
	case FormatJSON:
		body, err := json.MarshalIndent(models.Records(records), "", "  ")
		if err != nil {
			return Document{}, err
		}
		return Document{Filename: name + ".json", ContentType: "application/json", Body: body}, nil
	case FormatPDF, FormatExcel:
		return Document{}, fmt.Errorf("%w: %s", ErrUnsupportedFormat, format)
	default:
		return Document{}, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

func toCSV(records []models.Record) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(csvHeader); err != nil {
		return nil, err
	}
	for _, r := range records {
		b := r.Common()
		row := []string{
			b.ID,
			string(r.Type()),
			b.Title,
			b.Source,
			b.Category,
			b.CreatedAt.UTC().Format(time.RFC3339),
			strings.Join(nonEmpty(models.Body(r)), "\n"),
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}

func nonEmpty(parts []string) []string {
	out := parts[:0:0]
	for _, p := range parts {
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}
