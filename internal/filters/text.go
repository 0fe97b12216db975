package filters

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// PlainText는 HTML 마크업이 섞인 본문에서 텍스트만 추출합니다.
// 마크업이 없거나 파싱에 실패하면 입력을 그대로 반환합니다.
func PlainText(s string) string {
	if !strings.Contains(s, "<") {
		return s
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(s))
	if err != nil {
		return s
	}
	doc.Find("script, style").Remove()
	return strings.Join(strings.Fields(doc.Text()), " ")
}
