package server

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"

	"scraper-dashboard/internal/query"
)

var errBadParam = errors.New("잘못된 요청 파라미터")

// parseQuery는 요청 파라미터를 query.Query로 변환합니다.
// type은 여러 번 주거나 쉼표로 구분할 수 있습니다.
func parseQuery(c *gin.Context, defaultPageSize int) (query.Query, error) {
	page, err := parseInt(c, "page", 1)
	if err != nil {
		return query.Query{}, err
	}
	limit, err := parseInt(c, "limit", defaultPageSize)
	if err != nil {
		return query.Query{}, err
	}

	q, err := query.Params{
		Types:  c.QueryArray("type"),
		Search: c.Query("q"),
		From:   c.Query("from"),
		To:     c.Query("to"),
		Sort:   c.Query("sort"),
	}.Build(defaultPageSize)
	if err != nil {
		return query.Query{}, err
	}

	// Build는 0을 기본값으로 바꾸므로 명시된 값은 그대로 넘겨 엔진이 검증하게 합니다.
	q.Page, q.PageSize = page, limit
	return q, nil
}

func parseInt(c *gin.Context, name string, def int) (int, error) {
	raw := c.Query(name)
	if raw == "" {
		return def, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %s=%q", errBadParam, name, raw)
	}
	return n, nil
}
