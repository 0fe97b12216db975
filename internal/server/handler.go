package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"go.uber.org/zap"

	"scraper-dashboard/internal/dashboard"
	"scraper-dashboard/internal/export"
	"scraper-dashboard/internal/models"
	"scraper-dashboard/internal/pkg/logger"
	"scraper-dashboard/internal/pkg/response"
	"scraper-dashboard/internal/query"
)

// Handler는 대시보드 API 핸들러 모음입니다.
type Handler struct {
	svc      *dashboard.Service
	pageSize int
	logger   *logger.Logger
}

func NewHandler(svc *dashboard.Service, pageSize int, log *logger.Logger) *Handler {
	return &Handler{svc: svc, pageSize: pageSize, logger: logger.OrGlobal(log).Named("http")}
}

// ListContent는 GET /api/v1/content 요청을 처리합니다.
func (h *Handler) ListContent(c *gin.Context) {
	q, err := parseQuery(c, h.pageSize)
	if err != nil {
		h.fail(c, err)
		return
	}

	listing, err := h.svc.ListContent(c.Request.Context(), c.Query("category"), q)
	if err != nil {
		h.fail(c, err)
		return
	}
	response.Success(c, listing)
}

func (h *Handler) GetContent(c *gin.Context) {
	r, err := h.svc.GetContent(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, err)
		return
	}

	body, err := models.EncodeRecord(r)
	if err != nil {
		h.fail(c, err)
		return
	}
	response.Success(c, json.RawMessage(body))
}

func (h *Handler) Categories(c *gin.Context) {
	cats, err := h.svc.Categories(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}
	response.Success(c, cats)
}

func (h *Handler) Activities(c *gin.Context) {
	limit, err := parseInt(c, "limit", 0)
	if err != nil {
		h.fail(c, err)
		return
	}

	activities, err := h.svc.RecentActivities(c.Request.Context(), limit)
	if err != nil {
		h.fail(c, err)
		return
	}
	response.Success(c, activities)
}

func (h *Handler) GetSettings(c *gin.Context) {
	settings, err := h.svc.Settings(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}
	response.Success(c, settings)
}

func (h *Handler) UpdateScraping(c *gin.Context) {
	var req models.ScrapingSettings
	if err := c.ShouldBindJSON(&req); err != nil {
		h.fail(c, fmt.Errorf("%w: %v", errBadParam, err))
		return
	}
	h.settingsResult(c)(h.svc.UpdateScraping(c.Request.Context(), req))
}

func (h *Handler) UpdateStorage(c *gin.Context) {
	var req models.StorageSettings
	if err := c.ShouldBindJSON(&req); err != nil {
		h.fail(c, fmt.Errorf("%w: %v", errBadParam, err))
		return
	}
	h.settingsResult(c)(h.svc.UpdateStorage(c.Request.Context(), req))
}

func (h *Handler) UpdateDisplay(c *gin.Context) {
	var req models.DisplaySettings
	if err := c.ShouldBindJSON(&req); err != nil {
		h.fail(c, fmt.Errorf("%w: %v", errBadParam, err))
		return
	}
	h.settingsResult(c)(h.svc.UpdateDisplay(c.Request.Context(), req))
}

func (h *Handler) settingsResult(c *gin.Context) func(models.Settings, error) {
	return func(settings models.Settings, err error) {
		if err != nil {
			h.fail(c, err)
			return
		}
		response.Success(c, settings)
	}
}

// Export는 필터 조건에 맞는 전체 컨텐츠를 파일로 내려줍니다. format 기본값은 json입니다.
func (h *Handler) Export(c *gin.Context) {
	format, err := export.ParseFormat(c.DefaultQuery("format", string(export.FormatJSON)))
	if err != nil {
		h.fail(c, fmt.Errorf("%w: %v", errBadParam, err))
		return
	}

	q, err := parseQuery(c, h.pageSize)
	if err != nil {
		h.fail(c, err)
		return
	}

	doc, err := h.svc.Export(c.Request.Context(), format, c.Query("category"), q)
	if err != nil {
		h.fail(c, err)
		return
	}

	c.Header("Content-Disposition", "attachment; filename="+strconv.Quote(doc.Filename))
	c.Data(http.StatusOK, doc.ContentType, doc.Body)
}

// fail은 서비스 오류를 HTTP 상태 코드로 변환해 응답합니다.
func (h *Handler) fail(c *gin.Context, err error) {
	status := statusOf(err)
	if status >= http.StatusInternalServerError {
		h.logger.WithContext(c.Request.Context()).Error("요청 처리 실패", zap.Error(err))
		response.InternalError(c, "internal server error")
		return
	}

	var verrs validation.Errors
	if errors.As(err, &verrs) {
		response.ErrorWithData(c, status, err.Error(), verrs)
		return
	}
	response.Error(c, status, err.Error())
}

func statusOf(err error) int {
	switch {
	case errors.Is(err, errBadParam),
		errors.Is(err, query.ErrInvalidArgument),
		errors.Is(err, dashboard.ErrInvalidSettings):
		return http.StatusBadRequest
	case errors.Is(err, dashboard.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, dashboard.ErrFormatDisabled):
		return http.StatusForbidden
	case errors.Is(err, export.ErrUnsupportedFormat):
		return http.StatusUnsupportedMediaType
	default:
		return http.StatusInternalServerError
	}
}
