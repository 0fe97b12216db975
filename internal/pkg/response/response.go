package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Response는 모든 API 응답의 공통 구조입니다.
type Response struct {
	Code    int         `json:"code"`              // 0이면 성공
	Message string      `json:"message,omitempty"` // 오류 메시지
	Data    interface{} `json:"data"`
}

// Success는 200 응답을 보냅니다.
func Success(c *gin.Context, data interface{}) {
	if data == nil {
		data = struct{}{}
	}
	c.JSON(http.StatusOK, Response{Code: 0, Data: data})
}

// Error는 httpStatus와 메시지로 오류 응답을 보냅니다.
func Error(c *gin.Context, httpStatus int, message string) {
	c.JSON(httpStatus, Response{Code: httpStatus, Message: message, Data: struct{}{}})
}

// ErrorWithData는 필드별 검증 오류처럼 추가 정보가 있는 오류 응답을 보냅니다.
func ErrorWithData(c *gin.Context, httpStatus int, message string, data interface{}) {
	c.JSON(httpStatus, Response{Code: httpStatus, Message: message, Data: data})
}

func NotFound(c *gin.Context, message string) {
	Error(c, http.StatusNotFound, message)
}

func InternalError(c *gin.Context, message string) {
	Error(c, http.StatusInternalServerError, message)
}
