// Package server는 대시보드 서비스를 gin HTTP API로 노출합니다.
package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"scraper-dashboard/internal/conf"
	"scraper-dashboard/internal/dashboard"
	"scraper-dashboard/internal/pkg/logger"
	"scraper-dashboard/internal/pkg/response"
)

// HTTPServer는 gin 라우터와 http.Server를 묶은 값입니다.
type HTTPServer struct {
	server *http.Server
	logger *logger.Logger
}

// NewRouter는 미들웨어와 라우트가 등록된 gin 엔진을 만듭니다.
func NewRouter(svc *dashboard.Service, pageSize int, log *logger.Logger) *gin.Engine {
	log = logger.OrGlobal(log)
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()
	router.Use(Recovery(log), RequestLogger(log))

	router.GET("/health", NewHealthController().HealthHandler)

	h := NewHandler(svc, pageSize, log)
	v1 := router.Group("/api/v1")
	{
		v1.GET("/content", h.ListContent)
		v1.GET("/content/:id", h.GetContent)
		v1.GET("/categories", h.Categories)
		v1.GET("/activities", h.Activities)
		v1.GET("/export", h.Export)

		settings := v1.Group("/settings")
		settings.GET("", h.GetSettings)
		settings.PUT("/scraping", h.UpdateScraping)
		settings.PUT("/storage", h.UpdateStorage)
		settings.PUT("/display", h.UpdateDisplay)
	}

	router.NoRoute(func(c *gin.Context) {
		response.NotFound(c, "route not found")
	})
	return router
}

// NewHTTPServer는 새로운 HTTPServer 인스턴스를 생성합니다.
func NewHTTPServer(cfg conf.ServerConfig, pageSize int, svc *dashboard.Service, log *logger.Logger) *HTTPServer {
	log = logger.OrGlobal(log).Named("server")
	return &HTTPServer{
		server: &http.Server{
			Addr:              cfg.Addr(),
			Handler:           NewRouter(svc, pageSize, log),
			ReadHeaderTimeout: 10 * time.Second,
		},
		logger: log,
	}
}

// Start는 서버를 실행하고 종료될 때까지 블록합니다.
func (s *HTTPServer) Start() error {
	s.logger.Info("HTTP server starting", zap.String("addr", s.server.Addr))
	if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Stop은 진행 중인 요청이 끝나기를 기다린 뒤 서버를 종료합니다.
func (s *HTTPServer) Stop(ctx context.Context) error {
	s.logger.Info("HTTP server stopping")
	return s.server.Shutdown(ctx)
}
