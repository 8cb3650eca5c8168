package service

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/selfjournal/journal-api/cmd/service/handler"
	"github.com/selfjournal/journal-api/internal/core"
	"github.com/selfjournal/journal-api/pkg/safe"
)

func serve(core *core.Core) error {
	httpSrv := &handler.HttpSrv{
		Core:   core,
		Engine: gin.Default(),
	}
	setupHttpRouter(httpSrv)

	addr := core.Cfg().Addr
	if addr == "" {
		addr = ":8080"
	}
	server := &http.Server{
		Addr:    addr,
		Handler: httpSrv.Engine,
	}

	go safe.Run(func() {
		slog.Info("http server listening", slog.String("addr", addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("http server exited", slog.String("error", err.Error()))
		}
	})

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	return server.Shutdown(ctx)
}

func GetIPLimitBuilder(core *core.Core) func(key string) gin.HandlerFunc {
	return func(key string) gin.HandlerFunc {
		return UseLimit(core, key, func(c *gin.Context) string {
			return key + ":" + c.ClientIP()
		})
	}
}

func setupHttpRouter(s *handler.HttpSrv) {
	ipLimit := GetIPLimitBuilder(s.Core)

	s.Engine.Use(I18n(), Cors, RequestMetrics(s.Core))

	s.Engine.GET("/metrics", gin.WrapH(promhttp.HandlerFor(s.Core.Metrics().Registry(), promhttp.HandlerOpts{})))

	apiV1 := s.Engine.Group("/api/v1")
	{
		apiV1.GET("/health", s.Health)

		apiV1.GET("/prompt/today", s.GetTodayPrompt)

		entry := apiV1.Group("/entry")
		{
			entry.POST("", ipLimit("create_entry"), s.CreateEntry)
			entry.GET("/list", s.ListEntries)
			entry.GET("/recent", s.ListRecentEntries)
		}

		apiV1.POST("/insights/weekly", ipLimit("insights"), s.WeeklyInsights)

		apiV1.POST("/stt/transcribe", ipLimit("transcribe"), s.Transcribe)
	}
}
