// Package main 图书API服务入口
//
// @title        图书API
// @version      1.0.0
// @description  基于内存存储的图书CRUD服务
// @BasePath     /
// @schemes      http
package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/xqlib/bookapi/internal/infrastructure/config"
	"github.com/xqlib/bookapi/pkg/logger"

	// swag生成的接口文档,/swagger/*any依赖其init注册
	_ "github.com/xqlib/bookapi/docs"
)

func main() {
	// 1. 加载配置
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("加载配置失败: %v", err)
	}

	// 2. 初始化日志
	logger.Setup(cfg.Log.Level, cfg.Log.Format)

	// 3. 依赖注入(wire生成,见wire_gen.go)
	r := InitializeApp(cfg)

	// 4. 启动HTTP服务
	srv := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		slog.Info("服务启动",
			"addr", cfg.Server.Addr(),
			"mode", cfg.Server.Mode,
			"docs", "/swagger/index.html",
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("启动服务失败: %v", err)
		}
	}()

	// 5. 优雅停机
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("服务停止中")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("服务停止失败", "err", err)
	}
	slog.Info("服务已停止")
}
