package main

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/xqlib/bookapi/internal/infrastructure/config"
	"github.com/xqlib/bookapi/internal/interface/http/handler"
	"github.com/xqlib/bookapi/internal/interface/http/middleware"
	"github.com/xqlib/bookapi/pkg/metrics"
	"github.com/xqlib/bookapi/pkg/response"
)

// provideGinEngine 创建并配置Gin引擎
// 路由注册集中在这里,Wire会自动注入所需的Handler
func provideGinEngine(cfg *config.Config, bookHandler *handler.BookHandler) *gin.Engine {
	// 设置运行模式
	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	// 初始化Prometheus指标
	metrics.InitMetrics()

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.Logger())
	r.Use(middleware.CORS())
	r.Use(middleware.Metrics())

	// 欢迎页
	r.GET("/", func(c *gin.Context) {
		response.Success(c, gin.H{
			"message": "欢迎使用图书API",
			"version": "1.0.0",
			"docs":    "/swagger/index.html",
		})
	})

	// 健康检查
	r.GET("/ping", func(c *gin.Context) {
		response.Success(c, gin.H{
			"message": "pong",
			"status":  "healthy",
		})
	})

	// Prometheus指标端点
	r.GET("/metrics", gin.WrapH(metrics.Handler()))

	// Swagger文档路由
	// 访问 http://localhost:8080/swagger/index.html 查看API文档
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// API路由组
	v1 := r.Group("/api/v1")
	{
		books := v1.Group("/books")
		{
			books.POST("", bookHandler.CreateBook)
			books.GET("", bookHandler.ListBooks)
			books.GET("/:id", bookHandler.GetBook)
			books.PUT("/:id", bookHandler.UpdateBook)
			books.DELETE("/:id", bookHandler.DeleteBook)
		}
	}

	return r
}
