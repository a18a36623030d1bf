package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/xqlib/bookapi/pkg/metrics"
)

// Metrics HTTP请求指标中间件
// 记录请求总数、耗时分布和处理中的请求数
// path标签使用路由模板(如/api/v1/books/:id),避免ID导致的高基数问题
func Metrics() gin.HandlerFunc {
	// 安装时初始化指标,请求处理阶段无需判空
	metrics.InitMetrics()

	return func(c *gin.Context) {
		start := time.Now()

		metrics.HTTPRequestsInProgress.Inc()
		defer metrics.HTTPRequestsInProgress.Dec()

		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}

		metrics.HTTPRequestsTotal.With(map[string]string{
			"method": c.Request.Method,
			"path":   path,
			"status": strconv.Itoa(c.Writer.Status()),
		}).Inc()

		metrics.HTTPRequestDuration.With(map[string]string{
			"method": c.Request.Method,
			"path":   path,
		}).Observe(time.Since(start).Seconds())
	}
}
