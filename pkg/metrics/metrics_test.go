package metrics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestInitMetrics 测试指标初始化
func TestInitMetrics(t *testing.T) {
	InitMetrics()

	require.NotNil(t, HTTPRequestsTotal)
	require.NotNil(t, HTTPRequestDuration)
	require.NotNil(t, HTTPRequestsInProgress)
	require.NotNil(t, BooksCreatedTotal)
	require.NotNil(t, BooksDeletedTotal)

	// 重复初始化不应panic(promauto重复注册会panic,由initialized标记拦截)
	assert.NotPanics(t, InitMetrics)
}

// TestBusinessCounters 测试业务计数便捷函数
func TestBusinessCounters(t *testing.T) {
	InitMetrics()

	assert.NotPanics(t, IncBooksCreated)
	assert.NotPanics(t, IncBooksDeleted)
}

// TestHandler 指标暴露处理器可用
func TestHandler(t *testing.T) {
	InitMetrics()
	assert.NotNil(t, Handler())
}
