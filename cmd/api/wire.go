//go:build wireinject
// +build wireinject

// Wire依赖注入配置文件
//
// 依赖链: Repository ← Service ← UseCase ← Handler ← Engine
// 修改Provider后运行 `wire gen ./cmd/api` 重新生成wire_gen.go
package main

import (
	"github.com/gin-gonic/gin"
	"github.com/google/wire"

	appbook "github.com/xqlib/bookapi/internal/application/book"
	"github.com/xqlib/bookapi/internal/domain/book"
	"github.com/xqlib/bookapi/internal/infrastructure/config"
	"github.com/xqlib/bookapi/internal/infrastructure/persistence/memory"
	"github.com/xqlib/bookapi/internal/interface/http/handler"
)

// repositorySet 仓储层依赖
var repositorySet = wire.NewSet(
	memory.NewBookRepository, // 图书仓储(内存)
)

// domainSet 领域层依赖
var domainSet = wire.NewSet(
	book.NewService, // 图书领域服务
)

// applicationSet 应用层依赖
var applicationSet = wire.NewSet(
	appbook.NewCreateBookUseCase, // 创建图书用例
	appbook.NewListBooksUseCase,  // 图书列表用例
	appbook.NewGetBookUseCase,    // 图书详情用例
	appbook.NewUpdateBookUseCase, // 更新图书用例
	appbook.NewDeleteBookUseCase, // 删除图书用例
)

// handlerSet HTTP处理器依赖
var handlerSet = wire.NewSet(
	handler.NewBookHandler, // 图书处理器
)

// InitializeApp 初始化整个应用
// 配置由main加载后传入,方便测试时注入不同配置
func InitializeApp(cfg *config.Config) *gin.Engine {
	wire.Build(
		repositorySet,
		domainSet,
		applicationSet,
		handlerSet,
		provideGinEngine,
	)
	return nil
}
