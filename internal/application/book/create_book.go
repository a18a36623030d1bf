package book

import (
	"context"

	"github.com/xqlib/bookapi/internal/domain/book"
	"github.com/xqlib/bookapi/pkg/metrics"
)

// CreateBookUseCase 创建图书用例
// 设计说明:
// 1. 应用层负责用例编排,字段校验由领域服务完成
// 2. 输入输出使用DTO,与HTTP层解耦
type CreateBookUseCase struct {
	bookService book.Service
}

// NewCreateBookUseCase 创建用例
func NewCreateBookUseCase(bookService book.Service) *CreateBookUseCase {
	return &CreateBookUseCase{
		bookService: bookService,
	}
}

// CreateBookRequest 创建请求DTO
type CreateBookRequest struct {
	Title     string  // 书名
	Author    string  // 作者
	Price     float64 // 价格
	Available bool    // 是否可售
}

// Execute 执行创建用例
func (uc *CreateBookUseCase) Execute(ctx context.Context, req CreateBookRequest) (*BookDTO, error) {
	b, err := uc.bookService.CreateBook(ctx, req.Title, req.Author, req.Price, req.Available)
	if err != nil {
		return nil, err
	}

	metrics.IncBooksCreated()

	return toDTO(b), nil
}
