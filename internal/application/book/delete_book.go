package book

import (
	"context"

	"github.com/xqlib/bookapi/internal/domain/book"
	"github.com/xqlib/bookapi/pkg/metrics"
)

// DeleteBookUseCase 图书删除用例
type DeleteBookUseCase struct {
	bookService book.Service
}

// NewDeleteBookUseCase 创建删除用例
func NewDeleteBookUseCase(bookService book.Service) *DeleteBookUseCase {
	return &DeleteBookUseCase{
		bookService: bookService,
	}
}

// Execute 执行删除用例
// 删除成功后该ID不再分配给新图书
func (uc *DeleteBookUseCase) Execute(ctx context.Context, id uint) error {
	if err := uc.bookService.DeleteBook(ctx, id); err != nil {
		return err
	}

	metrics.IncBooksDeleted()

	return nil
}
