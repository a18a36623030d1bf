package book

import (
	"context"

	"github.com/xqlib/bookapi/internal/domain/book"
)

// UpdateBookUseCase 图书部分更新用例
type UpdateBookUseCase struct {
	bookService book.Service
}

// NewUpdateBookUseCase 创建更新用例
func NewUpdateBookUseCase(bookService book.Service) *UpdateBookUseCase {
	return &UpdateBookUseCase{
		bookService: bookService,
	}
}

// UpdateBookRequest 更新请求DTO
// 指针字段为nil表示不修改该字段(部分更新语义)
type UpdateBookRequest struct {
	Title     *string
	Author    *string
	Price     *float64
	Available *bool
}

// Execute 执行更新用例
// ID不存在返回book.ErrBookNotFound,提供的字段不合法返回对应校验错误
func (uc *UpdateBookUseCase) Execute(ctx context.Context, id uint, req UpdateBookRequest) (*BookDTO, error) {
	b, err := uc.bookService.UpdateBook(ctx, id, book.UpdateParams{
		Title:     req.Title,
		Author:    req.Author,
		Price:     req.Price,
		Available: req.Available,
	})
	if err != nil {
		return nil, err
	}

	return toDTO(b), nil
}
