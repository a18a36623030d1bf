package book

import (
	"context"

	"github.com/xqlib/bookapi/internal/domain/book"
)

// ListBooksUseCase 图书列表查询用例
type ListBooksUseCase struct {
	bookService book.Service
}

// NewListBooksUseCase 创建列表查询用例
func NewListBooksUseCase(bookService book.Service) *ListBooksUseCase {
	return &ListBooksUseCase{
		bookService: bookService,
	}
}

// ListBooksResponse 列表查询响应DTO
type ListBooksResponse struct {
	List  []*BookDTO `json:"list"`
	Total int        `json:"total"`
}

// Execute 执行列表查询用例
// 按插入顺序返回全部图书,集合为空时返回空列表
func (uc *ListBooksUseCase) Execute(ctx context.Context) (*ListBooksResponse, error) {
	books, err := uc.bookService.ListBooks(ctx)
	if err != nil {
		return nil, err
	}

	list := make([]*BookDTO, len(books))
	for i, b := range books {
		list[i] = toDTO(b)
	}

	return &ListBooksResponse{
		List:  list,
		Total: len(list),
	}, nil
}
