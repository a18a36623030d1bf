package book

import (
	"github.com/xqlib/bookapi/internal/domain/book"
)

// timeFormat 响应中的时间格式
const timeFormat = "2006-01-02 15:04:05"

// BookDTO 应用层图书DTO
// 各用例共用的输出结构,与HTTP层解耦
type BookDTO struct {
	ID        uint    `json:"id"`
	Title     string  `json:"title"`
	Author    string  `json:"author"`
	Price     float64 `json:"price"`
	Available bool    `json:"available"`
	CreatedAt string  `json:"created_at"`
	UpdatedAt string  `json:"updated_at"`
}

// toDTO 领域实体 → 应用层DTO
func toDTO(b *book.Book) *BookDTO {
	return &BookDTO{
		ID:        b.ID,
		Title:     b.Title,
		Author:    b.Author,
		Price:     b.Price,
		Available: b.Available,
		CreatedAt: b.CreatedAt.Format(timeFormat),
		UpdatedAt: b.UpdatedAt.Format(timeFormat),
	}
}
