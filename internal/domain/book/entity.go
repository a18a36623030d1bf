package book

import (
	"time"
	"unicode/utf8"
)

// 字段约束
const (
	MaxTitleLen  = 200 // 书名最大长度(字符数)
	MaxAuthorLen = 100 // 作者名最大长度(字符数)
)

// Book 图书实体(聚合根)
// 设计说明:
// 1. ID由仓储在创建时分配,调用方不可指定,且删除后不复用
// 2. Price使用float64,与API契约中的十进制价格一致
// 3. Available表示是否可售,创建时默认为true
type Book struct {
	ID        uint
	Title     string  // 书名
	Author    string  // 作者
	Price     float64 // 价格
	Available bool    // 是否可售
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewBook 创建新图书(工厂方法)
// 字段校验由领域服务负责,此处只负责组装
func NewBook(title, author string, price float64, available bool) *Book {
	now := time.Now()
	return &Book{
		Title:     title,
		Author:    author,
		Price:     price,
		Available: available,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// UpdateTitle 更新书名(领域行为)
// 业务规则:书名非空且不超过MaxTitleLen
func (b *Book) UpdateTitle(title string) error {
	if title == "" || utf8.RuneCountInString(title) > MaxTitleLen {
		return ErrInvalidTitle
	}
	b.Title = title
	b.UpdatedAt = time.Now()
	return nil
}

// UpdateAuthor 更新作者(领域行为)
// 业务规则:作者非空且不超过MaxAuthorLen
func (b *Book) UpdateAuthor(author string) error {
	if author == "" || utf8.RuneCountInString(author) > MaxAuthorLen {
		return ErrInvalidAuthor
	}
	b.Author = author
	b.UpdatedAt = time.Now()
	return nil
}

// UpdatePrice 更新价格(领域行为)
// 业务规则:价格不能为负数
func (b *Book) UpdatePrice(price float64) error {
	if price < 0 {
		return ErrInvalidPrice
	}
	b.Price = price
	b.UpdatedAt = time.Now()
	return nil
}

// SetAvailable 更新可售状态
func (b *Book) SetAvailable(available bool) {
	b.Available = available
	b.UpdatedAt = time.Now()
}
