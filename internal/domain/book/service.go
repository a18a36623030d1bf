package book

import (
	"context"
	"unicode/utf8"
)

// UpdateParams 部分更新参数
// nil表示不修改该字段
type UpdateParams struct {
	Title     *string
	Author    *string
	Price     *float64
	Available *bool
}

// Service 图书领域服务接口
// 设计说明:
// 1. 领域服务封装业务规则校验和CRUD编排
// 2. 不依赖具体的Repository实现(依赖倒置)
type Service interface {
	// CreateBook 创建图书
	// 业务规则:
	// - 书名非空且不超过200个字符
	// - 作者非空且不超过100个字符
	// - 价格不能为负数
	CreateBook(ctx context.Context, title, author string, price float64, available bool) (*Book, error)

	// GetBookByID 根据ID获取图书详情
	GetBookByID(ctx context.Context, id uint) (*Book, error)

	// ListBooks 查询全部图书,按插入顺序返回
	ListBooks(ctx context.Context) ([]*Book, error)

	// UpdateBook 部分更新图书
	// 业务规则:提供的字段必须全部合法,否则不修改任何字段
	UpdateBook(ctx context.Context, id uint, params UpdateParams) (*Book, error)

	// DeleteBook 删除图书,ID不再复用
	DeleteBook(ctx context.Context, id uint) error
}

// service 领域服务实现
type service struct {
	repo Repository
}

// NewService 创建图书领域服务
func NewService(repo Repository) Service {
	return &service{repo: repo}
}

// CreateBook 创建图书
func (s *service) CreateBook(ctx context.Context, title, author string, price float64, available bool) (*Book, error) {
	// 1. 字段校验
	if title == "" || utf8.RuneCountInString(title) > MaxTitleLen {
		return nil, ErrInvalidTitle
	}
	if author == "" || utf8.RuneCountInString(author) > MaxAuthorLen {
		return nil, ErrInvalidAuthor
	}
	if price < 0 {
		return nil, ErrInvalidPrice
	}

	// 2. 创建图书实体
	b := NewBook(title, author, price, available)

	// 3. 持久化(仓储分配ID)
	if err := s.repo.Create(ctx, b); err != nil {
		return nil, err
	}

	return b, nil
}

// GetBookByID 根据ID获取图书
func (s *service) GetBookByID(ctx context.Context, id uint) (*Book, error) {
	return s.repo.FindByID(ctx, id)
}

// ListBooks 查询全部图书
func (s *service) ListBooks(ctx context.Context) ([]*Book, error) {
	return s.repo.FindAll(ctx)
}

// UpdateBook 部分更新图书
func (s *service) UpdateBook(ctx context.Context, id uint, params UpdateParams) (*Book, error) {
	// 1. 先校验全部提供的字段,保证不会部分生效
	if params.Title != nil && (*params.Title == "" || utf8.RuneCountInString(*params.Title) > MaxTitleLen) {
		return nil, ErrInvalidTitle
	}
	if params.Author != nil && (*params.Author == "" || utf8.RuneCountInString(*params.Author) > MaxAuthorLen) {
		return nil, ErrInvalidAuthor
	}
	if params.Price != nil && *params.Price < 0 {
		return nil, ErrInvalidPrice
	}

	// 2. 在仓储的互斥边界内应用变更(未提供的字段保持不变)
	// 读取-修改-写入由仓储持锁完成,并发的部分更新不会互相覆盖
	return s.repo.Update(ctx, id, func(b *Book) error {
		if params.Title != nil {
			if err := b.UpdateTitle(*params.Title); err != nil {
				return err
			}
		}
		if params.Author != nil {
			if err := b.UpdateAuthor(*params.Author); err != nil {
				return err
			}
		}
		if params.Price != nil {
			if err := b.UpdatePrice(*params.Price); err != nil {
				return err
			}
		}
		if params.Available != nil {
			b.SetAvailable(*params.Available)
		}
		return nil
	})
}

// DeleteBook 删除图书
func (s *service) DeleteBook(ctx context.Context, id uint) error {
	return s.repo.Delete(ctx, id)
}
