package book

import (
	"context"
)

// Repository 图书仓储接口(依赖倒置原则)
// 设计说明:
// 1. 由domain层定义接口,infrastructure层实现
// 2. 便于Mock测试,不依赖具体存储实现
type Repository interface {
	// Create 创建图书,由仓储分配自增ID并回填到book.ID
	// ID单调递增,删除后不复用
	Create(ctx context.Context, book *Book) error

	// FindByID 根据ID查找图书
	// 图书不存在时返回ErrBookNotFound
	FindByID(ctx context.Context, id uint) (*Book, error)

	// FindAll 查询全部图书,按插入顺序返回
	FindAll(ctx context.Context) ([]*Book, error)

	// Update 在单一互斥边界内原子地修改图书
	// 读取-修改-写入全程持锁,并发的部分更新不会互相覆盖
	// mutate返回错误时修改不落盘;图书不存在时返回ErrBookNotFound
	Update(ctx context.Context, id uint, mutate func(b *Book) error) (*Book, error)

	// Delete 删除图书
	// 图书不存在时返回ErrBookNotFound
	Delete(ctx context.Context, id uint) error
}
