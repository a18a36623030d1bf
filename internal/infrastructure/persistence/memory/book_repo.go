// Package memory 提供图书仓储的内存实现
//
// 设计说明:
// 1. 实现domain/book/repository.go定义的接口
// 2. 集合只存在于进程生命周期内,进程退出即丢弃
// 3. 所有操作持有同一把互斥锁,保证并发请求下的原子性
package memory

import (
	"context"
	"sync"

	"github.com/xqlib/bookapi/internal/domain/book"
)

// bookRepository 图书仓储实现(内存)
type bookRepository struct {
	mu     sync.Mutex
	books  map[uint]*book.Book // ID → 图书
	order  []uint              // 插入顺序,List按此顺序返回
	nextID uint                // 下一个待分配ID,只增不减,删除后不复用
}

// NewBookRepository 创建图书仓储
func NewBookRepository() book.Repository {
	return &bookRepository{
		books:  make(map[uint]*book.Book),
		nextID: 1,
	}
}

// Create 创建图书并分配自增ID
func (r *bookRepository) Create(ctx context.Context, b *book.Book) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	// 分配ID并回填(与数据库自增主键回填一致)
	b.ID = r.nextID
	r.nextID++

	// 存副本,集合内的实体不与调用方共享
	stored := *b
	r.books[b.ID] = &stored
	r.order = append(r.order, b.ID)

	return nil
}

// FindByID 根据ID查找图书
func (r *bookRepository) FindByID(ctx context.Context, id uint) (*book.Book, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.books[id]
	if !ok {
		return nil, book.ErrBookNotFound
	}

	// 返回副本,调用方的修改需通过Update写回
	b := *stored
	return &b, nil
}

// FindAll 按插入顺序返回全部图书
func (r *bookRepository) FindAll(ctx context.Context) ([]*book.Book, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	books := make([]*book.Book, 0, len(r.order))
	for _, id := range r.order {
		b := *r.books[id]
		books = append(books, &b)
	}

	return books, nil
}

// Update 在锁内完成读取-修改-写入,并发更新不会丢失修改
func (r *bookRepository) Update(ctx context.Context, id uint, mutate func(b *book.Book) error) (*book.Book, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.books[id]
	if !ok {
		return nil, book.ErrBookNotFound
	}

	// 在副本上修改,mutate失败时不落盘
	b := *stored
	if err := mutate(&b); err != nil {
		return nil, err
	}

	updated := b
	r.books[id] = &updated

	return &b, nil
}

// Delete 删除图书
// nextID不回退,被删除的ID不会再分配
func (r *bookRepository) Delete(ctx context.Context, id uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.books[id]; !ok {
		return book.ErrBookNotFound
	}

	delete(r.books, id)
	for i, oid := range r.order {
		if oid == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}

	return nil
}
