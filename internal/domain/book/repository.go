package book

import (
	"context"
)

// Repository 图书仓储接口(依赖倒置原则)
// 设计说明:
// 1. 由domain层定义接口,infrastructure层实现
// 2. 便于Mock测试,不依赖具体数据库实现
type Repository interface {
	// Create 创建图书
	Create(ctx context.Context, book *Book) error

	// FindByID 根据ID查找图书
	FindByID(ctx context.Context, id uint) (*Book, error)

	// FindByISBN 根据ISBN查找图书
	FindByISBN(ctx context.Context, isbn string) (*Book, error)

	// Update 更新图书信息
	Update(ctx context.Context, book *Book) error

	// Delete 删除图书(软删除)
	Delete(ctx context.Context, id uint) error

	// List 分页查询图书列表
	List(ctx context.Context, params ListParams) ([]*Book, int64, error)

	// LockByID 悲观锁查询图书(用于借书/还书时锁定副本数)
	// 使用SELECT FOR UPDATE锁定行,防止并发借出最后一个副本
	LockByID(ctx context.Context, id uint) (*Book, error)

	// IncrAvailable 调整可借副本数(原子操作)
	// delta为正数表示归还(增加),负数表示借出(减少)
	// SQL层保证调整后满足 0 <= available_copies <= total_copies,
	// 越界时不更新任何行并返回ErrNoCopiesAvailable/ErrInvalidCopies
	IncrAvailable(ctx context.Context, id uint, delta int) error
}

// ListParams 列表查询参数
type ListParams struct {
	Page     int    // 页码(从1开始)
	PageSize int    // 每页数量
	Keyword  string // 搜索关键词(搜索标题、作者、出版社)
	SortBy   string // 排序字段(title_asc, created_at_desc)
}
