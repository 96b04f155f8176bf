package member

import (
	"context"
)

// Repository 会员仓储接口(依赖倒置原则)
type Repository interface {
	// Create 创建会员
	Create(ctx context.Context, member *Member) error

	// FindByID 根据ID查找会员
	FindByID(ctx context.Context, id uint) (*Member, error)

	// FindByEmail 根据邮箱查找会员
	FindByEmail(ctx context.Context, email string) (*Member, error)

	// Update 更新会员信息
	Update(ctx context.Context, member *Member) error

	// Delete 删除会员(软删除)
	Delete(ctx context.Context, id uint) error

	// List 分页查询会员列表
	List(ctx context.Context, params ListParams) ([]*Member, int64, error)

	// LockByID 悲观锁查询会员(用于借书/还书时锁定借阅计数)
	// 使用SELECT FOR UPDATE锁定行,防止并发借书突破上限
	LockByID(ctx context.Context, id uint) (*Member, error)

	// IncrBorrowed 调整未归还计数(原子操作)
	// delta为正数表示借书(+1),负数表示还书(-1)
	// SQL层保证调整后满足 0 <= borrowed_books <= max_books_allowed,
	// 越界时不更新任何行并返回ErrBorrowLimitReached
	IncrBorrowed(ctx context.Context, id uint, delta int) error
}

// ListParams 列表查询参数
type ListParams struct {
	Page     int    // 页码(从1开始)
	PageSize int    // 每页数量
	Keyword  string // 搜索关键词(姓名、邮箱)
	Status   string // 状态过滤(Active/Inactive/Suspended,空为不过滤)
}
