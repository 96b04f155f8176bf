package borrowing

import (
	"context"
	"time"
)

// Repository 借阅记录仓储接口(依赖倒置原则)
// 设计说明:
// 1. 由domain层定义接口,infrastructure层实现
// 2. 借书/还书在事务内调用,实现需支持从context提取事务句柄
type Repository interface {
	// Create 创建借阅记录
	Create(ctx context.Context, record *Record) error

	// FindByID 根据ID查找借阅记录
	FindByID(ctx context.Context, id uint) (*Record, error)

	// LockByID 悲观锁查询借阅记录(SELECT FOR UPDATE)
	// 还书的终态校验必须基于锁内读:普通读是快照,并发还书时
	// 两个事务都会看到Borrowed
	LockByID(ctx context.Context, id uint) (*Record, error)

	// FindOpenByBookAndMember 查找指定(图书,会员)的未归还记录
	// 用于借书前的重复借阅校验;无记录时返回ErrRecordNotFound
	FindOpenByBookAndMember(ctx context.Context, bookID, memberID uint) (*Record, error)

	// Update 更新借阅记录(归还时写入状态、归还时间、逾期费)
	Update(ctx context.Context, record *Record) error

	// Delete 删除借阅记录(硬删除,仅终态记录,调用方校验)
	Delete(ctx context.Context, id uint) error

	// List 分页查询借阅记录
	List(ctx context.Context, params ListParams) ([]*Record, int64, error)
}

// ListParams 列表查询参数
// BookID/MemberID为0表示不过滤;Status为nil表示不过滤
// DueBefore配合Status=Borrowed查询逾期未还记录(Overdue是派生状态不落库)
type ListParams struct {
	Page      int
	PageSize  int
	BookID    uint
	MemberID  uint
	Status    *RecordStatus
	DueBefore *time.Time
}
