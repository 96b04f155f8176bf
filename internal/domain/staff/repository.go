package staff

import (
	"context"
)

// Repository 馆员仓储接口
type Repository interface {
	// Create 创建馆员账号
	Create(ctx context.Context, staff *Staff) error

	// FindByID 根据ID查找馆员
	FindByID(ctx context.Context, id uint) (*Staff, error)

	// FindByEmail 根据邮箱查找馆员(登录使用)
	FindByEmail(ctx context.Context, email string) (*Staff, error)
}
