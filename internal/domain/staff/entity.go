package staff

import (
	"time"
)

// Staff 馆员实体
// 馆员是系统的操作者:录入馆藏、登记借还都需要已登录的馆员账号
// Password存储bcrypt哈希,绝不存储明文
type Staff struct {
	ID        uint
	Email     string // 登录邮箱(唯一)
	Password  string // bcrypt哈希
	Name      string // 姓名
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewStaff 创建馆员(工厂方法)
// password参数必须是已加密的哈希值
func NewStaff(email, hashedPassword, name string) *Staff {
	now := time.Now().UTC()
	return &Staff{
		Email:     email,
		Password:  hashedPassword,
		Name:      name,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
