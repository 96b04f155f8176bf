package member

import (
	"context"
	"regexp"
	"strings"
	"time"
)

// Service 会员领域服务接口
type Service interface {
	// RegisterMember 注册会员
	// 业务规则:
	// - 姓名、邮箱、电话、会员类型必填
	// - 邮箱格式合法且唯一(统一转小写存储)
	// - 借阅上限缺省时按会员类型取默认值(Premium 5/Student 4/其他3)
	RegisterMember(ctx context.Context, firstName, lastName, email, phone string, address *Address, membershipDate time.Time, membershipType string, maxBooksAllowed int) (*Member, error)

	// GetMemberByID 根据ID获取会员详情
	GetMemberByID(ctx context.Context, id uint) (*Member, error)

	// UpdateMember 更新会员信息
	// status/membershipType传空表示不修改;maxBooksAllowed传0表示不修改
	UpdateMember(ctx context.Context, id uint, firstName, lastName, email, phone string, address *Address, membershipType, status string, maxBooksAllowed int) (*Member, error)

	// DeleteMember 删除会员
	// 业务规则:尚有未归还图书的会员不可删除
	DeleteMember(ctx context.Context, id uint) error

	// ListMembers 分页查询会员列表
	ListMembers(ctx context.Context, params ListParams) ([]*Member, int64, error)
}

// service 领域服务实现
type service struct {
	repo Repository
}

// NewService 创建会员领域服务
func NewService(repo Repository) Service {
	return &service{repo: repo}
}

// RegisterMember 注册会员
func (s *service) RegisterMember(ctx context.Context, firstName, lastName, email, phone string, address *Address, membershipDate time.Time, membershipType string, maxBooksAllowed int) (*Member, error) {
	// 1. 姓名校验
	if firstName == "" || lastName == "" {
		return nil, ErrInvalidName
	}

	// 2. 邮箱校验(统一小写,与原目录数据对齐)
	email = strings.ToLower(strings.TrimSpace(email))
	if !isValidEmail(email) {
		return nil, ErrInvalidEmail
	}

	// 3. 会员类型校验
	if !IsValidMembershipType(membershipType) {
		return nil, ErrInvalidMembershipType
	}

	// 4. 邮箱唯一性预检(数据库UNIQUE索引兜底)
	existing, err := s.repo.FindByEmail(ctx, email)
	if err == nil && existing != nil {
		return nil, ErrEmailDuplicate
	}
	if err != nil && err != ErrMemberNotFound {
		return nil, err
	}

	// 5. 创建实体并持久化
	m := NewMember(firstName, lastName, email, phone, address, membershipDate, membershipType, maxBooksAllowed)
	if err := s.repo.Create(ctx, m); err != nil {
		return nil, err
	}

	return m, nil
}

// GetMemberByID 根据ID获取会员
func (s *service) GetMemberByID(ctx context.Context, id uint) (*Member, error) {
	return s.repo.FindByID(ctx, id)
}

// UpdateMember 更新会员信息
func (s *service) UpdateMember(ctx context.Context, id uint, firstName, lastName, email, phone string, address *Address, membershipType, status string, maxBooksAllowed int) (*Member, error) {
	// 1. 查询会员
	m, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	// 2. 邮箱变更校验
	if email != "" {
		email = strings.ToLower(strings.TrimSpace(email))
		if !isValidEmail(email) {
			return nil, ErrInvalidEmail
		}
		if email != m.Email {
			existing, err := s.repo.FindByEmail(ctx, email)
			if err == nil && existing != nil && existing.ID != id {
				return nil, ErrEmailDuplicate
			}
			if err != nil && err != ErrMemberNotFound {
				return nil, err
			}
			m.Email = email
		}
	}

	// 3. 会员类型变更
	if membershipType != "" {
		if !IsValidMembershipType(membershipType) {
			return nil, ErrInvalidMembershipType
		}
		m.MembershipType = membershipType
	}

	// 4. 状态变更
	if status != "" {
		st, ok := ParseStatus(status)
		if !ok {
			return nil, ErrInvalidStatus
		}
		m.Status = st
	}

	// 5. 借阅上限变更
	if maxBooksAllowed > 0 {
		m.MaxBooksAllowed = maxBooksAllowed
	}

	// 6. 基本信息变更并持久化
	m.UpdateInfo(firstName, lastName, phone, address)
	if err := s.repo.Update(ctx, m); err != nil {
		return nil, err
	}

	return m, nil
}

// DeleteMember 删除会员
// 防御规则:未归还计数>0时拒绝删除,避免借阅记录悬挂
func (s *service) DeleteMember(ctx context.Context, id uint) error {
	m, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if m.HasOpenLoans() {
		return ErrMemberHasOpenLoans
	}

	return s.repo.Delete(ctx, id)
}

// ListMembers 分页查询会员列表
func (s *service) ListMembers(ctx context.Context, params ListParams) ([]*Member, int64, error) {
	return s.repo.List(ctx, params)
}

// isValidEmail 邮箱格式校验
// 简单的正则校验,生产环境可使用更严格的RFC 5322标准
func isValidEmail(email string) bool {
	pattern := `^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`
	matched, _ := regexp.MatchString(pattern, email)
	return matched
}
