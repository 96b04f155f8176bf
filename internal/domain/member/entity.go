package member

import (
	"time"
)

// MemberStatus 会员状态
// 教学要点:
// 1. 使用int类型而非string(节省存储空间,便于索引)
// 2. 定义为类型别名,便于添加方法
type MemberStatus int

const (
	StatusActive    MemberStatus = 1 // 正常(可借书)
	StatusInactive  MemberStatus = 2 // 停用
	StatusSuspended MemberStatus = 3 // 暂停(违规冻结)
)

// String 实现Stringer接口(API输出与日志使用英文状态名)
func (s MemberStatus) String() string {
	switch s {
	case StatusActive:
		return "Active"
	case StatusInactive:
		return "Inactive"
	case StatusSuspended:
		return "Suspended"
	default:
		return "Unknown"
	}
}

// ParseStatus 解析状态名(API输入)
func ParseStatus(s string) (MemberStatus, bool) {
	switch s {
	case "Active":
		return StatusActive, true
	case "Inactive":
		return StatusInactive, true
	case "Suspended":
		return StatusSuspended, true
	default:
		return 0, false
	}
}

// 会员类型(决定默认借阅上限)
const (
	TypeStandard = "Standard"
	TypePremium  = "Premium"
	TypeStudent  = "Student"
	TypeSenior   = "Senior"
)

// IsValidMembershipType 校验会员类型
func IsValidMembershipType(t string) bool {
	switch t {
	case TypeStandard, TypePremium, TypeStudent, TypeSenior:
		return true
	default:
		return false
	}
}

// DefaultMaxBooks 会员类型对应的默认借阅上限
// Premium 5本、Student 4本、其他3本
func DefaultMaxBooks(membershipType string) int {
	switch membershipType {
	case TypePremium:
		return 5
	case TypeStudent:
		return 4
	default:
		return 3
	}
}

// Address 会员地址(值对象)
type Address struct {
	Street  string
	City    string
	State   string
	ZipCode string
}

// Member 会员实体(聚合根)
// DDD设计说明:
// 1. BorrowedBooks是当前未归还数量的冗余计数,与借阅记录保持一致
// 2. 计数变更必须走仓储的原子操作(借书+1/还书-1),不在实体上直接改
// 3. Email作为业务唯一标识(数据库层保证唯一性)
type Member struct {
	ID              uint
	FirstName       string // 名
	LastName        string // 姓
	Email           string // 邮箱(唯一)
	Phone           string // 电话
	Address         *Address
	MembershipDate  time.Time    // 入会日期
	MembershipType  string       // 会员类型
	Status          MemberStatus // 会员状态
	BorrowedBooks   int          // 当前未归还数量(冗余计数)
	MaxBooksAllowed int          // 借阅上限
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// NewMember 创建新会员(工厂方法)
// maxBooksAllowed传0表示按会员类型取默认值
func NewMember(firstName, lastName, email, phone string, address *Address, membershipDate time.Time, membershipType string, maxBooksAllowed int) *Member {
	now := time.Now().UTC()
	if maxBooksAllowed <= 0 {
		maxBooksAllowed = DefaultMaxBooks(membershipType)
	}
	if membershipDate.IsZero() {
		membershipDate = now
	}
	return &Member{
		FirstName:       firstName,
		LastName:        lastName,
		Email:           email,
		Phone:           phone,
		Address:         address,
		MembershipDate:  membershipDate,
		MembershipType:  membershipType,
		Status:          StatusActive,
		BorrowedBooks:   0,
		MaxBooksAllowed: maxBooksAllowed,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
}

// FullName 全名
func (m *Member) FullName() string {
	return m.FirstName + " " + m.LastName
}

// IsActive 是否为正常状态
func (m *Member) IsActive() bool {
	return m.Status == StatusActive
}

// CanBorrow 借书资格校验
// 规则顺序:先查状态,再查借阅上限
func (m *Member) CanBorrow() error {
	if !m.IsActive() {
		return ErrMemberNotActive
	}
	if m.BorrowedBooks >= m.MaxBooksAllowed {
		return ErrBorrowLimitReached
	}
	return nil
}

// HasOpenLoans 是否有未归还的借阅
func (m *Member) HasOpenLoans() bool {
	return m.BorrowedBooks > 0
}

// UpdateInfo 更新会员基本信息
// 空值表示不修改该字段(部分更新语义)
func (m *Member) UpdateInfo(firstName, lastName, phone string, address *Address) {
	if firstName != "" {
		m.FirstName = firstName
	}
	if lastName != "" {
		m.LastName = lastName
	}
	if phone != "" {
		m.Phone = phone
	}
	if address != nil {
		m.Address = address
	}
	m.UpdatedAt = time.Now().UTC()
}
