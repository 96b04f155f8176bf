package member

import (
	"context"
	"time"

	"github.com/MicheleArgenti/cse341-library-management-system/internal/domain/member"
)

// RegisterMemberUseCase 注册会员用例
type RegisterMemberUseCase struct {
	memberService member.Service
}

// NewRegisterMemberUseCase 创建注册会员用例
func NewRegisterMemberUseCase(memberService member.Service) *RegisterMemberUseCase {
	return &RegisterMemberUseCase{memberService: memberService}
}

// AddressDTO 地址DTO
type AddressDTO struct {
	Street  string `json:"street"`
	City    string `json:"city"`
	State   string `json:"state"`
	ZipCode string `json:"zipCode"`
}

// RegisterMemberRequest 注册会员请求DTO
// MembershipDate为YYYY-MM-DD字符串,空表示今天
// MaxBooksAllowed为0表示按会员类型取默认值
type RegisterMemberRequest struct {
	FirstName       string
	LastName        string
	Email           string
	Phone           string
	Address         *AddressDTO
	MembershipDate  string
	MembershipType  string
	MaxBooksAllowed int
}

// MemberView 会员响应DTO
type MemberView struct {
	ID              uint        `json:"id"`
	FirstName       string      `json:"firstName"`
	LastName        string      `json:"lastName"`
	Email           string      `json:"email"`
	Phone           string      `json:"phone"`
	Address         *AddressDTO `json:"address,omitempty"`
	MembershipDate  string      `json:"membershipDate"`
	MembershipType  string      `json:"membershipType"`
	Status          string      `json:"status"`
	BorrowedBooks   int         `json:"borrowedBooks"`
	MaxBooksAllowed int         `json:"maxBooksAllowed"`
	CreatedAt       time.Time   `json:"createdAt"`
	UpdatedAt       time.Time   `json:"updatedAt"`
}

// Execute 执行注册会员用例
func (uc *RegisterMemberUseCase) Execute(ctx context.Context, req RegisterMemberRequest) (*MemberView, error) {
	// 入会日期解析(空表示今天,由领域层填充)
	var membershipDate time.Time
	if req.MembershipDate != "" {
		d, err := time.ParseInLocation("2006-01-02", req.MembershipDate, time.UTC)
		if err != nil {
			return nil, member.ErrInvalidMembershipDate
		}
		membershipDate = d
	}

	m, err := uc.memberService.RegisterMember(ctx, req.FirstName, req.LastName,
		req.Email, req.Phone, toAddress(req.Address), membershipDate,
		req.MembershipType, req.MaxBooksAllowed)
	if err != nil {
		return nil, err
	}

	return newMemberView(m), nil
}

// toAddress 地址DTO → 领域值对象
func toAddress(dto *AddressDTO) *member.Address {
	if dto == nil {
		return nil
	}
	return &member.Address{
		Street:  dto.Street,
		City:    dto.City,
		State:   dto.State,
		ZipCode: dto.ZipCode,
	}
}

// newMemberView 领域实体 → 响应DTO
func newMemberView(m *member.Member) *MemberView {
	view := &MemberView{
		ID:              m.ID,
		FirstName:       m.FirstName,
		LastName:        m.LastName,
		Email:           m.Email,
		Phone:           m.Phone,
		MembershipDate:  m.MembershipDate.Format("2006-01-02"),
		MembershipType:  m.MembershipType,
		Status:          m.Status.String(),
		BorrowedBooks:   m.BorrowedBooks,
		MaxBooksAllowed: m.MaxBooksAllowed,
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
	if m.Address != nil {
		view.Address = &AddressDTO{
			Street:  m.Address.Street,
			City:    m.Address.City,
			State:   m.Address.State,
			ZipCode: m.Address.ZipCode,
		}
	}
	return view
}
