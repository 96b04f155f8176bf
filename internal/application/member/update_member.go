package member

import (
	"context"

	"github.com/MicheleArgenti/cse341-library-management-system/internal/domain/member"
)

// UpdateMemberUseCase 更新会员用例
type UpdateMemberUseCase struct {
	memberService member.Service
}

// NewUpdateMemberUseCase 创建更新会员用例
func NewUpdateMemberUseCase(memberService member.Service) *UpdateMemberUseCase {
	return &UpdateMemberUseCase{memberService: memberService}
}

// UpdateMemberRequest 更新会员请求DTO
// 部分更新语义:空字符串/nil/0表示不修改该字段
type UpdateMemberRequest struct {
	ID              uint
	FirstName       string
	LastName        string
	Email           string
	Phone           string
	Address         *AddressDTO
	MembershipType  string
	Status          string
	MaxBooksAllowed int
}

// Execute 执行更新会员用例
func (uc *UpdateMemberUseCase) Execute(ctx context.Context, req UpdateMemberRequest) (*MemberView, error) {
	m, err := uc.memberService.UpdateMember(ctx, req.ID, req.FirstName, req.LastName,
		req.Email, req.Phone, toAddress(req.Address), req.MembershipType,
		req.Status, req.MaxBooksAllowed)
	if err != nil {
		return nil, err
	}

	return newMemberView(m), nil
}
