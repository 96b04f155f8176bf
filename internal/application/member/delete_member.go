package member

import (
	"context"

	"github.com/MicheleArgenti/cse341-library-management-system/internal/domain/member"
)

// DeleteMemberUseCase 删除会员用例
// 业务规则:尚有未归还图书的会员不可删除(领域服务校验)
type DeleteMemberUseCase struct {
	memberService member.Service
}

// NewDeleteMemberUseCase 创建删除会员用例
func NewDeleteMemberUseCase(memberService member.Service) *DeleteMemberUseCase {
	return &DeleteMemberUseCase{memberService: memberService}
}

// Execute 执行删除会员用例
func (uc *DeleteMemberUseCase) Execute(ctx context.Context, id uint) error {
	return uc.memberService.DeleteMember(ctx, id)
}
