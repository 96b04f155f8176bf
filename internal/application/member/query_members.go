package member

import (
	"context"

	"github.com/MicheleArgenti/cse341-library-management-system/internal/domain/member"
)

// QueryMembersUseCase 会员查询用例(详情+列表)
type QueryMembersUseCase struct {
	memberService member.Service
}

// NewQueryMembersUseCase 创建会员查询用例
func NewQueryMembersUseCase(memberService member.Service) *QueryMembersUseCase {
	return &QueryMembersUseCase{memberService: memberService}
}

// ListMembersRequest 列表查询请求DTO
type ListMembersRequest struct {
	Page     int
	PageSize int
	Keyword  string
	Status   string
}

// ListMembersResponse 列表查询响应DTO
type ListMembersResponse struct {
	Members  []*MemberView `json:"members"`
	Total    int64         `json:"total"`
	Page     int           `json:"page"`
	PageSize int           `json:"pageSize"`
}

// GetByID 查询会员详情
func (uc *QueryMembersUseCase) GetByID(ctx context.Context, id uint) (*MemberView, error) {
	m, err := uc.memberService.GetMemberByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return newMemberView(m), nil
}

// List 分页查询会员列表
func (uc *QueryMembersUseCase) List(ctx context.Context, req ListMembersRequest) (*ListMembersResponse, error) {
	// 分页参数兜底
	if req.Page < 1 {
		req.Page = 1
	}
	if req.PageSize < 1 || req.PageSize > 100 {
		req.PageSize = 20
	}

	members, total, err := uc.memberService.ListMembers(ctx, member.ListParams{
		Page:     req.Page,
		PageSize: req.PageSize,
		Keyword:  req.Keyword,
		Status:   req.Status,
	})
	if err != nil {
		return nil, err
	}

	views := make([]*MemberView, len(members))
	for i, m := range members {
		views[i] = newMemberView(m)
	}

	return &ListMembersResponse{
		Members:  views,
		Total:    total,
		Page:     req.Page,
		PageSize: req.PageSize,
	}, nil
}
