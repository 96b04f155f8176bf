package handler

import (
	"github.com/gin-gonic/gin"

	appmember "github.com/MicheleArgenti/cse341-library-management-system/internal/application/member"
	"github.com/MicheleArgenti/cse341-library-management-system/internal/interface/http/dto"
	apperrors "github.com/MicheleArgenti/cse341-library-management-system/pkg/errors"
	"github.com/MicheleArgenti/cse341-library-management-system/pkg/response"
)

// MemberHandler 会员HTTP处理器
type MemberHandler struct {
	registerMemberUseCase *appmember.RegisterMemberUseCase
	updateMemberUseCase   *appmember.UpdateMemberUseCase
	deleteMemberUseCase   *appmember.DeleteMemberUseCase
	queryMembersUseCase   *appmember.QueryMembersUseCase
}

// NewMemberHandler 创建会员处理器
func NewMemberHandler(
	registerMemberUseCase *appmember.RegisterMemberUseCase,
	updateMemberUseCase *appmember.UpdateMemberUseCase,
	deleteMemberUseCase *appmember.DeleteMemberUseCase,
	queryMembersUseCase *appmember.QueryMembersUseCase,
) *MemberHandler {
	return &MemberHandler{
		registerMemberUseCase: registerMemberUseCase,
		updateMemberUseCase:   updateMemberUseCase,
		deleteMemberUseCase:   deleteMemberUseCase,
		queryMembersUseCase:   queryMembersUseCase,
	}
}

// toAddressDTO HTTP地址 → 应用层地址DTO
func toAddressDTO(addr *dto.AddressRequest) *appmember.AddressDTO {
	if addr == nil {
		return nil
	}
	return &appmember.AddressDTO{
		Street:  addr.Street,
		City:    addr.City,
		State:   addr.State,
		ZipCode: addr.ZipCode,
	}
}

// RegisterMember 注册会员
// @Summary      注册会员
// @Description  馆员登记新会员,邮箱全馆唯一
// @Tags         会员
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body dto.RegisterMemberRequest true "会员信息"
// @Success      201 {object} response.Response{data=appmember.MemberView}
// @Failure      400 {object} response.Response "参数错误"
// @Failure      401 {object} response.Response "未登录"
// @Failure      409 {object} response.Response "邮箱已存在"
// @Router       /api/v1/members [post]
func (h *MemberHandler) RegisterMember(c *gin.Context) {
	// 1. 参数绑定与验证
	var req dto.RegisterMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithCode(c, apperrors.ErrCodeBindError, "参数错误: "+err.Error())
		return
	}

	// 2. 调用应用层用例
	result, err := h.registerMemberUseCase.Execute(c.Request.Context(), appmember.RegisterMemberRequest{
		FirstName:       req.FirstName,
		LastName:        req.LastName,
		Email:           req.Email,
		Phone:           req.Phone,
		Address:         toAddressDTO(req.Address),
		MembershipDate:  req.MembershipDate,
		MembershipType:  req.MembershipType,
		MaxBooksAllowed: req.MaxBooksAllowed,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, result)
}

// GetMember 查询会员详情
// @Summary      查询会员详情
// @Tags         会员
// @Produce      json
// @Param        id path int true "会员ID"
// @Success      200 {object} response.Response{data=appmember.MemberView}
// @Failure      400 {object} response.Response "ID格式非法"
// @Failure      404 {object} response.Response "会员不存在"
// @Router       /api/v1/members/{id} [get]
func (h *MemberHandler) GetMember(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	result, err := h.queryMembersUseCase.GetByID(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}

// ListMembers 分页查询会员列表
// @Summary      查询会员列表
// @Tags         会员
// @Produce      json
// @Param        page query int false "页码" default(1)
// @Param        pageSize query int false "每页数量" default(20)
// @Param        keyword query string false "姓名/邮箱关键词"
// @Param        status query string false "会员状态" Enums(Active, Inactive, Suspended)
// @Success      200 {object} response.Response{data=appmember.ListMembersResponse}
// @Router       /api/v1/members [get]
func (h *MemberHandler) ListMembers(c *gin.Context) {
	var req dto.ListMembersRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.ErrorWithCode(c, apperrors.ErrCodeBindError, "参数错误: "+err.Error())
		return
	}

	result, err := h.queryMembersUseCase.List(c.Request.Context(), appmember.ListMembersRequest{
		Page:     req.Page,
		PageSize: req.PageSize,
		Keyword:  req.Keyword,
		Status:   req.Status,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}

// UpdateMember 更新会员
// @Summary      更新会员
// @Description  部分更新,未提供的字段保持原值
// @Tags         会员
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "会员ID"
// @Param        request body dto.UpdateMemberRequest true "会员信息"
// @Success      200 {object} response.Response{data=appmember.MemberView}
// @Failure      400 {object} response.Response "参数错误"
// @Failure      401 {object} response.Response "未登录"
// @Failure      404 {object} response.Response "会员不存在"
// @Failure      409 {object} response.Response "邮箱已存在"
// @Router       /api/v1/members/{id} [put]
func (h *MemberHandler) UpdateMember(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req dto.UpdateMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithCode(c, apperrors.ErrCodeBindError, "参数错误: "+err.Error())
		return
	}

	result, err := h.updateMemberUseCase.Execute(c.Request.Context(), appmember.UpdateMemberRequest{
		ID:              id,
		FirstName:       req.FirstName,
		LastName:        req.LastName,
		Email:           req.Email,
		Phone:           req.Phone,
		Address:         toAddressDTO(req.Address),
		MembershipType:  req.MembershipType,
		Status:          req.Status,
		MaxBooksAllowed: req.MaxBooksAllowed,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}

// DeleteMember 删除会员
// @Summary      删除会员
// @Description  尚有未归还图书的会员不可删除
// @Tags         会员
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "会员ID"
// @Success      200 {object} response.Response
// @Failure      400 {object} response.Response "尚有未归还图书"
// @Failure      401 {object} response.Response "未登录"
// @Failure      404 {object} response.Response "会员不存在"
// @Router       /api/v1/members/{id} [delete]
func (h *MemberHandler) DeleteMember(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.deleteMemberUseCase.Execute(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, gin.H{"deleted": id})
}
