package handler

import (
	"github.com/gin-gonic/gin"

	appstaff "github.com/MicheleArgenti/cse341-library-management-system/internal/application/staff"
	"github.com/MicheleArgenti/cse341-library-management-system/internal/interface/http/dto"
	"github.com/MicheleArgenti/cse341-library-management-system/internal/interface/http/middleware"
	apperrors "github.com/MicheleArgenti/cse341-library-management-system/pkg/errors"
	"github.com/MicheleArgenti/cse341-library-management-system/pkg/response"
)

// StaffHandler 馆员HTTP处理器
type StaffHandler struct {
	registerUseCase *appstaff.RegisterUseCase
	loginUseCase    *appstaff.LoginUseCase
	logoutUseCase   *appstaff.LogoutUseCase
}

// NewStaffHandler 创建馆员处理器
func NewStaffHandler(
	registerUseCase *appstaff.RegisterUseCase,
	loginUseCase *appstaff.LoginUseCase,
	logoutUseCase *appstaff.LogoutUseCase,
) *StaffHandler {
	return &StaffHandler{
		registerUseCase: registerUseCase,
		loginUseCase:    loginUseCase,
		logoutUseCase:   logoutUseCase,
	}
}

// Register 馆员注册
// @Summary      馆员注册
// @Description  注册馆员账号,邮箱唯一,密码8-20位且含字母和数字
// @Tags         馆员
// @Accept       json
// @Produce      json
// @Param        request body dto.RegisterStaffRequest true "注册信息"
// @Success      201 {object} response.Response{data=appstaff.RegisterResponse}
// @Failure      400 {object} response.Response "参数错误/密码强度不足"
// @Failure      409 {object} response.Response "邮箱已存在"
// @Router       /api/v1/staff/register [post]
func (h *StaffHandler) Register(c *gin.Context) {
	var req dto.RegisterStaffRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithCode(c, apperrors.ErrCodeBindError, "参数错误: "+err.Error())
		return
	}

	result, err := h.registerUseCase.Execute(c.Request.Context(), appstaff.RegisterRequest{
		Email:    req.Email,
		Password: req.Password,
		Name:     req.Name,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, result)
}

// Login 馆员登录
// @Summary      馆员登录
// @Description  邮箱密码登录,返回Access/Refresh Token对
// @Tags         馆员
// @Accept       json
// @Produce      json
// @Param        request body dto.LoginStaffRequest true "登录信息"
// @Success      200 {object} response.Response{data=appstaff.LoginResponse}
// @Failure      400 {object} response.Response "参数错误"
// @Failure      401 {object} response.Response "邮箱或密码错误"
// @Router       /api/v1/staff/login [post]
func (h *StaffHandler) Login(c *gin.Context) {
	var req dto.LoginStaffRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithCode(c, apperrors.ErrCodeBindError, "参数错误: "+err.Error())
		return
	}

	result, err := h.loginUseCase.Execute(c.Request.Context(), appstaff.LoginRequest{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}

// Logout 馆员登出
// @Summary      馆员登出
// @Description  删除会话并将当前Access Token加入黑名单
// @Tags         馆员
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} response.Response
// @Failure      401 {object} response.Response "未登录"
// @Router       /api/v1/staff/logout [post]
func (h *StaffHandler) Logout(c *gin.Context) {
	staffID := middleware.MustGetStaffID(c)
	accessToken := middleware.GetAccessToken(c)

	if err := h.logoutUseCase.Execute(c.Request.Context(), staffID, accessToken); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, gin.H{"message": "已登出"})
}
