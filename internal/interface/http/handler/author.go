package handler

import (
	"github.com/gin-gonic/gin"

	appauthor "github.com/MicheleArgenti/cse341-library-management-system/internal/application/author"
	"github.com/MicheleArgenti/cse341-library-management-system/internal/interface/http/dto"
	apperrors "github.com/MicheleArgenti/cse341-library-management-system/pkg/errors"
	"github.com/MicheleArgenti/cse341-library-management-system/pkg/response"
)

// AuthorHandler 作者HTTP处理器
type AuthorHandler struct {
	createAuthorUseCase *appauthor.CreateAuthorUseCase
	updateAuthorUseCase *appauthor.UpdateAuthorUseCase
	deleteAuthorUseCase *appauthor.DeleteAuthorUseCase
	queryAuthorsUseCase *appauthor.QueryAuthorsUseCase
}

// NewAuthorHandler 创建作者处理器
func NewAuthorHandler(
	createAuthorUseCase *appauthor.CreateAuthorUseCase,
	updateAuthorUseCase *appauthor.UpdateAuthorUseCase,
	deleteAuthorUseCase *appauthor.DeleteAuthorUseCase,
	queryAuthorsUseCase *appauthor.QueryAuthorsUseCase,
) *AuthorHandler {
	return &AuthorHandler{
		createAuthorUseCase: createAuthorUseCase,
		updateAuthorUseCase: updateAuthorUseCase,
		deleteAuthorUseCase: deleteAuthorUseCase,
		queryAuthorsUseCase: queryAuthorsUseCase,
	}
}

// CreateAuthor 创建作者
// @Summary      创建作者
// @Description  馆员录入作者档案
// @Tags         作者
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body dto.CreateAuthorRequest true "作者信息"
// @Success      201 {object} response.Response{data=appauthor.AuthorView}
// @Failure      400 {object} response.Response "参数错误"
// @Failure      401 {object} response.Response "未登录"
// @Router       /api/v1/authors [post]
func (h *AuthorHandler) CreateAuthor(c *gin.Context) {
	// 1. 参数绑定与验证
	var req dto.CreateAuthorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithCode(c, apperrors.ErrCodeBindError, "参数错误: "+err.Error())
		return
	}

	// 2. 调用应用层用例
	result, err := h.createAuthorUseCase.Execute(c.Request.Context(), appauthor.CreateAuthorRequest{
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		BirthDate:    req.BirthDate,
		DeathDate:    req.DeathDate,
		Nationality:  req.Nationality,
		Biography:    req.Biography,
		NotableWorks: req.NotableWorks,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, result)
}

// GetAuthor 查询作者详情
// @Summary      查询作者详情
// @Tags         作者
// @Produce      json
// @Param        id path int true "作者ID"
// @Success      200 {object} response.Response{data=appauthor.AuthorView}
// @Failure      400 {object} response.Response "ID格式非法"
// @Failure      404 {object} response.Response "作者不存在"
// @Router       /api/v1/authors/{id} [get]
func (h *AuthorHandler) GetAuthor(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	result, err := h.queryAuthorsUseCase.GetByID(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}

// ListAuthors 分页查询作者列表
// @Summary      查询作者列表
// @Tags         作者
// @Produce      json
// @Param        page query int false "页码" default(1)
// @Param        pageSize query int false "每页数量" default(20)
// @Param        keyword query string false "姓名关键词"
// @Success      200 {object} response.Response{data=appauthor.ListAuthorsResponse}
// @Router       /api/v1/authors [get]
func (h *AuthorHandler) ListAuthors(c *gin.Context) {
	var req dto.ListAuthorsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.ErrorWithCode(c, apperrors.ErrCodeBindError, "参数错误: "+err.Error())
		return
	}

	result, err := h.queryAuthorsUseCase.List(c.Request.Context(), appauthor.ListAuthorsRequest{
		Page:     req.Page,
		PageSize: req.PageSize,
		Keyword:  req.Keyword,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}

// UpdateAuthor 更新作者
// @Summary      更新作者
// @Description  部分更新,未提供的字段保持原值
// @Tags         作者
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "作者ID"
// @Param        request body dto.UpdateAuthorRequest true "作者信息"
// @Success      200 {object} response.Response{data=appauthor.AuthorView}
// @Failure      400 {object} response.Response "参数错误"
// @Failure      401 {object} response.Response "未登录"
// @Failure      404 {object} response.Response "作者不存在"
// @Router       /api/v1/authors/{id} [put]
func (h *AuthorHandler) UpdateAuthor(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req dto.UpdateAuthorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithCode(c, apperrors.ErrCodeBindError, "参数错误: "+err.Error())
		return
	}

	result, err := h.updateAuthorUseCase.Execute(c.Request.Context(), appauthor.UpdateAuthorRequest{
		ID:           id,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		BirthDate:    req.BirthDate,
		DeathDate:    req.DeathDate,
		Nationality:  req.Nationality,
		Biography:    req.Biography,
		NotableWorks: req.NotableWorks,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}

// DeleteAuthor 删除作者
// @Summary      删除作者
// @Tags         作者
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "作者ID"
// @Success      200 {object} response.Response
// @Failure      401 {object} response.Response "未登录"
// @Failure      404 {object} response.Response "作者不存在"
// @Router       /api/v1/authors/{id} [delete]
func (h *AuthorHandler) DeleteAuthor(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.deleteAuthorUseCase.Execute(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, gin.H{"deleted": id})
}
