package author

import (
	"context"

	"github.com/MicheleArgenti/cse341-library-management-system/internal/domain/author"
)

// QueryAuthorsUseCase 作者查询用例(详情+列表)
type QueryAuthorsUseCase struct {
	authorService author.Service
}

// NewQueryAuthorsUseCase 创建作者查询用例
func NewQueryAuthorsUseCase(authorService author.Service) *QueryAuthorsUseCase {
	return &QueryAuthorsUseCase{authorService: authorService}
}

// ListAuthorsRequest 列表查询请求DTO
type ListAuthorsRequest struct {
	Page     int
	PageSize int
	Keyword  string
}

// ListAuthorsResponse 列表查询响应DTO
type ListAuthorsResponse struct {
	Authors  []*AuthorView `json:"authors"`
	Total    int64         `json:"total"`
	Page     int           `json:"page"`
	PageSize int           `json:"pageSize"`
}

// GetByID 查询作者详情
func (uc *QueryAuthorsUseCase) GetByID(ctx context.Context, id uint) (*AuthorView, error) {
	a, err := uc.authorService.GetAuthorByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return newAuthorView(a), nil
}

// List 分页查询作者列表
func (uc *QueryAuthorsUseCase) List(ctx context.Context, req ListAuthorsRequest) (*ListAuthorsResponse, error) {
	// 分页参数兜底
	if req.Page < 1 {
		req.Page = 1
	}
	if req.PageSize < 1 || req.PageSize > 100 {
		req.PageSize = 20
	}

	authors, total, err := uc.authorService.ListAuthors(ctx, author.ListParams{
		Page:     req.Page,
		PageSize: req.PageSize,
		Keyword:  req.Keyword,
	})
	if err != nil {
		return nil, err
	}

	views := make([]*AuthorView, len(authors))
	for i, a := range authors {
		views[i] = newAuthorView(a)
	}

	return &ListAuthorsResponse{
		Authors:  views,
		Total:    total,
		Page:     req.Page,
		PageSize: req.PageSize,
	}, nil
}
