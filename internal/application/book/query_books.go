package book

import (
	"context"

	"github.com/MicheleArgenti/cse341-library-management-system/internal/domain/book"
)

// QueryBooksUseCase 图书查询用例(详情+列表)
type QueryBooksUseCase struct {
	bookService book.Service
}

// NewQueryBooksUseCase 创建图书查询用例
func NewQueryBooksUseCase(bookService book.Service) *QueryBooksUseCase {
	return &QueryBooksUseCase{bookService: bookService}
}

// ListBooksRequest 列表查询请求DTO
type ListBooksRequest struct {
	Page     int
	PageSize int
	Keyword  string
	SortBy   string
}

// ListBooksResponse 列表查询响应DTO
type ListBooksResponse struct {
	Books    []*BookView `json:"books"`
	Total    int64       `json:"total"`
	Page     int         `json:"page"`
	PageSize int         `json:"pageSize"`
}

// GetByID 查询图书详情
func (uc *QueryBooksUseCase) GetByID(ctx context.Context, id uint) (*BookView, error) {
	b, err := uc.bookService.GetBookByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return newBookView(b), nil
}

// List 分页查询图书列表
func (uc *QueryBooksUseCase) List(ctx context.Context, req ListBooksRequest) (*ListBooksResponse, error) {
	// 分页参数兜底
	if req.Page < 1 {
		req.Page = 1
	}
	if req.PageSize < 1 || req.PageSize > 100 {
		req.PageSize = 20
	}

	books, total, err := uc.bookService.ListBooks(ctx, book.ListParams{
		Page:     req.Page,
		PageSize: req.PageSize,
		Keyword:  req.Keyword,
		SortBy:   req.SortBy,
	})
	if err != nil {
		return nil, err
	}

	views := make([]*BookView, len(books))
	for i, b := range books {
		views[i] = newBookView(b)
	}

	return &ListBooksResponse{
		Books:    views,
		Total:    total,
		Page:     req.Page,
		PageSize: req.PageSize,
	}, nil
}
