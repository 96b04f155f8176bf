package book

import (
	"context"

	"github.com/MicheleArgenti/cse341-library-management-system/internal/domain/book"
)

// UpdateBookUseCase 更新图书用例
type UpdateBookUseCase struct {
	bookService book.Service
}

// NewUpdateBookUseCase 创建更新图书用例
func NewUpdateBookUseCase(bookService book.Service) *UpdateBookUseCase {
	return &UpdateBookUseCase{bookService: bookService}
}

// UpdateBookRequest 更新图书请求DTO
// 部分更新语义:空字符串/nil表示不修改该字段
type UpdateBookRequest struct {
	ID              uint
	Title           string
	Author          string
	ISBN            string
	Genres          []string
	PublishedYear   int
	Publisher       string
	Pages           int
	TotalCopies     *int
	AvailableCopies *int
}

// Execute 执行更新图书用例
func (uc *UpdateBookUseCase) Execute(ctx context.Context, req UpdateBookRequest) (*BookView, error) {
	// 副本数:nil表示不修改,领域服务以负数识别
	totalCopies := -1
	if req.TotalCopies != nil {
		totalCopies = *req.TotalCopies
	}
	availableCopies := -1
	if req.AvailableCopies != nil {
		availableCopies = *req.AvailableCopies
	}

	b, err := uc.bookService.UpdateBook(ctx, req.ID, req.Title, req.Author, req.ISBN,
		req.Genres, req.PublishedYear, req.Publisher, req.Pages,
		totalCopies, availableCopies)
	if err != nil {
		return nil, err
	}

	return newBookView(b), nil
}
