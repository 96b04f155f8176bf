package book

import (
	"context"
	"time"

	"github.com/MicheleArgenti/cse341-library-management-system/internal/domain/book"
)

// CreateBookUseCase 录入馆藏图书用例
// 设计说明:
// 1. 应用层负责用例编排,业务规则校验由领域服务负责
// 2. 输入输出使用DTO,与HTTP层解耦
type CreateBookUseCase struct {
	bookService book.Service
}

// NewCreateBookUseCase 创建录入图书用例
func NewCreateBookUseCase(bookService book.Service) *CreateBookUseCase {
	return &CreateBookUseCase{bookService: bookService}
}

// CreateBookRequest 录入图书请求DTO
// AvailableCopies为nil表示默认等于TotalCopies(新书全部可借)
type CreateBookRequest struct {
	Title           string
	Author          string
	ISBN            string
	Genres          []string
	PublishedYear   int
	Publisher       string
	Pages           int
	TotalCopies     int
	AvailableCopies *int
}

// BookView 图书响应DTO
type BookView struct {
	ID              uint      `json:"id"`
	Title           string    `json:"title"`
	Author          string    `json:"author"`
	ISBN            string    `json:"isbn"`
	Genres          []string  `json:"genre"`
	PublishedYear   int       `json:"publishedYear"`
	Publisher       string    `json:"publisher"`
	Pages           int       `json:"pages"`
	TotalCopies     int       `json:"totalCopies"`
	AvailableCopies int       `json:"availableCopies"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// Execute 执行录入图书用例
func (uc *CreateBookUseCase) Execute(ctx context.Context, req CreateBookRequest) (*BookView, error) {
	// 可借副本数缺省等于总副本数
	availableCopies := -1
	if req.AvailableCopies != nil {
		availableCopies = *req.AvailableCopies
	}

	b, err := uc.bookService.CreateBook(ctx, req.Title, req.Author, req.ISBN,
		req.Genres, req.PublishedYear, req.Publisher, req.Pages,
		req.TotalCopies, availableCopies)
	if err != nil {
		return nil, err
	}

	return newBookView(b), nil
}

// newBookView 领域实体 → 响应DTO
func newBookView(b *book.Book) *BookView {
	return &BookView{
		ID:              b.ID,
		Title:           b.Title,
		Author:          b.Author,
		ISBN:            b.ISBN,
		Genres:          b.Genres,
		PublishedYear:   b.PublishedYear,
		Publisher:       b.Publisher,
		Pages:           b.Pages,
		TotalCopies:     b.TotalCopies,
		AvailableCopies: b.AvailableCopies,
		CreatedAt:       b.CreatedAt,
		UpdatedAt:       b.UpdatedAt,
	}
}
