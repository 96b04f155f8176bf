package author

import (
	"context"
	"time"

	"github.com/MicheleArgenti/cse341-library-management-system/internal/domain/author"
)

// UpdateAuthorUseCase 更新作者用例
type UpdateAuthorUseCase struct {
	authorService author.Service
}

// NewUpdateAuthorUseCase 创建更新作者用例
func NewUpdateAuthorUseCase(authorService author.Service) *UpdateAuthorUseCase {
	return &UpdateAuthorUseCase{authorService: authorService}
}

// UpdateAuthorRequest 更新作者请求DTO
// 部分更新语义:空字符串/nil表示不修改该字段
type UpdateAuthorRequest struct {
	ID           uint
	FirstName    string
	LastName     string
	BirthDate    string
	DeathDate    string
	Nationality  string
	Biography    string
	NotableWorks []string
}

// Execute 执行更新作者用例
func (uc *UpdateAuthorUseCase) Execute(ctx context.Context, req UpdateAuthorRequest) (*AuthorView, error) {
	// 日期解析(空串表示不修改)
	var birthDate, deathDate *time.Time
	if req.BirthDate != "" {
		d, err := parseDate(req.BirthDate)
		if err != nil {
			return nil, author.ErrInvalidBirthDate
		}
		birthDate = &d
	}
	if req.DeathDate != "" {
		d, err := parseDate(req.DeathDate)
		if err != nil {
			return nil, author.ErrInvalidBirthDate
		}
		deathDate = &d
	}

	a, err := uc.authorService.UpdateAuthor(ctx, req.ID, req.FirstName, req.LastName,
		birthDate, deathDate, req.Nationality, req.Biography, req.NotableWorks)
	if err != nil {
		return nil, err
	}

	return newAuthorView(a), nil
}
