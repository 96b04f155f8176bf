package author

import (
	"context"

	"github.com/MicheleArgenti/cse341-library-management-system/internal/domain/author"
)

// DeleteAuthorUseCase 删除作者用例
type DeleteAuthorUseCase struct {
	authorService author.Service
}

// NewDeleteAuthorUseCase 创建删除作者用例
func NewDeleteAuthorUseCase(authorService author.Service) *DeleteAuthorUseCase {
	return &DeleteAuthorUseCase{authorService: authorService}
}

// Execute 执行删除作者用例
func (uc *DeleteAuthorUseCase) Execute(ctx context.Context, id uint) error {
	return uc.authorService.DeleteAuthor(ctx, id)
}
