package author

import (
	"context"
	"time"

	"github.com/MicheleArgenti/cse341-library-management-system/internal/domain/author"
)

// CreateAuthorUseCase 创建作者用例
// 设计说明:
// 1. 应用层负责用例编排,协调领域服务完成业务流程
// 2. 输入输出使用DTO(Data Transfer Object),与HTTP层解耦
type CreateAuthorUseCase struct {
	authorService author.Service
}

// NewCreateAuthorUseCase 创建作者用例
func NewCreateAuthorUseCase(authorService author.Service) *CreateAuthorUseCase {
	return &CreateAuthorUseCase{authorService: authorService}
}

// CreateAuthorRequest 创建作者请求DTO
// BirthDate/DeathDate为YYYY-MM-DD格式字符串,解析失败返回参数错误
type CreateAuthorRequest struct {
	FirstName    string
	LastName     string
	BirthDate    string
	DeathDate    string // 空表示在世
	Nationality  string
	Biography    string
	NotableWorks []string
}

// AuthorView 作者响应DTO
type AuthorView struct {
	ID           uint      `json:"id"`
	FirstName    string    `json:"firstName"`
	LastName     string    `json:"lastName"`
	BirthDate    string    `json:"birthDate"`
	DeathDate    string    `json:"deathDate,omitempty"`
	Nationality  string    `json:"nationality"`
	Biography    string    `json:"biography,omitempty"`
	NotableWorks []string  `json:"notableWorks"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// Execute 执行创建作者用例
func (uc *CreateAuthorUseCase) Execute(ctx context.Context, req CreateAuthorRequest) (*AuthorView, error) {
	// 1. 日期解析
	birthDate, err := parseDate(req.BirthDate)
	if err != nil {
		return nil, author.ErrInvalidBirthDate
	}
	var deathDate *time.Time
	if req.DeathDate != "" {
		d, err := parseDate(req.DeathDate)
		if err != nil {
			return nil, author.ErrInvalidBirthDate
		}
		deathDate = &d
	}

	// 2. 调用领域服务(姓名/日期一致性校验在领域层)
	a, err := uc.authorService.CreateAuthor(ctx, req.FirstName, req.LastName,
		birthDate, deathDate, req.Nationality, req.Biography, req.NotableWorks)
	if err != nil {
		return nil, err
	}

	return newAuthorView(a), nil
}

// parseDate YYYY-MM-DD → UTC time.Time
func parseDate(s string) (time.Time, error) {
	return time.ParseInLocation("2006-01-02", s, time.UTC)
}

// newAuthorView 领域实体 → 响应DTO
func newAuthorView(a *author.Author) *AuthorView {
	view := &AuthorView{
		ID:           a.ID,
		FirstName:    a.FirstName,
		LastName:     a.LastName,
		BirthDate:    a.BirthDate.Format("2006-01-02"),
		Nationality:  a.Nationality,
		Biography:    a.Biography,
		NotableWorks: a.NotableWorks,
		CreatedAt:    a.CreatedAt,
		UpdatedAt:    a.UpdatedAt,
	}
	if a.DeathDate != nil {
		view.DeathDate = a.DeathDate.Format("2006-01-02")
	}
	return view
}
