package author

import (
	"context"
	"time"
)

// Service 作者领域服务接口
type Service interface {
	// CreateAuthor 创建作者
	// 业务规则:
	// - 姓名必填
	// - 逝世日期(如有)不能早于出生日期
	CreateAuthor(ctx context.Context, firstName, lastName string, birthDate time.Time, deathDate *time.Time, nationality, biography string, notableWorks []string) (*Author, error)

	// GetAuthorByID 根据ID获取作者详情
	GetAuthorByID(ctx context.Context, id uint) (*Author, error)

	// UpdateAuthor 更新作者信息
	UpdateAuthor(ctx context.Context, id uint, firstName, lastName string, birthDate, deathDate *time.Time, nationality, biography string, notableWorks []string) (*Author, error)

	// DeleteAuthor 删除作者
	DeleteAuthor(ctx context.Context, id uint) error

	// ListAuthors 分页查询作者列表
	ListAuthors(ctx context.Context, params ListParams) ([]*Author, int64, error)
}

// service 领域服务实现
type service struct {
	repo Repository
}

// NewService 创建作者领域服务
func NewService(repo Repository) Service {
	return &service{repo: repo}
}

// CreateAuthor 创建作者
func (s *service) CreateAuthor(ctx context.Context, firstName, lastName string, birthDate time.Time, deathDate *time.Time, nationality, biography string, notableWorks []string) (*Author, error) {
	// 1. 姓名校验
	if firstName == "" || lastName == "" {
		return nil, ErrInvalidName
	}

	// 2. 日期校验:逝世日期不能早于出生日期
	if deathDate != nil && deathDate.Before(birthDate) {
		return nil, ErrInvalidDeathDate
	}

	// 3. 创建实体并持久化
	author := NewAuthor(firstName, lastName, birthDate, deathDate, nationality, biography, notableWorks)
	if err := s.repo.Create(ctx, author); err != nil {
		return nil, err
	}

	return author, nil
}

// GetAuthorByID 根据ID获取作者
func (s *service) GetAuthorByID(ctx context.Context, id uint) (*Author, error) {
	return s.repo.FindByID(ctx, id)
}

// UpdateAuthor 更新作者信息
// 部分更新语义:空字符串/nil表示保持原值,与原目录API的PUT语义对齐
func (s *service) UpdateAuthor(ctx context.Context, id uint, firstName, lastName string, birthDate, deathDate *time.Time, nationality, biography string, notableWorks []string) (*Author, error) {
	// 1. 查询作者
	author, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	// 2. 更新基本信息
	author.UpdateInfo(firstName, lastName, nationality, biography)
	if birthDate != nil {
		author.BirthDate = *birthDate
	}
	if deathDate != nil {
		author.DeathDate = deathDate
	}
	if notableWorks != nil {
		author.NotableWorks = notableWorks
	}

	// 3. 日期一致性校验
	if author.DeathDate != nil && author.DeathDate.Before(author.BirthDate) {
		return nil, ErrInvalidDeathDate
	}

	// 4. 持久化
	if err := s.repo.Update(ctx, author); err != nil {
		return nil, err
	}

	return author, nil
}

// DeleteAuthor 删除作者
func (s *service) DeleteAuthor(ctx context.Context, id uint) error {
	// 先确认存在,保证删除不存在的作者返回404而非静默成功
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

// ListAuthors 分页查询作者列表
func (s *service) ListAuthors(ctx context.Context, params ListParams) ([]*Author, int64, error) {
	return s.repo.List(ctx, params)
}
