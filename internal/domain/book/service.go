package book

import (
	"context"
	"regexp"
)

// Service 图书领域服务接口
// 设计说明:
// 1. 领域服务封装跨实体的业务逻辑和业务规则校验
// 2. 不依赖具体的Repository实现(依赖倒置)
type Service interface {
	// CreateBook 录入馆藏图书
	// 业务规则:
	// - 书名必填
	// - ISBN格式必须合法(10位或13位数字)
	// - 副本数满足 0 <= available <= total
	// - ISBN不能重复
	CreateBook(ctx context.Context, title, author, isbn string, genres []string, publishedYear int, publisher string, pages, totalCopies, availableCopies int) (*Book, error)

	// GetBookByID 根据ID获取图书详情
	GetBookByID(ctx context.Context, id uint) (*Book, error)

	// UpdateBook 更新图书信息
	// 副本数传负数表示不修改;修改后仍需满足副本数不变量
	UpdateBook(ctx context.Context, id uint, title, author, isbn string, genres []string, publishedYear int, publisher string, pages, totalCopies, availableCopies int) (*Book, error)

	// DeleteBook 删除图书
	// 业务规则:尚有副本在借的图书不可删除
	DeleteBook(ctx context.Context, id uint) error

	// ListBooks 分页查询图书列表(公开接口)
	ListBooks(ctx context.Context, params ListParams) ([]*Book, int64, error)
}

// service 领域服务实现
type service struct {
	repo Repository
}

// NewService 创建图书领域服务
func NewService(repo Repository) Service {
	return &service{repo: repo}
}

// CreateBook 录入图书
func (s *service) CreateBook(ctx context.Context, title, author, isbn string, genres []string, publishedYear int, publisher string, pages, totalCopies, availableCopies int) (*Book, error) {
	// 1. 书名校验
	if title == "" {
		return nil, ErrInvalidTitle
	}

	// 2. ISBN格式校验
	if !isValidISBN(isbn) {
		return nil, ErrInvalidISBN
	}

	// 3. 检查ISBN是否已存在(数据库UNIQUE索引兜底)
	existing, err := s.repo.FindByISBN(ctx, isbn)
	if err == nil && existing != nil {
		return nil, ErrISBNDuplicate
	}
	if err != nil && err != ErrBookNotFound {
		return nil, err
	}

	// 4. 创建实体并校验副本数不变量
	book := NewBook(title, author, isbn, genres, publishedYear, publisher, pages, totalCopies, availableCopies)
	if err := book.ValidateCopies(); err != nil {
		return nil, err
	}

	// 5. 持久化
	if err := s.repo.Create(ctx, book); err != nil {
		return nil, err
	}

	return book, nil
}

// GetBookByID 根据ID获取图书
func (s *service) GetBookByID(ctx context.Context, id uint) (*Book, error) {
	return s.repo.FindByID(ctx, id)
}

// UpdateBook 更新图书信息
func (s *service) UpdateBook(ctx context.Context, id uint, title, author, isbn string, genres []string, publishedYear int, publisher string, pages, totalCopies, availableCopies int) (*Book, error) {
	// 1. 查询图书
	book, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	// 2. ISBN变更校验(格式+唯一性)
	if isbn != "" && isbn != book.ISBN {
		if !isValidISBN(isbn) {
			return nil, ErrInvalidISBN
		}
		existing, err := s.repo.FindByISBN(ctx, isbn)
		if err == nil && existing != nil && existing.ID != id {
			return nil, ErrISBNDuplicate
		}
		if err != nil && err != ErrBookNotFound {
			return nil, err
		}
		book.ISBN = isbn
	}

	// 3. 更新基本信息与副本数
	book.UpdateInfo(title, author, publisher, publishedYear, pages)
	if genres != nil {
		book.Genres = genres
	}
	if totalCopies >= 0 {
		book.TotalCopies = totalCopies
	}
	if availableCopies >= 0 {
		book.AvailableCopies = availableCopies
	}

	// 4. 副本数不变量校验
	if err := book.ValidateCopies(); err != nil {
		return nil, err
	}

	// 5. 持久化
	if err := s.repo.Update(ctx, book); err != nil {
		return nil, err
	}

	return book, nil
}

// DeleteBook 删除图书
// 防御规则:可借数<总数说明有副本在外,删除会让未归还记录悬挂
// (还书事务查不到图书,会员计数无法恢复)
func (s *service) DeleteBook(ctx context.Context, id uint) error {
	b, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if b.HasCopiesOnLoan() {
		return ErrBookHasOpenLoans
	}

	return s.repo.Delete(ctx, id)
}

// ListBooks 分页查询图书列表
func (s *service) ListBooks(ctx context.Context, params ListParams) ([]*Book, int64, error) {
	return s.repo.List(ctx, params)
}

// =========================================
// 辅助函数:业务规则校验
// =========================================

// isValidISBN 校验ISBN格式
// 支持:
// - ISBN-10: 10位数字
// - ISBN-13: 13位数字
// 简化实现:去除分隔符后只检查位数(生产环境应校验校验位)
func isValidISBN(isbn string) bool {
	re := regexp.MustCompile(`[^0-9Xx]`)
	cleanISBN := re.ReplaceAllString(isbn, "")

	length := len(cleanISBN)
	return length == 10 || length == 13
}
