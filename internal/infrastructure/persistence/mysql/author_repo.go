package mysql

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/MicheleArgenti/cse341-library-management-system/internal/domain/author"
	apperrors "github.com/MicheleArgenti/cse341-library-management-system/pkg/errors"
)

// authorRepository 作者仓储实现(MySQL)
// 设计说明:
// 1. 实现domain/author/repository.go定义的接口
// 2. 负责domain实体与GORM模型之间的转换
type authorRepository struct {
	db *gorm.DB
}

// NewAuthorRepository 创建作者仓储
func NewAuthorRepository(db *gorm.DB) author.Repository {
	return &authorRepository{db: db}
}

// Create 创建作者
func (r *authorRepository) Create(ctx context.Context, a *author.Author) error {
	model := toAuthorModel(a)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return apperrors.Wrap(err, "创建作者失败")
	}

	// 回填自增ID与时间戳
	a.ID = model.ID
	a.CreatedAt = model.CreatedAt
	a.UpdatedAt = model.UpdatedAt

	return nil
}

// FindByID 根据ID查找作者
func (r *authorRepository) FindByID(ctx context.Context, id uint) (*author.Author, error) {
	var model AuthorModel
	err := r.db.WithContext(ctx).First(&model, id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, author.ErrAuthorNotFound
		}
		return nil, apperrors.Wrap(err, "查询作者失败")
	}

	return toAuthorEntity(&model), nil
}

// Update 更新作者信息
func (r *authorRepository) Update(ctx context.Context, a *author.Author) error {
	model := toAuthorModel(a)
	model.ID = a.ID

	if err := r.db.WithContext(ctx).Save(model).Error; err != nil {
		return apperrors.Wrap(err, "更新作者失败")
	}

	a.UpdatedAt = model.UpdatedAt
	return nil
}

// Delete 删除作者(软删除)
func (r *authorRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&AuthorModel{}, id)

	if result.Error != nil {
		return apperrors.Wrap(result.Error, "删除作者失败")
	}

	if result.RowsAffected == 0 {
		return author.ErrAuthorNotFound
	}

	return nil
}

// List 分页查询作者列表
func (r *authorRepository) List(ctx context.Context, params author.ListParams) ([]*author.Author, int64, error) {
	var models []AuthorModel
	var total int64

	query := r.db.WithContext(ctx).Model(&AuthorModel{})

	// 关键词搜索(姓名、国籍)
	if params.Keyword != "" {
		keyword := "%" + params.Keyword + "%"
		query = query.Where("first_name LIKE ? OR last_name LIKE ? OR nationality LIKE ?", keyword, keyword, keyword)
	}

	// 查询总数
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, apperrors.Wrap(err, "查询作者总数失败")
	}

	// 分页(姓氏排序,与目录习惯一致)
	offset := (params.Page - 1) * params.PageSize
	query = query.Order("last_name ASC, first_name ASC").Limit(params.PageSize).Offset(offset)

	if err := query.Find(&models).Error; err != nil {
		return nil, 0, apperrors.Wrap(err, "查询作者列表失败")
	}

	authors := make([]*author.Author, len(models))
	for i := range models {
		authors[i] = toAuthorEntity(&models[i])
	}

	return authors, total, nil
}

// =========================================
// 辅助函数:模型转换
// =========================================

// toAuthorModel 领域实体 → GORM模型
func toAuthorModel(a *author.Author) *AuthorModel {
	return &AuthorModel{
		FirstName:    a.FirstName,
		LastName:     a.LastName,
		BirthDate:    a.BirthDate,
		DeathDate:    a.DeathDate,
		Nationality:  a.Nationality,
		Biography:    a.Biography,
		NotableWorks: marshalStrings(a.NotableWorks),
	}
}

// toAuthorEntity GORM模型 → 领域实体
func toAuthorEntity(model *AuthorModel) *author.Author {
	return &author.Author{
		ID:           model.ID,
		FirstName:    model.FirstName,
		LastName:     model.LastName,
		BirthDate:    model.BirthDate,
		DeathDate:    model.DeathDate,
		Nationality:  model.Nationality,
		Biography:    model.Biography,
		NotableWorks: unmarshalStrings(model.NotableWorks),
		CreatedAt:    model.CreatedAt,
		UpdatedAt:    model.UpdatedAt,
	}
}
