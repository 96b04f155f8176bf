package mysql

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/MicheleArgenti/cse341-library-management-system/internal/domain/staff"
	apperrors "github.com/MicheleArgenti/cse341-library-management-system/pkg/errors"
)

// staffRepository 馆员仓储实现(MySQL)
type staffRepository struct {
	db *gorm.DB
}

// NewStaffRepository 创建馆员仓储
func NewStaffRepository(db *gorm.DB) staff.Repository {
	return &staffRepository{db: db}
}

// Create 创建馆员账号
func (r *staffRepository) Create(ctx context.Context, s *staff.Staff) error {
	model := &StaffModel{
		Email:    s.Email,
		Password: s.Password,
		Name:     s.Name,
	}

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		// 邮箱唯一索引冲突 → 业务错误
		if isDuplicateError(err) {
			return staff.ErrEmailDuplicate
		}
		return apperrors.Wrap(err, "创建馆员账号失败")
	}

	s.ID = model.ID
	s.CreatedAt = model.CreatedAt
	s.UpdatedAt = model.UpdatedAt

	return nil
}

// FindByID 根据ID查找馆员
func (r *staffRepository) FindByID(ctx context.Context, id uint) (*staff.Staff, error) {
	var model StaffModel
	err := r.db.WithContext(ctx).First(&model, id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, staff.ErrStaffNotFound
		}
		return nil, apperrors.Wrap(err, "查询馆员失败")
	}

	return toStaffEntity(&model), nil
}

// FindByEmail 根据邮箱查找馆员
func (r *staffRepository) FindByEmail(ctx context.Context, email string) (*staff.Staff, error) {
	var model StaffModel
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&model).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, staff.ErrStaffNotFound
		}
		return nil, apperrors.Wrap(err, "查询馆员失败")
	}

	return toStaffEntity(&model), nil
}

// toStaffEntity GORM模型 → 领域实体
func toStaffEntity(model *StaffModel) *staff.Staff {
	return &staff.Staff{
		ID:        model.ID,
		Email:     model.Email,
		Password:  model.Password,
		Name:      model.Name,
		CreatedAt: model.CreatedAt,
		UpdatedAt: model.UpdatedAt,
	}
}
