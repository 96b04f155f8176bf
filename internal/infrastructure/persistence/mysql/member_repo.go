package mysql

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/MicheleArgenti/cse341-library-management-system/internal/domain/member"
	apperrors "github.com/MicheleArgenti/cse341-library-management-system/pkg/errors"
)

// memberRepository 会员仓储实现(MySQL)
type memberRepository struct {
	db *gorm.DB
}

// NewMemberRepository 创建会员仓储
func NewMemberRepository(db *gorm.DB) member.Repository {
	return &memberRepository{db: db}
}

// Create 创建会员
func (r *memberRepository) Create(ctx context.Context, m *member.Member) error {
	model := toMemberModel(m)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		// 检查是否为邮箱重复错误
		if isDuplicateError(err) {
			return member.ErrEmailDuplicate
		}
		return apperrors.Wrap(err, "创建会员失败")
	}

	m.ID = model.ID
	m.CreatedAt = model.CreatedAt
	m.UpdatedAt = model.UpdatedAt

	return nil
}

// FindByID 根据ID查找会员
func (r *memberRepository) FindByID(ctx context.Context, id uint) (*member.Member, error) {
	var model MemberModel
	err := r.db.WithContext(ctx).First(&model, id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, member.ErrMemberNotFound
		}
		return nil, apperrors.Wrap(err, "查询会员失败")
	}

	return toMemberEntity(&model), nil
}

// FindByEmail 根据邮箱查找会员
func (r *memberRepository) FindByEmail(ctx context.Context, email string) (*member.Member, error) {
	var model MemberModel
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&model).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, member.ErrMemberNotFound
		}
		return nil, apperrors.Wrap(err, "查询会员失败")
	}

	return toMemberEntity(&model), nil
}

// Update 更新会员信息
// 注意:BorrowedBooks不在此更新,计数变更必须走IncrBorrowed原子操作
func (r *memberRepository) Update(ctx context.Context, m *member.Member) error {
	model := toMemberModel(m)
	model.ID = m.ID
	model.BorrowedBooks = m.BorrowedBooks

	if err := r.db.WithContext(ctx).Save(model).Error; err != nil {
		if isDuplicateError(err) {
			return member.ErrEmailDuplicate
		}
		return apperrors.Wrap(err, "更新会员失败")
	}

	m.UpdatedAt = model.UpdatedAt
	return nil
}

// Delete 删除会员(软删除)
func (r *memberRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&MemberModel{}, id)

	if result.Error != nil {
		return apperrors.Wrap(result.Error, "删除会员失败")
	}

	if result.RowsAffected == 0 {
		return member.ErrMemberNotFound
	}

	return nil
}

// List 分页查询会员列表
func (r *memberRepository) List(ctx context.Context, params member.ListParams) ([]*member.Member, int64, error) {
	var models []MemberModel
	var total int64

	query := r.db.WithContext(ctx).Model(&MemberModel{})

	// 关键词搜索(姓名、邮箱)
	if params.Keyword != "" {
		keyword := "%" + params.Keyword + "%"
		query = query.Where("first_name LIKE ? OR last_name LIKE ? OR email LIKE ?", keyword, keyword, keyword)
	}

	// 状态过滤
	if params.Status != "" {
		if st, ok := member.ParseStatus(params.Status); ok {
			query = query.Where("status = ?", int(st))
		}
	}

	// 查询总数
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, apperrors.Wrap(err, "查询会员总数失败")
	}

	// 分页
	offset := (params.Page - 1) * params.PageSize
	query = query.Order("created_at DESC").Limit(params.PageSize).Offset(offset)

	if err := query.Find(&models).Error; err != nil {
		return nil, 0, apperrors.Wrap(err, "查询会员列表失败")
	}

	members := make([]*member.Member, len(models))
	for i := range models {
		members[i] = toMemberEntity(&models[i])
	}

	return members, total, nil
}

// LockByID 悲观锁查询会员(用于借书/还书)
// SELECT FOR UPDATE锁定行,防止并发借书突破借阅上限
// 教学要点:必须使用getDB(ctx)从context获取事务DB
func (r *memberRepository) LockByID(ctx context.Context, id uint) (*member.Member, error) {
	var model MemberModel
	db := getDB(ctx, r.db)
	err := db.Clauses(clause.Locking{Strength: "UPDATE"}).First(&model, id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, member.ErrMemberNotFound
		}
		return nil, apperrors.Wrap(err, "锁定会员失败")
	}

	return toMemberEntity(&model), nil
}

// IncrBorrowed 调整未归还计数(原子操作)
// UPDATE members SET borrowed_books = borrowed_books + delta
// WHERE id = ? AND borrowed_books + delta BETWEEN 0 AND max_books_allowed
// 教学要点:WHERE条件保证不变量0<=borrowed<=max,并发下也不会越界
func (r *memberRepository) IncrBorrowed(ctx context.Context, id uint, delta int) error {
	db := getDB(ctx, r.db)
	result := db.Model(&MemberModel{}).
		Where("id = ?", id).
		Where("borrowed_books + ? >= 0", delta).                    // 防止还书计数为负
		Where("borrowed_books + ? <= max_books_allowed", delta).    // 防止借书突破上限
		Update("borrowed_books", gorm.Expr("borrowed_books + ?", delta))

	if result.Error != nil {
		return apperrors.Wrap(result.Error, "更新借阅计数失败")
	}

	if result.RowsAffected == 0 {
		// 可能是会员不存在,或者计数越界,再查一次确定原因
		var model MemberModel
		if err := getDB(ctx, r.db).First(&model, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return member.ErrMemberNotFound
			}
			return apperrors.Wrap(err, "查询会员失败")
		}
		return member.ErrBorrowLimitReached
	}

	return nil
}

// =========================================
// 辅助函数:模型转换
// =========================================

// toMemberModel 领域实体 → GORM模型
func toMemberModel(m *member.Member) *MemberModel {
	model := &MemberModel{
		FirstName:       m.FirstName,
		LastName:        m.LastName,
		Email:           m.Email,
		Phone:           m.Phone,
		MembershipDate:  m.MembershipDate,
		MembershipType:  m.MembershipType,
		Status:          int(m.Status),
		BorrowedBooks:   m.BorrowedBooks,
		MaxBooksAllowed: m.MaxBooksAllowed,
	}
	if m.Address != nil {
		model.Street = m.Address.Street
		model.City = m.Address.City
		model.State = m.Address.State
		model.ZipCode = m.Address.ZipCode
	}
	return model
}

// toMemberEntity GORM模型 → 领域实体
func toMemberEntity(model *MemberModel) *member.Member {
	m := &member.Member{
		ID:              model.ID,
		FirstName:       model.FirstName,
		LastName:        model.LastName,
		Email:           model.Email,
		Phone:           model.Phone,
		MembershipDate:  model.MembershipDate,
		MembershipType:  model.MembershipType,
		Status:          member.MemberStatus(model.Status),
		BorrowedBooks:   model.BorrowedBooks,
		MaxBooksAllowed: model.MaxBooksAllowed,
		CreatedAt:       model.CreatedAt,
		UpdatedAt:       model.UpdatedAt,
	}
	if model.Street != "" || model.City != "" || model.State != "" || model.ZipCode != "" {
		m.Address = &member.Address{
			Street:  model.Street,
			City:    model.City,
			State:   model.State,
			ZipCode: model.ZipCode,
		}
	}
	return m
}
