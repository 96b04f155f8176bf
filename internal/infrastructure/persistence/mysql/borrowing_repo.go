package mysql

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/MicheleArgenti/cse341-library-management-system/internal/domain/borrowing"
	apperrors "github.com/MicheleArgenti/cse341-library-management-system/pkg/errors"
)

// borrowingRepository 借阅记录仓储实现(MySQL)
// 设计说明:
// 1. 借书/还书在TxManager的事务中调用,所有方法走getDB(ctx)参与事务
// 2. 逾期(Overdue)是派生状态不落库,查询条件只认存储状态
type borrowingRepository struct {
	db *gorm.DB
}

// NewBorrowingRepository 创建借阅记录仓储
func NewBorrowingRepository(db *gorm.DB) borrowing.Repository {
	return &borrowingRepository{db: db}
}

// Create 创建借阅记录
func (r *borrowingRepository) Create(ctx context.Context, record *borrowing.Record) error {
	model := toRecordModel(record)

	db := getDB(ctx, r.db)
	if err := db.Create(model).Error; err != nil {
		return apperrors.Wrap(err, "创建借阅记录失败")
	}

	// 回填自增ID
	record.ID = model.ID
	record.CreatedAt = model.CreatedAt
	record.UpdatedAt = model.UpdatedAt

	return nil
}

// FindByID 根据ID查找借阅记录
func (r *borrowingRepository) FindByID(ctx context.Context, id uint) (*borrowing.Record, error) {
	var model BorrowingRecordModel
	db := getDB(ctx, r.db)
	err := db.First(&model, id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, borrowing.ErrRecordNotFound
		}
		return nil, apperrors.Wrap(err, "查询借阅记录失败")
	}

	return toRecordEntity(&model), nil
}

// LockByID 悲观锁查询借阅记录(用于还书)
// SELECT FOR UPDATE锁定记录行:并发还同一条记录时,后到的事务
// 在此阻塞,拿到锁后读到的已是终态,被幂等拒绝
// 教学要点:必须使用getDB(ctx)从context获取事务DB
func (r *borrowingRepository) LockByID(ctx context.Context, id uint) (*borrowing.Record, error) {
	var model BorrowingRecordModel
	db := getDB(ctx, r.db)
	err := db.Clauses(clause.Locking{Strength: "UPDATE"}).First(&model, id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, borrowing.ErrRecordNotFound
		}
		return nil, apperrors.Wrap(err, "锁定借阅记录失败")
	}

	return toRecordEntity(&model), nil
}

// FindOpenByBookAndMember 查找指定(图书,会员)的未归还记录
// 借书前的重复借阅校验:同一会员不可重复借同一本书
// 逾期未还的记录存储状态仍是Borrowed,同样命中
func (r *borrowingRepository) FindOpenByBookAndMember(ctx context.Context, bookID, memberID uint) (*borrowing.Record, error) {
	var model BorrowingRecordModel
	db := getDB(ctx, r.db)
	err := db.Where("book_id = ? AND member_id = ? AND status = ?",
		bookID, memberID, int(borrowing.StatusBorrowed)).
		First(&model).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, borrowing.ErrRecordNotFound
		}
		return nil, apperrors.Wrap(err, "查询未归还记录失败")
	}

	return toRecordEntity(&model), nil
}

// Update 更新借阅记录(归还时写入状态、归还时间、逾期费)
func (r *borrowingRepository) Update(ctx context.Context, record *borrowing.Record) error {
	model := toRecordModel(record)
	model.ID = record.ID
	model.CreatedAt = record.CreatedAt

	db := getDB(ctx, r.db)
	if err := db.Save(model).Error; err != nil {
		return apperrors.Wrap(err, "更新借阅记录失败")
	}

	record.UpdatedAt = model.UpdatedAt
	return nil
}

// Delete 删除借阅记录(硬删除)
// 终态校验由应用层完成,这里只执行删除
func (r *borrowingRepository) Delete(ctx context.Context, id uint) error {
	db := getDB(ctx, r.db)
	result := db.Delete(&BorrowingRecordModel{}, id)

	if result.Error != nil {
		return apperrors.Wrap(result.Error, "删除借阅记录失败")
	}

	if result.RowsAffected == 0 {
		return borrowing.ErrRecordNotFound
	}

	return nil
}

// List 分页查询借阅记录
func (r *borrowingRepository) List(ctx context.Context, params borrowing.ListParams) ([]*borrowing.Record, int64, error) {
	var models []BorrowingRecordModel
	var total int64

	query := r.db.WithContext(ctx).Model(&BorrowingRecordModel{})

	// 过滤条件
	if params.BookID > 0 {
		query = query.Where("book_id = ?", params.BookID)
	}
	if params.MemberID > 0 {
		query = query.Where("member_id = ?", params.MemberID)
	}
	if params.Status != nil {
		query = query.Where("status = ?", int(*params.Status))
	}
	if params.DueBefore != nil {
		query = query.Where("due_date < ?", *params.DueBefore)
	}

	// 查询总数
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, apperrors.Wrap(err, "查询借阅记录总数失败")
	}

	// 分页(最近借出的在前)
	offset := (params.Page - 1) * params.PageSize
	query = query.Order("borrow_date DESC").Limit(params.PageSize).Offset(offset)

	if err := query.Find(&models).Error; err != nil {
		return nil, 0, apperrors.Wrap(err, "查询借阅记录列表失败")
	}

	records := make([]*borrowing.Record, len(models))
	for i := range models {
		records[i] = toRecordEntity(&models[i])
	}

	return records, total, nil
}

// =========================================
// 辅助函数:模型转换
// =========================================

// toRecordModel 领域实体 → GORM模型
func toRecordModel(record *borrowing.Record) *BorrowingRecordModel {
	return &BorrowingRecordModel{
		BookID:       record.BookID,
		MemberID:     record.MemberID,
		BorrowDate:   record.BorrowDate,
		DueDate:      record.DueDate,
		ReturnDate:   record.ReturnDate,
		Status:       int(record.Status),
		LateFeeCents: record.LateFeeCents,
		RenewalCount: record.RenewalCount,
		Notes:        record.Notes,
	}
}

// toRecordEntity GORM模型 → 领域实体
func toRecordEntity(model *BorrowingRecordModel) *borrowing.Record {
	return &borrowing.Record{
		ID:           model.ID,
		BookID:       model.BookID,
		MemberID:     model.MemberID,
		BorrowDate:   model.BorrowDate,
		DueDate:      model.DueDate,
		ReturnDate:   model.ReturnDate,
		Status:       borrowing.RecordStatus(model.Status),
		LateFeeCents: model.LateFeeCents,
		RenewalCount: model.RenewalCount,
		Notes:        model.Notes,
		CreatedAt:    model.CreatedAt,
		UpdatedAt:    model.UpdatedAt,
	}
}
