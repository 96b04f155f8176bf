package borrowing

import (
	"context"
	"time"

	"github.com/MicheleArgenti/cse341-library-management-system/internal/domain/book"
	"github.com/MicheleArgenti/cse341-library-management-system/internal/domain/borrowing"
	"github.com/MicheleArgenti/cse341-library-management-system/internal/domain/member"
	apperrors "github.com/MicheleArgenti/cse341-library-management-system/pkg/errors"
)

// QueryRecordsUseCase 借阅记录查询用例
// 设计说明:
// 1. 详情与列表都附带图书/会员摘要(原API的联表展示)
// 2. 状态过滤接受展示名:Borrowed包含逾期未还,Overdue只取逾期未还
type QueryRecordsUseCase struct {
	recordRepo borrowing.Repository
	bookRepo   book.Repository
	memberRepo member.Repository
}

// NewQueryRecordsUseCase 创建借阅记录查询用例
func NewQueryRecordsUseCase(
	recordRepo borrowing.Repository,
	bookRepo book.Repository,
	memberRepo member.Repository,
) *QueryRecordsUseCase {
	return &QueryRecordsUseCase{
		recordRepo: recordRepo,
		bookRepo:   bookRepo,
		memberRepo: memberRepo,
	}
}

// ListRecordsRequest 列表查询请求DTO
type ListRecordsRequest struct {
	Page     int
	PageSize int
	BookID   uint   // 0表示不过滤
	MemberID uint   // 0表示不过滤
	Status   string // 空表示不过滤;Borrowed/Overdue/Returned/Returned (Late)
}

// ListRecordsResponse 列表查询响应DTO
type ListRecordsResponse struct {
	Records  []*RecordView `json:"records"`
	Total    int64         `json:"total"`
	Page     int           `json:"page"`
	PageSize int           `json:"pageSize"`
}

// GetByID 查询借阅记录详情(含图书/会员摘要)
func (uc *QueryRecordsUseCase) GetByID(ctx context.Context, id uint) (*RecordView, error) {
	record, err := uc.recordRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	view := newRecordView(record, time.Now())
	uc.enrich(ctx, view, record)
	return view, nil
}

// List 分页查询借阅记录
func (uc *QueryRecordsUseCase) List(ctx context.Context, req ListRecordsRequest) (*ListRecordsResponse, error) {
	// 分页参数兜底
	if req.Page < 1 {
		req.Page = 1
	}
	if req.PageSize < 1 || req.PageSize > 100 {
		req.PageSize = 20
	}

	params := borrowing.ListParams{
		Page:     req.Page,
		PageSize: req.PageSize,
		BookID:   req.BookID,
		MemberID: req.MemberID,
	}

	// 状态过滤:展示名 → 存储状态
	// Borrowed查全部未归还(含逾期);Overdue查未归还且已过应还时间
	if req.Status != "" {
		switch req.Status {
		case "Borrowed":
			st := borrowing.StatusBorrowed
			params.Status = &st
		case "Overdue":
			st := borrowing.StatusBorrowed
			now := time.Now().UTC()
			params.Status = &st
			params.DueBefore = &now
		case "Returned":
			st := borrowing.StatusReturned
			params.Status = &st
		case "Returned (Late)":
			st := borrowing.StatusReturnedLate
			params.Status = &st
		default:
			return nil, apperrors.New(apperrors.ErrCodeInvalidParams,
				"状态必须是Borrowed/Overdue/Returned/Returned (Late)之一")
		}
	}

	records, total, err := uc.recordRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	views := make([]*RecordView, len(records))
	for i, record := range records {
		views[i] = newRecordView(record, now)
		uc.enrich(ctx, views[i], record)
	}

	return &ListRecordsResponse{
		Records:  views,
		Total:    total,
		Page:     req.Page,
		PageSize: req.PageSize,
	}, nil
}

// enrich 填充图书/会员摘要
// 关联方已删除时摘要留空,历史台账仍可读,查询失败不阻塞主结果
func (uc *QueryRecordsUseCase) enrich(ctx context.Context, view *RecordView, record *borrowing.Record) {
	b, err := uc.bookRepo.FindByID(ctx, record.BookID)
	if err != nil {
		b = nil
	}
	m, err := uc.memberRepo.FindByID(ctx, record.MemberID)
	if err != nil {
		m = nil
	}
	view.attachDetails(b, m)
}
