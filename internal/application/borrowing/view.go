package borrowing

import (
	"fmt"
	"time"

	"github.com/MicheleArgenti/cse341-library-management-system/internal/domain/book"
	"github.com/MicheleArgenti/cse341-library-management-system/internal/domain/borrowing"
	"github.com/MicheleArgenti/cse341-library-management-system/internal/domain/member"
)

// RecordView 借阅记录响应DTO
// 设计说明:
// 1. 状态输出派生状态(未归还且过期展示Overdue),存储状态不直接外露
// 2. 逾期费同时给出"分"(机器可读)与格式化金额(展示用)
// 3. BookDetails/MemberDetails是关联查询的冗余展示,详情查询时填充
type RecordView struct {
	ID            uint           `json:"id"`
	BookID        uint           `json:"bookId"`
	MemberID      uint           `json:"memberId"`
	BorrowDate    time.Time      `json:"borrowDate"`
	DueDate       time.Time      `json:"dueDate"`
	ReturnDate    *time.Time     `json:"returnDate"`
	Status        string         `json:"status"`
	LateFeeCents  int64          `json:"lateFeeCents"`
	LateFee       string         `json:"lateFee"` // 格式化金额,无逾期费时为"No late fee"
	RenewalCount  int            `json:"renewalCount"`
	Notes         string         `json:"notes,omitempty"`
	BookDetails   *BookDetails   `json:"bookDetails,omitempty"`
	MemberDetails *MemberDetails `json:"memberDetails,omitempty"`
}

// BookDetails 借阅记录关联的图书摘要
type BookDetails struct {
	Title  string `json:"title"`
	Author string `json:"author"`
	ISBN   string `json:"isbn"`
}

// MemberDetails 借阅记录关联的会员摘要
type MemberDetails struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// newRecordView 领域实体 → 响应DTO
func newRecordView(r *borrowing.Record, now time.Time) *RecordView {
	return &RecordView{
		ID:           r.ID,
		BookID:       r.BookID,
		MemberID:     r.MemberID,
		BorrowDate:   r.BorrowDate,
		DueDate:      r.DueDate,
		ReturnDate:   r.ReturnDate,
		Status:       r.EffectiveStatus(now).String(),
		LateFeeCents: r.LateFeeCents,
		LateFee:      formatLateFee(r.LateFeeCents),
		RenewalCount: r.RenewalCount,
		Notes:        r.Notes,
	}
}

// formatLateFee 逾期费格式化(分→美元展示)
func formatLateFee(cents int64) string {
	if cents <= 0 {
		return "No late fee"
	}
	return fmt.Sprintf("$%.2f", float64(cents)/100.0)
}

// attachDetails 填充图书/会员摘要
// 图书或会员已被删除时对应摘要为nil,不视为错误(历史台账仍可读)
func (v *RecordView) attachDetails(b *book.Book, m *member.Member) {
	if b != nil {
		v.BookDetails = &BookDetails{
			Title:  b.Title,
			Author: b.Author,
			ISBN:   b.ISBN,
		}
	}
	if m != nil {
		v.MemberDetails = &MemberDetails{
			Name:  m.FullName(),
			Email: m.Email,
		}
	}
}
