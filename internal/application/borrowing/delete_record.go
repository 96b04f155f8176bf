package borrowing

import (
	"context"

	"github.com/MicheleArgenti/cse341-library-management-system/internal/domain/borrowing"
)

// DeleteRecordUseCase 删除借阅记录用例
// 业务规则:只有终态(已归还)记录可删除,未归还记录是活跃台账
type DeleteRecordUseCase struct {
	recordRepo borrowing.Repository
}

// NewDeleteRecordUseCase 创建删除借阅记录用例
func NewDeleteRecordUseCase(recordRepo borrowing.Repository) *DeleteRecordUseCase {
	return &DeleteRecordUseCase{recordRepo: recordRepo}
}

// Execute 执行删除
// 删除未归还记录会使图书/会员计数悬挂,必须先归还再删除
func (uc *DeleteRecordUseCase) Execute(ctx context.Context, recordID uint) error {
	// 1. 查询记录(不存在→404)
	record, err := uc.recordRepo.FindByID(ctx, recordID)
	if err != nil {
		return err
	}

	// 2. 终态校验
	if !record.IsTerminal() {
		return borrowing.ErrActiveRecord
	}

	// 3. 硬删除(台账清理)
	return uc.recordRepo.Delete(ctx, recordID)
}
