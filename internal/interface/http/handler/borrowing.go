package handler

import (
	"github.com/gin-gonic/gin"

	appborrowing "github.com/MicheleArgenti/cse341-library-management-system/internal/application/borrowing"
	"github.com/MicheleArgenti/cse341-library-management-system/internal/interface/http/dto"
	apperrors "github.com/MicheleArgenti/cse341-library-management-system/pkg/errors"
	"github.com/MicheleArgenti/cse341-library-management-system/pkg/response"
)

// BorrowingHandler 借阅HTTP处理器
// 借书/还书是本系统的核心写路径,底层为原子批次(三张表同事务更新)
type BorrowingHandler struct {
	borrowBookUseCase   *appborrowing.BorrowBookUseCase
	returnBookUseCase   *appborrowing.ReturnBookUseCase
	deleteRecordUseCase *appborrowing.DeleteRecordUseCase
	queryRecordsUseCase *appborrowing.QueryRecordsUseCase
}

// NewBorrowingHandler 创建借阅处理器
func NewBorrowingHandler(
	borrowBookUseCase *appborrowing.BorrowBookUseCase,
	returnBookUseCase *appborrowing.ReturnBookUseCase,
	deleteRecordUseCase *appborrowing.DeleteRecordUseCase,
	queryRecordsUseCase *appborrowing.QueryRecordsUseCase,
) *BorrowingHandler {
	return &BorrowingHandler{
		borrowBookUseCase:   borrowBookUseCase,
		returnBookUseCase:   returnBookUseCase,
		deleteRecordUseCase: deleteRecordUseCase,
		queryRecordsUseCase: queryRecordsUseCase,
	}
}

// BorrowBook 借书
// @Summary      借书
// @Description  创建借阅记录并扣减可借副本、累加会员在借数(原子批次)
// @Tags         借阅
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body dto.BorrowBookRequest true "借书请求"
// @Success      201 {object} response.Response{data=appborrowing.RecordView}
// @Failure      400 {object} response.Response "无可借副本/会员不可借/已借未还"
// @Failure      401 {object} response.Response "未登录"
// @Failure      404 {object} response.Response "图书或会员不存在"
// @Router       /api/v1/borrowing/borrow [post]
func (h *BorrowingHandler) BorrowBook(c *gin.Context) {
	// 1. 参数绑定与验证
	var req dto.BorrowBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithCode(c, apperrors.ErrCodeBindError, "参数错误: "+err.Error())
		return
	}

	// 2. 调用应用层用例(前置校验顺序与锁次序由用例保证)
	result, err := h.borrowBookUseCase.Execute(c.Request.Context(), appborrowing.BorrowBookRequest{
		BookID:   req.BookID,
		MemberID: req.MemberID,
		LoanDays: req.LoanDays,
		Notes:    req.Notes,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, result)
}

// ReturnBook 还书
// @Summary      还书
// @Description  结算逾期费并恢复副本/在借计数;重复还书返回业务错误
// @Tags         借阅
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "借阅记录ID"
// @Success      200 {object} response.Response{data=appborrowing.RecordView}
// @Failure      400 {object} response.Response "记录已归还"
// @Failure      401 {object} response.Response "未登录"
// @Failure      404 {object} response.Response "借阅记录不存在"
// @Router       /api/v1/borrowing/return/{id} [put]
func (h *BorrowingHandler) ReturnBook(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	result, err := h.returnBookUseCase.Execute(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}

// GetRecord 查询借阅记录详情
// @Summary      查询借阅记录详情
// @Description  返回记录及图书/会员摘要;Overdue状态按当前时间派生
// @Tags         借阅
// @Produce      json
// @Param        id path int true "借阅记录ID"
// @Success      200 {object} response.Response{data=appborrowing.RecordView}
// @Failure      400 {object} response.Response "ID格式非法"
// @Failure      404 {object} response.Response "借阅记录不存在"
// @Router       /api/v1/borrowing/{id} [get]
func (h *BorrowingHandler) GetRecord(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	result, err := h.queryRecordsUseCase.GetByID(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}

// ListRecords 分页查询借阅记录
// @Summary      查询借阅记录列表
// @Tags         借阅
// @Produce      json
// @Param        page query int false "页码" default(1)
// @Param        pageSize query int false "每页数量" default(20)
// @Param        bookId query int false "按图书过滤"
// @Param        memberId query int false "按会员过滤"
// @Param        status query string false "状态过滤" Enums(Borrowed, Overdue, Returned, Returned (Late))
// @Success      200 {object} response.Response{data=appborrowing.ListRecordsResponse}
// @Router       /api/v1/borrowing [get]
func (h *BorrowingHandler) ListRecords(c *gin.Context) {
	var req dto.ListRecordsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.ErrorWithCode(c, apperrors.ErrCodeBindError, "参数错误: "+err.Error())
		return
	}

	result, err := h.queryRecordsUseCase.List(c.Request.Context(), appborrowing.ListRecordsRequest{
		Page:     req.Page,
		PageSize: req.PageSize,
		BookID:   req.BookID,
		MemberID: req.MemberID,
		Status:   req.Status,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}

// DeleteRecord 删除借阅记录
// @Summary      删除借阅记录
// @Description  台账清理,仅终态记录可删;未归还记录返回业务错误
// @Tags         借阅
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "借阅记录ID"
// @Success      200 {object} response.Response
// @Failure      400 {object} response.Response "记录未归还"
// @Failure      401 {object} response.Response "未登录"
// @Failure      404 {object} response.Response "借阅记录不存在"
// @Router       /api/v1/borrowing/{id} [delete]
func (h *BorrowingHandler) DeleteRecord(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.deleteRecordUseCase.Execute(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, gin.H{"deleted": id})
}
