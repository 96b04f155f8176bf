package dto

// BorrowBookRequest HTTP借书请求
// LoanDays缺省使用配置的默认借期(loan_days)
type BorrowBookRequest struct {
	BookID   uint   `json:"bookId" binding:"required,min=1" example:"1"`
	MemberID uint   `json:"memberId" binding:"required,min=1" example:"1"`
	LoanDays int    `json:"loanDays" binding:"omitempty,min=1,max=365" example:"14"`
	Notes    string `json:"notes" binding:"omitempty,max=500" example:"Reserved at front desk"`
}

// ListRecordsRequest HTTP借阅记录列表请求(query参数)
// status取值:Borrowed/Overdue/Returned/Returned (Late)
// 说明:Overdue是派生状态(未还且已过期),Borrowed包含Overdue
type ListRecordsRequest struct {
	Page     int    `form:"page" binding:"omitempty,min=1" example:"1"`
	PageSize int    `form:"pageSize" binding:"omitempty,min=1,max=100" example:"20"`
	BookID   uint   `form:"bookId" binding:"omitempty,min=1" example:"1"`
	MemberID uint   `form:"memberId" binding:"omitempty,min=1" example:"1"`
	Status   string `form:"status" binding:"omitempty,max=20" example:"Borrowed"`
}
