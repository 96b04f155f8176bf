package borrowing

import (
	apperrors "github.com/MicheleArgenti/cse341-library-management-system/pkg/errors"
)

// 借阅领域错误定义
var (
	// ErrRecordNotFound 借阅记录不存在
	ErrRecordNotFound = apperrors.New(apperrors.ErrCodeRecordNotFound, "借阅记录不存在")

	// ErrAlreadyBorrowed 该会员已借此书且未归还
	ErrAlreadyBorrowed = apperrors.New(apperrors.ErrCodeAlreadyBorrowed, "该会员已借阅此书且尚未归还")

	// ErrAlreadyReturned 记录已归还(终态),不可再次归还
	ErrAlreadyReturned = apperrors.New(apperrors.ErrCodeAlreadyReturned, "该记录已归还")

	// ErrActiveRecord 未归还记录不可删除
	ErrActiveRecord = apperrors.New(apperrors.ErrCodeActiveRecord, "未归还的借阅记录不可删除")

	// ErrInvalidLoanDays 借期必须为正整数
	ErrInvalidLoanDays = apperrors.New(apperrors.ErrCodeInvalidParams, "借期必须为正整数天数")

	// ErrInvalidStatusTransition 非法的状态流转
	ErrInvalidStatusTransition = apperrors.New(apperrors.ErrCodeBusinessError, "非法的借阅状态流转")
)
