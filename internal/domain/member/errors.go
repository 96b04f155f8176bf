package member

import (
	apperrors "github.com/MicheleArgenti/cse341-library-management-system/pkg/errors"
)

// 会员领域错误定义
var (
	// ErrMemberNotFound 会员不存在
	ErrMemberNotFound = apperrors.New(apperrors.ErrCodeMemberNotFound, "会员不存在")

	// ErrEmailDuplicate 邮箱已存在
	ErrEmailDuplicate = apperrors.New(apperrors.ErrCodeEmailDuplicate, "该邮箱已注册会员")

	// ErrInvalidEmail 邮箱格式不正确
	ErrInvalidEmail = apperrors.New(apperrors.ErrCodeInvalidParams, "邮箱格式不正确")

	// ErrInvalidMembershipType 会员类型非法
	ErrInvalidMembershipType = apperrors.New(apperrors.ErrCodeInvalidParams, "会员类型必须是Standard/Premium/Student/Senior之一")

	// ErrInvalidStatus 会员状态非法
	ErrInvalidStatus = apperrors.New(apperrors.ErrCodeInvalidParams, "会员状态必须是Active/Inactive/Suspended之一")

	// ErrInvalidName 姓名不能为空
	ErrInvalidName = apperrors.New(apperrors.ErrCodeInvalidParams, "会员姓名不能为空")

	// ErrInvalidMembershipDate 入会日期格式不正确
	ErrInvalidMembershipDate = apperrors.New(apperrors.ErrCodeInvalidParams, "入会日期格式不正确(应为YYYY-MM-DD)")

	// ErrMemberNotActive 会员状态非Active,不可借书
	ErrMemberNotActive = apperrors.New(apperrors.ErrCodeMemberNotActive, "会员状态异常,不可借书")

	// ErrBorrowLimitReached 已达借阅上限
	ErrBorrowLimitReached = apperrors.New(apperrors.ErrCodeBorrowLimitReached, "已达借阅上限")

	// ErrMemberHasOpenLoans 会员尚有未归还记录,不可删除
	ErrMemberHasOpenLoans = apperrors.New(apperrors.ErrCodeMemberHasOpenLoans, "会员尚有未归还的图书,不可删除")
)
