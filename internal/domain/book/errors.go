package book

import (
	apperrors "github.com/MicheleArgenti/cse341-library-management-system/pkg/errors"
)

// 图书领域错误定义
var (
	// ErrBookNotFound 图书不存在
	ErrBookNotFound = apperrors.New(apperrors.ErrCodeBookNotFound, "图书不存在")

	// ErrISBNDuplicate ISBN已存在
	ErrISBNDuplicate = apperrors.New(apperrors.ErrCodeISBNDuplicate, "ISBN号已存在")

	// ErrInvalidISBN ISBN格式不正确
	ErrInvalidISBN = apperrors.New(apperrors.ErrCodeInvalidParams, "ISBN格式不正确")

	// ErrInvalidCopies 副本数非法(必须满足0<=可借<=总数)
	ErrInvalidCopies = apperrors.New(apperrors.ErrCodeInvalidParams, "副本数非法:可借副本数必须在0与总副本数之间")

	// ErrInvalidTitle 书名不能为空
	ErrInvalidTitle = apperrors.New(apperrors.ErrCodeInvalidParams, "书名不能为空")

	// ErrNoCopiesAvailable 无可借副本
	ErrNoCopiesAvailable = apperrors.New(apperrors.ErrCodeNoCopiesAvailable, "该图书暂无可借副本")

	// ErrBookHasOpenLoans 尚有副本在借,不可删除
	ErrBookHasOpenLoans = apperrors.New(apperrors.ErrCodeBookHasOpenLoans, "该图书尚有副本未归还,不可删除")
)
