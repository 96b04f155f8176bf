package author

import (
	apperrors "github.com/MicheleArgenti/cse341-library-management-system/pkg/errors"
)

// 作者领域错误定义
var (
	// ErrAuthorNotFound 作者不存在
	ErrAuthorNotFound = apperrors.New(apperrors.ErrCodeAuthorNotFound, "作者不存在")

	// ErrInvalidName 姓名不能为空
	ErrInvalidName = apperrors.New(apperrors.ErrCodeInvalidParams, "作者姓名不能为空")

	// ErrInvalidBirthDate 出生日期格式不正确
	ErrInvalidBirthDate = apperrors.New(apperrors.ErrCodeInvalidParams, "出生日期格式不正确(应为YYYY-MM-DD)")

	// ErrInvalidDeathDate 逝世日期不能早于出生日期
	ErrInvalidDeathDate = apperrors.New(apperrors.ErrCodeInvalidParams, "逝世日期不能早于出生日期")
)
