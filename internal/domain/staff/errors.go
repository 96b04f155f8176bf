package staff

import (
	apperrors "github.com/MicheleArgenti/cse341-library-management-system/pkg/errors"
)

// 馆员领域错误定义
var (
	// ErrStaffNotFound 馆员账号不存在
	ErrStaffNotFound = apperrors.New(apperrors.ErrCodeStaffNotFound, "馆员账号不存在")

	// ErrEmailDuplicate 邮箱已注册
	ErrEmailDuplicate = apperrors.New(apperrors.ErrCodeEmailDuplicate, "该邮箱已注册")

	// ErrInvalidEmail 邮箱格式不正确
	ErrInvalidEmail = apperrors.New(apperrors.ErrCodeInvalidParams, "邮箱格式不正确")

	// ErrInvalidName 姓名长度不合法
	ErrInvalidName = apperrors.New(apperrors.ErrCodeInvalidParams, "姓名长度应为2-50个字符")
)
