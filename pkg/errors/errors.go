package errors

import (
	"errors"
	"fmt"
)

// AppError 自定义应用错误
// 设计说明：
// 1. Code用于客户端判断错误类型（不要直接暴露HTTP状态码）
// 2. Message是用户友好的提示信息
// 3. Err是内部错误，仅记录到日志，不返回给客户端（防止泄露敏感信息）
type AppError struct {
	Code    int    `json:"code"`    // 业务错误码
	Message string `json:"message"` // 用户友好的错误提示
	Err     error  `json:"-"`       // 内部错误（不序列化）
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%d] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%d] %s", e.Code, e.Message)
}

// Unwrap 支持errors.Is和errors.As
func (e *AppError) Unwrap() error {
	return e.Err
}

// New 创建新的AppError
func New(code int, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
	}
}

// Wrap 包装系统错误（如数据库错误、网络错误）
// 用途：将底层错误转换为业务错误，隐藏实现细节
func Wrap(err error, message string) *AppError {
	return &AppError{
		Code:    ErrCodeInternal,
		Message: message,
		Err:     err,
	}
}

// Wrapf 格式化包装错误
func Wrapf(err error, format string, args ...interface{}) *AppError {
	return &AppError{
		Code:    ErrCodeInternal,
		Message: fmt.Sprintf(format, args...),
		Err:     err,
	}
}

// WrapTransaction 包装事务提交失败
// 说明：借阅/归还的原子批次无法提交时使用，整批写入已回滚
func WrapTransaction(err error, message string) *AppError {
	return &AppError{
		Code:    ErrCodeTransactionFailure,
		Message: message,
		Err:     err,
	}
}

// =========================================
// 错误码定义
// =========================================
// 规范：
// - 4xxxx: 客户端错误（参数错误、业务规则校验失败）
// - 5xxxx: 服务端错误（数据库异常、事务提交失败）

const (
	// 系统级错误码（50000-50099）
	ErrCodeInternal           = 50000 // 内部错误
	ErrCodeDatabaseError      = 50001 // 数据库错误
	ErrCodeRedisError         = 50002 // Redis错误
	ErrCodeTransactionFailure = 50003 // 原子批次提交失败（已整体回滚）

	// 认证授权错误（40100-40199）
	ErrCodeUnauthorized    = 40100 // 未登录
	ErrCodeInvalidToken    = 40101 // Token无效
	ErrCodeTokenExpired    = 40102 // Token过期
	ErrCodeInvalidPassword = 40103 // 密码错误
	ErrCodeForbidden       = 40104 // 无权限

	// 资源错误（40400-40499）
	ErrCodeNotFound       = 40400 // 资源不存在(通用)
	ErrCodeAuthorNotFound = 40401 // 作者不存在
	ErrCodeBookNotFound   = 40402 // 图书不存在
	ErrCodeMemberNotFound = 40403 // 会员不存在
	ErrCodeRecordNotFound = 40404 // 借阅记录不存在
	ErrCodeStaffNotFound  = 40405 // 馆员账号不存在

	// 业务规则错误（40000-40099）
	ErrCodeBusinessError      = 40000 // 业务错误(通用)
	ErrCodeNoCopiesAvailable  = 40001 // 无可借副本
	ErrCodeMemberNotActive    = 40002 // 会员状态非Active
	ErrCodeBorrowLimitReached = 40003 // 已达借阅上限
	ErrCodeAlreadyBorrowed    = 40004 // 该会员已借此书未还
	ErrCodeAlreadyReturned    = 40005 // 记录已归还（终态）
	ErrCodeActiveRecord       = 40006 // 未归还记录不可删除
	ErrCodeMemberHasOpenLoans = 40007 // 会员尚有未归还记录
	ErrCodeWeakPassword       = 40008 // 密码强度不足
	ErrCodeBookHasOpenLoans   = 40009 // 图书尚有副本在借

	// 重复资源错误（40900-40949）
	ErrCodeDuplicateEntry = 40900 // 重复记录(通用)
	ErrCodeISBNDuplicate  = 40901 // ISBN已存在
	ErrCodeEmailDuplicate = 40902 // 邮箱已存在

	// 参数错误（40950-40999）
	ErrCodeInvalidParams = 40950 // 参数错误
	ErrCodeBindError     = 40951 // 参数绑定失败
	ErrCodeInvalidID     = 40952 // ID格式非法
)

// =========================================
// 预定义错误（避免每次都New）
// =========================================

var (
	// 系统错误
	ErrInternal           = New(ErrCodeInternal, "系统内部错误")
	ErrDatabaseError      = New(ErrCodeDatabaseError, "数据库错误")
	ErrRedisError         = New(ErrCodeRedisError, "缓存服务错误")
	ErrTransactionFailure = New(ErrCodeTransactionFailure, "事务提交失败，操作已回滚")

	// 认证授权
	ErrUnauthorized    = New(ErrCodeUnauthorized, "请先登录")
	ErrInvalidToken    = New(ErrCodeInvalidToken, "无效的Token")
	ErrTokenExpired    = New(ErrCodeTokenExpired, "Token已过期")
	ErrInvalidPassword = New(ErrCodeInvalidPassword, "密码错误")
	ErrForbidden       = New(ErrCodeForbidden, "无权限访问")

	// 参数错误
	ErrInvalidParams = New(ErrCodeInvalidParams, "参数错误")
	ErrBindError     = New(ErrCodeBindError, "参数格式错误")
	ErrInvalidID     = New(ErrCodeInvalidID, "ID格式非法")

	// 密码强度
	ErrWeakPassword = New(ErrCodeWeakPassword, "密码强度不足（需8-20位，包含字母和数字）")
)

// =========================================
// 辅助函数
// =========================================

// IsAppError 判断是否为AppError
func IsAppError(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr)
}

// GetAppError 提取AppError（如果不是AppError则包装成Internal错误）
func GetAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return Wrap(err, "系统内部错误")
}
