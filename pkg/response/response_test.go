package response

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	apperrors "github.com/MicheleArgenti/cse341-library-management-system/pkg/errors"
)

// TestHTTPStatus 测试业务错误码到HTTP状态码的映射
// 借阅类业务冲突（无副本、超上限、已借未还、已归还、未归还不可删）
// 按原API约定映射400，重复资源映射409
func TestHTTPStatus(t *testing.T) {
	cases := []struct {
		name string
		code int
		want int
	}{
		{"成功", 0, http.StatusOK},
		{"未登录", apperrors.ErrCodeUnauthorized, http.StatusUnauthorized},
		{"Token过期", apperrors.ErrCodeTokenExpired, http.StatusUnauthorized},
		{"无权限", apperrors.ErrCodeForbidden, http.StatusForbidden},
		{"图书不存在", apperrors.ErrCodeBookNotFound, http.StatusNotFound},
		{"会员不存在", apperrors.ErrCodeMemberNotFound, http.StatusNotFound},
		{"借阅记录不存在", apperrors.ErrCodeRecordNotFound, http.StatusNotFound},
		{"无可借副本", apperrors.ErrCodeNoCopiesAvailable, http.StatusBadRequest},
		{"已达借阅上限", apperrors.ErrCodeBorrowLimitReached, http.StatusBadRequest},
		{"已借此书未还", apperrors.ErrCodeAlreadyBorrowed, http.StatusBadRequest},
		{"记录已归还", apperrors.ErrCodeAlreadyReturned, http.StatusBadRequest},
		{"未归还不可删除", apperrors.ErrCodeActiveRecord, http.StatusBadRequest},
		{"ISBN重复", apperrors.ErrCodeISBNDuplicate, http.StatusConflict},
		{"邮箱重复", apperrors.ErrCodeEmailDuplicate, http.StatusConflict},
		{"ID格式非法", apperrors.ErrCodeInvalidID, http.StatusBadRequest},
		{"参数错误", apperrors.ErrCodeInvalidParams, http.StatusBadRequest},
		{"事务失败", apperrors.ErrCodeTransactionFailure, http.StatusInternalServerError},
		{"内部错误", apperrors.ErrCodeInternal, http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, HTTPStatus(tc.code))
		})
	}
}
