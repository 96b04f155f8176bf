package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	apperrors "github.com/MicheleArgenti/cse341-library-management-system/pkg/errors"
	"github.com/MicheleArgenti/cse341-library-management-system/pkg/response"
)

// parseIDParam 解析路径参数:id
// 非数字ID直接返回400,不进入业务层
func parseIDParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		response.Error(c, apperrors.ErrInvalidID)
		return 0, false
	}
	return uint(id), true
}
