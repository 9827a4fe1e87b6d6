package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ErrorResponse 统一错误响应并中止后续 handler
func ErrorResponse(ctx *gin.Context, status int, code string, message string) {
	ctx.AbortWithStatusJSON(status, gin.H{
		"code":    code,
		"message": message,
	})
}

// SuccessResponse 统一成功响应，data 以 key 包装
func SuccessResponse(ctx *gin.Context, key string, data interface{}, count int) {
	ctx.JSON(http.StatusOK, gin.H{
		"code":  "OK",
		"data":  gin.H{key: data},
		"count": count,
	})
}

// CreatedResponse 与 SuccessResponse 相同的结构，状态码 201
func CreatedResponse(ctx *gin.Context, key string, data interface{}) {
	ctx.JSON(http.StatusCreated, gin.H{
		"code":  "OK",
		"data":  gin.H{key: data},
		"count": 1,
	})
}
