package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"membership-http-service/internal/error/code"
)

// 响应格式约定：成功时直接返回数据本身，
// 失败时返回 {"error": "..."} ，字段级校验失败返回 {"字段名": "..."}

// Success 成功响应，直接返回数据
func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

// Created 创建成功响应
func Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, data)
}

// Fail 失败响应
func Fail(c *gin.Context, errorCode int) {
	c.JSON(code.GetStatus(errorCode), gin.H{"error": code.GetMessage(errorCode)})
}

// FailWithMessage 失败响应（自定义消息）
func FailWithMessage(c *gin.Context, errorCode int, message string) {
	c.JSON(code.GetStatus(errorCode), gin.H{"error": message})
}

// FieldError 字段级校验失败响应，键为字段名
func FieldError(c *gin.Context, field, message string) {
	c.JSON(http.StatusBadRequest, gin.H{field: message})
}

// FieldErrors 多字段校验失败响应
func FieldErrors(c *gin.Context, fields map[string]string) {
	body := gin.H{}
	for field, message := range fields {
		body[field] = message
	}
	c.JSON(http.StatusBadRequest, body)
}

// ParamError 参数错误响应
func ParamError(c *gin.Context, message string) {
	FailWithMessage(c, code.ErrBind, message)
}

// ServerError 服务器错误响应
func ServerError(c *gin.Context) {
	Fail(c, code.ErrUnknown)
}

// NotFound 资源不存在响应
func NotFound(c *gin.Context, message string) {
	if message == "" {
		message = code.GetMessage(code.ErrRecordNotFound)
	}
	c.JSON(http.StatusNotFound, gin.H{"error": message})
}

// Unauthorized 未授权响应
func Unauthorized(c *gin.Context) {
	c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
}
