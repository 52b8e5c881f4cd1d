package controllers

import (
	"membership-http-service/internal/domain/services/container"
	"membership-http-service/internal/error/response"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// HealthController 处理健康检查相关的请求
type HealthController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewHealthController 创建一个新的健康检查控制器
func NewHealthController(ctx *gin.Context, container *container.ServiceContainer) *HealthController {
	return &HealthController{
		Ctx:       ctx,
		Container: container,
	}
}

// Ping 服务存活检查
// @Summary      存活检查
// @Tags         Health
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /ping [get]
func (c *HealthController) Ping() {
	response.Success(c.Ctx, gin.H{"message": "pong"})
}

// Status 服务与数据库状态
// @Summary      健康状态
// @Description  检查数据库连接是否可用
// @Tags         Health
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Failure      503  {object}  map[string]interface{}
// @Router       /health/status [get]
func (c *HealthController) Status() {
	status := gin.H{
		"status": "ok",
		"time":   time.Now().Format(time.RFC3339),
	}

	sqlDB, err := c.Container.GetDB().DB()
	if err == nil {
		err = sqlDB.Ping()
	}
	if err != nil {
		status["status"] = "degraded"
		status["database"] = "unreachable"
		c.Ctx.JSON(http.StatusServiceUnavailable, status)
		return
	}

	status["database"] = "ok"
	response.Success(c.Ctx, status)
}

// HandleHealthFunc 返回一个处理健康检查请求的Gin处理函数
func HandleHealthFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewHealthController(ctx, container)

		switch method {
		case "ping":
			controller.Ping()
		case "status":
			controller.Status()
		default:
			response.ParamError(ctx, "invalid method")
		}
	}
}
