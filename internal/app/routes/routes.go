package routes

import (
	_ "membership-http-service/docs"
	"membership-http-service/internal/app/controllers"
	"membership-http-service/internal/app/middleware"
	"membership-http-service/internal/domain/services/container"
	"membership-http-service/internal/infrastructure/config"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// SetupRouter 初始化并返回配置好的路由
func SetupRouter(db *gorm.DB, cfg *config.Config) *gin.Engine {
	// 初始化 Gin
	r := gin.Default()

	// 添加 CORS 中间件
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", cfg.ClientOrigin)
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, Accept, Origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS, PATCH")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	// 创建服务容器
	serviceContainer := container.NewServiceContainer(db, cfg)
	// 初始化中间件
	middleware.InitAuthMiddleware(cfg, db)
	// 添加 Swagger 文档路由
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// 注册路由
	registerRoutes(r, serviceContainer)
	return r
}

// registerRoutes 配置所有API路由
func registerRoutes(
	r *gin.Engine,
	container *container.ServiceContainer,
) {
	// API 路由根路径
	api := r.Group("/api")
	// 注册公共路由
	registerPublicRoutes(api, container)
	// 注册需要认证的路由
	registerAuthenticatedRoutes(api, container)
}

// registerPublicRoutes 注册公共路由
func registerPublicRoutes(
	api *gin.RouterGroup,
	container *container.ServiceContainer,
) {
	// 添加IP限流中间件 - 每秒允许10个请求，最多突发20个请求
	api.Use(middleware.IPRateLimiter(10, 20))

	// 健康检查路由
	api.GET("/ping", controllers.HandleHealthFunc(container, "ping"))
	api.GET("/health", controllers.HandleHealthFunc(container, "ping")) // 兼容Docker健康检查的路由
	api.GET("/health/status", controllers.HandleHealthFunc(container, "status"))

	// 账户路由 - 登录接口单独收紧限流
	accountGroup := api.Group("/account")
	accountGroup.POST("/login", middleware.PathRateLimiter(5, 10), controllers.HandleAccountFunc(container, "login"))
	accountGroup.POST("/create", middleware.PathRateLimiter(5, 10), controllers.HandleAccountFunc(container, "register"))

	// 会员详情与文件读取接口对前端匿名开放
	api.GET("/members/:id", controllers.HandleMemberFunc(container, "getMember"))
	api.GET("/members/files/:memberId", controllers.HandleFileFunc(container, "getMemberFiles"))
	api.GET("/members/file/:memberId", controllers.HandleFileFunc(container, "getMemberProfileFile"))
}

// registerAuthenticatedRoutes 注册需要认证的路由
func registerAuthenticatedRoutes(
	api *gin.RouterGroup,
	container *container.ServiceContainer,
) {
	// 添加认证中间件
	auth := api.Group("/")
	auth.Use(middleware.Authentication())

	// 添加通用限流中间件 - 每秒30个请求，最多突发50个请求
	auth.Use(middleware.IPRateLimiter(30, 50))

	// 当前用户路由
	auth.GET("/account/current", controllers.HandleAccountFunc(container, "currentUser"))

	// 会员路由
	memberGroup := auth.Group("/members")
	memberGroup.GET("", controllers.HandleMemberFunc(container, "getMembers"))
	memberGroup.POST("", controllers.HandleMemberFunc(container, "createMember"))
	memberGroup.PUT("/:id", controllers.HandleMemberFunc(container, "updateMember"))
	memberGroup.DELETE("/:id", controllers.HandleMemberFunc(container, "deleteMember"))
	memberGroup.POST("/uploads/:memberId", controllers.HandleFileFunc(container, "uploadFiles"))
}
