package controllers

import (
	"errors"
	"membership-http-service/internal/domain/services"
	"membership-http-service/internal/domain/services/container"
	"membership-http-service/internal/error/code"
	"membership-http-service/internal/error/response"

	"github.com/gin-gonic/gin"
)

// InterfaceAccountController 定义账户控制器接口
type InterfaceAccountController interface {
	Login()
	Register()
	CurrentUser()
}

// AccountController 处理账户相关的请求
type AccountController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewAccountController 创建一个新的账户控制器
func NewAccountController(ctx *gin.Context, container *container.ServiceContainer) *AccountController {
	return &AccountController{
		Ctx:       ctx,
		Container: container,
	}
}

// LoginRequest 表示登录请求，用户名和邮箱二选一
type LoginRequest struct {
	Username string `json:"username" example:"john_doe"`
	Email    string `json:"email" binding:"omitempty,email" example:"john@example.com"`
	Password string `json:"password" binding:"required" example:"Default@123"`
}

// RegisterRequest 表示注册请求
type RegisterRequest struct {
	FirstName string `json:"firstName" example:"John"`
	LastName  string `json:"lastName" example:"Doe"`
	Email     string `json:"email" binding:"required,email" example:"john@example.com"`
	Username  string `json:"username" binding:"required" example:"john_doe"`
	Password  string `json:"password" binding:"required,min=6" example:"Default@123"`
}

// Login 账户登录
// @Summary      登录
// @Description  使用用户名或邮箱登录，成功后返回JWT令牌
// @Tags         Account
// @Accept       json
// @Produce      json
// @Param        request body LoginRequest true "登录信息"
// @Success      200  {object}  services.AuthResult
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Router       /account/login [post]
func (c *AccountController) Login() {
	var req LoginRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.Fail(c.Ctx, code.ErrBind)
		return
	}

	identifier := req.Username
	if identifier == "" {
		identifier = req.Email
	}
	if identifier == "" {
		response.ParamError(c.Ctx, "username or email is required")
		return
	}

	jwtService := c.Container.GetService("jwt").(services.InterfaceJWTService)
	result, err := jwtService.Login(identifier, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			response.Unauthorized(c.Ctx)
			return
		}
		response.Fail(c.Ctx, code.ErrDatabase)
		return
	}

	response.Success(c.Ctx, result)
}

// Register 注册新账户
// @Summary      注册
// @Description  注册新账户并直接返回登录态
// @Tags         Account
// @Accept       json
// @Produce      json
// @Param        request body RegisterRequest true "注册信息"
// @Success      200  {object}  services.AuthResult
// @Failure      400  {object}  map[string]string
// @Router       /account/create [post]
func (c *AccountController) Register() {
	var req RegisterRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.Fail(c.Ctx, code.ErrBind)
		return
	}

	jwtService := c.Container.GetService("jwt").(services.InterfaceJWTService)
	result, err := jwtService.Register(req.FirstName, req.LastName, req.Email, req.Username, req.Password)
	if err != nil {
		// 重复的邮箱或用户名返回字段级错误
		if errors.Is(err, services.ErrEmailTaken) {
			response.FieldError(c.Ctx, "email", code.GetMessage(code.ErrEmailAlreadyExist))
			return
		}
		if errors.Is(err, services.ErrUsernameTaken) {
			response.FieldError(c.Ctx, "username", code.GetMessage(code.ErrUsernameAlreadyExist))
			return
		}
		response.Fail(c.Ctx, code.ErrDatabase)
		return
	}

	response.Success(c.Ctx, result)
}

// CurrentUser 获取当前登录用户
// @Summary      当前用户
// @Description  根据令牌返回当前登录用户，并签发新令牌
// @Tags         Account
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  services.AuthResult
// @Failure      401  {object}  map[string]string
// @Router       /account/current [get]
func (c *AccountController) CurrentUser() {
	userID, _ := c.Ctx.Get("userID")
	id, ok := userID.(string)
	if !ok || id == "" {
		response.Unauthorized(c.Ctx)
		return
	}

	jwtService := c.Container.GetService("jwt").(services.InterfaceJWTService)
	result, err := jwtService.CurrentUser(id)
	if err != nil {
		if errors.Is(err, services.ErrMemberNotFound) {
			response.Unauthorized(c.Ctx)
			return
		}
		response.Fail(c.Ctx, code.ErrDatabase)
		return
	}

	response.Success(c.Ctx, result)
}

// HandleAccountFunc 返回一个处理账户请求的Gin处理函数
func HandleAccountFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewAccountController(ctx, container)

		switch method {
		case "login":
			controller.Login()
		case "register":
			controller.Register()
		case "currentUser":
			controller.CurrentUser()
		default:
			response.ParamError(ctx, "invalid method")
		}
	}
}
