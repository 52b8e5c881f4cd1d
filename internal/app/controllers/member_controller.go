package controllers

import (
	"encoding/json"
	"errors"
	"membership-http-service/internal/domain/models"
	"membership-http-service/internal/domain/services"
	"membership-http-service/internal/domain/services/container"
	"membership-http-service/internal/error/code"
	"membership-http-service/internal/error/response"
	"mime/multipart"
	"strconv"

	"github.com/gin-gonic/gin"
	Logger "membership-http-service/pkg/logger"
)

// InterfaceMemberController 定义会员控制器接口
type InterfaceMemberController interface {
	GetMembers()
	GetMember()
	CreateMember()
	UpdateMember()
	DeleteMember()
}

// MemberController 处理会员相关的请求
type MemberController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewMemberController 创建一个新的会员控制器
func NewMemberController(ctx *gin.Context, container *container.ServiceContainer) *MemberController {
	return &MemberController{
		Ctx:       ctx,
		Container: container,
	}
}

// GetMembers 获取所有会员
// @Summary      获取会员列表
// @Description  获取全部会员及其地址、家庭成员、缴费、事件和文件
// @Tags         Member
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   models.MemberDTO
// @Failure      401  {object}  map[string]string
// @Router       /members [get]
func (c *MemberController) GetMembers() {
	memberService := c.Container.GetService("member").(services.InterfaceMemberService)
	members, err := memberService.GetAllMembers()
	if err != nil {
		Logger.Error("获取会员列表失败: %v", err)
		response.Fail(c.Ctx, code.ErrDatabase)
		return
	}

	response.Success(c.Ctx, members)
}

// GetMember 获取单个会员
// @Summary      获取会员详情
// @Description  根据ID获取会员的完整聚合，文件内容以base64返回
// @Tags         Member
// @Accept       json
// @Produce      json
// @Param        id path string true "会员ID"
// @Success      200  {object}  models.MemberDTO
// @Failure      404  {object}  map[string]string
// @Router       /members/{id} [get]
func (c *MemberController) GetMember() {
	id := c.Ctx.Param("id")
	if id == "" {
		response.ParamError(c.Ctx, "member id is required")
		return
	}

	memberService := c.Container.GetService("member").(services.InterfaceMemberService)
	member, err := memberService.GetMemberByID(id)
	if err != nil {
		if errors.Is(err, services.ErrMemberNotFound) {
			response.Fail(c.Ctx, code.ErrMemberNotFound)
			return
		}
		Logger.Error("获取会员详情失败: %v", err)
		response.Fail(c.Ctx, code.ErrDatabase)
		return
	}

	response.Success(c.Ctx, member)
}

// CreateMember 创建新会员
// @Summary      创建会员
// @Description  以multipart表单创建会员，子集合通过JSON字符串字段传递，文件随表单上传
// @Tags         Member
// @Accept       multipart/form-data
// @Produce      json
// @Param        firstName formData string true "名"
// @Param        lastName formData string true "姓"
// @Param        email formData string true "邮箱"
// @Param        addressesJson formData string false "地址集合的JSON字符串"
// @Param        familyMembersJson formData string false "家庭成员集合的JSON字符串"
// @Param        paymentsJson formData string false "缴费集合的JSON字符串"
// @Param        incidentsJson formData string false "事件集合的JSON字符串"
// @Security     BearerAuth
// @Success      200  {string}  string "新会员ID"
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Router       /members [post]
func (c *MemberController) CreateMember() {
	dto, err := c.bindMemberForm()
	if err != nil {
		response.ParamError(c.Ctx, err.Error())
		return
	}
	if dto.Email == "" {
		response.FieldError(c.Ctx, "email", "Email is required")
		return
	}

	// 收集表单中的全部文件
	var headers []*multipart.FileHeader
	if form, err := c.Ctx.MultipartForm(); err == nil && form != nil {
		for _, fhs := range form.File {
			headers = append(headers, fhs...)
		}
	}

	fileService := c.Container.GetService("file").(services.InterfaceFileService)
	files, err := fileService.ReadFiles(headers, c.Ctx.PostForm("fileDescription"), c.Ctx.PostForm("paymentId"))
	if err != nil {
		if errors.Is(err, services.ErrFileTypeNotAllowed) {
			response.Fail(c.Ctx, code.ErrFileTypeNotAllowed)
			return
		}
		if errors.Is(err, services.ErrFileTooLarge) {
			response.Fail(c.Ctx, code.ErrFileTooLarge)
			return
		}
		response.ParamError(c.Ctx, "failed to read uploaded files")
		return
	}

	memberService := c.Container.GetService("member").(services.InterfaceMemberService)
	id, err := memberService.CreateMember(dto, files)
	if err != nil {
		if errors.Is(err, services.ErrEmailTaken) {
			response.FieldError(c.Ctx, "email", code.GetMessage(code.ErrEmailAlreadyExist))
			return
		}
		if errors.Is(err, services.ErrUsernameTaken) {
			response.FieldError(c.Ctx, "username", code.GetMessage(code.ErrUsernameAlreadyExist))
			return
		}
		Logger.Error("创建会员失败: %v", err)
		response.Fail(c.Ctx, code.ErrDatabase)
		return
	}

	// 按前端约定直接返回新会员ID字符串
	response.Success(c.Ctx, id)
}

// UpdateMember 更新会员信息
// @Summary      更新会员
// @Description  更新会员标量字段并按ID对五个子集合做差异合并
// @Tags         Member
// @Accept       json
// @Produce      json
// @Param        id path string true "会员ID"
// @Param        request body models.MemberDTO true "会员聚合"
// @Security     BearerAuth
// @Success      200  {object}  models.MemberDTO
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /members/{id} [put]
func (c *MemberController) UpdateMember() {
	id := c.Ctx.Param("id")
	if id == "" {
		response.ParamError(c.Ctx, "member id is required")
		return
	}

	var dto models.MemberDTO
	if err := c.Ctx.ShouldBindJSON(&dto); err != nil {
		response.Fail(c.Ctx, code.ErrBind)
		return
	}

	memberService := c.Container.GetService("member").(services.InterfaceMemberService)
	member, err := memberService.UpdateMember(id, &dto)
	if err != nil {
		if errors.Is(err, services.ErrMemberNotFound) {
			response.Fail(c.Ctx, code.ErrMemberNotFound)
			return
		}
		if errors.Is(err, services.ErrEmailTaken) {
			response.FieldError(c.Ctx, "email", code.GetMessage(code.ErrEmailAlreadyExist))
			return
		}
		Logger.Error("更新会员失败: %v", err)
		response.Fail(c.Ctx, code.ErrDatabase)
		return
	}

	response.Success(c.Ctx, member)
}

// DeleteMember 删除会员
// @Summary      删除会员
// @Description  删除会员及其全部子记录
// @Tags         Member
// @Accept       json
// @Produce      json
// @Param        id path string true "会员ID"
// @Security     BearerAuth
// @Success      200
// @Failure      404  {object}  map[string]string
// @Router       /members/{id} [delete]
func (c *MemberController) DeleteMember() {
	id := c.Ctx.Param("id")
	if id == "" {
		response.ParamError(c.Ctx, "member id is required")
		return
	}

	memberService := c.Container.GetService("member").(services.InterfaceMemberService)
	if err := memberService.DeleteMember(id); err != nil {
		if errors.Is(err, services.ErrMemberNotFound) {
			response.Fail(c.Ctx, code.ErrMemberNotFound)
			return
		}
		Logger.Error("删除会员失败: %v", err)
		response.Fail(c.Ctx, code.ErrDatabase)
		return
	}

	response.Success(c.Ctx, gin.H{"message": "Member deleted"})
}

// bindMemberForm 从multipart表单解析会员DTO，
// 子集合以JSON字符串字段传递
func (c *MemberController) bindMemberForm() (*models.MemberDTO, error) {
	dto := &models.MemberDTO{
		ID:           c.Ctx.PostForm("id"),
		FirstName:    c.Ctx.PostForm("firstName"),
		MiddleName:   c.Ctx.PostForm("middleName"),
		LastName:     c.Ctx.PostForm("lastName"),
		Email:        c.Ctx.PostForm("email"),
		PhoneNumber:  c.Ctx.PostForm("phoneNumber"),
		RegisterDate: c.Ctx.PostForm("registerDate"),
		UserName:     c.Ctx.PostForm("userName"),
		Password:     c.Ctx.PostForm("password"),
	}

	if v := c.Ctx.PostForm("isActive"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			dto.IsActive = &b
		}
	}
	if v := c.Ctx.PostForm("isAdmin"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			dto.IsAdmin = &b
		}
	}

	if v := c.Ctx.PostForm("addressesJson"); v != "" {
		if err := json.Unmarshal([]byte(v), &dto.Addresses); err != nil {
			return nil, errors.New("invalid addressesJson")
		}
	}
	if v := c.Ctx.PostForm("familyMembersJson"); v != "" {
		if err := json.Unmarshal([]byte(v), &dto.FamilyMembers); err != nil {
			return nil, errors.New("invalid familyMembersJson")
		}
	}
	if v := c.Ctx.PostForm("paymentsJson"); v != "" {
		if err := json.Unmarshal([]byte(v), &dto.Payments); err != nil {
			return nil, errors.New("invalid paymentsJson")
		}
	}
	if v := c.Ctx.PostForm("incidentsJson"); v != "" {
		if err := json.Unmarshal([]byte(v), &dto.Incidents); err != nil {
			return nil, errors.New("invalid incidentsJson")
		}
	}

	return dto, nil
}

// HandleMemberFunc 返回一个处理会员请求的Gin处理函数
func HandleMemberFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewMemberController(ctx, container)

		switch method {
		case "getMembers":
			controller.GetMembers()
		case "getMember":
			controller.GetMember()
		case "createMember":
			controller.CreateMember()
		case "updateMember":
			controller.UpdateMember()
		case "deleteMember":
			controller.DeleteMember()
		default:
			response.ParamError(ctx, "invalid method")
		}
	}
}
