package controllers

import (
	"errors"
	"membership-http-service/internal/domain/services"
	"membership-http-service/internal/domain/services/container"
	"membership-http-service/internal/error/code"
	"membership-http-service/internal/error/response"
	"mime/multipart"

	"github.com/gin-gonic/gin"
	Logger "membership-http-service/pkg/logger"
)

// InterfaceFileController 定义文件控制器接口
type InterfaceFileController interface {
	UploadFiles()
	GetMemberFiles()
	GetMemberProfileFile()
}

// FileController 处理会员文件相关的请求
type FileController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewFileController 创建一个新的文件控制器
func NewFileController(ctx *gin.Context, container *container.ServiceContainer) *FileController {
	return &FileController{
		Ctx:       ctx,
		Container: container,
	}
}

// UploadFiles 为指定会员上传一批文件
// @Summary      上传文件
// @Description  仅接受 .jpg/.jpeg/.png/.pdf，单个文件不超过10MB；任一文件不合法则整批拒绝
// @Tags         File
// @Accept       multipart/form-data
// @Produce      json
// @Param        memberId path string true "会员ID"
// @Param        fileDescription formData string false "文件描述"
// @Param        paymentId formData string false "关联的缴费记录ID"
// @Security     BearerAuth
// @Success      200  {array}   models.MemberFileDTO
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /members/uploads/{memberId} [post]
func (c *FileController) UploadFiles() {
	memberID := c.Ctx.Param("memberId")
	if memberID == "" {
		response.ParamError(c.Ctx, "member id is required")
		return
	}

	form, err := c.Ctx.MultipartForm()
	if err != nil || form == nil {
		response.ParamError(c.Ctx, "multipart form is required")
		return
	}

	var headers []*multipart.FileHeader
	for _, fhs := range form.File {
		headers = append(headers, fhs...)
	}
	if len(headers) == 0 {
		response.Fail(c.Ctx, code.ErrFileEmpty)
		return
	}

	fileService := c.Container.GetService("file").(services.InterfaceFileService)
	files, err := fileService.UploadFiles(memberID, headers, c.Ctx.PostForm("fileDescription"), c.Ctx.PostForm("paymentId"))
	if err != nil {
		switch {
		case errors.Is(err, services.ErrMemberNotFound):
			response.Fail(c.Ctx, code.ErrMemberNotFound)
		case errors.Is(err, services.ErrFileTypeNotAllowed):
			response.Fail(c.Ctx, code.ErrFileTypeNotAllowed)
		case errors.Is(err, services.ErrFileTooLarge):
			response.Fail(c.Ctx, code.ErrFileTooLarge)
		default:
			Logger.Error("上传文件失败: %v", err)
			response.Fail(c.Ctx, code.ErrDatabase)
		}
		return
	}

	response.Success(c.Ctx, files)
}

// GetMemberFiles 获取指定会员的全部文件
// @Summary      获取会员文件列表
// @Description  返回会员的全部文件，内容以base64编码
// @Tags         File
// @Accept       json
// @Produce      json
// @Param        memberId path string true "会员ID"
// @Success      200  {array}   models.MemberFileDTO
// @Router       /members/files/{memberId} [get]
func (c *FileController) GetMemberFiles() {
	memberID := c.Ctx.Param("memberId")
	if memberID == "" {
		response.ParamError(c.Ctx, "member id is required")
		return
	}

	fileService := c.Container.GetService("file").(services.InterfaceFileService)
	files, err := fileService.GetMemberFiles(memberID)
	if err != nil {
		Logger.Error("获取会员文件失败: %v", err)
		response.Fail(c.Ctx, code.ErrDatabase)
		return
	}

	response.Success(c.Ctx, files)
}

// GetMemberProfileFile 获取指定会员的第一个文件
// @Summary      获取会员头像文件
// @Description  返回会员的第一个文件，用于头像展示
// @Tags         File
// @Accept       json
// @Produce      json
// @Param        memberId path string true "会员ID"
// @Success      200  {object}  models.MemberFileDTO
// @Failure      404  {object}  map[string]string
// @Router       /members/file/{memberId} [get]
func (c *FileController) GetMemberProfileFile() {
	memberID := c.Ctx.Param("memberId")
	if memberID == "" {
		response.ParamError(c.Ctx, "member id is required")
		return
	}

	fileService := c.Container.GetService("file").(services.InterfaceFileService)
	file, err := fileService.GetMemberProfileFile(memberID)
	if err != nil {
		if errors.Is(err, services.ErrFileNotFound) {
			response.Fail(c.Ctx, code.ErrFileNotFound)
			return
		}
		Logger.Error("获取会员头像失败: %v", err)
		response.Fail(c.Ctx, code.ErrDatabase)
		return
	}

	response.Success(c.Ctx, file)
}

// HandleFileFunc 返回一个处理文件请求的Gin处理函数
func HandleFileFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewFileController(ctx, container)

		switch method {
		case "uploadFiles":
			controller.UploadFiles()
		case "getMemberFiles":
			controller.GetMemberFiles()
		case "getMemberProfileFile":
			controller.GetMemberProfileFile()
		default:
			response.ParamError(ctx, "invalid method")
		}
	}
}
