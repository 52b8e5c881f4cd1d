package services

import (
	"errors"
	"io"
	"membership-http-service/internal/domain/models"
	"membership-http-service/internal/infrastructure/config"
	"mime/multipart"
	"path/filepath"
	"strings"

	"gorm.io/gorm"
)

// 文件相关的业务错误
var (
	ErrFileTypeNotAllowed = errors.New("file type is not allowed")
	ErrFileTooLarge       = errors.New("file exceeds the maximum allowed size")
	ErrFileNotFound       = errors.New("file not found")
)

// MaxUploadSize 单个文件的大小上限
const MaxUploadSize = 10 << 20 // 10MB

// 允许上传的文件扩展名白名单
var allowedExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".pdf":  true,
}

// InterfaceFileService defines the member file service interface
type InterfaceFileService interface {
	ValidateFile(header *multipart.FileHeader) error
	ReadFiles(headers []*multipart.FileHeader, description, paymentID string) ([]models.MemberFile, error)
	UploadFiles(memberID string, headers []*multipart.FileHeader, description, paymentID string) ([]models.MemberFileDTO, error)
	GetMemberFiles(memberID string) ([]models.MemberFileDTO, error)
	GetMemberProfileFile(memberID string) (*models.MemberFileDTO, error)
}

// FileService 提供会员文件的上传与读取服务
type FileService struct {
	DB     *gorm.DB
	Config *config.Config
}

// NewFileService 创建一个新的文件服务
func NewFileService(db *gorm.DB, cfg *config.Config) InterfaceFileService {
	return &FileService{
		DB:     db,
		Config: cfg,
	}
}

// 1 ValidateFile 校验单个上传文件的扩展名与大小
func (s *FileService) ValidateFile(header *multipart.FileHeader) error {
	ext := strings.ToLower(filepath.Ext(header.Filename))
	if !allowedExtensions[ext] {
		return ErrFileTypeNotAllowed
	}
	if header.Size > MaxUploadSize {
		return ErrFileTooLarge
	}
	return nil
}

// 2 ReadFiles 校验并读取一批上传文件。
// 任何一个文件不合法则整批拒绝；内容为空的文件直接跳过
func (s *FileService) ReadFiles(headers []*multipart.FileHeader, description, paymentID string) ([]models.MemberFile, error) {
	for _, header := range headers {
		if header.Size == 0 {
			continue
		}
		if err := s.ValidateFile(header); err != nil {
			return nil, err
		}
	}

	var files []models.MemberFile
	for _, header := range headers {
		if header.Size == 0 {
			continue
		}

		src, err := header.Open()
		if err != nil {
			return nil, err
		}
		data, err := io.ReadAll(src)
		src.Close()
		if err != nil {
			return nil, err
		}

		file := models.MemberFile{
			FileName: header.Filename,
			FileType: strings.TrimPrefix(strings.ToLower(filepath.Ext(header.Filename)), "."),
			Size:     int64(len(data)),
			FileData: data,
		}
		if description != "" {
			desc := description
			file.FileDescription = &desc
		}
		if paymentID != "" {
			pid := paymentID
			file.PaymentID = &pid
		}
		files = append(files, file)
	}
	return files, nil
}

// 3 UploadFiles 为指定会员保存一批上传文件
func (s *FileService) UploadFiles(memberID string, headers []*multipart.FileHeader, description, paymentID string) ([]models.MemberFileDTO, error) {
	// 验证会员是否存在
	var count int64
	if err := s.DB.Model(&models.Member{}).Where("id = ?", memberID).Count(&count).Error; err != nil {
		return nil, err
	}
	if count == 0 {
		return nil, ErrMemberNotFound
	}

	files, err := s.ReadFiles(headers, description, paymentID)
	if err != nil {
		return nil, err
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		for i := range files {
			files[i].MemberID = memberID
			if err := tx.Create(&files[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	dtos := make([]models.MemberFileDTO, 0, len(files))
	for _, f := range files {
		dtos = append(dtos, memberFileToDTO(f))
	}
	return dtos, nil
}

// 4 GetMemberFiles 获取指定会员的全部文件，内容以base64返回
func (s *FileService) GetMemberFiles(memberID string) ([]models.MemberFileDTO, error) {
	var files []models.MemberFile
	if err := s.DB.Where("member_id = ?", memberID).Find(&files).Error; err != nil {
		return nil, err
	}

	dtos := make([]models.MemberFileDTO, 0, len(files))
	for _, f := range files {
		dtos = append(dtos, memberFileToDTO(f))
	}
	return dtos, nil
}

// 5 GetMemberProfileFile 获取指定会员的第一个文件，用于头像展示
func (s *FileService) GetMemberProfileFile(memberID string) (*models.MemberFileDTO, error) {
	var file models.MemberFile
	err := s.DB.Where("member_id = ?", memberID).Order("id").First(&file).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrFileNotFound
		}
		return nil, err
	}

	dto := memberFileToDTO(file)
	return &dto, nil
}
