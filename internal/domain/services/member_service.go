package services

import (
	"errors"
	"fmt"
	"membership-http-service/internal/domain/models"
	"membership-http-service/internal/infrastructure/config"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// 会员相关的业务错误
var (
	ErrMemberNotFound = errors.New("member not found")
	ErrEmailTaken     = errors.New("email is already taken")
	ErrUsernameTaken  = errors.New("username is already taken")
)

// DefaultMemberPassword 创建会员时未提供密码则使用该默认密码
const DefaultMemberPassword = "Default@123"

// InterfaceMemberService defines the member service interface
type InterfaceMemberService interface {
	GetAllMembers() ([]models.MemberDTO, error)
	GetMemberByID(id string) (*models.MemberDTO, error)
	CreateMember(dto *models.MemberDTO, files []models.MemberFile) (string, error)
	UpdateMember(id string, dto *models.MemberDTO) (*models.MemberDTO, error)
	DeleteMember(id string) error
}

// MemberService 提供会员聚合的读写服务
type MemberService struct {
	DB     *gorm.DB
	Config *config.Config
}

// NewMemberService 创建一个新的会员服务
func NewMemberService(db *gorm.DB, cfg *config.Config) InterfaceMemberService {
	return &MemberService{
		DB:     db,
		Config: cfg,
	}
}

// loadMember 加载会员及全部子集合。
// Preload对每个子集合各发起一条独立查询，避免联表导致的行数放大
func (s *MemberService) loadMember(id string) (*models.Member, error) {
	var member models.Member
	err := s.DB.
		Preload("Addresses").
		Preload("FamilyMembers").
		Preload("Payments").
		Preload("Incidents").
		Preload("MemberFiles").
		First(&member, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMemberNotFound
		}
		return nil, err
	}
	return &member, nil
}

// 1 GetAllMembers 获取所有会员及其子集合
func (s *MemberService) GetAllMembers() ([]models.MemberDTO, error) {
	var members []models.Member
	err := s.DB.
		Preload("Addresses").
		Preload("FamilyMembers").
		Preload("Payments").
		Preload("Incidents").
		Preload("MemberFiles").
		Find(&members).Error
	if err != nil {
		return nil, err
	}

	dtos := make([]models.MemberDTO, 0, len(members))
	for i := range members {
		dtos = append(dtos, *MemberToDTO(&members[i]))
	}
	return dtos, nil
}

// 2 GetMemberByID 根据ID获取会员详情
func (s *MemberService) GetMemberByID(id string) (*models.MemberDTO, error) {
	member, err := s.loadMember(id)
	if err != nil {
		return nil, err
	}
	return MemberToDTO(member), nil
}

// 3 CreateMember 创建新会员及其子记录，整体在一个事务中提交
func (s *MemberService) CreateMember(dto *models.MemberDTO, files []models.MemberFile) (string, error) {
	// 验证邮箱唯一性
	var count int64
	if err := s.DB.Model(&models.Member{}).Where("email = ?", dto.Email).Count(&count).Error; err != nil {
		return "", err
	}
	if count > 0 {
		return "", ErrEmailTaken
	}

	userName := strings.TrimSpace(dto.UserName)
	if userName == "" {
		userName = s.generateUserName(dto.FirstName, dto.LastName)
	} else {
		// 验证用户名唯一性
		if err := s.DB.Model(&models.Member{}).Where("user_name = ?", userName).Count(&count).Error; err != nil {
			return "", err
		}
		if count > 0 {
			return "", ErrUsernameTaken
		}
	}

	password := dto.Password
	if password == "" {
		password = DefaultMemberPassword
	}

	member := models.Member{
		ID:           dto.ID,
		FirstName:    dto.FirstName,
		MiddleName:   dto.MiddleName,
		LastName:     dto.LastName,
		Email:        dto.Email,
		PhoneNumber:  dto.PhoneNumber,
		RegisterDate: dto.RegisterDate,
		IsActive:     true,
		UserName:     userName,
		Password:     password,
	}
	if dto.IsActive != nil {
		member.IsActive = *dto.IsActive
	}
	if dto.IsAdmin != nil {
		member.IsAdmin = *dto.IsAdmin
	}

	for _, a := range dto.Addresses {
		member.Addresses = append(member.Addresses, models.Address{
			ID:      a.ID,
			Street:  a.Street,
			City:    a.City,
			State:   a.State,
			Country: a.Country,
			ZipCode: a.ZipCode,
		})
	}
	for _, f := range dto.FamilyMembers {
		member.FamilyMembers = append(member.FamilyMembers, models.FamilyMember{
			ID:                     f.ID,
			MemberFamilyFirstName:  f.MemberFamilyFirstName,
			MemberFamilyMiddleName: f.MemberFamilyMiddleName,
			MemberFamilyLastName:   f.MemberFamilyLastName,
			Relationship:           f.Relationship,
		})
	}
	// 类型为空的缴费和事件记录视为前端未填完的草稿行，直接丢弃
	for _, p := range dto.Payments {
		if strings.TrimSpace(p.PaymentType) == "" {
			continue
		}
		member.Payments = append(member.Payments, models.Payment{
			ID:                   p.ID,
			PaymentAmount:        paymentAmount(p),
			PaymentDate:          ParseDate(p.PaymentDate),
			PaymentType:          models.ParsePaymentType(p.PaymentType),
			PaymentRecurringType: models.ParseRecurringType(p.PaymentRecurringType),
		})
	}
	for _, i := range dto.Incidents {
		if strings.TrimSpace(i.IncidentType) == "" {
			continue
		}
		member.Incidents = append(member.Incidents, models.Incident{
			ID:                  i.ID,
			EventNumber:         i.EventNumber,
			IncidentType:        models.ParseIncidentType(i.IncidentType),
			IncidentDescription: i.IncidentDescription,
			IncidentDate:        incidentDate(i),
		})
	}
	member.MemberFiles = files

	// Create会连同子记录一起在单个事务中写入
	if err := s.DB.Create(&member).Error; err != nil {
		return "", err
	}
	return member.ID, nil
}

// 4 UpdateMember 更新会员标量字段并对五个子集合做差异合并，
// 全部变更在一个事务中提交，任何失败整体回滚
func (s *MemberService) UpdateMember(id string, dto *models.MemberDTO) (*models.MemberDTO, error) {
	member, err := s.loadMember(id)
	if err != nil {
		return nil, err
	}

	// 如果更新邮箱，需要检查唯一性
	if dto.Email != "" && dto.Email != member.Email {
		var count int64
		if err := s.DB.Model(&models.Member{}).Where("email = ? AND id != ?", dto.Email, id).Count(&count).Error; err != nil {
			return nil, err
		}
		if count > 0 {
			return nil, ErrEmailTaken
		}
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		applyScalarUpdates(member, dto)
		if err := tx.Omit(clause.Associations).Save(member).Error; err != nil {
			return err
		}

		// 为nil的集合表示本次请求未携带，保持原状
		if dto.Addresses != nil {
			if err := applyDiff(tx, reconcileAddresses(member.Addresses, dto.Addresses, member.ID)); err != nil {
				return err
			}
		}
		if dto.FamilyMembers != nil {
			if err := applyDiff(tx, reconcileFamilyMembers(member.FamilyMembers, dto.FamilyMembers, member.ID)); err != nil {
				return err
			}
		}
		if dto.Payments != nil {
			if err := applyDiff(tx, reconcilePayments(member.Payments, dto.Payments, member.ID)); err != nil {
				return err
			}
		}
		if dto.Incidents != nil {
			if err := applyDiff(tx, reconcileIncidents(member.Incidents, dto.Incidents, member.ID)); err != nil {
				return err
			}
		}
		if dto.MemberFiles != nil {
			if err := applyDiff(tx, reconcileMemberFiles(member.MemberFiles, dto.MemberFiles, member.ID)); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	// 重新加载，返回合并后的完整聚合
	return s.GetMemberByID(id)
}

// 5 DeleteMember 删除会员及其全部子记录
func (s *MemberService) DeleteMember(id string) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		var member models.Member
		if err := tx.First(&member, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrMemberNotFound
			}
			return err
		}

		// 显式删除子记录，不依赖数据库级联
		if err := tx.Where("member_id = ?", id).Delete(&models.Address{}).Error; err != nil {
			return err
		}
		if err := tx.Where("member_id = ?", id).Delete(&models.FamilyMember{}).Error; err != nil {
			return err
		}
		if err := tx.Where("member_id = ?", id).Delete(&models.Payment{}).Error; err != nil {
			return err
		}
		if err := tx.Where("member_id = ?", id).Delete(&models.Incident{}).Error; err != nil {
			return err
		}
		if err := tx.Where("member_id = ?", id).Delete(&models.MemberFile{}).Error; err != nil {
			return err
		}
		return tx.Delete(&member).Error
	})
}

// applyScalarUpdates 将传入的非空标量字段应用到会员实体，
// 请求未携带的字段保持原值
func applyScalarUpdates(member *models.Member, dto *models.MemberDTO) {
	if dto.FirstName != "" {
		member.FirstName = dto.FirstName
	}
	if dto.MiddleName != "" {
		member.MiddleName = dto.MiddleName
	}
	if dto.LastName != "" {
		member.LastName = dto.LastName
	}
	if dto.Email != "" {
		member.Email = dto.Email
	}
	if dto.PhoneNumber != "" {
		member.PhoneNumber = dto.PhoneNumber
	}
	if dto.RegisterDate != "" {
		member.RegisterDate = dto.RegisterDate
	}
	if dto.UserName != "" {
		member.UserName = dto.UserName
	}
	if dto.Password != "" {
		// BeforeSave钩子会重新哈希
		member.Password = dto.Password
	}
	if dto.IsActive != nil {
		member.IsActive = *dto.IsActive
	}
	if dto.IsAdmin != nil {
		member.IsAdmin = *dto.IsAdmin
	}
}

// generateUserName 按 FirstName_LastName 生成用户名，冲突时追加序号
func (s *MemberService) generateUserName(firstName, lastName string) string {
	base := strings.TrimSpace(firstName) + "_" + strings.TrimSpace(lastName)
	base = strings.ToLower(strings.ReplaceAll(base, " ", "_"))

	userName := base
	for n := 2; ; n++ {
		var count int64
		if err := s.DB.Model(&models.Member{}).Where("user_name = ?", userName).Count(&count).Error; err != nil {
			return userName
		}
		if count == 0 {
			return userName
		}
		userName = fmt.Sprintf("%s_%d", base, n)
	}
}
