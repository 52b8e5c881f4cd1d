package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Member represents a registered community member and owns all of its
// nested collections
type Member struct {
	ID           string    `gorm:"type:varchar(36);primaryKey" json:"id"`
	FirstName    string    `gorm:"type:varchar(50)" json:"firstName"`
	MiddleName   string    `gorm:"type:varchar(50)" json:"middleName"`
	LastName     string    `gorm:"type:varchar(50)" json:"lastName"`
	Email        string    `gorm:"type:varchar(100);uniqueIndex" json:"email"`
	PhoneNumber  string    `gorm:"type:varchar(20)" json:"phoneNumber"`
	RegisterDate string    `gorm:"type:varchar(30)" json:"registerDate"` // 注册日期，保留前端传入的原始格式
	IsActive     bool      `gorm:"default:true" json:"isActive"`
	IsAdmin      bool      `gorm:"default:false" json:"isAdmin"`
	UserName     string    `gorm:"type:varchar(100);uniqueIndex" json:"userName"`
	Password     string    `gorm:"type:varchar(100)" json:"-"` // 不在JSON中暴露密码
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`

	// Relations - 删除会员时级联删除所有子记录
	Addresses     []Address      `gorm:"foreignKey:MemberID;constraint:OnDelete:CASCADE" json:"addresses,omitempty"`
	FamilyMembers []FamilyMember `gorm:"foreignKey:MemberID;constraint:OnDelete:CASCADE" json:"familyMembers,omitempty"`
	Payments      []Payment      `gorm:"foreignKey:MemberID;constraint:OnDelete:CASCADE" json:"payments,omitempty"`
	Incidents     []Incident     `gorm:"foreignKey:MemberID;constraint:OnDelete:CASCADE" json:"incidents,omitempty"`
	MemberFiles   []MemberFile   `gorm:"foreignKey:MemberID;constraint:OnDelete:CASCADE" json:"memberFiles,omitempty"`
}

// BeforeCreate 是一个GORM钩子，在创建新记录前运行
func (m *Member) BeforeCreate(tx *gorm.DB) error {
	// 如果没有提供ID，生成新的UUID
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	// 如果提供了密码，对其进行哈希处理
	if m.Password != "" && len(m.Password) < 60 {
		hashedPassword, err := HashPassword(m.Password)
		if err != nil {
			return err
		}
		m.Password = hashedPassword
	}
	return nil
}

// BeforeSave 是一个GORM钩子，在保存记录前运行
func (m *Member) BeforeSave(tx *gorm.DB) error {
	// 如果提供了密码且不是已哈希的，对其进行哈希处理
	if m.Password != "" && len(m.Password) < 60 {
		hashedPassword, err := HashPassword(m.Password)
		if err != nil {
			return err
		}
		m.Password = hashedPassword
	}
	return nil
}
