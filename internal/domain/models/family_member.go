package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// FamilyMember represents a dependent registered under a member
type FamilyMember struct {
	ID                     string `gorm:"type:varchar(36);primaryKey" json:"id"`
	MemberFamilyFirstName  string `gorm:"type:varchar(50)" json:"memberFamilyFirstName"`
	MemberFamilyMiddleName string `gorm:"type:varchar(50)" json:"memberFamilyMiddleName"`
	MemberFamilyLastName   string `gorm:"type:varchar(50)" json:"memberFamilyLastName"`
	Relationship           string `gorm:"type:varchar(50)" json:"relationship"` // 与会员的关系，如 spouse, child
	MemberID               string `gorm:"type:varchar(36);index" json:"memberId"`
}

// BeforeCreate 在创建新记录前生成UUID
func (f *FamilyMember) BeforeCreate(tx *gorm.DB) error {
	if f.ID == "" {
		f.ID = uuid.NewString()
	}
	return nil
}
