package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Address represents a postal address owned by a member
type Address struct {
	ID       string `gorm:"type:varchar(36);primaryKey" json:"id"`
	Street   string `gorm:"type:varchar(100)" json:"street"`
	City     string `gorm:"type:varchar(50)" json:"city"`
	State    string `gorm:"type:varchar(50)" json:"state"`
	Country  string `gorm:"type:varchar(50)" json:"country"`
	ZipCode  string `gorm:"type:varchar(20)" json:"zipCode"`
	MemberID string `gorm:"type:varchar(36);index" json:"memberId"`
}

// BeforeCreate 在创建新记录前生成UUID
func (a *Address) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	return nil
}
