package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MemberFile represents an uploaded document stored with its raw bytes
type MemberFile struct {
	ID              string  `gorm:"type:varchar(36);primaryKey" json:"id"`
	FileName        string  `gorm:"type:varchar(255)" json:"fileName"`
	FileType        string  `gorm:"type:varchar(50)" json:"fileType"`
	Size            int64   `json:"size"`
	FileData        []byte  `gorm:"type:longblob" json:"-"` // 原始文件内容，响应中以base64形式返回
	FileDescription *string `gorm:"type:varchar(255)" json:"fileDescription,omitempty"`
	PaymentID       *string `gorm:"type:varchar(36)" json:"paymentId,omitempty"` // 可选，关联的缴费记录ID
	MemberID        string  `gorm:"type:varchar(36);index" json:"memberId"`
}

// BeforeCreate 在创建新记录前生成UUID
func (f *MemberFile) BeforeCreate(tx *gorm.DB) error {
	if f.ID == "" {
		f.ID = uuid.NewString()
	}
	return nil
}
