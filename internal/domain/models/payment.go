package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Payment represents a membership payment record.
// A zero PaymentDate means the date was never provided.
type Payment struct {
	ID                   string    `gorm:"type:varchar(36);primaryKey" json:"id"`
	PaymentAmount        float64   `gorm:"type:decimal(10,2)" json:"paymentAmount"`
	PaymentDate          time.Time `json:"paymentDate"`
	PaymentType          string    `gorm:"type:varchar(30)" json:"paymentType"`
	PaymentRecurringType string    `gorm:"type:varchar(30)" json:"paymentRecurringType"`
	MemberID             string    `gorm:"type:varchar(36);index" json:"memberId"`
}

// BeforeCreate 在创建新记录前生成UUID
func (p *Payment) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}
