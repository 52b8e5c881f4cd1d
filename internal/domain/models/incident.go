package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Incident represents an insured event reported for a member.
// A zero IncidentDate means the date was never provided.
type Incident struct {
	ID                  string    `gorm:"type:varchar(36);primaryKey" json:"id"`
	EventNumber         int       `json:"eventNumber"`
	IncidentType        string    `gorm:"type:varchar(30)" json:"incidentType"`
	IncidentDescription string    `gorm:"type:varchar(500)" json:"incidentDescription"`
	IncidentDate        time.Time `json:"incidentDate"`
	MemberID            string    `gorm:"type:varchar(36);index" json:"memberId"`
}

// BeforeCreate 在创建新记录前生成UUID
func (i *Incident) BeforeCreate(tx *gorm.DB) error {
	if i.ID == "" {
		i.ID = uuid.NewString()
	}
	return nil
}
