package model

import (
	"time"

	"github.com/google/uuid"
)

type SchoolModel struct {
	SchoolID      uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:school_id" json:"school_id"`
	SchoolName    string    `gorm:"size:150;not null;column:school_name" json:"school_name"`
	SchoolAddress *string   `gorm:"size:255;column:school_address" json:"school_address,omitempty"`
	SchoolPhone   *string   `gorm:"size:30;column:school_phone" json:"school_phone,omitempty"`

	SchoolCreatedAt time.Time  `gorm:"column:school_created_at;autoCreateTime" json:"school_created_at"`
	SchoolUpdatedAt *time.Time `gorm:"column:school_updated_at;autoUpdateTime" json:"school_updated_at,omitempty"`
}

func (SchoolModel) TableName() string { return "schools" }
