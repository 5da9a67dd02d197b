package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ViewModel deduplicates view counting: one row per (user, photo) or, for
// anonymous visitors, per (ip, photo). The partial unique indexes live in
// the SQL migration since only one of user_id/ip_address is set per row.
type ViewModel struct {
	ID        string    `gorm:"type:uuid;primary_key" json:"id"`
	PhotoID   string    `gorm:"type:uuid;not null;index" json:"photo_id"`
	UserID    *string   `gorm:"type:uuid" json:"user_id"`
	IPAddress *string   `gorm:"type:varchar(45)" json:"ip_address"`
	CreatedAt time.Time `json:"created_at"`
}

func (ViewModel) TableName() string {
	return "views"
}

func (v *ViewModel) BeforeCreate(tx *gorm.DB) error {
	if v.ID == "" {
		v.ID = uuid.New().String()
	}
	return nil
}
