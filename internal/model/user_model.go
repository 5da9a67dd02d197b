package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserModel struct {
	ID            string     `gorm:"type:uuid;primary_key" json:"id"`
	Email         string     `gorm:"uniqueIndex;not null" json:"email"`
	Password      string     `gorm:"not null" json:"-"`
	FirstName     string     `gorm:"type:varchar(100);not null" json:"first_name"`
	LastName      string     `gorm:"type:varchar(100);not null" json:"last_name"`
	Role          string     `gorm:"type:varchar(20);default:'user'" json:"role"`
	Bio           string     `gorm:"type:text" json:"bio"`
	ProfileImage  string     `gorm:"type:varchar(500)" json:"profile_image"`
	IsVerified    bool       `gorm:"default:false" json:"is_verified"`
	IsActive      bool       `gorm:"default:true" json:"is_active"`
	TotalEarnings float64    `gorm:"type:decimal(10,2);default:0" json:"total_earnings"`
	TotalSales    int        `gorm:"default:0" json:"total_sales"`
	LastLoginAt   *time.Time `json:"last_login_at"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

func (UserModel) TableName() string {
	return "users"
}

func (u *UserModel) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.New().String()
	}
	return nil
}

type EmailVerificationModel struct {
	ID         string     `gorm:"type:uuid;primary_key" json:"id"`
	UserID     string     `gorm:"type:uuid;not null;index" json:"user_id"`
	Code       string     `gorm:"type:varchar(64);uniqueIndex;not null" json:"-"`
	ExpiresAt  time.Time  `gorm:"not null" json:"expires_at"`
	ConsumedAt *time.Time `json:"consumed_at"`
	CreatedAt  time.Time  `json:"created_at"`
}

func (EmailVerificationModel) TableName() string {
	return "email_verifications"
}

func (v *EmailVerificationModel) BeforeCreate(tx *gorm.DB) error {
	if v.ID == "" {
		v.ID = uuid.New().String()
	}
	return nil
}
