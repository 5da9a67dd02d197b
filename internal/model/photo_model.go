package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

type PhotoModel struct {
	ID             string         `gorm:"type:uuid;primary_key" json:"id"`
	PhotographerID string         `gorm:"type:uuid;not null;index" json:"photographer_id"`
	CategoryID     *string        `gorm:"type:uuid;index" json:"category_id"`
	Title          string         `gorm:"type:varchar(200);not null;index" json:"title"`
	Description    string         `gorm:"type:text" json:"description"`
	Price          float64        `gorm:"type:decimal(10,2);not null;index" json:"price"`
	ImageURL       string         `gorm:"type:varchar(500);not null" json:"image_url"`
	ThumbnailURL   string         `gorm:"type:varchar(500)" json:"thumbnail_url"`
	FullImageURL   string         `gorm:"type:varchar(500);not null" json:"full_image_url"`
	StorageKey     string         `gorm:"type:varchar(500)" json:"-"`
	Tags           pq.StringArray `gorm:"type:text[]" json:"tags"`
	Views          int            `gorm:"default:0;index" json:"views"`
	Downloads      int            `gorm:"default:0;index" json:"downloads"`
	LikesCount     int            `gorm:"default:0" json:"likes_count"`
	Width          int            `json:"width"`
	Height         int            `json:"height"`
	FileSize       int64          `json:"file_size"`
	Format         string         `gorm:"type:varchar(10)" json:"format"`
	IsActive       bool           `gorm:"default:true" json:"is_active"`
	IsFeatured     bool           `gorm:"default:false" json:"is_featured"`
	IsExclusive    bool           `gorm:"default:false" json:"is_exclusive"`
	Sold           bool           `gorm:"default:false" json:"sold"`
	CreatedAt      time.Time      `gorm:"index" json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`

	Photographer *UserModel     `gorm:"foreignKey:PhotographerID" json:"photographer,omitempty"`
	Category     *CategoryModel `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
}

func (PhotoModel) TableName() string {
	return "photos"
}

func (p *PhotoModel) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	return nil
}
