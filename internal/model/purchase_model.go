package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PurchaseModel carries a partial unique index on (buyer_id, photo_id) for
// completed rows (created in the SQL migration); double-submission races
// surface as duplicate-key errors instead of duplicate purchases.
type PurchaseModel struct {
	ID                  string     `gorm:"type:uuid;primary_key" json:"id"`
	BuyerID             string     `gorm:"type:uuid;not null;index" json:"buyer_id"`
	PhotoID             string     `gorm:"type:uuid;not null;index" json:"photo_id"`
	PhotographerID      string     `gorm:"type:uuid;not null;index" json:"photographer_id"`
	Amount              float64    `gorm:"type:decimal(10,2);not null" json:"amount"`
	Commission          float64    `gorm:"type:decimal(10,2);not null;default:0" json:"commission"`
	PhotographerEarning float64    `gorm:"type:decimal(10,2);not null;default:0" json:"photographer_earning"`
	Status              string     `gorm:"type:varchar(20);default:'pending';index" json:"status"`
	PaymentMethod       string     `gorm:"type:varchar(50)" json:"payment_method"`
	TransactionID       string     `gorm:"type:varchar(100);uniqueIndex" json:"transaction_id"`
	DownloadURL         string     `gorm:"type:varchar(1000)" json:"download_url"`
	DownloadExpiresAt   *time.Time `json:"download_expires_at"`
	DownloadCount       int        `gorm:"default:0" json:"download_count"`
	MaxDownloads        int        `gorm:"default:3" json:"max_downloads"`
	PurchasedAt         time.Time  `gorm:"autoCreateTime" json:"purchased_at"`
	UpdatedAt           time.Time  `json:"updated_at"`

	Photo *PhotoModel `gorm:"foreignKey:PhotoID" json:"photo,omitempty"`
	Buyer *UserModel  `gorm:"foreignKey:BuyerID" json:"buyer,omitempty"`
}

func (PurchaseModel) TableName() string {
	return "purchases"
}

func (p *PurchaseModel) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	return nil
}
