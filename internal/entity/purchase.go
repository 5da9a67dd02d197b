package entity

import "time"

type PurchaseStatus string

const (
	PurchasePending   PurchaseStatus = "pending"
	PurchaseCompleted PurchaseStatus = "completed"
	PurchaseFailed    PurchaseStatus = "failed"
	PurchaseRefunded  PurchaseStatus = "refunded"
)

type Purchase struct {
	ID                  string         `json:"id"`
	BuyerID             string         `json:"buyer_id"`
	PhotoID             string         `json:"photo_id"`
	PhotographerID      string         `json:"photographer_id"`
	Amount              float64        `json:"amount"`
	Commission          float64        `json:"commission"`
	PhotographerEarning float64        `json:"photographer_earning"`
	Status              PurchaseStatus `json:"status"`
	PaymentMethod       string         `json:"payment_method,omitempty"`
	TransactionID       string         `json:"transaction_id"`
	DownloadURL         string         `json:"download_url,omitempty"`
	DownloadExpiresAt   *time.Time     `json:"download_expires_at,omitempty"`
	DownloadCount       int            `json:"download_count"`
	MaxDownloads        int            `json:"max_downloads"`
	PurchasedAt         time.Time      `json:"purchased_at"`

	Photo *Photo       `json:"photo,omitempty"`
	Buyer *UserSummary `json:"buyer,omitempty"`
}

// CanDownload reports whether another download is currently allowed.
func (p *Purchase) CanDownload(now time.Time) bool {
	return p.Status == PurchaseCompleted &&
		p.DownloadCount < p.MaxDownloads &&
		(p.DownloadExpiresAt == nil || now.Before(*p.DownloadExpiresAt))
}

// DownloadGrant is what a successful download request returns.
type DownloadGrant struct {
	DownloadURL        string     `json:"download_url"`
	RemainingDownloads int        `json:"remaining_downloads"`
	ExpiresAt          *time.Time `json:"expires_at,omitempty"`
}
