package entity

import "time"

// Photo sort keys accepted by the marketplace listing.
const (
	SortNewest    = "newest"
	SortOldest    = "oldest"
	SortPopular   = "popular"
	SortPriceLow  = "price-low"
	SortPriceHigh = "price-high"
	SortViews     = "views"
)

type Photo struct {
	ID             string    `json:"id"`
	PhotographerID string    `json:"photographer_id"`
	CategoryID     string    `json:"category_id,omitempty"`
	Title          string    `json:"title"`
	Description    string    `json:"description,omitempty"`
	Price          float64   `json:"price"`
	ImageURL       string    `json:"image_url"`
	ThumbnailURL   string    `json:"thumbnail_url,omitempty"`
	FullImageURL   string    `json:"full_image_url,omitempty"`
	StorageKey     string    `json:"-"`
	Tags           []string  `json:"tags"`
	Views          int       `json:"views"`
	Downloads      int       `json:"downloads"`
	LikesCount     int       `json:"likes_count"`
	Width          int       `json:"width,omitempty"`
	Height         int       `json:"height,omitempty"`
	FileSize       int64     `json:"file_size,omitempty"`
	Format         string    `json:"format,omitempty"`
	IsActive       bool      `json:"is_active"`
	IsFeatured     bool      `json:"is_featured"`
	IsExclusive    bool      `json:"is_exclusive"`
	Sold           bool      `json:"sold"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`

	Photographer *UserSummary     `json:"photographer,omitempty"`
	Category     *CategorySummary `json:"category,omitempty"`

	// Per-caller annotations, only set for authenticated listing/detail.
	IsLiked     *bool `json:"is_liked,omitempty"`
	IsPurchased *bool `json:"is_purchased,omitempty"`
	IsOwner     *bool `json:"is_owner,omitempty"`
}

type UserSummary struct {
	ID           string `json:"id"`
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
	ProfileImage string `json:"profile_image,omitempty"`
}

type CategorySummary struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}
