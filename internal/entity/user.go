package entity

import "time"

type UserRole string

const (
	RoleUser         UserRole = "user"
	RolePhotographer UserRole = "photographer"
	RoleAdmin        UserRole = "admin"
)

type User struct {
	ID            string     `json:"id"`
	Email         string     `json:"email"`
	Password      string     `json:"-"`
	FirstName     string     `json:"first_name"`
	LastName      string     `json:"last_name"`
	Role          UserRole   `json:"role"`
	Bio           string     `json:"bio,omitempty"`
	ProfileImage  string     `json:"profile_image,omitempty"`
	IsVerified    bool       `json:"is_verified"`
	IsActive      bool       `json:"is_active"`
	TotalEarnings float64    `json:"total_earnings"`
	TotalSales    int        `json:"total_sales"`
	LastLoginAt   *time.Time `json:"last_login_at,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

// PublicStats is the aggregate block attached to public profile responses.
type PublicStats struct {
	TotalPhotos    int64 `json:"total_photos"`
	TotalDownloads int64 `json:"total_downloads"`
	TotalViews     int64 `json:"total_views"`
}

type EmailVerification struct {
	ID         string     `json:"id"`
	UserID     string     `json:"user_id"`
	Code       string     `json:"-"`
	ExpiresAt  time.Time  `json:"expires_at"`
	ConsumedAt *time.Time `json:"consumed_at,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
}
