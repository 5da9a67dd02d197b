package usecase

import (
	"fmt"

	"photobazaar/internal/entity"
	"photobazaar/internal/repo/persistent"
	"photobazaar/pkg/logger"
)

const topPhotosLimit = 5

// Dashboard aggregates a photographer's standing: portfolio counters,
// earnings, sales volume and best performing photos.
type Dashboard struct {
	User           *entity.User       `json:"user"`
	TotalPhotos    int64              `json:"total_photos"`
	TotalViews     int64              `json:"total_views"`
	TotalDownloads int64              `json:"total_downloads"`
	TotalLikes     int64              `json:"total_likes"`
	TotalEarnings  float64            `json:"total_earnings"`
	TotalSales     int64              `json:"total_sales"`
	TopPhotos      []*entity.Photo    `json:"top_photos"`
	RecentSales    []*entity.Purchase `json:"recent_sales"`
}

// PublicProfile is a user's outward-facing view: no email, no earnings.
type PublicProfile struct {
	ID           string              `json:"id"`
	FirstName    string              `json:"first_name"`
	LastName     string              `json:"last_name"`
	Role         entity.UserRole     `json:"role"`
	Bio          string              `json:"bio,omitempty"`
	ProfileImage string              `json:"profile_image,omitempty"`
	IsVerified   bool                `json:"is_verified"`
	Stats        *entity.PublicStats `json:"stats,omitempty"`
}

type UserUseCase interface {
	GetPublicProfile(userID string) (*PublicProfile, error)
	GetDashboard(actorID string, actorRole entity.UserRole, userID string) (*Dashboard, error)
}

type userUseCase struct {
	userRepo     persistent.UserRepository
	photoRepo    persistent.PhotoRepository
	purchaseRepo persistent.PurchaseRepository
	logger       *logger.Logger
}

func NewUserUseCase(
	userRepo persistent.UserRepository,
	photoRepo persistent.PhotoRepository,
	purchaseRepo persistent.PurchaseRepository,
	logger *logger.Logger,
) UserUseCase {
	return &userUseCase{
		userRepo:     userRepo,
		photoRepo:    photoRepo,
		purchaseRepo: purchaseRepo,
		logger:       logger,
	}
}

func (uc *userUseCase) GetPublicProfile(userID string) (*PublicProfile, error) {
	user, err := uc.userRepo.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if !user.IsActive {
		return nil, entity.ErrNotFound
	}

	profile := &PublicProfile{
		ID:           user.ID,
		FirstName:    user.FirstName,
		LastName:     user.LastName,
		Role:         user.Role,
		Bio:          user.Bio,
		ProfileImage: user.ProfileImage,
		IsVerified:   user.IsVerified,
	}

	if user.Role == entity.RolePhotographer {
		stats, err := uc.photoRepo.Stats(user.ID)
		if err != nil {
			uc.logger.Warn("Failed to load stats for photographer %s: %v", user.ID, err)
		} else {
			profile.Stats = &entity.PublicStats{
				TotalPhotos:    stats.TotalPhotos,
				TotalDownloads: stats.TotalDownloads,
				TotalViews:     stats.TotalViews,
			}
		}
	}

	return profile, nil
}

func (uc *userUseCase) GetDashboard(actorID string, actorRole entity.UserRole, userID string) (*Dashboard, error) {
	if !canManage(actorID, actorRole, userID) {
		return nil, entity.ErrForbidden
	}

	user, err := uc.userRepo.GetByID(userID)
	if err != nil {
		return nil, err
	}
	user.Password = ""

	stats, err := uc.photoRepo.Stats(userID)
	if err != nil {
		uc.logger.Error("Failed to load dashboard stats for user %s: %v", userID, err)
		return nil, fmt.Errorf("failed to load dashboard")
	}

	earnings, err := uc.purchaseRepo.SumEarnings(userID)
	if err != nil {
		uc.logger.Error("Failed to sum earnings for user %s: %v", userID, err)
		return nil, fmt.Errorf("failed to load dashboard")
	}

	topPhotos, err := uc.photoRepo.TopPhotos(userID, topPhotosLimit)
	if err != nil {
		uc.logger.Error("Failed to load top photos for user %s: %v", userID, err)
		return nil, fmt.Errorf("failed to load dashboard")
	}

	recentSales, totalSales, err := uc.purchaseRepo.ListByPhotographer(userID, topPhotosLimit, 0)
	if err != nil {
		uc.logger.Error("Failed to load recent sales for user %s: %v", userID, err)
		return nil, fmt.Errorf("failed to load dashboard")
	}

	return &Dashboard{
		User:           user,
		TotalPhotos:    stats.TotalPhotos,
		TotalViews:     stats.TotalViews,
		TotalDownloads: stats.TotalDownloads,
		TotalLikes:     stats.TotalLikes,
		TotalEarnings:  earnings,
		TotalSales:     totalSales,
		TopPhotos:      topPhotos,
		RecentSales:    recentSales,
	}, nil
}
