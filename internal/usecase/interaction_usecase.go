package usecase

import (
	"context"
	"fmt"
	"time"

	"photobazaar/internal/entity"
	"photobazaar/internal/repo/persistent"
	"photobazaar/pkg/logger"

	"github.com/redis/go-redis/v9"
)

const viewDedupTTL = 24 * time.Hour

type InteractionUseCase interface {
	// ToggleLike flips the caller's like on a photo and returns the new
	// state plus the resulting like count.
	ToggleLike(userID, photoID string) (bool, int, error)

	// RecordView counts a view for the given identity (user id when
	// authenticated, ip otherwise). Owner views are never counted.
	RecordView(photoID, userID, ipAddress string) (bool, error)
}

type interactionUseCase struct {
	interactionRepo persistent.InteractionRepository
	photoRepo       persistent.PhotoRepository
	redisClient     *redis.Client
	logger          *logger.Logger
}

func NewInteractionUseCase(
	interactionRepo persistent.InteractionRepository,
	photoRepo persistent.PhotoRepository,
	redisClient *redis.Client,
	logger *logger.Logger,
) InteractionUseCase {
	return &interactionUseCase{
		interactionRepo: interactionRepo,
		photoRepo:       photoRepo,
		redisClient:     redisClient,
		logger:          logger,
	}
}

func (uc *interactionUseCase) ToggleLike(userID, photoID string) (bool, int, error) {
	photo, err := uc.photoRepo.GetByID(photoID)
	if err != nil {
		return false, 0, err
	}
	if !photo.IsActive {
		return false, 0, entity.ErrPhotoNotFound
	}
	if photo.PhotographerID == userID {
		return false, 0, entity.ErrOwnPhotoLike
	}

	liked, err := uc.interactionRepo.ToggleLike(userID, photoID)
	if err != nil {
		uc.logger.Error("Failed to toggle like for user %s on photo %s: %v", userID, photoID, err)
		return false, 0, fmt.Errorf("failed to toggle like")
	}

	// Count from the likes table after the toggle. Deriving it from the
	// photo row read above would over-report when a concurrent like won
	// the insert race.
	count, err := uc.interactionRepo.LikesCount(photoID)
	if err != nil {
		uc.logger.Warn("Failed to count likes for photo %s: %v", photoID, err)
		count = photo.LikesCount
		if liked {
			count++
		} else if count > 0 {
			count--
		}
	}
	return liked, count, nil
}

func (uc *interactionUseCase) RecordView(photoID, userID, ipAddress string) (bool, error) {
	photo, err := uc.photoRepo.GetByID(photoID)
	if err != nil {
		return false, err
	}
	if !photo.IsActive {
		return false, entity.ErrPhotoNotFound
	}
	if userID != "" && photo.PhotographerID == userID {
		return false, nil
	}

	identity := userID
	if identity == "" {
		identity = ipAddress
	}
	if identity == "" {
		return false, nil
	}

	// Redis fast-path keeps repeat visitors from hitting the views table;
	// the unique constraint on the table stays authoritative.
	if uc.redisClient != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		key := fmt.Sprintf("view:%s:%s", photoID, identity)
		set, err := uc.redisClient.SetNX(ctx, key, 1, viewDedupTTL).Result()
		cancel()
		if err != nil {
			uc.logger.Warn("View dedup cache unavailable: %v", err)
		} else if !set {
			return false, nil
		}
	}

	var userPtr, ipPtr *string
	if userID != "" {
		userPtr = &userID
	} else {
		ipPtr = &ipAddress
	}

	counted, err := uc.interactionRepo.RecordView(photoID, userPtr, ipPtr)
	if err != nil {
		uc.logger.Error("Failed to record view for photo %s: %v", photoID, err)
		return false, fmt.Errorf("failed to record view")
	}
	return counted, nil
}
