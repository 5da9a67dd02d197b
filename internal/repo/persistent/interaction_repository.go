package persistent

import (
	"errors"

	"photobazaar/internal/model"

	"gorm.io/gorm"
)

type InteractionRepository interface {
	// ToggleLike flips the like state for (userID, photoID) and keeps the
	// photo's likes_count in step. It returns the new state.
	ToggleLike(userID, photoID string) (bool, error)

	// LikesCount counts the like rows for a photo. The likes table is the
	// source of truth; the photo counter is a denormalized copy.
	LikesCount(photoID string) (int, error)

	// RecordView inserts a dedup row and bumps the photo's view counter.
	// It returns false when this identity has already viewed the photo.
	RecordView(photoID string, userID, ipAddress *string) (bool, error)
}

type interactionRepository struct {
	db *gorm.DB
}

func NewInteractionRepository(db *gorm.DB) InteractionRepository {
	return &interactionRepository{db: db}
}

func (r *interactionRepository) ToggleLike(userID, photoID string) (bool, error) {
	var liked bool

	err := r.db.Transaction(func(tx *gorm.DB) error {
		result := tx.Where("user_id = ? AND photo_id = ?", userID, photoID).
			Delete(&model.LikeModel{})
		if result.Error != nil {
			return result.Error
		}

		if result.RowsAffected > 0 {
			liked = false
			// GREATEST keeps the counter from going negative if it ever
			// drifts out of step with the likes table.
			return tx.Model(&model.PhotoModel{}).
				Where("id = ?", photoID).
				UpdateColumn("likes_count", gorm.Expr("GREATEST(likes_count - 1, 0)")).Error
		}

		like := &model.LikeModel{UserID: userID, PhotoID: photoID}
		if err := tx.Create(like).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				// Concurrent like won the race; treat ours as applied.
				liked = true
				return nil
			}
			return err
		}

		liked = true
		return tx.Model(&model.PhotoModel{}).
			Where("id = ?", photoID).
			UpdateColumn("likes_count", gorm.Expr("likes_count + 1")).Error
	})
	if err != nil {
		return false, err
	}
	return liked, nil
}

func (r *interactionRepository) LikesCount(photoID string) (int, error) {
	var count int64
	err := r.db.Model(&model.LikeModel{}).
		Where("photo_id = ?", photoID).
		Count(&count).Error
	return int(count), err
}

func (r *interactionRepository) RecordView(photoID string, userID, ipAddress *string) (bool, error) {
	counted := false

	err := r.db.Transaction(func(tx *gorm.DB) error {
		view := &model.ViewModel{
			PhotoID:   photoID,
			UserID:    userID,
			IPAddress: ipAddress,
		}
		if err := tx.Create(view).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return nil
			}
			return err
		}

		counted = true
		return tx.Model(&model.PhotoModel{}).
			Where("id = ?", photoID).
			UpdateColumn("views", gorm.Expr("views + 1")).Error
	})
	if err != nil {
		return false, err
	}
	return counted, nil
}
