package persistent

import (
	"errors"
	"time"

	"photobazaar/internal/entity"
	"photobazaar/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PurchaseRepository interface {
	Create(purchase *entity.Purchase) error
	GetByID(id string) (*entity.Purchase, error)
	GetByTransactionID(transactionID string) (*entity.Purchase, error)
	GetCompletedByBuyerAndPhoto(buyerID, photoID string) (*entity.Purchase, error)
	ListByBuyer(buyerID string, limit, offset int) ([]*entity.Purchase, int64, error)
	ListByPhotographer(photographerID string, limit, offset int) ([]*entity.Purchase, int64, error)
	SumEarnings(photographerID string) (float64, error)
	Complete(purchaseID, downloadURL string, expiresAt time.Time) (*entity.Purchase, error)
	Fail(purchaseID string) error
	IncrementDownload(purchaseID string) (int, bool, error)
}

type purchaseRepository struct {
	db *gorm.DB
}

func NewPurchaseRepository(db *gorm.DB) PurchaseRepository {
	return &purchaseRepository{db: db}
}

func (r *purchaseRepository) Create(purchase *entity.Purchase) error {
	purchaseModel := ToPurchaseModel(purchase)
	if purchaseModel.ID == "" {
		purchaseModel.ID = uuid.New().String()
	}
	if err := r.db.Create(purchaseModel).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return entity.ErrAlreadyPurchased
		}
		return err
	}
	*purchase = *ToPurchaseEntity(purchaseModel)
	return nil
}

func (r *purchaseRepository) GetByID(id string) (*entity.Purchase, error) {
	var purchaseModel model.PurchaseModel
	err := r.db.Preload("Photo").Preload("Photo.Photographer").Preload("Buyer").
		Where("id = ?", id).First(&purchaseModel).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, entity.ErrPurchaseNotFound
		}
		return nil, err
	}
	return ToPurchaseEntity(&purchaseModel), nil
}

func (r *purchaseRepository) GetByTransactionID(transactionID string) (*entity.Purchase, error) {
	var purchaseModel model.PurchaseModel
	err := r.db.Where("transaction_id = ?", transactionID).First(&purchaseModel).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, entity.ErrPurchaseNotFound
		}
		return nil, err
	}
	return ToPurchaseEntity(&purchaseModel), nil
}

func (r *purchaseRepository) GetCompletedByBuyerAndPhoto(buyerID, photoID string) (*entity.Purchase, error) {
	var purchaseModel model.PurchaseModel
	err := r.db.Where("buyer_id = ? AND photo_id = ? AND status = ?",
		buyerID, photoID, string(entity.PurchaseCompleted)).
		First(&purchaseModel).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, entity.ErrPurchaseNotFound
		}
		return nil, err
	}
	return ToPurchaseEntity(&purchaseModel), nil
}

func (r *purchaseRepository) ListByBuyer(buyerID string, limit, offset int) ([]*entity.Purchase, int64, error) {
	query := r.db.Model(&model.PurchaseModel{}).Where("buyer_id = ?", buyerID)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var purchaseModels []model.PurchaseModel
	err := query.Preload("Photo").Preload("Photo.Photographer").
		Order("purchased_at DESC").
		Limit(limit).Offset(offset).
		Find(&purchaseModels).Error
	if err != nil {
		return nil, 0, err
	}
	return ToPurchaseEntities(purchaseModels), total, nil
}

func (r *purchaseRepository) ListByPhotographer(photographerID string, limit, offset int) ([]*entity.Purchase, int64, error) {
	query := r.db.Model(&model.PurchaseModel{}).
		Where("photographer_id = ? AND status = ?", photographerID, string(entity.PurchaseCompleted))

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var purchaseModels []model.PurchaseModel
	err := query.Preload("Photo").Preload("Buyer").
		Order("purchased_at DESC").
		Limit(limit).Offset(offset).
		Find(&purchaseModels).Error
	if err != nil {
		return nil, 0, err
	}
	return ToPurchaseEntities(purchaseModels), total, nil
}

func (r *purchaseRepository) SumEarnings(photographerID string) (float64, error) {
	var total float64
	err := r.db.Model(&model.PurchaseModel{}).
		Where("photographer_id = ? AND status = ?", photographerID, string(entity.PurchaseCompleted)).
		Select("COALESCE(SUM(photographer_earning), 0)").
		Scan(&total).Error
	return total, err
}

// Complete moves a pending purchase to completed and applies every side
// effect in one transaction: the download grant on the purchase row, the
// photographer's earnings and sales counters, the photo's download counter,
// and the sold flag for exclusive photos. Calling it again for an
// already-completed purchase is a no-op that returns the stored row, so
// webhook retries stay idempotent.
func (r *purchaseRepository) Complete(purchaseID, downloadURL string, expiresAt time.Time) (*entity.Purchase, error) {
	var purchaseModel model.PurchaseModel

	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("id = ?", purchaseID).First(&purchaseModel).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return entity.ErrPurchaseNotFound
			}
			return err
		}
		if purchaseModel.Status == string(entity.PurchaseCompleted) {
			return nil
		}

		result := tx.Model(&model.PurchaseModel{}).
			Where("id = ? AND status = ?", purchaseID, string(entity.PurchasePending)).
			Updates(map[string]interface{}{
				"status":              string(entity.PurchaseCompleted),
				"download_url":        downloadURL,
				"download_expires_at": expiresAt,
			})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			// Lost the race to a concurrent completion.
			return nil
		}

		err := tx.Model(&model.UserModel{}).
			Where("id = ?", purchaseModel.PhotographerID).
			Updates(map[string]interface{}{
				"total_earnings": gorm.Expr("total_earnings + ?", purchaseModel.PhotographerEarning),
				"total_sales":    gorm.Expr("total_sales + 1"),
			}).Error
		if err != nil {
			return err
		}

		return tx.Model(&model.PhotoModel{}).
			Where("id = ?", purchaseModel.PhotoID).
			Updates(map[string]interface{}{
				"downloads": gorm.Expr("downloads + 1"),
				"sold":      gorm.Expr("sold OR is_exclusive"),
			}).Error
	})
	if err != nil {
		return nil, err
	}

	return r.GetByID(purchaseID)
}

func (r *purchaseRepository) Fail(purchaseID string) error {
	result := r.db.Model(&model.PurchaseModel{}).
		Where("id = ? AND status = ?", purchaseID, string(entity.PurchasePending)).
		UpdateColumn("status", string(entity.PurchaseFailed))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return entity.ErrPurchaseNotFound
	}
	return nil
}

// IncrementDownload bumps download_count only while it is below the limit;
// the guard in the WHERE clause makes concurrent downloads race-safe. It
// returns the counter value after the increment and whether a slot was
// actually consumed.
func (r *purchaseRepository) IncrementDownload(purchaseID string) (int, bool, error) {
	var newCount int

	err := r.db.Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&model.PurchaseModel{}).
			Where("id = ? AND status = ? AND download_count < max_downloads",
				purchaseID, string(entity.PurchaseCompleted)).
			UpdateColumn("download_count", gorm.Expr("download_count + 1"))
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return entity.ErrDownloadLimit
		}

		var updated model.PurchaseModel
		err := tx.Select("photo_id", "download_count").
			Where("id = ?", purchaseID).
			First(&updated).Error
		if err != nil {
			return err
		}
		newCount = updated.DownloadCount

		return tx.Model(&model.PhotoModel{}).
			Where("id = ?", updated.PhotoID).
			UpdateColumn("downloads", gorm.Expr("downloads + 1")).Error
	})
	if errors.Is(err, entity.ErrDownloadLimit) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, err
	}
	return newCount, true, nil
}
