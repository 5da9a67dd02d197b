package usecase

import (
	"fmt"
	"math"
	"time"

	"photobazaar/internal/entity"
	"photobazaar/internal/repo/persistent"
	"photobazaar/pkg/config"
	"photobazaar/pkg/logger"
	"photobazaar/pkg/queue"

	"github.com/google/uuid"
)

type PurchaseUseCase interface {
	// CreatePurchase runs the entitlement checks, records the pending
	// purchase with its commission split, and drives the completion
	// transition synchronously.
	CreatePurchase(buyerID, photoID, paymentMethod string) (*entity.Purchase, error)

	// CompleteByTransactionID is the payment-webhook entry: it drives the
	// same pending→completed transition and is idempotent on redelivery.
	CompleteByTransactionID(transactionID string) (*entity.Purchase, error)

	GetPurchase(actorID string, actorRole entity.UserRole, purchaseID string) (*entity.Purchase, error)
	ListPurchases(buyerID string, page, limit int) ([]*entity.Purchase, entity.Pagination, error)
	ListSales(photographerID string, page, limit int) ([]*entity.Purchase, entity.Pagination, error)

	// Download consumes one download slot and returns a grant with the
	// remaining allowance.
	Download(buyerID, purchaseID string) (*entity.DownloadGrant, error)
}

type purchaseUseCase struct {
	purchaseRepo persistent.PurchaseRepository
	photoRepo    persistent.PhotoRepository
	storage      FileStorage
	publisher    TaskPublisher
	cfg          *config.Config
	logger       *logger.Logger
}

func NewPurchaseUseCase(
	purchaseRepo persistent.PurchaseRepository,
	photoRepo persistent.PhotoRepository,
	storage FileStorage,
	publisher TaskPublisher,
	cfg *config.Config,
	logger *logger.Logger,
) PurchaseUseCase {
	return &purchaseUseCase{
		purchaseRepo: purchaseRepo,
		photoRepo:    photoRepo,
		storage:      storage,
		publisher:    publisher,
		cfg:          cfg,
		logger:       logger,
	}
}

func (uc *purchaseUseCase) CreatePurchase(buyerID, photoID, paymentMethod string) (*entity.Purchase, error) {
	photo, err := uc.photoRepo.GetByID(photoID)
	if err != nil {
		return nil, err
	}
	if !photo.IsActive {
		return nil, entity.ErrPhotoNotFound
	}
	if photo.PhotographerID == buyerID {
		return nil, entity.ErrOwnPhotoPurchase
	}
	if photo.IsExclusive && photo.Sold {
		return nil, entity.ErrPhotoUnavailable
	}
	if _, err := uc.purchaseRepo.GetCompletedByBuyerAndPhoto(buyerID, photoID); err == nil {
		return nil, entity.ErrAlreadyPurchased
	}

	commission := round2(photo.Price * uc.cfg.CommissionRate)
	purchase := &entity.Purchase{
		BuyerID:             buyerID,
		PhotoID:             photoID,
		PhotographerID:      photo.PhotographerID,
		Amount:              photo.Price,
		Commission:          commission,
		PhotographerEarning: round2(photo.Price - commission),
		Status:              entity.PurchasePending,
		PaymentMethod:       paymentMethod,
		TransactionID:       newTransactionID(),
		MaxDownloads:        uc.cfg.MaxDownloads,
	}

	if err := uc.purchaseRepo.Create(purchase); err != nil {
		return nil, err
	}

	completed, err := uc.complete(purchase.ID, photo.StorageKey)
	if err != nil {
		uc.logger.Error("Failed to complete purchase %s: %v", purchase.ID, err)
		// The pending row stays; the webhook can finish the transition.
		return purchase, nil
	}
	return completed, nil
}

func (uc *purchaseUseCase) CompleteByTransactionID(transactionID string) (*entity.Purchase, error) {
	purchase, err := uc.purchaseRepo.GetByTransactionID(transactionID)
	if err != nil {
		return nil, err
	}
	if purchase.Status == entity.PurchaseCompleted {
		return purchase, nil
	}

	photo, err := uc.photoRepo.GetByID(purchase.PhotoID)
	if err != nil {
		return nil, err
	}
	return uc.complete(purchase.ID, photo.StorageKey)
}

// complete presigns the download URL and applies the pending→completed
// transition. Safe to call repeatedly for the same purchase.
func (uc *purchaseUseCase) complete(purchaseID, storageKey string) (*entity.Purchase, error) {
	downloadURL, err := uc.storage.PresignDownloadURL(storageKey, uc.cfg.DownloadTTL)
	if err != nil {
		return nil, err
	}

	purchase, err := uc.purchaseRepo.Complete(purchaseID, downloadURL, time.Now().Add(uc.cfg.DownloadTTL))
	if err != nil {
		return nil, err
	}

	if uc.publisher != nil {
		err = uc.publisher.PublishTask(map[string]interface{}{
			"type":            queue.TaskPurchaseCompleted,
			"purchase_id":     purchase.ID,
			"photo_id":        purchase.PhotoID,
			"buyer_id":        purchase.BuyerID,
			"photographer_id": purchase.PhotographerID,
			"earning":         purchase.PhotographerEarning,
			"priority":        5,
		})
		if err != nil {
			uc.logger.Warn("Failed to publish sale notification for purchase %s: %v", purchase.ID, err)
		}
	}

	return purchase, nil
}

func (uc *purchaseUseCase) GetPurchase(actorID string, actorRole entity.UserRole, purchaseID string) (*entity.Purchase, error) {
	purchase, err := uc.purchaseRepo.GetByID(purchaseID)
	if err != nil {
		return nil, err
	}

	// Visible to the buyer, the photographer who made the sale, and admins.
	if actorID != purchase.BuyerID && !canManage(actorID, actorRole, purchase.PhotographerID) {
		return nil, entity.ErrForbidden
	}
	return purchase, nil
}

func (uc *purchaseUseCase) ListPurchases(buyerID string, page, limit int) ([]*entity.Purchase, entity.Pagination, error) {
	page, limit = normalizePage(page, limit)

	purchases, total, err := uc.purchaseRepo.ListByBuyer(buyerID, limit, (page-1)*limit)
	if err != nil {
		uc.logger.Error("Failed to list purchases for buyer %s: %v", buyerID, err)
		return nil, entity.Pagination{}, fmt.Errorf("failed to list purchases")
	}
	return purchases, entity.NewPagination(page, limit, total), nil
}

func (uc *purchaseUseCase) ListSales(photographerID string, page, limit int) ([]*entity.Purchase, entity.Pagination, error) {
	page, limit = normalizePage(page, limit)

	sales, total, err := uc.purchaseRepo.ListByPhotographer(photographerID, limit, (page-1)*limit)
	if err != nil {
		uc.logger.Error("Failed to list sales for photographer %s: %v", photographerID, err)
		return nil, entity.Pagination{}, fmt.Errorf("failed to list sales")
	}
	return sales, entity.NewPagination(page, limit, total), nil
}

func (uc *purchaseUseCase) Download(buyerID, purchaseID string) (*entity.DownloadGrant, error) {
	purchase, err := uc.purchaseRepo.GetByID(purchaseID)
	if err != nil {
		return nil, err
	}
	if purchase.BuyerID != buyerID {
		return nil, entity.ErrForbidden
	}
	if purchase.Status != entity.PurchaseCompleted {
		return nil, entity.ErrPurchaseRequired
	}
	if purchase.DownloadCount >= purchase.MaxDownloads {
		return nil, entity.ErrDownloadLimit
	}
	now := time.Now()
	if purchase.DownloadExpiresAt != nil && now.After(*purchase.DownloadExpiresAt) {
		return nil, entity.ErrDownloadExpired
	}

	newCount, consumed, err := uc.purchaseRepo.IncrementDownload(purchaseID)
	if err != nil {
		uc.logger.Error("Failed to register download for purchase %s: %v", purchaseID, err)
		return nil, fmt.Errorf("failed to register download")
	}
	if !consumed {
		return nil, entity.ErrDownloadLimit
	}

	// The remainder comes from the post-increment counter, not the row
	// read above, so concurrent downloads never report a stale allowance.
	return &entity.DownloadGrant{
		DownloadURL:        purchase.DownloadURL,
		RemainingDownloads: purchase.MaxDownloads - newCount,
		ExpiresAt:          purchase.DownloadExpiresAt,
	}, nil
}

func newTransactionID() string {
	return fmt.Sprintf("txn_%d_%s", time.Now().UnixMilli(), uuid.New().String()[:8])
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
