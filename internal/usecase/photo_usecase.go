package usecase

import (
	"fmt"
	"io"
	"strings"

	"photobazaar/internal/entity"
	"photobazaar/internal/repo/persistent"
	"photobazaar/pkg/logger"
	"photobazaar/pkg/queue"

	"github.com/google/uuid"
)

const (
	defaultPageSize = 12
	maxPageSize     = 100
)

type UploadPhotoParams struct {
	Title       string
	Description string
	Price       float64
	CategoryID  string
	Tags        []string
	IsExclusive bool
	Width       int
	Height      int
	FileSize    int64
	Format      string
	File        io.Reader
	ContentType string
}

type UpdatePhotoParams struct {
	Title       *string
	Description *string
	Price       *float64
	CategoryID  *string
	Tags        []string
	IsFeatured  *bool
}

type ListPhotosParams struct {
	Search       string
	Category     string // id or slug
	PriceMin     *float64
	PriceMax     *float64
	Photographer string
	FeaturedOnly bool
	SortBy       string
	Page         int
	Limit        int
}

type PhotoUseCase interface {
	UploadPhoto(photographerID string, params UploadPhotoParams) (*entity.Photo, error)
	GetPhoto(photoID string, viewerID string, viewerRole entity.UserRole) (*entity.Photo, error)
	ListPhotos(params ListPhotosParams, viewerID string) ([]*entity.Photo, entity.Pagination, error)
	UpdatePhoto(actorID string, actorRole entity.UserRole, photoID string, params UpdatePhotoParams) (*entity.Photo, error)
	DeletePhoto(actorID string, actorRole entity.UserRole, photoID string) error
	UserPhotos(photographerID, viewerID string, viewerRole entity.UserRole, page, limit int) ([]*entity.Photo, entity.Pagination, error)
}

type photoUseCase struct {
	photoRepo    persistent.PhotoRepository
	categoryRepo persistent.CategoryRepository
	storage      FileStorage
	publisher    TaskPublisher
	logger       *logger.Logger
}

func NewPhotoUseCase(
	photoRepo persistent.PhotoRepository,
	categoryRepo persistent.CategoryRepository,
	storage FileStorage,
	publisher TaskPublisher,
	logger *logger.Logger,
) PhotoUseCase {
	return &photoUseCase{
		photoRepo:    photoRepo,
		categoryRepo: categoryRepo,
		storage:      storage,
		publisher:    publisher,
		logger:       logger,
	}
}

func (uc *photoUseCase) UploadPhoto(photographerID string, params UploadPhotoParams) (*entity.Photo, error) {
	if strings.TrimSpace(params.Title) == "" {
		return nil, fmt.Errorf("%w: title is required", entity.ErrValidation)
	}
	if params.Price < 0 {
		return nil, fmt.Errorf("%w: price cannot be negative", entity.ErrValidation)
	}

	if params.CategoryID != "" {
		if _, err := uc.categoryRepo.GetByID(params.CategoryID); err != nil {
			return nil, fmt.Errorf("%w: unknown category", entity.ErrValidation)
		}
	}

	key := fmt.Sprintf("photos/%s/%s", photographerID, uuid.New().String())
	imageURL, err := uc.storage.UploadFile(key, params.File, params.ContentType)
	if err != nil {
		uc.logger.Error("Failed to upload photo to storage: %v", err)
		return nil, fmt.Errorf("failed to upload photo")
	}

	photo := &entity.Photo{
		PhotographerID: photographerID,
		CategoryID:     params.CategoryID,
		Title:          params.Title,
		Description:    params.Description,
		Price:          params.Price,
		ImageURL:       imageURL,
		ThumbnailURL:   imageURL,
		StorageKey:     key,
		Tags:           params.Tags,
		Width:          params.Width,
		Height:         params.Height,
		FileSize:       params.FileSize,
		Format:         params.Format,
		IsActive:       true,
		IsExclusive:    params.IsExclusive,
	}

	if err := uc.photoRepo.Create(photo); err != nil {
		uc.logger.Error("Failed to create photo: %v", err)
		return nil, fmt.Errorf("failed to create photo")
	}

	if uc.publisher != nil {
		err = uc.publisher.PublishTask(map[string]interface{}{
			"type":            queue.TaskPhotoUploaded,
			"photo_id":        photo.ID,
			"photographer_id": photographerID,
		})
		if err != nil {
			uc.logger.Warn("Failed to publish upload event for photo %s: %v", photo.ID, err)
		}
	}

	return photo, nil
}

func (uc *photoUseCase) GetPhoto(photoID string, viewerID string, viewerRole entity.UserRole) (*entity.Photo, error) {
	photo, err := uc.photoRepo.GetByID(photoID)
	if err != nil {
		return nil, err
	}

	// Inactive photos stay visible to their owner and admins only.
	if !photo.IsActive && !canManage(viewerID, viewerRole, photo.PhotographerID) {
		return nil, entity.ErrPhotoNotFound
	}

	if viewerID != "" {
		if err := uc.annotate([]*entity.Photo{photo}, viewerID); err != nil {
			uc.logger.Warn("Failed to annotate photo %s for viewer %s: %v", photoID, viewerID, err)
		}
	}

	return photo, nil
}

func (uc *photoUseCase) ListPhotos(params ListPhotosParams, viewerID string) ([]*entity.Photo, entity.Pagination, error) {
	page, limit := normalizePage(params.Page, params.Limit)

	filter := persistent.ListPhotosFilter{
		Search:         params.Search,
		PriceMin:       params.PriceMin,
		PriceMax:       params.PriceMax,
		PhotographerID: params.Photographer,
		FeaturedOnly:   params.FeaturedOnly,
		SortBy:         params.SortBy,
		Limit:          limit,
		Offset:         (page - 1) * limit,
	}

	if params.Category != "" {
		category, err := uc.categoryRepo.GetByID(params.Category)
		if err != nil {
			category, err = uc.categoryRepo.GetBySlug(params.Category)
		}
		if err != nil {
			// Unknown category filters to an empty result, not an error.
			return []*entity.Photo{}, entity.NewPagination(page, limit, 0), nil
		}
		filter.CategoryID = category.ID
	}

	photos, total, err := uc.photoRepo.List(filter)
	if err != nil {
		uc.logger.Error("Failed to list photos: %v", err)
		return nil, entity.Pagination{}, fmt.Errorf("failed to list photos")
	}

	if viewerID != "" {
		if err := uc.annotate(photos, viewerID); err != nil {
			uc.logger.Warn("Failed to annotate photo listing for viewer %s: %v", viewerID, err)
		}
	}

	return photos, entity.NewPagination(page, limit, total), nil
}

func (uc *photoUseCase) UpdatePhoto(actorID string, actorRole entity.UserRole, photoID string, params UpdatePhotoParams) (*entity.Photo, error) {
	photo, err := uc.photoRepo.GetByID(photoID)
	if err != nil {
		return nil, err
	}
	if !canManage(actorID, actorRole, photo.PhotographerID) {
		return nil, entity.ErrForbidden
	}

	if params.Title != nil {
		if strings.TrimSpace(*params.Title) == "" {
			return nil, fmt.Errorf("%w: title cannot be empty", entity.ErrValidation)
		}
		photo.Title = *params.Title
	}
	if params.Description != nil {
		photo.Description = *params.Description
	}
	if params.Price != nil {
		if *params.Price < 0 {
			return nil, fmt.Errorf("%w: price cannot be negative", entity.ErrValidation)
		}
		photo.Price = *params.Price
	}
	if params.CategoryID != nil {
		if *params.CategoryID != "" {
			if _, err := uc.categoryRepo.GetByID(*params.CategoryID); err != nil {
				return nil, fmt.Errorf("%w: unknown category", entity.ErrValidation)
			}
		}
		photo.CategoryID = *params.CategoryID
	}
	if params.Tags != nil {
		photo.Tags = params.Tags
	}
	if params.IsFeatured != nil {
		// Featuring is an admin call, not a photographer one.
		if actorRole != entity.RoleAdmin {
			return nil, entity.ErrForbidden
		}
		photo.IsFeatured = *params.IsFeatured
	}

	if err := uc.photoRepo.Update(photo); err != nil {
		uc.logger.Error("Failed to update photo %s: %v", photoID, err)
		return nil, fmt.Errorf("failed to update photo")
	}
	return photo, nil
}

func (uc *photoUseCase) DeletePhoto(actorID string, actorRole entity.UserRole, photoID string) error {
	photo, err := uc.photoRepo.GetByID(photoID)
	if err != nil {
		return err
	}
	if !canManage(actorID, actorRole, photo.PhotographerID) {
		return entity.ErrForbidden
	}
	return uc.photoRepo.Deactivate(photoID)
}

func (uc *photoUseCase) UserPhotos(photographerID, viewerID string, viewerRole entity.UserRole, page, limit int) ([]*entity.Photo, entity.Pagination, error) {
	page, limit = normalizePage(page, limit)

	photos, total, err := uc.photoRepo.List(persistent.ListPhotosFilter{
		PhotographerID: photographerID,
		SortBy:         entity.SortNewest,
		Limit:          limit,
		Offset:         (page - 1) * limit,
	})
	if err != nil {
		uc.logger.Error("Failed to list photos for photographer %s: %v", photographerID, err)
		return nil, entity.Pagination{}, fmt.Errorf("failed to list photos")
	}

	if viewerID != "" {
		if err := uc.annotate(photos, viewerID); err != nil {
			uc.logger.Warn("Failed to annotate photo listing for viewer %s: %v", viewerID, err)
		}
	}

	return photos, entity.NewPagination(page, limit, total), nil
}

// annotate attaches is_liked/is_purchased/is_owner flags for the viewer with
// two batched lookups instead of per-photo queries.
func (uc *photoUseCase) annotate(photos []*entity.Photo, viewerID string) error {
	if len(photos) == 0 {
		return nil
	}

	ids := make([]string, len(photos))
	for i, p := range photos {
		ids[i] = p.ID
	}

	liked, err := uc.photoRepo.LikedPhotoIDs(viewerID, ids)
	if err != nil {
		return err
	}
	purchased, err := uc.photoRepo.PurchasedPhotoIDs(viewerID, ids)
	if err != nil {
		return err
	}

	for _, p := range photos {
		isLiked := liked[p.ID]
		isPurchased := purchased[p.ID]
		isOwner := p.PhotographerID == viewerID
		p.IsLiked = &isLiked
		p.IsPurchased = &isPurchased
		p.IsOwner = &isOwner
	}
	return nil
}

func normalizePage(page, limit int) (int, int) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = defaultPageSize
	}
	if limit > maxPageSize {
		limit = maxPageSize
	}
	return page, limit
}
