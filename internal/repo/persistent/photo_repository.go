package persistent

import (
	"errors"

	"photobazaar/internal/entity"
	"photobazaar/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ListPhotosFilter is the marketplace listing query: free-text search,
// category, price range, photographer, featured flag, sort key, pagination.
type ListPhotosFilter struct {
	Search         string
	CategoryID     string
	PriceMin       *float64
	PriceMax       *float64
	PhotographerID string
	FeaturedOnly   bool
	SortBy         string
	Limit          int
	Offset         int
}

type PhotographerStats struct {
	TotalPhotos    int64
	TotalViews     int64
	TotalDownloads int64
	TotalLikes     int64
}

type PhotoRepository interface {
	Create(photo *entity.Photo) error
	GetByID(id string) (*entity.Photo, error)
	Update(photo *entity.Photo) error
	Deactivate(id string) error
	List(filter ListPhotosFilter) ([]*entity.Photo, int64, error)

	LikedPhotoIDs(userID string, photoIDs []string) (map[string]bool, error)
	PurchasedPhotoIDs(buyerID string, photoIDs []string) (map[string]bool, error)

	Stats(photographerID string) (*PhotographerStats, error)
	TopPhotos(photographerID string, limit int) ([]*entity.Photo, error)
}

type photoRepository struct {
	db *gorm.DB
}

func NewPhotoRepository(db *gorm.DB) PhotoRepository {
	return &photoRepository{db: db}
}

func (r *photoRepository) Create(photo *entity.Photo) error {
	photoModel := ToPhotoModel(photo)
	if photoModel.ID == "" {
		photoModel.ID = uuid.New().String()
	}
	if err := r.db.Create(photoModel).Error; err != nil {
		return err
	}
	*photo = *ToPhotoEntity(photoModel)
	return nil
}

func (r *photoRepository) GetByID(id string) (*entity.Photo, error) {
	var photoModel model.PhotoModel
	err := r.db.Preload("Photographer").Preload("Category").
		Where("id = ?", id).First(&photoModel).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, entity.ErrPhotoNotFound
		}
		return nil, err
	}
	return ToPhotoEntity(&photoModel), nil
}

func (r *photoRepository) Update(photo *entity.Photo) error {
	return r.db.Save(ToPhotoModel(photo)).Error
}

// Deactivate is the soft delete: the row stays so purchases and likes keep
// their references, the photo just disappears from listings.
func (r *photoRepository) Deactivate(id string) error {
	result := r.db.Model(&model.PhotoModel{}).
		Where("id = ?", id).
		UpdateColumn("is_active", false)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return entity.ErrPhotoNotFound
	}
	return nil
}

func (r *photoRepository) List(filter ListPhotosFilter) ([]*entity.Photo, int64, error) {
	query := r.db.Model(&model.PhotoModel{}).Where("is_active = ?", true)

	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where(
			"title ILIKE ? OR description ILIKE ? OR ? = ANY(tags)",
			pattern, pattern, filter.Search,
		)
	}
	if filter.CategoryID != "" {
		query = query.Where("category_id = ?", filter.CategoryID)
	}
	if filter.PriceMin != nil {
		query = query.Where("price >= ?", *filter.PriceMin)
	}
	if filter.PriceMax != nil {
		query = query.Where("price <= ?", *filter.PriceMax)
	}
	if filter.PhotographerID != "" {
		query = query.Where("photographer_id = ?", filter.PhotographerID)
	}
	if filter.FeaturedOnly {
		query = query.Where("is_featured = ?", true)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	switch filter.SortBy {
	case entity.SortOldest:
		query = query.Order("created_at ASC")
	case entity.SortPopular:
		query = query.Order("downloads DESC")
	case entity.SortViews:
		query = query.Order("views DESC")
	case entity.SortPriceLow:
		query = query.Order("price ASC")
	case entity.SortPriceHigh:
		query = query.Order("price DESC")
	default:
		query = query.Order("created_at DESC")
	}

	var photoModels []model.PhotoModel
	err := query.Preload("Photographer").Preload("Category").
		Limit(filter.Limit).Offset(filter.Offset).
		Find(&photoModels).Error
	if err != nil {
		return nil, 0, err
	}

	return ToPhotoEntities(photoModels), total, nil
}

func (r *photoRepository) LikedPhotoIDs(userID string, photoIDs []string) (map[string]bool, error) {
	if len(photoIDs) == 0 {
		return map[string]bool{}, nil
	}

	var ids []string
	err := r.db.Model(&model.LikeModel{}).
		Where("user_id = ? AND photo_id IN ?", userID, photoIDs).
		Pluck("photo_id", &ids).Error
	if err != nil {
		return nil, err
	}

	liked := make(map[string]bool, len(ids))
	for _, id := range ids {
		liked[id] = true
	}
	return liked, nil
}

func (r *photoRepository) PurchasedPhotoIDs(buyerID string, photoIDs []string) (map[string]bool, error) {
	if len(photoIDs) == 0 {
		return map[string]bool{}, nil
	}

	var ids []string
	err := r.db.Model(&model.PurchaseModel{}).
		Where("buyer_id = ? AND status = ? AND photo_id IN ?", buyerID, string(entity.PurchaseCompleted), photoIDs).
		Pluck("photo_id", &ids).Error
	if err != nil {
		return nil, err
	}

	purchased := make(map[string]bool, len(ids))
	for _, id := range ids {
		purchased[id] = true
	}
	return purchased, nil
}

func (r *photoRepository) Stats(photographerID string) (*PhotographerStats, error) {
	stats := &PhotographerStats{}

	err := r.db.Model(&model.PhotoModel{}).
		Where("photographer_id = ? AND is_active = ?", photographerID, true).
		Count(&stats.TotalPhotos).Error
	if err != nil {
		return nil, err
	}

	type sums struct {
		Views     int64
		Downloads int64
		Likes     int64
	}
	var s sums
	err = r.db.Model(&model.PhotoModel{}).
		Where("photographer_id = ? AND is_active = ?", photographerID, true).
		Select("COALESCE(SUM(views), 0) AS views, COALESCE(SUM(downloads), 0) AS downloads, COALESCE(SUM(likes_count), 0) AS likes").
		Scan(&s).Error
	if err != nil {
		return nil, err
	}

	stats.TotalViews = s.Views
	stats.TotalDownloads = s.Downloads
	stats.TotalLikes = s.Likes
	return stats, nil
}

func (r *photoRepository) TopPhotos(photographerID string, limit int) ([]*entity.Photo, error) {
	var photoModels []model.PhotoModel
	err := r.db.Where("photographer_id = ? AND is_active = ?", photographerID, true).
		Order("downloads DESC").
		Limit(limit).
		Find(&photoModels).Error
	if err != nil {
		return nil, err
	}
	return ToPhotoEntities(photoModels), nil
}
