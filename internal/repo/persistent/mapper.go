package persistent

import (
	"photobazaar/internal/entity"
	"photobazaar/internal/model"
)

func ToUserEntity(m *model.UserModel) *entity.User {
	if m == nil {
		return nil
	}

	return &entity.User{
		ID:            m.ID,
		Email:         m.Email,
		Password:      m.Password,
		FirstName:     m.FirstName,
		LastName:      m.LastName,
		Role:          entity.UserRole(m.Role),
		Bio:           m.Bio,
		ProfileImage:  m.ProfileImage,
		IsVerified:    m.IsVerified,
		IsActive:      m.IsActive,
		TotalEarnings: m.TotalEarnings,
		TotalSales:    m.TotalSales,
		LastLoginAt:   m.LastLoginAt,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

func ToUserModel(e *entity.User) *model.UserModel {
	if e == nil {
		return nil
	}

	return &model.UserModel{
		ID:            e.ID,
		Email:         e.Email,
		Password:      e.Password,
		FirstName:     e.FirstName,
		LastName:      e.LastName,
		Role:          string(e.Role),
		Bio:           e.Bio,
		ProfileImage:  e.ProfileImage,
		IsVerified:    e.IsVerified,
		IsActive:      e.IsActive,
		TotalEarnings: e.TotalEarnings,
		TotalSales:    e.TotalSales,
		LastLoginAt:   e.LastLoginAt,
		CreatedAt:     e.CreatedAt,
		UpdatedAt:     e.UpdatedAt,
	}
}

func ToUserSummary(m *model.UserModel) *entity.UserSummary {
	if m == nil {
		return nil
	}

	return &entity.UserSummary{
		ID:           m.ID,
		FirstName:    m.FirstName,
		LastName:     m.LastName,
		ProfileImage: m.ProfileImage,
	}
}

func ToCategoryEntity(m *model.CategoryModel) *entity.Category {
	if m == nil {
		return nil
	}

	return &entity.Category{
		ID:          m.ID,
		Name:        m.Name,
		Slug:        m.Slug,
		Description: m.Description,
		IsActive:    m.IsActive,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func ToCategoryModel(e *entity.Category) *model.CategoryModel {
	if e == nil {
		return nil
	}

	return &model.CategoryModel{
		ID:          e.ID,
		Name:        e.Name,
		Slug:        e.Slug,
		Description: e.Description,
		IsActive:    e.IsActive,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
}

func ToCategorySummary(m *model.CategoryModel) *entity.CategorySummary {
	if m == nil {
		return nil
	}

	return &entity.CategorySummary{
		ID:   m.ID,
		Name: m.Name,
		Slug: m.Slug,
	}
}

func ToPhotoEntity(m *model.PhotoModel) *entity.Photo {
	if m == nil {
		return nil
	}

	categoryID := ""
	if m.CategoryID != nil {
		categoryID = *m.CategoryID
	}

	return &entity.Photo{
		ID:             m.ID,
		PhotographerID: m.PhotographerID,
		CategoryID:     categoryID,
		Title:          m.Title,
		Description:    m.Description,
		Price:          m.Price,
		ImageURL:       m.ImageURL,
		ThumbnailURL:   m.ThumbnailURL,
		FullImageURL:   m.FullImageURL,
		StorageKey:     m.StorageKey,
		Tags:           []string(m.Tags),
		Views:          m.Views,
		Downloads:      m.Downloads,
		LikesCount:     m.LikesCount,
		Width:          m.Width,
		Height:         m.Height,
		FileSize:       m.FileSize,
		Format:         m.Format,
		IsActive:       m.IsActive,
		IsFeatured:     m.IsFeatured,
		IsExclusive:    m.IsExclusive,
		Sold:           m.Sold,
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
		Photographer:   ToUserSummary(m.Photographer),
		Category:       ToCategorySummary(m.Category),
	}
}

func ToPhotoModel(e *entity.Photo) *model.PhotoModel {
	if e == nil {
		return nil
	}

	var categoryID *string
	if e.CategoryID != "" {
		id := e.CategoryID
		categoryID = &id
	}

	return &model.PhotoModel{
		ID:             e.ID,
		PhotographerID: e.PhotographerID,
		CategoryID:     categoryID,
		Title:          e.Title,
		Description:    e.Description,
		Price:          e.Price,
		ImageURL:       e.ImageURL,
		ThumbnailURL:   e.ThumbnailURL,
		FullImageURL:   e.FullImageURL,
		StorageKey:     e.StorageKey,
		Tags:           e.Tags,
		Views:          e.Views,
		Downloads:      e.Downloads,
		LikesCount:     e.LikesCount,
		Width:          e.Width,
		Height:         e.Height,
		FileSize:       e.FileSize,
		Format:         e.Format,
		IsActive:       e.IsActive,
		IsFeatured:     e.IsFeatured,
		IsExclusive:    e.IsExclusive,
		Sold:           e.Sold,
		CreatedAt:      e.CreatedAt,
		UpdatedAt:      e.UpdatedAt,
	}
}

func ToPhotoEntities(models []model.PhotoModel) []*entity.Photo {
	photos := make([]*entity.Photo, len(models))
	for i := range models {
		photos[i] = ToPhotoEntity(&models[i])
	}
	return photos
}

func ToPurchaseEntity(m *model.PurchaseModel) *entity.Purchase {
	if m == nil {
		return nil
	}

	p := &entity.Purchase{
		ID:                  m.ID,
		BuyerID:             m.BuyerID,
		PhotoID:             m.PhotoID,
		PhotographerID:      m.PhotographerID,
		Amount:              m.Amount,
		Commission:          m.Commission,
		PhotographerEarning: m.PhotographerEarning,
		Status:              entity.PurchaseStatus(m.Status),
		PaymentMethod:       m.PaymentMethod,
		TransactionID:       m.TransactionID,
		DownloadURL:         m.DownloadURL,
		DownloadExpiresAt:   m.DownloadExpiresAt,
		DownloadCount:       m.DownloadCount,
		MaxDownloads:        m.MaxDownloads,
		PurchasedAt:         m.PurchasedAt,
	}

	if m.Photo != nil {
		p.Photo = ToPhotoEntity(m.Photo)
	}
	if m.Buyer != nil {
		p.Buyer = ToUserSummary(m.Buyer)
	}
	return p
}

func ToPurchaseModel(e *entity.Purchase) *model.PurchaseModel {
	if e == nil {
		return nil
	}

	return &model.PurchaseModel{
		ID:                  e.ID,
		BuyerID:             e.BuyerID,
		PhotoID:             e.PhotoID,
		PhotographerID:      e.PhotographerID,
		Amount:              e.Amount,
		Commission:          e.Commission,
		PhotographerEarning: e.PhotographerEarning,
		Status:              string(e.Status),
		PaymentMethod:       e.PaymentMethod,
		TransactionID:       e.TransactionID,
		DownloadURL:         e.DownloadURL,
		DownloadExpiresAt:   e.DownloadExpiresAt,
		DownloadCount:       e.DownloadCount,
		MaxDownloads:        e.MaxDownloads,
		PurchasedAt:         e.PurchasedAt,
	}
}

func ToPurchaseEntities(models []model.PurchaseModel) []*entity.Purchase {
	purchases := make([]*entity.Purchase, len(models))
	for i := range models {
		purchases[i] = ToPurchaseEntity(&models[i])
	}
	return purchases
}

func ToVerificationEntity(m *model.EmailVerificationModel) *entity.EmailVerification {
	if m == nil {
		return nil
	}

	return &entity.EmailVerification{
		ID:         m.ID,
		UserID:     m.UserID,
		Code:       m.Code,
		ExpiresAt:  m.ExpiresAt,
		ConsumedAt: m.ConsumedAt,
		CreatedAt:  m.CreatedAt,
	}
}
