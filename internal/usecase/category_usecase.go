package usecase

import (
	"fmt"
	"strings"

	"photobazaar/internal/entity"
	"photobazaar/internal/repo/persistent"
	"photobazaar/pkg/logger"
)

type CategoryParams struct {
	Name        string
	Slug        string
	Description string
}

type CategoryUseCase interface {
	CreateCategory(params CategoryParams) (*entity.Category, error)
	GetCategory(identifier string) (*entity.Category, error)
	ListCategories() ([]*entity.Category, error)
	UpdateCategory(categoryID string, params CategoryParams) (*entity.Category, error)
	DeleteCategory(categoryID string) error
}

type categoryUseCase struct {
	categoryRepo persistent.CategoryRepository
	logger       *logger.Logger
}

func NewCategoryUseCase(categoryRepo persistent.CategoryRepository, logger *logger.Logger) CategoryUseCase {
	return &categoryUseCase{categoryRepo: categoryRepo, logger: logger}
}

func (uc *categoryUseCase) CreateCategory(params CategoryParams) (*entity.Category, error) {
	if strings.TrimSpace(params.Name) == "" {
		return nil, fmt.Errorf("%w: name is required", entity.ErrValidation)
	}

	slug := params.Slug
	if slug == "" {
		slug = Slugify(params.Name)
	}

	category := &entity.Category{
		Name:        params.Name,
		Slug:        slug,
		Description: params.Description,
		IsActive:    true,
	}
	if err := uc.categoryRepo.Create(category); err != nil {
		return nil, err
	}
	return category, nil
}

// GetCategory accepts either a category id or a slug.
func (uc *categoryUseCase) GetCategory(identifier string) (*entity.Category, error) {
	category, err := uc.categoryRepo.GetByID(identifier)
	if err != nil {
		category, err = uc.categoryRepo.GetBySlug(identifier)
	}
	if err != nil {
		return nil, err
	}

	count, err := uc.categoryRepo.CountPhotos(category.ID)
	if err != nil {
		uc.logger.Warn("Failed to count photos for category %s: %v", category.ID, err)
	} else {
		category.PhotoCount = count
	}
	return category, nil
}

func (uc *categoryUseCase) ListCategories() ([]*entity.Category, error) {
	return uc.categoryRepo.List(true)
}

func (uc *categoryUseCase) UpdateCategory(categoryID string, params CategoryParams) (*entity.Category, error) {
	category, err := uc.categoryRepo.GetByID(categoryID)
	if err != nil {
		return nil, err
	}

	if params.Name != "" {
		category.Name = params.Name
	}
	if params.Slug != "" {
		category.Slug = params.Slug
	} else if params.Name != "" {
		category.Slug = Slugify(params.Name)
	}
	if params.Description != "" {
		category.Description = params.Description
	}

	if err := uc.categoryRepo.Update(category); err != nil {
		return nil, err
	}
	return category, nil
}

func (uc *categoryUseCase) DeleteCategory(categoryID string) error {
	return uc.categoryRepo.Deactivate(categoryID)
}

// Slugify lowercases a name and collapses runs of non-alphanumerics into
// single hyphens.
func Slugify(name string) string {
	var b strings.Builder
	lastHyphen := true
	for _, r := range strings.ToLower(name) {
		switch {
		case r >= 'a' && r <= 'z' || r >= '0' && r <= '9':
			b.WriteRune(r)
			lastHyphen = false
		default:
			if !lastHyphen {
				b.WriteByte('-')
				lastHyphen = true
			}
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}
