package usecase

import (
	"testing"

	"photobazaar/internal/entity"
	"photobazaar/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestSlugify(t *testing.T) {
	assert.Equal(t, "nature", Slugify("Nature"))
	assert.Equal(t, "black-and-white", Slugify("Black & White"))
	assert.Equal(t, "street-photography", Slugify("  Street   Photography  "))
	assert.Equal(t, "35mm-film", Slugify("35mm Film!"))
	assert.Equal(t, "", Slugify("!!!"))
}

func TestCreateCategory_GeneratesSlug(t *testing.T) {
	categoryRepo := new(MockCategoryRepository)
	uc := NewCategoryUseCase(categoryRepo, logger.New())

	categoryRepo.On("Create", mock.AnythingOfType("*entity.Category")).Return(nil)

	category, err := uc.CreateCategory(CategoryParams{Name: "Black & White"})
	assert.NoError(t, err)
	assert.Equal(t, "black-and-white", category.Slug)
	assert.True(t, category.IsActive)
}

func TestCreateCategory_EmptyName(t *testing.T) {
	categoryRepo := new(MockCategoryRepository)
	uc := NewCategoryUseCase(categoryRepo, logger.New())

	_, err := uc.CreateCategory(CategoryParams{Name: "   "})
	assert.ErrorIs(t, err, entity.ErrValidation)
	categoryRepo.AssertNotCalled(t, "Create", mock.Anything)
}

func TestCreateCategory_DuplicateName(t *testing.T) {
	categoryRepo := new(MockCategoryRepository)
	uc := NewCategoryUseCase(categoryRepo, logger.New())

	categoryRepo.On("Create", mock.Anything).Return(entity.ErrDuplicate)

	_, err := uc.CreateCategory(CategoryParams{Name: "Nature"})
	assert.ErrorIs(t, err, entity.ErrDuplicate)
}

func TestGetCategory_BySlugFallback(t *testing.T) {
	categoryRepo := new(MockCategoryRepository)
	uc := NewCategoryUseCase(categoryRepo, logger.New())

	categoryRepo.On("GetByID", "nature").Return(nil, entity.ErrNotFound)
	categoryRepo.On("GetBySlug", "nature").Return(&entity.Category{ID: "cat-1", Name: "Nature", Slug: "nature"}, nil)
	categoryRepo.On("CountPhotos", "cat-1").Return(int64(12), nil)

	category, err := uc.GetCategory("nature")
	assert.NoError(t, err)
	assert.Equal(t, "cat-1", category.ID)
	assert.Equal(t, int64(12), category.PhotoCount)
}

func TestGetCategory_Unknown(t *testing.T) {
	categoryRepo := new(MockCategoryRepository)
	uc := NewCategoryUseCase(categoryRepo, logger.New())

	categoryRepo.On("GetByID", "missing").Return(nil, entity.ErrNotFound)
	categoryRepo.On("GetBySlug", "missing").Return(nil, entity.ErrNotFound)

	_, err := uc.GetCategory("missing")
	assert.ErrorIs(t, err, entity.ErrNotFound)
}

func TestUpdateCategory_RegeneratesSlugFromName(t *testing.T) {
	categoryRepo := new(MockCategoryRepository)
	uc := NewCategoryUseCase(categoryRepo, logger.New())

	categoryRepo.On("GetByID", "cat-1").Return(&entity.Category{ID: "cat-1", Name: "Nature", Slug: "nature"}, nil)
	categoryRepo.On("Update", mock.AnythingOfType("*entity.Category")).Return(nil)

	category, err := uc.UpdateCategory("cat-1", CategoryParams{Name: "Wild Nature"})
	assert.NoError(t, err)
	assert.Equal(t, "wild-nature", category.Slug)
}
