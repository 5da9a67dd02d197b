package usecase

import (
	"io"
	"time"

	"photobazaar/internal/entity"
	"photobazaar/internal/repo/persistent"

	"github.com/stretchr/testify/mock"
)

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(user *entity.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockUserRepository) GetByEmail(email string) (*entity.User, error) {
	args := m.Called(email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockUserRepository) GetByID(id string) (*entity.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockUserRepository) Update(user *entity.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockUserRepository) UpdateLastLogin(userID string, at time.Time) error {
	args := m.Called(userID, at)
	return args.Error(0)
}

func (m *MockUserRepository) MarkVerified(userID string) error {
	args := m.Called(userID)
	return args.Error(0)
}

func (m *MockUserRepository) CreateVerification(userID, code string, expiresAt time.Time) (*entity.EmailVerification, error) {
	args := m.Called(userID, code, expiresAt)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.EmailVerification), args.Error(1)
}

func (m *MockUserRepository) GetVerificationByCode(code string) (*entity.EmailVerification, error) {
	args := m.Called(code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.EmailVerification), args.Error(1)
}

func (m *MockUserRepository) ConsumeVerification(id string, at time.Time) error {
	args := m.Called(id, at)
	return args.Error(0)
}

var _ persistent.UserRepository = (*MockUserRepository)(nil)

type MockPhotoRepository struct {
	mock.Mock
}

func (m *MockPhotoRepository) Create(photo *entity.Photo) error {
	args := m.Called(photo)
	return args.Error(0)
}

func (m *MockPhotoRepository) GetByID(id string) (*entity.Photo, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Photo), args.Error(1)
}

func (m *MockPhotoRepository) Update(photo *entity.Photo) error {
	args := m.Called(photo)
	return args.Error(0)
}

func (m *MockPhotoRepository) Deactivate(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockPhotoRepository) List(filter persistent.ListPhotosFilter) ([]*entity.Photo, int64, error) {
	args := m.Called(filter)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*entity.Photo), args.Get(1).(int64), args.Error(2)
}

func (m *MockPhotoRepository) LikedPhotoIDs(userID string, photoIDs []string) (map[string]bool, error) {
	args := m.Called(userID, photoIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]bool), args.Error(1)
}

func (m *MockPhotoRepository) PurchasedPhotoIDs(buyerID string, photoIDs []string) (map[string]bool, error) {
	args := m.Called(buyerID, photoIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]bool), args.Error(1)
}

func (m *MockPhotoRepository) Stats(photographerID string) (*persistent.PhotographerStats, error) {
	args := m.Called(photographerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*persistent.PhotographerStats), args.Error(1)
}

func (m *MockPhotoRepository) TopPhotos(photographerID string, limit int) ([]*entity.Photo, error) {
	args := m.Called(photographerID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Photo), args.Error(1)
}

var _ persistent.PhotoRepository = (*MockPhotoRepository)(nil)

type MockCategoryRepository struct {
	mock.Mock
}

func (m *MockCategoryRepository) Create(category *entity.Category) error {
	args := m.Called(category)
	return args.Error(0)
}

func (m *MockCategoryRepository) GetByID(id string) (*entity.Category, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Category), args.Error(1)
}

func (m *MockCategoryRepository) GetBySlug(slug string) (*entity.Category, error) {
	args := m.Called(slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Category), args.Error(1)
}

func (m *MockCategoryRepository) List(activeOnly bool) ([]*entity.Category, error) {
	args := m.Called(activeOnly)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Category), args.Error(1)
}

func (m *MockCategoryRepository) Update(category *entity.Category) error {
	args := m.Called(category)
	return args.Error(0)
}

func (m *MockCategoryRepository) Deactivate(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockCategoryRepository) CountPhotos(categoryID string) (int64, error) {
	args := m.Called(categoryID)
	return args.Get(0).(int64), args.Error(1)
}

var _ persistent.CategoryRepository = (*MockCategoryRepository)(nil)

type MockPurchaseRepository struct {
	mock.Mock
}

func (m *MockPurchaseRepository) Create(purchase *entity.Purchase) error {
	args := m.Called(purchase)
	return args.Error(0)
}

func (m *MockPurchaseRepository) GetByID(id string) (*entity.Purchase, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Purchase), args.Error(1)
}

func (m *MockPurchaseRepository) GetByTransactionID(transactionID string) (*entity.Purchase, error) {
	args := m.Called(transactionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Purchase), args.Error(1)
}

func (m *MockPurchaseRepository) GetCompletedByBuyerAndPhoto(buyerID, photoID string) (*entity.Purchase, error) {
	args := m.Called(buyerID, photoID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Purchase), args.Error(1)
}

func (m *MockPurchaseRepository) ListByBuyer(buyerID string, limit, offset int) ([]*entity.Purchase, int64, error) {
	args := m.Called(buyerID, limit, offset)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*entity.Purchase), args.Get(1).(int64), args.Error(2)
}

func (m *MockPurchaseRepository) ListByPhotographer(photographerID string, limit, offset int) ([]*entity.Purchase, int64, error) {
	args := m.Called(photographerID, limit, offset)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*entity.Purchase), args.Get(1).(int64), args.Error(2)
}

func (m *MockPurchaseRepository) SumEarnings(photographerID string) (float64, error) {
	args := m.Called(photographerID)
	return args.Get(0).(float64), args.Error(1)
}

func (m *MockPurchaseRepository) Complete(purchaseID, downloadURL string, expiresAt time.Time) (*entity.Purchase, error) {
	args := m.Called(purchaseID, downloadURL, expiresAt)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Purchase), args.Error(1)
}

func (m *MockPurchaseRepository) Fail(purchaseID string) error {
	args := m.Called(purchaseID)
	return args.Error(0)
}

func (m *MockPurchaseRepository) IncrementDownload(purchaseID string) (int, bool, error) {
	args := m.Called(purchaseID)
	return args.Int(0), args.Bool(1), args.Error(2)
}

var _ persistent.PurchaseRepository = (*MockPurchaseRepository)(nil)

type MockInteractionRepository struct {
	mock.Mock
}

func (m *MockInteractionRepository) ToggleLike(userID, photoID string) (bool, error) {
	args := m.Called(userID, photoID)
	return args.Bool(0), args.Error(1)
}

func (m *MockInteractionRepository) LikesCount(photoID string) (int, error) {
	args := m.Called(photoID)
	return args.Int(0), args.Error(1)
}

func (m *MockInteractionRepository) RecordView(photoID string, userID, ipAddress *string) (bool, error) {
	args := m.Called(photoID, userID, ipAddress)
	return args.Bool(0), args.Error(1)
}

var _ persistent.InteractionRepository = (*MockInteractionRepository)(nil)

type MockFileStorage struct {
	mock.Mock
}

func (m *MockFileStorage) UploadFile(key string, file io.Reader, contentType string) (string, error) {
	args := m.Called(key, file, contentType)
	return args.String(0), args.Error(1)
}

func (m *MockFileStorage) PresignDownloadURL(key string, expiry time.Duration) (string, error) {
	args := m.Called(key, expiry)
	return args.String(0), args.Error(1)
}

var _ FileStorage = (*MockFileStorage)(nil)

type MockTaskPublisher struct {
	mock.Mock
}

func (m *MockTaskPublisher) PublishTask(task map[string]interface{}) error {
	args := m.Called(task)
	return args.Error(0)
}

var _ TaskPublisher = (*MockTaskPublisher)(nil)
