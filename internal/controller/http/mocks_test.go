package http

import (
	"io"

	"photobazaar/internal/entity"
	"photobazaar/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
)

func setupTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

type MockPhotoUseCase struct {
	mock.Mock
}

func (m *MockPhotoUseCase) UploadPhoto(photographerID string, params usecase.UploadPhotoParams) (*entity.Photo, error) {
	args := m.Called(photographerID, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Photo), args.Error(1)
}

func (m *MockPhotoUseCase) GetPhoto(photoID string, viewerID string, viewerRole entity.UserRole) (*entity.Photo, error) {
	args := m.Called(photoID, viewerID, viewerRole)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Photo), args.Error(1)
}

func (m *MockPhotoUseCase) ListPhotos(params usecase.ListPhotosParams, viewerID string) ([]*entity.Photo, entity.Pagination, error) {
	args := m.Called(params, viewerID)
	if args.Get(0) == nil {
		return nil, entity.Pagination{}, args.Error(2)
	}
	return args.Get(0).([]*entity.Photo), args.Get(1).(entity.Pagination), args.Error(2)
}

func (m *MockPhotoUseCase) UpdatePhoto(actorID string, actorRole entity.UserRole, photoID string, params usecase.UpdatePhotoParams) (*entity.Photo, error) {
	args := m.Called(actorID, actorRole, photoID, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Photo), args.Error(1)
}

func (m *MockPhotoUseCase) DeletePhoto(actorID string, actorRole entity.UserRole, photoID string) error {
	args := m.Called(actorID, actorRole, photoID)
	return args.Error(0)
}

func (m *MockPhotoUseCase) UserPhotos(photographerID, viewerID string, viewerRole entity.UserRole, page, limit int) ([]*entity.Photo, entity.Pagination, error) {
	args := m.Called(photographerID, viewerID, viewerRole, page, limit)
	if args.Get(0) == nil {
		return nil, entity.Pagination{}, args.Error(2)
	}
	return args.Get(0).([]*entity.Photo), args.Get(1).(entity.Pagination), args.Error(2)
}

var _ usecase.PhotoUseCase = (*MockPhotoUseCase)(nil)

type MockInteractionUseCase struct {
	mock.Mock
}

func (m *MockInteractionUseCase) ToggleLike(userID, photoID string) (bool, int, error) {
	args := m.Called(userID, photoID)
	return args.Bool(0), args.Int(1), args.Error(2)
}

func (m *MockInteractionUseCase) RecordView(photoID, userID, ipAddress string) (bool, error) {
	args := m.Called(photoID, userID, ipAddress)
	return args.Bool(0), args.Error(1)
}

var _ usecase.InteractionUseCase = (*MockInteractionUseCase)(nil)

type MockPurchaseUseCase struct {
	mock.Mock
}

func (m *MockPurchaseUseCase) CreatePurchase(buyerID, photoID, paymentMethod string) (*entity.Purchase, error) {
	args := m.Called(buyerID, photoID, paymentMethod)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Purchase), args.Error(1)
}

func (m *MockPurchaseUseCase) CompleteByTransactionID(transactionID string) (*entity.Purchase, error) {
	args := m.Called(transactionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Purchase), args.Error(1)
}

func (m *MockPurchaseUseCase) GetPurchase(actorID string, actorRole entity.UserRole, purchaseID string) (*entity.Purchase, error) {
	args := m.Called(actorID, actorRole, purchaseID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Purchase), args.Error(1)
}

func (m *MockPurchaseUseCase) ListPurchases(buyerID string, page, limit int) ([]*entity.Purchase, entity.Pagination, error) {
	args := m.Called(buyerID, page, limit)
	if args.Get(0) == nil {
		return nil, entity.Pagination{}, args.Error(2)
	}
	return args.Get(0).([]*entity.Purchase), args.Get(1).(entity.Pagination), args.Error(2)
}

func (m *MockPurchaseUseCase) ListSales(photographerID string, page, limit int) ([]*entity.Purchase, entity.Pagination, error) {
	args := m.Called(photographerID, page, limit)
	if args.Get(0) == nil {
		return nil, entity.Pagination{}, args.Error(2)
	}
	return args.Get(0).([]*entity.Purchase), args.Get(1).(entity.Pagination), args.Error(2)
}

func (m *MockPurchaseUseCase) Download(buyerID, purchaseID string) (*entity.DownloadGrant, error) {
	args := m.Called(buyerID, purchaseID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.DownloadGrant), args.Error(1)
}

var _ usecase.PurchaseUseCase = (*MockPurchaseUseCase)(nil)

type MockAuthUseCase struct {
	mock.Mock
}

func (m *MockAuthUseCase) Register(params usecase.RegisterParams) (*entity.User, string, error) {
	args := m.Called(params)
	if args.Get(0) == nil {
		return nil, "", args.Error(2)
	}
	return args.Get(0).(*entity.User), args.String(1), args.Error(2)
}

func (m *MockAuthUseCase) Login(email, password string) (*entity.User, string, error) {
	args := m.Called(email, password)
	if args.Get(0) == nil {
		return nil, "", args.Error(2)
	}
	return args.Get(0).(*entity.User), args.String(1), args.Error(2)
}

func (m *MockAuthUseCase) GetProfile(userID string) (*entity.User, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockAuthUseCase) UpdateProfile(userID string, params usecase.UpdateProfileParams) (*entity.User, error) {
	args := m.Called(userID, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockAuthUseCase) UploadProfileImage(userID string, file io.Reader, contentType string) (*entity.User, error) {
	args := m.Called(userID, file, contentType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockAuthUseCase) VerifyEmail(code string) error {
	args := m.Called(code)
	return args.Error(0)
}

var _ usecase.AuthUseCase = (*MockAuthUseCase)(nil)
