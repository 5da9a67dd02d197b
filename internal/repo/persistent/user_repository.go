package persistent

import (
	"errors"
	"time"

	"photobazaar/internal/entity"
	"photobazaar/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserRepository interface {
	Create(user *entity.User) error
	GetByEmail(email string) (*entity.User, error)
	GetByID(id string) (*entity.User, error)
	Update(user *entity.User) error
	UpdateLastLogin(userID string, at time.Time) error
	MarkVerified(userID string) error

	CreateVerification(userID, code string, expiresAt time.Time) (*entity.EmailVerification, error)
	GetVerificationByCode(code string) (*entity.EmailVerification, error)
	ConsumeVerification(id string, at time.Time) error
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(user *entity.User) error {
	userModel := ToUserModel(user)
	if userModel.ID == "" {
		userModel.ID = uuid.New().String()
	}
	if err := r.db.Create(userModel).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return entity.ErrEmailTaken
		}
		return err
	}
	*user = *ToUserEntity(userModel)
	return nil
}

func (r *userRepository) GetByEmail(email string) (*entity.User, error) {
	var userModel model.UserModel
	if err := r.db.Where("email = ?", email).First(&userModel).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, entity.ErrNotFound
		}
		return nil, err
	}
	return ToUserEntity(&userModel), nil
}

func (r *userRepository) GetByID(id string) (*entity.User, error) {
	var userModel model.UserModel
	if err := r.db.Where("id = ?", id).First(&userModel).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, entity.ErrNotFound
		}
		return nil, err
	}
	return ToUserEntity(&userModel), nil
}

func (r *userRepository) Update(user *entity.User) error {
	return r.db.Save(ToUserModel(user)).Error
}

func (r *userRepository) UpdateLastLogin(userID string, at time.Time) error {
	return r.db.Model(&model.UserModel{}).
		Where("id = ?", userID).
		UpdateColumn("last_login_at", at).Error
}

func (r *userRepository) MarkVerified(userID string) error {
	return r.db.Model(&model.UserModel{}).
		Where("id = ?", userID).
		UpdateColumn("is_verified", true).Error
}

func (r *userRepository) CreateVerification(userID, code string, expiresAt time.Time) (*entity.EmailVerification, error) {
	verification := &model.EmailVerificationModel{
		ID:        uuid.New().String(),
		UserID:    userID,
		Code:      code,
		ExpiresAt: expiresAt,
	}
	if err := r.db.Create(verification).Error; err != nil {
		return nil, err
	}
	return ToVerificationEntity(verification), nil
}

func (r *userRepository) GetVerificationByCode(code string) (*entity.EmailVerification, error) {
	var verification model.EmailVerificationModel
	if err := r.db.Where("code = ?", code).First(&verification).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, entity.ErrNotFound
		}
		return nil, err
	}
	return ToVerificationEntity(&verification), nil
}

func (r *userRepository) ConsumeVerification(id string, at time.Time) error {
	return r.db.Model(&model.EmailVerificationModel{}).
		Where("id = ? AND consumed_at IS NULL", id).
		UpdateColumn("consumed_at", at).Error
}
