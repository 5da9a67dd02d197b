package usecase

import (
	"fmt"
	"io"
	"time"

	"photobazaar/internal/entity"
	"photobazaar/internal/repo/persistent"
	"photobazaar/pkg/jwt"
	"photobazaar/pkg/logger"
	"photobazaar/pkg/queue"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const verificationTTL = 24 * time.Hour

type RegisterParams struct {
	Email     string
	Password  string
	FirstName string
	LastName  string
	Role      string
}

type UpdateProfileParams struct {
	FirstName *string
	LastName  *string
	Bio       *string
}

type AuthUseCase interface {
	Register(params RegisterParams) (*entity.User, string, error)
	Login(email, password string) (*entity.User, string, error)
	GetProfile(userID string) (*entity.User, error)
	UpdateProfile(userID string, params UpdateProfileParams) (*entity.User, error)
	UploadProfileImage(userID string, file io.Reader, contentType string) (*entity.User, error)
	VerifyEmail(code string) error
}

type authUseCase struct {
	userRepo   persistent.UserRepository
	jwtService *jwt.Service
	storage    FileStorage
	publisher  TaskPublisher
	logger     *logger.Logger
}

func NewAuthUseCase(
	userRepo persistent.UserRepository,
	jwtService *jwt.Service,
	storage FileStorage,
	publisher TaskPublisher,
	logger *logger.Logger,
) AuthUseCase {
	return &authUseCase{
		userRepo:   userRepo,
		jwtService: jwtService,
		storage:    storage,
		publisher:  publisher,
		logger:     logger,
	}
}

func (uc *authUseCase) Register(params RegisterParams) (*entity.User, string, error) {
	role := entity.UserRole(params.Role)
	switch role {
	case entity.RoleUser, entity.RolePhotographer:
	case "":
		role = entity.RoleUser
	default:
		// Admin accounts are provisioned out of band, never self-registered.
		return nil, "", fmt.Errorf("%w: invalid role", entity.ErrValidation)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(params.Password), bcrypt.DefaultCost)
	if err != nil {
		uc.logger.Error("Failed to hash password: %v", err)
		return nil, "", fmt.Errorf("failed to process registration")
	}

	user := &entity.User{
		Email:     params.Email,
		Password:  string(hashedPassword),
		FirstName: params.FirstName,
		LastName:  params.LastName,
		Role:      role,
		IsActive:  true,
	}

	if err := uc.userRepo.Create(user); err != nil {
		return nil, "", err
	}

	verification, err := uc.userRepo.CreateVerification(user.ID, uuid.New().String(), time.Now().Add(verificationTTL))
	if err != nil {
		uc.logger.Error("Failed to create email verification for user %s: %v", user.ID, err)
	} else if uc.publisher != nil {
		err = uc.publisher.PublishTask(map[string]interface{}{
			"type":     queue.TaskVerificationEmail,
			"user_id":  user.ID,
			"email":    user.Email,
			"code":     verification.Code,
			"priority": 5,
		})
		if err != nil {
			uc.logger.Warn("Failed to publish verification email task for user %s: %v", user.ID, err)
		}
	}

	token, err := uc.jwtService.GenerateToken(user.ID, string(user.Role))
	if err != nil {
		uc.logger.Error("Failed to generate token: %v", err)
		return nil, "", fmt.Errorf("failed to generate token")
	}

	user.Password = ""
	return user, token, nil
}

func (uc *authUseCase) Login(email, password string) (*entity.User, string, error) {
	user, err := uc.userRepo.GetByEmail(email)
	if err != nil {
		return nil, "", entity.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, "", entity.ErrInvalidCredentials
	}

	if !user.IsActive {
		return nil, "", entity.ErrForbidden
	}

	token, err := uc.jwtService.GenerateToken(user.ID, string(user.Role))
	if err != nil {
		uc.logger.Error("Failed to generate token: %v", err)
		return nil, "", fmt.Errorf("failed to generate token")
	}

	if err := uc.userRepo.UpdateLastLogin(user.ID, time.Now()); err != nil {
		uc.logger.Warn("Failed to record last login for user %s: %v", user.ID, err)
	}

	user.Password = ""
	return user, token, nil
}

func (uc *authUseCase) GetProfile(userID string) (*entity.User, error) {
	user, err := uc.userRepo.GetByID(userID)
	if err != nil {
		return nil, err
	}
	user.Password = ""
	return user, nil
}

func (uc *authUseCase) UpdateProfile(userID string, params UpdateProfileParams) (*entity.User, error) {
	user, err := uc.userRepo.GetByID(userID)
	if err != nil {
		return nil, err
	}

	if params.FirstName != nil {
		user.FirstName = *params.FirstName
	}
	if params.LastName != nil {
		user.LastName = *params.LastName
	}
	if params.Bio != nil {
		user.Bio = *params.Bio
	}

	if err := uc.userRepo.Update(user); err != nil {
		uc.logger.Error("Failed to update user %s: %v", userID, err)
		return nil, fmt.Errorf("failed to update profile")
	}

	user.Password = ""
	return user, nil
}

func (uc *authUseCase) UploadProfileImage(userID string, file io.Reader, contentType string) (*entity.User, error) {
	key := fmt.Sprintf("profiles/%s/%s", userID, uuid.New().String())
	imageURL, err := uc.storage.UploadFile(key, file, contentType)
	if err != nil {
		uc.logger.Error("Failed to upload profile image: %v", err)
		return nil, fmt.Errorf("failed to upload profile image")
	}

	user, err := uc.userRepo.GetByID(userID)
	if err != nil {
		return nil, err
	}

	user.ProfileImage = imageURL
	if err := uc.userRepo.Update(user); err != nil {
		uc.logger.Error("Failed to update user %s: %v", userID, err)
		return nil, fmt.Errorf("failed to update profile")
	}

	user.Password = ""
	return user, nil
}

func (uc *authUseCase) VerifyEmail(code string) error {
	verification, err := uc.userRepo.GetVerificationByCode(code)
	if err != nil {
		return err
	}
	if verification.ConsumedAt != nil {
		return entity.ErrNotFound
	}
	if time.Now().After(verification.ExpiresAt) {
		return fmt.Errorf("%w: verification code expired", entity.ErrValidation)
	}

	if err := uc.userRepo.MarkVerified(verification.UserID); err != nil {
		return err
	}
	return uc.userRepo.ConsumeVerification(verification.ID, time.Now())
}
