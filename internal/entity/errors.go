package entity

import "errors"

// Domain errors. Handlers map these onto HTTP status codes; repositories
// translate driver errors (record not found, duplicate key) into them so no
// gorm error leaks past the usecase layer.
var (
	ErrValidation   = errors.New("validation failed")
	ErrUnauthorized = errors.New("authentication required")
	ErrForbidden    = errors.New("access denied")
	ErrNotFound     = errors.New("resource not found")
	ErrDuplicate    = errors.New("resource already exists")

	ErrEmailTaken         = errors.New("user with this email already exists")
	ErrInvalidCredentials = errors.New("invalid email or password")

	ErrPhotoNotFound    = errors.New("photo not found")
	ErrOwnPhotoLike     = errors.New("cannot like your own photo")
	ErrOwnPhotoPurchase = errors.New("cannot purchase your own photo")
	ErrPhotoUnavailable = errors.New("this exclusive photo has already been sold")

	ErrPurchaseNotFound = errors.New("purchase not found")
	ErrAlreadyPurchased = errors.New("photo already purchased")
	ErrPurchaseRequired = errors.New("completed purchase required")
	ErrDownloadLimit    = errors.New("download limit exceeded")
	ErrDownloadExpired  = errors.New("download period expired")
)
