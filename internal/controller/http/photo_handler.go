package http

import (
	"strconv"
	"strings"

	"photobazaar/internal/entity"
	"photobazaar/internal/usecase"
	"photobazaar/pkg/logger"

	"github.com/gin-gonic/gin"
)

type PhotoHandler struct {
	photoUseCase       usecase.PhotoUseCase
	interactionUseCase usecase.InteractionUseCase
	maxUploadSize      int64
	logger             *logger.Logger
}

func NewPhotoHandler(
	photoUseCase usecase.PhotoUseCase,
	interactionUseCase usecase.InteractionUseCase,
	maxUploadSize int64,
	logger *logger.Logger,
) *PhotoHandler {
	return &PhotoHandler{
		photoUseCase:       photoUseCase,
		interactionUseCase: interactionUseCase,
		maxUploadSize:      maxUploadSize,
		logger:             logger,
	}
}

type UploadPhotoRequest struct {
	Title       string  `form:"title" binding:"required"`
	Description string  `form:"description"`
	Price       float64 `form:"price" binding:"required,gte=0"`
	CategoryID  string  `form:"category_id"`
	Tags        string  `form:"tags"`
	IsExclusive bool    `form:"is_exclusive"`
	Width       int     `form:"width"`
	Height      int     `form:"height"`
	Format      string  `form:"format"`
}

type UpdatePhotoRequest struct {
	Title       *string  `json:"title"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price"`
	CategoryID  *string  `json:"category_id"`
	Tags        []string `json:"tags"`
	IsFeatured  *bool    `json:"is_featured"`
}

// ListPhotos godoc
// @Summary      Browse the marketplace
// @Description  List active photos with search, filters, sorting and pagination
// @Tags         photos
// @Produce      json
// @Param        search query string false "Free-text search over title, description and tags"
// @Param        category query string false "Category id or slug"
// @Param        price_min query number false "Minimum price"
// @Param        price_max query number false "Maximum price"
// @Param        photographer query string false "Photographer id"
// @Param        featured query bool false "Featured photos only"
// @Param        sort query string false "Sort order" Enums(newest, oldest, popular, price-low, price-high, views)
// @Param        page query int false "Page number"
// @Param        limit query int false "Items per page (max 100)"
// @Success      200  {object}  Response
// @Router       /photos [get]
func (h *PhotoHandler) ListPhotos(c *gin.Context) {
	params := usecase.ListPhotosParams{
		Search:       c.Query("search"),
		Category:     c.Query("category"),
		Photographer: c.Query("photographer"),
		FeaturedOnly: c.Query("featured") == "true",
		SortBy:       c.Query("sort"),
		Page:         queryInt(c, "page", 1),
		Limit:        queryInt(c, "limit", 0),
	}

	if v, err := strconv.ParseFloat(c.Query("price_min"), 64); err == nil {
		params.PriceMin = &v
	}
	if v, err := strconv.ParseFloat(c.Query("price_max"), 64); err == nil {
		params.PriceMax = &v
	}

	photos, pagination, err := h.photoUseCase.ListPhotos(params, c.GetString("user_id"))
	if err != nil {
		respondError(c, err)
		return
	}

	respondOK(c, gin.H{
		"photos":     photos,
		"pagination": pagination,
	})
}

// GetPhoto godoc
// @Summary      Get photo details
// @Description  Returns a single photo and counts the view for non-owners
// @Tags         photos
// @Produce      json
// @Param        id path string true "Photo id"
// @Success      200  {object}  Response
// @Failure      404  {object}  Response
// @Router       /photos/{id} [get]
func (h *PhotoHandler) GetPhoto(c *gin.Context) {
	photoID := c.Param("id")
	viewerID := c.GetString("user_id")

	photo, err := h.photoUseCase.GetPhoto(photoID, viewerID, entity.UserRole(c.GetString("user_role")))
	if err != nil {
		respondError(c, err)
		return
	}

	counted, err := h.interactionUseCase.RecordView(photoID, viewerID, c.ClientIP())
	if err != nil {
		h.logger.Warn("Failed to record view for photo %s: %v", photoID, err)
	} else if counted {
		photo.Views++
	}

	respondOK(c, photo)
}

// UploadPhoto godoc
// @Summary      Upload a photo
// @Tags         photos
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        title formData string true "Title"
// @Param        description formData string false "Description"
// @Param        price formData number true "Price"
// @Param        category_id formData string false "Category id"
// @Param        tags formData string false "Comma-separated tags"
// @Param        is_exclusive formData bool false "Single-buyer exclusive"
// @Param        image formData file true "Image file"
// @Success      201  {object}  Response
// @Failure      400  {object}  Response
// @Router       /photos [post]
func (h *PhotoHandler) UploadPhoto(c *gin.Context) {
	var req UploadPhotoRequest
	if err := c.ShouldBind(&req); err != nil {
		respondValidation(c, err.Error())
		return
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		respondValidation(c, "image file is required")
		return
	}
	if fileHeader.Size > h.maxUploadSize {
		respondValidation(c, "image file is too large")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		respondValidation(c, "failed to read image file")
		return
	}
	defer file.Close()

	photo, err := h.photoUseCase.UploadPhoto(c.GetString("user_id"), usecase.UploadPhotoParams{
		Title:       req.Title,
		Description: req.Description,
		Price:       req.Price,
		CategoryID:  req.CategoryID,
		Tags:        splitTags(req.Tags),
		IsExclusive: req.IsExclusive,
		Width:       req.Width,
		Height:      req.Height,
		FileSize:    fileHeader.Size,
		Format:      req.Format,
		File:        file,
		ContentType: fileHeader.Header.Get("Content-Type"),
	})
	if err != nil {
		respondError(c, err)
		return
	}

	respondCreated(c, "photo uploaded", photo)
}

// UpdatePhoto godoc
// @Summary      Update a photo
// @Tags         photos
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Photo id"
// @Param        request body UpdatePhotoRequest true "Fields to update"
// @Success      200  {object}  Response
// @Failure      403  {object}  Response
// @Failure      404  {object}  Response
// @Router       /photos/{id} [put]
func (h *PhotoHandler) UpdatePhoto(c *gin.Context) {
	var req UpdatePhotoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidation(c, err.Error())
		return
	}

	photo, err := h.photoUseCase.UpdatePhoto(
		c.GetString("user_id"),
		entity.UserRole(c.GetString("user_role")),
		c.Param("id"),
		usecase.UpdatePhotoParams{
			Title:       req.Title,
			Description: req.Description,
			Price:       req.Price,
			CategoryID:  req.CategoryID,
			Tags:        req.Tags,
			IsFeatured:  req.IsFeatured,
		},
	)
	if err != nil {
		respondError(c, err)
		return
	}
	respondMessage(c, "photo updated", photo)
}

// DeletePhoto godoc
// @Summary      Remove a photo from the marketplace
// @Description  Soft delete: existing purchases keep working
// @Tags         photos
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Photo id"
// @Success      200  {object}  Response
// @Failure      403  {object}  Response
// @Failure      404  {object}  Response
// @Router       /photos/{id} [delete]
func (h *PhotoHandler) DeletePhoto(c *gin.Context) {
	err := h.photoUseCase.DeletePhoto(
		c.GetString("user_id"),
		entity.UserRole(c.GetString("user_role")),
		c.Param("id"),
	)
	if err != nil {
		respondError(c, err)
		return
	}
	respondMessage(c, "photo deleted", nil)
}

// ToggleLike godoc
// @Summary      Like or unlike a photo
// @Tags         photos
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Photo id"
// @Success      200  {object}  Response
// @Failure      400  {object}  Response
// @Failure      404  {object}  Response
// @Router       /photos/{id}/like [post]
func (h *PhotoHandler) ToggleLike(c *gin.Context) {
	liked, count, err := h.interactionUseCase.ToggleLike(c.GetString("user_id"), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	message := "photo unliked"
	if liked {
		message = "photo liked"
	}
	respondMessage(c, message, gin.H{
		"liked":       liked,
		"likes_count": count,
	})
}

func queryInt(c *gin.Context, key string, fallback int) int {
	if v, err := strconv.Atoi(c.Query(key)); err == nil {
		return v
	}
	return fallback
}

func splitTags(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	tags := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			tags = append(tags, t)
		}
	}
	return tags
}
