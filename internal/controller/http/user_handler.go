package http

import (
	"photobazaar/internal/entity"
	"photobazaar/internal/usecase"
	"photobazaar/pkg/logger"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	userUseCase  usecase.UserUseCase
	photoUseCase usecase.PhotoUseCase
	logger       *logger.Logger
}

func NewUserHandler(userUseCase usecase.UserUseCase, photoUseCase usecase.PhotoUseCase, logger *logger.Logger) *UserHandler {
	return &UserHandler{userUseCase: userUseCase, photoUseCase: photoUseCase, logger: logger}
}

// GetUser godoc
// @Summary      Get a public profile
// @Tags         users
// @Produce      json
// @Param        id path string true "User id"
// @Success      200  {object}  Response
// @Failure      404  {object}  Response
// @Router       /users/{id} [get]
func (h *UserHandler) GetUser(c *gin.Context) {
	profile, err := h.userUseCase.GetPublicProfile(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, profile)
}

// GetUserPhotos godoc
// @Summary      List a photographer's photos
// @Tags         users
// @Produce      json
// @Param        id path string true "User id"
// @Param        page query int false "Page number"
// @Param        limit query int false "Items per page"
// @Success      200  {object}  Response
// @Router       /users/{id}/photos [get]
func (h *UserHandler) GetUserPhotos(c *gin.Context) {
	photos, pagination, err := h.photoUseCase.UserPhotos(
		c.Param("id"),
		c.GetString("user_id"),
		entity.UserRole(c.GetString("user_role")),
		queryInt(c, "page", 1),
		queryInt(c, "limit", 0),
	)
	if err != nil {
		respondError(c, err)
		return
	}

	respondOK(c, gin.H{
		"photos":     photos,
		"pagination": pagination,
	})
}

// GetDashboard godoc
// @Summary      Get a photographer dashboard
// @Description  Aggregated earnings, sales and portfolio stats. Self or admin only.
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "User id"
// @Success      200  {object}  Response
// @Failure      403  {object}  Response
// @Failure      404  {object}  Response
// @Router       /users/{id}/dashboard [get]
func (h *UserHandler) GetDashboard(c *gin.Context) {
	dashboard, err := h.userUseCase.GetDashboard(
		c.GetString("user_id"),
		entity.UserRole(c.GetString("user_role")),
		c.Param("id"),
	)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, dashboard)
}
