package http

import (
	"photobazaar/internal/entity"
	"photobazaar/internal/usecase"
	"photobazaar/pkg/logger"

	"github.com/gin-gonic/gin"
)

type PurchaseHandler struct {
	purchaseUseCase usecase.PurchaseUseCase
	logger          *logger.Logger
}

func NewPurchaseHandler(purchaseUseCase usecase.PurchaseUseCase, logger *logger.Logger) *PurchaseHandler {
	return &PurchaseHandler{purchaseUseCase: purchaseUseCase, logger: logger}
}

type CreatePurchaseRequest struct {
	PhotoID       string `json:"photo_id" binding:"required"`
	PaymentMethod string `json:"payment_method"`
}

// CreatePurchase godoc
// @Summary      Purchase a photo
// @Description  Creates the purchase, applies the commission split and returns the download grant
// @Tags         purchases
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body CreatePurchaseRequest true "Purchase"
// @Success      201  {object}  Response
// @Failure      400  {object}  Response
// @Failure      404  {object}  Response
// @Failure      409  {object}  Response
// @Router       /purchases [post]
func (h *PurchaseHandler) CreatePurchase(c *gin.Context) {
	var req CreatePurchaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidation(c, err.Error())
		return
	}

	purchase, err := h.purchaseUseCase.CreatePurchase(
		c.GetString("user_id"),
		req.PhotoID,
		req.PaymentMethod,
	)
	if err != nil {
		respondError(c, err)
		return
	}
	respondCreated(c, "purchase successful", purchase)
}

// ListPurchases godoc
// @Summary      List own purchases
// @Tags         purchases
// @Produce      json
// @Security     BearerAuth
// @Param        page query int false "Page number"
// @Param        limit query int false "Items per page"
// @Success      200  {object}  Response
// @Router       /purchases [get]
func (h *PurchaseHandler) ListPurchases(c *gin.Context) {
	purchases, pagination, err := h.purchaseUseCase.ListPurchases(
		c.GetString("user_id"),
		queryInt(c, "page", 1),
		queryInt(c, "limit", 0),
	)
	if err != nil {
		respondError(c, err)
		return
	}

	respondOK(c, gin.H{
		"purchases":  purchases,
		"pagination": pagination,
	})
}

// GetPurchase godoc
// @Summary      Get a purchase
// @Tags         purchases
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Purchase id"
// @Success      200  {object}  Response
// @Failure      403  {object}  Response
// @Failure      404  {object}  Response
// @Router       /purchases/{id} [get]
func (h *PurchaseHandler) GetPurchase(c *gin.Context) {
	purchase, err := h.purchaseUseCase.GetPurchase(
		c.GetString("user_id"),
		entity.UserRole(c.GetString("user_role")),
		c.Param("id"),
	)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, purchase)
}

// Download godoc
// @Summary      Download a purchased photo
// @Description  Consumes one download slot and returns the signed download URL
// @Tags         purchases
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Purchase id"
// @Success      200  {object}  Response
// @Failure      400  {object}  Response
// @Failure      403  {object}  Response
// @Failure      404  {object}  Response
// @Router       /purchases/{id}/download [post]
func (h *PurchaseHandler) Download(c *gin.Context) {
	grant, err := h.purchaseUseCase.Download(c.GetString("user_id"), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, grant)
}

// ListSales godoc
// @Summary      List own sales
// @Description  Completed purchases of the caller's photos
// @Tags         purchases
// @Produce      json
// @Security     BearerAuth
// @Param        page query int false "Page number"
// @Param        limit query int false "Items per page"
// @Success      200  {object}  Response
// @Router       /purchases/sales/my-sales [get]
func (h *PurchaseHandler) ListSales(c *gin.Context) {
	sales, pagination, err := h.purchaseUseCase.ListSales(
		c.GetString("user_id"),
		queryInt(c, "page", 1),
		queryInt(c, "limit", 0),
	)
	if err != nil {
		respondError(c, err)
		return
	}

	respondOK(c, gin.H{
		"sales":      sales,
		"pagination": pagination,
	})
}
