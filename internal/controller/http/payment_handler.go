package http

import (
	"photobazaar/internal/usecase"
	"photobazaar/pkg/logger"

	"github.com/gin-gonic/gin"
)

type PaymentHandler struct {
	purchaseUseCase usecase.PurchaseUseCase
	logger          *logger.Logger
}

func NewPaymentHandler(purchaseUseCase usecase.PurchaseUseCase, logger *logger.Logger) *PaymentHandler {
	return &PaymentHandler{purchaseUseCase: purchaseUseCase, logger: logger}
}

type WebhookRequest struct {
	TransactionID string `json:"transaction_id" binding:"required"`
	Status        string `json:"status"`
}

// Webhook godoc
// @Summary      Payment gateway webhook
// @Description  Confirms a pending purchase by transaction id. Redeliveries are idempotent.
// @Tags         payments
// @Accept       json
// @Produce      json
// @Param        request body WebhookRequest true "Gateway notification"
// @Success      200  {object}  Response
// @Failure      400  {object}  Response
// @Failure      404  {object}  Response
// @Router       /payments/webhook [post]
func (h *PaymentHandler) Webhook(c *gin.Context) {
	var req WebhookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidation(c, err.Error())
		return
	}

	purchase, err := h.purchaseUseCase.CompleteByTransactionID(req.TransactionID)
	if err != nil {
		respondError(c, err)
		return
	}

	h.logger.Info("Payment webhook confirmed transaction %s", req.TransactionID)
	respondMessage(c, "payment confirmed", gin.H{
		"purchase_id": purchase.ID,
		"status":      purchase.Status,
	})
}
