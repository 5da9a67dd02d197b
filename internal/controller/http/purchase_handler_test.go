package http

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"photobazaar/internal/entity"
	"photobazaar/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newPurchaseRouter(purchaseUC *MockPurchaseUseCase, userID string) *gin.Engine {
	handler := NewPurchaseHandler(purchaseUC, logger.New())
	router := setupTestRouter()

	auth := func(c *gin.Context) {
		c.Set("user_id", userID)
		c.Set("user_role", "user")
	}

	router.POST("/purchases", auth, handler.CreatePurchase)
	router.GET("/purchases", auth, handler.ListPurchases)
	router.GET("/purchases/sales/my-sales", auth, handler.ListSales)
	router.GET("/purchases/:id", auth, handler.GetPurchase)
	router.POST("/purchases/:id/download", auth, handler.Download)
	return router
}

func postJSON(router *gin.Engine, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestCreatePurchaseHandler_Success(t *testing.T) {
	purchaseUC := new(MockPurchaseUseCase)
	router := newPurchaseRouter(purchaseUC, "buyer-1")

	purchaseUC.On("CreatePurchase", "buyer-1", "photo-1", "card").Return(&entity.Purchase{
		ID:     "purchase-1",
		Status: entity.PurchaseCompleted,
	}, nil)

	w := postJSON(router, "/purchases", `{"photo_id":"photo-1","payment_method":"card"}`)

	assert.Equal(t, http.StatusCreated, w.Code)
	resp := decodeResponse(t, w)
	assert.True(t, resp.Success)
	assert.Equal(t, "purchase successful", resp.Message)
}

func TestCreatePurchaseHandler_MissingPhotoID(t *testing.T) {
	purchaseUC := new(MockPurchaseUseCase)
	router := newPurchaseRouter(purchaseUC, "buyer-1")

	w := postJSON(router, "/purchases", `{}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	purchaseUC.AssertNotCalled(t, "CreatePurchase", mock.Anything, mock.Anything, mock.Anything)
}

func TestCreatePurchaseHandler_ErrorMapping(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		status int
	}{
		{"own photo", entity.ErrOwnPhotoPurchase, http.StatusBadRequest},
		{"exclusive sold", entity.ErrPhotoUnavailable, http.StatusBadRequest},
		{"already purchased", entity.ErrAlreadyPurchased, http.StatusConflict},
		{"unknown photo", entity.ErrPhotoNotFound, http.StatusNotFound},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			purchaseUC := new(MockPurchaseUseCase)
			router := newPurchaseRouter(purchaseUC, "buyer-1")

			purchaseUC.On("CreatePurchase", "buyer-1", "photo-1", "").Return(nil, tc.err)

			w := postJSON(router, "/purchases", `{"photo_id":"photo-1"}`)
			assert.Equal(t, tc.status, w.Code)
			assert.False(t, decodeResponse(t, w).Success)
		})
	}
}

func TestDownloadHandler_Success(t *testing.T) {
	purchaseUC := new(MockPurchaseUseCase)
	router := newPurchaseRouter(purchaseUC, "buyer-1")

	purchaseUC.On("Download", "buyer-1", "purchase-1").Return(&entity.DownloadGrant{
		DownloadURL:        "https://bucket/signed",
		RemainingDownloads: 2,
	}, nil)

	w := postJSON(router, "/purchases/purchase-1/download", "")

	assert.Equal(t, http.StatusOK, w.Code)
	data := decodeResponse(t, w).Data.(map[string]interface{})
	assert.Equal(t, "https://bucket/signed", data["download_url"])
	assert.Equal(t, float64(2), data["remaining_downloads"])
}

func TestDownloadHandler_ErrorMapping(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		status int
	}{
		{"limit reached", entity.ErrDownloadLimit, http.StatusBadRequest},
		{"link expired", entity.ErrDownloadExpired, http.StatusBadRequest},
		{"payment pending", entity.ErrPurchaseRequired, http.StatusBadRequest},
		{"not the buyer", entity.ErrForbidden, http.StatusForbidden},
		{"unknown purchase", entity.ErrPurchaseNotFound, http.StatusNotFound},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			purchaseUC := new(MockPurchaseUseCase)
			router := newPurchaseRouter(purchaseUC, "buyer-1")

			purchaseUC.On("Download", "buyer-1", "purchase-1").Return(nil, tc.err)

			w := postJSON(router, "/purchases/purchase-1/download", "")
			assert.Equal(t, tc.status, w.Code)
		})
	}
}

func TestListSalesHandler_StaticRouteWinsOverParam(t *testing.T) {
	purchaseUC := new(MockPurchaseUseCase)
	router := newPurchaseRouter(purchaseUC, "photographer-1")

	purchaseUC.On("ListSales", "photographer-1", 1, 0).
		Return([]*entity.Purchase{{ID: "purchase-1"}}, entity.Pagination{TotalItems: 1}, nil)

	req := httptest.NewRequest(http.MethodGet, "/purchases/sales/my-sales", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	purchaseUC.AssertNotCalled(t, "GetPurchase", mock.Anything, mock.Anything, mock.Anything)
}

func TestGetPurchaseHandler_InternalErrorHidesDetail(t *testing.T) {
	purchaseUC := new(MockPurchaseUseCase)
	router := newPurchaseRouter(purchaseUC, "buyer-1")

	purchaseUC.On("GetPurchase", "buyer-1", entity.UserRole("user"), "purchase-1").
		Return(nil, assert.AnError)

	req := httptest.NewRequest(http.MethodGet, "/purchases/purchase-1", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "internal server error", decodeResponse(t, w).Error)
}
