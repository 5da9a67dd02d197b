package http

import (
	"net/http"
	"testing"

	"photobazaar/internal/entity"
	"photobazaar/internal/usecase"
	"photobazaar/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newAuthRouter(authUC *MockAuthUseCase) *gin.Engine {
	handler := NewAuthHandler(authUC, logger.New())
	router := setupTestRouter()
	router.POST("/auth/register", handler.Register)
	router.POST("/auth/login", handler.Login)
	router.POST("/auth/verify-email", handler.VerifyEmail)
	return router
}

func TestRegisterHandler_Success(t *testing.T) {
	authUC := new(MockAuthUseCase)
	router := newAuthRouter(authUC)

	authUC.On("Register", usecase.RegisterParams{
		Email:     "anna@test.com",
		Password:  "password123",
		FirstName: "Anna",
		LastName:  "Lens",
		Role:      "photographer",
	}).Return(&entity.User{ID: "user-1", Email: "anna@test.com"}, "jwt-token", nil)

	w := postJSON(router, "/auth/register",
		`{"email":"anna@test.com","password":"password123","first_name":"Anna","last_name":"Lens","role":"photographer"}`)

	assert.Equal(t, http.StatusCreated, w.Code)
	data := decodeResponse(t, w).Data.(map[string]interface{})
	assert.Equal(t, "jwt-token", data["token"])
}

func TestRegisterHandler_RejectsShortPassword(t *testing.T) {
	authUC := new(MockAuthUseCase)
	router := newAuthRouter(authUC)

	w := postJSON(router, "/auth/register",
		`{"email":"anna@test.com","password":"short","first_name":"Anna","last_name":"Lens"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	authUC.AssertNotCalled(t, "Register", mock.Anything)
}

func TestRegisterHandler_RejectsAdminRole(t *testing.T) {
	authUC := new(MockAuthUseCase)
	router := newAuthRouter(authUC)

	w := postJSON(router, "/auth/register",
		`{"email":"evil@test.com","password":"password123","first_name":"E","last_name":"V","role":"admin"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	authUC.AssertNotCalled(t, "Register", mock.Anything)
}

func TestRegisterHandler_EmailTaken(t *testing.T) {
	authUC := new(MockAuthUseCase)
	router := newAuthRouter(authUC)

	authUC.On("Register", mock.Anything).Return(nil, "", entity.ErrEmailTaken)

	w := postJSON(router, "/auth/register",
		`{"email":"anna@test.com","password":"password123","first_name":"Anna","last_name":"Lens"}`)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestLoginHandler_Success(t *testing.T) {
	authUC := new(MockAuthUseCase)
	router := newAuthRouter(authUC)

	authUC.On("Login", "anna@test.com", "password123").
		Return(&entity.User{ID: "user-1"}, "jwt-token", nil)

	w := postJSON(router, "/auth/login", `{"email":"anna@test.com","password":"password123"}`)

	assert.Equal(t, http.StatusOK, w.Code)
	resp := decodeResponse(t, w)
	assert.Equal(t, "login successful", resp.Message)
	assert.Equal(t, "jwt-token", resp.Data.(map[string]interface{})["token"])
}

func TestLoginHandler_BadCredentials(t *testing.T) {
	authUC := new(MockAuthUseCase)
	router := newAuthRouter(authUC)

	authUC.On("Login", "anna@test.com", "wrong").Return(nil, "", entity.ErrInvalidCredentials)

	w := postJSON(router, "/auth/login", `{"email":"anna@test.com","password":"wrong"}`)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.False(t, decodeResponse(t, w).Success)
}

func TestLoginHandler_MalformedEmail(t *testing.T) {
	authUC := new(MockAuthUseCase)
	router := newAuthRouter(authUC)

	w := postJSON(router, "/auth/login", `{"email":"not-an-email","password":"password123"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	authUC.AssertNotCalled(t, "Login", mock.Anything, mock.Anything)
}

func TestVerifyEmailHandler_Success(t *testing.T) {
	authUC := new(MockAuthUseCase)
	router := newAuthRouter(authUC)

	authUC.On("VerifyEmail", "code-1").Return(nil)

	w := postJSON(router, "/auth/verify-email", `{"code":"code-1"}`)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, decodeResponse(t, w).Success)
}

func TestVerifyEmailHandler_UnknownCode(t *testing.T) {
	authUC := new(MockAuthUseCase)
	router := newAuthRouter(authUC)

	authUC.On("VerifyEmail", "bad-code").Return(entity.ErrNotFound)

	w := postJSON(router, "/auth/verify-email", `{"code":"bad-code"}`)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
