package test

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"ecotourism/internal/models"
)

func TestRegisterHandler_Success(t *testing.T) {
	th := newTestHandlers()

	th.AuthService.On("Register", mock.Anything, models.CreateUserRequest{
		Email:    "admin@example.com",
		Password: "password123",
		Role:     "Admin",
	}).Return(&models.User{
		UserID: "user-123",
		Email:  "admin@example.com",
		Role:   "Admin",
	}, nil)

	th.AuthService.On("Login", mock.Anything, "admin@example.com", "password123").
		Return(&models.User{
			UserID: "user-123",
			Email:  "admin@example.com",
			Role:   "Admin",
		}, "access-token-123", "refresh-token-123", nil)

	body := `{"email":"admin@example.com","password":"password123","role":"Admin"}`
	req := httptest.NewRequest(http.MethodPost, "/api/auth/register", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()

	th.Handler.Register(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	var response map[string]interface{}
	err := json.Unmarshal(rr.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.Equal(t, "access-token-123", response["accessToken"])
	assert.Equal(t, "refresh-token-123", response["refreshToken"])

	userData, ok := response["user"].(map[string]interface{})
	assert.True(t, ok)
	assert.Equal(t, "user-123", userData["userId"])
	assert.Equal(t, "Admin", userData["role"])

	th.AuthService.AssertExpectations(t)
}

func TestRegisterHandler_Validation(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"невалидный email", `{"email":"not-an-email","password":"password123","role":"Admin"}`},
		{"короткий пароль", `{"email":"a@b.com","password":"123","role":"Admin"}`},
		{"неизвестная роль", `{"email":"a@b.com","password":"password123","role":"Hacker"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			th := newTestHandlers()

			req := httptest.NewRequest(http.MethodPost, "/api/auth/register", bytes.NewBufferString(tt.body))
			req.Header.Set("Content-Type", "application/json")
			rr := httptest.NewRecorder()

			th.Handler.Register(rr, req)

			assertJSONError(t, rr, http.StatusBadRequest, "Неверные данные")
			th.AuthService.AssertNotCalled(t, "Register", mock.Anything, mock.Anything)
		})
	}
}

func TestRegisterHandler_EmailExists(t *testing.T) {
	th := newTestHandlers()

	th.AuthService.On("Register", mock.Anything, mock.Anything).
		Return(nil, errors.New("пользователь с email admin@example.com уже существует"))

	body := `{"email":"admin@example.com","password":"password123","role":"Admin"}`
	req := httptest.NewRequest(http.MethodPost, "/api/auth/register", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()

	th.Handler.Register(rr, req)

	assertJSONError(t, rr, http.StatusConflict, "Email уже существует")
}

func TestLoginHandler_Success(t *testing.T) {
	th := newTestHandlers()

	th.AuthService.On("Login", mock.Anything, "admin@example.com", "password123").
		Return(&models.User{
			UserID: "user-123",
			Email:  "admin@example.com",
			Role:   "Admin",
		}, "access-token-123", "refresh-token-123", nil)

	body := `{"email":"admin@example.com","password":"password123"}`
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()

	th.Handler.Login(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	var response map[string]interface{}
	err := json.Unmarshal(rr.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.Equal(t, "access-token-123", response["accessToken"])

	th.AuthService.AssertExpectations(t)
}

func TestLoginHandler_WrongPassword(t *testing.T) {
	th := newTestHandlers()

	th.AuthService.On("Login", mock.Anything, "admin@example.com", "wrong").
		Return(nil, "", "", errors.New("ошибка аутентификации: неверный пароль"))

	body := `{"email":"admin@example.com","password":"wrong"}`
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()

	th.Handler.Login(rr, req)

	assertJSONError(t, rr, http.StatusUnauthorized, "Неверный email или пароль")
}

func TestRefreshTokenHandler_Invalid(t *testing.T) {
	th := newTestHandlers()

	th.AuthService.On("RefreshTokens", mock.Anything, "stale-token").
		Return(nil, "", "", errors.New("refresh token не найден"))

	body := `{"refreshToken":"stale-token"}`
	req := httptest.NewRequest(http.MethodPost, "/api/auth/refresh", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()

	th.Handler.RefreshToken(rr, req)

	assertJSONError(t, rr, http.StatusUnauthorized, "Недействительный refresh token")
}
