package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"donorlink/internal/auth"
	apperrors "donorlink/internal/errors"
	"donorlink/internal/model"
)

// MockAuthService is a mock implementation of service.AuthService.
type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Login(ctx context.Context, email, password string) (string, *model.User, error) {
	args := m.Called(ctx, email, password)
	if args.Get(1) == nil {
		return args.String(0), nil, args.Error(2)
	}
	return args.String(0), args.Get(1).(*model.User), args.Error(2)
}

func newLoginContext(e *echo.Echo, body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestAuthHandler_LoginSuccess(t *testing.T) {
	mockSvc := new(MockAuthService)
	mockSvc.On("Login", mock.Anything, "dana@example.com", "pw").
		Return("signed-token", &model.User{ID: 42, Email: "dana@example.com"}, nil)

	e := echo.New()
	e.Validator = &testValidator{validator: validator.New()}
	c, rec := newLoginContext(e, `{"email":"dana@example.com","password":"pw"}`)

	h := NewAuthHandler(mockSvc)
	assert.NoError(t, h.Login(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"token":"signed-token"`)
	assert.Contains(t, rec.Body.String(), `"email":"dana@example.com"`)
	// the hash never leaves the server
	assert.NotContains(t, rec.Body.String(), "password")
	mockSvc.AssertExpectations(t)
}

func TestAuthHandler_LoginFailure(t *testing.T) {
	mockSvc := new(MockAuthService)
	mockSvc.On("Login", mock.Anything, "dana@example.com", "wrong").
		Return("", nil, apperrors.ErrAuthenticationFailed)

	e := echo.New()
	e.Validator = &testValidator{validator: validator.New()}
	c, rec := newLoginContext(e, `{"email":"dana@example.com","password":"wrong"}`)

	h := NewAuthHandler(mockSvc)
	assert.NoError(t, h.Login(c))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), `"err":"failed to authenticate"`)
	mockSvc.AssertExpectations(t)
}

func TestAuthHandler_UserInfoEchoesClaims(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/user_info", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	withClaims(c, &auth.Claims{User: model.User{ID: 42, Email: "dana@example.com", Role: model.RoleDonor}})

	h := NewAuthHandler(new(MockAuthService))
	assert.NoError(t, h.UserInfo(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"id":42`)
	assert.Contains(t, rec.Body.String(), `"email":"dana@example.com"`)
}
