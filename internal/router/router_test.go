package router

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	"donorlink/internal/auth"
	"donorlink/internal/config"
	"donorlink/internal/handler"
	"donorlink/internal/model"
)

const testSecret = "router-test-secret"

type stubAuthService struct {
	tokens *auth.JWTService
}

func (s stubAuthService) Login(ctx context.Context, email, password string) (string, *model.User, error) {
	user := &model.User{ID: 42, Email: email, Role: model.RoleDonor}
	token, err := s.tokens.Issue(user)
	return token, user, err
}

type stubUserService struct{}

func (stubUserService) Register(ctx context.Context, user *model.User) (*model.User, error) {
	return user, nil
}

func (stubUserService) List(ctx context.Context) ([]model.User, error) { return nil, nil }

func (stubUserService) Get(ctx context.Context, id uint) (*model.User, error) {
	return &model.User{ID: id}, nil
}

func (stubUserService) ListRecipients(ctx context.Context) ([]model.User, error) { return nil, nil }

func (stubUserService) Update(ctx context.Context, id uint, fields *model.User) (*model.User, error) {
	return &model.User{ID: id}, nil
}

func (stubUserService) Delete(ctx context.Context, id uint) error { return nil }

type stubDonationService struct{}

func (stubDonationService) List(ctx context.Context) ([]model.Donation, error) { return nil, nil }

func (stubDonationService) Get(ctx context.Context, id uint) (*model.Donation, error) {
	return &model.Donation{ID: id}, nil
}

func (stubDonationService) Create(ctx context.Context, caller *auth.Claims, donation *model.Donation) (*model.Donation, error) {
	donation.Donor = caller.User.ID
	return donation, nil
}

func (stubDonationService) Update(ctx context.Context, actorID uint, id uint, fields map[string]interface{}) (*model.Donation, error) {
	return &model.Donation{ID: id}, nil
}

func (stubDonationService) Delete(ctx context.Context, caller *auth.Claims, id uint) error {
	return nil
}

func newTestRouter(t *testing.T) (*echo.Echo, *auth.JWTService) {
	t.Helper()
	cfg := &config.Config{
		JWTSecret:      testSecret,
		FrontendOrigin: "http://localhost:8080",
	}
	tokens := auth.NewJWTService(cfg.JWTSecret, 3600)

	e := echo.New()
	Register(e, cfg,
		handler.NewAuthHandler(stubAuthService{tokens: tokens}),
		handler.NewUserHandler(stubUserService{}),
		handler.NewDonationHandler(stubDonationService{}),
	)
	return e, tokens
}

func request(e *echo.Echo, method, path, authorization, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if authorization != "" {
		req.Header.Set(echo.HeaderAuthorization, authorization)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestRouter_BearerSchemeAccepted(t *testing.T) {
	e, tokens := newTestRouter(t)

	token, err := tokens.Issue(&model.User{ID: 42, Email: "dana@example.com", Role: model.RoleDonor})
	assert.NoError(t, err)

	rec := request(e, http.MethodGet, "/user_info", "Bearer "+token, "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"id":42`)
	assert.Contains(t, rec.Body.String(), `"email":"dana@example.com"`)
}

func TestRouter_RawTokenRejected(t *testing.T) {
	e, tokens := newTestRouter(t)

	token, err := tokens.Issue(&model.User{ID: 42, Role: model.RoleDonor})
	assert.NoError(t, err)

	// header carries the bare token without the Bearer scheme
	rec := request(e, http.MethodGet, "/user_info", token, "")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), `"err":"invalid or missing token"`)
}

func TestRouter_MissingTokenRejected(t *testing.T) {
	e, _ := newTestRouter(t)

	rec := request(e, http.MethodDelete, "/donations/10", "", "")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), `"err":"invalid or missing token"`)
}

func TestRouter_ExpiredTokenRejected(t *testing.T) {
	e, _ := newTestRouter(t)

	expired := &auth.Claims{
		User: model.User{ID: 42, Role: model.RoleDonor},
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-1 * time.Minute)),
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-5 * time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, expired).SignedString([]byte(testSecret))
	assert.NoError(t, err)

	rec := request(e, http.MethodGet, "/user_info", "Bearer "+token, "")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), `"err":"invalid or missing token"`)
}

func TestRouter_LoginTokenAuthorizesProtectedRoute(t *testing.T) {
	e, _ := newTestRouter(t)

	rec := request(e, http.MethodPost, "/login", "",
		`{"email":"dana@example.com","password":"pw"}`)
	assert.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Token string `json:"token"`
	}
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.NotEmpty(t, body.Token)

	rec = request(e, http.MethodPut, "/users/42", "Bearer "+body.Token, `{"city":"Springfield"}`)
	assert.Equal(t, http.StatusOK, rec.Code)
}
