package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"donorlink/internal/auth"
	"donorlink/internal/config"
	apperrors "donorlink/internal/errors"
	"donorlink/internal/handler"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	authHandler *handler.AuthHandler,
	userHandler *handler.UserHandler,
	donationHandler *handler.DonationHandler,
) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{cfg.FrontendOrigin},
	}))

	// Add validator
	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// Bearer-token middleware for protected routes. Rejects with 401 and the
	// {"err": ...} wire format before the handler runs.
	bearer := echojwt.WithConfig(echojwt.Config{
		SigningKey:  []byte(cfg.JWTSecret),
		TokenLookup: "header:" + echo.HeaderAuthorization + ":Bearer ",
		NewClaimsFunc: func(c echo.Context) jwt.Claims {
			return new(auth.Claims)
		},
		ErrorHandler: func(c echo.Context, err error) error {
			return c.JSON(http.StatusUnauthorized, apperrors.ErrorResponse{Err: "invalid or missing token"})
		},
	})

	// Users
	e.GET("/users", userHandler.ListUsers)
	e.POST("/users", userHandler.Register)
	e.GET("/users/:id", userHandler.GetUser)
	e.PUT("/users/:id", userHandler.UpdateUser, bearer)
	e.DELETE("/users/:id", userHandler.DeleteUser, bearer)

	// Donations
	e.GET("/donations", donationHandler.ListDonations)
	e.POST("/donations", donationHandler.CreateDonation, bearer)
	e.GET("/donations/:id", donationHandler.GetDonation)
	e.PUT("/donations/:id", donationHandler.UpdateDonation, bearer)
	e.DELETE("/donations/:id", donationHandler.DeleteDonation, bearer)

	// Auth
	e.POST("/login", authHandler.Login)
	e.GET("/user_info", authHandler.UserInfo, bearer)
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
