package router

import (
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"coursebay/internal/config"
	"coursebay/internal/handler"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	adminHandler *handler.AdminHandler,
	courseHandler *handler.CourseHandler,
	userHandler *handler.UserHandler,
) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	// Add validator
	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api/v1")

	// Admin routes. The token gate covers the whole group, signup and signin
	// included; the seed command bootstraps the first admin.
	admin := api.Group("/admin", echojwt.WithConfig(echojwt.Config{
		SigningKey:  []byte(cfg.JWTSecret),
		TokenLookup: "header:" + echo.HeaderAuthorization + ":Bearer ",
		ErrorHandler: func(c echo.Context, err error) error {
			// No bearer token in the header at all is "Unauthorized"; a
			// present token that fails verification is "Invalid token".
			parts := strings.SplitN(c.Request().Header.Get(echo.HeaderAuthorization), " ", 2)
			if len(parts) != 2 || parts[1] == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "Unauthorized")
			}
			return echo.NewHTTPError(http.StatusUnauthorized, "Invalid token")
		},
	}))
	admin.POST("/signup", adminHandler.Signup)
	admin.POST("/signin", adminHandler.Signin)
	admin.POST("/course", adminHandler.CreateCourse)
	admin.PUT("/course", adminHandler.UpdateCourse)
	admin.GET("/course/bulk", adminHandler.ListCourses)

	// Public course routes
	course := api.Group("/course")
	course.POST("/preview", courseHandler.Preview)
	course.POST("/purchase", courseHandler.Purchase)

	// Public user routes
	user := api.Group("/user")
	user.POST("/signup", userHandler.Signup)
	user.POST("/login", userHandler.Login)
	user.POST("/purchases", userHandler.Purchases)
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
