package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"coursebay/internal/errors"
	"coursebay/internal/service"
)

// AdminHandler handles the admin route group.
type AdminHandler struct {
	adminService service.AdminService
}

// NewAdminHandler creates a new admin handler.
func NewAdminHandler(adminService service.AdminService) *AdminHandler {
	return &AdminHandler{adminService: adminService}
}

// AdminSignupRequest represents an admin signup request.
type AdminSignupRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Name     string `json:"name" validate:"required"`
}

// AdminSigninRequest represents an admin signin request.
type AdminSigninRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

// CreateCourseRequest represents a course creation request.
type CreateCourseRequest struct {
	Title       string  `json:"title" validate:"required"`
	Description string  `json:"description" validate:"required"`
	Price       float64 `json:"price" validate:"required,gt=0"`
}

// UpdateCourseRequest represents a partial course update; nil fields are left
// untouched.
type UpdateCourseRequest struct {
	CourseID    string   `json:"courseId" validate:"required"`
	Title       *string  `json:"title" validate:"omitempty,min=1"`
	Description *string  `json:"description" validate:"omitempty,min=1"`
	Price       *float64 `json:"price" validate:"omitempty,gt=0"`
}

// TokenResponse carries an issued bearer token.
type TokenResponse struct {
	Token string `json:"token"`
}

// Signup godoc
// @Summary Register a new admin
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body AdminSignupRequest true "Signup data"
// @Success 201 {object} errors.MessageResponse
// @Failure 400 {object} errors.MessageResponse
// @Failure 401 {object} errors.MessageResponse
// @Router /admin/signup [post]
func (h *AdminHandler) Signup(c echo.Context) error {
	var req AdminSignupRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := h.adminService.Signup(c.Request().Context(), req.Email, req.Password, req.Name); err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.Message)
	}

	return c.JSON(http.StatusCreated, echo.Map{"message": "Admin signed up successfully"})
}

// Signin godoc
// @Summary Authenticate an admin
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body AdminSigninRequest true "Signin credentials"
// @Success 200 {object} TokenResponse
// @Failure 400 {object} errors.MessageResponse
// @Failure 401 {object} errors.MessageResponse
// @Failure 404 {object} errors.MessageResponse
// @Router /admin/signin [post]
func (h *AdminHandler) Signin(c echo.Context) error {
	var req AdminSigninRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	token, err := h.adminService.Signin(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.Message)
	}

	return c.JSON(http.StatusOK, TokenResponse{Token: token})
}

// CreateCourse godoc
// @Summary Create a course listing
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateCourseRequest true "Course data"
// @Success 201 {object} errors.MessageResponse
// @Failure 400 {object} errors.MessageResponse
// @Failure 401 {object} errors.MessageResponse
// @Router /admin/course [post]
func (h *AdminHandler) CreateCourse(c echo.Context) error {
	var req CreateCourseRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if _, err := h.adminService.CreateCourse(c.Request().Context(), req.Title, req.Description, req.Price); err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.Message)
	}

	return c.JSON(http.StatusCreated, echo.Map{"message": "Course added successfully"})
}

// UpdateCourse godoc
// @Summary Update a course listing
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body UpdateCourseRequest true "Fields to update"
// @Success 200 {object} errors.MessageResponse
// @Failure 400 {object} errors.MessageResponse
// @Failure 401 {object} errors.MessageResponse
// @Failure 404 {object} errors.MessageResponse
// @Router /admin/course [put]
func (h *AdminHandler) UpdateCourse(c echo.Context) error {
	var req UpdateCourseRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := h.adminService.UpdateCourse(c.Request().Context(), req.CourseID, req.Title, req.Description, req.Price); err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.Message)
	}

	return c.JSON(http.StatusOK, echo.Map{"message": "Course updated successfully"})
}

// ListCourses godoc
// @Summary List every course listing
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.Course
// @Failure 400 {object} errors.MessageResponse
// @Failure 401 {object} errors.MessageResponse
// @Router /admin/course/bulk [get]
func (h *AdminHandler) ListCourses(c echo.Context) error {
	courses, err := h.adminService.ListCourses(c.Request().Context())
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.Message)
	}

	return c.JSON(http.StatusOK, courses)
}
