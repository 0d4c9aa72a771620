package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"coursebay/internal/errors"
	"coursebay/internal/service"
)

// CourseHandler handles the public course route group.
type CourseHandler struct {
	courseService service.CourseService
}

// NewCourseHandler creates a new course handler.
func NewCourseHandler(courseService service.CourseService) *CourseHandler {
	return &CourseHandler{courseService: courseService}
}

// PreviewRequest represents a course preview request.
type PreviewRequest struct {
	CourseID string `json:"courseId" validate:"required"`
}

// PurchaseRequest represents a course purchase request.
type PurchaseRequest struct {
	UserID   string `json:"userId" validate:"required"`
	CourseID string `json:"courseId" validate:"required"`
}

// PreviewResponse exposes the public fields of a course, nothing else.
type PreviewResponse struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
}

// Preview godoc
// @Summary Preview a course
// @Tags course
// @Accept json
// @Produce json
// @Param request body PreviewRequest true "Course id"
// @Success 200 {object} PreviewResponse
// @Failure 400 {object} errors.MessageResponse
// @Failure 404 {object} errors.MessageResponse
// @Router /course/preview [post]
func (h *CourseHandler) Preview(c echo.Context) error {
	var req PreviewRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	course, err := h.courseService.Preview(c.Request().Context(), req.CourseID)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.Message)
	}

	return c.JSON(http.StatusOK, PreviewResponse{
		Title:       course.Title,
		Description: course.Description,
		Price:       course.Price,
	})
}

// Purchase godoc
// @Summary Purchase a course
// @Tags course
// @Accept json
// @Produce json
// @Param request body PurchaseRequest true "Purchase data"
// @Success 201 {object} errors.MessageResponse
// @Failure 400 {object} errors.MessageResponse
// @Failure 404 {object} errors.MessageResponse
// @Router /course/purchase [post]
func (h *CourseHandler) Purchase(c echo.Context) error {
	var req PurchaseRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if _, err := h.courseService.Purchase(c.Request().Context(), req.UserID, req.CourseID); err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.Message)
	}

	return c.JSON(http.StatusCreated, echo.Map{"message": "Course purchased successfully"})
}
