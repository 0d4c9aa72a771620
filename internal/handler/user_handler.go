package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"coursebay/internal/errors"
	"coursebay/internal/model"
	"coursebay/internal/service"
)

// UserHandler handles the public user route group.
type UserHandler struct {
	userService service.UserService
}

// NewUserHandler creates a new user handler.
func NewUserHandler(userService service.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// UserSignupRequest represents a user signup request.
type UserSignupRequest struct {
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=6"`
	FirstName string `json:"firstName" validate:"required"`
	LastName  string `json:"lastName" validate:"required"`
}

// UserLoginRequest represents a user login request.
type UserLoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

// PurchaseItemRequest is one item of a recorded purchase.
type PurchaseItemRequest struct {
	ProductID string `json:"productId" validate:"required"`
	Quantity  int    `json:"quantity" validate:"required,min=1"`
}

// UserPurchasesRequest represents an itemized purchase-recording request.
type UserPurchasesRequest struct {
	UserID string                `json:"userId" validate:"required"`
	Items  []PurchaseItemRequest `json:"items" validate:"required,dive"`
}

// Signup godoc
// @Summary Register a new user
// @Tags user
// @Accept json
// @Produce json
// @Param request body UserSignupRequest true "Signup data"
// @Success 201 {object} errors.MessageResponse
// @Failure 400 {object} errors.MessageResponse
// @Router /user/signup [post]
func (h *UserHandler) Signup(c echo.Context) error {
	var req UserSignupRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := h.userService.Signup(c.Request().Context(), req.Email, req.Password, req.FirstName, req.LastName); err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.Message)
	}

	return c.JSON(http.StatusCreated, echo.Map{"message": "User signed up successfully"})
}

// Login godoc
// @Summary Authenticate a user
// @Tags user
// @Accept json
// @Produce json
// @Param request body UserLoginRequest true "Login credentials"
// @Success 200 {object} TokenResponse
// @Failure 400 {object} errors.MessageResponse
// @Failure 401 {object} errors.MessageResponse
// @Failure 404 {object} errors.MessageResponse
// @Router /user/login [post]
func (h *UserHandler) Login(c echo.Context) error {
	var req UserLoginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	token, err := h.userService.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.Message)
	}

	return c.JSON(http.StatusOK, TokenResponse{Token: token})
}

// Purchases godoc
// @Summary Record an itemized purchase
// @Tags user
// @Accept json
// @Produce json
// @Param request body UserPurchasesRequest true "Purchase items"
// @Success 201 {object} errors.MessageResponse
// @Failure 400 {object} errors.MessageResponse
// @Router /user/purchases [post]
func (h *UserHandler) Purchases(c echo.Context) error {
	var req UserPurchasesRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	items := make([]model.PurchaseItem, 0, len(req.Items))
	for _, item := range req.Items {
		items = append(items, model.PurchaseItem{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
		})
	}

	if err := h.userService.RecordPurchases(c.Request().Context(), req.UserID, items); err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.Message)
	}

	return c.JSON(http.StatusCreated, echo.Map{"message": "Purchase recorded successfully"})
}
