package router

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"coursebay/internal/auth"
	"coursebay/internal/config"
	"coursebay/internal/errors"
	"coursebay/internal/handler"
	"coursebay/internal/model"
)

const testSecret = "test-secret"

type stubAdminService struct{}

func (stubAdminService) Signup(context.Context, string, string, string) error {
	return nil
}

func (stubAdminService) Signin(context.Context, string, string) (string, error) {
	return "stub-token", nil
}

func (stubAdminService) CreateCourse(context.Context, string, string, float64) (*model.Course, error) {
	return &model.Course{}, nil
}

func (stubAdminService) UpdateCourse(context.Context, string, *string, *string, *float64) error {
	return nil
}

func (stubAdminService) ListCourses(context.Context) ([]model.Course, error) {
	return []model.Course{}, nil
}

type stubCourseService struct {
	err error
}

func (s stubCourseService) Preview(context.Context, string) (*model.Course, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &model.Course{Title: "Go", Description: "d", Price: 10}, nil
}

func (s stubCourseService) Purchase(context.Context, string, string) (*model.Purchase, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &model.Purchase{}, nil
}

type stubUserService struct{}

func (stubUserService) Signup(context.Context, string, string, string, string) error {
	return nil
}

func (stubUserService) Login(context.Context, string, string) (string, error) {
	return "stub-token", nil
}

func (stubUserService) RecordPurchases(context.Context, string, []model.PurchaseItem) error {
	return nil
}

func newTestServer(t *testing.T, courseSvc stubCourseService) *echo.Echo {
	t.Helper()

	e := echo.New()
	cfg := &config.Config{JWTSecret: testSecret}
	Register(
		e,
		cfg,
		handler.NewAdminHandler(stubAdminService{}),
		handler.NewCourseHandler(courseSvc),
		handler.NewUserHandler(stubUserService{}),
	)
	return e
}

func doJSON(e *echo.Echo, method, path, body, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestAdminRoutes_RequireToken(t *testing.T) {
	e := newTestServer(t, stubCourseService{})

	paths := []struct {
		method string
		path   string
	}{
		{http.MethodPost, "/api/v1/admin/signup"},
		{http.MethodPost, "/api/v1/admin/signin"},
		{http.MethodPost, "/api/v1/admin/course"},
		{http.MethodPut, "/api/v1/admin/course"},
		{http.MethodGet, "/api/v1/admin/course/bulk"},
	}

	for _, p := range paths {
		t.Run(p.method+" "+p.path, func(t *testing.T) {
			rec := doJSON(e, p.method, p.path, "{}", "")
			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.JSONEq(t, `{"message":"Unauthorized"}`, rec.Body.String())
		})
	}
}

func TestAdminRoutes_RejectInvalidToken(t *testing.T) {
	e := newTestServer(t, stubCourseService{})

	t.Run("tampered token", func(t *testing.T) {
		token, err := auth.NewJWTService(testSecret).GenerateToken("id", "a@x.com")
		require.NoError(t, err)
		tampered := token[:len(token)-2] + "xx"

		rec := doJSON(e, http.MethodGet, "/api/v1/admin/course/bulk", "", tampered)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.JSONEq(t, `{"message":"Invalid token"}`, rec.Body.String())
	})

	t.Run("expired token", func(t *testing.T) {
		claims := &auth.Claims{
			ID:    "id",
			Email: "a@x.com",
			RegisteredClaims: jwt.RegisteredClaims{
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
			},
		}
		expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
		require.NoError(t, err)

		rec := doJSON(e, http.MethodGet, "/api/v1/admin/course/bulk", "", expired)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.JSONEq(t, `{"message":"Invalid token"}`, rec.Body.String())
	})
}

func TestAdminRoutes_AcceptValidToken(t *testing.T) {
	e := newTestServer(t, stubCourseService{})

	token, err := auth.NewJWTService(testSecret).GenerateToken("id", "a@x.com")
	require.NoError(t, err)

	body := `{"email":"a@x.com","password":"secret1","name":"A"}`
	rec := doJSON(e, http.MethodPost, "/api/v1/admin/signup", body, token)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.JSONEq(t, `{"message":"Admin signed up successfully"}`, rec.Body.String())
}

func TestPublicRoutes_Validation(t *testing.T) {
	e := newTestServer(t, stubCourseService{})

	tests := []struct {
		name string
		path string
		body string
	}{
		{
			name: "user signup rejects malformed email",
			path: "/api/v1/user/signup",
			body: `{"email":"not-an-email","password":"secret1","firstName":"F","lastName":"L"}`,
		},
		{
			name: "user signup rejects short password",
			path: "/api/v1/user/signup",
			body: `{"email":"u@x.com","password":"short","firstName":"F","lastName":"L"}`,
		},
		{
			name: "user purchases rejects zero quantity",
			path: "/api/v1/user/purchases",
			body: `{"userId":"u1","items":[{"productId":"p1","quantity":0}]}`,
		},
		{
			name: "course purchase requires course id",
			path: "/api/v1/course/purchase",
			body: `{"userId":"u1"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doJSON(e, http.MethodPost, tt.path, tt.body, "")
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestPublicRoutes_Success(t *testing.T) {
	e := newTestServer(t, stubCourseService{})

	t.Run("user signup", func(t *testing.T) {
		body := `{"email":"u@x.com","password":"secret1","firstName":"F","lastName":"L"}`
		rec := doJSON(e, http.MethodPost, "/api/v1/user/signup", body, "")
		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.JSONEq(t, `{"message":"User signed up successfully"}`, rec.Body.String())
	})

	t.Run("course preview exposes public fields only", func(t *testing.T) {
		rec := doJSON(e, http.MethodPost, "/api/v1/course/preview", `{"courseId":"abc"}`, "")
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"title":"Go","description":"d","price":10}`, rec.Body.String())
	})

	t.Run("user purchases", func(t *testing.T) {
		body := `{"userId":"u1","items":[{"productId":"p1","quantity":2}]}`
		rec := doJSON(e, http.MethodPost, "/api/v1/user/purchases", body, "")
		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.JSONEq(t, `{"message":"Purchase recorded successfully"}`, rec.Body.String())
	})
}

func TestCourseRoutes_NotFound(t *testing.T) {
	e := newTestServer(t, stubCourseService{err: errors.ErrCourseNotFound})

	rec := doJSON(e, http.MethodPost, "/api/v1/course/preview", `{"courseId":"abc"}`, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"message":"Course not found"}`, rec.Body.String())
}

func TestHealthz(t *testing.T) {
	e := newTestServer(t, stubCourseService{})

	rec := doJSON(e, http.MethodGet, "/healthz", "", "")
	assert.Equal(t, http.StatusOK, rec.Code)
}
