package service

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"

	"coursebay/internal/auth"
	"coursebay/internal/cache"
	"coursebay/internal/errors"
	"coursebay/internal/model"
	"coursebay/internal/repository"
)

const bcryptCost = 10

// AdminService handles admin authentication and course management.
type AdminService interface {
	Signup(ctx context.Context, email, password, name string) error
	Signin(ctx context.Context, email, password string) (token string, err error)
	CreateCourse(ctx context.Context, title, description string, price float64) (*model.Course, error)
	UpdateCourse(ctx context.Context, courseID string, title, description *string, price *float64) error
	ListCourses(ctx context.Context) ([]model.Course, error)
}

type adminService struct {
	adminRepo  repository.AdminRepository
	courseRepo repository.CourseRepository
	jwtService *auth.JWTService
	cache      *cache.Client
}

// NewAdminService creates a new admin service.
func NewAdminService(
	adminRepo repository.AdminRepository,
	courseRepo repository.CourseRepository,
	jwtService *auth.JWTService,
	cache *cache.Client,
) AdminService {
	return &adminService{
		adminRepo:  adminRepo,
		courseRepo: courseRepo,
		jwtService: jwtService,
		cache:      cache,
	}
}

// Signup creates a new admin with a hashed password. Unlike user signup, the
// email is checked for a prior admin before the insert.
func (s *adminService) Signup(ctx context.Context, email, password, name string) error {
	existing, err := s.adminRepo.FindByEmail(ctx, email)
	if err == nil && existing != nil {
		return errors.ErrAdminExists
	}
	if err != nil && err != mongo.ErrNoDocuments {
		return fmt.Errorf("check admin existence: %w", err)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	admin := &model.Admin{
		Email:        email,
		PasswordHash: string(hashedPassword),
		Name:         name,
	}
	if err := s.adminRepo.Create(ctx, admin); err != nil {
		return fmt.Errorf("create admin: %w", err)
	}
	return nil
}

// Signin authenticates an admin and returns a signed token.
func (s *adminService) Signin(ctx context.Context, email, password string) (string, error) {
	admin, err := s.adminRepo.FindByEmail(ctx, email)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return "", errors.ErrAdminNotFound
		}
		return "", fmt.Errorf("find admin: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(password)); err != nil {
		return "", errors.ErrInvalidCredentials
	}

	token, err := s.jwtService.GenerateToken(admin.ID.Hex(), admin.Email)
	if err != nil {
		return "", fmt.Errorf("generate token: %w", err)
	}
	return token, nil
}

// CreateCourse persists a new course listing.
func (s *adminService) CreateCourse(ctx context.Context, title, description string, price float64) (*model.Course, error) {
	course := &model.Course{
		Title:       title,
		Description: description,
		Price:       price,
	}
	if err := s.courseRepo.Create(ctx, course); err != nil {
		return nil, fmt.Errorf("create course: %w", err)
	}
	return course, nil
}

// UpdateCourse applies only the provided fields to an existing course.
func (s *adminService) UpdateCourse(ctx context.Context, courseID string, title, description *string, price *float64) error {
	id, err := primitive.ObjectIDFromHex(courseID)
	if err != nil {
		return err
	}

	course, err := s.courseRepo.FindByID(ctx, id)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return errors.ErrCourseNotFound
		}
		return fmt.Errorf("find course: %w", err)
	}

	if title != nil {
		course.Title = *title
	}
	if description != nil {
		course.Description = *description
	}
	if price != nil {
		course.Price = *price
	}

	if err := s.courseRepo.Update(ctx, course); err != nil {
		return fmt.Errorf("update course: %w", err)
	}

	// Drop the stale preview cache entry.
	_ = s.cache.Delete(ctx, courseCacheKey(id))
	return nil
}

// ListCourses returns every course listing.
func (s *adminService) ListCourses(ctx context.Context) ([]model.Course, error) {
	courses, err := s.courseRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list courses: %w", err)
	}
	return courses, nil
}
