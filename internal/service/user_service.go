package service

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"

	"coursebay/internal/auth"
	"coursebay/internal/errors"
	"coursebay/internal/model"
	"coursebay/internal/repository"
)

// UserService handles user signup, login and purchase recording.
type UserService interface {
	Signup(ctx context.Context, email, password, firstName, lastName string) error
	Login(ctx context.Context, email, password string) (token string, err error)
	RecordPurchases(ctx context.Context, userID string, items []model.PurchaseItem) error
}

type userService struct {
	userRepo     repository.UserRepository
	purchaseRepo repository.PurchaseRepository
	jwtService   *auth.JWTService
}

// NewUserService creates a new user service.
func NewUserService(
	userRepo repository.UserRepository,
	purchaseRepo repository.PurchaseRepository,
	jwtService *auth.JWTService,
) UserService {
	return &userService{
		userRepo:     userRepo,
		purchaseRepo: purchaseRepo,
		jwtService:   jwtService,
	}
}

// Signup creates a new user with a hashed password. No duplicate-email check
// is performed, so repeated signups with the same email all succeed.
func (s *userService) Signup(ctx context.Context, email, password, firstName, lastName string) error {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	user := &model.User{
		Email:        email,
		PasswordHash: string(hashedPassword),
		FirstName:    firstName,
		LastName:     lastName,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return fmt.Errorf("create user: %w", err)
	}
	return nil
}

// Login authenticates a user and returns a signed token.
func (s *userService) Login(ctx context.Context, email, password string) (string, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return "", errors.ErrUserNotFound
		}
		return "", fmt.Errorf("find user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", errors.ErrInvalidCredentials
	}

	token, err := s.jwtService.GenerateToken(user.ID.Hex(), user.Email)
	if err != nil {
		return "", fmt.Errorf("generate token: %w", err)
	}
	return token, nil
}

// RecordPurchases persists an itemized purchase order. Neither the user id
// nor the product ids are checked for existence.
func (s *userService) RecordPurchases(ctx context.Context, userID string, items []model.PurchaseItem) error {
	order := &model.PurchaseOrder{
		UserID: userID,
		Items:  items,
	}
	if err := s.purchaseRepo.CreateOrder(ctx, order); err != nil {
		return fmt.Errorf("create purchase order: %w", err)
	}
	return nil
}
