package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"

	"coursebay/internal/auth"
	"coursebay/internal/errors"
	"coursebay/internal/model"
)

func newUserService(userRepo *MockUserRepository, purchaseRepo *MockPurchaseRepository) UserService {
	return NewUserService(userRepo, purchaseRepo, auth.NewJWTService("test-secret"))
}

func TestUserService_Signup(t *testing.T) {
	userRepo := new(MockUserRepository)
	var created *model.User
	userRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.User")).
		Run(func(args mock.Arguments) {
			created = args.Get(1).(*model.User)
		}).Return(nil)

	svc := newUserService(userRepo, new(MockPurchaseRepository))
	require.NoError(t, svc.Signup(context.Background(), "u@x.com", "secret1", "First", "Last"))

	require.NotNil(t, created)
	assert.Equal(t, "u@x.com", created.Email)
	assert.Equal(t, "First", created.FirstName)
	assert.Equal(t, "Last", created.LastName)
	assert.NotEqual(t, "secret1", created.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(created.PasswordHash), []byte("secret1")))
}

// Documents current behavior: unlike admin signup, user signup never checks
// for an existing email, so repeated signups with the same address succeed.
func TestUserService_Signup_DuplicateEmailAllowed(t *testing.T) {
	userRepo := new(MockUserRepository)
	userRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.User")).Return(nil).Twice()

	svc := newUserService(userRepo, new(MockPurchaseRepository))
	require.NoError(t, svc.Signup(context.Background(), "dup@x.com", "secret1", "First", "Last"))
	require.NoError(t, svc.Signup(context.Background(), "dup@x.com", "secret1", "First", "Last"))

	userRepo.AssertExpectations(t)
	userRepo.AssertNotCalled(t, "FindByEmail", mock.Anything, mock.Anything)
}

func TestUserService_Login(t *testing.T) {
	hashed, _ := bcrypt.GenerateFromPassword([]byte("secret1"), bcryptCost)
	userID := primitive.NewObjectID()

	tests := []struct {
		name          string
		email         string
		password      string
		setupMock     func(*MockUserRepository)
		expectedError error
	}{
		{
			name:     "successful login",
			email:    "u@x.com",
			password: "secret1",
			setupMock: func(m *MockUserRepository) {
				m.On("FindByEmail", mock.Anything, "u@x.com").Return(&model.User{
					ID:           userID,
					Email:        "u@x.com",
					PasswordHash: string(hashed),
				}, nil)
			},
		},
		{
			name:     "user not found",
			email:    "missing@x.com",
			password: "secret1",
			setupMock: func(m *MockUserRepository) {
				m.On("FindByEmail", mock.Anything, "missing@x.com").Return(nil, mongo.ErrNoDocuments)
			},
			expectedError: errors.ErrUserNotFound,
		},
		{
			name:     "wrong password",
			email:    "u@x.com",
			password: "wrong-password",
			setupMock: func(m *MockUserRepository) {
				m.On("FindByEmail", mock.Anything, "u@x.com").Return(&model.User{
					ID:           userID,
					Email:        "u@x.com",
					PasswordHash: string(hashed),
				}, nil)
			},
			expectedError: errors.ErrInvalidCredentials,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			userRepo := new(MockUserRepository)
			tt.setupMock(userRepo)

			svc := newUserService(userRepo, new(MockPurchaseRepository))
			token, err := svc.Login(context.Background(), tt.email, tt.password)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Empty(t, token)
			} else {
				require.NoError(t, err)

				claims, err := auth.NewJWTService("test-secret").ValidateToken(token)
				require.NoError(t, err)
				assert.Equal(t, userID.Hex(), claims.ID)
				assert.Equal(t, "u@x.com", claims.Email)
			}
			userRepo.AssertExpectations(t)
		})
	}
}

// Documents the asymmetry with the course purchase path: no existence check
// is performed on the user id or the product ids.
func TestUserService_RecordPurchases(t *testing.T) {
	purchaseRepo := new(MockPurchaseRepository)
	var created *model.PurchaseOrder
	purchaseRepo.On("CreateOrder", mock.Anything, mock.AnythingOfType("*model.PurchaseOrder")).
		Run(func(args mock.Arguments) {
			created = args.Get(1).(*model.PurchaseOrder)
		}).Return(nil)

	items := []model.PurchaseItem{
		{ProductID: "p1", Quantity: 2},
		{ProductID: "p2", Quantity: 1},
	}

	svc := newUserService(new(MockUserRepository), purchaseRepo)
	require.NoError(t, svc.RecordPurchases(context.Background(), "ghost-user", items))

	require.NotNil(t, created)
	assert.Equal(t, "ghost-user", created.UserID)
	assert.Equal(t, items, created.Items)
}
