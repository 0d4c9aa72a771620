package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"coursebay/internal/cache"
	"coursebay/internal/errors"
	"coursebay/internal/events"
	"coursebay/internal/model"
	"coursebay/internal/repository"
)

const courseCacheTTL = 5 * time.Minute

func courseCacheKey(id primitive.ObjectID) string {
	return fmt.Sprintf("course:%s", id.Hex())
}

// CourseService handles the public course endpoints.
type CourseService interface {
	Preview(ctx context.Context, courseID string) (*model.Course, error)
	Purchase(ctx context.Context, userID, courseID string) (*model.Purchase, error)
}

type courseService struct {
	courseRepo   repository.CourseRepository
	purchaseRepo repository.PurchaseRepository
	cache        *cache.Client
	producer     *events.Producer
}

// NewCourseService creates a new course service.
func NewCourseService(
	courseRepo repository.CourseRepository,
	purchaseRepo repository.PurchaseRepository,
	cache *cache.Client,
	producer *events.Producer,
) CourseService {
	return &courseService{
		courseRepo:   courseRepo,
		purchaseRepo: purchaseRepo,
		cache:        cache,
		producer:     producer,
	}
}

// Preview fetches a course by id with cache-aside reads.
func (s *courseService) Preview(ctx context.Context, courseID string) (*model.Course, error) {
	id, err := primitive.ObjectIDFromHex(courseID)
	if err != nil {
		return nil, err
	}
	return s.getCourse(ctx, id)
}

// Purchase records that a user bought a course. The user id is trusted as
// supplied; only the course must exist.
func (s *courseService) Purchase(ctx context.Context, userID, courseID string) (*model.Purchase, error) {
	id, err := primitive.ObjectIDFromHex(courseID)
	if err != nil {
		return nil, err
	}

	if _, err := s.getCourse(ctx, id); err != nil {
		return nil, err
	}

	purchase := &model.Purchase{
		UserID:      userID,
		CourseID:    id,
		PurchasedAt: time.Now(),
	}
	if err := s.purchaseRepo.Create(ctx, purchase); err != nil {
		return nil, fmt.Errorf("create purchase: %w", err)
	}

	s.producer.PublishCoursePurchased(ctx, events.CoursePurchased{
		UserID:      purchase.UserID,
		CourseID:    purchase.CourseID.Hex(),
		PurchasedAt: purchase.PurchasedAt,
	})
	return purchase, nil
}

func (s *courseService) getCourse(ctx context.Context, id primitive.ObjectID) (*model.Course, error) {
	if data, _ := s.cache.Get(ctx, courseCacheKey(id)); data != nil {
		var cached model.Course
		if err := json.Unmarshal(data, &cached); err == nil {
			return &cached, nil
		}
	}

	course, err := s.courseRepo.FindByID(ctx, id)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, errors.ErrCourseNotFound
		}
		return nil, fmt.Errorf("find course: %w", err)
	}

	if payload, err := json.Marshal(course); err == nil {
		_ = s.cache.Set(ctx, courseCacheKey(id), payload, courseCacheTTL)
	}
	return course, nil
}
