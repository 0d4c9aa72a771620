package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"coursebay/internal/model"
)

// CourseRepository defines course persistence operations.
type CourseRepository interface {
	Create(ctx context.Context, course *model.Course) error
	Update(ctx context.Context, course *model.Course) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*model.Course, error)
	List(ctx context.Context) ([]model.Course, error)
}

type courseRepository struct {
	collection *mongo.Collection
}

// NewCourseRepository builds a MongoDB-backed course repository.
func NewCourseRepository(db *mongo.Database) CourseRepository {
	return &courseRepository{collection: db.Collection("courses")}
}

func (r *courseRepository) Create(ctx context.Context, course *model.Course) error {
	res, err := r.collection.InsertOne(ctx, course)
	if err != nil {
		return err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		course.ID = oid
	}
	return nil
}

// Update replaces the whole document, mirroring a fetch-mutate-save cycle.
func (r *courseRepository) Update(ctx context.Context, course *model.Course) error {
	_, err := r.collection.ReplaceOne(ctx, bson.M{"_id": course.ID}, course)
	return err
}

func (r *courseRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*model.Course, error) {
	var course model.Course
	if err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&course); err != nil {
		return nil, err
	}
	return &course, nil
}

func (r *courseRepository) List(ctx context.Context) ([]model.Course, error) {
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	courses := []model.Course{}
	if err := cursor.All(ctx, &courses); err != nil {
		return nil, err
	}
	return courses, nil
}
