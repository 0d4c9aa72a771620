package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"coursebay/internal/model"
)

// PurchaseRepository defines purchase persistence operations. Course
// purchases and itemized purchase orders share one collection; the two write
// paths stay separate because their document shapes differ.
type PurchaseRepository interface {
	Create(ctx context.Context, purchase *model.Purchase) error
	CreateOrder(ctx context.Context, order *model.PurchaseOrder) error
}

type purchaseRepository struct {
	collection *mongo.Collection
}

// NewPurchaseRepository builds a MongoDB-backed purchase repository.
func NewPurchaseRepository(db *mongo.Database) PurchaseRepository {
	return &purchaseRepository{collection: db.Collection("purchases")}
}

func (r *purchaseRepository) Create(ctx context.Context, purchase *model.Purchase) error {
	res, err := r.collection.InsertOne(ctx, purchase)
	if err != nil {
		return err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		purchase.ID = oid
	}
	return nil
}

func (r *purchaseRepository) CreateOrder(ctx context.Context, order *model.PurchaseOrder) error {
	res, err := r.collection.InsertOne(ctx, order)
	if err != nil {
		return err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		order.ID = oid
	}
	return nil
}
