package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Purchase records a single course bought through the public course route.
// UserID is stored as supplied by the caller; no referential check is made
// against the users collection.
type Purchase struct {
	ID          primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	UserID      string             `json:"user_id" bson:"userId"`
	CourseID    primitive.ObjectID `json:"course_id" bson:"courseId"`
	PurchasedAt time.Time          `json:"purchased_at" bson:"purchasedAt"`
}

// PurchaseItem is one line of a recorded purchase order.
type PurchaseItem struct {
	ProductID string `json:"productId" bson:"productId"`
	Quantity  int    `json:"quantity" bson:"quantity"`
}

// PurchaseOrder records an itemized purchase through the user route. It shares
// the purchases collection with Purchase but carries a different shape; the two
// paths are independent and intentionally kept unlinked.
type PurchaseOrder struct {
	ID     primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	UserID string             `json:"user_id" bson:"userId"`
	Items  []PurchaseItem     `json:"items" bson:"items"`
}
