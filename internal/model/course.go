package model

import "go.mongodb.org/mongo-driver/bson/primitive"

// Course represents a course listing managed by admins.
type Course struct {
	ID          primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Title       string             `json:"title" bson:"title"`
	Description string             `json:"description" bson:"description"`
	Price       float64            `json:"price" bson:"price"`
}
