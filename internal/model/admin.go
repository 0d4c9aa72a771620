package model

import "go.mongodb.org/mongo-driver/bson/primitive"

// Admin represents a marketplace administrator.
type Admin struct {
	ID           primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Email        string             `json:"email" bson:"email"`
	PasswordHash string             `json:"-" bson:"password"` // Never expose in JSON
	Name         string             `json:"name" bson:"name"`
}
