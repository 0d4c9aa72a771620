package model

import "go.mongodb.org/mongo-driver/bson/primitive"

// User represents a registered buyer.
type User struct {
	ID           primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Email        string             `json:"email" bson:"email"`
	PasswordHash string             `json:"-" bson:"password"` // Never expose in JSON
	FirstName    string             `json:"first_name" bson:"firstName"`
	LastName     string             `json:"last_name" bson:"lastName"`
}
