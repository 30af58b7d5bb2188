package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Alumni is the registered user identity record. The post service only reads
// it: name lookups at post creation and credential checks at login.
type Alumni struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name     string             `bson:"name" json:"name"`
	Email    string             `bson:"email" json:"email"`
	Password string             `bson:"password" json:"-"`
	Role     string             `bson:"role,omitempty" json:"role,omitempty"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}
