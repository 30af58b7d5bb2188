package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Carousal is a rotating-banner image post. Unlike Post it carries no view
// counter and its author name is caller-supplied.
type Carousal struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title     string             `bson:"title" json:"title"`
	Date      string             `bson:"date,omitempty" json:"date,omitempty"`
	Author    Author             `bson:"author" json:"author"`
	Image     Image              `bson:"image,omitempty" json:"image"`
	Timestamp time.Time          `bson:"timestamp" json:"timestamp"`
}
