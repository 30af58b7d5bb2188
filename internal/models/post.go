package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Author is the identity snapshot embedded in a document at creation time.
// ID is the hex id of the alumni record that created it.
type Author struct {
	ID   string `bson:"id" json:"id"`
	Name string `bson:"name" json:"name"`
}

// Image stores the uploaded picture inline as base64 text.
type Image struct {
	Data        string `bson:"data" json:"data"`
	ContentType string `bson:"contentType" json:"contentType"`
}

type Post struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title       string             `bson:"title" json:"title"`
	Description string             `bson:"description,omitempty" json:"description,omitempty"`
	Links       []string           `bson:"links,omitempty" json:"links,omitempty"`
	Hashtag     []string           `bson:"hashtag,omitempty" json:"hashtag,omitempty"`
	Date        string             `bson:"date,omitempty" json:"date,omitempty"`
	Author      Author             `bson:"author" json:"author"`
	Image       Image              `bson:"image,omitempty" json:"image"`
	Views       int                `bson:"views" json:"views"`
	Timestamp   time.Time          `bson:"timestamp" json:"timestamp"`
}
