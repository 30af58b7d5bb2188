package store

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/alumconnect/alumni-portal/backend/internal/models"
)

type mongoCarousalStore struct {
	coll *mongo.Collection
}

func NewCarousalStore(db *mongo.Database) CarousalStore {
	return &mongoCarousalStore{coll: db.Collection("carousal")}
}

func (s *mongoCarousalStore) Insert(ctx context.Context, item *models.Carousal) (primitive.ObjectID, error) {
	item.Timestamp = time.Now()
	res, err := s.coll.InsertOne(ctx, item)
	if err != nil {
		return primitive.NilObjectID, err
	}
	return res.InsertedID.(primitive.ObjectID), nil
}

func (s *mongoCarousalStore) Latest(ctx context.Context, limit int64) ([]models.Carousal, error) {
	opts := options.Find().
		SetSort(newestFirst).
		SetLimit(limit).
		SetProjection(bson.M{"author": 1, "title": 1, "image": 1, "date": 1})

	cur, err := s.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	var items []models.Carousal
	if err := cur.All(ctx, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (s *mongoCarousalStore) Delete(ctx context.Context, id string) error {
	oid, err := objectID(id)
	if err != nil {
		return err
	}

	res, err := s.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
