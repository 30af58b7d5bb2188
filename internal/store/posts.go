package store

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/alumconnect/alumni-portal/backend/internal/models"
)

type mongoPostStore struct {
	coll *mongo.Collection
}

func NewPostStore(db *mongo.Database) PostStore {
	return &mongoPostStore{coll: db.Collection("posts")}
}

// newestFirst sorts by timestamp descending with _id descending as tie-break,
// so posts inserted with equal timestamps come back in insertion order.
var newestFirst = bson.D{{Key: "timestamp", Value: -1}, {Key: "_id", Value: -1}}

func objectID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, ErrNotFound
	}
	return oid, nil
}

func (s *mongoPostStore) Insert(ctx context.Context, post *models.Post) (primitive.ObjectID, error) {
	post.Timestamp = time.Now()
	res, err := s.coll.InsertOne(ctx, post)
	if err != nil {
		return primitive.NilObjectID, err
	}
	return res.InsertedID.(primitive.ObjectID), nil
}

func (s *mongoPostStore) Latest(ctx context.Context, limit int64) ([]models.Post, error) {
	opts := options.Find().
		SetSort(newestFirst).
		SetLimit(limit).
		SetProjection(bson.M{"author": 1, "title": 1, "image": 1, "date": 1, "views": 1})

	cur, err := s.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	var posts []models.Post
	if err := cur.All(ctx, &posts); err != nil {
		return nil, err
	}
	return posts, nil
}

func (s *mongoPostStore) GetAndBumpViews(ctx context.Context, id string) (*models.Post, error) {
	oid, err := objectID(id)
	if err != nil {
		return nil, err
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var post models.Post
	err = s.coll.FindOneAndUpdate(ctx,
		bson.M{"_id": oid},
		bson.M{"$inc": bson.M{"views": 1}},
		opts,
	).Decode(&post)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &post, nil
}

func (s *mongoPostStore) Search(ctx context.Context, filter SearchFilter) ([]models.Post, error) {
	query := filter.Query()
	if query == nil {
		return []models.Post{}, nil
	}

	opts := options.Find().
		SetSort(newestFirst).
		SetProjection(bson.M{"author": 1, "title": 1, "date": 1, "views": 1, "hashtag": 1})

	cur, err := s.coll.Find(ctx, query, opts)
	if err != nil {
		return nil, err
	}
	var posts []models.Post
	if err := cur.All(ctx, &posts); err != nil {
		return nil, err
	}
	return posts, nil
}

func (s *mongoPostStore) AuthorOf(ctx context.Context, id string) (models.Author, error) {
	oid, err := objectID(id)
	if err != nil {
		return models.Author{}, err
	}

	var doc struct {
		Author models.Author `bson:"author"`
	}
	err = s.coll.FindOne(ctx,
		bson.M{"_id": oid},
		options.FindOne().SetProjection(bson.M{"author": 1}),
	).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.Author{}, ErrNotFound
	}
	if err != nil {
		return models.Author{}, err
	}
	return doc.Author, nil
}

func (s *mongoPostStore) Delete(ctx context.Context, id string) error {
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
