package store

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/alumconnect/alumni-portal/backend/internal/models"
)

type mongoAlumniStore struct {
	coll *mongo.Collection
}

func NewAlumniStore(db *mongo.Database) AlumniStore {
	return &mongoAlumniStore{coll: db.Collection("alumni")}
}

func (s *mongoAlumniStore) FindByID(ctx context.Context, id string) (*models.Alumni, error) {
	oid, err := objectID(id)
	if err != nil {
		return nil, err
	}

	var alumni models.Alumni
	err = s.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&alumni)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &alumni, nil
}

func (s *mongoAlumniStore) FindByEmail(ctx context.Context, email string) (*models.Alumni, error) {
	var alumni models.Alumni
	err := s.coll.FindOne(ctx, bson.M{"email": email}).Decode(&alumni)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &alumni, nil
}
