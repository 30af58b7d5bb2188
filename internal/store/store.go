package store

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/alumconnect/alumni-portal/backend/internal/models"
)

// ErrNotFound is returned when a lookup id matches no document. An id that is
// not even a valid ObjectID hex is reported the same way.
var ErrNotFound = errors.New("store: not found")

// PostStore is the document-store surface the post handlers depend on.
type PostStore interface {
	Insert(ctx context.Context, post *models.Post) (primitive.ObjectID, error)
	Latest(ctx context.Context, limit int64) ([]models.Post, error)
	// GetAndBumpViews atomically increments the view counter and returns the
	// post as it reads after the increment.
	GetAndBumpViews(ctx context.Context, id string) (*models.Post, error)
	Search(ctx context.Context, filter SearchFilter) ([]models.Post, error)
	// AuthorOf fetches only the author snapshot, for ownership checks.
	AuthorOf(ctx context.Context, id string) (models.Author, error)
	Delete(ctx context.Context, id string) error
}

type CarousalStore interface {
	Insert(ctx context.Context, item *models.Carousal) (primitive.ObjectID, error)
	Latest(ctx context.Context, limit int64) ([]models.Carousal, error)
	Delete(ctx context.Context, id string) error
}

type AlumniStore interface {
	FindByID(ctx context.Context, id string) (*models.Alumni, error)
	FindByEmail(ctx context.Context, email string) (*models.Alumni, error)
}
