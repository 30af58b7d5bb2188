package database

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	_ "github.com/joho/godotenv/autoload"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Service represents a service that interacts with the document store.
type Service interface {
	// Health returns a map of health status information.
	Health() map[string]string

	// Close terminates the database connection.
	Close() error

	// EnsureIndexes creates the indexes the query paths rely on.
	EnsureIndexes() error

	DB() *mongo.Database
}

type service struct {
	client *mongo.Client
	db     *mongo.Database
}

var (
	uri        = os.Getenv("MONGODB_URI")
	dbName     = os.Getenv("DB_NAME")
	dbInstance *service
)

func New() Service {
	// Reuse connection
	if dbInstance != nil {
		return dbInstance
	}

	if uri == "" {
		uri = "mongodb://localhost:27017"
	}
	if dbName == "" {
		dbName = "alumni_portal"
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		log.Fatalf("Failed to reach database: %v", err)
	}

	log.Println("✅ Database connected successfully")

	dbInstance = &service{
		client: client,
		db:     client.Database(dbName),
	}

	return dbInstance
}

func (s *service) DB() *mongo.Database {
	return s.db
}

// EnsureIndexes creates the sort and lookup indexes: newest-first listings on
// posts and carousal, email lookup for login.
func (s *service) EnsureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	byTimestamp := mongo.IndexModel{Keys: bson.D{{Key: "timestamp", Value: -1}}}
	for _, coll := range []string{"posts", "carousal"} {
		if _, err := s.db.Collection(coll).Indexes().CreateOne(ctx, byTimestamp); err != nil {
			return fmt.Errorf("error creating %s index: %w", coll, err)
		}
	}

	byEmail := mongo.IndexModel{Keys: bson.D{{Key: "email", Value: 1}}}
	if _, err := s.db.Collection("alumni").Indexes().CreateOne(ctx, byEmail); err != nil {
		return fmt.Errorf("error creating alumni index: %w", err)
	}

	log.Println("✅ Database indexes created/verified")
	return nil
}

// Health checks the health of the database connection by pinging the database.
func (s *service) Health() map[string]string {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	stats := make(map[string]string)

	if err := s.client.Ping(ctx, nil); err != nil {
		stats["status"] = "down"
		stats["error"] = fmt.Sprintf("db down: %v", err)
		return stats
	}

	stats["status"] = "up"
	stats["message"] = "It's healthy"
	stats["database"] = dbName

	return stats
}

// Close closes the database connection.
func (s *service) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	log.Printf("Disconnected from database: %s", dbName)
	return s.client.Disconnect(ctx)
}
