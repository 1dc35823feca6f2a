package projects

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrStoreUnavailable is reported per request when the database connection
// could not be established at startup.
var ErrStoreUnavailable = errors.New("project store unavailable")

// Store is what the HTTP layer needs from persistence.
type Store interface {
	Insert(ctx context.Context, p *Project) (*Project, error)
	ListAll(ctx context.Context) ([]Project, error)
}

type MongoStore struct {
	coll *mongo.Collection
}

// NewMongoStore wraps the projects collection. db may be nil when the startup
// connection failed; every call then returns ErrStoreUnavailable.
func NewMongoStore(db *mongo.Database) *MongoStore {
	s := &MongoStore{}
	if db != nil {
		s.coll = db.Collection("projects")
	}
	return s
}

func (s *MongoStore) Insert(ctx context.Context, p *Project) (*Project, error) {
	if s.coll == nil {
		return nil, ErrStoreUnavailable
	}

	if err := validate(p); err != nil {
		return nil, err
	}

	if p.TechStack == nil {
		p.TechStack = []string{}
	}
	p.CreatedAt = time.Now().UTC()

	res, err := s.coll.InsertOne(ctx, p)
	if err != nil {
		return nil, fmt.Errorf("insert project: %w", err)
	}

	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		p.ID = oid
	}
	return p, nil
}

func (s *MongoStore) ListAll(ctx context.Context) ([]Project, error) {
	if s.coll == nil {
		return nil, ErrStoreUnavailable
	}

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cur, err := s.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	defer cur.Close(ctx)

	out := make([]Project, 0, 16)
	if err := cur.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("decode projects: %w", err)
	}

	for i := range out {
		if out[i].TechStack == nil {
			out[i].TechStack = []string{}
		}
	}
	return out, nil
}

// The persistence layer owns the required-field invariant, the way a schema
// would: a project without title, description or details never reaches the
// collection.
func validate(p *Project) error {
	switch {
	case p.Title == "":
		return fmt.Errorf("project validation failed: title is required")
	case p.Description == "":
		return fmt.Errorf("project validation failed: description is required")
	case p.Details == "":
		return fmt.Errorf("project validation failed: details is required")
	}
	return nil
}
