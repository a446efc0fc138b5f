package user

import (
	"context"
	"errors"

	"github.com/muhammadheryan/gg-motors/model"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const collectionName = "users"

var (
	ErrDuplicateEmail = errors.New("email already exists")
	ErrEmptyFilter    = errors.New("user filter has no criteria")
)

type Mongo struct {
	coll *mongo.Collection
}

type UserRepository interface {
	Create(ctx context.Context, req *model.UserEntity) (*model.UserEntity, error)
	Get(ctx context.Context, filter *model.UserFilter) (*model.UserEntity, error)
}

func NewUserRepository(db *mongo.Database) UserRepository {
	return &Mongo{coll: db.Collection(collectionName)}
}

// EnsureIndexes creates the unique email index.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	_, err := db.Collection(collectionName).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true).SetName("email_unique"),
	})
	return err
}

func (s *Mongo) Create(ctx context.Context, data *model.UserEntity) (*model.UserEntity, error) {
	if data.ID.IsZero() {
		data.ID = primitive.NewObjectID()
	}

	if _, err := s.coll.InsertOne(ctx, data); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, ErrDuplicateEmail
		}
		return nil, err
	}
	return data, nil
}

// Get returns the first user matching filter, or nil when none does.
func (s *Mongo) Get(ctx context.Context, filter *model.UserFilter) (*model.UserEntity, error) {
	query := bson.M{}
	if !filter.ID.IsZero() {
		query["_id"] = filter.ID
	}
	if filter.Email != "" {
		query["email"] = filter.Email
	}
	if len(query) == 0 {
		return nil, ErrEmptyFilter
	}

	var entity model.UserEntity
	if err := s.coll.FindOne(ctx, query).Decode(&entity); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &entity, nil
}
