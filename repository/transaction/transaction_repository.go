package transaction

import (
	"context"
	"errors"
	"time"

	"github.com/muhammadheryan/gg-motors/model"
	"github.com/muhammadheryan/gg-motors/utils/mongox"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const collectionName = "transactions"

type Mongo struct {
	coll *mongo.Collection
}

type TransactionRepository interface {
	Create(ctx context.Context, t *model.Transaction) (*model.Transaction, error)
	List(ctx context.Context, filter *model.TransactionFilter) ([]model.TransactionDetail, error)
	UpdateStatus(ctx context.Context, id primitive.ObjectID, status string, now time.Time) (*model.Transaction, error)
}

func NewTransactionRepository(db *mongo.Database) TransactionRepository {
	return &Mongo{coll: db.Collection(collectionName)}
}

// EnsureIndexes creates the participant indexes used by the per-user listing.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	_, err := db.Collection(collectionName).Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "buyerId", Value: 1}}},
		{Keys: bson.D{{Key: "sellerId", Value: 1}}},
	})
	return err
}

// ListQuery builds the $match document for filter.
func ListQuery(filter *model.TransactionFilter) bson.M {
	if filter == nil || filter.UserID.IsZero() {
		return bson.M{}
	}
	return bson.M{"$or": bson.A{
		bson.M{"buyerId": filter.UserID},
		bson.M{"sellerId": filter.UserID},
	}}
}

func (r *Mongo) Create(ctx context.Context, t *model.Transaction) (*model.Transaction, error) {
	if t.ID.IsZero() {
		t.ID = primitive.NewObjectID()
	}
	if _, err := r.coll.InsertOne(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

func (r *Mongo) List(ctx context.Context, filter *model.TransactionFilter) ([]model.TransactionDetail, error) {
	pipeline := mongox.Concat(
		mongo.Pipeline{
			{{Key: "$match", Value: ListQuery(filter)}},
			{{Key: "$sort", Value: bson.D{{Key: "createdAt", Value: -1}, {Key: "_id", Value: -1}}}},
		},
		mongox.LookupOne("users", "buyerId", "buyer", "name", "email"),
		mongox.LookupOne("users", "sellerId", "seller", "name", "email"),
		mongox.LookupOne("vehicles", "vehicleId", "vehicle", "title", "price"),
	)

	cursor, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	items := make([]model.TransactionDetail, 0)
	if err := cursor.All(ctx, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// UpdateStatus sets only the status (and updatedAt) and returns the updated
// document, or nil when id does not exist.
func (r *Mongo) UpdateStatus(ctx context.Context, id primitive.ObjectID, status string, now time.Time) (*model.Transaction, error) {
	update := bson.M{"$set": bson.M{"status": status, "updatedAt": now}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var t model.Transaction
	if err := r.coll.FindOneAndUpdate(ctx, bson.M{"_id": id}, update, opts).Decode(&t); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &t, nil
}
