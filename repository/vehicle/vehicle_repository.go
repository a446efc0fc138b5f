package vehicle

import (
	"context"
	"errors"
	"regexp"

	"github.com/muhammadheryan/gg-motors/model"
	"github.com/muhammadheryan/gg-motors/utils/mongox"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	collectionName = "vehicles"
	usersName      = "users"
)

type Mongo struct {
	coll *mongo.Collection
}

type VehicleRepository interface {
	Create(ctx context.Context, v *model.Vehicle) (*model.Vehicle, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*model.Vehicle, error)
	GetDetail(ctx context.Context, id primitive.ObjectID) (*model.VehicleDetail, error)
	List(ctx context.Context, filter *model.VehicleFilter) ([]model.VehicleDetail, error)
	Update(ctx context.Context, v *model.Vehicle) (*model.Vehicle, error)
	Delete(ctx context.Context, id primitive.ObjectID) (*model.Vehicle, error)
}

func NewVehicleRepository(db *mongo.Database) VehicleRepository {
	return &Mongo{coll: db.Collection(collectionName)}
}

// EnsureIndexes creates the indexes backing the list filters.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	_, err := db.Collection(collectionName).Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "category", Value: 1}, {Key: "price", Value: 1}}},
		{Keys: bson.D{{Key: "brand", Value: 1}}},
		{Keys: bson.D{{Key: "sellerId", Value: 1}}},
		{Keys: bson.D{{Key: "createdAt", Value: -1}}},
	})
	return err
}

// ListQuery builds the $match document for filter.
func ListQuery(filter *model.VehicleFilter) bson.M {
	query := bson.M{}
	if filter == nil {
		return query
	}
	if filter.Category != "" {
		query["category"] = filter.Category
	}
	if filter.Brand != "" {
		query["brand"] = filter.Brand
	}
	if filter.Location != "" {
		query["location"] = primitive.Regex{Pattern: regexp.QuoteMeta(filter.Location), Options: "i"}
	}
	if filter.MinPrice != nil || filter.MaxPrice != nil {
		price := bson.M{}
		if filter.MinPrice != nil {
			price["$gte"] = *filter.MinPrice
		}
		if filter.MaxPrice != nil {
			price["$lte"] = *filter.MaxPrice
		}
		query["price"] = price
	}
	return query
}

func (r *Mongo) Create(ctx context.Context, v *model.Vehicle) (*model.Vehicle, error) {
	if v.ID.IsZero() {
		v.ID = primitive.NewObjectID()
	}
	if _, err := r.coll.InsertOne(ctx, v); err != nil {
		return nil, err
	}
	return v, nil
}

func (r *Mongo) GetByID(ctx context.Context, id primitive.ObjectID) (*model.Vehicle, error) {
	var v model.Vehicle
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&v); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &v, nil
}

func (r *Mongo) GetDetail(ctx context.Context, id primitive.ObjectID) (*model.VehicleDetail, error) {
	pipeline := mongox.Concat(
		mongo.Pipeline{{{Key: "$match", Value: bson.M{"_id": id}}}},
		mongox.LookupOne(usersName, "sellerId", "seller", "name", "email", "phone"),
	)

	items, err := r.aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, nil
	}
	return &items[0], nil
}

func (r *Mongo) List(ctx context.Context, filter *model.VehicleFilter) ([]model.VehicleDetail, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: ListQuery(filter)}},
		{{Key: "$sort", Value: bson.D{{Key: "createdAt", Value: -1}, {Key: "_id", Value: -1}}}},
	}
	if filter != nil && filter.Limit > 0 {
		page := filter.Page
		if page <= 0 {
			page = 1
		}
		pipeline = append(pipeline,
			bson.D{{Key: "$skip", Value: int64((page - 1) * filter.Limit)}},
			bson.D{{Key: "$limit", Value: int64(filter.Limit)}},
		)
	}
	pipeline = mongox.Concat(pipeline, mongox.LookupOne(usersName, "sellerId", "seller", "name", "email"))

	return r.aggregate(ctx, pipeline)
}

// Update replaces the stored document; it returns nil when v no longer exists.
func (r *Mongo) Update(ctx context.Context, v *model.Vehicle) (*model.Vehicle, error) {
	res, err := r.coll.ReplaceOne(ctx, bson.M{"_id": v.ID}, v)
	if err != nil {
		return nil, err
	}
	if res.MatchedCount == 0 {
		return nil, nil
	}
	return v, nil
}

// Delete removes the vehicle and returns what was stored, or nil.
func (r *Mongo) Delete(ctx context.Context, id primitive.ObjectID) (*model.Vehicle, error) {
	var v model.Vehicle
	err := r.coll.FindOneAndDelete(ctx, bson.M{"_id": id}, options.FindOneAndDelete()).Decode(&v)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &v, nil
}

func (r *Mongo) aggregate(ctx context.Context, pipeline mongo.Pipeline) ([]model.VehicleDetail, error) {
	cursor, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	items := make([]model.VehicleDetail, 0)
	if err := cursor.All(ctx, &items); err != nil {
		return nil, err
	}
	return items, nil
}
