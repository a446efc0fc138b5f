// Package mongox holds aggregation helpers shared by the Mongo repositories.
package mongox

import (
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// LookupOne joins the single document of collection from whose _id equals
// localField, keeping only fields, and stores it under as. A missing
// referent leaves as unset rather than dropping the row.
func LookupOne(from, localField, as string, fields ...string) mongo.Pipeline {
	project := bson.D{}
	for _, f := range fields {
		project = append(project, bson.E{Key: f, Value: 1})
	}

	return mongo.Pipeline{
		{{Key: "$lookup", Value: bson.D{
			{Key: "from", Value: from},
			{Key: "let", Value: bson.D{{Key: "ref", Value: "$" + localField}}},
			{Key: "pipeline", Value: bson.A{
				bson.D{{Key: "$match", Value: bson.D{{Key: "$expr", Value: bson.D{{Key: "$eq", Value: bson.A{"$_id", "$$ref"}}}}}}},
				bson.D{{Key: "$project", Value: project}},
			}},
			{Key: "as", Value: as},
		}}},
		{{Key: "$unwind", Value: bson.D{
			{Key: "path", Value: "$" + as},
			{Key: "preserveNullAndEmptyArrays", Value: true},
		}}},
	}
}

// Concat flattens stage lists into one pipeline.
func Concat(parts ...mongo.Pipeline) mongo.Pipeline {
	var out mongo.Pipeline
	for _, p := range parts {
		out = append(out, p...)
	}
	return out
}
