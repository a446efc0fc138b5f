package transaction

import (
	"testing"

	"github.com/muhammadheryan/gg-motors/model"
	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestListQuery(t *testing.T) {
	userID := primitive.NewObjectID()

	assert.Equal(t, bson.M{}, ListQuery(nil))
	assert.Equal(t, bson.M{}, ListQuery(&model.TransactionFilter{}))
	assert.Equal(t, bson.M{"$or": bson.A{
		bson.M{"buyerId": userID},
		bson.M{"sellerId": userID},
	}}, ListQuery(&model.TransactionFilter{UserID: userID}))
}
