package model_test

import (
	"testing"

	"github.com/muhammadheryan/gg-motors/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestCreateTransactionRequest_ToTransaction(t *testing.T) {
	buyer := primitive.NewObjectID()
	amount := 10.0

	t.Run("defaults status to pending", func(t *testing.T) {
		req := &model.CreateTransactionRequest{
			BuyerID:   buyer.Hex(),
			SellerID:  primitive.NewObjectID().Hex(),
			VehicleID: primitive.NewObjectID().Hex(),
			Amount:    &amount,
		}
		trx, missing, err := req.ToTransaction()
		require.NoError(t, err)
		assert.Empty(t, missing)
		assert.Equal(t, "pending", trx.Status)
		assert.Equal(t, buyer, trx.BuyerID)
		assert.Empty(t, trx.Validate())
	})

	t.Run("reports absent references", func(t *testing.T) {
		_, missing, err := (&model.CreateTransactionRequest{BuyerID: buyer.Hex()}).ToTransaction()
		require.NoError(t, err)
		fields := []string{}
		for _, m := range missing {
			fields = append(fields, m.Field)
		}
		assert.Equal(t, []string{"sellerId", "vehicleId", "amount"}, fields)
	})

	t.Run("malformed reference fails", func(t *testing.T) {
		_, _, err := (&model.CreateTransactionRequest{BuyerID: "123", Amount: &amount}).ToTransaction()
		assert.Error(t, err)
	})
}

func TestIdentity_CanModify(t *testing.T) {
	owner := primitive.NewObjectID()

	assert.True(t, model.Identity{UserID: owner, Role: "user"}.CanModify(owner))
	assert.False(t, model.Identity{UserID: primitive.NewObjectID(), Role: "user"}.CanModify(owner))
	assert.True(t, model.Identity{UserID: primitive.NewObjectID(), Role: "admin"}.CanModify(owner))
	assert.False(t, model.Identity{}.CanModify(primitive.NilObjectID))
}
