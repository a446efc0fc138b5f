package model

import (
	"strings"
	"time"

	"github.com/muhammadheryan/gg-motors/constant"
	cerr "github.com/muhammadheryan/gg-motors/utils/errors"
	validatorx "github.com/muhammadheryan/gg-motors/utils/validator"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Transaction represents a document of the transactions collection
type Transaction struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	BuyerID       primitive.ObjectID `bson:"buyerId" json:"buyerId" validate:"required"`
	SellerID      primitive.ObjectID `bson:"sellerId" json:"sellerId" validate:"required"`
	VehicleID     primitive.ObjectID `bson:"vehicleId" json:"vehicleId" validate:"required"`
	Amount        float64            `bson:"amount" json:"amount" validate:"gte=0"`
	Status        string             `bson:"status" json:"status" validate:"required,oneof=pending completed cancelled refunded"`
	PaymentMethod string             `bson:"paymentMethod,omitempty" json:"paymentMethod,omitempty" validate:"max=64"`
	CreatedAt     time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt     time.Time          `bson:"updatedAt" json:"updatedAt"`
}

func (t *Transaction) Validate() []cerr.FieldError {
	return validatorx.Validate(t)
}

// TransactionDetail is a transaction with its participants and vehicle
// joined in place of the reference ids.
type TransactionDetail struct {
	Transaction `bson:",inline"`
	Buyer       *UserSummary    `bson:"buyer,omitempty" json:"buyerId"`
	Seller      *UserSummary    `bson:"seller,omitempty" json:"sellerId"`
	Vehicle     *VehicleSummary `bson:"vehicle,omitempty" json:"vehicleId"`
}

// TransactionFilter for listing transactions. A zero UserID lists all.
type TransactionFilter struct {
	UserID primitive.ObjectID
}

type CreateTransactionRequest struct {
	BuyerID       string   `json:"buyerId"`
	SellerID      string   `json:"sellerId"`
	VehicleID     string   `json:"vehicleId"`
	Amount        *float64 `json:"amount"`
	Status        string   `json:"status"`
	PaymentMethod string   `json:"paymentMethod"`
}

// ToTransaction converts the request into an entity. Absent references are
// reported as field errors; malformed ones fail the whole request.
func (r *CreateTransactionRequest) ToTransaction() (*Transaction, []cerr.FieldError, error) {
	var missing []cerr.FieldError
	t := &Transaction{
		Status:        strings.TrimSpace(r.Status),
		PaymentMethod: strings.TrimSpace(r.PaymentMethod),
	}
	if t.Status == "" {
		t.Status = string(constant.TransactionStatusPending)
	}

	for _, ref := range []struct {
		name  string
		value string
		dst   *primitive.ObjectID
	}{
		{"buyerId", r.BuyerID, &t.BuyerID},
		{"sellerId", r.SellerID, &t.SellerID},
		{"vehicleId", r.VehicleID, &t.VehicleID},
	} {
		value := strings.TrimSpace(ref.value)
		if value == "" {
			missing = append(missing, cerr.FieldError{Field: ref.name, Message: ref.name + " is required"})
			continue
		}
		id, err := primitive.ObjectIDFromHex(value)
		if err != nil {
			return nil, nil, err
		}
		*ref.dst = id
	}

	if r.Amount == nil {
		missing = append(missing, cerr.FieldError{Field: "amount", Message: "amount is required"})
	} else {
		t.Amount = *r.Amount
	}

	return t, missing, nil
}

type UpdateTransactionStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending completed cancelled refunded"`
}
