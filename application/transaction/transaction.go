package transaction

import (
	"context"
	"strings"
	"time"

	"github.com/muhammadheryan/gg-motors/constant"
	"github.com/muhammadheryan/gg-motors/model"
	transactionrepo "github.com/muhammadheryan/gg-motors/repository/transaction"
	"github.com/muhammadheryan/gg-motors/thirdparty/rabbitmq"
	cerr "github.com/muhammadheryan/gg-motors/utils/errors"
	"github.com/muhammadheryan/gg-motors/utils/logger"
	validatorx "github.com/muhammadheryan/gg-motors/utils/validator"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type TransactionApp interface {
	ListTransactions(ctx context.Context) ([]model.TransactionDetail, error)
	ListUserTransactions(ctx context.Context, userID string) ([]model.TransactionDetail, error)
	CreateTransaction(ctx context.Context, req *model.CreateTransactionRequest) (*model.Transaction, error)
	UpdateTransactionStatus(ctx context.Context, id string, req *model.UpdateTransactionStatusRequest) (*model.Transaction, error)
}

type transactionAppImpl struct {
	transactionRepo transactionrepo.TransactionRepository
	publisher       rabbitmq.EventPublisher
	now             func() time.Time
}

// NewTransactionApp wires the transaction use cases; publisher may be nil.
func NewTransactionApp(transactionRepo transactionrepo.TransactionRepository, publisher rabbitmq.EventPublisher) TransactionApp {
	return &transactionAppImpl{
		transactionRepo: transactionRepo,
		publisher:       publisher,
		now:             time.Now,
	}
}

func (s *transactionAppImpl) ListTransactions(ctx context.Context) ([]model.TransactionDetail, error) {
	return s.list(ctx, &model.TransactionFilter{})
}

func (s *transactionAppImpl) ListUserTransactions(ctx context.Context, userID string) ([]model.TransactionDetail, error) {
	id, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, cerr.SetCustomError(constant.ErrInvalidID)
	}
	return s.list(ctx, &model.TransactionFilter{UserID: id})
}

func (s *transactionAppImpl) list(ctx context.Context, filter *model.TransactionFilter) ([]model.TransactionDetail, error) {
	items, err := s.transactionRepo.List(ctx, filter)
	if err != nil {
		logger.Error("[ListTransactions] err transactionRepo.List", logger.WithContext(ctx, zap.String("error", err.Error()))...)
		return nil, cerr.SetCustomError(constant.ErrInternal).WithCause(err)
	}
	return items, nil
}

func (s *transactionAppImpl) CreateTransaction(ctx context.Context, req *model.CreateTransactionRequest) (*model.Transaction, error) {
	trx, missing, err := req.ToTransaction()
	if err != nil {
		return nil, cerr.SetCustomError(constant.ErrInvalidID).WithCause(err)
	}
	if errs := cerr.MergeFieldErrors(missing, trx.Validate()); len(errs) > 0 {
		return nil, cerr.SetCustomError(constant.ErrValidation).WithDetails(errs...)
	}

	now := s.now().UTC().Truncate(time.Millisecond)
	trx.CreatedAt = now
	trx.UpdatedAt = now

	created, err := s.transactionRepo.Create(ctx, trx)
	if err != nil {
		logger.Error("[CreateTransaction] err transactionRepo.Create", logger.WithContext(ctx, zap.String("error", err.Error()))...)
		return nil, cerr.SetCustomError(constant.ErrInternal).WithCause(err)
	}

	s.publish(ctx, rabbitmq.TransactionCreatedKey, created)
	return created, nil
}

func (s *transactionAppImpl) UpdateTransactionStatus(ctx context.Context, id string, req *model.UpdateTransactionStatusRequest) (*model.Transaction, error) {
	trxID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, cerr.SetCustomError(constant.ErrTransactionNotFound)
	}

	req.Status = strings.TrimSpace(req.Status)
	if errs := validatorx.Validate(req); len(errs) > 0 {
		return nil, cerr.SetCustomError(constant.ErrValidation).WithDetails(errs...)
	}

	updated, err := s.transactionRepo.UpdateStatus(ctx, trxID, req.Status, s.now().UTC().Truncate(time.Millisecond))
	if err != nil {
		logger.Error("[UpdateTransactionStatus] err transactionRepo.UpdateStatus", logger.WithContext(ctx, zap.String("error", err.Error()))...)
		return nil, cerr.SetCustomError(constant.ErrInternal).WithCause(err)
	}
	if updated == nil {
		return nil, cerr.SetCustomError(constant.ErrTransactionNotFound)
	}

	s.publish(ctx, rabbitmq.TransactionStatusUpdatedKey, updated)
	return updated, nil
}

// publish is best effort; the write has already succeeded.
func (s *transactionAppImpl) publish(ctx context.Context, routingKey string, trx *model.Transaction) {
	if s.publisher == nil {
		return
	}
	msg := rabbitmq.TransactionMessage{
		TransactionID: trx.ID.Hex(),
		BuyerID:       trx.BuyerID.Hex(),
		SellerID:      trx.SellerID.Hex(),
		VehicleID:     trx.VehicleID.Hex(),
		Amount:        trx.Amount,
		Status:        trx.Status,
		OccurredAt:    s.now().UTC(),
	}
	if err := s.publisher.PublishTransaction(ctx, routingKey, msg); err != nil {
		logger.Error("[publish] err publisher.PublishTransaction", logger.WithContext(ctx,
			zap.String("error", err.Error()),
			zap.String("routing_key", routingKey))...)
	}
}
