package transport

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/muhammadheryan/gg-motors/model"
)

// ListTransactions handler
// @Summary List transactions
// @Description Newest first, with buyer, seller and vehicle summaries.
// @Tags Transactions
// @Produce json
// @Success 200 {array} model.TransactionDetail
// @Router /api/transactions [get]
func (s *RestHandler) ListTransactions(w http.ResponseWriter, r *http.Request) {
	res, err := s.TransactionApp.ListTransactions(r.Context())
	if err != nil {
		s.fail(w, r, err)
		return
	}
	if res == nil {
		res = []model.TransactionDetail{}
	}

	writeSuccess(w, res)
}

// ListUserTransactions handler
// @Summary List transactions of a user
// @Description Transactions where the user is buyer or seller.
// @Tags Transactions
// @Produce json
// @Param userId path string true "User ID"
// @Success 200 {array} model.TransactionDetail
// @Failure 400 {object} ErrorResponse
// @Router /api/transactions/user/{userId} [get]
func (s *RestHandler) ListUserTransactions(w http.ResponseWriter, r *http.Request) {
	res, err := s.TransactionApp.ListUserTransactions(r.Context(), mux.Vars(r)["userId"])
	if err != nil {
		s.fail(w, r, err)
		return
	}
	if res == nil {
		res = []model.TransactionDetail{}
	}

	writeSuccess(w, res)
}

// CreateTransaction handler
// @Summary Create transaction
// @Tags Transactions
// @Accept json
// @Produce json
// @Param request body model.CreateTransactionRequest true "Transaction"
// @Success 201 {object} model.Transaction
// @Failure 400 {object} ErrorResponse
// @Router /api/transactions [post]
func (s *RestHandler) CreateTransaction(w http.ResponseWriter, r *http.Request) {
	var req model.CreateTransactionRequest
	if err := decodeJSON(w, r, &req); err != nil {
		s.fail(w, r, err)
		return
	}

	res, err := s.TransactionApp.CreateTransaction(r.Context(), &req)
	if err != nil {
		s.fail(w, r, err)
		return
	}

	writeCreated(w, res)
}

// UpdateTransactionStatus handler
// @Summary Update transaction status
// @Tags Transactions
// @Accept json
// @Produce json
// @Param id path string true "Transaction ID"
// @Param request body model.UpdateTransactionStatusRequest true "New status"
// @Success 200 {object} model.Transaction
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/transactions/{id} [put]
func (s *RestHandler) UpdateTransactionStatus(w http.ResponseWriter, r *http.Request) {
	var req model.UpdateTransactionStatusRequest
	if err := decodeJSON(w, r, &req); err != nil {
		s.fail(w, r, err)
		return
	}

	res, err := s.TransactionApp.UpdateTransactionStatus(r.Context(), mux.Vars(r)["id"], &req)
	if err != nil {
		s.fail(w, r, err)
		return
	}

	writeSuccess(w, res)
}
