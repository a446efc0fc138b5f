package transport

import (
	"net/http"

	"github.com/muhammadheryan/gg-motors/constant"
	"github.com/muhammadheryan/gg-motors/model"
	utilsContext "github.com/muhammadheryan/gg-motors/utils/context"
	"github.com/muhammadheryan/gg-motors/utils/errors"
)

// Register handler
// @Summary Register user
// @Description Register a new user
// @Tags Users
// @Accept json
// @Produce json
// @Param request body model.RegisterRequest true "Register Request"
// @Success 201 {object} model.RegisterResponse
// @Failure 400 {object} ErrorResponse
// @Router /api/users/register [post]
func (s *RestHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req model.RegisterRequest
	if err := decodeJSON(w, r, &req); err != nil {
		s.fail(w, r, err)
		return
	}

	res, err := s.UserApp.Register(r.Context(), &req)
	if err != nil {
		s.fail(w, r, err)
		return
	}

	writeCreated(w, res)
}

// Login handler
// @Summary Login user
// @Description Login with email and password and receive a bearer token
// @Tags Users
// @Accept json
// @Produce json
// @Param request body model.LoginRequest true "Login Request"
// @Success 200 {object} model.LoginResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 429 {object} ErrorResponse
// @Router /api/users/login [post]
func (s *RestHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req model.LoginRequest
	if err := decodeJSON(w, r, &req); err != nil {
		s.fail(w, r, err)
		return
	}

	res, err := s.UserApp.Login(r.Context(), &req)
	if err != nil {
		s.fail(w, r, err)
		return
	}

	writeSuccess(w, res)
}

// Profile handler
// @Summary Current user
// @Tags Users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} model.ProfileResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/users/profile [get]
func (s *RestHandler) Profile(w http.ResponseWriter, r *http.Request) {
	identity, ok := utilsContext.GetIdentity(r.Context())
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
		return
	}

	res, err := s.UserApp.Profile(r.Context(), identity.UserID)
	if err != nil {
		s.fail(w, r, err)
		return
	}

	writeSuccess(w, res)
}
