package model

import (
	"strings"
	"time"

	"github.com/muhammadheryan/gg-motors/constant"
	cerr "github.com/muhammadheryan/gg-motors/utils/errors"
	validatorx "github.com/muhammadheryan/gg-motors/utils/validator"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// UserEntity represents a document of the users collection
type UserEntity struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Name         string             `bson:"name" json:"name" validate:"required"`
	Email        string             `bson:"email" json:"email" validate:"required,email"`
	Phone        string             `bson:"phone,omitempty" json:"phone,omitempty"`
	PasswordHash string             `bson:"password" json:"-"`
	Role         string             `bson:"role" json:"role" validate:"required,oneof=user admin"`
	CreatedAt    time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// Validate checks the stored shape of a user.
func (u *UserEntity) Validate() []cerr.FieldError {
	return validatorx.Validate(u)
}

// UserFilter for querying users
type UserFilter struct {
	ID    primitive.ObjectID
	Email string
}

// UserSummary is the subset of a user joined into vehicles and transactions.
type UserSummary struct {
	ID    primitive.ObjectID `bson:"_id" json:"_id"`
	Name  string             `bson:"name" json:"name"`
	Email string             `bson:"email" json:"email"`
	Phone string             `bson:"phone,omitempty" json:"phone,omitempty"`
}

// Identity is the authenticated caller attached to a request.
type Identity struct {
	UserID primitive.ObjectID
	Role   string
}

// CanModify reports whether the caller may change a resource owned by ownerID.
func (i Identity) CanModify(ownerID primitive.ObjectID) bool {
	return i.Role == constant.RoleAdmin || (!i.UserID.IsZero() && i.UserID == ownerID)
}

// RegisterRequest for user registration
type RegisterRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Phone    string `json:"phone"`
	Password string `json:"password" validate:"required,min=6,max_bytes=72"`
}

// Normalize trims the request and lower-cases the email.
func (r *RegisterRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Email = NormalizeEmail(r.Email)
	r.Phone = strings.TrimSpace(r.Phone)
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// PublicUser is the profile handed to clients after login.
type PublicUser struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type LoginResponse struct {
	Token string     `json:"token"`
	User  PublicUser `json:"user"`
}

type RegisterResponse struct {
	Message string     `json:"message"`
	User    PublicUser `json:"user"`
}

type ProfileResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone,omitempty"`
	Role  string `json:"role"`
}

func NewPublicUser(u *UserEntity) PublicUser {
	return PublicUser{
		ID:    u.ID.Hex(),
		Name:  u.Name,
		Email: u.Email,
	}
}

func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
