package queries

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"commerce/internal/core/domain/model/identity"
	"commerce/internal/pkg/errs"
	"commerce/internal/pkg/guard"
)

var ErrGetCurrentUserQueryIsNotConstructed = errors.New(
	"GetCurrentUserQuery must be created via NewGetCurrentUserQuery constructor",
)

// GetCurrentUserQuery retrieves the profile of the authenticated caller.
type GetCurrentUserQuery struct {
	actor identity.Actor

	guard guard.ConstructorGuard
}

// NewGetCurrentUserQuery creates a profile read query for the given caller.
func NewGetCurrentUserQuery(actor identity.Actor) (GetCurrentUserQuery, error) {
	if err := actor.Validate(); err != nil {
		return GetCurrentUserQuery{}, err
	}

	return GetCurrentUserQuery{
		actor: actor,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetCurrentUserQuery) Validate() error {
	return q.guard.Validate(ErrGetCurrentUserQueryIsNotConstructed)
}

// UserResponse is an account profile. The password hash never appears here.
type UserResponse struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Role       string    `json:"role"`
	IsVerified bool      `json:"isVerified"`
	CreatedAt  time.Time `json:"createdAt"`
}

type userReadModel struct {
	ID         string    `bson:"_id"`
	Name       string    `bson:"name"`
	Email      string    `bson:"email"`
	Role       string    `bson:"role"`
	IsVerified bool      `bson:"is_verified"`
	CreatedAt  time.Time `bson:"created_at"`
}

// GetCurrentUserQueryHandler reads the caller's profile from the document store.
type GetCurrentUserQueryHandler struct {
	db *mongo.Database
}

// NewGetCurrentUserQueryHandler creates a handler for profile reads.
func NewGetCurrentUserQueryHandler(db *mongo.Database) GetCurrentUserQueryHandler {
	return GetCurrentUserQueryHandler{db: db}
}

// Handle executes the profile read.
func (h GetCurrentUserQueryHandler) Handle(ctx context.Context, query GetCurrentUserQuery) (UserResponse, error) {
	if err := query.Validate(); err != nil {
		return UserResponse{}, err
	}

	id := query.actor.ID().String()

	var doc userReadModel
	err := h.db.Collection("users").FindOne(ctx, bson.M{"_id": id}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return UserResponse{}, errs.NewObjectNotFoundError("user", id)
		}
		return UserResponse{}, fmt.Errorf("failed to find user: %w", err)
	}

	return UserResponse{
		ID:         doc.ID,
		Name:       doc.Name,
		Email:      doc.Email,
		Role:       doc.Role,
		IsVerified: doc.IsVerified,
		CreatedAt:  doc.CreatedAt,
	}, nil
}
