// Package userrepo persists user aggregates as MongoDB documents. Email
// uniqueness lives in a unique index so concurrent signups cannot race past
// an application-level check.
package userrepo

import (
	"time"

	"commerce/internal/core/domain/model/identity"
	"commerce/internal/core/domain/model/kernel"
	"commerce/internal/core/domain/model/user"
)

type userDocument struct {
	ID                  string     `bson:"_id"`
	Name                string     `bson:"name"`
	Email               string     `bson:"email"`
	PasswordHash        string     `bson:"password_hash"`
	Role                string     `bson:"role"`
	IsVerified          bool       `bson:"is_verified"`
	ResetToken          string     `bson:"reset_token,omitempty"`
	ResetTokenExpiresAt *time.Time `bson:"reset_token_expires_at,omitempty"`
	CreatedAt           time.Time  `bson:"created_at"`
	UpdatedAt           time.Time  `bson:"updated_at"`
}

func fromDomain(aggregate *user.User) userDocument {
	return userDocument{
		ID:                  aggregate.ID().String(),
		Name:                aggregate.Name(),
		Email:               aggregate.Email(),
		PasswordHash:        aggregate.PasswordHash(),
		Role:                aggregate.Role().String(),
		IsVerified:          aggregate.IsVerified(),
		ResetToken:          aggregate.ResetToken(),
		ResetTokenExpiresAt: aggregate.ResetTokenExpiresAt(),
		CreatedAt:           aggregate.CreatedAt(),
		UpdatedAt:           aggregate.UpdatedAt(),
	}
}

func toDomain(doc userDocument) (*user.User, error) {
	id, err := kernel.UUIDFromString(doc.ID)
	if err != nil {
		return nil, err
	}

	role, err := identity.RoleFromString(doc.Role)
	if err != nil {
		return nil, err
	}

	restored, err := user.RestoreUser(
		id, doc.Name, doc.Email, doc.PasswordHash, role,
		doc.IsVerified,
		doc.ResetToken, doc.ResetTokenExpiresAt,
		doc.CreatedAt, doc.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return restored, nil
}
