package repository

import (
	"context"

	"healthtrack-service/internal/domain/entity"
)

// IdentityCreateOutcome is the typed result of an identity create attempt.
// Exactly one of Created or Conflict is set on success; a conflict means the
// directory already holds an identity with the same email.
type IdentityCreateOutcome struct {
	Created  *entity.PatientIdentity
	Conflict bool
}

type IdentityRepository interface {
	Create(ctx context.Context, identity *entity.PatientIdentity) (IdentityCreateOutcome, error)
	FindByID(ctx context.Context, id string) (*entity.PatientIdentity, error)
	// FindFirstByEmail returns the first identity matching email, or nil
	// when none exists.
	FindFirstByEmail(ctx context.Context, email string) (*entity.PatientIdentity, error)
}
