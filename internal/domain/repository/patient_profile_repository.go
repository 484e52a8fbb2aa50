package repository

import (
	"context"

	"healthtrack-service/internal/domain/entity"
)

type PatientProfileRepository interface {
	Create(ctx context.Context, profile *entity.PatientProfile) error
	FindByUserID(ctx context.Context, userID string) (*entity.PatientProfile, error)
}
