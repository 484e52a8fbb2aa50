package repository

import (
	"context"

	"healthtrack-service/internal/domain/entity"
	domainRepo "healthtrack-service/internal/domain/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type identityRepository struct {
	collection *mongo.Collection
}

func NewIdentityRepository(collection *mongo.Collection) domainRepo.IdentityRepository {
	return &identityRepository{collection: collection}
}

// Create inserts a new identity. A duplicate-key rejection from the unique
// email index is reported as a Conflict outcome rather than an error, so
// callers dispatch on the result instead of inspecting backend error codes.
func (r *identityRepository) Create(ctx context.Context, identity *entity.PatientIdentity) (domainRepo.IdentityCreateOutcome, error) {
	_, err := r.collection.InsertOne(ctx, identity)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domainRepo.IdentityCreateOutcome{Conflict: true}, nil
		}
		return domainRepo.IdentityCreateOutcome{}, err
	}
	return domainRepo.IdentityCreateOutcome{Created: identity}, nil
}

func (r *identityRepository) FindByID(ctx context.Context, id string) (*entity.PatientIdentity, error) {
	var identity entity.PatientIdentity
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&identity)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return &identity, nil
}

func (r *identityRepository) FindFirstByEmail(ctx context.Context, email string) (*entity.PatientIdentity, error) {
	var identity entity.PatientIdentity
	err := r.collection.FindOne(ctx, bson.M{"email": email}).Decode(&identity)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return &identity, nil
}
