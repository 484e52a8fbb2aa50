package repository

import (
	"context"

	"healthtrack-service/internal/domain/entity"
	domainRepo "healthtrack-service/internal/domain/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type patientProfileRepository struct {
	collection *mongo.Collection
}

func NewPatientProfileRepository(collection *mongo.Collection) domainRepo.PatientProfileRepository {
	return &patientProfileRepository{collection: collection}
}

func (r *patientProfileRepository) Create(ctx context.Context, profile *entity.PatientProfile) error {
	_, err := r.collection.InsertOne(ctx, profile)
	return err
}

func (r *patientProfileRepository) FindByUserID(ctx context.Context, userID string) (*entity.PatientProfile, error) {
	var profile entity.PatientProfile
	err := r.collection.FindOne(ctx, bson.M{"userId": userID}).Decode(&profile)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return &profile, nil
}
