package repository

import (
	"context"

	"healthtrack-service/internal/domain/entity"
	domainRepo "healthtrack-service/internal/domain/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type appointmentRepository struct {
	collection *mongo.Collection
}

func NewAppointmentRepository(collection *mongo.Collection) domainRepo.AppointmentRepository {
	return &appointmentRepository{collection: collection}
}

func (r *appointmentRepository) Create(ctx context.Context, appointment *entity.Appointment) error {
	_, err := r.collection.InsertOne(ctx, appointment)
	return err
}

func (r *appointmentRepository) FindByID(ctx context.Context, id string) (*entity.Appointment, error) {
	var appointment entity.Appointment
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&appointment)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return &appointment, nil
}

func (r *appointmentRepository) FindByUserID(ctx context.Context, userID string) ([]entity.Appointment, error) {
	opts := options.Find().SetSort(bson.D{{Key: "schedule", Value: -1}})
	cursor, err := r.collection.Find(ctx, bson.M{"userId": userID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var appointments []entity.Appointment
	if err := cursor.All(ctx, &appointments); err != nil {
		return nil, err
	}
	return appointments, nil
}

func (r *appointmentRepository) Update(ctx context.Context, id string, set map[string]interface{}) (bool, error) {
	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": set})
	if err != nil {
		return false, err
	}
	return result.MatchedCount > 0, nil
}
