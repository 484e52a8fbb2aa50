package repository

import (
	"context"

	"healthtrack-service/internal/domain/entity"
)

type AppointmentRepository interface {
	Create(ctx context.Context, appointment *entity.Appointment) error
	FindByID(ctx context.Context, id string) (*entity.Appointment, error)
	FindByUserID(ctx context.Context, userID string) ([]entity.Appointment, error)
	// Update applies set to the document with the given id and reports
	// whether a document was matched. matched == false means the update did
	// not apply (the record vanished or never existed).
	Update(ctx context.Context, id string, set map[string]interface{}) (matched bool, err error)
}
