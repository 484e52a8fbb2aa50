package entity

import "time"

// AppointmentStatus represents the status of an appointment
type AppointmentStatus string

const (
	AppointmentStatusPending   AppointmentStatus = "pending"
	AppointmentStatusScheduled AppointmentStatus = "scheduled"
	AppointmentStatusCancelled AppointmentStatus = "cancelled"
)

// Valid reports whether s is one of the known lifecycle states.
func (s AppointmentStatus) Valid() bool {
	switch s {
	case AppointmentStatusPending, AppointmentStatusScheduled, AppointmentStatusCancelled:
		return true
	}
	return false
}

// Appointment represents a scheduled interaction between a patient and a
// physician. Status transitions are driven by callers; cancellation is a
// status value, never a deletion.
type Appointment struct {
	ID                    string            `bson:"_id" json:"id"`
	UserID                string            `bson:"userId" json:"user_id"`
	PrimaryPhysician      string            `bson:"primaryPhysician" json:"primary_physician"`
	Schedule              time.Time         `bson:"schedule" json:"schedule"`
	Status                AppointmentStatus `bson:"status" json:"status"`
	Reason                string            `bson:"reason" json:"reason"`
	Note                  string            `bson:"note" json:"note"`
	CancellationReason    string            `bson:"cancellationReason" json:"cancellation_reason"`
	PreviousAppointmentID string            `bson:"previousAppointmentId,omitempty" json:"previous_appointment_id,omitempty"`
	CreatedAt             time.Time         `bson:"createdAt" json:"created_at"`
	UpdatedAt             time.Time         `bson:"updatedAt" json:"updated_at"`
}

// IsPending checks if the appointment is awaiting confirmation
func (a *Appointment) IsPending() bool {
	return a.Status == AppointmentStatusPending
}

// IsScheduled checks if the appointment has been confirmed
func (a *Appointment) IsScheduled() bool {
	return a.Status == AppointmentStatusScheduled
}

// IsCancelled checks if the appointment is cancelled
func (a *Appointment) IsCancelled() bool {
	return a.Status == AppointmentStatusCancelled
}
