package dto

import "time"

// Request DTOs

type CreateAppointmentRequest struct {
	UserID                string `json:"user_id" validate:"required"`
	PrimaryPhysician      string `json:"primary_physician" validate:"required"`
	Schedule              string `json:"schedule" validate:"required"`
	Status                string `json:"status" validate:"omitempty,oneof=pending scheduled cancelled"`
	Reason                string `json:"reason" validate:"required"`
	Note                  string `json:"note"`
	PreviousAppointmentID string `json:"previous_appointment_id"`
}

// UpdateAppointmentRequest applies a partial update to an existing
// appointment. TimeZone and Type only steer display formatting and the
// recorded audit action; neither alters stored state beyond the patch.
type UpdateAppointmentRequest struct {
	UserID             string `json:"user_id" validate:"required"`
	TimeZone           string `json:"time_zone"`
	Type               string `json:"type" validate:"omitempty,oneof=schedule cancel"`
	PrimaryPhysician   string `json:"primary_physician"`
	Schedule           string `json:"schedule"`
	Status             string `json:"status" validate:"omitempty,oneof=pending scheduled cancelled"`
	Reason             string `json:"reason"`
	Note               string `json:"note"`
	CancellationReason string `json:"cancellation_reason"`
}

// Response DTOs

// ScheduleDisplay carries the four formatted projections of the schedule
// instant, all derived from one instant and timezone.
type ScheduleDisplay struct {
	DateTime string `json:"date_time"`
	DateDay  string `json:"date_day"`
	DateOnly string `json:"date_only"`
	TimeOnly string `json:"time_only"`
}

type AppointmentResponse struct {
	ID                    string           `json:"id"`
	UserID                string           `json:"user_id"`
	PrimaryPhysician      string           `json:"primary_physician"`
	Schedule              time.Time        `json:"schedule"`
	ScheduleDisplay       *ScheduleDisplay `json:"schedule_display,omitempty"`
	Status                string           `json:"status"`
	Reason                string           `json:"reason"`
	Note                  string           `json:"note"`
	CancellationReason    string           `json:"cancellation_reason"`
	PreviousAppointmentID string           `json:"previous_appointment_id,omitempty"`
	CreatedAt             time.Time        `json:"created_at"`
	UpdatedAt             time.Time        `json:"updated_at"`
}

type AppointmentListResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
	Total        int                   `json:"total"`
}
