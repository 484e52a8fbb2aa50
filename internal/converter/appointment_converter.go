package converter

import (
	"healthtrack-service/internal/delivery/dto"
	"healthtrack-service/internal/domain/entity"
	"healthtrack-service/pkg/datetime"
)

// AppointmentToResponse converts an Appointment entity to its response DTO.
// timeZone selects the zone for the human-readable schedule projections;
// an unusable zone drops the display block rather than failing the request.
func AppointmentToResponse(appointment *entity.Appointment, timeZone string) *dto.AppointmentResponse {
	if appointment == nil {
		return nil
	}

	response := &dto.AppointmentResponse{
		ID:                    appointment.ID,
		UserID:                appointment.UserID,
		PrimaryPhysician:      appointment.PrimaryPhysician,
		Schedule:              appointment.Schedule,
		Status:                string(appointment.Status),
		Reason:                appointment.Reason,
		Note:                  appointment.Note,
		CancellationReason:    appointment.CancellationReason,
		PreviousAppointmentID: appointment.PreviousAppointmentID,
		CreatedAt:             appointment.CreatedAt,
		UpdatedAt:             appointment.UpdatedAt,
	}

	if formats, err := datetime.Format(appointment.Schedule, timeZone); err == nil {
		response.ScheduleDisplay = &dto.ScheduleDisplay{
			DateTime: formats.DateTime,
			DateDay:  formats.DateDay,
			DateOnly: formats.DateOnly,
			TimeOnly: formats.TimeOnly,
		}
	}

	return response
}

// AppointmentsToResponses converts a slice of Appointment entities to response DTOs
func AppointmentsToResponses(appointments []entity.Appointment, timeZone string) []dto.AppointmentResponse {
	responses := make([]dto.AppointmentResponse, len(appointments))
	for i, appointment := range appointments {
		resp := AppointmentToResponse(&appointment, timeZone)
		if resp != nil {
			responses[i] = *resp
		}
	}
	return responses
}
