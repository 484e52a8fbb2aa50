package converter

import (
	"healthtrack-service/internal/delivery/dto"
	"healthtrack-service/internal/domain/entity"
)

// IdentityToResponse converts a PatientIdentity entity to IdentityResponse DTO
func IdentityToResponse(identity *entity.PatientIdentity) *dto.IdentityResponse {
	if identity == nil {
		return nil
	}

	return &dto.IdentityResponse{
		ID:        identity.ID,
		Name:      identity.Name,
		Email:     identity.Email,
		Phone:     identity.Phone,
		CreatedAt: identity.CreatedAt,
	}
}

// ProfileToResponse converts a PatientProfile entity to its response DTO.
// Optional fields the patient left blank render as the not-provided marker.
func ProfileToResponse(profile *entity.PatientProfile) *dto.PatientProfileResponse {
	if profile == nil {
		return nil
	}

	response := &dto.PatientProfileResponse{
		ID:                     profile.ID,
		UserID:                 profile.UserID,
		Name:                   profile.Name,
		Email:                  profile.Email,
		Phone:                  profile.Phone,
		BirthDate:              profile.BirthDate.Format("2006-01-02"),
		Gender:                 profile.Gender,
		Address:                profile.Address,
		Occupation:             profile.Occupation,
		EmergencyContactName:   profile.EmergencyContactName,
		EmergencyContactNumber: profile.EmergencyContactNumber,
		PrimaryPhysician:       profile.PrimaryPhysician,
		InsuranceProvider:      profile.InsuranceProvider,
		InsurancePolicyNumber:  profile.InsurancePolicyNumber,
		Allergies:              profile.Allergies.Display(),
		CurrentMedication:      profile.CurrentMedication.Display(),
		FamilyMedicalHistory:   profile.FamilyMedicalHistory.Display(),
		PastMedicalHistory:     profile.PastMedicalHistory.Display(),
		IdentificationType:     profile.IdentificationType.Display(),
		IdentificationNumber:   profile.IdentificationNumber.Display(),
		CreatedAt:              profile.CreatedAt,
	}

	if profile.IdentificationDocument != nil {
		response.IdentificationDocument = &dto.FileReferenceResponse{
			ID:   profile.IdentificationDocument.ID,
			Name: profile.IdentificationDocument.Name,
			URL:  profile.IdentificationDocument.URL,
		}
	}

	return response
}

// PhysiciansToResponses converts the roster to response DTOs
func PhysiciansToResponses(physicians []entity.Physician) []dto.PhysicianResponse {
	responses := make([]dto.PhysicianResponse, len(physicians))
	for i, p := range physicians {
		responses[i] = dto.PhysicianResponse{
			Name:      p.Name,
			Specialty: p.Specialty,
		}
	}
	return responses
}
