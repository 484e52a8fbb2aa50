package dto

import "time"

// Request DTOs

type CreateIdentityRequest struct {
	Name  string `json:"name" validate:"required,min=2,max=255"`
	Email string `json:"email" validate:"required,email"`
	Phone string `json:"phone" validate:"required,e164"`
}

// UploadedFile is one file taken from a multipart submission.
type UploadedFile struct {
	FileName string
	Data     []byte
}

// RegisterPatientRequest is the raw intake submission. Free-text medical
// and identification fields are optional; everything else is required.
type RegisterPatientRequest struct {
	Name                   string `json:"name" validate:"required,min=2,max=255"`
	Email                  string `json:"email" validate:"required,email"`
	Phone                  string `json:"phone" validate:"required,e164"`
	BirthDate              string `json:"birth_date" validate:"required"`
	Gender                 string `json:"gender" validate:"required,oneof=male female other"`
	Address                string `json:"address" validate:"required"`
	Occupation             string `json:"occupation" validate:"required"`
	EmergencyContactName   string `json:"emergency_contact_name" validate:"required"`
	EmergencyContactNumber string `json:"emergency_contact_number" validate:"required,e164"`
	PrimaryPhysician       string `json:"primary_physician" validate:"required"`
	InsuranceProvider      string `json:"insurance_provider" validate:"required"`
	InsurancePolicyNumber  string `json:"insurance_policy_number" validate:"required"`

	Allergies            string `json:"allergies"`
	CurrentMedication    string `json:"current_medication"`
	FamilyMedicalHistory string `json:"family_medical_history"`
	PastMedicalHistory   string `json:"past_medical_history"`
	IdentificationType   string `json:"identification_type"`
	IdentificationNumber string `json:"identification_number"`

	// The upload widget sends a multi-file field; only the first entry is
	// used.
	IdentificationDocuments []UploadedFile `json:"-"`

	TreatmentConsent  bool `json:"treatment_consent"`
	DisclosureConsent bool `json:"disclosure_consent"`
	PrivacyConsent    bool `json:"privacy_consent"`
}

// Response DTOs

type IdentityResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	CreatedAt time.Time `json:"created_at"`
}

type FileReferenceResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	URL  string `json:"url"`
}

type PatientProfileResponse struct {
	ID                     string                 `json:"id"`
	UserID                 string                 `json:"user_id"`
	Name                   string                 `json:"name"`
	Email                  string                 `json:"email"`
	Phone                  string                 `json:"phone"`
	BirthDate              string                 `json:"birth_date"`
	Gender                 string                 `json:"gender"`
	Address                string                 `json:"address"`
	Occupation             string                 `json:"occupation"`
	EmergencyContactName   string                 `json:"emergency_contact_name"`
	EmergencyContactNumber string                 `json:"emergency_contact_number"`
	PrimaryPhysician       string                 `json:"primary_physician"`
	InsuranceProvider      string                 `json:"insurance_provider"`
	InsurancePolicyNumber  string                 `json:"insurance_policy_number"`
	Allergies              string                 `json:"allergies"`
	CurrentMedication      string                 `json:"current_medication"`
	FamilyMedicalHistory   string                 `json:"family_medical_history"`
	PastMedicalHistory     string                 `json:"past_medical_history"`
	IdentificationType     string                 `json:"identification_type"`
	IdentificationNumber   string                 `json:"identification_number"`
	IdentificationDocument *FileReferenceResponse `json:"identification_document,omitempty"`
	CreatedAt              time.Time              `json:"created_at"`
}

type PhysicianResponse struct {
	Name      string `json:"name"`
	Specialty string `json:"specialty"`
}
