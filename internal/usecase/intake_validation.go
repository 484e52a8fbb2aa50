package usecase

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"healthtrack-service/internal/delivery/dto"
	"healthtrack-service/internal/domain/entity"
	"healthtrack-service/pkg/datetime"
	"healthtrack-service/pkg/validator"
)

// ErrConsentRequired blocks a submission in which any of the three consent
// acknowledgements is missing. It is surfaced separately from field
// validation because no amount of field fixing makes the submission valid.
var ErrConsentRequired = errors.New("treatment, disclosure and privacy consent are all required")

// ValidationError enumerates every failing intake field, not just the
// first, so the UI can highlight all of them at once.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for field := range e.Fields {
		names = append(names, field)
	}
	sort.Strings(names)
	return fmt.Sprintf("validation failed for fields: %s", strings.Join(names, ", "))
}

// AttachmentPayload is the raw identification document extracted from the
// submission: one named file, never an array.
type AttachmentPayload struct {
	FileName string
	Data     []byte
}

// IntakeValidator validates and normalizes a raw patient-intake submission
// into a typed profile record.
type IntakeValidator struct {
	validator *validator.CustomValidator
}

func NewIntakeValidator(v *validator.CustomValidator) *IntakeValidator {
	return &IntakeValidator{validator: v}
}

// Validate checks the submission and produces the normalized profile (id
// and userId unset) plus the attachment payload, if any.
//
// Consent is checked first: a submission without all three consents fails
// with ErrConsentRequired before any field is inspected. Field violations
// are collected into a single ValidationError. Optional free-text fields
// normalize blank input to an explicit not-provided marker.
func (iv *IntakeValidator) Validate(req *dto.RegisterPatientRequest) (*entity.PatientProfile, *AttachmentPayload, error) {
	if !req.TreatmentConsent || !req.DisclosureConsent || !req.PrivacyConsent {
		return nil, nil, ErrConsentRequired
	}

	fields := make(map[string]string)
	if err := iv.validator.Validate(req); err != nil {
		fields = iv.validator.FormatValidationErrors(err)
	}

	var birthDate time.Time
	if req.BirthDate != "" {
		parsed, err := datetime.Parse(req.BirthDate)
		if err != nil {
			fields["BirthDate"] = "BirthDate must be a valid calendar date"
		} else if parsed.After(time.Now().UTC()) {
			fields["BirthDate"] = "BirthDate must be in the past"
		} else {
			birthDate = parsed.UTC()
		}
	}

	if req.PrimaryPhysician != "" && !entity.KnownPhysician(req.PrimaryPhysician) {
		fields["PrimaryPhysician"] = "PrimaryPhysician must be a known physician"
	}

	if strings.TrimSpace(req.IdentificationType) != "" && !entity.KnownIdentificationType(strings.TrimSpace(req.IdentificationType)) {
		fields["IdentificationType"] = "IdentificationType must be an accepted identification type"
	}

	attachment, attachmentErr := extractAttachment(req)
	if attachmentErr != "" {
		fields["IdentificationDocument"] = attachmentErr
	}

	if len(fields) > 0 {
		return nil, nil, &ValidationError{Fields: fields}
	}

	profile := &entity.PatientProfile{
		Name:                   strings.TrimSpace(req.Name),
		Email:                  strings.TrimSpace(req.Email),
		Phone:                  strings.TrimSpace(req.Phone),
		BirthDate:              birthDate,
		Gender:                 req.Gender,
		Address:                strings.TrimSpace(req.Address),
		Occupation:             strings.TrimSpace(req.Occupation),
		EmergencyContactName:   strings.TrimSpace(req.EmergencyContactName),
		EmergencyContactNumber: strings.TrimSpace(req.EmergencyContactNumber),
		PrimaryPhysician:       req.PrimaryPhysician,
		InsuranceProvider:      strings.TrimSpace(req.InsuranceProvider),
		InsurancePolicyNumber:  strings.TrimSpace(req.InsurancePolicyNumber),
		Allergies:              entity.TextOf(req.Allergies),
		CurrentMedication:      entity.TextOf(req.CurrentMedication),
		FamilyMedicalHistory:   entity.TextOf(req.FamilyMedicalHistory),
		PastMedicalHistory:     entity.TextOf(req.PastMedicalHistory),
		IdentificationType:     entity.TextOf(req.IdentificationType),
		IdentificationNumber:   entity.TextOf(req.IdentificationNumber),
		TreatmentConsent:       req.TreatmentConsent,
		DisclosureConsent:      req.DisclosureConsent,
		PrivacyConsent:         req.PrivacyConsent,
	}

	return profile, attachment, nil
}

// extractAttachment packages the optional identification document. The form
// field accepts multiple files; only the first is taken, matching the
// intake UI contract. A present attachment must carry both a payload and a
// file name.
func extractAttachment(req *dto.RegisterPatientRequest) (*AttachmentPayload, string) {
	if len(req.IdentificationDocuments) == 0 {
		return nil, ""
	}

	first := req.IdentificationDocuments[0]
	if len(first.Data) == 0 {
		return nil, "IdentificationDocument must not be empty"
	}
	if strings.TrimSpace(first.FileName) == "" {
		return nil, "IdentificationDocument must have a file name"
	}

	return &AttachmentPayload{FileName: first.FileName, Data: first.Data}, ""
}
