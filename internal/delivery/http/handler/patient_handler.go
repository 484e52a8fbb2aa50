package handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"healthtrack-service/internal/delivery/dto"
	"healthtrack-service/internal/usecase"
	"healthtrack-service/pkg/response"
	"healthtrack-service/pkg/validator"

	"github.com/gorilla/mux"
)

// maxIntakeFormSize bounds the multipart intake submission, attachment
// included.
const maxIntakeFormSize = 10 << 20

type PatientHandler struct {
	patientUsecase usecase.PatientUsecase
	validator      *validator.CustomValidator
}

func NewPatientHandler(patientUsecase usecase.PatientUsecase, validator *validator.CustomValidator) *PatientHandler {
	return &PatientHandler{
		patientUsecase: patientUsecase,
		validator:      validator,
	}
}

// CreateIdentity registers (or resolves) the minimal patient identity that
// the intake and appointment flows reference.
func (h *PatientHandler) CreateIdentity(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateIdentityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	identity, err := h.patientUsecase.EnsureIdentity(r.Context(), &req)
	if err != nil {
		response.InternalServerError(w, "Failed to create patient identity")
		return
	}

	response.Success(w, http.StatusCreated, "Patient identity ready", identity)
}

func (h *PatientHandler) GetIdentity(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	identity, err := h.patientUsecase.GetIdentity(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrIdentityNotFound):
			response.NotFound(w, "Patient identity not found")
		default:
			response.InternalServerError(w, "Failed to get patient identity")
		}
		return
	}

	response.Success(w, http.StatusOK, "", identity)
}

// RegisterPatient accepts the multipart intake submission, including the
// optional identification document upload.
func (h *PatientHandler) RegisterPatient(w http.ResponseWriter, r *http.Request) {
	req, err := parseRegisterForm(r)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	profile, err := h.patientUsecase.RegisterPatient(r.Context(), req)
	if err != nil {
		var validationErr *usecase.ValidationError
		switch {
		case errors.As(err, &validationErr):
			response.ValidationError(w, validationErr.Fields)
		case errors.Is(err, usecase.ErrConsentRequired):
			response.Error(w, http.StatusBadRequest, "All consent acknowledgements are required", nil)
		default:
			response.InternalServerError(w, "Failed to register patient")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Patient registered successfully", profile)
}

func (h *PatientHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["userId"]

	profile, err := h.patientUsecase.GetProfile(r.Context(), userID)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrProfileNotFound):
			response.NotFound(w, "Patient profile not found")
		default:
			response.InternalServerError(w, "Failed to get patient profile")
		}
		return
	}

	response.Success(w, http.StatusOK, "", profile)
}

// parseRegisterForm maps the multipart intake form onto the request DTO.
func parseRegisterForm(r *http.Request) (*dto.RegisterPatientRequest, error) {
	if err := r.ParseMultipartForm(maxIntakeFormSize); err != nil {
		return nil, err
	}

	req := &dto.RegisterPatientRequest{
		Name:                   r.FormValue("name"),
		Email:                  r.FormValue("email"),
		Phone:                  r.FormValue("phone"),
		BirthDate:              r.FormValue("birth_date"),
		Gender:                 r.FormValue("gender"),
		Address:                r.FormValue("address"),
		Occupation:             r.FormValue("occupation"),
		EmergencyContactName:   r.FormValue("emergency_contact_name"),
		EmergencyContactNumber: r.FormValue("emergency_contact_number"),
		PrimaryPhysician:       r.FormValue("primary_physician"),
		InsuranceProvider:      r.FormValue("insurance_provider"),
		InsurancePolicyNumber:  r.FormValue("insurance_policy_number"),
		Allergies:              r.FormValue("allergies"),
		CurrentMedication:      r.FormValue("current_medication"),
		FamilyMedicalHistory:   r.FormValue("family_medical_history"),
		PastMedicalHistory:     r.FormValue("past_medical_history"),
		IdentificationType:     r.FormValue("identification_type"),
		IdentificationNumber:   r.FormValue("identification_number"),
		TreatmentConsent:       formBool(r.FormValue("treatment_consent")),
		DisclosureConsent:      formBool(r.FormValue("disclosure_consent")),
		PrivacyConsent:         formBool(r.FormValue("privacy_consent")),
	}

	if r.MultipartForm != nil {
		for _, fileHeader := range r.MultipartForm.File["identification_document"] {
			file, err := fileHeader.Open()
			if err != nil {
				return nil, err
			}
			data, err := io.ReadAll(file)
			file.Close()
			if err != nil {
				return nil, err
			}
			req.IdentificationDocuments = append(req.IdentificationDocuments, dto.UploadedFile{
				FileName: fileHeader.Filename,
				Data:     data,
			})
		}
	}

	return req, nil
}

func formBool(value string) bool {
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return false
	}
	return parsed
}
