package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"healthtrack-service/internal/converter"
	"healthtrack-service/internal/delivery/dto"
	"healthtrack-service/internal/domain/entity"
	"healthtrack-service/internal/domain/repository"
	"healthtrack-service/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

var (
	ErrIdentityNotFound = errors.New("patient identity not found")
	ErrProfileNotFound  = errors.New("patient profile not found")
	ErrIdentityBackend  = errors.New("identity directory request failed")
	ErrStoreFailure     = errors.New("document store request failed")
)

type PatientUsecase interface {
	EnsureIdentity(ctx context.Context, req *dto.CreateIdentityRequest) (*dto.IdentityResponse, error)
	GetIdentity(ctx context.Context, id string) (*dto.IdentityResponse, error)
	RegisterPatient(ctx context.Context, req *dto.RegisterPatientRequest) (*dto.PatientProfileResponse, error)
	GetProfile(ctx context.Context, userID string) (*dto.PatientProfileResponse, error)
}

type patientUsecase struct {
	log             *logrus.Logger
	identityRepo    repository.IdentityRepository
	profileRepo     repository.PatientProfileRepository
	fileStorage     service.FileStorage
	auditService    service.AuditService
	intakeValidator *IntakeValidator
}

func NewPatientUsecase(
	log *logrus.Logger,
	identityRepo repository.IdentityRepository,
	profileRepo repository.PatientProfileRepository,
	fileStorage service.FileStorage,
	auditService service.AuditService,
	intakeValidator *IntakeValidator,
) PatientUsecase {
	return &patientUsecase{
		log:             log,
		identityRepo:    identityRepo,
		profileRepo:     profileRepo,
		fileStorage:     fileStorage,
		auditService:    auditService,
		intakeValidator: intakeValidator,
	}
}

// EnsureIdentity creates an identity for the email, or resolves the
// pre-existing one when the directory reports a conflict.
func (u *patientUsecase) EnsureIdentity(ctx context.Context, req *dto.CreateIdentityRequest) (*dto.IdentityResponse, error) {
	identity, err := u.ensureIdentity(ctx, req.Name, req.Email, req.Phone)
	if err != nil {
		return nil, err
	}
	return converter.IdentityToResponse(identity), nil
}

// ensureIdentity is the upsert-by-email primitive.
//
// Flow:
// 1. Attempt to create an identity under a fresh id
// 2. On a unique-email conflict, look the existing identity up by email
//    and return the first match
// 3. Any other directory failure aborts the pipeline
//
// Two racing callers for a brand-new email may both land on the
// conflict-then-lookup path; they can briefly disagree about who created
// the identity, but the unique index guarantees only one identity is ever
// persisted per email.
func (u *patientUsecase) ensureIdentity(ctx context.Context, name, email, phone string) (*entity.PatientIdentity, error) {
	candidate := &entity.PatientIdentity{
		ID:        uuid.NewString(),
		Name:      name,
		Email:     email,
		Phone:     phone,
		CreatedAt: time.Now().UTC(),
	}

	outcome, err := u.identityRepo.Create(ctx, candidate)
	if err != nil {
		u.log.Warnf("Failed to create identity for %s: %+v", email, err)
		return nil, fmt.Errorf("%w: create identity", ErrIdentityBackend)
	}

	if outcome.Conflict {
		existing, err := u.identityRepo.FindFirstByEmail(ctx, email)
		if err != nil {
			u.log.Warnf("Failed to resolve identity conflict for %s: %+v", email, err)
			return nil, fmt.Errorf("%w: resolve identity conflict", ErrIdentityBackend)
		}
		if existing == nil {
			// Conflict reported but the row is gone; a concurrent writer
			// vanished between insert and lookup.
			u.log.Warnf("Identity conflict for %s resolved to no match", email)
			return nil, fmt.Errorf("%w: resolve identity conflict", ErrIdentityBackend)
		}
		return existing, nil
	}

	if err := u.auditService.LogCreate(ctx, outcome.Created.ID, entity.AuditActionIdentityCreate, "patient_identity", outcome.Created.ID, outcome.Created); err != nil {
		u.log.Warnf("Failed to audit identity creation %s: %+v", outcome.Created.ID, err)
	}

	return outcome.Created, nil
}

func (u *patientUsecase) GetIdentity(ctx context.Context, id string) (*dto.IdentityResponse, error) {
	identity, err := u.identityRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find identity %s: %+v", id, err)
		return nil, fmt.Errorf("%w: get identity", ErrIdentityBackend)
	}
	if identity == nil {
		return nil, ErrIdentityNotFound
	}
	return converter.IdentityToResponse(identity), nil
}

// RegisterPatient runs the full intake pipeline.
//
// Flow:
// 1. Validate and normalize the submission (consent checked first)
// 2. Ensure exactly one identity exists for the submitted email
// 3. Upload the identification document, when present
// 4. Persist the profile keyed by a fresh document id
//
// The upload and the profile write are not transactional: if the write
// fails after a successful upload, the orphaned object is left behind and
// logged for operator cleanup.
func (u *patientUsecase) RegisterPatient(ctx context.Context, req *dto.RegisterPatientRequest) (*dto.PatientProfileResponse, error) {
	profile, attachment, err := u.intakeValidator.Validate(req)
	if err != nil {
		return nil, err
	}

	identity, err := u.ensureIdentity(ctx, profile.Name, profile.Email, profile.Phone)
	if err != nil {
		return nil, err
	}

	var fileRef *entity.FileReference
	if attachment != nil {
		fileRef, err = u.fileStorage.Upload(ctx, attachment.Data, attachment.FileName)
		if err != nil {
			u.log.Warnf("Failed to upload identification document for %s: %+v", identity.ID, err)
			return nil, fmt.Errorf("%w: upload identification document", ErrStoreFailure)
		}
	}

	profile.ID = uuid.NewString()
	profile.UserID = identity.ID
	profile.IdentificationDocument = fileRef
	profile.CreatedAt = time.Now().UTC()

	if err := u.profileRepo.Create(ctx, profile); err != nil {
		if fileRef != nil {
			u.log.Errorf("Failed to save profile for %s, attachment %s is orphaned: %+v", identity.ID, fileRef.Name, err)
		} else {
			u.log.Warnf("Failed to save profile for %s: %+v", identity.ID, err)
		}
		return nil, fmt.Errorf("%w: save profile", ErrStoreFailure)
	}

	if err := u.auditService.LogCreate(ctx, identity.ID, entity.AuditActionPatientRegister, "patient_profile", profile.ID, profile); err != nil {
		u.log.Warnf("Failed to audit registration for %s: %+v", identity.ID, err)
	}

	u.log.Infof("Patient registered: user=%s, profile=%s", identity.ID, profile.ID)
	return converter.ProfileToResponse(profile), nil
}

func (u *patientUsecase) GetProfile(ctx context.Context, userID string) (*dto.PatientProfileResponse, error) {
	profile, err := u.profileRepo.FindByUserID(ctx, userID)
	if err != nil {
		u.log.Warnf("Failed to find profile for %s: %+v", userID, err)
		return nil, fmt.Errorf("%w: get profile", ErrStoreFailure)
	}
	if profile == nil {
		return nil, ErrProfileNotFound
	}
	return converter.ProfileToResponse(profile), nil
}
