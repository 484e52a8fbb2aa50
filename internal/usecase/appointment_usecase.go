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
	"healthtrack-service/pkg/datetime"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

var (
	ErrAppointmentNotFound = errors.New("appointment not found")
	ErrUpdateRejected      = errors.New("appointment update did not apply")
)

// Update type discriminators. They select the recorded audit action and are
// echoed to the notification layer; neither alters the stored patch.
const (
	UpdateTypeSchedule = "schedule"
	UpdateTypeCancel   = "cancel"
)

type AppointmentUsecase interface {
	Create(ctx context.Context, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error)
	Fetch(ctx context.Context, id string) (*dto.AppointmentResponse, error)
	Update(ctx context.Context, id string, req *dto.UpdateAppointmentRequest) (*dto.AppointmentResponse, error)
	ListByUser(ctx context.Context, userID string) (*dto.AppointmentListResponse, error)
}

type appointmentUsecase struct {
	log             *logrus.Logger
	appointmentRepo repository.AppointmentRepository
	identityRepo    repository.IdentityRepository
	cache           service.AppointmentCache
	auditService    service.AuditService
}

func NewAppointmentUsecase(
	log *logrus.Logger,
	appointmentRepo repository.AppointmentRepository,
	identityRepo repository.IdentityRepository,
	cache service.AppointmentCache,
	auditService service.AuditService,
) AppointmentUsecase {
	return &appointmentUsecase{
		log:             log,
		appointmentRepo: appointmentRepo,
		identityRepo:    identityRepo,
		cache:           cache,
		auditService:    auditService,
	}
}

// Create produces a fresh appointment document. Status defaults to pending.
// Overlapping schedules are not rejected here; double-booking prevention is
// caller policy.
func (u *appointmentUsecase) Create(ctx context.Context, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error) {
	schedule, err := datetime.Parse(req.Schedule)
	if err != nil {
		return nil, &ValidationError{Fields: map[string]string{"Schedule": "Schedule must be a valid date"}}
	}

	identity, err := u.identityRepo.FindByID(ctx, req.UserID)
	if err != nil {
		u.log.Warnf("Failed to find identity %s for appointment create: %+v", req.UserID, err)
		return nil, fmt.Errorf("%w: resolve patient identity", ErrIdentityBackend)
	}
	if identity == nil {
		return nil, ErrIdentityNotFound
	}

	status := entity.AppointmentStatus(req.Status)
	if req.Status == "" {
		status = entity.AppointmentStatusPending
	}

	now := time.Now().UTC()
	appointment := &entity.Appointment{
		ID:                    uuid.NewString(),
		UserID:                req.UserID,
		PrimaryPhysician:      req.PrimaryPhysician,
		Schedule:              schedule.UTC(),
		Status:                status,
		Reason:                req.Reason,
		Note:                  req.Note,
		PreviousAppointmentID: req.PreviousAppointmentID,
		CreatedAt:             now,
		UpdatedAt:             now,
	}

	if err := u.appointmentRepo.Create(ctx, appointment); err != nil {
		u.log.Warnf("Failed to create appointment for %s: %+v", req.UserID, err)
		return nil, fmt.Errorf("%w: create appointment", ErrStoreFailure)
	}

	u.cache.Set(ctx, appointment)

	if err := u.auditService.LogCreate(ctx, req.UserID, entity.AuditActionAppointmentCreate, "appointment", appointment.ID, appointment); err != nil {
		u.log.Warnf("Failed to audit appointment creation %s: %+v", appointment.ID, err)
	}

	u.log.Infof("Appointment created: id=%s, user=%s, physician=%s", appointment.ID, req.UserID, req.PrimaryPhysician)
	return converter.AppointmentToResponse(appointment, ""), nil
}

// Fetch returns the current appointment record, serving from the cache when
// it holds a fresh copy.
func (u *appointmentUsecase) Fetch(ctx context.Context, id string) (*dto.AppointmentResponse, error) {
	if cached := u.cache.Get(ctx, id); cached != nil {
		return converter.AppointmentToResponse(cached, ""), nil
	}

	appointment, err := u.appointmentRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to fetch appointment %s: %+v", id, err)
		return nil, fmt.Errorf("%w: fetch appointment", ErrStoreFailure)
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}

	u.cache.Set(ctx, appointment)
	return converter.AppointmentToResponse(appointment, ""), nil
}

// Update applies a partial update to an existing appointment.
//
// Flow:
// 1. Build the patch from the provided fields only
// 2. Apply it; a patch the backend did not match is rejected loudly
// 3. Invalidate the cached copy and re-read the document
//
// There is no optimistic-lock token, so a concurrent writer can still win
// the race between read and write; what never happens is a false success.
func (u *appointmentUsecase) Update(ctx context.Context, id string, req *dto.UpdateAppointmentRequest) (*dto.AppointmentResponse, error) {
	set, err := buildAppointmentPatch(req)
	if err != nil {
		return nil, err
	}

	existing, err := u.appointmentRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to read appointment %s before update: %+v", id, err)
		return nil, fmt.Errorf("%w: update appointment", ErrStoreFailure)
	}
	if existing == nil {
		return nil, ErrUpdateRejected
	}

	matched, err := u.appointmentRepo.Update(ctx, id, set)
	if err != nil {
		u.log.Warnf("Failed to update appointment %s: %+v", id, err)
		return nil, fmt.Errorf("%w: update appointment", ErrStoreFailure)
	}
	if !matched {
		u.log.Warnf("Update for appointment %s matched no document", id)
		return nil, ErrUpdateRejected
	}

	u.cache.Invalidate(ctx, id)

	updated, err := u.appointmentRepo.FindByID(ctx, id)
	if err != nil || updated == nil {
		u.log.Warnf("Failed to reload appointment %s after update: %+v", id, err)
		return nil, fmt.Errorf("%w: reload appointment", ErrStoreFailure)
	}

	action := auditActionForUpdateType(req.Type)
	if err := u.auditService.LogUpdate(ctx, req.UserID, action, "appointment", id, existing, updated); err != nil {
		u.log.Warnf("Failed to audit appointment update %s: %+v", id, err)
	}

	u.log.Infof("Appointment updated: id=%s, type=%s, status=%s", id, req.Type, updated.Status)
	return converter.AppointmentToResponse(updated, req.TimeZone), nil
}

func (u *appointmentUsecase) ListByUser(ctx context.Context, userID string) (*dto.AppointmentListResponse, error) {
	appointments, err := u.appointmentRepo.FindByUserID(ctx, userID)
	if err != nil {
		u.log.Warnf("Failed to list appointments for %s: %+v", userID, err)
		return nil, fmt.Errorf("%w: list appointments", ErrStoreFailure)
	}

	return &dto.AppointmentListResponse{
		Appointments: converter.AppointmentsToResponses(appointments, ""),
		Total:        len(appointments),
	}, nil
}

// buildAppointmentPatch maps the provided request fields onto document
// updates. A cancel must carry its reason.
func buildAppointmentPatch(req *dto.UpdateAppointmentRequest) (map[string]interface{}, error) {
	fields := make(map[string]string)
	set := map[string]interface{}{
		"updatedAt": time.Now().UTC(),
	}

	if req.PrimaryPhysician != "" {
		set["primaryPhysician"] = req.PrimaryPhysician
	}
	if req.Schedule != "" {
		schedule, err := datetime.Parse(req.Schedule)
		if err != nil {
			fields["Schedule"] = "Schedule must be a valid date"
		} else {
			set["schedule"] = schedule.UTC()
		}
	}
	if req.Status != "" {
		status := entity.AppointmentStatus(req.Status)
		if !status.Valid() {
			fields["Status"] = "Status must be one of: pending, scheduled, cancelled"
		} else {
			set["status"] = status
		}
	}
	if req.Reason != "" {
		set["reason"] = req.Reason
	}
	if req.Note != "" {
		set["note"] = req.Note
	}
	if req.CancellationReason != "" {
		set["cancellationReason"] = req.CancellationReason
	}

	if req.Type == UpdateTypeCancel && req.CancellationReason == "" {
		fields["CancellationReason"] = "CancellationReason is required when cancelling"
	}

	if len(fields) > 0 {
		return nil, &ValidationError{Fields: fields}
	}
	return set, nil
}

func auditActionForUpdateType(updateType string) string {
	switch updateType {
	case UpdateTypeSchedule:
		return entity.AuditActionAppointmentSchedule
	case UpdateTypeCancel:
		return entity.AuditActionAppointmentCancel
	default:
		return entity.AuditActionAppointmentUpdate
	}
}
