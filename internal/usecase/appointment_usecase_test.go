package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"healthtrack-service/internal/delivery/dto"
	"healthtrack-service/internal/domain/entity"

	"github.com/stretchr/testify/assert"
)

func knownIdentityRepo() *MockIdentityRepository {
	return &MockIdentityRepository{
		FindByIDFunc: func(ctx context.Context, id string) (*entity.PatientIdentity, error) {
			return &entity.PatientIdentity{ID: id, Name: "Maria Santos", Email: "maria.santos@example.com"}, nil
		},
	}
}

// inMemoryAppointmentRepo wires the mock funcs to a map, covering the
// create, read and patch paths together.
func inMemoryAppointmentRepo() (*MockAppointmentRepository, map[string]*entity.Appointment) {
	store := make(map[string]*entity.Appointment)
	repo := &MockAppointmentRepository{
		CreateFunc: func(ctx context.Context, appointment *entity.Appointment) error {
			copied := *appointment
			store[appointment.ID] = &copied
			return nil
		},
		FindByIDFunc: func(ctx context.Context, id string) (*entity.Appointment, error) {
			appointment, ok := store[id]
			if !ok {
				return nil, nil
			}
			copied := *appointment
			return &copied, nil
		},
		UpdateFunc: func(ctx context.Context, id string, set map[string]interface{}) (bool, error) {
			appointment, ok := store[id]
			if !ok {
				return false, nil
			}
			if schedule, ok := set["schedule"].(time.Time); ok {
				appointment.Schedule = schedule
			}
			if status, ok := set["status"].(entity.AppointmentStatus); ok {
				appointment.Status = status
			}
			if physician, ok := set["primaryPhysician"].(string); ok {
				appointment.PrimaryPhysician = physician
			}
			if reason, ok := set["cancellationReason"].(string); ok {
				appointment.CancellationReason = reason
			}
			if updatedAt, ok := set["updatedAt"].(time.Time); ok {
				appointment.UpdatedAt = updatedAt
			}
			return true, nil
		},
	}
	return repo, store
}

func newAppointmentUsecase(repo *MockAppointmentRepository, identityRepo *MockIdentityRepository, cache *MockAppointmentCache, audit *MockAuditService) AppointmentUsecase {
	return NewAppointmentUsecase(newTestLogger(), repo, identityRepo, cache, audit)
}

func TestAppointmentCreate_DefaultsToPending(t *testing.T) {
	repo, store := inMemoryAppointmentRepo()
	cache := &MockAppointmentCache{}
	audit := &MockAuditService{}
	uc := newAppointmentUsecase(repo, knownIdentityRepo(), cache, audit)

	resp, err := uc.Create(context.Background(), &dto.CreateAppointmentRequest{
		UserID:           "user-1",
		PrimaryPhysician: "Leila Cameron",
		Schedule:         "2026-09-14T10:30:00Z",
		Reason:           "Annual check-up",
	})

	assert.NoError(t, err)
	assert.Equal(t, string(entity.AppointmentStatusPending), resp.Status)
	assert.Equal(t, time.Date(2026, 9, 14, 10, 30, 0, 0, time.UTC), resp.Schedule)

	assert.Len(t, store, 1)
	assert.Equal(t, entity.AppointmentStatusPending, store[resp.ID].Status)
	assert.Equal(t, int32(1), cache.SetFuncCallCount)
	assert.Equal(t, entity.AuditActionAppointmentCreate, audit.LastAction)
}

func TestAppointmentCreate_HonorsExplicitStatus(t *testing.T) {
	repo, _ := inMemoryAppointmentRepo()
	uc := newAppointmentUsecase(repo, knownIdentityRepo(), &MockAppointmentCache{}, &MockAuditService{})

	resp, err := uc.Create(context.Background(), &dto.CreateAppointmentRequest{
		UserID:           "user-1",
		PrimaryPhysician: "Leila Cameron",
		Schedule:         "2026-09-14T10:30:00Z",
		Status:           string(entity.AppointmentStatusScheduled),
		Reason:           "Follow-up",
	})

	assert.NoError(t, err)
	assert.Equal(t, string(entity.AppointmentStatusScheduled), resp.Status)
}

func TestAppointmentCreate_RejectsBadSchedule(t *testing.T) {
	repo := &MockAppointmentRepository{}
	uc := newAppointmentUsecase(repo, knownIdentityRepo(), &MockAppointmentCache{}, &MockAuditService{})

	resp, err := uc.Create(context.Background(), &dto.CreateAppointmentRequest{
		UserID:           "user-1",
		PrimaryPhysician: "Leila Cameron",
		Schedule:         "next tuesday",
		Reason:           "Annual check-up",
	})

	assert.Nil(t, resp)
	var vErr *ValidationError
	assert.True(t, errors.As(err, &vErr))
	assert.Contains(t, vErr.Fields, "Schedule")
	assert.Equal(t, int32(0), repo.CreateFuncCallCount)
}

func TestAppointmentCreate_UnknownPatient(t *testing.T) {
	identityRepo := &MockIdentityRepository{
		FindByIDFunc: func(ctx context.Context, id string) (*entity.PatientIdentity, error) {
			return nil, nil
		},
	}
	repo := &MockAppointmentRepository{}
	uc := newAppointmentUsecase(repo, identityRepo, &MockAppointmentCache{}, &MockAuditService{})

	resp, err := uc.Create(context.Background(), &dto.CreateAppointmentRequest{
		UserID:           "ghost",
		PrimaryPhysician: "Leila Cameron",
		Schedule:         "2026-09-14T10:30:00Z",
		Reason:           "Annual check-up",
	})

	assert.Nil(t, resp)
	assert.ErrorIs(t, err, ErrIdentityNotFound)
	assert.Equal(t, int32(0), repo.CreateFuncCallCount)
}

func TestAppointmentFetch_NotFound(t *testing.T) {
	repo, _ := inMemoryAppointmentRepo()
	uc := newAppointmentUsecase(repo, knownIdentityRepo(), &MockAppointmentCache{}, &MockAuditService{})

	resp, err := uc.Fetch(context.Background(), "missing-id")
	assert.Nil(t, resp)
	assert.ErrorIs(t, err, ErrAppointmentNotFound)
}

func TestAppointmentFetch_ServedFromCache(t *testing.T) {
	// The repo would error on any read; a cache hit must never reach it.
	repo := &MockAppointmentRepository{
		FindByIDFunc: func(ctx context.Context, id string) (*entity.Appointment, error) {
			return nil, errors.New("store must not be hit")
		},
	}
	cache := &MockAppointmentCache{}
	cached := &entity.Appointment{
		ID:     "appt-1",
		UserID: "user-1",
		Status: entity.AppointmentStatusScheduled,
	}
	cache.Set(context.Background(), cached)
	uc := newAppointmentUsecase(repo, knownIdentityRepo(), cache, &MockAuditService{})

	resp, err := uc.Fetch(context.Background(), "appt-1")
	assert.NoError(t, err)
	assert.Equal(t, "appt-1", resp.ID)
	assert.Equal(t, string(entity.AppointmentStatusScheduled), resp.Status)
}

func TestAppointmentUpdate_RejectsMissingAppointment(t *testing.T) {
	repo, store := inMemoryAppointmentRepo()
	uc := newAppointmentUsecase(repo, knownIdentityRepo(), &MockAppointmentCache{}, &MockAuditService{})

	resp, err := uc.Update(context.Background(), "missing-id", &dto.UpdateAppointmentRequest{
		UserID: "user-1",
		Type:   UpdateTypeSchedule,
		Status: string(entity.AppointmentStatusScheduled),
	})

	assert.Nil(t, resp)
	assert.ErrorIs(t, err, ErrUpdateRejected)
	// The prefetch already misses, so no patch reaches the store.
	assert.Equal(t, int32(0), repo.UpdateFuncCallCount)
	assert.Empty(t, store)
}

func TestAppointmentUpdate_RejectsWhenPatchMatchesNothing(t *testing.T) {
	// The document exists at prefetch time but vanishes before the patch.
	existing := &entity.Appointment{ID: "appt-1", UserID: "user-1", Status: entity.AppointmentStatusPending}
	repo := &MockAppointmentRepository{
		FindByIDFunc: func(ctx context.Context, id string) (*entity.Appointment, error) {
			return existing, nil
		},
		UpdateFunc: func(ctx context.Context, id string, set map[string]interface{}) (bool, error) {
			return false, nil
		},
	}
	uc := newAppointmentUsecase(repo, knownIdentityRepo(), &MockAppointmentCache{}, &MockAuditService{})

	resp, err := uc.Update(context.Background(), "appt-1", &dto.UpdateAppointmentRequest{
		UserID: "user-1",
		Type:   UpdateTypeSchedule,
		Status: string(entity.AppointmentStatusScheduled),
	})

	assert.Nil(t, resp)
	assert.ErrorIs(t, err, ErrUpdateRejected)
	assert.Equal(t, int32(1), repo.UpdateFuncCallCount)
}

func TestAppointmentUpdate_CancelRequiresReason(t *testing.T) {
	repo, _ := inMemoryAppointmentRepo()
	uc := newAppointmentUsecase(repo, knownIdentityRepo(), &MockAppointmentCache{}, &MockAuditService{})

	resp, err := uc.Update(context.Background(), "appt-1", &dto.UpdateAppointmentRequest{
		UserID: "user-1",
		Type:   UpdateTypeCancel,
		Status: string(entity.AppointmentStatusCancelled),
	})

	assert.Nil(t, resp)
	var vErr *ValidationError
	assert.True(t, errors.As(err, &vErr))
	assert.Contains(t, vErr.Fields, "CancellationReason")
	assert.Equal(t, int32(0), repo.UpdateFuncCallCount)
}

func TestAppointmentLifecycle_PendingToScheduledToCancelled(t *testing.T) {
	repo, store := inMemoryAppointmentRepo()
	cache := &MockAppointmentCache{}
	audit := &MockAuditService{}
	uc := newAppointmentUsecase(repo, knownIdentityRepo(), cache, audit)
	ctx := context.Background()

	created, err := uc.Create(ctx, &dto.CreateAppointmentRequest{
		UserID:           "user-1",
		PrimaryPhysician: "David Livingston",
		Schedule:         "2026-10-02T09:00:00Z",
		Reason:           "Chest pain follow-up",
	})
	assert.NoError(t, err)
	assert.Equal(t, string(entity.AppointmentStatusPending), created.Status)

	fetched, err := uc.Fetch(ctx, created.ID)
	assert.NoError(t, err)
	assert.Equal(t, string(entity.AppointmentStatusPending), fetched.Status)

	scheduled, err := uc.Update(ctx, created.ID, &dto.UpdateAppointmentRequest{
		UserID:   "user-1",
		Type:     UpdateTypeSchedule,
		TimeZone: "America/New_York",
		Schedule: "2026-10-02T14:00:00Z",
		Status:   string(entity.AppointmentStatusScheduled),
	})
	assert.NoError(t, err)
	assert.Equal(t, string(entity.AppointmentStatusScheduled), scheduled.Status)
	assert.Equal(t, entity.AuditActionAppointmentSchedule, audit.LastAction)

	// TimeZone only shapes the display block, never the stored instant.
	assert.Equal(t, time.Date(2026, 10, 2, 14, 0, 0, 0, time.UTC), store[created.ID].Schedule)
	assert.True(t, store[created.ID].IsScheduled())
	assert.NotNil(t, scheduled.ScheduleDisplay)
	assert.Equal(t, "10:00 AM", scheduled.ScheduleDisplay.TimeOnly)

	fetched, err = uc.Fetch(ctx, created.ID)
	assert.NoError(t, err)
	assert.Equal(t, string(entity.AppointmentStatusScheduled), fetched.Status)

	cancelled, err := uc.Update(ctx, created.ID, &dto.UpdateAppointmentRequest{
		UserID:             "user-1",
		Type:               UpdateTypeCancel,
		Status:             string(entity.AppointmentStatusCancelled),
		CancellationReason: "Patient travelling",
	})
	assert.NoError(t, err)
	assert.Equal(t, string(entity.AppointmentStatusCancelled), cancelled.Status)
	assert.Equal(t, "Patient travelling", cancelled.CancellationReason)
	assert.Equal(t, entity.AuditActionAppointmentCancel, audit.LastAction)
	assert.True(t, store[created.ID].IsCancelled())
	assert.False(t, store[created.ID].IsPending())
}

func TestAppointmentListByUser(t *testing.T) {
	repo := &MockAppointmentRepository{
		FindByUserIDFunc: func(ctx context.Context, userID string) ([]entity.Appointment, error) {
			return []entity.Appointment{
				{ID: "appt-2", UserID: userID, Status: entity.AppointmentStatusScheduled},
				{ID: "appt-1", UserID: userID, Status: entity.AppointmentStatusCancelled},
			}, nil
		},
	}
	uc := newAppointmentUsecase(repo, knownIdentityRepo(), &MockAppointmentCache{}, &MockAuditService{})

	resp, err := uc.ListByUser(context.Background(), "user-1")
	assert.NoError(t, err)
	assert.Equal(t, 2, resp.Total)
	assert.Equal(t, "appt-2", resp.Appointments[0].ID)
}
