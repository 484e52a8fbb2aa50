package usecase

import (
	"context"
	"errors"
	"sync/atomic"

	"healthtrack-service/internal/domain/entity"
	"healthtrack-service/internal/domain/repository"
	"healthtrack-service/internal/service"
)

// --- MockIdentityRepository ---

// Compile-time check to ensure MockIdentityRepository implements IdentityRepository
var _ repository.IdentityRepository = (*MockIdentityRepository)(nil)

// MockIdentityRepository is a mock implementation of IdentityRepository.
type MockIdentityRepository struct {
	CreateFunc           func(ctx context.Context, identity *entity.PatientIdentity) (repository.IdentityCreateOutcome, error)
	FindByIDFunc         func(ctx context.Context, id string) (*entity.PatientIdentity, error)
	FindFirstByEmailFunc func(ctx context.Context, email string) (*entity.PatientIdentity, error)

	CreateFuncCallCount           int32
	FindFirstByEmailFuncCallCount int32
}

func (m *MockIdentityRepository) Create(ctx context.Context, identity *entity.PatientIdentity) (repository.IdentityCreateOutcome, error) {
	atomic.AddInt32(&m.CreateFuncCallCount, 1)
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, identity)
	}
	return repository.IdentityCreateOutcome{Created: identity}, nil
}

func (m *MockIdentityRepository) FindByID(ctx context.Context, id string) (*entity.PatientIdentity, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, errors.New("FindByIDFunc not implemented in mock")
}

func (m *MockIdentityRepository) FindFirstByEmail(ctx context.Context, email string) (*entity.PatientIdentity, error) {
	atomic.AddInt32(&m.FindFirstByEmailFuncCallCount, 1)
	if m.FindFirstByEmailFunc != nil {
		return m.FindFirstByEmailFunc(ctx, email)
	}
	return nil, errors.New("FindFirstByEmailFunc not implemented in mock")
}

// --- MockPatientProfileRepository ---

// Compile-time check to ensure MockPatientProfileRepository implements PatientProfileRepository
var _ repository.PatientProfileRepository = (*MockPatientProfileRepository)(nil)

// MockPatientProfileRepository is a mock implementation of PatientProfileRepository.
type MockPatientProfileRepository struct {
	CreateFunc       func(ctx context.Context, profile *entity.PatientProfile) error
	FindByUserIDFunc func(ctx context.Context, userID string) (*entity.PatientProfile, error)

	CreateFuncCallCount int32
}

func (m *MockPatientProfileRepository) Create(ctx context.Context, profile *entity.PatientProfile) error {
	atomic.AddInt32(&m.CreateFuncCallCount, 1)
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, profile)
	}
	return nil
}

func (m *MockPatientProfileRepository) FindByUserID(ctx context.Context, userID string) (*entity.PatientProfile, error) {
	if m.FindByUserIDFunc != nil {
		return m.FindByUserIDFunc(ctx, userID)
	}
	return nil, errors.New("FindByUserIDFunc not implemented in mock")
}

// --- MockAppointmentRepository ---

// Compile-time check to ensure MockAppointmentRepository implements AppointmentRepository
var _ repository.AppointmentRepository = (*MockAppointmentRepository)(nil)

// MockAppointmentRepository is a mock implementation of AppointmentRepository.
type MockAppointmentRepository struct {
	CreateFunc       func(ctx context.Context, appointment *entity.Appointment) error
	FindByIDFunc     func(ctx context.Context, id string) (*entity.Appointment, error)
	FindByUserIDFunc func(ctx context.Context, userID string) ([]entity.Appointment, error)
	UpdateFunc       func(ctx context.Context, id string, set map[string]interface{}) (bool, error)

	CreateFuncCallCount int32
	UpdateFuncCallCount int32
}

func (m *MockAppointmentRepository) Create(ctx context.Context, appointment *entity.Appointment) error {
	atomic.AddInt32(&m.CreateFuncCallCount, 1)
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, appointment)
	}
	return nil
}

func (m *MockAppointmentRepository) FindByID(ctx context.Context, id string) (*entity.Appointment, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, errors.New("FindByIDFunc not implemented in mock")
}

func (m *MockAppointmentRepository) FindByUserID(ctx context.Context, userID string) ([]entity.Appointment, error) {
	if m.FindByUserIDFunc != nil {
		return m.FindByUserIDFunc(ctx, userID)
	}
	return nil, nil
}

func (m *MockAppointmentRepository) Update(ctx context.Context, id string, set map[string]interface{}) (bool, error) {
	atomic.AddInt32(&m.UpdateFuncCallCount, 1)
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, id, set)
	}
	return false, errors.New("UpdateFunc not implemented in mock")
}

// --- MockFileStorage ---

// Compile-time check to ensure MockFileStorage implements FileStorage
var _ service.FileStorage = (*MockFileStorage)(nil)

// MockFileStorage is a mock implementation of FileStorage.
type MockFileStorage struct {
	UploadFunc func(ctx context.Context, data []byte, fileName string) (*entity.FileReference, error)

	UploadFuncCallCount int32
}

func (m *MockFileStorage) Upload(ctx context.Context, data []byte, fileName string) (*entity.FileReference, error) {
	atomic.AddInt32(&m.UploadFuncCallCount, 1)
	if m.UploadFunc != nil {
		return m.UploadFunc(ctx, data, fileName)
	}
	return &entity.FileReference{ID: "file-1", Name: fileName, URL: "http://storage.local/intake/" + fileName}, nil
}

// --- MockAuditService ---

// Compile-time check to ensure MockAuditService implements AuditService
var _ service.AuditService = (*MockAuditService)(nil)

// MockAuditService is a mock implementation of AuditService. By default it
// accepts every entry, matching the non-fatal audit contract.
type MockAuditService struct {
	LogCreateFunc func(ctx context.Context, userID string, action string, entityName string, entityID string, newValue interface{}) error
	LogUpdateFunc func(ctx context.Context, userID string, action string, entityName string, entityID string, oldValue, newValue interface{}) error

	LogCreateFuncCallCount int32
	LogUpdateFuncCallCount int32

	LastAction string
}

func (m *MockAuditService) LogCreate(ctx context.Context, userID string, action string, entityName string, entityID string, newValue interface{}) error {
	atomic.AddInt32(&m.LogCreateFuncCallCount, 1)
	m.LastAction = action
	if m.LogCreateFunc != nil {
		return m.LogCreateFunc(ctx, userID, action, entityName, entityID, newValue)
	}
	return nil
}

func (m *MockAuditService) LogUpdate(ctx context.Context, userID string, action string, entityName string, entityID string, oldValue, newValue interface{}) error {
	atomic.AddInt32(&m.LogUpdateFuncCallCount, 1)
	m.LastAction = action
	if m.LogUpdateFunc != nil {
		return m.LogUpdateFunc(ctx, userID, action, entityName, entityID, oldValue, newValue)
	}
	return nil
}

// --- MockAppointmentCache ---

// Compile-time check to ensure MockAppointmentCache implements AppointmentCache
var _ service.AppointmentCache = (*MockAppointmentCache)(nil)

// MockAppointmentCache is a map-backed in-memory cache. A zero value acts
// as an always-miss cache.
type MockAppointmentCache struct {
	entries map[string]*entity.Appointment

	SetFuncCallCount        int32
	InvalidateFuncCallCount int32
}

func (m *MockAppointmentCache) Get(ctx context.Context, appointmentID string) *entity.Appointment {
	return m.entries[appointmentID]
}

func (m *MockAppointmentCache) Set(ctx context.Context, appointment *entity.Appointment) {
	atomic.AddInt32(&m.SetFuncCallCount, 1)
	if m.entries == nil {
		m.entries = make(map[string]*entity.Appointment)
	}
	m.entries[appointment.ID] = appointment
}

func (m *MockAppointmentCache) Invalidate(ctx context.Context, appointmentID string) {
	atomic.AddInt32(&m.InvalidateFuncCallCount, 1)
	delete(m.entries, appointmentID)
}
