package handler

import (
	"net/http"

	"healthtrack-service/internal/converter"
	"healthtrack-service/internal/domain/entity"
	"healthtrack-service/pkg/response"
)

type PhysicianHandler struct{}

func NewPhysicianHandler() *PhysicianHandler {
	return &PhysicianHandler{}
}

// ListPhysicians serves the static care-provider roster the intake form
// offers.
func (h *PhysicianHandler) ListPhysicians(w http.ResponseWriter, r *http.Request) {
	response.Success(w, http.StatusOK, "", converter.PhysiciansToResponses(entity.Physicians))
}
