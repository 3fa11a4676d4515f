package activity

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/salesdesk/crm-portal/internal/auth"
	"github.com/salesdesk/crm-portal/internal/transport"
	"github.com/salesdesk/crm-portal/pkg/logger"
)

type ServiceAPI interface {
	GetMyActivities(repID string) ([]*Activity, error)
	CreateActivity(repID string, dto CreateActivityDTO) (*Activity, error)
	UpdateActivity(id, repID string, dto UpdateActivityDTO) (*Activity, error)
	CompleteActivity(id, repID string, dto CompleteActivityDTO) (*Activity, error)
}

type Handler struct {
	*transport.BaseHandler
	Service ServiceAPI
}

func NewHandler(service ServiceAPI) *Handler {
	lg := logger.L()
	if lg == nil {
		lg = slog.Default()
	}
	return &Handler{
		BaseHandler: transport.NewBaseHandler(lg),
		Service:     service,
	}
}

// GetMyActivities handles GET /crm/activities/my-activities
func (h *Handler) GetMyActivities(w http.ResponseWriter, r *http.Request) {
	user, ok := auth.UserFromContext(r.Context())
	if !ok || user == nil {
		h.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	activities, err := h.Service.GetMyActivities(user.ID)
	if err != nil {
		h.Logger.Error("GetMyActivities: service error", "error", err, "rep_id", user.ID)
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, activities)
}

// CreateActivity handles POST /crm/activities
func (h *Handler) CreateActivity(w http.ResponseWriter, r *http.Request) {
	user, ok := auth.UserFromContext(r.Context())
	if !ok || user == nil {
		h.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var dto CreateActivityDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	a, err := h.Service.CreateActivity(user.ID, dto)
	if err != nil {
		h.Logger.Error("CreateActivity: service error", "error", err, "rep_id", user.ID)
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusCreated, a)
}

// UpdateActivity handles PUT /crm/activities/{id}
func (h *Handler) UpdateActivity(w http.ResponseWriter, r *http.Request) {
	user, ok := auth.UserFromContext(r.Context())
	if !ok || user == nil {
		h.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	activityID := chi.URLParam(r, "id")
	if activityID == "" {
		h.WriteError(w, http.StatusBadRequest, "missing activity ID")
		return
	}

	var dto UpdateActivityDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	a, err := h.Service.UpdateActivity(activityID, user.ID, dto)
	if err != nil {
		h.Logger.Error("UpdateActivity: service error", "error", err, "activity_id", activityID)
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, a)
}

// CompleteActivity handles PATCH /crm/activities/{id}/complete
func (h *Handler) CompleteActivity(w http.ResponseWriter, r *http.Request) {
	user, ok := auth.UserFromContext(r.Context())
	if !ok || user == nil {
		h.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	activityID := chi.URLParam(r, "id")
	if activityID == "" {
		h.WriteError(w, http.StatusBadRequest, "missing activity ID")
		return
	}

	var dto CompleteActivityDTO
	if r.Body != nil {
		// empty body is fine; duration/outcome are optional
		_ = json.NewDecoder(r.Body).Decode(&dto)
	}

	a, err := h.Service.CompleteActivity(activityID, user.ID, dto)
	if err != nil {
		h.Logger.Error("CompleteActivity: service error", "error", err, "activity_id", activityID)
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, a)
}
