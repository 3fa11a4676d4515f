package customer

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
	GetAssignedCustomers(repID string) ([]*Customer, error)
	UpdateCustomer(id, repID string, dto UpdateCustomerDTO) (*Customer, error)
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

// GetAssigned handles GET /crm/customers/assigned
func (h *Handler) GetAssigned(w http.ResponseWriter, r *http.Request) {
	user, ok := auth.UserFromContext(r.Context())
	if !ok || user == nil {
		h.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	customers, err := h.Service.GetAssignedCustomers(user.ID)
	if err != nil {
		h.Logger.Error("GetAssigned: service error", "error", err, "rep_id", user.ID)
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, customers)
}

// UpdateCustomer handles PUT /crm/customers/{id}
func (h *Handler) UpdateCustomer(w http.ResponseWriter, r *http.Request) {
	user, ok := auth.UserFromContext(r.Context())
	if !ok || user == nil {
		h.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	customerID := chi.URLParam(r, "id")
	if customerID == "" {
		h.WriteError(w, http.StatusBadRequest, "missing customer ID")
		return
	}

	var dto UpdateCustomerDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	c, err := h.Service.UpdateCustomer(customerID, user.ID, dto)
	if err != nil {
		h.Logger.Error("UpdateCustomer: service error", "error", err, "customer_id", customerID)
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, c)
}
