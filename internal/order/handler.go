package order

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/salesdesk/crm-portal/internal/auth"
	"github.com/salesdesk/crm-portal/internal/transport"
	"github.com/salesdesk/crm-portal/pkg/logger"
)

type ServiceAPI interface {
	GetMyOrders(repID string) ([]*SalesOrder, error)
	CreateOrder(ctx context.Context, repID string, dto CreateOrderDTO) (*SalesOrder, error)
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

// GetMyOrders handles GET /crm/sales-orders/my-orders
func (h *Handler) GetMyOrders(w http.ResponseWriter, r *http.Request) {
	user, ok := auth.UserFromContext(r.Context())
	if !ok || user == nil {
		h.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	orders, err := h.Service.GetMyOrders(user.ID)
	if err != nil {
		h.Logger.Error("GetMyOrders: service error", "error", err, "rep_id", user.ID)
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, orders)
}

// CreateOrder handles POST /crm/sales-orders
func (h *Handler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	user, ok := auth.UserFromContext(r.Context())
	if !ok || user == nil {
		h.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var dto CreateOrderDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	o, err := h.Service.CreateOrder(r.Context(), user.ID, dto)
	if err != nil {
		h.Logger.Error("CreateOrder: service error", "error", err, "rep_id", user.ID)
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusCreated, o)
}
