package dashboard

import (
	"log/slog"
	"net/http"

	"github.com/salesdesk/crm-portal/internal/auth"
	"github.com/salesdesk/crm-portal/internal/transport"
	"github.com/salesdesk/crm-portal/pkg/logger"
)

type ServiceAPI interface {
	GetStats(repID string) (*Stats, error)
	GetPerformance(repID string) ([]*MonthlyPerformance, error)
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

// GetStats handles GET /crm/sales-team/dashboard-stats
func (h *Handler) GetStats(w http.ResponseWriter, r *http.Request) {
	user, ok := auth.UserFromContext(r.Context())
	if !ok || user == nil {
		h.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	stats, err := h.Service.GetStats(user.ID)
	if err != nil {
		h.Logger.Error("GetStats: service error", "error", err, "rep_id", user.ID)
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, stats)
}

// GetPerformance handles GET /crm/sales-team/performance
func (h *Handler) GetPerformance(w http.ResponseWriter, r *http.Request) {
	user, ok := auth.UserFromContext(r.Context())
	if !ok || user == nil {
		h.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	rows, err := h.Service.GetPerformance(user.ID)
	if err != nil {
		h.Logger.Error("GetPerformance: service error", "error", err, "rep_id", user.ID)
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, rows)
}
