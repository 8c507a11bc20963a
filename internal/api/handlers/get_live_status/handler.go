package get_live_status

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/gzelashvili/PlayZone-ReservationService/internal/api/handlers"
	"github.com/gzelashvili/PlayZone-ReservationService/internal/service/occupancy"
)

const (
	msgInvalidBranchID   = "некорректный ID филиала"
	msgBranchNoResources = "у филиала нет ресурсов"
)

type Handler struct {
	tracker OccupancyTracker
	logger  Logger
}

func NewHandler(tracker OccupancyTracker, logger Logger) *Handler {
	return &Handler{
		tracker: tracker,
		logger:  logger,
	}
}

// Handle GET /api/v1/branches/{branchId}/live
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	branchID, err := strconv.ParseInt(vars["branchId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /branches/{id}/live - Invalid branch ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBranchID)
		return
	}

	snapshot, err := h.tracker.Snapshot(r.Context(), branchID)
	if err != nil {
		switch {
		case errors.Is(err, occupancy.ErrNoResources):
			h.logger.Warn("GET /branches/{id}/live - Branch has no resources: branch_id=%d", branchID)
			handlers.RespondNotFound(w, msgBranchNoResources)

		default:
			h.logger.Error("GET /branches/{id}/live - Failed to build snapshot: branch_id=%d, error=%v",
				branchID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /branches/{id}/live - Snapshot built: branch_id=%d, available=%d/%d",
		branchID, snapshot.Available, snapshot.Total)
	handlers.RespondJSON(w, http.StatusOK, snapshot)
}
