package get_day_schedule

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gorilla/mux"

	"github.com/gzelashvili/PlayZone-ReservationService/internal/api/handlers"
	"github.com/gzelashvili/PlayZone-ReservationService/internal/domain"
	getDaySchedule "github.com/gzelashvili/PlayZone-ReservationService/internal/usecase/get_day_schedule"
)

const (
	msgInvalidBranchID    = "некорректный ID филиала"
	msgInvalidResourceIDs = "некорректный список ресурсов"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgBranchNoResources  = "у филиала нет ресурсов"
	msgResourceNotFound   = "ресурс не найден"
	msgResourceMismatch   = "ресурс принадлежит другому филиалу"
)

type Handler struct {
	useCase GetDayScheduleUseCase
	logger  Logger
}

func NewHandler(useCase GetDayScheduleUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/branches/{branchId}/schedule?date=YYYY-MM-DD&resourceIds=1,2
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	branchID, err := strconv.ParseInt(vars["branchId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /branches/{id}/schedule - Invalid branch ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBranchID)
		return
	}

	// Дата по умолчанию - сегодня
	date := time.Now()
	if raw := r.URL.Query().Get("date"); raw != "" {
		date, err = time.Parse(domain.DateFormat, raw)
		if err != nil {
			h.logger.Warn("GET /branches/{id}/schedule - Invalid date %q: %v", raw, err)
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
	}

	resourceIDs, err := parseResourceIDs(r.URL.Query().Get("resourceIds"))
	if err != nil {
		h.logger.Warn("GET /branches/{id}/schedule - Invalid resourceIds: %v", err)
		handlers.RespondBadRequest(w, msgInvalidResourceIDs)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &getDaySchedule.Request{
		BranchID:    branchID,
		ResourceIDs: resourceIDs,
		Date:        date,
	})
	if err != nil {
		switch {
		case errors.Is(err, getDaySchedule.ErrBranchHasNoResources):
			h.logger.Warn("GET /branches/{id}/schedule - Branch has no resources: branch_id=%d", branchID)
			handlers.RespondNotFound(w, msgBranchNoResources)

		case errors.Is(err, getDaySchedule.ErrResourceNotFound):
			h.logger.Warn("GET /branches/{id}/schedule - Resource not found: branch_id=%d", branchID)
			handlers.RespondNotFound(w, msgResourceNotFound)

		case errors.Is(err, getDaySchedule.ErrResourceBranchMismatch):
			h.logger.Warn("GET /branches/{id}/schedule - Resource branch mismatch: branch_id=%d", branchID)
			handlers.RespondBadRequest(w, msgResourceMismatch)

		case errors.Is(err, getDaySchedule.ErrInvalidInput):
			h.logger.Warn("GET /branches/{id}/schedule - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidResourceIDs)

		default:
			h.logger.Error("GET /branches/{id}/schedule - Failed to build schedule: branch_id=%d, error=%v",
				branchID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /branches/{id}/schedule - Schedule built: branch_id=%d, slots=%d",
		branchID, len(result.Slots))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}

// parseResourceIDs парсит параметр вида "1,2,3" в список идентификаторов
func parseResourceIDs(raw string) ([]int64, error) {
	if raw == "" {
		return nil, nil
	}

	parts := strings.Split(raw, ",")
	ids := make([]int64, 0, len(parts))

	for _, part := range parts {
		id, err := strconv.ParseInt(strings.TrimSpace(part), 10, 64)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}

	return ids, nil
}
