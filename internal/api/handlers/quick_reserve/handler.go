package quick_reserve

import (
	"errors"
	"net/http"

	"github.com/gzelashvili/PlayZone-ReservationService/internal/api/handlers"
	"github.com/gzelashvili/PlayZone-ReservationService/internal/api/middleware"
	quickReserve "github.com/gzelashvili/PlayZone-ReservationService/internal/usecase/quick_reserve"
)

const (
	msgInvalidRequestBody   = "некорректное тело запроса"
	msgMissingUserID        = "отсутствует ID пользователя"
	msgOutsideBusinessHours = "рассчитанный диапазон выходит за рабочие часы"
	msgNoResourceAvailable  = "сейчас нет свободного ресурса"
	msgResourceNotFound     = "ресурс не найден"
	msgResourceMismatch     = "ресурс принадлежит другому филиалу"
)

type Handler struct {
	useCase QuickReserveUseCase
	logger  Logger
}

func NewHandler(useCase QuickReserveUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/reservations/quick
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req QuickReserveRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /reservations/quick - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /reservations/quick - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(userID))
	if err != nil {
		switch {
		case errors.Is(err, quickReserve.ErrNoResourceAvailable):
			h.logger.Warn("POST /reservations/quick - No resource available: user_id=%d, branch_id=%d",
				userID, req.BranchID)
			handlers.RespondError(w, http.StatusConflict, msgNoResourceAvailable)

		case errors.Is(err, quickReserve.ErrOutsideBusinessHours):
			h.logger.Warn("POST /reservations/quick - Outside business hours: user_id=%d", userID)
			handlers.RespondBadRequest(w, msgOutsideBusinessHours)

		case errors.Is(err, quickReserve.ErrResourceNotFound):
			h.logger.Warn("POST /reservations/quick - Resource not found: user_id=%d, branch_id=%d",
				userID, req.BranchID)
			handlers.RespondNotFound(w, msgResourceNotFound)

		case errors.Is(err, quickReserve.ErrResourceBranchMismatch):
			h.logger.Warn("POST /reservations/quick - Resource branch mismatch: user_id=%d, branch_id=%d",
				userID, req.BranchID)
			handlers.RespondBadRequest(w, msgResourceMismatch)

		case errors.Is(err, quickReserve.ErrInvalidInput):
			h.logger.Warn("POST /reservations/quick - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		default:
			h.logger.Error("POST /reservations/quick - Failed to create reservation: user_id=%d, branch_id=%d, error=%v",
				userID, req.BranchID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /reservations/quick - Reservation created: reservation_id=%d, resource_id=%d, user_id=%d",
		result.ID, result.ResourceID, userID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
