package create_reservation

import (
	"errors"
	"net/http"

	"github.com/gzelashvili/PlayZone-ReservationService/internal/api/handlers"
	"github.com/gzelashvili/PlayZone-ReservationService/internal/api/middleware"
	createReservation "github.com/gzelashvili/PlayZone-ReservationService/internal/usecase/create_reservation"
)

const (
	msgInvalidRequestBody   = "некорректное тело запроса"
	msgInvalidDate          = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgMissingUserID        = "отсутствует ID пользователя"
	msgIncompleteSelection  = "диапазон времени выбран не полностью"
	msgOutsideBusinessHours = "диапазон выходит за рабочие часы"
	msgSlotConflict         = "диапазон пересекается с существующим бронированием"
	msgNoResourceAvailable  = "нет свободного ресурса на выбранный диапазон"
	msgResourceNotFound     = "ресурс не найден"
	msgResourceMismatch     = "ресурс принадлежит другому филиалу"
	msgInvalidReservDate    = "некорректная дата бронирования"
)

type Handler struct {
	useCase CreateReservationUseCase
	logger  Logger
}

func NewHandler(useCase CreateReservationUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/reservations
//
// Сервер является единственным арбитром конфликтов: даже если клиент
// уже показал диапазон свободным, ответ 409 окончателен и не
// перепроверяется автоматически.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateReservationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /reservations - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /reservations - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(userID)
	if err != nil {
		h.logger.Warn("POST /reservations - Failed to parse date %q: %v", req.Date, err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createReservation.ErrSlotConflict):
			h.logger.Warn("POST /reservations - Slot conflict: user_id=%d, branch_id=%d", userID, req.BranchID)
			handlers.RespondError(w, http.StatusConflict, msgSlotConflict)

		case errors.Is(err, createReservation.ErrNoResourceAvailable):
			h.logger.Warn("POST /reservations - No resource available: user_id=%d, branch_id=%d", userID, req.BranchID)
			handlers.RespondError(w, http.StatusConflict, msgNoResourceAvailable)

		case errors.Is(err, createReservation.ErrIncompleteSelection):
			h.logger.Warn("POST /reservations - Incomplete selection: user_id=%d", userID)
			handlers.RespondBadRequest(w, msgIncompleteSelection)

		case errors.Is(err, createReservation.ErrOutsideBusinessHours):
			h.logger.Warn("POST /reservations - Outside business hours: user_id=%d", userID)
			handlers.RespondBadRequest(w, msgOutsideBusinessHours)

		case errors.Is(err, createReservation.ErrInvalidDate):
			h.logger.Warn("POST /reservations - Invalid reservation date: user_id=%d", userID)
			handlers.RespondBadRequest(w, msgInvalidReservDate)

		case errors.Is(err, createReservation.ErrResourceNotFound):
			h.logger.Warn("POST /reservations - Resource not found: user_id=%d, branch_id=%d", userID, req.BranchID)
			handlers.RespondNotFound(w, msgResourceNotFound)

		case errors.Is(err, createReservation.ErrResourceBranchMismatch):
			h.logger.Warn("POST /reservations - Resource branch mismatch: user_id=%d, branch_id=%d", userID, req.BranchID)
			handlers.RespondBadRequest(w, msgResourceMismatch)

		case errors.Is(err, createReservation.ErrInvalidInput):
			h.logger.Warn("POST /reservations - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		default:
			h.logger.Error("POST /reservations - Failed to create reservation: user_id=%d, branch_id=%d, error=%v",
				userID, req.BranchID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /reservations - Reservation created: reservation_id=%d, resource_id=%d, user_id=%d",
		result.ID, result.ResourceID, userID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
