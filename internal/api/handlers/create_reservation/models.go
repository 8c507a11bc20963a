package create_reservation

import (
	"time"

	"github.com/gzelashvili/PlayZone-ReservationService/internal/domain"
	createReservation "github.com/gzelashvili/PlayZone-ReservationService/internal/usecase/create_reservation"
)

// CreateReservationRequest HTTP request model.
// Границы диапазона передаются парами час/минута; отсутствие любой из
// границ означает незавершенный выбор диапазона.
type CreateReservationRequest struct {
	BranchID    int64   `json:"branchId"`
	ResourceIDs []int64 `json:"resourceIds"` // Пул ресурсов в порядке приоритета
	Date        string  `json:"date"`        // "2026-08-30"
	StartHour   *int    `json:"startHour"`
	StartMinute *int    `json:"startMinute"`
	EndHour     *int    `json:"endHour"`
	EndMinute   *int    `json:"endMinute"`
	WalkIn      bool    `json:"walkIn"` // true - бронирование без привязки к пользователю
	IsPaid      bool    `json:"isPaid"`
}

// ReservationResponse HTTP response model
type ReservationResponse struct {
	ID          int64  `json:"id"`
	ResourceID  int64  `json:"resourceId"`
	BranchID    int64  `json:"branchId"`
	UserID      *int64 `json:"userId,omitempty"`
	Date        string `json:"date"`
	StartTime   string `json:"startTime"`
	EndTime     string `json:"endTime"`
	StartMinute int    `json:"startMinute"`
	EndMinute   int    `json:"endMinute"`
	IsPaid      bool   `json:"isPaid"`
	CreatedAt   string `json:"createdAt"`
	UpdatedAt   string `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case.
// Для walk-in бронирования владелец не привязывается, иначе берется
// авторизованный пользователь.
func (r *CreateReservationRequest) ToUseCaseRequest(userID int64) (*createReservation.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	req := &createReservation.Request{
		BranchID:    r.BranchID,
		ResourceIDs: r.ResourceIDs,
		Date:        date,
		StartMinute: minuteOfDay(r.StartHour, r.StartMinute),
		EndMinute:   minuteOfDay(r.EndHour, r.EndMinute),
		IsPaid:      r.IsPaid,
	}

	if !r.WalkIn {
		req.UserID = &userID
	}

	return req, nil
}

// minuteOfDay складывает пару час/минута в минуты от полуночи.
// Неполная пара трактуется как отсутствующая граница диапазона.
func minuteOfDay(hour, minute *int) *int {
	if hour == nil || minute == nil {
		return nil
	}
	total := *hour*60 + *minute
	return &total
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createReservation.Response) *ReservationResponse {
	return &ReservationResponse{
		ID:          resp.ID,
		ResourceID:  resp.ResourceID,
		BranchID:    resp.BranchID,
		UserID:      resp.UserID,
		Date:        resp.Date.Format(domain.DateFormat),
		StartTime:   resp.StartTime,
		EndTime:     resp.EndTime,
		StartMinute: resp.StartMinute,
		EndMinute:   resp.EndMinute,
		IsPaid:      resp.IsPaid,
		CreatedAt:   resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   resp.UpdatedAt.Format(time.RFC3339),
	}
}
