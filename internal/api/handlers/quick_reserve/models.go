package quick_reserve

import (
	"time"

	"github.com/gzelashvili/PlayZone-ReservationService/internal/domain"
	quickReserve "github.com/gzelashvili/PlayZone-ReservationService/internal/usecase/quick_reserve"
)

// QuickReserveRequest HTTP request model
type QuickReserveRequest struct {
	BranchID        int64   `json:"branchId"`
	ResourceIDs     []int64 `json:"resourceIds"` // Пул ресурсов в порядке приоритета
	DurationMinutes int     `json:"durationMinutes"`
	WalkIn          bool    `json:"walkIn"` // true - бронирование без привязки к пользователю
	IsPaid          bool    `json:"isPaid"`
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

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *QuickReserveRequest) ToUseCaseRequest(userID int64) *quickReserve.Request {
	req := &quickReserve.Request{
		BranchID:        r.BranchID,
		ResourceIDs:     r.ResourceIDs,
		DurationMinutes: r.DurationMinutes,
		IsPaid:          r.IsPaid,
	}

	if !r.WalkIn {
		req.UserID = &userID
	}

	return req
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *quickReserve.Response) *ReservationResponse {
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
