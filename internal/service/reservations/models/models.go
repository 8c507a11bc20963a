package models

import (
	"time"

	"github.com/gzelashvili/PlayZone-ReservationService/internal/domain"
	"github.com/gzelashvili/PlayZone-ReservationService/pkg/types"
)

// Request модели

// ListResourceReservationsRequest запрос на получение бронирований ресурса за дату
type ListResourceReservationsRequest struct {
	ResourceID int64     `json:"resourceId"`
	Date       time.Time `json:"date"`
}

// DeleteReservationRequest запрос на удаление бронирования
type DeleteReservationRequest struct {
	UserID int64 `json:"userId"`
}

// Response модели

// ReservationResponse ответ с данными бронирования
type ReservationResponse struct {
	ID          int64  `json:"id"`
	ResourceID  int64  `json:"resourceId"`
	BranchID    int64  `json:"branchId"`
	UserID      *int64 `json:"userId,omitempty"` // nil для walk-in бронирований
	Date        string `json:"date"`             // "2026-08-30"
	StartTime   string `json:"startTime"`        // "14:00"
	EndTime     string `json:"endTime"`          // "15:30"
	StartMinute int    `json:"startMinute"`
	EndMinute   int    `json:"endMinute"`
	IsPaid      bool   `json:"isPaid"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ReservationListResponse ответ со списком бронирований
type ReservationListResponse struct {
	Reservations []ReservationResponse `json:"reservations"`
}

// Методы конвертации

// FromDomainReservation конвертирует domain модель в DTO
func FromDomainReservation(r *domain.Reservation) *ReservationResponse {
	if r == nil {
		return nil
	}

	return &ReservationResponse{
		ID:          r.ID,
		ResourceID:  r.ResourceID,
		BranchID:    r.BranchID,
		UserID:      r.UserID,
		Date:        r.Date.Format(domain.DateFormat),
		StartTime:   types.MinuteOfDay(r.StartMinute).String(),
		EndTime:     types.MinuteOfDay(r.EndMinute).String(),
		StartMinute: r.StartMinute,
		EndMinute:   r.EndMinute,
		IsPaid:      r.IsPaid,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}

// FromDomainReservationList конвертирует список domain моделей в DTO
func FromDomainReservationList(reservations []*domain.Reservation) *ReservationListResponse {
	resp := &ReservationListResponse{
		Reservations: make([]ReservationResponse, 0, len(reservations)),
	}

	for _, reservation := range reservations {
		if item := FromDomainReservation(reservation); item != nil {
			resp.Reservations = append(resp.Reservations, *item)
		}
	}

	return resp
}
