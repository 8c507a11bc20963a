package models

import "time"

// ResourceStatus текущее состояние одного ресурса филиала
type ResourceStatus struct {
	ResourceID   int64  `json:"resourceId"`
	ResourceName string `json:"resourceName"`
	IsBusy       bool   `json:"isBusy"`

	// Поля активного бронирования, заполняются только при IsBusy = true
	ReservationID    *int64 `json:"reservationId,omitempty"`
	UserID           *int64 `json:"userId,omitempty"`
	IsPaid           *bool  `json:"isPaid,omitempty"`
	RemainingSeconds int    `json:"remainingSeconds"`
	EndsAt           string `json:"endsAt,omitempty"` // "HH:MM:SS"
}

// BranchSnapshot срез занятости всех ресурсов филиала
type BranchSnapshot struct {
	BranchID    int64            `json:"branchId"`
	GeneratedAt time.Time        `json:"generatedAt"`
	RefreshedAt time.Time        `json:"refreshedAt"`
	Degraded    bool             `json:"degraded"` // true, если последнее обновление из БД не удалось
	Total       int              `json:"total"`
	Available   int              `json:"available"`
	Resources   []ResourceStatus `json:"resources"`
}
