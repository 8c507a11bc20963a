package create_reservation

import (
	"fmt"
	"time"

	"github.com/gzelashvili/PlayZone-ReservationService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.BranchID <= 0 {
		return fmt.Errorf("%w: branchID must be positive", ErrInvalidInput)
	}

	if len(req.ResourceIDs) == 0 {
		return fmt.Errorf("%w: at least one resourceID is required", ErrInvalidInput)
	}

	for _, id := range req.ResourceIDs {
		if id <= 0 {
			return fmt.Errorf("%w: resourceID must be positive", ErrInvalidInput)
		}
	}

	if req.UserID != nil && *req.UserID <= 0 {
		return fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	// Диапазон должен быть выбран полностью: обе границы обязательны
	if req.StartMinute == nil || req.EndMinute == nil {
		return ErrIncompleteSelection
	}

	start, end := *req.StartMinute, *req.EndMinute

	if start < 0 || start >= domain.MinutesPerDay {
		return fmt.Errorf("%w: startMinute must be in [0, %d)", ErrInvalidInput, domain.MinutesPerDay)
	}

	if end <= start || end > domain.MinutesPerDay {
		return fmt.Errorf("%w: endMinute must be in (startMinute, %d]", ErrInvalidInput, domain.MinutesPerDay)
	}

	return nil
}

// validateDate проверяет, что дата бронирования не в прошлом
func validateDate(date, now time.Time) error {
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	if dateOnly.Before(nowOnly) {
		return ErrInvalidDate
	}

	return nil
}

// withinWindow проверяет, что диапазон [start, end) укладывается в рабочее
// окно. Окно может переходить через полночь (windowEnd > 1440), тогда оно
// покрывает вечерний хвост текущих суток и утренний кусок следующих.
func withinWindow(start, end, windowStart, windowEnd int) bool {
	if windowEnd <= domain.MinutesPerDay {
		return start >= windowStart && end <= windowEnd
	}

	// Вечерняя часть окна
	if start >= windowStart && end <= domain.MinutesPerDay {
		return true
	}

	// Утренняя часть окна следующих суток
	return end <= windowEnd-domain.MinutesPerDay
}

// validateResources проверяет, что все запрошенные ресурсы существуют
// и принадлежат филиалу
func validateResources(resources []*domain.Resource, resourceIDs []int64, branchID int64) error {
	byID := make(map[int64]*domain.Resource, len(resources))
	for _, res := range resources {
		byID[res.ID] = res
	}

	for _, id := range resourceIDs {
		res, ok := byID[id]
		if !ok {
			return fmt.Errorf("%w: resource id=%d", ErrResourceNotFound, id)
		}
		if res.BranchID != branchID {
			return fmt.Errorf("%w: resource id=%d", ErrResourceBranchMismatch, id)
		}
	}

	return nil
}
