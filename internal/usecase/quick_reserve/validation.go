package quick_reserve

import (
	"fmt"

	"github.com/gzelashvili/PlayZone-ReservationService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request, slotWidthMinutes int) error {
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

	if req.DurationMinutes <= 0 {
		return fmt.Errorf("%w: durationMinutes must be positive", ErrInvalidInput)
	}

	if req.DurationMinutes%slotWidthMinutes != 0 {
		return fmt.Errorf("%w: durationMinutes must be a multiple of %d", ErrInvalidInput, slotWidthMinutes)
	}

	return nil
}

// snapToGrid выравнивает минуту вверх до ближайшей границы сетки слотов.
// Минута, уже стоящая на границе, не сдвигается.
func snapToGrid(minute, slotWidthMinutes int) int {
	remainder := minute % slotWidthMinutes
	if remainder == 0 {
		return minute
	}
	return minute + slotWidthMinutes - remainder
}

// withinWindow проверяет, что диапазон [start, end) укладывается в рабочее
// окно. Окно может переходить через полночь (windowEnd > 1440).
func withinWindow(start, end, windowStart, windowEnd int) bool {
	if windowEnd <= domain.MinutesPerDay {
		return start >= windowStart && end <= windowEnd
	}

	if start >= windowStart && end <= domain.MinutesPerDay {
		return true
	}

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
