package get_day_schedule

import (
	"github.com/gzelashvili/PlayZone-ReservationService/internal/domain"
	getDaySchedule "github.com/gzelashvili/PlayZone-ReservationService/internal/usecase/get_day_schedule"
	"github.com/gzelashvili/PlayZone-ReservationService/pkg/types"
)

// SlotResponse HTTP модель одного слота сетки
type SlotResponse struct {
	StartTime   string `json:"startTime"` // "14:00"
	EndTime     string `json:"endTime"`   // "14:15"
	StartMinute int    `json:"startMinute"`
	EndMinute   int    `json:"endMinute"`
	Label       string `json:"label"`
	Free        bool   `json:"free"`
}

// ScheduleResponse HTTP модель ответа с сеткой на день
type ScheduleResponse struct {
	BranchID    int64          `json:"branchId"`
	ResourceIDs []int64        `json:"resourceIds"`
	Date        string         `json:"date"`
	Slots       []SlotResponse `json:"slots"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getDaySchedule.Response) *ScheduleResponse {
	out := &ScheduleResponse{
		BranchID:    resp.BranchID,
		ResourceIDs: resp.ResourceIDs,
		Date:        resp.Date.Format(domain.DateFormat),
		Slots:       make([]SlotResponse, 0, len(resp.Slots)),
	}

	for _, slot := range resp.Slots {
		out.Slots = append(out.Slots, SlotResponse{
			StartTime:   types.MinuteOfDay(slot.StartMinute).String(),
			EndTime:     types.MinuteOfDay(slot.EndMinute).String(),
			StartMinute: slot.StartMinute,
			EndMinute:   slot.EndMinute,
			Label:       slot.Label,
			Free:        slot.Free,
		})
	}

	return out
}
