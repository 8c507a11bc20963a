package get_day_schedule

import (
	"context"
	"fmt"

	"github.com/gzelashvili/PlayZone-ReservationService/internal/domain"
	"github.com/gzelashvili/PlayZone-ReservationService/internal/schedule"
)

// UseCase use case построения сетки слотов на день.
//
// Для одного ресурса слот помечается занятым, если его пересекает любое
// бронирование этого ресурса. Для пула из нескольких ресурсов слот
// свободен, пока свободен хотя бы один ресурс пула.
type UseCase struct {
	reservationRepo ReservationRepository
	resourceRepo    ResourceRepository
	logger          Logger

	windowStartMinute int
	windowEndMinute   int
	slotWidthMinutes  int
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	reservationRepo ReservationRepository,
	resourceRepo ResourceRepository,
	logger Logger,
	windowStartMinute int,
	windowEndMinute int,
	slotWidthMinutes int,
) *UseCase {
	return &UseCase{
		reservationRepo:   reservationRepo,
		resourceRepo:      resourceRepo,
		logger:            logger,
		windowStartMinute: windowStartMinute,
		windowEndMinute:   windowEndMinute,
		slotWidthMinutes:  slotWidthMinutes,
	}
}

// Execute выполняет use case построения сетки
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetDaySchedule: branch=%d, resources=%v, date=%s",
		req.BranchID, req.ResourceIDs, req.Date.Format(domain.DateFormat))

	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetDaySchedule: validation failed: %v", err)
		return nil, err
	}

	// 1. Определяем набор ресурсов
	resourceIDs, err := uc.resolveResources(ctx, req)
	if err != nil {
		return nil, err
	}

	// 2. Генерируем сетку слотов рабочего окна
	slots, err := schedule.Generate(uc.windowStartMinute, uc.windowEndMinute, uc.slotWidthMinutes)
	if err != nil {
		uc.logger.Error("GetDaySchedule: failed to generate grid: %v", err)
		return nil, fmt.Errorf("%w: failed to generate grid: %v", ErrInternal, err)
	}

	// 3. Получаем бронирования на дату
	filter := domain.ResourceReservationsFilter{
		ResourceIDs: resourceIDs,
		Date:        &req.Date,
	}

	reservations, err := uc.reservationRepo.ListWithFilter(ctx, filter)
	if err != nil {
		uc.logger.Error("GetDaySchedule: failed to list reservations: %v", err)
		return nil, fmt.Errorf("%w: failed to list reservations: %v", ErrInternal, err)
	}

	// 4. Помечаем занятость
	if len(resourceIDs) == 1 {
		schedule.MarkResource(slots, reservations, resourceIDs[0])
	} else {
		schedule.MarkPool(slots, reservations, resourceIDs)
	}

	uc.logger.Info("GetDaySchedule: built %d slots for branch=%d over %d resources",
		len(slots), req.BranchID, len(resourceIDs))

	resp := &Response{
		BranchID:    req.BranchID,
		ResourceIDs: resourceIDs,
		Date:        req.Date,
		Slots:       make([]Slot, 0, len(slots)),
	}

	for _, slot := range slots {
		resp.Slots = append(resp.Slots, Slot{
			StartMinute: slot.Start,
			EndMinute:   slot.End,
			Label:       slot.Label,
			Free:        slot.Free,
		})
	}

	return resp, nil
}

// resolveResources возвращает набор ресурсов для расчета занятости:
// либо явно запрошенные, либо все ресурсы филиала
func (uc *UseCase) resolveResources(ctx context.Context, req *Request) ([]int64, error) {
	if len(req.ResourceIDs) == 0 {
		resources, err := uc.resourceRepo.ListByBranch(ctx, req.BranchID)
		if err != nil {
			uc.logger.Error("GetDaySchedule: failed to list branch resources: %v", err)
			return nil, fmt.Errorf("%w: failed to list branch resources: %v", ErrInternal, err)
		}

		if len(resources) == 0 {
			uc.logger.Warn("GetDaySchedule: branch id=%d has no resources", req.BranchID)
			return nil, ErrBranchHasNoResources
		}

		ids := make([]int64, 0, len(resources))
		for _, res := range resources {
			ids = append(ids, res.ID)
		}
		return ids, nil
	}

	resources, err := uc.resourceRepo.ListByIDs(ctx, req.ResourceIDs)
	if err != nil {
		uc.logger.Error("GetDaySchedule: failed to get resources: %v", err)
		return nil, fmt.Errorf("%w: failed to get resources: %v", ErrInternal, err)
	}

	byID := make(map[int64]*domain.Resource, len(resources))
	for _, res := range resources {
		byID[res.ID] = res
	}

	for _, id := range req.ResourceIDs {
		res, ok := byID[id]
		if !ok {
			uc.logger.Warn("GetDaySchedule: resource id=%d not found", id)
			return nil, fmt.Errorf("%w: resource id=%d", ErrResourceNotFound, id)
		}
		if res.BranchID != req.BranchID {
			uc.logger.Warn("GetDaySchedule: resource id=%d belongs to branch=%d, not %d",
				id, res.BranchID, req.BranchID)
			return nil, fmt.Errorf("%w: resource id=%d", ErrResourceBranchMismatch, id)
		}
	}

	return req.ResourceIDs, nil
}
