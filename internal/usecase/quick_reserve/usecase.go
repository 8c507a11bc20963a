package quick_reserve

import (
	"context"
	"fmt"
	"time"

	"github.com/gzelashvili/PlayZone-ReservationService/internal/domain"
	"github.com/gzelashvili/PlayZone-ReservationService/internal/schedule"
	"github.com/gzelashvili/PlayZone-ReservationService/pkg/types"
)

// UseCase use case мгновенного бронирования "с этого момента".
//
// Начало диапазона не выбирается клиентом, а вычисляется сервером:
// текущее время выравнивается вверх до границы сетки слотов, и от этой
// границы откладывается запрошенная длительность. Дальше работает тот же
// сериализуемый путь проверки доступности, что и у обычного создания.
type UseCase struct {
	reservationRepo ReservationRepository
	resourceRepo    ResourceRepository
	txManager       TransactionManager
	timeProvider    TimeProvider
	logger          Logger

	slotWidthMinutes  int
	windowStartMinute int
	windowEndMinute   int
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	reservationRepo ReservationRepository,
	resourceRepo ResourceRepository,
	txManager TransactionManager,
	logger Logger,
	slotWidthMinutes int,
	windowStartMinute int,
	windowEndMinute int,
) *UseCase {
	return &UseCase{
		reservationRepo:   reservationRepo,
		resourceRepo:      resourceRepo,
		txManager:         txManager,
		timeProvider:      &RealTimeProvider{},
		logger:            logger,
		slotWidthMinutes:  slotWidthMinutes,
		windowStartMinute: windowStartMinute,
		windowEndMinute:   windowEndMinute,
	}
}

// Execute выполняет use case мгновенного бронирования
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("QuickReserve: branch=%d, resources=%v, duration=%d",
		req.BranchID, req.ResourceIDs, req.DurationMinutes)

	// 1. Валидация входных данных
	if err := validateRequest(req, uc.slotWidthMinutes); err != nil {
		uc.logger.Warn("QuickReserve: validation failed: %v", err)
		return nil, err
	}

	// 2. Вычисляем диапазон от текущего момента
	now := uc.timeProvider.Now()
	nowMinute := now.Hour()*60 + now.Minute()

	start := snapToGrid(nowMinute, uc.slotWidthMinutes)
	end := start + req.DurationMinutes

	// Диапазон должен целиком лежать в рабочем окне и внутри текущих суток
	if end > domain.MinutesPerDay || !withinWindow(start, end, uc.windowStartMinute, uc.windowEndMinute) {
		uc.logger.Warn("QuickReserve: range [%d, %d) is outside business hours [%d, %d)",
			start, end, uc.windowStartMinute, uc.windowEndMinute)
		return nil, ErrOutsideBusinessHours
	}

	date := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	// 3. Проверяем существование ресурсов и принадлежность филиалу
	resources, err := uc.resourceRepo.ListByIDs(ctx, req.ResourceIDs)
	if err != nil {
		uc.logger.Error("QuickReserve: failed to get resources: %v", err)
		return nil, fmt.Errorf("%w: failed to get resources: %v", ErrInternal, err)
	}

	if err := validateResources(resources, req.ResourceIDs, req.BranchID); err != nil {
		uc.logger.Warn("QuickReserve: resource validation failed: %v", err)
		return nil, err
	}

	var result *domain.Reservation

	// 4. Проверка доступности и вставка в одной сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		filter := domain.ResourceReservationsFilter{
			ResourceIDs: req.ResourceIDs,
			Date:        &date,
		}

		reservations, err := uc.reservationRepo.ListWithFilter(txCtx, filter)
		if err != nil {
			uc.logger.Error("QuickReserve: failed to list reservations: %v", err)
			return fmt.Errorf("%w: failed to list reservations: %v", ErrInternal, err)
		}

		resourceID, ok := schedule.FirstFreeResource(reservations, req.ResourceIDs, start, end)
		if !ok {
			uc.logger.Warn("QuickReserve: no free resource in pool %v for range [%d, %d)",
				req.ResourceIDs, start, end)
			return ErrNoResourceAvailable
		}

		reservation := &domain.Reservation{
			ResourceID:  resourceID,
			BranchID:    req.BranchID,
			UserID:      req.UserID,
			Date:        date,
			StartMinute: start,
			EndMinute:   end,
			IsPaid:      req.IsPaid,
		}

		created, err := uc.reservationRepo.Create(txCtx, reservation)
		if err != nil {
			uc.logger.Error("QuickReserve: failed to create reservation: %v", err)
			return fmt.Errorf("%w: failed to create reservation: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("QuickReserve: successfully created reservation id=%d on resource=%d, range [%d, %d)",
		result.ID, result.ResourceID, start, end)

	return &Response{
		ID:          result.ID,
		ResourceID:  result.ResourceID,
		BranchID:    result.BranchID,
		UserID:      result.UserID,
		Date:        result.Date,
		StartMinute: result.StartMinute,
		EndMinute:   result.EndMinute,
		StartTime:   types.MinuteOfDay(result.StartMinute).String(),
		EndTime:     types.MinuteOfDay(result.EndMinute).String(),
		IsPaid:      result.IsPaid,
		CreatedAt:   result.CreatedAt,
		UpdatedAt:   result.UpdatedAt,
	}, nil
}
