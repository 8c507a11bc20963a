package create_reservation

import (
	"context"
	"fmt"

	"github.com/gzelashvili/PlayZone-ReservationService/internal/domain"
	"github.com/gzelashvili/PlayZone-ReservationService/internal/schedule"
	"github.com/gzelashvili/PlayZone-ReservationService/pkg/types"
)

// UseCase use case для создания бронирования с проверкой доступности.
//
// Сервер является единственным арбитром конфликтов: клиентская проверка
// пересечений носит только косметический характер, окончательное решение
// принимается здесь внутри сериализуемой транзакции с блокировкой
// существующих бронирований.
type UseCase struct {
	reservationRepo ReservationRepository
	resourceRepo    ResourceRepository
	txManager       TransactionManager
	timeProvider    TimeProvider
	logger          Logger

	windowStartMinute int
	windowEndMinute   int
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	reservationRepo ReservationRepository,
	resourceRepo ResourceRepository,
	txManager TransactionManager,
	logger Logger,
	windowStartMinute int,
	windowEndMinute int,
) *UseCase {
	return &UseCase{
		reservationRepo:   reservationRepo,
		resourceRepo:      resourceRepo,
		txManager:         txManager,
		timeProvider:      &RealTimeProvider{},
		logger:            logger,
		windowStartMinute: windowStartMinute,
		windowEndMinute:   windowEndMinute,
	}
}

// Execute выполняет use case создания бронирования.
// Для пула из нескольких ресурсов бронирование ложится на первый свободный
// ресурс в порядке, заданном запросом.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateReservation: branch=%d, resources=%v, date=%s",
		req.BranchID, req.ResourceIDs, req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateReservation: validation failed: %v", err)
		return nil, err
	}

	start, end := *req.StartMinute, *req.EndMinute

	// 2. Дата не должна быть в прошлом
	now := uc.timeProvider.Now()
	if err := validateDate(req.Date, now); err != nil {
		uc.logger.Warn("CreateReservation: date %s is in the past", req.Date.Format(domain.DateFormat))
		return nil, err
	}

	// 3. Диапазон должен укладываться в рабочее окно
	if !withinWindow(start, end, uc.windowStartMinute, uc.windowEndMinute) {
		uc.logger.Warn("CreateReservation: range [%d, %d) is outside business hours [%d, %d)",
			start, end, uc.windowStartMinute, uc.windowEndMinute)
		return nil, ErrOutsideBusinessHours
	}

	// 4. Проверяем существование ресурсов и принадлежность филиалу
	resources, err := uc.resourceRepo.ListByIDs(ctx, req.ResourceIDs)
	if err != nil {
		uc.logger.Error("CreateReservation: failed to get resources: %v", err)
		return nil, fmt.Errorf("%w: failed to get resources: %v", ErrInternal, err)
	}

	if err := validateResources(resources, req.ResourceIDs, req.BranchID); err != nil {
		uc.logger.Warn("CreateReservation: resource validation failed: %v", err)
		return nil, err
	}

	var result *domain.Reservation

	// 5. Проверка доступности и вставка в одной сериализуемой транзакции.
	// ListWithFilter внутри транзакции блокирует существующие бронирования
	// (FOR UPDATE), поэтому два конкурентных запроса на один диапазон
	// не могут пройти проверку одновременно.
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		filter := domain.ResourceReservationsFilter{
			ResourceIDs: req.ResourceIDs,
			Date:        &req.Date,
		}

		reservations, err := uc.reservationRepo.ListWithFilter(txCtx, filter)
		if err != nil {
			uc.logger.Error("CreateReservation: failed to list reservations: %v", err)
			return fmt.Errorf("%w: failed to list reservations: %v", ErrInternal, err)
		}

		resourceID, ok := schedule.FirstFreeResource(reservations, req.ResourceIDs, start, end)
		if !ok {
			if len(req.ResourceIDs) > 1 {
				uc.logger.Warn("CreateReservation: no free resource in pool %v for range [%d, %d)",
					req.ResourceIDs, start, end)
				return ErrNoResourceAvailable
			}
			uc.logger.Warn("CreateReservation: range [%d, %d) conflicts on resource=%d",
				start, end, req.ResourceIDs[0])
			return ErrSlotConflict
		}

		reservation := &domain.Reservation{
			ResourceID:  resourceID,
			BranchID:    req.BranchID,
			UserID:      req.UserID,
			Date:        req.Date,
			StartMinute: start,
			EndMinute:   end,
			IsPaid:      req.IsPaid,
		}

		created, err := uc.reservationRepo.Create(txCtx, reservation)
		if err != nil {
			uc.logger.Error("CreateReservation: failed to create reservation: %v", err)
			return fmt.Errorf("%w: failed to create reservation: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateReservation: successfully created reservation id=%d on resource=%d",
		result.ID, result.ResourceID)

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
