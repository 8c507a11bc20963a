package reservations

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gzelashvili/PlayZone-ReservationService/internal/domain"
	reservationRepo "github.com/gzelashvili/PlayZone-ReservationService/internal/infra/storage/reservation"
	resourceRepo "github.com/gzelashvili/PlayZone-ReservationService/internal/infra/storage/resource"
	"github.com/gzelashvili/PlayZone-ReservationService/internal/service/reservations/models"
)

// Service сервис для работы с бронированиями
type Service struct {
	reservationRepo ReservationRepository
	resourceRepo    ResourceRepository
	logger          Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	reservationRepo ReservationRepository,
	resourceRepo ResourceRepository,
	logger Logger,
) *Service {
	return &Service{
		reservationRepo: reservationRepo,
		resourceRepo:    resourceRepo,
		logger:          logger,
	}
}

// GetByID получает бронирование по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.ReservationResponse, error) {
	s.logger.Info("GetByID: fetching reservation id=%d", id)

	reservation, err := s.reservationRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			s.logger.Warn("GetByID: reservation id=%d not found", id)
			return nil, ErrReservationNotFound
		}
		s.logger.Error("GetByID: repository error for reservation id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainReservation(reservation), nil
}

// ListForResourceDate получает бронирования ресурса на дату,
// отсортированные по времени начала
func (s *Service) ListForResourceDate(ctx context.Context, resourceID int64, date time.Time) (*models.ReservationListResponse, error) {
	s.logger.Info("ListForResourceDate: fetching reservations for resource=%d, date=%s",
		resourceID, date.Format(domain.DateFormat))

	if _, err := s.resourceRepo.GetByID(ctx, resourceID); err != nil {
		if errors.Is(err, resourceRepo.ErrResourceNotFound) {
			s.logger.Warn("ListForResourceDate: resource id=%d not found", resourceID)
			return nil, ErrResourceNotFound
		}
		s.logger.Error("ListForResourceDate: failed to get resource id=%d: %v", resourceID, err)
		return nil, fmt.Errorf("%w: ListForResourceDate - failed to get resource: %v", ErrInternal, err)
	}

	filter := domain.ResourceReservationsFilter{
		ResourceIDs: []int64{resourceID},
		Date:        &date,
	}

	reservations, err := s.reservationRepo.ListWithFilter(ctx, filter)
	if err != nil {
		s.logger.Error("ListForResourceDate: repository error for resource=%d: %v", resourceID, err)
		return nil, fmt.Errorf("%w: ListForResourceDate - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListForResourceDate: fetched %d reservations for resource=%d", len(reservations), resourceID)
	return models.FromDomainReservationList(reservations), nil
}

// Delete удаляет бронирование
// Пользователь может удалить только своё бронирование.
// Walk-in бронирования (без владельца) может удалить любой авторизованный сотрудник.
func (s *Service) Delete(ctx context.Context, reservationID int64, req *models.DeleteReservationRequest) error {
	s.logger.Info("Delete: deleting reservation id=%d by user=%d", reservationID, req.UserID)

	reservation, err := s.reservationRepo.GetByID(ctx, reservationID)
	if err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			s.logger.Warn("Delete: reservation id=%d not found", reservationID)
			return ErrReservationNotFound
		}
		s.logger.Error("Delete: repository error for reservation id=%d: %v", reservationID, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	if !reservation.IsWalkIn() && *reservation.UserID != req.UserID {
		s.logger.Warn("Delete: access denied for user=%d to reservation id=%d", req.UserID, reservationID)
		return ErrAccessDenied
	}

	if err := s.reservationRepo.Delete(ctx, reservationID); err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			s.logger.Warn("Delete: reservation id=%d not found during deletion", reservationID)
			return ErrReservationNotFound
		}
		s.logger.Error("Delete: repository error for reservation id=%d: %v", reservationID, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: successfully deleted reservation id=%d", reservationID)
	return nil
}

// MarkPaid отмечает бронирование как оплаченное
func (s *Service) MarkPaid(ctx context.Context, reservationID int64) error {
	s.logger.Info("MarkPaid: marking reservation id=%d as paid", reservationID)

	if err := s.reservationRepo.MarkPaid(ctx, reservationID); err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			s.logger.Warn("MarkPaid: reservation id=%d not found", reservationID)
			return ErrReservationNotFound
		}
		s.logger.Error("MarkPaid: repository error for reservation id=%d: %v", reservationID, err)
		return fmt.Errorf("%w: MarkPaid - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("MarkPaid: successfully marked reservation id=%d as paid", reservationID)
	return nil
}
