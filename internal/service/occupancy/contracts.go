package occupancy

import (
	"context"
	"time"

	"github.com/gzelashvili/PlayZone-ReservationService/internal/domain"
)

// ReservationLister интерфейс репозитория бронирований
type ReservationLister interface {
	ListWithFilter(ctx context.Context, filter domain.ResourceReservationsFilter) ([]*domain.Reservation, error)
}

// ResourceLister интерфейс репозитория ресурсов
type ResourceLister interface {
	ListByBranch(ctx context.Context, branchID int64) ([]*domain.Resource, error)
}

// MailClient интерфейс клиента почтового сервиса
type MailClient interface {
	SendReservationFinished(ctx context.Context, userID int64, startLabel, endLabel string) error
}

// Clock источник текущего времени, подменяется в тестах
type Clock interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

type realClock struct{}

func (realClock) Now() time.Time { return time.Now() }

// NewRealClock возвращает Clock поверх time.Now
func NewRealClock() Clock { return realClock{} }
