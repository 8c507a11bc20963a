package get_resource_reservations

import (
	"context"
	"time"

	"github.com/gzelashvili/PlayZone-ReservationService/internal/service/reservations/models"
)

type ReservationService interface {
	ListForResourceDate(ctx context.Context, resourceID int64, date time.Time) (*models.ReservationListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
