package quick_reserve

import (
	"context"

	quickReserve "github.com/gzelashvili/PlayZone-ReservationService/internal/usecase/quick_reserve"
)

type QuickReserveUseCase interface {
	Execute(ctx context.Context, req *quickReserve.Request) (*quickReserve.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
