package get_live_status

import (
	"context"

	"github.com/gzelashvili/PlayZone-ReservationService/internal/service/occupancy/models"
)

type OccupancyTracker interface {
	Snapshot(ctx context.Context, branchID int64) (*models.BranchSnapshot, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
