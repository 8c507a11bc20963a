// Package occupancy содержит фоновый трекер занятости ресурсов.
//
// Трекер держит в памяти бронирования текущего дня по отслеживаемым
// филиалам, раз в refreshInterval перечитывает их из БД и раз в
// tickInterval пересчитывает, какие ресурсы заняты и сколько секунд
// осталось до конца активного бронирования. Когда активное бронирование
// заканчивается, владельцу отправляется письмо ровно один раз - факт
// завершения определяется сравнением с активными бронированиями
// предыдущего тика, а не по остатку времени.
package occupancy

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/gzelashvili/PlayZone-ReservationService/internal/domain"
	"github.com/gzelashvili/PlayZone-ReservationService/internal/service/occupancy/models"
	"github.com/gzelashvili/PlayZone-ReservationService/pkg/types"
)

// Tracker фоновый трекер занятости ресурсов по филиалам
type Tracker struct {
	reservationRepo ReservationLister
	resourceRepo    ResourceLister
	mail            MailClient
	clock           Clock
	logger          Logger

	tickInterval    time.Duration
	refreshInterval time.Duration

	mu       sync.Mutex
	branches map[int64]*branchState
}

// branchState состояние одного отслеживаемого филиала
type branchState struct {
	resources    []*domain.Resource
	reservations []*domain.Reservation
	refreshedAt  time.Time
	degraded     bool

	// Активные бронирования предыдущего тика: resourceID -> бронирование
	prevActive map[int64]*domain.Reservation
}

// NewTracker создает новый экземпляр трекера занятости
func NewTracker(
	reservationRepo ReservationLister,
	resourceRepo ResourceLister,
	mail MailClient,
	clock Clock,
	logger Logger,
	tickInterval time.Duration,
	refreshInterval time.Duration,
) *Tracker {
	return &Tracker{
		reservationRepo: reservationRepo,
		resourceRepo:    resourceRepo,
		mail:            mail,
		clock:           clock,
		logger:          logger,
		tickInterval:    tickInterval,
		refreshInterval: refreshInterval,
		branches:        make(map[int64]*branchState),
	}
}

// Run запускает фоновые циклы обновления и пересчета.
// Блокируется до отмены контекста.
func (t *Tracker) Run(ctx context.Context) {
	tick := time.NewTicker(t.tickInterval)
	defer tick.Stop()

	refresh := time.NewTicker(t.refreshInterval)
	defer refresh.Stop()

	t.logger.Info("Tracker: started, tick=%s, refresh=%s", t.tickInterval, t.refreshInterval)

	for {
		select {
		case <-ctx.Done():
			t.logger.Info("Tracker: stopped")
			return
		case <-refresh.C:
			t.refreshAll(ctx)
		case <-tick.C:
			t.tick(ctx)
		}
	}
}

// Track добавляет филиал в отслеживание и сразу загружает его состояние
func (t *Tracker) Track(ctx context.Context, branchID int64) error {
	t.mu.Lock()
	_, tracked := t.branches[branchID]
	t.mu.Unlock()

	if tracked {
		return nil
	}

	return t.refreshBranch(ctx, branchID)
}

// Snapshot возвращает текущий срез занятости филиала.
// Неотслеживаемый филиал загружается синхронно при первом запросе.
func (t *Tracker) Snapshot(ctx context.Context, branchID int64) (*models.BranchSnapshot, error) {
	if err := t.Track(ctx, branchID); err != nil {
		return nil, err
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	st, ok := t.branches[branchID]
	if !ok {
		return nil, ErrBranchNotTracked
	}

	now := t.clock.Now()
	nowSeconds := secondsOfDay(now)

	snapshot := &models.BranchSnapshot{
		BranchID:    branchID,
		GeneratedAt: now,
		RefreshedAt: st.refreshedAt,
		Degraded:    st.degraded,
		Total:       len(st.resources),
		Resources:   make([]models.ResourceStatus, 0, len(st.resources)),
	}

	for _, resource := range st.resources {
		status := models.ResourceStatus{
			ResourceID:   resource.ID,
			ResourceName: resource.Name,
		}

		if active := activeReservation(st.reservations, resource.ID, nowSeconds); active != nil {
			paid := active.IsPaid
			status.IsBusy = true
			status.ReservationID = &active.ID
			status.UserID = active.UserID
			status.IsPaid = &paid
			status.RemainingSeconds = active.RemainingSeconds(nowSeconds)
			status.EndsAt = types.FormatClockSeconds(active.EndMinute * 60)
		} else {
			snapshot.Available++
		}

		snapshot.Resources = append(snapshot.Resources, status)
	}

	return snapshot, nil
}

// refreshAll перечитывает из БД состояние всех отслеживаемых филиалов
func (t *Tracker) refreshAll(ctx context.Context) {
	t.mu.Lock()
	branchIDs := make([]int64, 0, len(t.branches))
	for id := range t.branches {
		branchIDs = append(branchIDs, id)
	}
	t.mu.Unlock()

	for _, branchID := range branchIDs {
		if err := t.refreshBranch(ctx, branchID); err != nil {
			t.logger.Warn("Tracker: refresh failed for branch=%d, keeping last known state: %v", branchID, err)
		}
	}
}

// refreshBranch загружает ресурсы филиала и бронирования на сегодня.
// При ошибке уже отслеживаемый филиал помечается degraded, но его
// последнее известное состояние сохраняется.
func (t *Tracker) refreshBranch(ctx context.Context, branchID int64) error {
	today := dateOnly(t.clock.Now())

	resources, err := t.resourceRepo.ListByBranch(ctx, branchID)
	if err != nil {
		t.markDegraded(branchID)
		return fmt.Errorf("%w: refreshBranch - list resources for branch=%d: %v", ErrInternal, branchID, err)
	}

	if len(resources) == 0 {
		t.markDegraded(branchID)
		return ErrNoResources
	}

	resourceIDs := make([]int64, 0, len(resources))
	for _, res := range resources {
		resourceIDs = append(resourceIDs, res.ID)
	}

	reservations, err := t.reservationRepo.ListWithFilter(ctx, domain.ResourceReservationsFilter{
		ResourceIDs: resourceIDs,
		Date:        &today,
	})
	if err != nil {
		t.markDegraded(branchID)
		return fmt.Errorf("%w: refreshBranch - list reservations for branch=%d: %v", ErrInternal, branchID, err)
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	st, ok := t.branches[branchID]
	if !ok {
		st = &branchState{prevActive: make(map[int64]*domain.Reservation)}
		t.branches[branchID] = st
	}

	st.resources = resources
	st.reservations = reservations
	st.refreshedAt = t.clock.Now()
	st.degraded = false

	return nil
}

// tick пересчитывает активные бронирования и отправляет уведомления
// о только что завершившихся
func (t *Tracker) tick(ctx context.Context) {
	nowSeconds := secondsOfDay(t.clock.Now())

	type finishedReservation struct {
		reservation *domain.Reservation
	}

	var finished []finishedReservation

	t.mu.Lock()
	for _, st := range t.branches {
		active := make(map[int64]*domain.Reservation, len(st.resources))
		for _, resource := range st.resources {
			if res := activeReservation(st.reservations, resource.ID, nowSeconds); res != nil {
				active[resource.ID] = res
			}
		}

		for resourceID, prev := range st.prevActive {
			cur := active[resourceID]
			if cur != nil && cur.ID == prev.ID {
				continue
			}
			// Бронирование перестало быть активным. Уведомляем, только если
			// оно действительно закончилось, а не было удалено из БД.
			if prev.RemainingSeconds(nowSeconds) > 0 {
				continue
			}
			if !containsReservation(st.reservations, prev.ID) {
				continue
			}
			finished = append(finished, finishedReservation{reservation: prev})
		}

		st.prevActive = active
	}
	t.mu.Unlock()

	for _, f := range finished {
		t.notifyFinished(ctx, f.reservation)
	}
}

// notifyFinished отправляет письмо о завершении бронирования.
// Walk-in бронирования пропускаются, ошибки отправки не фатальны.
func (t *Tracker) notifyFinished(ctx context.Context, res *domain.Reservation) {
	if res.IsWalkIn() {
		t.logger.Info("Tracker: reservation id=%d finished (walk-in, no mail)", res.ID)
		return
	}

	startLabel := types.MinuteOfDay(res.StartMinute).String()
	endLabel := types.MinuteOfDay(res.EndMinute).String()

	if err := t.mail.SendReservationFinished(ctx, *res.UserID, startLabel, endLabel); err != nil {
		t.logger.Warn("Tracker: failed to send finished mail for reservation id=%d, user=%d: %v",
			res.ID, *res.UserID, err)
		return
	}

	t.logger.Info("Tracker: reservation id=%d finished, mail sent to user=%d", res.ID, *res.UserID)
}

func (t *Tracker) markDegraded(branchID int64) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if st, ok := t.branches[branchID]; ok {
		st.degraded = true
	}
}

// activeReservation возвращает бронирование ресурса, активное в nowSeconds
func activeReservation(reservations []*domain.Reservation, resourceID int64, nowSeconds int) *domain.Reservation {
	for _, res := range reservations {
		if res.ResourceID == resourceID && res.ActiveAt(nowSeconds) {
			return res
		}
	}
	return nil
}

func containsReservation(reservations []*domain.Reservation, id int64) bool {
	for _, res := range reservations {
		if res.ID == id {
			return true
		}
	}
	return false
}

// secondsOfDay возвращает количество секунд от местной полуночи
func secondsOfDay(t time.Time) int {
	return t.Hour()*3600 + t.Minute()*60 + t.Second()
}

// dateOnly обнуляет время, оставляя только дату
func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
