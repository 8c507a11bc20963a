package occupancy

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gzelashvili/PlayZone-ReservationService/internal/domain"
	"github.com/gzelashvili/PlayZone-ReservationService/pkg/ptr"
)

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) advance(d time.Duration) { c.now = c.now.Add(d) }

type fakeReservationLister struct {
	reservations []*domain.Reservation
	err          error
}

func (f *fakeReservationLister) ListWithFilter(_ context.Context, _ domain.ResourceReservationsFilter) ([]*domain.Reservation, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.reservations, nil
}

type fakeResourceLister struct {
	resources []*domain.Resource
	err       error
}

func (f *fakeResourceLister) ListByBranch(_ context.Context, _ int64) ([]*domain.Resource, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.resources, nil
}

type sentMail struct {
	userID     int64
	startLabel string
	endLabel   string
}

type fakeMailClient struct {
	sent []sentMail
	err  error
}

func (f *fakeMailClient) SendReservationFinished(_ context.Context, userID int64, startLabel, endLabel string) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, sentMail{userID: userID, startLabel: startLabel, endLabel: endLabel})
	return nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newTestTracker(clock Clock, reservations *fakeReservationLister, resources *fakeResourceLister, mail *fakeMailClient) *Tracker {
	return NewTracker(reservations, resources, mail, clock, nopLogger{}, time.Second, 20*time.Second)
}

func branchResources() []*domain.Resource {
	return []*domain.Resource{
		{ID: 1, BranchID: 7, Name: "Station 1"},
		{ID: 2, BranchID: 7, Name: "Station 2"},
	}
}

func reservationAt(id, resourceID int64, startMinute, endMinute int, userID *int64) *domain.Reservation {
	return &domain.Reservation{
		ID:          id,
		ResourceID:  resourceID,
		BranchID:    7,
		UserID:      userID,
		Date:        time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC),
		StartMinute: startMinute,
		EndMinute:   endMinute,
	}
}

func TestSnapshot_BusyAndAvailableResources(t *testing.T) {
	clock := &fakeClock{now: time.Date(2026, 8, 30, 14, 30, 0, 0, time.UTC)}
	reservations := &fakeReservationLister{reservations: []*domain.Reservation{
		reservationAt(10, 1, 840, 900, ptr.Ptr(int64(42))), // 14:00 - 15:00
	}}
	resources := &fakeResourceLister{resources: branchResources()}
	mail := &fakeMailClient{}

	tracker := newTestTracker(clock, reservations, resources, mail)

	snapshot, err := tracker.Snapshot(context.Background(), 7)
	require.NoError(t, err)

	assert.Equal(t, int64(7), snapshot.BranchID)
	assert.Equal(t, 2, snapshot.Total)
	assert.Equal(t, 1, snapshot.Available)
	assert.False(t, snapshot.Degraded)
	require.Len(t, snapshot.Resources, 2)

	busy := snapshot.Resources[0]
	assert.Equal(t, int64(1), busy.ResourceID)
	assert.True(t, busy.IsBusy)
	require.NotNil(t, busy.ReservationID)
	assert.Equal(t, int64(10), *busy.ReservationID)
	require.NotNil(t, busy.UserID)
	assert.Equal(t, int64(42), *busy.UserID)
	assert.Equal(t, 1800, busy.RemainingSeconds)
	assert.Equal(t, "15:00:00", busy.EndsAt)

	free := snapshot.Resources[1]
	assert.Equal(t, int64(2), free.ResourceID)
	assert.False(t, free.IsBusy)
	assert.Nil(t, free.ReservationID)
	assert.Zero(t, free.RemainingSeconds)
}

func TestSnapshot_ReservationEndingAtMidnight(t *testing.T) {
	clock := &fakeClock{now: time.Date(2026, 8, 30, 23, 59, 49, 0, time.UTC)}
	reservations := &fakeReservationLister{reservations: []*domain.Reservation{
		reservationAt(11, 1, 1380, 1440, ptr.Ptr(int64(42))), // 23:00 - 24:00
	}}
	resources := &fakeResourceLister{resources: branchResources()}

	tracker := newTestTracker(clock, reservations, resources, &fakeMailClient{})

	snapshot, err := tracker.Snapshot(context.Background(), 7)
	require.NoError(t, err)

	busy := snapshot.Resources[0]
	assert.True(t, busy.IsBusy)
	assert.Equal(t, 11, busy.RemainingSeconds)
	assert.Equal(t, "00:00:00", busy.EndsAt)
}

func TestTick_SendsFinishedMailExactlyOnce(t *testing.T) {
	clock := &fakeClock{now: time.Date(2026, 8, 30, 14, 59, 59, 0, time.UTC)}
	reservations := &fakeReservationLister{reservations: []*domain.Reservation{
		reservationAt(10, 1, 840, 900, ptr.Ptr(int64(42))), // 14:00 - 15:00
	}}
	resources := &fakeResourceLister{resources: branchResources()}
	mail := &fakeMailClient{}

	tracker := newTestTracker(clock, reservations, resources, mail)
	ctx := context.Background()

	require.NoError(t, tracker.Track(ctx, 7))

	// Бронирование еще активно
	tracker.tick(ctx)
	assert.Empty(t, mail.sent)

	// Бронирование закончилось
	clock.advance(time.Second)
	tracker.tick(ctx)
	require.Len(t, mail.sent, 1)
	assert.Equal(t, int64(42), mail.sent[0].userID)
	assert.Equal(t, "14:00", mail.sent[0].startLabel)
	assert.Equal(t, "15:00", mail.sent[0].endLabel)

	// Повторные тики не должны отправлять письмо снова
	for i := 0; i < 10; i++ {
		clock.advance(time.Second)
		tracker.tick(ctx)
	}
	assert.Len(t, mail.sent, 1)
}

func TestTick_BackToBackReservationsNotifyEach(t *testing.T) {
	clock := &fakeClock{now: time.Date(2026, 8, 30, 14, 59, 59, 0, time.UTC)}
	reservations := &fakeReservationLister{reservations: []*domain.Reservation{
		reservationAt(10, 1, 840, 900, ptr.Ptr(int64(42))), // 14:00 - 15:00
		reservationAt(11, 1, 900, 960, ptr.Ptr(int64(43))), // 15:00 - 16:00
	}}
	resources := &fakeResourceLister{resources: branchResources()}
	mail := &fakeMailClient{}

	tracker := newTestTracker(clock, reservations, resources, mail)
	ctx := context.Background()

	require.NoError(t, tracker.Track(ctx, 7))
	tracker.tick(ctx)

	// Первое закончилось, второе сразу стало активным
	clock.advance(time.Second)
	tracker.tick(ctx)
	require.Len(t, mail.sent, 1)
	assert.Equal(t, int64(42), mail.sent[0].userID)

	// Второе заканчивается часом позже
	clock.advance(time.Hour)
	tracker.tick(ctx)
	require.Len(t, mail.sent, 2)
	assert.Equal(t, int64(43), mail.sent[1].userID)
}

func TestTick_WalkInFinishedWithoutMail(t *testing.T) {
	clock := &fakeClock{now: time.Date(2026, 8, 30, 14, 59, 59, 0, time.UTC)}
	reservations := &fakeReservationLister{reservations: []*domain.Reservation{
		reservationAt(10, 1, 840, 900, nil),
	}}
	resources := &fakeResourceLister{resources: branchResources()}
	mail := &fakeMailClient{}

	tracker := newTestTracker(clock, reservations, resources, mail)
	ctx := context.Background()

	require.NoError(t, tracker.Track(ctx, 7))
	tracker.tick(ctx)

	clock.advance(time.Second)
	tracker.tick(ctx)
	assert.Empty(t, mail.sent)
}

func TestTick_DeletedReservationDoesNotNotify(t *testing.T) {
	clock := &fakeClock{now: time.Date(2026, 8, 30, 14, 59, 59, 0, time.UTC)}
	reservations := &fakeReservationLister{reservations: []*domain.Reservation{
		reservationAt(10, 1, 840, 900, ptr.Ptr(int64(42))),
	}}
	resources := &fakeResourceLister{resources: branchResources()}
	mail := &fakeMailClient{}

	tracker := newTestTracker(clock, reservations, resources, mail)
	ctx := context.Background()

	require.NoError(t, tracker.Track(ctx, 7))
	tracker.tick(ctx)

	// Бронирование удалили, обновление из БД его больше не вернуло
	reservations.reservations = nil
	require.NoError(t, tracker.refreshBranch(ctx, 7))

	clock.advance(time.Second)
	tracker.tick(ctx)
	assert.Empty(t, mail.sent)
}

func TestRefresh_FailureKeepsLastKnownState(t *testing.T) {
	clock := &fakeClock{now: time.Date(2026, 8, 30, 14, 30, 0, 0, time.UTC)}
	reservations := &fakeReservationLister{reservations: []*domain.Reservation{
		reservationAt(10, 1, 840, 900, ptr.Ptr(int64(42))),
	}}
	resources := &fakeResourceLister{resources: branchResources()}

	tracker := newTestTracker(clock, reservations, resources, &fakeMailClient{})
	ctx := context.Background()

	require.NoError(t, tracker.Track(ctx, 7))

	reservations.err = errors.New("connection refused")
	err := tracker.refreshBranch(ctx, 7)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInternal)

	snapshot, err := tracker.Snapshot(ctx, 7)
	require.NoError(t, err)
	assert.True(t, snapshot.Degraded)
	assert.Equal(t, 2, snapshot.Total)
	assert.True(t, snapshot.Resources[0].IsBusy)
}

func TestSnapshot_UntrackedBranchLoadFailure(t *testing.T) {
	clock := &fakeClock{now: time.Date(2026, 8, 30, 14, 30, 0, 0, time.UTC)}
	resources := &fakeResourceLister{err: errors.New("connection refused")}

	tracker := newTestTracker(clock, &fakeReservationLister{}, resources, &fakeMailClient{})

	_, err := tracker.Snapshot(context.Background(), 7)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInternal)
}
