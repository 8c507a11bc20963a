package get_day_schedule

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gzelashvili/PlayZone-ReservationService/internal/domain"
)

type fakeReservationRepo struct {
	reservations []*domain.Reservation
}

func (f *fakeReservationRepo) ListWithFilter(_ context.Context, _ domain.ResourceReservationsFilter) ([]*domain.Reservation, error) {
	return f.reservations, nil
}

type fakeResourceRepo struct {
	resources []*domain.Resource
}

func (f *fakeResourceRepo) ListByBranch(_ context.Context, branchID int64) ([]*domain.Resource, error) {
	found := make([]*domain.Resource, 0)
	for _, res := range f.resources {
		if res.BranchID == branchID {
			found = append(found, res)
		}
	}
	return found, nil
}

func (f *fakeResourceRepo) ListByIDs(_ context.Context, ids []int64) ([]*domain.Resource, error) {
	found := make([]*domain.Resource, 0, len(ids))
	for _, res := range f.resources {
		for _, id := range ids {
			if res.ID == id {
				found = append(found, res)
			}
		}
	}
	return found, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newTestUseCase(reservations *fakeReservationRepo) *UseCase {
	resources := &fakeResourceRepo{resources: []*domain.Resource{
		{ID: 1, BranchID: 7, Name: "Station 1"},
		{ID: 2, BranchID: 7, Name: "Station 2"},
		{ID: 3, BranchID: 9, Name: "Other branch station"},
	}}

	// Окно 12:00 - 24:00, слоты по 15 минут
	return NewUseCase(reservations, resources, nopLogger{}, 720, 1440, 15)
}

func testDate() time.Time {
	return time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC)
}

func slotByStart(t *testing.T, slots []Slot, startMinute int) Slot {
	t.Helper()
	for _, slot := range slots {
		if slot.StartMinute == startMinute {
			return slot
		}
	}
	t.Fatalf("slot starting at %d not found", startMinute)
	return Slot{}
}

func TestExecute_SingleResourceOccupancy(t *testing.T) {
	reservations := &fakeReservationRepo{reservations: []*domain.Reservation{
		{ID: 10, ResourceID: 1, BranchID: 7, StartMinute: 840, EndMinute: 900}, // 14:00 - 15:00
	}}
	uc := newTestUseCase(reservations)

	resp, err := uc.Execute(context.Background(), &Request{
		BranchID:    7,
		ResourceIDs: []int64{1},
		Date:        testDate(),
	})
	require.NoError(t, err)
	require.Len(t, resp.Slots, 48)

	assert.True(t, slotByStart(t, resp.Slots, 825).Free)   // 13:45, касание границы
	assert.False(t, slotByStart(t, resp.Slots, 840).Free)  // 14:00
	assert.False(t, slotByStart(t, resp.Slots, 885).Free)  // 14:45
	assert.True(t, slotByStart(t, resp.Slots, 900).Free)   // 15:00
	assert.Equal(t, "14:00 - 14:15", slotByStart(t, resp.Slots, 840).Label)
}

func TestExecute_PoolSlotFreeWhileAnyResourceFree(t *testing.T) {
	reservations := &fakeReservationRepo{reservations: []*domain.Reservation{
		{ID: 10, ResourceID: 1, BranchID: 7, StartMinute: 840, EndMinute: 900},
	}}
	uc := newTestUseCase(reservations)

	resp, err := uc.Execute(context.Background(), &Request{
		BranchID:    7,
		ResourceIDs: []int64{1, 2},
		Date:        testDate(),
	})
	require.NoError(t, err)

	// Ресурс 2 свободен, поэтому пул свободен весь день
	for _, slot := range resp.Slots {
		assert.True(t, slot.Free, "slot %s expected free", slot.Label)
	}
}

func TestExecute_EmptyResourceListUsesWholeBranch(t *testing.T) {
	reservations := &fakeReservationRepo{reservations: []*domain.Reservation{
		{ID: 10, ResourceID: 1, BranchID: 7, StartMinute: 840, EndMinute: 900},
		{ID: 11, ResourceID: 2, BranchID: 7, StartMinute: 840, EndMinute: 900},
	}}
	uc := newTestUseCase(reservations)

	resp, err := uc.Execute(context.Background(), &Request{
		BranchID: 7,
		Date:     testDate(),
	})
	require.NoError(t, err)

	assert.ElementsMatch(t, []int64{1, 2}, resp.ResourceIDs)
	assert.False(t, slotByStart(t, resp.Slots, 840).Free) // оба ресурса заняты
	assert.True(t, slotByStart(t, resp.Slots, 900).Free)
}

func TestExecute_BranchWithoutResources(t *testing.T) {
	uc := newTestUseCase(&fakeReservationRepo{})

	_, err := uc.Execute(context.Background(), &Request{
		BranchID: 100,
		Date:     testDate(),
	})
	assert.ErrorIs(t, err, ErrBranchHasNoResources)
}

func TestExecute_ResourceFromAnotherBranch(t *testing.T) {
	uc := newTestUseCase(&fakeReservationRepo{})

	_, err := uc.Execute(context.Background(), &Request{
		BranchID:    7,
		ResourceIDs: []int64{3},
		Date:        testDate(),
	})
	assert.ErrorIs(t, err, ErrResourceBranchMismatch)
}

func TestExecute_UnknownResource(t *testing.T) {
	uc := newTestUseCase(&fakeReservationRepo{})

	_, err := uc.Execute(context.Background(), &Request{
		BranchID:    7,
		ResourceIDs: []int64{42},
		Date:        testDate(),
	})
	assert.ErrorIs(t, err, ErrResourceNotFound)
}
