package quick_reserve

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gzelashvili/PlayZone-ReservationService/internal/domain"
)

type fakeReservationRepo struct {
	existing []*domain.Reservation
	created  []*domain.Reservation
	nextID   int64
}

func (f *fakeReservationRepo) Create(_ context.Context, res *domain.Reservation) (*domain.Reservation, error) {
	f.nextID++
	res.ID = f.nextID
	f.created = append(f.created, res)
	return res, nil
}

func (f *fakeReservationRepo) ListWithFilter(_ context.Context, _ domain.ResourceReservationsFilter) ([]*domain.Reservation, error) {
	return f.existing, nil
}

type fakeResourceRepo struct {
	resources []*domain.Resource
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

type fakeTxManager struct{}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fakeTimeProvider struct {
	now time.Time
}

func (f *fakeTimeProvider) Now() time.Time { return f.now }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newTestUseCase(repo *fakeReservationRepo, now time.Time) *UseCase {
	resources := &fakeResourceRepo{resources: []*domain.Resource{
		{ID: 1, BranchID: 7, Name: "Station 1"},
		{ID: 2, BranchID: 7, Name: "Station 2"},
	}}

	uc := NewUseCase(repo, resources, fakeTxManager{}, nopLogger{}, 15, 720, 1440)
	uc.timeProvider = &fakeTimeProvider{now: now}
	return uc
}

func validRequest() *Request {
	return &Request{
		BranchID:        7,
		ResourceIDs:     []int64{1},
		DurationMinutes: 60,
	}
}

func TestExecute_SnapsStartToNextGridBoundary(t *testing.T) {
	repo := &fakeReservationRepo{}
	// 14:07 -> ближайшая граница сетки 14:15
	uc := newTestUseCase(repo, time.Date(2026, 8, 30, 14, 7, 30, 0, time.UTC))

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, 855, resp.StartMinute) // 14:15
	assert.Equal(t, 915, resp.EndMinute)   // 15:15
	assert.Equal(t, "14:15", resp.StartTime)
	assert.Equal(t, "15:15", resp.EndTime)
	assert.Equal(t, time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC), resp.Date)
}

func TestExecute_ExactBoundaryIsNotShifted(t *testing.T) {
	repo := &fakeReservationRepo{}
	uc := newTestUseCase(repo, time.Date(2026, 8, 30, 14, 30, 0, 0, time.UTC))

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, 870, resp.StartMinute) // 14:30
	assert.Equal(t, 930, resp.EndMinute)
}

func TestExecute_PicksFreeResourceFromPool(t *testing.T) {
	repo := &fakeReservationRepo{existing: []*domain.Reservation{
		{ID: 100, ResourceID: 1, BranchID: 7, StartMinute: 840, EndMinute: 960},
	}}
	uc := newTestUseCase(repo, time.Date(2026, 8, 30, 14, 7, 0, 0, time.UTC))

	req := validRequest()
	req.ResourceIDs = []int64{1, 2}

	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, int64(2), resp.ResourceID)
}

func TestExecute_NoResourceAvailable(t *testing.T) {
	repo := &fakeReservationRepo{existing: []*domain.Reservation{
		{ID: 100, ResourceID: 1, BranchID: 7, StartMinute: 840, EndMinute: 960},
	}}
	uc := newTestUseCase(repo, time.Date(2026, 8, 30, 14, 7, 0, 0, time.UTC))

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrNoResourceAvailable)
	assert.Empty(t, repo.created)
}

func TestExecute_BeforeOpeningIsRejected(t *testing.T) {
	repo := &fakeReservationRepo{}
	// 09:00, окно открывается в 12:00
	uc := newTestUseCase(repo, time.Date(2026, 8, 30, 9, 0, 0, 0, time.UTC))

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrOutsideBusinessHours)
}

func TestExecute_RangePastClosingIsRejected(t *testing.T) {
	repo := &fakeReservationRepo{}
	// 23:30 + 60 минут вышло бы за полночь
	uc := newTestUseCase(repo, time.Date(2026, 8, 30, 23, 30, 0, 0, time.UTC))

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrOutsideBusinessHours)
}

func TestExecute_DurationMustMatchGrid(t *testing.T) {
	repo := &fakeReservationRepo{}
	uc := newTestUseCase(repo, time.Date(2026, 8, 30, 14, 0, 0, 0, time.UTC))

	req := validRequest()
	req.DurationMinutes = 50

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidInput)
}
