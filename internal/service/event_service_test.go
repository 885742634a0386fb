package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"ticketing/internal/models"
	"ticketing/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// --- Mock EventRepository ---

type mockEventRepo struct {
	db              *gorm.DB
	createFn        func(ctx context.Context, event *models.Event) error
	findByIDFn      func(ctx context.Context, id uint) (*models.Event, error)
	findForUpdateFn func(ctx context.Context, tx *gorm.DB, id uint) (*models.Event, error)
	findAllFn       func(ctx context.Context, filter repository.EventFilter) ([]models.Event, error)
	saveFn          func(ctx context.Context, tx *gorm.DB, event *models.Event) error
	deleteFn        func(ctx context.Context, id uint) error
}

func (m *mockEventRepo) Create(ctx context.Context, event *models.Event) error {
	return m.createFn(ctx, event)
}
func (m *mockEventRepo) FindByID(ctx context.Context, id uint) (*models.Event, error) {
	return m.findByIDFn(ctx, id)
}
func (m *mockEventRepo) FindByIDForUpdate(ctx context.Context, tx *gorm.DB, id uint) (*models.Event, error) {
	return m.findForUpdateFn(ctx, tx, id)
}
func (m *mockEventRepo) FindAll(ctx context.Context, filter repository.EventFilter) ([]models.Event, error) {
	return m.findAllFn(ctx, filter)
}
func (m *mockEventRepo) Save(ctx context.Context, tx *gorm.DB, event *models.Event) error {
	return m.saveFn(ctx, tx, event)
}
func (m *mockEventRepo) Delete(ctx context.Context, id uint) error {
	return m.deleteFn(ctx, id)
}
func (m *mockEventRepo) DecrementSeats(ctx context.Context, tx *gorm.DB, eventID uint, quantity int) error {
	return nil
}
func (m *mockEventRepo) RestoreSeats(ctx context.Context, tx *gorm.DB, eventID uint, quantity int) error {
	return nil
}
func (m *mockEventRepo) GetDB() *gorm.DB { return m.db }

// --- Tests ---

func sampleEvent() *models.Event {
	return &models.Event{
		Title:    "Jazz Night at the Riverside",
		Date:     time.Date(2026, 10, 15, 0, 0, 0, 0, time.UTC),
		Time:     "19:30",
		Location: "Riverside Hall",
		Capacity: 120,
		Price:    750,
		Category: "music",
	}
}

func TestCreateEvent_Defaults(t *testing.T) {
	repo := &mockEventRepo{
		createFn: func(ctx context.Context, event *models.Event) error {
			event.ID = 1
			return nil
		},
	}

	svc := NewEventService(repo, nil)
	event := sampleEvent()

	err := svc.CreateEvent(context.Background(), event)

	require.NoError(t, err)
	assert.Equal(t, uint(1), event.ID)
	assert.Equal(t, 120, event.AvailableSeats, "new event starts fully available")
	assert.Equal(t, 1.0, event.DynamicPricingFactor)
	assert.Equal(t, models.EventUpcoming, event.Status)
}

func TestCreateEvent_KeepsExplicitFactor(t *testing.T) {
	repo := &mockEventRepo{
		createFn: func(ctx context.Context, event *models.Event) error { return nil },
	}

	svc := NewEventService(repo, nil)
	event := sampleEvent()
	event.DynamicPricingFactor = 1.5

	require.NoError(t, svc.CreateEvent(context.Background(), event))
	assert.Equal(t, 1.5, event.DynamicPricingFactor)
}

func TestCreateEvent_InvalidCapacity(t *testing.T) {
	svc := NewEventService(&mockEventRepo{}, nil)

	event := sampleEvent()
	event.Capacity = 0

	err := svc.CreateEvent(context.Background(), event)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestCreateEvent_NegativePrice(t *testing.T) {
	svc := NewEventService(&mockEventRepo{}, nil)

	event := sampleEvent()
	event.Price = -1

	err := svc.CreateEvent(context.Background(), event)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestCreateEvent_RepoError(t *testing.T) {
	repo := &mockEventRepo{
		createFn: func(ctx context.Context, event *models.Event) error {
			return errors.New("db connection failed")
		},
	}

	svc := NewEventService(repo, nil)
	err := svc.CreateEvent(context.Background(), sampleEvent())

	assert.ErrorIs(t, err, ErrTransient)
}

func TestGetEvent_NotFound(t *testing.T) {
	repo := &mockEventRepo{
		findByIDFn: func(ctx context.Context, id uint) (*models.Event, error) {
			return nil, gorm.ErrRecordNotFound
		},
	}

	svc := NewEventService(repo, nil)
	event, err := svc.GetEvent(context.Background(), 999)

	assert.ErrorIs(t, err, ErrEventNotFound)
	assert.Nil(t, event)
}

func TestApplyCapacityChange(t *testing.T) {
	// Growth adds the delta to availability.
	event := &models.Event{Capacity: 10, AvailableSeats: 6}
	applyCapacityChange(event, 15)
	assert.Equal(t, 15, event.Capacity)
	assert.Equal(t, 11, event.AvailableSeats)

	// Shrink below booked seats floors availability at zero.
	event = &models.Event{Capacity: 10, AvailableSeats: 2}
	applyCapacityChange(event, 5)
	assert.Equal(t, 5, event.Capacity)
	assert.Equal(t, 0, event.AvailableSeats)

	// No-op delta.
	event = &models.Event{Capacity: 10, AvailableSeats: 4}
	applyCapacityChange(event, 10)
	assert.Equal(t, 4, event.AvailableSeats)
}

func TestUpdateEvent_CapacityAdjustsAvailability(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectBegin()
	mock.ExpectCommit()

	var saved *models.Event
	repo := &mockEventRepo{
		db: db,
		findForUpdateFn: func(ctx context.Context, tx *gorm.DB, id uint) (*models.Event, error) {
			return &models.Event{ID: id, Capacity: 10, AvailableSeats: 6}, nil
		},
		saveFn: func(ctx context.Context, tx *gorm.DB, event *models.Event) error {
			saved = event
			return nil
		},
	}

	svc := NewEventService(repo, nil)
	newCapacity := 14
	event, err := svc.UpdateEvent(context.Background(), 1, UpdateEventInput{Capacity: &newCapacity})

	require.NoError(t, err)
	assert.Equal(t, 14, event.Capacity)
	assert.Equal(t, 10, event.AvailableSeats)
	require.NotNil(t, saved)
	assert.Equal(t, 10, saved.AvailableSeats)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateEvent_CapacityShrinkClampsAtZero(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectBegin()
	mock.ExpectCommit()

	repo := &mockEventRepo{
		db: db,
		findForUpdateFn: func(ctx context.Context, tx *gorm.DB, id uint) (*models.Event, error) {
			return &models.Event{ID: id, Capacity: 10, AvailableSeats: 2}, nil
		},
		saveFn: func(ctx context.Context, tx *gorm.DB, event *models.Event) error { return nil },
	}

	svc := NewEventService(repo, nil)
	newCapacity := 5
	event, err := svc.UpdateEvent(context.Background(), 1, UpdateEventInput{Capacity: &newCapacity})

	require.NoError(t, err)
	assert.Equal(t, 5, event.Capacity)
	assert.Equal(t, 0, event.AvailableSeats)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateEvent_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectBegin()
	mock.ExpectRollback()

	repo := &mockEventRepo{
		db: db,
		findForUpdateFn: func(ctx context.Context, tx *gorm.DB, id uint) (*models.Event, error) {
			return nil, gorm.ErrRecordNotFound
		},
	}

	svc := NewEventService(repo, nil)
	title := "renamed"
	event, err := svc.UpdateEvent(context.Background(), 999, UpdateEventInput{Title: &title})

	assert.ErrorIs(t, err, ErrEventNotFound)
	assert.Nil(t, event)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateEvent_InvalidCapacity(t *testing.T) {
	svc := NewEventService(&mockEventRepo{}, nil)

	zero := 0
	_, err := svc.UpdateEvent(context.Background(), 1, UpdateEventInput{Capacity: &zero})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestDeleteEvent_NotFound(t *testing.T) {
	repo := &mockEventRepo{
		deleteFn: func(ctx context.Context, id uint) error { return gorm.ErrRecordNotFound },
	}

	svc := NewEventService(repo, nil)
	err := svc.DeleteEvent(context.Background(), 999)

	assert.ErrorIs(t, err, ErrEventNotFound)
}
