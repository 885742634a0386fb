package repository

import (
	"context"

	"ticketing/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type EventFilter struct {
	Status   *models.EventStatus
	Category string
}

type EventRepository interface {
	Create(ctx context.Context, event *models.Event) error
	FindByID(ctx context.Context, id uint) (*models.Event, error)
	FindByIDForUpdate(ctx context.Context, tx *gorm.DB, id uint) (*models.Event, error)
	FindAll(ctx context.Context, filter EventFilter) ([]models.Event, error)
	Save(ctx context.Context, tx *gorm.DB, event *models.Event) error
	Delete(ctx context.Context, id uint) error
	DecrementSeats(ctx context.Context, tx *gorm.DB, eventID uint, quantity int) error
	RestoreSeats(ctx context.Context, tx *gorm.DB, eventID uint, quantity int) error
	GetDB() *gorm.DB
}

type eventRepository struct {
	db *gorm.DB
}

func NewEventRepository(db *gorm.DB) EventRepository {
	return &eventRepository{db: db}
}

func (r *eventRepository) GetDB() *gorm.DB {
	return r.db
}

func (r *eventRepository) Create(ctx context.Context, event *models.Event) error {
	return r.db.WithContext(ctx).Create(event).Error
}

func (r *eventRepository) FindByID(ctx context.Context, id uint) (*models.Event, error) {
	var event models.Event
	if err := r.db.WithContext(ctx).First(&event, id).Error; err != nil {
		return nil, err
	}
	return &event, nil
}

// FindByIDForUpdate acquires a row-level lock on the event within the given
// transaction. Concurrent reservations against the same event serialize here.
func (r *eventRepository) FindByIDForUpdate(ctx context.Context, tx *gorm.DB, id uint) (*models.Event, error) {
	var event models.Event
	if err := tx.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&event, id).Error; err != nil {
		return nil, err
	}
	return &event, nil
}

func (r *eventRepository) FindAll(ctx context.Context, filter EventFilter) ([]models.Event, error) {
	var events []models.Event
	q := r.db.WithContext(ctx)
	if filter.Status != nil {
		q = q.Where("status = ?", *filter.Status)
	}
	if filter.Category != "" {
		q = q.Where("category = ?", filter.Category)
	}
	if err := q.Order("date ASC, time ASC").Find(&events).Error; err != nil {
		return nil, err
	}
	return events, nil
}

func (r *eventRepository) Save(ctx context.Context, tx *gorm.DB, event *models.Event) error {
	return tx.WithContext(ctx).Save(event).Error
}

func (r *eventRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.Event{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *eventRepository) DecrementSeats(ctx context.Context, tx *gorm.DB, eventID uint, quantity int) error {
	return tx.WithContext(ctx).
		Model(&models.Event{}).
		Where("id = ?", eventID).
		UpdateColumn("available_seats", gorm.Expr("available_seats - ?", quantity)).Error
}

// RestoreSeats returns a cancelled booking's seats to the pool, clamped at
// capacity so prior accounting drift can never push the count above it.
func (r *eventRepository) RestoreSeats(ctx context.Context, tx *gorm.DB, eventID uint, quantity int) error {
	return tx.WithContext(ctx).
		Model(&models.Event{}).
		Where("id = ?", eventID).
		UpdateColumn("available_seats", gorm.Expr("LEAST(capacity, available_seats + ?)", quantity)).Error
}
