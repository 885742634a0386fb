package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"ticketing/internal/models"
	"ticketing/internal/repository"
	"ticketing/pkg/rabbitmq"

	"gorm.io/gorm"
)

type UpdateEventInput struct {
	Title                *string
	Description          *string
	Date                 *time.Time
	Time                 *string
	Location             *string
	Capacity             *int
	Price                *float64
	DynamicPricingFactor *float64
	Organizer            *string
	Category             *string
	ImageURL             *string
	Status               *models.EventStatus
}

type EventService interface {
	CreateEvent(ctx context.Context, event *models.Event) error
	GetEvent(ctx context.Context, id uint) (*models.Event, error)
	ListEvents(ctx context.Context, filter repository.EventFilter) ([]models.Event, error)
	UpdateEvent(ctx context.Context, id uint, in UpdateEventInput) (*models.Event, error)
	DeleteEvent(ctx context.Context, id uint) error
}

type eventService struct {
	repo      repository.EventRepository
	publisher *rabbitmq.Publisher
}

func NewEventService(repo repository.EventRepository, publisher *rabbitmq.Publisher) EventService {
	return &eventService{repo: repo, publisher: publisher}
}

func (s *eventService) CreateEvent(ctx context.Context, event *models.Event) error {
	if event.Capacity < 1 {
		return fmt.Errorf("%w: capacity must be at least 1", ErrInvalidInput)
	}
	if event.Price < 0 {
		return fmt.Errorf("%w: price must not be negative", ErrInvalidInput)
	}

	// A new event starts fully available.
	event.AvailableSeats = event.Capacity
	if event.DynamicPricingFactor <= 0 {
		event.DynamicPricingFactor = 1.0
	}
	if event.Status == "" {
		event.Status = models.EventUpcoming
	}
	if !validEventStatus(event.Status) {
		return fmt.Errorf("%w: unknown status %q", ErrInvalidInput, event.Status)
	}

	if err := s.repo.Create(ctx, event); err != nil {
		return transient("create event", err)
	}

	if s.publisher != nil {
		_ = s.publisher.Publish("event.created", event)
	}
	return nil
}

func (s *eventService) GetEvent(ctx context.Context, id uint) (*models.Event, error) {
	event, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEventNotFound
		}
		return nil, transient("find event", err)
	}
	return event, nil
}

func (s *eventService) ListEvents(ctx context.Context, filter repository.EventFilter) ([]models.Event, error) {
	return s.repo.FindAll(ctx, filter)
}

func (s *eventService) UpdateEvent(ctx context.Context, id uint, in UpdateEventInput) (*models.Event, error) {
	if in.Capacity != nil && *in.Capacity < 1 {
		return nil, fmt.Errorf("%w: capacity must be at least 1", ErrInvalidInput)
	}
	if in.Price != nil && *in.Price < 0 {
		return nil, fmt.Errorf("%w: price must not be negative", ErrInvalidInput)
	}
	if in.DynamicPricingFactor != nil && *in.DynamicPricingFactor <= 0 {
		return nil, fmt.Errorf("%w: dynamic_pricing_factor must be positive", ErrInvalidInput)
	}
	if in.Status != nil && !validEventStatus(*in.Status) {
		return nil, fmt.Errorf("%w: unknown status %q", ErrInvalidInput, *in.Status)
	}

	var result *models.Event

	err := s.repo.GetDB().WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// Lock so the capacity adjustment cannot interleave with a
		// reservation reading the seat count.
		event, err := s.repo.FindByIDForUpdate(ctx, tx, id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrEventNotFound
			}
			return transient("lock event", err)
		}

		if in.Capacity != nil {
			applyCapacityChange(event, *in.Capacity)
		}
		if in.Title != nil {
			event.Title = *in.Title
		}
		if in.Description != nil {
			event.Description = *in.Description
		}
		if in.Date != nil {
			event.Date = *in.Date
		}
		if in.Time != nil {
			event.Time = *in.Time
		}
		if in.Location != nil {
			event.Location = *in.Location
		}
		if in.Price != nil {
			event.Price = *in.Price
		}
		if in.DynamicPricingFactor != nil {
			event.DynamicPricingFactor = *in.DynamicPricingFactor
		}
		if in.Organizer != nil {
			event.Organizer = *in.Organizer
		}
		if in.Category != nil {
			event.Category = *in.Category
		}
		if in.ImageURL != nil {
			event.ImageURL = *in.ImageURL
		}
		if in.Status != nil {
			event.Status = *in.Status
		}

		if err := s.repo.Save(ctx, tx, event); err != nil {
			return transient("update event", err)
		}

		result = event
		return nil
	})
	if err != nil {
		return nil, err
	}

	if s.publisher != nil {
		_ = s.publisher.Publish("event.updated", result)
	}
	return result, nil
}

func (s *eventService) DeleteEvent(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrEventNotFound
		}
		return transient("delete event", err)
	}

	if s.publisher != nil {
		_ = s.publisher.Publish("event.deleted", map[string]uint{"id": id})
	}
	return nil
}

// applyCapacityChange moves available seats by the capacity delta so that
// capacity - confirmed quantity stays equal to available seats. Shrinking
// below the booked count floors availability at zero.
func applyCapacityChange(event *models.Event, newCapacity int) {
	delta := newCapacity - event.Capacity
	event.Capacity = newCapacity
	event.AvailableSeats += delta
	if event.AvailableSeats < 0 {
		event.AvailableSeats = 0
	}
}

func validEventStatus(s models.EventStatus) bool {
	switch s {
	case models.EventUpcoming, models.EventOngoing, models.EventCompleted, models.EventCancelled:
		return true
	}
	return false
}
