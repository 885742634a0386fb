package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"regexp"
	"strings"

	"ticketing/internal/models"
	"ticketing/internal/repository"
	"ticketing/pkg/rabbitmq"

	"gorm.io/gorm"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

type CreateBookingInput struct {
	Name     string
	Email    string
	Mobile   string
	Quantity int
}

func (in CreateBookingInput) validate() error {
	if in.Quantity < 1 {
		return fmt.Errorf("%w: quantity must be at least 1", ErrInvalidInput)
	}
	if strings.TrimSpace(in.Name) == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if strings.TrimSpace(in.Mobile) == "" {
		return fmt.Errorf("%w: mobile is required", ErrInvalidInput)
	}
	if !emailPattern.MatchString(in.Email) {
		return fmt.Errorf("%w: invalid email format", ErrInvalidInput)
	}
	return nil
}

// totalAmount computes price * dynamic pricing factor * quantity, rounded to
// two decimals. A missing factor means no adjustment.
func totalAmount(price, factor float64, quantity int) float64 {
	if factor <= 0 {
		factor = 1.0
	}
	return math.Round(price*factor*float64(quantity)*100) / 100
}

type BookingService interface {
	CreateBooking(ctx context.Context, eventID uint, in CreateBookingInput) (*models.Booking, error)
	CancelBooking(ctx context.Context, bookingID uint) (*models.Booking, error)
	GetBooking(ctx context.Context, id uint) (*models.Booking, error)
	ListBookingsByEvent(ctx context.Context, eventID uint, status *models.BookingStatus) ([]models.Booking, error)
	ListBookingsByEmail(ctx context.Context, email string) ([]models.Booking, error)
	DeleteBooking(ctx context.Context, id uint) error
	EventStats(ctx context.Context, eventID uint) (*models.BookingStats, error)
}

type bookingService struct {
	bookingRepo repository.BookingRepository
	eventRepo   repository.EventRepository
	publisher   *rabbitmq.Publisher
}

func NewBookingService(bookingRepo repository.BookingRepository, eventRepo repository.EventRepository, publisher *rabbitmq.Publisher) BookingService {
	return &bookingService{
		bookingRepo: bookingRepo,
		eventRepo:   eventRepo,
		publisher:   publisher,
	}
}

func (s *bookingService) CreateBooking(ctx context.Context, eventID uint, in CreateBookingInput) (*models.Booking, error) {
	// Input problems never open a transaction.
	if err := in.validate(); err != nil {
		return nil, err
	}

	var result *models.Booking

	err := s.bookingRepo.GetDB().WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// Lock the event row — serializes concurrent reservations so two
		// requests cannot both take the last seat.
		event, err := s.eventRepo.FindByIDForUpdate(ctx, tx, eventID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrEventNotFound
			}
			return transient("lock event", err)
		}

		if event.AvailableSeats < in.Quantity {
			return &InsufficientSeatsError{Available: event.AvailableSeats, Requested: in.Quantity}
		}

		booking := &models.Booking{
			EventID:     event.ID,
			Name:        in.Name,
			Email:       in.Email,
			Mobile:      in.Mobile,
			Quantity:    in.Quantity,
			TotalAmount: totalAmount(event.Price, event.DynamicPricingFactor, in.Quantity),
			Status:      models.StatusConfirmed,
		}
		if err := s.bookingRepo.Create(ctx, tx, booking); err != nil {
			return transient("create booking", err)
		}

		if err := s.eventRepo.DecrementSeats(ctx, tx, event.ID, in.Quantity); err != nil {
			return transient("decrement seats", err)
		}

		event.AvailableSeats -= in.Quantity
		booking.Event = event
		result = booking
		return nil
	})
	if err != nil {
		return nil, err
	}

	if s.publisher != nil {
		_ = s.publisher.Publish("booking.confirmed", result)
	}
	return result, nil
}

func (s *bookingService) CancelBooking(ctx context.Context, bookingID uint) (*models.Booking, error) {
	var result *models.Booking

	err := s.bookingRepo.GetDB().WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// Lock the booking row so a second cancellation waits here and then
		// trips the status guard instead of restoring seats twice.
		booking, err := s.bookingRepo.FindByIDForUpdate(ctx, tx, bookingID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrBookingNotFound
			}
			return transient("lock booking", err)
		}

		if booking.Status == models.StatusCancelled {
			return ErrAlreadyCancelled
		}

		if err := s.bookingRepo.UpdateStatus(ctx, tx, booking.ID, models.StatusCancelled); err != nil {
			return transient("cancel booking", err)
		}

		if err := s.eventRepo.RestoreSeats(ctx, tx, booking.EventID, booking.Quantity); err != nil {
			return transient("restore seats", err)
		}

		booking.Status = models.StatusCancelled
		result = booking
		return nil
	})
	if err != nil {
		return nil, err
	}

	if s.publisher != nil {
		_ = s.publisher.Publish("booking.cancelled", result)
	}
	return result, nil
}

func (s *bookingService) GetBooking(ctx context.Context, id uint) (*models.Booking, error) {
	booking, err := s.bookingRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, transient("find booking", err)
	}
	return booking, nil
}

func (s *bookingService) ListBookingsByEvent(ctx context.Context, eventID uint, status *models.BookingStatus) ([]models.Booking, error) {
	return s.bookingRepo.FindByEventID(ctx, eventID, status)
}

func (s *bookingService) ListBookingsByEmail(ctx context.Context, email string) ([]models.Booking, error) {
	if !emailPattern.MatchString(email) {
		return nil, fmt.Errorf("%w: invalid email format", ErrInvalidInput)
	}
	return s.bookingRepo.FindByEmail(ctx, email)
}

// DeleteBooking hard-deletes the row. It intentionally does not touch seat
// counts; seat restoration happens only through CancelBooking.
func (s *bookingService) DeleteBooking(ctx context.Context, id uint) error {
	if err := s.bookingRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrBookingNotFound
		}
		return transient("delete booking", err)
	}
	return nil
}

func (s *bookingService) EventStats(ctx context.Context, eventID uint) (*models.BookingStats, error) {
	if _, err := s.eventRepo.FindByID(ctx, eventID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEventNotFound
		}
		return nil, transient("find event", err)
	}
	return s.bookingRepo.StatsByEventID(ctx, eventID)
}
