package dto

import (
	"time"

	"ticketing/internal/models"
)

type EventResponse struct {
	ID                   uint               `json:"id"`
	Title                string             `json:"title"`
	Description          string             `json:"description"`
	Date                 time.Time          `json:"date"`
	Time                 string             `json:"time"`
	Location             string             `json:"location"`
	Capacity             int                `json:"capacity"`
	AvailableSeats       int                `json:"available_seats"`
	Price                float64            `json:"price"`
	DynamicPricingFactor float64            `json:"dynamic_pricing_factor"`
	Organizer            string             `json:"organizer"`
	Category             string             `json:"category"`
	ImageURL             string             `json:"image_url"`
	Status               models.EventStatus `json:"status"`
	CreatedAt            time.Time          `json:"created_at"`
}

type BookingResponse struct {
	ID          uint                 `json:"id"`
	EventID     uint                 `json:"event_id"`
	Name        string               `json:"name"`
	Email       string               `json:"email"`
	Mobile      string               `json:"mobile"`
	Quantity    int                  `json:"quantity"`
	TotalAmount float64              `json:"total_amount"`
	Status      models.BookingStatus `json:"status"`
	BookingDate time.Time            `json:"booking_date"`

	EventTitle    string     `json:"event_title,omitempty"`
	EventDate     *time.Time `json:"event_date,omitempty"`
	EventLocation string     `json:"event_location,omitempty"`
}

// InsufficientSeatsResponse reports the availability observed when a
// reservation was rejected, so the caller can resubmit a smaller quantity.
type InsufficientSeatsResponse struct {
	Message        string `json:"message"`
	AvailableSeats int    `json:"available_seats"`
	Requested      int    `json:"requested"`
}

type ErrorResponse struct {
	Message string `json:"message"`
}

func ToEventResponse(e *models.Event) EventResponse {
	return EventResponse{
		ID:                   e.ID,
		Title:                e.Title,
		Description:          e.Description,
		Date:                 e.Date,
		Time:                 e.Time,
		Location:             e.Location,
		Capacity:             e.Capacity,
		AvailableSeats:       e.AvailableSeats,
		Price:                e.Price,
		DynamicPricingFactor: e.DynamicPricingFactor,
		Organizer:            e.Organizer,
		Category:             e.Category,
		ImageURL:             e.ImageURL,
		Status:               e.Status,
		CreatedAt:            e.CreatedAt,
	}
}

func ToBookingResponse(b *models.Booking) BookingResponse {
	resp := BookingResponse{
		ID:          b.ID,
		EventID:     b.EventID,
		Name:        b.Name,
		Email:       b.Email,
		Mobile:      b.Mobile,
		Quantity:    b.Quantity,
		TotalAmount: b.TotalAmount,
		Status:      b.Status,
		BookingDate: b.BookingDate,
	}
	if b.Event != nil {
		resp.EventTitle = b.Event.Title
		resp.EventDate = &b.Event.Date
		resp.EventLocation = b.Event.Location
	}
	return resp
}
