package models

import "time"

type BookingStatus string

const (
	StatusConfirmed BookingStatus = "confirmed"
	StatusCancelled BookingStatus = "cancelled"
)

type Booking struct {
	ID          uint          `gorm:"primaryKey" json:"id"`
	EventID     uint          `gorm:"not null;index" json:"event_id"`
	Name        string        `gorm:"type:varchar(100);not null" json:"name"`
	Email       string        `gorm:"type:varchar(100);not null;index" json:"email"`
	Mobile      string        `gorm:"type:varchar(20);not null" json:"mobile"`
	Quantity    int           `gorm:"not null" json:"quantity"`
	TotalAmount float64       `gorm:"type:decimal(10,2);not null" json:"total_amount"`
	Status      BookingStatus `gorm:"type:varchar(20);not null;default:'confirmed';index" json:"status"`
	BookingDate time.Time     `gorm:"autoCreateTime" json:"booking_date"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`

	Event *Event `gorm:"foreignKey:EventID" json:"event,omitempty"`
}

// BookingStats aggregates a single event's booking activity.
type BookingStats struct {
	TotalBookings    int64   `json:"total_bookings"`
	TicketsSold      int64   `json:"total_tickets_sold"`
	TotalRevenue     float64 `json:"total_revenue"`
	CancelledTickets int64   `json:"cancelled_tickets"`
}
