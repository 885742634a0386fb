package models

import "time"

type EventStatus string

const (
	EventUpcoming  EventStatus = "upcoming"
	EventOngoing   EventStatus = "ongoing"
	EventCompleted EventStatus = "completed"
	EventCancelled EventStatus = "cancelled"
)

type Event struct {
	ID                   uint        `gorm:"primaryKey" json:"id"`
	Title                string      `gorm:"not null" json:"title"`
	Description          string      `gorm:"type:text" json:"description"`
	Date                 time.Time   `gorm:"not null" json:"date"`
	Time                 string      `gorm:"type:varchar(8);not null" json:"time"`
	Location             string      `gorm:"not null" json:"location"`
	Capacity             int         `gorm:"not null" json:"capacity"`
	AvailableSeats       int         `gorm:"not null" json:"available_seats"`
	Price                float64     `gorm:"type:decimal(10,2);not null;default:0" json:"price"`
	DynamicPricingFactor float64     `gorm:"type:decimal(5,2);not null;default:1.0" json:"dynamic_pricing_factor"`
	Organizer            string      `json:"organizer"`
	Category             string      `gorm:"type:varchar(100);index" json:"category"`
	ImageURL             string      `gorm:"type:varchar(500)" json:"image_url"`
	Status               EventStatus `gorm:"type:varchar(20);not null;default:'upcoming'" json:"status"`
	CreatedAt            time.Time   `json:"created_at"`
	UpdatedAt            time.Time   `json:"updated_at"`

	Bookings []Booking `gorm:"foreignKey:EventID;constraint:OnDelete:CASCADE" json:"-"`
}
