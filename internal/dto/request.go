package dto

import "time"

type CreateEventRequest struct {
	Title                string    `json:"title" validate:"required"`
	Description          string    `json:"description"`
	Date                 time.Time `json:"date" validate:"required"`
	Time                 string    `json:"time" validate:"required"`
	Location             string    `json:"location" validate:"required"`
	Capacity             int       `json:"capacity" validate:"required,gt=0"`
	Price                float64   `json:"price" validate:"gte=0"`
	DynamicPricingFactor float64   `json:"dynamic_pricing_factor" validate:"gte=0"`
	Organizer            string    `json:"organizer"`
	Category             string    `json:"category"`
	ImageURL             string    `json:"image_url"`
	Status               string    `json:"status" validate:"omitempty,oneof=upcoming ongoing completed cancelled"`
}

type UpdateEventRequest struct {
	Title                *string    `json:"title" validate:"omitempty,min=1"`
	Description          *string    `json:"description"`
	Date                 *time.Time `json:"date"`
	Time                 *string    `json:"time"`
	Location             *string    `json:"location" validate:"omitempty,min=1"`
	Capacity             *int       `json:"capacity" validate:"omitempty,gt=0"`
	Price                *float64   `json:"price" validate:"omitempty,gte=0"`
	DynamicPricingFactor *float64   `json:"dynamic_pricing_factor" validate:"omitempty,gt=0"`
	Organizer            *string    `json:"organizer"`
	Category             *string    `json:"category"`
	ImageURL             *string    `json:"image_url"`
	Status               *string    `json:"status" validate:"omitempty,oneof=upcoming ongoing completed cancelled"`
}

type CreateBookingRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Mobile   string `json:"mobile" validate:"required"`
	Quantity int    `json:"quantity" validate:"required,gt=0"`
}
