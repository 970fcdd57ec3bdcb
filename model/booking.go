package model

import "time"

type Booking struct {
	DTO
	CinemaId      uint      `gorm:"not null;index" json:"cinemaId"`
	Cinema        *Cinema   `gorm:"foreignKey:CinemaId;references:ID" json:"cinema,omitempty"`
	MovieId       uint      `gorm:"not null;index" json:"movieId"`
	Movie         *Movie    `gorm:"foreignKey:MovieId;references:ID" json:"movie,omitempty"`
	BookingTime   time.Time `gorm:"not null" json:"bookingTime"`
	NumberOfSeats int       `gorm:"not null" json:"numberOfSeats"`
	Reference     string    `gorm:"size:50;uniqueIndex" json:"reference"`
}
type Bookings []Booking

// BookingInput is the form body of the booking create and edit pages.
type BookingInput struct {
	ID            uint   `form:"ID" json:"id"`
	Version       uint   `form:"Version" json:"version"`
	CinemaId      uint   `form:"CinemaId" json:"cinemaId" validate:"min=1"`
	MovieId       uint   `form:"MovieId" json:"movieId" validate:"min=1"`
	TimeText      string `form:"BookingTime" json:"bookingTime" validate:"required"`
	NumberOfSeats int    `form:"NumberOfSeats" json:"numberOfSeats" validate:"min=1,max=10"`
}
