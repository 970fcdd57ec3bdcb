package model

type Cinema struct {
	DTO
	Name          string    `gorm:"size:100;not null" json:"name"`
	Location      string    `gorm:"size:200;not null" json:"location"`
	NumberOfHalls int       `gorm:"not null" json:"numberOfHalls"`
	Website       string    `gorm:"size:200" json:"website"`
	ContactNumber string    `gorm:"size:30" json:"contactNumber"`
	Slug          string    `gorm:"size:120;uniqueIndex" json:"slug"`
	Bookings      []Booking `gorm:"foreignKey:CinemaId" json:"bookings,omitempty"`
}
type Cinemas []Cinema

// CinemaInput is the form body of the cinema create and edit pages.
type CinemaInput struct {
	ID            uint   `form:"ID" json:"id"`
	Version       uint   `form:"Version" json:"version"`
	Name          string `form:"Name" json:"name" validate:"required,max=100"`
	Location      string `form:"Location" json:"location" validate:"required,max=200"`
	NumberOfHalls int    `form:"NumberOfHalls" json:"numberOfHalls" validate:"min=1,max=20"`
	Website       string `form:"Website" json:"website" validate:"omitempty,max=200"`
	ContactNumber string `form:"ContactNumber" json:"contactNumber" validate:"omitempty,max=30"`
}
