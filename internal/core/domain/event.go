package domain

import (
	"errors"
	"time"
)

// Category is the closed set of tags an event can carry.
type Category string

const (
	CategoryMusic     Category = "music"
	CategorySport     Category = "sport"
	CategoryCulture   Category = "culture"
	CategoryFood      Category = "food"
	CategoryEducation Category = "education"
	CategoryOther     Category = "other"
)

// Categories lists every valid category in display order.
func Categories() []Category {
	return []Category{
		CategoryMusic,
		CategorySport,
		CategoryCulture,
		CategoryFood,
		CategoryEducation,
		CategoryOther,
	}
}

// IsValid reports whether c is one of the known categories.
func (c Category) IsValid() bool {
	switch c {
	case CategoryMusic, CategorySport, CategoryCulture, CategoryFood, CategoryEducation, CategoryOther:
		return true
	}
	return false
}

var ErrEventNotFound = errors.New("event not found")
var ErrValidation = errors.New("missing required fields")

// DateLayout is the calendar-date wire format for event dates. Dates carry no
// time zone; ordering relies on the layout sorting lexicographically.
const DateLayout = "2006-01-02"

// Event is the core aggregate, owned by the relational store.
// CreatedByUsername is populated only on joined reads and never persisted.
type Event struct {
	ID                uint      `json:"id" gorm:"primaryKey;autoIncrement"`
	Title             string    `json:"title" gorm:"not null"`
	Description       string    `json:"description" gorm:"not null"`
	EventDate         string    `json:"event_date" gorm:"column:event_date;not null;index"`
	Location          string    `json:"location" gorm:"not null"`
	Category          Category  `json:"category" gorm:"not null"`
	ImageURL          *string   `json:"image_url" gorm:"column:image_url"`
	CreatedBy         uint      `json:"created_by" gorm:"index;not null"`
	CreatedByUsername string    `json:"created_by_username,omitempty" gorm:"->;-:migration"`
	CreatedAt         time.Time `json:"created_at"`
}
