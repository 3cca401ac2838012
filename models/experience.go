package models

import "time"

// Occupancy identifies how a retreat room is shared.
type Occupancy string

const (
	OccupancySingle Occupancy = "Single"
	OccupancyCouple Occupancy = "Couple"
)

// DateRange is one bookable package window for an experience.
type DateRange struct {
	From time.Time `bson:"from" json:"from"`
	To   time.Time `bson:"to" json:"to"`
}

// Experience represents a pilgrim retreat as stored and served to the client.
// Price fields are pointers: an unset price is a real state ("price on
// request"), not zero.
type Experience struct {
	ID               string      `bson:"id" json:"id"`
	Name             string      `bson:"name" json:"name"`
	Location         string      `bson:"location" json:"location"`
	About            string      `bson:"about,omitempty" json:"about,omitempty"`
	WhatToExpect     string      `bson:"what_to_expect,omitempty" json:"whatToExpect,omitempty"`
	PriceSingle      *float64    `bson:"price_single,omitempty" json:"priceSingle,omitempty"`
	PriceCouple      *float64    `bson:"price_couple,omitempty" json:"priceCouple,omitempty"`
	Price            *float64    `bson:"price,omitempty" json:"price,omitempty"` // legacy flat price
	OccupancyOptions []Occupancy `bson:"occupancy_options" json:"occupancyOptions"`
	AvailableDates   []DateRange `bson:"available_dates" json:"availableDates"`
	Images           []string    `bson:"images,omitempty" json:"images,omitempty"`
	CreatedAt        time.Time   `bson:"created_at" json:"createdAt"`
	UpdatedAt        time.Time   `bson:"updated_at" json:"updatedAt"`
}

// HasOccupancy reports whether the experience offers the given occupancy.
func (e *Experience) HasOccupancy(o Occupancy) bool {
	for _, opt := range e.OccupancyOptions {
		if opt == o {
			return true
		}
	}
	return false
}

// HasDateRange reports whether the given range is one of the experience's
// available packages.
func (e *Experience) HasDateRange(r DateRange) bool {
	for _, d := range e.AvailableDates {
		if d.From.Equal(r.From) && d.To.Equal(r.To) {
			return true
		}
	}
	return false
}

// FirstFutureRange returns the first available range starting after now,
// or nil if none exists.
func (e *Experience) FirstFutureRange(now time.Time) *DateRange {
	for i := range e.AvailableDates {
		if e.AvailableDates[i].From.After(now) {
			r := e.AvailableDates[i]
			return &r
		}
	}
	return nil
}
