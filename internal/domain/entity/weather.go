package entity

import "time"

// CitySearch is one recorded weather lookup.
type CitySearch struct {
	ID         int64
	City       string
	SearchedAt time.Time
}
