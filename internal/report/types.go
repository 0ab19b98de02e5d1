package report

import "time"

// Report is a citizen sighting of a suspected explosive object.
type Report struct {
	ID          uint
	Latitude    float64
	Longitude   float64
	Description string
	Status      string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type CreateInput struct {
	Latitude    float64
	Longitude   float64
	Description string
}

type ListInput struct {
	Status string
}

type UpdateStatusInput struct {
	ID     uint
	Status string
}
