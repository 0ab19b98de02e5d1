package repository

type CreateReportOptions struct {
	Latitude    float64
	Longitude   float64
	Description string
	Status      string
}

// ListReportsOptions lists newest first; an empty Status lists all.
type ListReportsOptions struct {
	Status string
}

type UpdateReportStatusOptions struct {
	ID     uint
	Status string
}
