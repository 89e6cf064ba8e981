package dto

import "time"

// Request DTOs

type ExportRequest struct {
	StartDate string `json:"start_date" validate:"required,datetime=2006-01-02"`
	EndDate   string `json:"end_date" validate:"required,datetime=2006-01-02"`
	Format    string `json:"format" validate:"required,oneof=csv excel pdf"`
}

// Response DTOs

type ExportResponse struct {
	FileName    string    `json:"file_name"`
	Format      string    `json:"format"`
	StartDate   string    `json:"start_date"`
	EndDate     string    `json:"end_date"`
	Records     int       `json:"records"`
	GeneratedAt time.Time `json:"generated_at"`
}

type ExportDefaultsResponse struct {
	StartDate string   `json:"start_date"`
	EndDate   string   `json:"end_date"`
	Format    string   `json:"format"`
	Formats   []string `json:"formats"`
}
