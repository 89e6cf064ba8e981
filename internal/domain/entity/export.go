package entity

import "time"

// ExportFormat is the file format of an appointments export
type ExportFormat string

const (
	ExportFormatCSV   ExportFormat = "csv"
	ExportFormatExcel ExportFormat = "excel"
	ExportFormatPDF   ExportFormat = "pdf"
)

// FileExtension returns the extension used for exported file names
func (f ExportFormat) FileExtension() string {
	switch f {
	case ExportFormatExcel:
		return "xlsx"
	case ExportFormatPDF:
		return "pdf"
	default:
		return "csv"
	}
}

// ExportResult summarises a finished export
type ExportResult struct {
	FileName    string       `json:"file_name"`
	Format      ExportFormat `json:"format"`
	StartDate   string       `json:"start_date"`
	EndDate     string       `json:"end_date"`
	Records     int          `json:"records"`
	GeneratedAt time.Time    `json:"generated_at"`
}
