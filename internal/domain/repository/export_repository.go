package repository

import (
	"github.com/clinicops/bt-fulltime-monitor-go/internal/domain/entity"
)

// ExportRepository defines the interface for serializing a classification
// report to the supported output formats. CSV carries the PASS partition only;
// XLSX writes PASS and NO PASS as separate sheets; JSON and PDF carry both.
type ExportRepository interface {
	ExportToCSV(report *entity.ClassificationReport, filename string, outputDir string) (string, error)
	ExportToJSON(report *entity.ClassificationReport, filename string, outputDir string) (string, error)
	ExportToXLSX(report *entity.ClassificationReport, filename string, outputDir string) (string, error)
	ExportToPDF(report *entity.ClassificationReport, filename string, outputDir string) (string, error)
}
