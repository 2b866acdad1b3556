package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/clinicops/bt-fulltime-monitor-go/internal/domain/entity"
	"github.com/clinicops/bt-fulltime-monitor-go/internal/domain/repository"
	"github.com/jung-kurt/gofpdf"
	"github.com/xuri/excelize/v2"
)

// ExportRepositoryImpl implementa o ExportRepository.
type ExportRepositoryImpl struct{}

// NewExportRepository cria uma nova implementação do ExportRepository.
func NewExportRepository() repository.ExportRepository {
	return &ExportRepositoryImpl{}
}

// ExportToCSV grava apenas a partição PASS, no mesmo layout da tabela do
// terminal: staff, os 3 meses em ordem cronológica, Status.
func (r *ExportRepositoryImpl) ExportToCSV(report *entity.ClassificationReport, filename, outputDir string) (string, error) {
	outputFilename, err := generateFilename(filename, outputDir, "csv")
	if err != nil {
		return "", err
	}

	file, err := os.Create(outputFilename)
	if err != nil {
		return "", fmt.Errorf("error creating CSV file: %w", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	if err := writer.Write(reportHeaders(report)); err != nil {
		return "", fmt.Errorf("error writing CSV header: %w", err)
	}

	for _, row := range report.Pass {
		if err := writer.Write(reportRecord(row)); err != nil {
			return "", fmt.Errorf("error writing CSV record: %w", err)
		}
	}

	return filepath.Abs(outputFilename)
}

func (r *ExportRepositoryImpl) ExportToJSON(report *entity.ClassificationReport, filename, outputDir string) (string, error) {
	outputFilename, err := generateFilename(filename, outputDir, "json")
	if err != nil {
		return "", err
	}

	file, err := os.Create(outputFilename)
	if err != nil {
		return "", fmt.Errorf("error creating JSON file: %w", err)
	}
	defer file.Close()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(report); err != nil {
		return "", fmt.Errorf("error encoding JSON data: %w", err)
	}

	return filepath.Abs(outputFilename)
}

// ExportToXLSX grava uma planilha com duas abas, PASS e NO PASS, ambas com o
// mesmo esquema de colunas.
func (r *ExportRepositoryImpl) ExportToXLSX(report *entity.ClassificationReport, filename, outputDir string) (string, error) {
	outputFilename, err := generateFilename(filename, outputDir, "xlsx")
	if err != nil {
		return "", err
	}

	file := excelize.NewFile()
	defer file.Close()

	file.SetSheetName("Sheet1", entity.StatusPass)
	if _, err := file.NewSheet(entity.StatusNoPass); err != nil {
		return "", fmt.Errorf("error creating NO PASS sheet: %w", err)
	}

	writeSheet := func(sheet string, rows []entity.ClassifiedRow) error {
		headers := reportHeaders(report)
		for col, header := range headers {
			cell, err := excelize.CoordinatesToCellName(col+1, 1)
			if err != nil {
				return err
			}
			if err := file.SetCellValue(sheet, cell, header); err != nil {
				return err
			}
		}
		for i, row := range rows {
			values := []interface{}{row.Staff}
			for _, h := range row.Hours {
				values = append(values, h)
			}
			values = append(values, row.Status)
			for col, value := range values {
				cell, err := excelize.CoordinatesToCellName(col+1, i+2)
				if err != nil {
					return err
				}
				if err := file.SetCellValue(sheet, cell, value); err != nil {
					return err
				}
			}
		}
		return nil
	}

	if err := writeSheet(entity.StatusPass, report.Pass); err != nil {
		return "", fmt.Errorf("error writing PASS sheet: %w", err)
	}
	if err := writeSheet(entity.StatusNoPass, report.NoPass); err != nil {
		return "", fmt.Errorf("error writing NO PASS sheet: %w", err)
	}

	if err := file.SaveAs(outputFilename); err != nil {
		return "", fmt.Errorf("error writing XLSX file: %w", err)
	}

	return filepath.Abs(outputFilename)
}

func (r *ExportRepositoryImpl) ExportToPDF(report *entity.ClassificationReport, filename, outputDir string) (string, error) {
	outputFilename, err := generateFilename(filename, outputDir, "pdf")
	if err != nil {
		return "", err
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	headerColor := [3]int{40, 40, 40}
	headerTextColor := [3]int{255, 255, 255}
	sectionTitleColor := [3]int{0, 0, 0}
	bodyTextColor := [3]int{50, 50, 50}
	lineColor := [3]int{200, 200, 200}

	drawSection := func(title string, content string) {
		content = cleanRichTags(content)
		if strings.TrimSpace(content) == "" {
			return
		}
		pdf.SetFont("Arial", "B", 12)
		pdf.SetTextColor(sectionTitleColor[0], sectionTitleColor[1], sectionTitleColor[2])
		pdf.Cell(0, 8, tr(title))
		pdf.Ln(7)

		pdf.SetDrawColor(lineColor[0], lineColor[1], lineColor[2])
		pdf.Line(pdf.GetX(), pdf.GetY(), pdf.GetX()+190, pdf.GetY())
		pdf.Ln(4)

		pdf.SetFont("Courier", "", 9)
		pdf.SetTextColor(bodyTextColor[0], bodyTextColor[1], bodyTextColor[2])
		pdf.MultiCell(190, 5, tr(content), "", "L", false)
		pdf.Ln(8)
	}

	pdf.AddPage()

	// Cabeçalho
	pdf.SetFillColor(headerColor[0], headerColor[1], headerColor[2])
	pdf.SetTextColor(headerTextColor[0], headerTextColor[1], headerTextColor[2])
	pdf.SetFont("Arial", "B", 14)
	pdf.CellFormat(0, 12, tr("  Full-Time BT Monitor"), "", 1, "L", true, 0, "")

	pdf.SetFont("Arial", "", 10)
	pdf.SetFillColor(240, 240, 240)
	pdf.SetTextColor(bodyTextColor[0], bodyTextColor[1], bodyTextColor[2])
	pdf.CellFormat(0, 8, tr(fmt.Sprintf("  Months: %s  |  Threshold: > %.0f hours in all 3 months",
		strings.Join(report.Months, ", "), report.Threshold)), "", 1, "L", true, 0, "")
	pdf.Ln(10)

	drawSection(fmt.Sprintf("PASS (%d)", len(report.Pass)), partitionText(report, report.Pass))
	drawSection(fmt.Sprintf("NO PASS (%d)", len(report.NoPass)), partitionText(report, report.NoPass))

	// Rodapé
	pdf.SetY(-15)
	pdf.SetFont("Arial", "I", 8)
	pdf.SetTextColor(128, 128, 128)
	footerText := fmt.Sprintf("Generated by Full-Time BT Monitor (Go) | %s", time.Now().Format("2006-01-02"))
	pdf.CellFormat(0, 10, tr(footerText), "", 0, "L", false, 0, "")
	pdf.CellFormat(0, 10, tr("Page 1"), "", 0, "R", false, 0, "")

	if err := pdf.OutputFileAndClose(outputFilename); err != nil {
		return "", fmt.Errorf("error writing PDF file: %w", err)
	}

	return filepath.Abs(outputFilename)
}

// --- Funções Auxiliares ---

// reportHeaders monta o cabeçalho comum: staff, meses em ordem cronológica, Status.
func reportHeaders(report *entity.ClassificationReport) []string {
	staffHeader := report.StaffHeader
	if staffHeader == "" {
		staffHeader = "Staff Name"
	}
	headers := []string{staffHeader}
	headers = append(headers, report.Months...)
	return append(headers, "Status")
}

func reportRecord(row entity.ClassifiedRow) []string {
	record := []string{row.Staff}
	for _, h := range row.Hours {
		record = append(record, fmt.Sprintf("%.2f", h))
	}
	return append(record, row.Status)
}

// partitionText formata uma partição como linhas de texto para o PDF.
func partitionText(report *entity.ClassificationReport, rows []entity.ClassifiedRow) string {
	if len(rows) == 0 {
		return "None"
	}
	var b strings.Builder
	for _, row := range rows {
		b.WriteString(row.Staff)
		for i, h := range row.Hours {
			b.WriteString(fmt.Sprintf("  |  %s: %.2f", report.Months[i], h))
		}
		b.WriteString("\n")
	}
	return b.String()
}

// generateFilename cria um nome de arquivo único com timestamp e garante que o diretório exista.
func generateFilename(base, dir, ext string) (string, error) {
	if dir == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("could not get current working directory: %w", err)
		}
		dir = cwd
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("error creating output directory '%s': %w", dir, err)
	}
	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.%s", base, timestamp, ext)
	return filepath.Join(dir, filename), nil
}

// Regex para limpar formatação pterm (rich tags) e sequências ANSI de cor/estilo.
var richTagRegex = regexp.MustCompile(`\[/?([a-zA-Z]+|#[0-9a-fA-F]{6})\]`)
var ansiRegex = regexp.MustCompile(`\x1B\[[0-9;]*[A-Za-z]`)

// cleanRichTags remove tags de formatação do pterm e sequências ANSI.
func cleanRichTags(text string) string {
	text = richTagRegex.ReplaceAllString(text, "")
	text = ansiRegex.ReplaceAllString(text, "")
	return text
}
