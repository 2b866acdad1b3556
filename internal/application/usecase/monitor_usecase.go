package usecase

import (
	"context"
	"fmt"

	"github.com/pterm/pterm"

	"github.com/clinicops/bt-fulltime-monitor-go/internal/domain/entity"
	"github.com/clinicops/bt-fulltime-monitor-go/internal/domain/pipeline"
	"github.com/clinicops/bt-fulltime-monitor-go/internal/domain/repository"
	"github.com/clinicops/bt-fulltime-monitor-go/internal/shared/types"
)

// MonitorUseCase handles the main full-time monitor functionality.
type MonitorUseCase struct {
	billingRepo repository.BillingRepository
	exportRepo  repository.ExportRepository
	configRepo  repository.ConfigRepository
	console     types.ConsoleInterface
}

// NewMonitorUseCase creates a new monitor use case.
func NewMonitorUseCase(
	billingRepo repository.BillingRepository,
	exportRepo repository.ExportRepository,
	configRepo repository.ConfigRepository,
	console types.ConsoleInterface,
) *MonitorUseCase {
	return &MonitorUseCase{
		billingRepo: billingRepo,
		exportRepo:  exportRepo,
		configRepo:  configRepo,
		console:     console,
	}
}

// RunMonitor executa a funcionalidade principal: lê o arquivo de billing,
// roda o pipeline de classificação, exibe as tabelas PASS / NO PASS e exporta
// os relatórios solicitados.
func (uc *MonitorUseCase) RunMonitor(ctx context.Context, args *types.CLIArgs) error {
	// Carrega e mescla o arquivo de configuração, se especificado
	if args.ConfigFile != "" {
		config, err := uc.configRepo.LoadConfigFile(args.ConfigFile)
		if err != nil {
			return err
		}
		applyConfig(args, config)
	}

	if args.File == "" {
		return types.ErrNoBillingFile
	}

	variant := buildVariant(args)

	status := uc.console.Status(fmt.Sprintf("Reading billing file %s...", args.File))

	table, err := uc.billingRepo.LoadTable(args.File)
	if err != nil {
		status.Stop()
		return err
	}

	status.Update("Aggregating monthly hours...")

	records, err := pipeline.Normalize(table, variant)
	if err != nil {
		status.Stop()
		return err
	}

	totals := pipeline.Aggregate(records)
	months := pipeline.Months(totals)

	status.Stop()

	if args.ListMonths {
		uc.displayMonths(totals, months)
		return nil
	}

	// Sem seleção explícita, avaliamos os últimos 3 meses descobertos
	// no arquivo (mesmo default da seleção interativa original).
	selected := args.Months
	if len(selected) == 0 {
		selected = months
		if len(months) > 3 {
			selected = months[len(months)-3:]
		}
		if len(selected) == 3 {
			uc.console.LogInfo("No months selected, evaluating the last 3: %s, %s, %s", selected[0], selected[1], selected[2])
		}
	}

	pivotTable, err := pipeline.Pivot(totals, selected)
	if err != nil {
		return err
	}

	report := pipeline.Classify(pivotTable, variant.Threshold)
	report.StaffHeader = variant.StaffColumn

	uc.displayReport(report)

	// Exporta os relatórios solicitados
	if args.ReportName != "" && len(args.ReportType) > 0 {
		progress := uc.console.ProgressWithTotal(len(args.ReportType))
		for _, reportType := range args.ReportType {
			switch reportType {
			case "csv":
				csvPath, err := uc.exportRepo.ExportToCSV(report, args.ReportName, args.Dir)
				if err != nil {
					uc.console.LogError("Failed to export to CSV: %s", err)
				} else {
					uc.console.LogSuccess("Successfully exported to CSV: %s", csvPath)
				}
			case "json":
				jsonPath, err := uc.exportRepo.ExportToJSON(report, args.ReportName, args.Dir)
				if err != nil {
					uc.console.LogError("Failed to export to JSON: %s", err)
				} else {
					uc.console.LogSuccess("Successfully exported to JSON: %s", jsonPath)
				}
			case "xlsx":
				xlsxPath, err := uc.exportRepo.ExportToXLSX(report, args.ReportName, args.Dir)
				if err != nil {
					uc.console.LogError("Failed to export to XLSX: %s", err)
				} else {
					uc.console.LogSuccess("Successfully exported to XLSX: %s", xlsxPath)
				}
			case "pdf":
				pdfPath, err := uc.exportRepo.ExportToPDF(report, args.ReportName, args.Dir)
				if err != nil {
					uc.console.LogError("Failed to export to PDF: %s", err)
				} else {
					uc.console.LogSuccess("Successfully exported to PDF: %s", pdfPath)
				}
			default:
				uc.console.LogWarning("Unknown report type '%s' (expected csv, json, xlsx or pdf)", reportType)
			}
			progress.Increment()
		}
		progress.Stop()
	}

	return nil
}

// displayMonths lista os meses descobertos no arquivo e o total de horas
// qualificadas da clínica em cada um.
func (uc *MonitorUseCase) displayMonths(totals []entity.MonthlyTotal, months []string) {
	if len(months) == 0 {
		uc.console.LogWarning("No qualifying rows found in this billing file")
		return
	}

	uc.console.LogInfo("Months available in this billing file: %d", len(months))

	perMonth := make(map[string]float64, len(months))
	for _, t := range totals {
		perMonth[t.MonthKey] += t.Hours
	}

	monthlyHours := make([]types.MonthlyHours, 0, len(months))
	for _, m := range months {
		monthlyHours = append(monthlyHours, types.MonthlyHours{Month: m, Hours: perMonth[m]})
	}

	uc.console.DisplayMonthlyBars(monthlyHours)
}

// displayReport renderiza as duas partições como tabelas no terminal.
func (uc *MonitorUseCase) displayReport(report *entity.ClassificationReport) {
	uc.console.Printf("\n%s\n", pterm.FgGreen.Sprintf("PASS — full-time (> %.0f h in all 3 months): %d", report.Threshold, len(report.Pass)))
	if len(report.Pass) == 0 {
		uc.console.LogInfo("No staff member met the full-time requirement for the selected months.")
	} else {
		uc.console.Print(uc.renderPartition(report, report.Pass))
	}

	uc.console.Printf("\n%s\n", pterm.FgYellow.Sprintf("NO PASS: %d", len(report.NoPass)))
	if len(report.NoPass) > 0 {
		uc.console.Print(uc.renderPartition(report, report.NoPass))
	}

	uc.console.Printf("\n")
	uc.console.LogInfo("Total qualifying hours across the selected months: %.2f", report.TotalHours())
}

// renderPartition monta a tabela de uma partição com o layout de colunas
// fixo: staff, 3 meses em ordem cronológica, Status.
func (uc *MonitorUseCase) renderPartition(report *entity.ClassificationReport, rows []entity.ClassifiedRow) string {
	table := uc.console.CreateTable()

	table.AddColumn(report.StaffHeader)
	for _, m := range report.Months {
		table.AddColumn(m)
	}
	table.AddColumn("Status")

	for _, row := range rows {
		cells := []interface{}{pterm.FgMagenta.Sprint(row.Staff)}
		for _, h := range row.Hours {
			cells = append(cells, fmt.Sprintf("%.2f", h))
		}
		if row.Status == entity.StatusPass {
			cells = append(cells, pterm.FgGreen.Sprint(row.Status))
		} else {
			cells = append(cells, pterm.FgRed.Sprint(row.Status))
		}
		table.AddRow(cells...)
	}

	return table.Render()
}

// buildVariant monta a configuração do pipeline a partir dos argumentos,
// partindo dos defaults da variante e aplicando os overrides.
func buildVariant(args *types.CLIArgs) pipeline.VariantConfig {
	var variant pipeline.VariantConfig
	if args.Variant == "units" {
		variant = pipeline.UnitsVariant(args.Category)
	} else {
		variant = pipeline.HoursVariant()
	}

	if args.Threshold > 0 {
		variant.Threshold = args.Threshold
	}
	if args.UnitsPerHour > 0 && args.Variant == "units" {
		variant.ConversionFactor = args.UnitsPerHour
	}

	if args.StaffColumn != "" {
		variant.StaffColumn = args.StaffColumn
	}
	if args.DateColumn != "" {
		variant.DateColumn = args.DateColumn
	}
	if args.QuantityColumn != "" {
		variant.QuantityColumn = args.QuantityColumn
	}
	if args.CompletedColumn != "" {
		variant.CompletedColumn = args.CompletedColumn
	}
	if args.CategoryColumn != "" {
		variant.CategoryColumn = args.CategoryColumn
	}

	return variant
}

// applyConfig preenche os argumentos vazios com os valores do arquivo de
// configuração; flags explícitas têm precedência.
func applyConfig(args *types.CLIArgs, config *types.Config) {
	if args.File == "" {
		args.File = config.File
	}
	if len(args.Months) == 0 {
		args.Months = config.Months
	}
	if args.Variant == "" || args.Variant == "hours" {
		if config.Variant != "" {
			args.Variant = config.Variant
		}
	}
	if args.Threshold == 0 {
		args.Threshold = config.Threshold
	}
	if args.UnitsPerHour == 0 {
		args.UnitsPerHour = config.UnitsPerHour
	}
	if args.Category == "" {
		args.Category = config.Category
	}
	if args.ReportName == "" {
		args.ReportName = config.ReportName
	}
	if len(config.ReportType) > 0 {
		args.ReportType = config.ReportType
	}
	if args.Dir == "" {
		args.Dir = config.Dir
	}

	args.StaffColumn = config.StaffColumn
	args.DateColumn = config.DateColumn
	args.QuantityColumn = config.QuantityColumn
	args.CompletedColumn = config.CompletedColumn
	args.CategoryColumn = config.CategoryColumn
}
