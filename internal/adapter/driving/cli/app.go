package cli

import (
	"context"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/clinicops/bt-fulltime-monitor-go/internal/application/usecase"
	"github.com/clinicops/bt-fulltime-monitor-go/internal/shared/types"
	"github.com/clinicops/bt-fulltime-monitor-go/pkg/version"
)

// CLIApp represents the command-line interface application.
type CLIApp struct {
	rootCmd        *cobra.Command
	monitorUseCase *usecase.MonitorUseCase
	version        string
}

// NewCLIApp cria uma nova aplicação CLI.
func NewCLIApp(versionStr string) *CLIApp {
	app := &CLIApp{
		version: versionStr,
	}

	// Obtem a versão formatada
	formattedVersion := version.FormatVersion()

	rootCmd := &cobra.Command{
		Use:     "btmonitor",
		Short:   "Full-Time BT Monitor CLI",
		Long:    "Aggregates an appointment billing export into monthly hours per BT and classifies each one PASS / NO PASS against the full-time threshold over 3 selected months.",
		Version: formattedVersion,
		RunE:    app.runCommand,
	}

	rootCmd.SetVersionTemplate(`{{printf "Full-Time BT Monitor version: %s\n" .Version}}`)

	// Adiciona flags de linha de comando
	rootCmd.PersistentFlags().StringP("config-file", "C", "", "Path to a TOML, YAML, or JSON configuration file")
	rootCmd.PersistentFlags().StringP("file", "f", "", "Appointment billing file to evaluate (.csv or .xlsx)")
	rootCmd.PersistentFlags().StringSliceP("months", "m", nil, "Exactly 3 months to evaluate, as YYYY-MM keys (default: last 3 months in the file)")
	rootCmd.PersistentFlags().String("variant", "hours", "Billing variant: 'hours' (billing hours column) or 'units' (15-minute billed units)")
	rootCmd.PersistentFlags().Float64("threshold", 0, "Monthly hours a BT must exceed in all 3 months (default 130)")
	rootCmd.PersistentFlags().Float64("units-per-hour", 0, "Units-to-hours conversion divisor for the units variant (default 4)")
	rootCmd.PersistentFlags().String("category", "", "Required service category; rows with any other category are skipped (units variant)")
	rootCmd.PersistentFlags().Bool("list-months", false, "List the months discoverable in the billing file and exit")
	rootCmd.PersistentFlags().StringP("report-name", "n", "", "Specify the base name for the report file (without extension)")
	rootCmd.PersistentFlags().StringSliceP("report-type", "y", []string{"csv"}, "Specify report types: csv, json, xlsx, pdf")
	rootCmd.PersistentFlags().StringP("dir", "d", "", "Directory to save the report files (default: current directory)")

	app.rootCmd = rootCmd
	return app
}

// Execute runs the CLI application.
func (app *CLIApp) Execute() error {
	return app.rootCmd.Execute()
}

// parseArgs parses command-line arguments into a CLIArgs struct.
func (app *CLIApp) parseArgs() (*types.CLIArgs, error) {
	configFile, _ := app.rootCmd.Flags().GetString("config-file")
	file, _ := app.rootCmd.Flags().GetString("file")
	months, _ := app.rootCmd.Flags().GetStringSlice("months")
	variant, _ := app.rootCmd.Flags().GetString("variant")
	threshold, _ := app.rootCmd.Flags().GetFloat64("threshold")
	unitsPerHour, _ := app.rootCmd.Flags().GetFloat64("units-per-hour")
	category, _ := app.rootCmd.Flags().GetString("category")
	listMonths, _ := app.rootCmd.Flags().GetBool("list-months")
	reportName, _ := app.rootCmd.Flags().GetString("report-name")
	reportType, _ := app.rootCmd.Flags().GetStringSlice("report-type")
	dir, _ := app.rootCmd.Flags().GetString("dir")

	// Set default directory to current working directory if not specified
	if dir == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, err
		}
		dir = cwd
	} else {
		absDir, err := filepath.Abs(dir)
		if err != nil {
			return nil, err
		}
		dir = absDir
	}

	args := &types.CLIArgs{
		ConfigFile:   configFile,
		File:         file,
		Months:       months,
		Variant:      variant,
		Threshold:    threshold,
		UnitsPerHour: unitsPerHour,
		Category:     category,
		ListMonths:   listMonths,
		ReportName:   reportName,
		ReportType:   reportType,
		Dir:          dir,
	}

	return args, nil
}

// runCommand é o ponto de entrada principal para o comando CLI.
func (app *CLIApp) runCommand(cmd *cobra.Command, args []string) error {
	// Exibe o banner de boas-vindas
	displayWelcomeBanner(app.version)

	// Verifica a versão mais recente disponível
	go version.CheckLatestVersion(app.version)

	// Analisa os argumentos da linha de comando
	cliArgs, err := app.parseArgs()
	if err != nil {
		return err
	}

	// Executa o monitor
	ctx := context.Background()
	return app.monitorUseCase.RunMonitor(ctx, cliArgs)
}

// SetMonitorUseCase sets the monitor use case for the CLI app.
func (app *CLIApp) SetMonitorUseCase(useCase *usecase.MonitorUseCase) {
	app.monitorUseCase = useCase
}
