package main

import (
	"fmt"
	"os"

	"github.com/clinicops/bt-fulltime-monitor-go/internal/adapter/driven/config"
	"github.com/clinicops/bt-fulltime-monitor-go/internal/adapter/driven/export"
	"github.com/clinicops/bt-fulltime-monitor-go/internal/adapter/driven/ingest"
	"github.com/clinicops/bt-fulltime-monitor-go/internal/adapter/driving/cli"
	"github.com/clinicops/bt-fulltime-monitor-go/internal/application/usecase"
	"github.com/clinicops/bt-fulltime-monitor-go/pkg/console"
	"github.com/clinicops/bt-fulltime-monitor-go/pkg/version"
)

func main() {
	// Inicializa o aplicativo CLI
	app := cli.NewCLIApp(version.Version)

	// Inicializa os repositórios
	billingRepo := ingest.NewBillingRepository()
	exportRepo := export.NewExportRepository()
	configRepo := config.NewConfigRepository()
	consoleImpl := console.NewConsole()

	// Inicializa o caso de uso
	monitorUseCase := usecase.NewMonitorUseCase(
		billingRepo,
		exportRepo,
		configRepo,
		consoleImpl,
	)

	// Define o caso de uso no aplicativo CLI
	app.SetMonitorUseCase(monitorUseCase)

	// Executa o aplicativo
	if err := app.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
