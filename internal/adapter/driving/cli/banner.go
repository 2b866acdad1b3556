package cli

import (
	"fmt"

	"github.com/fatih/color"

	"github.com/clinicops/bt-fulltime-monitor-go/pkg/version"
)

// displayWelcomeBanner exibe o banner de boas-vindas com informações de versão.
func displayWelcomeBanner(versionStr string) {
	banner := `
         ____ _____   __  __             _ _
        | __ )_   _| |  \/  | ___  _ __ (_) |_ ___  _ __
        |  _ \ | |   | |\/| |/ _ \| '_ \| | __/ _ \| '__|
        | |_) || |   | |  | | (_) | | | | | || (_) | |
        |____/ |_|   |_|  |_|\___/|_| |_|_|\__\___/|_|
        `
	cyan := color.New(color.FgCyan, color.Bold).SprintFunc()
	blue := color.New(color.FgBlue, color.Bold).SprintFunc()

	fmt.Println(cyan(banner))

	// Obtem a string formatada da versão através do pacote version
	formattedVersion := version.FormatVersion()
	fmt.Println(blue(fmt.Sprintf("Full-Time BT Monitor CLI (v%s)", formattedVersion)))
}
