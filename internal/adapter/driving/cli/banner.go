package cli

import (
	"fmt"

	"github.com/diillson/apba-dashboard-go/pkg/version"
	"github.com/fatih/color"
)

// displayWelcomeBanner exibe o banner de boas-vindas com informações de versão.
func displayWelcomeBanner(versionStr string) {
	banner := `
      /$$$$$$  /$$$$$$$  /$$$$$$$   /$$$$$$ 
     /$$__  $$| $$__  $$| $$__  $$ /$$__  $$
    | $$  \ $$| $$  \ $$| $$  \ $$| $$  \ $$
    | $$$$$$$$| $$$$$$$/| $$$$$$$ | $$$$$$$$
    | $$__  $$| $$____/ | $$__  $$| $$__  $$
    | $$  | $$| $$      | $$  \ $$| $$  | $$
    | $$  | $$| $$      | $$$$$$$/| $$  | $$
    |__/  |__/|__/      |_______/ |__/  |__/
    `
	green := color.New(color.FgGreen, color.Bold).SprintFunc()
	blue := color.New(color.FgBlue, color.Bold).SprintFunc()

	fmt.Println(green(banner))

	// Obtem a string formatada da versão através do pacote version
	formattedVersion := version.FormatVersion()
	fmt.Println(blue(fmt.Sprintf("APBA Dashboard CLI (v%s)", formattedVersion)))
}
