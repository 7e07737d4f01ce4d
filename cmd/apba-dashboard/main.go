package main

import (
	"fmt"
	"os"

	"github.com/diillson/apba-dashboard-go/internal/adapter/driven/config"
	"github.com/diillson/apba-dashboard-go/internal/adapter/driven/export"
	"github.com/diillson/apba-dashboard-go/internal/adapter/driven/source"
	"github.com/diillson/apba-dashboard-go/internal/adapter/driving/cli"
	"github.com/diillson/apba-dashboard-go/internal/application/usecase"
	"github.com/diillson/apba-dashboard-go/internal/domain/classifier"
	"github.com/diillson/apba-dashboard-go/pkg/console"
	"github.com/diillson/apba-dashboard-go/pkg/version"
)

func main() {
	// Inicializa o aplicativo CLI
	app := cli.NewCLIApp(version.Version)

	// Inicializa os repositórios
	sourceRepo := source.NewSourceRepository()
	exportRepo := export.NewExportRepository()
	configRepo := config.NewConfigRepository()
	consoleImpl := console.NewConsole()

	app.SetConfigRepository(configRepo)

	// O caso de uso é criado por comando, depois que as tabelas configuradas são conhecidas
	app.SetUseCaseFactory(func(tables classifier.Tables) *usecase.DashboardUseCase {
		return usecase.NewDashboardUseCase(sourceRepo, exportRepo, consoleImpl, tables)
	})

	// Executa o aplicativo
	if err := app.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
