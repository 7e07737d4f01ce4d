package cli

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/diillson/apba-dashboard-go/internal/application/usecase"
	"github.com/diillson/apba-dashboard-go/internal/domain/classifier"
	"github.com/diillson/apba-dashboard-go/internal/domain/repository"
	"github.com/diillson/apba-dashboard-go/internal/logger"
	"github.com/diillson/apba-dashboard-go/internal/shared/types"
	"github.com/diillson/apba-dashboard-go/pkg/version"
	"github.com/spf13/cobra"
)

// envFile é lido do diretório atual quando existe.
const envFile = ".env"

// UseCaseFactory builds the dashboard use case once the static tables are known.
type UseCaseFactory func(tables classifier.Tables) *usecase.DashboardUseCase

// runFunc é a ação de um subcomando sobre o caso de uso.
type runFunc func(uc *usecase.DashboardUseCase, ctx context.Context, args *types.CLIArgs) error

// CLIApp represents the command-line interface application.
type CLIApp struct {
	rootCmd        *cobra.Command
	configRepo     repository.ConfigRepository
	newUseCase     UseCaseFactory
	version        string
	skipBanner     bool
	versionChecker func(string)
}

// NewCLIApp cria uma nova aplicação CLI.
func NewCLIApp(versionStr string) *CLIApp {
	app := &CLIApp{
		version:        versionStr,
		versionChecker: version.CheckLatestVersion,
	}

	// Obtem a versão formatada
	formattedVersion := version.FormatVersion()

	rootCmd := &cobra.Command{
		Use:          "apba-dashboard",
		Short:        "APBA budget law dashboard CLI",
		Long:         "Classifies and aggregates the appendices of the Aceh regional budget law (APBA).",
		Version:      formattedVersion,
		SilenceUsage: true,
		RunE:         app.handler((*usecase.DashboardUseCase).RunSummary),
	}
	rootCmd.SetVersionTemplate(`{{printf "APBA Dashboard version: %s\n" .Version}}`)

	flags := rootCmd.PersistentFlags()
	flags.StringP("config-file", "C", "", "Path to a TOML, YAML, or JSON configuration file")
	flags.String("ledger", "", "Ledger appendix (.csv/.xlsx path or s3://bucket/key)")
	flags.String("grants", "", "Grants appendix (.csv/.xlsx path or s3://bucket/key)")
	flags.String("aid", "", "Inter-government aid appendix (.csv/.xlsx path or s3://bucket/key)")
	flags.String("otsus", "", "Special autonomy fund appendix (.csv/.xlsx path or s3://bucket/key)")
	flags.StringP("report-name", "n", "", "Specify the base name for the report file (without extension)")
	flags.StringSliceP("report-type", "y", []string{"csv"}, "Specify report types: csv, json, pdf, xlsx")
	flags.StringP("dir", "d", "", "Directory to save the report files (default: current directory)")
	flags.Int("level", usecase.DefaultDetailLevel, "Ledger hierarchy level treated as line-item detail")
	flags.Int("top", usecase.DefaultTopN, "Number of units or recipients in ranked views")
	flags.BoolP("verbose", "v", false, "Print diagnostic logs to stderr")

	exploreCmd := &cobra.Command{
		Use:   "explore [unit]",
		Short: "Explore the expenditure of one organizational unit",
		Args:  cobra.MaximumNArgs(1),
		RunE:  app.handler((*usecase.DashboardUseCase).RunExplore),
	}
	exploreCmd.Flags().StringP("query", "q", "", "Filter line items by code, description or indicator")

	grantsCmd := &cobra.Command{
		Use:   "grants",
		Short: "Grants appendix: totals, top recipients and listing",
		RunE:  app.handler((*usecase.DashboardUseCase).RunGrants),
	}
	grantsCmd.Flags().StringP("query", "q", "", "Filter grants by recipient name or address")
	grantsCmd.Flags().StringSliceP("type", "t", nil, "Grant types to list: MONEY, GOODS")

	searchCmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Search every ledger line by code, description or indicator",
		Args:  cobra.MinimumNArgs(1),
		RunE:  app.handler((*usecase.DashboardUseCase).RunSearch),
	}

	unitsCmd := &cobra.Command{
		Use:   "units",
		Short: "List the organizational unit registry",
		RunE:  app.handler((*usecase.DashboardUseCase).RunUnits),
	}
	unitsCmd.Flags().Bool("check", false, "Report overlapping page ranges")

	rootCmd.AddCommand(
		exploreCmd,
		&cobra.Command{
			Use:   "otsus",
			Short: "Special autonomy fund appendix by sector",
			RunE:  app.handler((*usecase.DashboardUseCase).RunSpecialAllocation),
		},
		grantsCmd,
		&cobra.Command{
			Use:   "aid",
			Short: "Inter-government aid by regency/city",
			RunE:  app.handler((*usecase.DashboardUseCase).RunAid),
		},
		&cobra.Command{
			Use:   "compare",
			Short: "Compare spending categories across units",
			RunE:  app.handler((*usecase.DashboardUseCase).RunCompare),
		},
		searchCmd,
		&cobra.Command{
			Use:   "export",
			Short: "Export the enriched dataset",
			RunE:  app.handler((*usecase.DashboardUseCase).RunExport),
		},
		unitsCmd,
	)

	app.rootCmd = rootCmd
	return app
}

// Execute runs the CLI application.
func (app *CLIApp) Execute() error {
	return app.rootCmd.Execute()
}

// SetConfigRepository sets the repository used to read config files and the environment.
func (app *CLIApp) SetConfigRepository(repo repository.ConfigRepository) {
	app.configRepo = repo
}

// SetUseCaseFactory sets how the dashboard use case is built for each command.
func (app *CLIApp) SetUseCaseFactory(factory UseCaseFactory) {
	app.newUseCase = factory
}

// parseArgs parses command-line arguments into a CLIArgs struct.
// The returned tables are the built-in classification tables, overridden
// by the configuration file when it defines them.
func (app *CLIApp) parseArgs(cmd *cobra.Command, positional []string) (*types.CLIArgs, classifier.Tables, error) {
	flags := cmd.Flags()
	configFile, _ := flags.GetString("config-file")
	ledger, _ := flags.GetString("ledger")
	grants, _ := flags.GetString("grants")
	aid, _ := flags.GetString("aid")
	otsus, _ := flags.GetString("otsus")
	reportName, _ := flags.GetString("report-name")
	reportType, _ := flags.GetStringSlice("report-type")
	dir, _ := flags.GetString("dir")
	level, _ := flags.GetInt("level")
	top, _ := flags.GetInt("top")
	verbose, _ := flags.GetBool("verbose")

	// Flags específicas de subcomandos; ausentes ficam no valor zero
	query, _ := flags.GetString("query")
	grantTypes, _ := flags.GetStringSlice("type")
	check, _ := flags.GetBool("check")

	args := &types.CLIArgs{
		ConfigFile: configFile,
		Ledger:     ledger,
		Grants:     grants,
		Aid:        aid,
		Otsus:      otsus,
		ReportName: reportName,
		ReportType: reportType,
		Dir:        dir,
		Level:      level,
		Top:        top,
		Verbose:    verbose,
		Query:      query,
		GrantTypes: grantTypes,
		Check:      check,
	}

	switch cmd.Name() {
	case "explore":
		if len(positional) > 0 {
			args.Unit = positional[0]
		}
	case "search":
		args.Query = strings.Join(positional, " ")
	}

	tables, err := app.applyConfiguration(args, flags.Changed)
	if err != nil {
		return nil, classifier.Tables{}, err
	}

	// Diretório padrão: diretório de trabalho atual
	if args.Dir == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, classifier.Tables{}, err
		}
		args.Dir = cwd
	} else {
		absDir, err := filepath.Abs(args.Dir)
		if err != nil {
			return nil, classifier.Tables{}, err
		}
		args.Dir = absDir
	}

	return args, tables, nil
}

// applyConfiguration completa os argumentos com o arquivo de configuração e o ambiente.
func (app *CLIApp) applyConfiguration(args *types.CLIArgs, changed func(string) bool) (classifier.Tables, error) {
	var fileCfg, envCfg *types.Config
	if app.configRepo != nil {
		var err error
		if envCfg, err = app.configRepo.LoadEnvironment(envFile); err != nil {
			return classifier.Tables{}, err
		}
		if args.ConfigFile != "" {
			if fileCfg, err = app.configRepo.LoadConfigFile(args.ConfigFile); err != nil {
				return classifier.Tables{}, err
			}
		}
	}
	mergeConfig(args, changed, fileCfg, envCfg)
	return fileCfg.Tables(), nil
}

// handler adapta uma ação do caso de uso para o RunE do cobra.
func (app *CLIApp) handler(run runFunc) func(cmd *cobra.Command, positional []string) error {
	return func(cmd *cobra.Command, positional []string) error {
		cliArgs, tables, err := app.parseArgs(cmd, positional)
		if err != nil {
			return err
		}

		if !app.skipBanner {
			displayWelcomeBanner(app.version)
			go app.versionChecker(app.version)
		}

		log := logger.New(cliArgs.Verbose)
		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}
		ctx = logger.WithContext(ctx, log)
		log.Debug().
			Str("command", cmd.Name()).
			Str("config_file", cliArgs.ConfigFile).
			Int("level", cliArgs.Level).
			Msg("command started")

		return run(app.newUseCase(tables), ctx, cliArgs)
	}
}
