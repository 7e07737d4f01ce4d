package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/diillson/apba-dashboard-go/internal/domain/aggregate"
	"github.com/diillson/apba-dashboard-go/internal/domain/entity"
	"github.com/diillson/apba-dashboard-go/internal/logger"
	"github.com/diillson/apba-dashboard-go/internal/shared/types"
	"github.com/diillson/apba-dashboard-go/pkg/currency"
	"github.com/pterm/pterm"
)

// Linhas exibidas no console para listagens longas
const maxListedRows = 100

// SourcesFrom builds the source set named by the CLI arguments.
func SourcesFrom(args *types.CLIArgs) entity.SourceSet {
	return entity.SourceSet{
		Ledger:            args.Ledger,
		Grants:            args.Grants,
		Aid:               args.Aid,
		SpecialAllocation: args.Otsus,
	}
}

func optionsFrom(args *types.CLIArgs) ReportOptions {
	return ReportOptions{Level: args.Level, Top: args.Top}.withDefaults()
}

func (uc *DashboardUseCase) load(ctx context.Context, args *types.CLIArgs) (*entity.Dataset, error) {
	sources := SourcesFrom(args)
	if sources.Ledger == "" || sources.Grants == "" || sources.Aid == "" || sources.SpecialAllocation == "" {
		return nil, types.ErrNoSourcesSpecified
	}
	return uc.Load(ctx, sources)
}

func (uc *DashboardUseCase) wantsExport(args *types.CLIArgs) bool {
	return args.ReportName != "" && len(args.ReportType) > 0
}

// reportExport registra o resultado de uma exportação sem interromper o comando.
func (uc *DashboardUseCase) reportExport(what, format, path string, err error) {
	if err != nil {
		uc.console.LogError("Failed to export %s to %s: %s", what, strings.ToUpper(format), err)
		return
	}
	uc.console.LogSuccess("Successfully exported %s to %s: %s", what, strings.ToUpper(format), path)
}

func (uc *DashboardUseCase) unsupportedExport(what, format string) {
	uc.console.LogWarning("%s cannot be exported to %s", what, strings.ToUpper(format))
}

// exportAggregate exporta uma tabela agregada em cada formato pedido.
func (uc *DashboardUseCase) exportAggregate(args *types.CLIArgs, table entity.AggregateTable, suffix string) {
	name := args.ReportName + "_" + suffix
	for _, reportType := range args.ReportType {
		switch reportType {
		case "csv":
			path, err := uc.exportRepo.ExportAggregateToCSV(table, name, args.Dir)
			uc.reportExport(table.Title, reportType, path, err)
		case "json":
			path, err := uc.exportRepo.ExportAggregateToJSON(table, name, args.Dir)
			uc.reportExport(table.Title, reportType, path, err)
		case "pdf":
			path, err := uc.exportRepo.ExportAggregateToPDF(table, name, args.Dir)
			uc.reportExport(table.Title, reportType, path, err)
		default:
			uc.unsupportedExport(table.Title, reportType)
		}
	}
}

// exportLedger exporta linhas enriquecidas do razão em cada formato pedido.
func (uc *DashboardUseCase) exportLedger(args *types.CLIArgs, items []entity.BudgetLineItem, suffix string) {
	name := args.ReportName + "_" + suffix
	for _, reportType := range args.ReportType {
		switch reportType {
		case "csv":
			path, err := uc.exportRepo.ExportLedgerToCSV(items, name, args.Dir)
			uc.reportExport("ledger lines", reportType, path, err)
		case "json":
			path, err := uc.exportRepo.ExportLedgerToJSON(items, name, args.Dir)
			uc.reportExport("ledger lines", reportType, path, err)
		case "xlsx":
			path, err := uc.exportRepo.ExportLedgerToXLSX(items, name, args.Dir)
			uc.reportExport("ledger lines", reportType, path, err)
		default:
			uc.unsupportedExport("Ledger lines", reportType)
		}
	}
}

// --- Renderização ---

func (uc *DashboardUseCase) renderAggregate(table entity.AggregateTable) {
	if len(table.Rows) == 0 {
		uc.console.LogWarning("%s: no data", table.Title)
		return
	}
	t := uc.console.CreateTable()
	for _, dim := range table.Dimensions {
		t.AddColumn(dim)
	}
	t.AddColumn(table.Measure)
	for _, row := range table.Rows {
		cells := make([]interface{}, 0, len(row.Keys)+1)
		for i := range table.Dimensions {
			cells = append(cells, row.Key(i))
		}
		cells = append(cells, currency.FormatDecimal(row.Value, true))
		t.AddRow(cells...)
	}
	uc.console.Println(pterm.FgLightCyan.Sprint(table.Title))
	uc.console.Print(t.Render())
	uc.console.Println()
}

// renderShares desenha só as linhas com valor; a tabela exportada fica intacta.
func (uc *DashboardUseCase) renderShares(table entity.AggregateTable) {
	rows := aggregate.NonZero(table.Rows)
	bars := make([]types.ShareBar, 0, len(rows))
	for _, row := range rows {
		bars = append(bars, types.ShareBar{
			Label:   strings.Join(row.Keys, " / "),
			Value:   row.Value.InexactFloat64(),
			Display: currency.FormatDecimal(row.Value, true),
		})
	}
	uc.console.DisplayShareBars(table.Title, bars)
}

func (uc *DashboardUseCase) renderLedger(title string, items []entity.BudgetLineItem) {
	t := uc.console.CreateTable()
	t.AddColumn("Account Code")
	t.AddColumn("Description")
	t.AddColumn("Amount")
	t.AddColumn("Indicator")
	t.AddColumn("Unit")
	for i, item := range items {
		if i == maxListedRows {
			break
		}
		t.AddRow(
			item.AccountCode,
			truncate(item.Description, 60),
			currency.Format(item.Amount, false),
			truncate(item.Indicator, 40),
			item.Unit,
		)
	}
	uc.console.Println(pterm.FgLightCyan.Sprint(title))
	uc.console.Print(t.Render())
	if len(items) > maxListedRows {
		uc.console.LogInfo("Showing %d of %d lines; export the report to see all of them", maxListedRows, len(items))
	}
	uc.console.Println()
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-3]) + "..."
}

func surplusText(summary entity.ExecutiveSummary) string {
	text := currency.FormatDecimal(summary.Surplus, true)
	if summary.SurplusPercent != nil {
		text = fmt.Sprintf("%s (%.2f%%)", text, *summary.SurplusPercent)
	}
	if summary.Surplus.IsNegative() {
		return pterm.FgRed.Sprint(text)
	}
	return pterm.FgGreen.Sprint(text)
}

// --- Comandos ---

// RunSummary shows the executive summary and exports it when requested.
func (uc *DashboardUseCase) RunSummary(ctx context.Context, args *types.CLIArgs) error {
	ds, err := uc.load(ctx, args)
	if err != nil {
		return err
	}
	summary := uc.Summary(ds, optionsFrom(args))

	t := uc.console.CreateTable()
	t.AddColumn("Total Revenue")
	t.AddColumn("Total Expenditure")
	t.AddColumn("Surplus/Deficit")
	t.AddColumn("Special Autonomy Fund")
	t.AddRow(
		pterm.NewStyle(pterm.FgGreen, pterm.Bold).Sprint(currency.FormatDecimal(summary.Revenue, true)),
		pterm.NewStyle(pterm.FgRed, pterm.Bold).Sprint(currency.FormatDecimal(summary.Expenditure, true)),
		surplusText(summary),
		pterm.FgMagenta.Sprint(currency.FormatDecimal(summary.SpecialAllocation, true)),
	)
	uc.console.Print(t.Render())

	uc.renderShares(summary.Composition)
	uc.renderAggregate(summary.TopUnits)
	uc.renderAggregate(summary.AreaUnitAllocation)

	if uc.wantsExport(args) {
		for _, reportType := range args.ReportType {
			switch reportType {
			case "json":
				path, err := uc.exportRepo.ExportSummaryToJSON(summary, args.ReportName, args.Dir)
				uc.reportExport("executive summary", reportType, path, err)
			case "pdf":
				path, err := uc.exportRepo.ExportSummaryToPDF(summary, args.ReportName, args.Dir)
				uc.reportExport("executive summary", reportType, path, err)
			case "csv":
				for _, part := range []struct {
					suffix string
					table  entity.AggregateTable
				}{
					{"composition", summary.Composition},
					{"top_units", summary.TopUnits},
					{"area_unit", summary.AreaUnitAllocation},
				} {
					path, err := uc.exportRepo.ExportAggregateToCSV(part.table, args.ReportName+"_"+part.suffix, args.Dir)
					uc.reportExport(part.table.Title, reportType, path, err)
				}
			default:
				uc.unsupportedExport("Executive summary", reportType)
			}
		}
	}
	return nil
}

// RunUnits lists the unit registry. With Check set it also reports
// overlapping page ranges.
func (uc *DashboardUseCase) RunUnits(ctx context.Context, args *types.CLIArgs) error {
	t := uc.console.CreateTable()
	t.AddColumn("Unit")
	t.AddColumn("Type")
	t.AddColumn("Function Area")
	t.AddColumn("Pages")
	for _, u := range uc.enricher.Units() {
		t.AddRow(u.Name, string(u.Type), u.FunctionArea, fmt.Sprintf("%d-%d", u.PageStart, u.PageEnd))
	}
	uc.console.Print(t.Render())

	if args.Check {
		overlaps := uc.enricher.Registry().Overlaps()
		if len(overlaps) == 0 {
			uc.console.LogSuccess("No overlapping page ranges")
		}
		for _, o := range overlaps {
			uc.console.LogWarning("%s overlaps %s; shared pages resolve to %s", o.Second, o.First, o.First)
		}
	}

	log := logger.FromContext(ctx)
	log.Debug().Int("units", len(uc.enricher.Units())).Msg("unit registry listed")
	return nil
}

// RunExplore details the expenditure of one unit. Without a unit it lists
// the units that own detail lines.
func (uc *DashboardUseCase) RunExplore(ctx context.Context, args *types.CLIArgs) error {
	ds, err := uc.load(ctx, args)
	if err != nil {
		return err
	}
	opts := optionsFrom(args)

	if args.Unit == "" {
		uc.console.LogInfo("No unit given; units with detail expenditure lines:")
		for _, name := range uc.Units(ds, opts) {
			uc.console.Println("  " + name)
		}
		return nil
	}

	exploration, err := uc.ExploreUnit(ds, args.Unit, args.Query, opts)
	if err != nil {
		return fmt.Errorf("unit %q: %w", args.Unit, err)
	}

	t := uc.console.CreateTable()
	t.AddColumn("Unit")
	t.AddColumn("Total Budget")
	t.AddColumn("Line Items")
	t.AddColumn("Function Area")
	t.AddRow(
		pterm.FgMagenta.Sprint(exploration.Unit),
		pterm.NewStyle(pterm.FgRed, pterm.Bold).Sprint(currency.FormatDecimal(exploration.Total, true)),
		exploration.ItemCount,
		uc.enricher.UnitArea(exploration.Unit),
	)
	uc.console.Print(t.Render())

	uc.renderAggregate(exploration.Categories)
	uc.renderShares(exploration.Breakdown)
	uc.renderLedger("Line Item Details", exploration.Items)

	if uc.wantsExport(args) {
		for _, reportType := range args.ReportType {
			if reportType == "pdf" {
				path, err := uc.exportRepo.ExportAggregateToPDF(exploration.Categories, args.ReportName+"_categories", args.Dir)
				uc.reportExport(exploration.Categories.Title, reportType, path, err)
			}
		}
		uc.exportLedger(withoutType(args, "pdf"), exploration.Items, "detail")
	}
	return nil
}

// RunSpecialAllocation shows the special-autonomy fund appendix.
func (uc *DashboardUseCase) RunSpecialAllocation(ctx context.Context, args *types.CLIArgs) error {
	ds, err := uc.load(ctx, args)
	if err != nil {
		return err
	}
	report := uc.SpecialAllocation(ds)

	uc.console.Println(pterm.NewStyle(pterm.FgMagenta, pterm.Bold).Sprintf("Special Autonomy Fund: %s",
		currency.FormatDecimal(report.Total, true)))
	uc.renderShares(report.Sectors)

	t := uc.console.CreateTable()
	t.AddColumn("Account Code")
	t.AddColumn("Description")
	t.AddColumn("Sector")
	t.AddColumn("Amount")
	for i, rec := range report.Items {
		if i == maxListedRows {
			break
		}
		t.AddRow(rec.AccountCode, truncate(rec.Description, 60), rec.Sector, currency.Format(rec.Amount, false))
	}
	uc.console.Print(t.Render())

	if uc.wantsExport(args) {
		for _, reportType := range args.ReportType {
			if reportType == "csv" {
				path, err := uc.exportRepo.ExportSpecialAllocationToCSV(report.Items, args.ReportName+"_otsus", args.Dir)
				uc.reportExport("special allocation lines", reportType, path, err)
			}
		}
		uc.exportAggregate(args, report.Sectors, "otsus_sectors")
	}
	return nil
}

// RunGrants shows the grants appendix.
func (uc *DashboardUseCase) RunGrants(ctx context.Context, args *types.CLIArgs) error {
	ds, err := uc.load(ctx, args)
	if err != nil {
		return err
	}
	report := uc.Grants(ds, args.GrantTypes, args.Query, optionsFrom(args))

	t := uc.console.CreateTable()
	t.AddColumn("Money Grants")
	t.AddColumn("Goods Grants")
	t.AddColumn("Recipients")
	t.AddRow(
		pterm.FgGreen.Sprint(currency.FormatDecimal(report.MoneyTotal, true)),
		pterm.FgYellow.Sprint(currency.FormatDecimal(report.GoodsTotal, true)),
		report.RecipientCount,
	)
	uc.console.Print(t.Render())
	uc.renderShares(report.ByType)

	top := uc.console.CreateTable()
	top.AddColumn("Recipient")
	top.AddColumn("Type")
	top.AddColumn("Amount")
	for _, g := range report.TopRecipients {
		top.AddRow(truncate(g.RecipientName, 60), string(g.GrantType), currency.Format(g.Amount, true))
	}
	uc.console.Println(pterm.FgLightCyan.Sprint("Top Grant Recipients"))
	uc.console.Print(top.Render())

	if args.Query != "" || len(args.GrantTypes) > 0 {
		list := uc.console.CreateTable()
		list.AddColumn("Recipient")
		list.AddColumn("Address")
		list.AddColumn("Type")
		list.AddColumn("Amount")
		for i, g := range report.Items {
			if i == maxListedRows {
				break
			}
			list.AddRow(truncate(g.RecipientName, 50), truncate(g.RecipientAddress, 40), string(g.GrantType), currency.Format(g.Amount, false))
		}
		uc.console.Println(pterm.FgLightCyan.Sprintf("Matching Grants (%d)", len(report.Items)))
		uc.console.Print(list.Render())
	}

	if uc.wantsExport(args) {
		for _, reportType := range args.ReportType {
			if reportType == "csv" {
				path, err := uc.exportRepo.ExportGrantsToCSV(report.Items, args.ReportName+"_grants", args.Dir)
				uc.reportExport("grant lines", reportType, path, err)
			}
		}
		uc.exportAggregate(withoutType(args, "csv"), report.ByType, "grants_by_type")
	}
	return nil
}

// RunAid shows the inter-government aid appendix.
func (uc *DashboardUseCase) RunAid(ctx context.Context, args *types.CLIArgs) error {
	ds, err := uc.load(ctx, args)
	if err != nil {
		return err
	}
	report := uc.Aid(ds)

	t := uc.console.CreateTable()
	t.AddColumn("General Aid")
	t.AddColumn("Specific Aid")
	t.AddRow(
		pterm.FgGreen.Sprint(currency.FormatDecimal(report.GeneralTotal, true)),
		pterm.FgYellow.Sprint(currency.FormatDecimal(report.SpecificTotal, true)),
	)
	uc.console.Print(t.Render())
	uc.renderAggregate(report.ByRecipient)

	if uc.wantsExport(args) {
		uc.exportAggregate(args, report.ByRecipient, "aid")
	}
	return nil
}

// RunCompare shows the unit-by-category comparative analysis.
func (uc *DashboardUseCase) RunCompare(ctx context.Context, args *types.CLIArgs) error {
	ds, err := uc.load(ctx, args)
	if err != nil {
		return err
	}
	report := uc.Compare(ds, optionsFrom(args))

	t := uc.console.CreateTable()
	t.AddColumn("Unit")
	t.AddColumn("Total Budget")
	t.AddColumn("Line Items")
	t.AddColumn("Indicators")
	for _, p := range report.Profiles {
		t.AddRow(p.Unit, currency.FormatDecimal(p.Total, true), p.Items, p.Indicators)
	}
	uc.console.Println(pterm.FgLightCyan.Sprint("Unit Profiles"))
	uc.console.Print(t.Render())

	shares := uc.console.CreateTable()
	shares.AddColumn("Unit")
	shares.AddColumn("Category")
	shares.AddColumn("Share")
	for _, s := range report.Shares {
		shares.AddRow(s.Unit, s.Category, fmt.Sprintf("%.1f%%", s.Percent))
	}
	uc.console.Println(pterm.FgLightCyan.Sprint("Category Share of Top Units"))
	uc.console.Print(shares.Render())

	if uc.wantsExport(args) {
		uc.exportAggregate(args, report.Matrix, "comparison")
	}
	return nil
}

// RunSearch searches every ledger line by code, description or indicator.
func (uc *DashboardUseCase) RunSearch(ctx context.Context, args *types.CLIArgs) error {
	if len([]rune(strings.TrimSpace(args.Query))) < MinQueryLength {
		return types.ErrQueryTooShort
	}
	ds, err := uc.load(ctx, args)
	if err != nil {
		return err
	}
	results, err := uc.Search(ds, args.Query)
	if err != nil {
		return err
	}
	if len(results) == 0 {
		uc.console.LogWarning("No ledger line matches %q", args.Query)
		return nil
	}

	uc.console.LogSuccess("Found %d matching lines", len(results))
	uc.renderLedger("Search Results", results)

	if uc.wantsExport(args) {
		uc.exportLedger(args, results, "search")
	}
	return nil
}

// RunExport writes the whole enriched dataset in every requested format.
func (uc *DashboardUseCase) RunExport(ctx context.Context, args *types.CLIArgs) error {
	ds, err := uc.load(ctx, args)
	if err != nil {
		return err
	}
	if args.ReportName == "" {
		args.ReportName = "apba"
	}
	if len(args.ReportType) == 0 {
		args.ReportType = []string{"csv"}
	}

	status := uc.console.Status("Exporting enriched dataset...")
	defer status.Stop()

	status.Update(fmt.Sprintf("Exporting ledger (%d lines)...", len(ds.Ledger)))
	uc.exportLedger(withoutType(args, "pdf"), ds.Ledger, "ledger")
	if containsType(args.ReportType, "csv") {
		status.Update(fmt.Sprintf("Exporting grants (%d lines)...", len(ds.Grants)))
		path, err := uc.exportRepo.ExportGrantsToCSV(ds.Grants, args.ReportName+"_grants", args.Dir)
		uc.reportExport("grant lines", "csv", path, err)

		status.Update(fmt.Sprintf("Exporting special allocation (%d lines)...", len(ds.SpecialAllocation)))
		path, err = uc.exportRepo.ExportSpecialAllocationToCSV(ds.SpecialAllocation, args.ReportName+"_otsus", args.Dir)
		uc.reportExport("special allocation lines", "csv", path, err)
	}
	if containsType(args.ReportType, "pdf") {
		status.Update("Exporting executive summary...")
		summary := uc.Summary(ds, optionsFrom(args))
		path, err := uc.exportRepo.ExportSummaryToPDF(summary, args.ReportName+"_summary", args.Dir)
		uc.reportExport("executive summary", "pdf", path, err)
	}
	return nil
}

func containsType(list []string, t string) bool {
	for _, v := range list {
		if v == t {
			return true
		}
	}
	return false
}

// withoutType devolve uma cópia dos argumentos sem o formato indicado.
func withoutType(args *types.CLIArgs, t string) *types.CLIArgs {
	clone := *args
	clone.ReportType = nil
	for _, v := range args.ReportType {
		if v != t {
			clone.ReportType = append(clone.ReportType, v)
		}
	}
	return &clone
}
