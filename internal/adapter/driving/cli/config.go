package cli

import "github.com/diillson/apba-dashboard-go/internal/shared/types"

// mergeConfig preenche os argumentos não informados na linha de comando.
// As camadas chegam em ordem de prioridade (arquivo de configuração, depois
// ambiente) e a primeira que define um valor vence; flags explícitas
// nunca são sobrescritas.
func mergeConfig(args *types.CLIArgs, changed func(string) bool, layers ...*types.Config) {
	filled := map[string]bool{}
	taken := func(flag string) bool {
		return changed(flag) || filled[flag]
	}
	setString := func(flag string, dst *string, value string) {
		if value == "" || taken(flag) {
			return
		}
		*dst = value
		filled[flag] = true
	}
	setInt := func(flag string, dst *int, value int) {
		if value <= 0 || taken(flag) {
			return
		}
		*dst = value
		filled[flag] = true
	}

	for _, cfg := range layers {
		if cfg == nil {
			continue
		}
		setString("ledger", &args.Ledger, cfg.Ledger)
		setString("grants", &args.Grants, cfg.Grants)
		setString("aid", &args.Aid, cfg.Aid)
		setString("otsus", &args.Otsus, cfg.Otsus)
		setString("report-name", &args.ReportName, cfg.ReportName)
		setString("dir", &args.Dir, cfg.Dir)
		setInt("level", &args.Level, cfg.Level)
		setInt("top", &args.Top, cfg.Top)
		if len(cfg.ReportType) > 0 && !taken("report-type") {
			args.ReportType = cfg.ReportType
			filled["report-type"] = true
		}
	}
}
