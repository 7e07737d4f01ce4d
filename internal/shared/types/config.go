package types

import (
	"github.com/diillson/apba-dashboard-go/internal/domain/classifier"
	"github.com/diillson/apba-dashboard-go/internal/domain/entity"
)

// Config represents the application configuration that can be loaded from a file.
type Config struct {
	Ledger     string   `json:"ledger" yaml:"ledger" toml:"ledger"`
	Grants     string   `json:"grants" yaml:"grants" toml:"grants"`
	Aid        string   `json:"aid" yaml:"aid" toml:"aid"`
	Otsus      string   `json:"otsus" yaml:"otsus" toml:"otsus"`
	ReportName string   `json:"report_name" yaml:"report_name" toml:"report_name"`
	ReportType []string `json:"report_type" yaml:"report_type" toml:"report_type"`
	Dir        string   `json:"dir" yaml:"dir" toml:"dir"`
	Level      int      `json:"level" yaml:"level" toml:"level"`
	Top        int      `json:"top" yaml:"top" toml:"top"`

	// Tabelas estáticas opcionais; vazias mantêm os valores embutidos
	Units         []entity.OrganizationalUnit `json:"units" yaml:"units" toml:"units"`
	AccountRules  []classifier.AccountRule    `json:"account_rules" yaml:"account_rules" toml:"account_rules"`
	FunctionAreas map[string]string           `json:"function_areas" yaml:"function_areas" toml:"function_areas"`
	Sectors       map[string]string           `json:"sectors" yaml:"sectors" toml:"sectors"`
}

// Tables merges the configured static tables over the built-in defaults.
func (c *Config) Tables() classifier.Tables {
	t := classifier.DefaultTables()
	if c == nil {
		return t
	}
	if len(c.Units) > 0 {
		t.Units = c.Units
	}
	if len(c.AccountRules) > 0 {
		t.AccountRules = c.AccountRules
	}
	if len(c.FunctionAreas) > 0 {
		t.FunctionAreas = c.FunctionAreas
	}
	if len(c.Sectors) > 0 {
		t.Sectors = c.Sectors
	}
	return t
}
