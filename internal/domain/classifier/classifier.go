// Package classifier annotates raw appendix records with their owning
// unit, spending category, functional area and sector.
package classifier

import (
	"github.com/diillson/apba-dashboard-go/internal/domain/entity"
)

// Tables bundles the static configuration used for enrichment.
type Tables struct {
	Units         []entity.OrganizationalUnit
	AccountRules  []AccountRule
	FunctionAreas map[string]string
	Sectors       map[string]string
}

// DefaultTables returns the built-in APBA 2025 configuration.
func DefaultTables() Tables {
	return Tables{
		Units:         DefaultUnits(),
		AccountRules:  DefaultAccountRules(),
		FunctionAreas: DefaultFunctionAreas(),
		Sectors:       DefaultSectors(),
	}
}

// Enricher computes every derived field of a freshly loaded dataset.
type Enricher struct {
	registry *Registry
	accounts *AccountClassifier
	areas    *LabelTable
	sectors  *LabelTable
}

// NewEnricher cria o enriquecedor a partir das tabelas estáticas.
func NewEnricher(t Tables) *Enricher {
	return &Enricher{
		registry: NewRegistry(t.Units...),
		accounts: NewAccountClassifier(t.AccountRules),
		areas:    NewLabelTable(t.FunctionAreas),
		sectors:  NewLabelTable(t.Sectors),
	}
}

// Registry exposes the unit registry.
func (e *Enricher) Registry() *Registry { return e.registry }

// Accounts exposes the account classifier.
func (e *Enricher) Accounts() *AccountClassifier { return e.accounts }

// AreaOf maps a function code to its functional-area label.
func (e *Enricher) AreaOf(functionCode string) string {
	return e.areas.Label(functionCode)
}

// SectorOf maps the function prefix of a special-allocation code to a sector.
func (e *Enricher) SectorOf(accountCode string) string {
	return e.sectors.Label(entity.FunctionPrefix(accountCode))
}

// Units returns the registry units with their functional area filled in.
func (e *Enricher) Units() []entity.OrganizationalUnit {
	units := e.registry.Units()
	for i := range units {
		units[i].FunctionArea = e.AreaOf(units[i].FunctionCode)
	}
	return units
}

// UnitArea returns the functional area of the named unit. Names outside the
// registry, including "N/A", fall back to "Other".
func (e *Enricher) UnitArea(unit string) string {
	u, ok := e.registry.Lookup(unit)
	if !ok {
		return entity.OtherLabel
	}
	return e.AreaOf(u.FunctionCode)
}

// EnrichLedger fills Category, Unit and FunctionArea on every item in place.
func (e *Enricher) EnrichLedger(items []entity.BudgetLineItem) {
	for i := range items {
		items[i].Category = e.accounts.Classify(items[i].AccountCode)
		items[i].Unit = e.registry.Resolve(items[i].Page)
		items[i].FunctionArea = e.UnitArea(items[i].Unit)
	}
}

// EnrichSpecialAllocation fills Sector and ProgramLevel in place.
func (e *Enricher) EnrichSpecialAllocation(records []entity.SpecialAllocationRecord) {
	for i := range records {
		records[i].Sector = e.SectorOf(records[i].AccountCode)
		records[i].ProgramLevel = entity.IsProgramCode(records[i].AccountCode)
	}
}
